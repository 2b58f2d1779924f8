package territory_cache

import (
	"sync"
	"time"

	"github.com/RonP3B/medisearch-backend/territorial"
)

// Territorial divisions barely ever change; a long TTL just bounds staleness
// after a service-side correction.
const TTL = 12 * time.Hour

// ── Province list cache ──────────────────────────────────────────────────────

type provinceEntry struct {
	data      []territorial.Province
	fetchedAt time.Time
}

var (
	provinceMu    sync.RWMutex
	provinceCache *provinceEntry
)

func GetProvinces() ([]territorial.Province, bool) {
	provinceMu.RLock()
	defer provinceMu.RUnlock()
	if provinceCache != nil && time.Since(provinceCache.fetchedAt) < TTL {
		return provinceCache.data, true
	}
	return nil, false
}

func SetProvinces(data []territorial.Province) {
	provinceMu.Lock()
	defer provinceMu.Unlock()
	provinceCache = &provinceEntry{data: data, fetchedAt: time.Now()}
}

// ── Municipalities cache, keyed by province code ─────────────────────────────

type municipalityEntry struct {
	data      []territorial.Municipality
	fetchedAt time.Time
}

var (
	municipalityMu    sync.RWMutex
	municipalityCache = make(map[string]*municipalityEntry)
)

func GetMunicipalities(provinceCode string) ([]territorial.Municipality, bool) {
	municipalityMu.RLock()
	defer municipalityMu.RUnlock()
	entry, ok := municipalityCache[provinceCode]
	if ok && time.Since(entry.fetchedAt) < TTL {
		return entry.data, true
	}
	return nil, false
}

func SetMunicipalities(provinceCode string, data []territorial.Municipality) {
	municipalityMu.Lock()
	defer municipalityMu.Unlock()
	municipalityCache[provinceCode] = &municipalityEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything ────────────────────────────────────────────────────

func Invalidate() {
	provinceMu.Lock()
	provinceCache = nil
	provinceMu.Unlock()

	municipalityMu.Lock()
	municipalityCache = make(map[string]*municipalityEntry)
	municipalityMu.Unlock()
}

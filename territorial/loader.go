package territorial

import (
	"context"
	"log"
	"sync"
)

// Loader keeps the province list and the municipality list of the currently
// selected province. Selection changes are tagged with a generation counter
// so a slow municipality response for a previous selection can never
// overwrite the list of the current one.
type Loader struct {
	client *Client

	mu                    sync.Mutex
	provinces             []Province
	municipalities        []Municipality
	selectedProvince      string
	generation            uint64
	loadingProvinces      bool
	loadingMunicipalities bool
}

func NewLoader(client *Client) *Loader {
	return &Loader{client: client, loadingProvinces: true}
}

// LoadProvinces fetches the province list once. A failure logs and leaves the
// list empty; there is no retry. If a province was preselected (edit flows),
// its municipalities are loaded right away without touching any selection
// held elsewhere.
func (l *Loader) LoadProvinces(ctx context.Context) {
	provinces, err := l.client.GetProvinces(ctx)

	l.mu.Lock()
	l.loadingProvinces = false
	if err != nil {
		l.mu.Unlock()
		log.Printf("[territorial] error fetching provinces: %v", err)
		return
	}
	l.provinces = provinces
	preselected := l.selectedProvince
	l.mu.Unlock()

	if preselected != "" {
		l.fetchMunicipalities(ctx, preselected)
	}
}

// SetInitialProvince records a selection before LoadProvinces runs, used when
// a form is opened with an existing value.
func (l *Loader) SetInitialProvince(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selectedProvince = name
}

// SelectProvince changes the selection. An empty selection clears the
// municipality list immediately without a network call; any fetch still in
// flight is superseded, so the loading flag resets here too.
func (l *Loader) SelectProvince(ctx context.Context, name string) {
	l.mu.Lock()
	l.selectedProvince = name
	l.generation++
	if name == "" {
		l.municipalities = nil
		l.loadingMunicipalities = false
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	l.fetchMunicipalities(ctx, name)
}

func (l *Loader) fetchMunicipalities(ctx context.Context, provinceName string) {
	l.mu.Lock()
	generation := l.generation
	code := l.provinceCodeLocked(provinceName)
	l.loadingMunicipalities = true
	l.mu.Unlock()

	municipalities, err := l.client.GetProvinceMunicipalities(ctx, code)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Stale response: the selection moved on while this fetch was in flight.
	if generation != l.generation {
		return
	}

	l.loadingMunicipalities = false
	if err != nil {
		log.Printf("[territorial] error fetching municipalities: %v", err)
		return
	}
	l.municipalities = municipalities
}

func (l *Loader) provinceCodeLocked(name string) string {
	for _, province := range l.provinces {
		if province.Name == name {
			return province.Code
		}
	}
	return ""
}

func (l *Loader) Provinces() []Province {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.provinces
}

func (l *Loader) Municipalities() []Municipality {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.municipalities
}

func (l *Loader) SelectedProvince() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selectedProvince
}

func (l *Loader) LoadingProvinces() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadingProvinces
}

func (l *Loader) LoadingMunicipalities() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadingMunicipalities
}

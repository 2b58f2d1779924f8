package territorial

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const provincesPayload = `{"data":[{"name":"Santo Domingo","code":"32"},{"name":"Santiago","code":"25"}]}`

func municipalitiesPayload(code string) string {
	if code == "32" {
		return `{"data":[{"name":"Santo Domingo Este","code":"01"}]}`
	}
	return `{"data":[{"name":"Santiago de los Caballeros","code":"01"}]}`
}

func TestLoader_LoadProvinces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(provincesPayload))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL))
	require.True(t, loader.LoadingProvinces())

	loader.LoadProvinces(context.Background())

	assert.False(t, loader.LoadingProvinces())
	assert.Len(t, loader.Provinces(), 2)
}

func TestLoader_LoadProvincesFailureLeavesListEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL))
	loader.LoadProvinces(context.Background())

	assert.False(t, loader.LoadingProvinces())
	assert.Empty(t, loader.Provinces())
}

func TestLoader_SelectProvinceFetchesMunicipalities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/provinces" {
			w.Write([]byte(provincesPayload))
			return
		}
		w.Write([]byte(municipalitiesPayload(r.URL.Query().Get("provinceCode"))))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL))
	loader.LoadProvinces(context.Background())

	loader.SelectProvince(context.Background(), "Santo Domingo")

	municipalities := loader.Municipalities()
	require.Len(t, municipalities, 1)
	assert.Equal(t, "Santo Domingo Este", municipalities[0].Name)
}

func TestLoader_EmptySelectionClearsWithoutFetch(t *testing.T) {
	var municipalityCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/provinces" {
			w.Write([]byte(provincesPayload))
			return
		}
		municipalityCalls++
		w.Write([]byte(municipalitiesPayload(r.URL.Query().Get("provinceCode"))))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL))
	loader.LoadProvinces(context.Background())
	loader.SelectProvince(context.Background(), "Santiago")
	require.NotEmpty(t, loader.Municipalities())

	loader.SelectProvince(context.Background(), "")

	assert.Empty(t, loader.Municipalities())
	assert.Equal(t, 1, municipalityCalls)
}

func TestLoader_PreselectedProvinceLoadsAfterProvinces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/provinces" {
			w.Write([]byte(provincesPayload))
			return
		}
		w.Write([]byte(municipalitiesPayload(r.URL.Query().Get("provinceCode"))))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL))
	loader.SetInitialProvince("Santiago")

	loader.LoadProvinces(context.Background())

	require.Len(t, loader.Municipalities(), 1)
	assert.Equal(t, "Santiago de los Caballeros", loader.Municipalities()[0].Name)
	assert.Equal(t, "Santiago", loader.SelectedProvince())
}

// A slow response for a previous selection must not overwrite the list of the
// latest one.
func TestLoader_StaleResponseIsDiscarded(t *testing.T) {
	releaseSlow := make(chan struct{})
	slowInFlight := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/provinces" {
			w.Write([]byte(provincesPayload))
			return
		}
		code := r.URL.Query().Get("provinceCode")
		if code == "32" {
			slowInFlight <- struct{}{}
			<-releaseSlow
		}
		w.Write([]byte(municipalitiesPayload(code)))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL))
	loader.LoadProvinces(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		loader.SelectProvince(context.Background(), "Santo Domingo")
	}()

	// Second selection lands while the first fetch is still blocked.
	<-slowInFlight
	loader.SelectProvince(context.Background(), "Santiago")
	close(releaseSlow)
	wg.Wait()

	municipalities := loader.Municipalities()
	require.Len(t, municipalities, 1)
	assert.Equal(t, "Santiago de los Caballeros", municipalities[0].Name)
}

// Clearing the selection while a municipality fetch is still in flight must
// reset the loading flag, not leave it stuck until some later fetch.
func TestLoader_ClearWhileFetchInFlightResetsLoading(t *testing.T) {
	releaseSlow := make(chan struct{})
	slowInFlight := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/provinces" {
			w.Write([]byte(provincesPayload))
			return
		}
		slowInFlight <- struct{}{}
		<-releaseSlow
		w.Write([]byte(municipalitiesPayload(r.URL.Query().Get("provinceCode"))))
	}))
	defer server.Close()

	loader := NewLoader(NewClient(server.URL))
	loader.LoadProvinces(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		loader.SelectProvince(context.Background(), "Santo Domingo")
	}()

	<-slowInFlight
	loader.SelectProvince(context.Background(), "")
	close(releaseSlow)
	wg.Wait()

	assert.False(t, loader.LoadingMunicipalities())
	assert.Empty(t, loader.Municipalities())
	assert.Equal(t, "", loader.SelectedProvince())
}

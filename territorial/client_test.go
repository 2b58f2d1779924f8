package territorial

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProvinces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/provinces", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"name":"Santo Domingo","code":"32"},{"name":"Santiago","code":"25"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	provinces, err := client.GetProvinces(context.Background())

	require.NoError(t, err)
	require.Len(t, provinces, 2)
	assert.Equal(t, "Santo Domingo", provinces[0].Name)
	assert.Equal(t, "25", provinces[1].Code)
}

func TestGetProvinceMunicipalities_Array(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/municipalities", r.URL.Path)
		require.Equal(t, "32", r.URL.Query().Get("provinceCode"))
		w.Write([]byte(`{"data":[{"name":"Santo Domingo Este","code":"01"},{"name":"Los Alcarrizos","code":"02"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	municipalities, err := client.GetProvinceMunicipalities(context.Background(), "32")

	require.NoError(t, err)
	require.Len(t, municipalities, 2)
	assert.Equal(t, "Los Alcarrizos", municipalities[1].Name)
}

func TestGetProvinceMunicipalities_SingleObjectPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"name":"Pedernales","code":"01"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	municipalities, err := client.GetProvinceMunicipalities(context.Background(), "16")

	require.NoError(t, err)
	require.Len(t, municipalities, 1)
	assert.Equal(t, "Pedernales", municipalities[0].Name)
}

func TestGet_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetProvinces(context.Background())

	assert.Error(t, err)
}

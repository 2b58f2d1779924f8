package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedServer(t *testing.T, validToken string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Access token expired","error":true,"Error":"ERR_JWT"}`))
			return
		}
		w.Write([]byte(`{"message":"ok","data":{"value":1}}`))
	}))
}

func TestTransportAttachesBearerToken(t *testing.T) {
	server := newAuthedServer(t, "valid")
	defer server.Close()

	httpClient := &http.Client{Transport: &Transport{
		Session: NewSession("valid"),
		Refresh: func() (string, error) {
			t.Fatal("refresh must not run for a valid token")
			return "", nil
		},
	}}

	resp, err := httpClient.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTransportRefreshesOnExpiredToken(t *testing.T) {
	server := newAuthedServer(t, "fresh")
	defer server.Close()

	var refreshes int32
	httpClient := &http.Client{Transport: &Transport{
		Session: NewSession("stale"),
		Refresh: func() (string, error) {
			atomic.AddInt32(&refreshes, 1)
			return "fresh", nil
		},
	}}

	resp, err := httpClient.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
}

func TestTransportRetriesAtMostOnce(t *testing.T) {
	// every token is rejected, so the retry fails too
	server := newAuthedServer(t, "never-issued")
	defer server.Close()

	var refreshes int32
	httpClient := &http.Client{Transport: &Transport{
		Session: NewSession("stale"),
		Refresh: func() (string, error) {
			atomic.AddInt32(&refreshes, 1)
			return "still-stale", nil
		},
	}}

	resp, err := httpClient.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
}

func TestTransportClearsSessionWhenRefreshFails(t *testing.T) {
	server := newAuthedServer(t, "fresh")
	defer server.Close()

	session := NewSession("stale")
	httpClient := &http.Client{Transport: &Transport{
		Session: session,
		Refresh: func() (string, error) {
			return "", errors.New("refresh cookie revoked")
		},
	}}

	_, err := httpClient.Get(server.URL) //nolint:bodyclose
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, session.Token())
}

func TestTransportSharesConcurrentRefresh(t *testing.T) {
	server := newAuthedServer(t, "fresh")
	defer server.Close()

	var refreshes int32
	httpClient := &http.Client{Transport: &Transport{
		Session: NewSession("stale"),
		Refresh: func() (string, error) {
			atomic.AddInt32(&refreshes, 1)
			return "fresh", nil
		},
	}}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := httpClient.Get(server.URL)
			if err == nil {
				resp.Body.Close()
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
}

func TestTransportPassesThroughOtherErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Forbidden","error":true}`))
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: &Transport{
		Session: NewSession("valid"),
		Refresh: func() (string, error) {
			t.Fatal("refresh must not run for non-expiry errors")
			return "", nil
		},
	}}

	resp, err := httpClient.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

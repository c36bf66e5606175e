package drpclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/v1/", 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestActiveIncidents(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/incidents/active", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"incidents":[{"id":"6f1c0a52-3f9e-4a8e-9a53-0d3c2b8b7a10","lat":43.2,"lng":76.9,"type_name":"Fire","is_fake":false}]}`))
	})

	got, err := c.ActiveIncidents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Fire", got[0].TypeName)
	assert.Equal(t, 43.2, got[0].Lat)
}

func TestShelters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/shelters", r.URL.Path)
		_, _ = w.Write([]byte(`{"shelters":[{"id":"6f1c0a52-3f9e-4a8e-9a53-0d3c2b8b7a10","title":"Gym","lat":1,"lng":2,"capacity":50}]}`))
	})

	got, err := c.Shelters(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gym", got[0].Title)
	assert.Equal(t, 50, got[0].Capacity)
}

func TestAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("Too Many Requests"))
	})

	_, err := c.ActiveIncidents(context.Background())
	assert.ErrorContains(t, err, "status 429")
}

package system

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemHealth(t *testing.T) {
	h := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	rec := httptest.NewRecorder()
	h.SystemHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSystemReady(t *testing.T) {
	healthy := PingFunc(func(context.Context) error { return nil })
	broken := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	h := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), map[string]Pinger{
		"postgres": healthy,
		"redis":    healthy,
	})
	rec := httptest.NewRecorder()
	h.SystemReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())

	h = NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), map[string]Pinger{
		"postgres": healthy,
		"redis":    broken,
	})
	rec = httptest.NewRecorder()
	h.SystemReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"not ready","errors":{"redis":"connection refused"}}`, rec.Body.String())
}

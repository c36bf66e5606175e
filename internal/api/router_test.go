package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"drp/internal/api/handlers/http/admin"
	mock_admin "drp/internal/api/handlers/http/admin/mocks"
	"drp/internal/api/handlers/http/public"
	mock_public "drp/internal/api/handlers/http/public/mocks"
	"drp/internal/api/handlers/http/system"
	"drp/internal/config"
	"drp/internal/domain"
	"drp/internal/middleware"
)

func newTestRouter(t *testing.T) (http.Handler, *mock_public.MockIncidents, *mock_admin.MockShelterManager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))

	incidents := mock_public.NewMockIncidents(ctrl)
	shelters := mock_admin.NewMockShelterManager(ctrl)

	cfg := &config.Config{
		Http:   config.HttpConfig{RateLimitRPS: 100, RateLimitBurst: 100, CORSOrigins: []string{"*"}},
		APIKey: "test-key",
	}

	pub := public.NewHandler(logger, incidents,
		mock_public.NewMockLocations(ctrl), mock_public.NewMockTokens(ctrl), mock_public.NewMockShelters(ctrl),
		mock_public.NewMockRoutes(ctrl), mock_public.NewMockNotifications(ctrl))
	adm := admin.NewHandler(logger, mock_admin.NewMockIncidentFlagger(ctrl), shelters)
	sys := system.NewHandler(logger, nil)

	return InitRouter(cfg, adm, pub, sys, logger), incidents, shelters
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics: expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestRouter_ActiveIncidents(t *testing.T) {
	r, incidents, _ := newTestRouter(t)
	incidents.EXPECT().ListActive(gomock.Any()).Return([]*domain.Incident{{ID: uuid.New()}}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/incidents/active", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestRouter_AdminRequiresAPIKey(t *testing.T) {
	r, _, shelters := newTestRouter(t)

	id := uuid.New()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/shelters/"+id.String(), nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}

	shelters.EXPECT().Delete(gomock.Any(), id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/shelters/"+id.String(), nil)
	req.Header.Set(middleware.APIKeyHeader, "test-key")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}
}

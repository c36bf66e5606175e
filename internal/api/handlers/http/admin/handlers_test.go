package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"drp/internal/api/handlers/http/admin"
	mock_admin "drp/internal/api/handlers/http/admin/mocks"
	"drp/internal/domain"
	"drp/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAdminIncidentMarkFake_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockIncidentFlagger(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents, mock_admin.NewMockShelterManager(ctrl))

	id := uuid.New()
	incidents.EXPECT().MarkFake(gomock.Any(), id, true).Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/incidents/"+id.String()+"/fake", bytes.NewBufferString(`{"is_fake":true}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()
	h.AdminIncidentMarkFake(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminIncidentMarkFake_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_admin.NewMockIncidentFlagger(ctrl)
	h := admin.NewHandler(newTestLogger(), incidents, mock_admin.NewMockShelterManager(ctrl))

	id := uuid.New()
	incidents.EXPECT().MarkFake(gomock.Any(), id, false).Return(e.ErrNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{"is_fake":false}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()
	h.AdminIncidentMarkFake(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestAdminIncidentMarkFake_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockIncidentFlagger(ctrl), mock_admin.NewMockShelterManager(ctrl))

	req := addChiURLParam(httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{"is_fake":true}`)), "id", "123")
	rr := httptest.NewRecorder()
	h.AdminIncidentMarkFake(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAdminShelterCreate_Created(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shelters := mock_admin.NewMockShelterManager(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockIncidentFlagger(ctrl), shelters)

	want := &domain.Shelter{ID: uuid.New(), Title: "School #12", Lat: 43.25, Lng: 76.95, Capacity: 300}
	shelters.EXPECT().
		Create(gomock.Any(), domain.CreateShelterRequest{Title: "School #12", Lat: 43.25, Lng: 76.95, Capacity: 300}).
		Return(want, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/shelters",
		bytes.NewBufferString(`{"title":"School #12","lat":43.25,"lng":76.95,"capacity":300}`))
	rr := httptest.NewRecorder()
	h.AdminShelterCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	var got domain.Shelter
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != want.ID {
		t.Fatalf("id = %s, want %s", got.ID, want.ID)
	}
}

func TestAdminShelterCreate_Validation_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockIncidentFlagger(ctrl), mock_admin.NewMockShelterManager(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/shelters", bytes.NewBufferString(`{"title":"","lat":43.25,"lng":76.95}`))
	rr := httptest.NewRecorder()
	h.AdminShelterCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAdminShelterDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shelters := mock_admin.NewMockShelterManager(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockIncidentFlagger(ctrl), shelters)

	id := uuid.New()
	shelters.EXPECT().Delete(gomock.Any(), id).Return(nil)

	req := addChiURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id.String())
	rr := httptest.NewRecorder()
	h.AdminShelterDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}
}

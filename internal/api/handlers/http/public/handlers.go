package public

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"drp/internal/domain"
	"drp/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Incidents interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error)
	ListActive(ctx context.Context) ([]*domain.Incident, error)
	ListNear(ctx context.Context, p domain.Point) ([]*domain.Incident, error)
}

type Locations interface {
	UpdateLive(ctx context.Context, req domain.LiveLocationRequest) error
	UpdateGuest(ctx context.Context, req domain.GuestLocationRequest) error
	SaveManual(ctx context.Context, req domain.ManualLocationRequest) (*domain.ManualLocation, error)
}

type Tokens interface {
	Register(ctx context.Context, req domain.RegisterTokenRequest) error
	Unregister(ctx context.Context, kind domain.OwnerKind, deviceID string) error
}

type Shelters interface {
	List(ctx context.Context) ([]domain.Shelter, error)
}

type Routes interface {
	Evacuation(ctx context.Context, p domain.Point) (*domain.EvacuationResult, error)
	ToShelter(ctx context.Context, p domain.Point) (*domain.ShelterRoute, error)
}

type Notifications interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationRecord, error)
}

type Handler struct {
	logger        *slog.Logger
	Incidents     Incidents
	Locations     Locations
	Tokens        Tokens
	Shelters      Shelters
	Routes        Routes
	Notifications Notifications
}

func NewHandler(
	logger *slog.Logger,
	incidents Incidents,
	locations Locations,
	tokens Tokens,
	shelters Shelters,
	routes Routes,
	notifications Notifications,
) *Handler {
	return &Handler{
		logger:        logger,
		Incidents:     incidents,
		Locations:     locations,
		Tokens:        tokens,
		Shelters:      shelters,
		Routes:        routes,
		Notifications: notifications,
	}
}

func (h *Handler) IncidentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateIncidentRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	inc, err := h.Incidents.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident reported",
		slog.String("id", inc.ID.String()),
		slog.String("type", inc.TypeName),
		slog.String("severity", string(inc.Severity)),
	)
	h.writeJSON(w, http.StatusCreated, inc)
}

func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	page := parseInt(r.URL.Query().Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	incidents, total, err := h.Incidents.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.ListIncidentsResponse{
		Incidents: nonNil(incidents),
		Page:      page,
		Limit:     limit,
		Total:     total,
	})
}

func (h *Handler) IncidentListActive(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.Incidents.ListActive(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"incidents": nonNil(incidents)})
}

func (h *Handler) IncidentListNear(w http.ResponseWriter, r *http.Request) {
	p, ok := parsePoint(r)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng query parameters required"})
		return
	}

	incidents, err := h.Incidents.ListNear(r.Context(), p)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"incidents": nonNil(incidents)})
}

func (h *Handler) IncidentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	inc, err := h.Incidents.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, key)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parsePoint(r *http.Request) (domain.Point, bool) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return domain.Point{}, false
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		return domain.Point{}, false
	}
	return domain.Point{Lat: lat, Lng: lng}, true
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

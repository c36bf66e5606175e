package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"drp/internal/domain"
	"drp/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IncidentFlagger interface {
	MarkFake(ctx context.Context, id uuid.UUID, fake bool) error
}

type ShelterManager interface {
	Create(ctx context.Context, req domain.CreateShelterRequest) (*domain.Shelter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	logger    *slog.Logger
	Incidents IncidentFlagger
	Shelters  ShelterManager
}

func NewHandler(logger *slog.Logger, incidents IncidentFlagger, shelters ShelterManager) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
		Shelters:  shelters,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AdminIncidentMarkFake flags or unflags an incident. Fake incidents drop out
// of the active set and stop producing hit areas.
func (h *Handler) AdminIncidentMarkFake(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.MarkFakeRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Incidents.MarkFake(r.Context(), id, req.IsFake); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident flag updated", slog.String("id", id.String()), slog.Bool("is_fake", req.IsFake))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminShelterCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateShelterRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		l.Warn("invalid shelter", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sh, err := h.Shelters.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("shelter created", slog.String("id", sh.ID.String()), slog.String("title", sh.Title))
	h.writeJSON(w, http.StatusCreated, sh)
}

func (h *Handler) AdminShelterDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Shelters.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("shelter deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

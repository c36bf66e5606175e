package public

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"drp/internal/domain"
	"drp/internal/middleware"
)

func (h *Handler) LocationLive(w http.ResponseWriter, r *http.Request) {
	var req domain.LiveLocationRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Locations.UpdateLive(r.Context(), req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LocationGuest(w http.ResponseWriter, r *http.Request) {
	var req domain.GuestLocationRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Locations.UpdateGuest(r.Context(), req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LocationManual(w http.ResponseWriter, r *http.Request) {
	var req domain.ManualLocationRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	loc, err := h.Locations.SaveManual(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, loc)
}

func (h *Handler) PushTokenRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterTokenRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Tokens.Register(r.Context(), req); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PushTokenDelete removes the token of {deviceId}; owner_kind defaults to user.
func (h *Handler) PushTokenDelete(w http.ResponseWriter, r *http.Request) {
	kind := domain.OwnerKind(r.URL.Query().Get("owner_kind"))
	if kind == "" {
		kind = domain.OwnerUser
	}
	if err := h.Tokens.Unregister(r.Context(), kind, chi.URLParam(r, "deviceId")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) NotificationList(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		h.log(r).Warn("invalid user_id", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
		return
	}

	records, err := h.Notifications.ListByUser(r.Context(), userID, parseInt(r.URL.Query().Get("limit"), 0))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"notifications": nonNil(records)})
}

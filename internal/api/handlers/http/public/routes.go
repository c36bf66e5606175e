package public

import (
	"log/slog"
	"net/http"

	"drp/internal/domain"
	"drp/internal/middleware"
)

func (h *Handler) ShelterList(w http.ResponseWriter, r *http.Request) {
	shelters, err := h.Shelters.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"shelters": nonNil(shelters)})
}

func (h *Handler) RouteEvacuation(w http.ResponseWriter, r *http.Request) {
	var req domain.RouteRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Routes.Evacuation(r.Context(), domain.Point{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("evacuation route planned",
		slog.Float64("distance_m", res.Metrics.Distance),
		slog.Float64("duration_s", res.Metrics.Duration),
	)
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) RouteShelter(w http.ResponseWriter, r *http.Request) {
	var req domain.RouteRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	res, err := h.Routes.ToShelter(r.Context(), domain.Point{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("shelter route planned", slog.String("shelter_id", res.Shelter.ID.String()))
	h.writeJSON(w, http.StatusOK, res)
}

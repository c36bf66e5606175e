package service

import (
	"context"
	"log/slog"

	"drp/internal/domain"
	"drp/internal/hitarea"
	"drp/pkg/e"
	"drp/pkg/validator"
)

type routeService struct {
	incidents     IncidentService
	shelters      ShelterRepository
	planner       RoutePlanner
	hitAreaRadius float64
	logger        *slog.Logger
}

// NewRouteService plans against the same active incident set field devices
// poll, turned into hit areas of hitAreaRadius meters.
func NewRouteService(incidents IncidentService, shelters ShelterRepository, planner RoutePlanner, hitAreaRadius float64, logger *slog.Logger) RouteService {
	if hitAreaRadius <= 0 {
		hitAreaRadius = hitarea.DefaultRadiusMeters
	}
	return &routeService{
		incidents:     incidents,
		shelters:      shelters,
		planner:       planner,
		hitAreaRadius: hitAreaRadius,
		logger:        logger.With(slog.String("component", "route_service")),
	}
}

func (s *routeService) Evacuation(ctx context.Context, p domain.Point) (*domain.EvacuationResult, error) {
	if err := validator.ValidateStruct(p); err != nil {
		return nil, e.ErrInvalidCoordinates
	}
	areas, err := s.hitAreas(ctx)
	if err != nil {
		return nil, err
	}
	return s.planner.EvacuationRoute(ctx, p, areas)
}

func (s *routeService) ToShelter(ctx context.Context, p domain.Point) (*domain.ShelterRoute, error) {
	if err := validator.ValidateStruct(p); err != nil {
		return nil, e.ErrInvalidCoordinates
	}
	areas, err := s.hitAreas(ctx)
	if err != nil {
		return nil, err
	}
	shelters, err := s.shelters.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.planner.SafeRouteToShelter(ctx, p, shelters, areas)
}

func (s *routeService) hitAreas(ctx context.Context) ([]domain.HitArea, error) {
	active, err := s.incidents.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	incidents := make([]domain.Incident, 0, len(active))
	for _, inc := range active {
		if inc != nil {
			incidents = append(incidents, *inc)
		}
	}
	areas := hitarea.BuildHitAreas(incidents, s.hitAreaRadius)
	s.logger.Debug("hit areas built", slog.Int("count", len(areas)))
	return areas, nil
}

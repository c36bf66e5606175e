// Package evacuation plans walking routes out of danger zones and to shelters.
package evacuation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"drp/internal/domain"
	"drp/internal/geo"
	"drp/pkg/e"
)

//go:generate mockgen -source=planner.go -destination=mocks/mock.go

// RouteProvider computes a walking route between two points, steering around
// the given polygons when any are supplied.
type RouteProvider interface {
	Route(ctx context.Context, start, end domain.Point, avoid []domain.Polygon) (*domain.Route, error)
}

type Planner struct {
	router       RouteProvider
	borderPoints int
	logger       *slog.Logger
}

func NewPlanner(router RouteProvider, logger *slog.Logger) *Planner {
	return &Planner{
		router:       router,
		borderPoints: geo.DefaultCirclePoints,
		logger:       logger,
	}
}

type candidate struct {
	point domain.LonLat
	route *domain.Route
}

// EvacuationRoute finds the fastest walking route from user to the border of
// the closest hit area. Border samples lying inside another hit area are
// skipped. It returns e.ErrNoSafeBorderPoint when every sample is unsafe and
// e.ErrNoRoute when no sample could be routed.
func (p *Planner) EvacuationRoute(ctx context.Context, user domain.Point, hitAreas []domain.HitArea) (*domain.EvacuationResult, error) {
	const op = "evacuation.Planner.EvacuationRoute"

	closest, idx, dist, ok := geo.ClosestHitArea(user, hitAreas)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNoHitAreas)
	}

	border := geo.GenerateCirclePoints(closest.Lat, closest.Lng, closest.Radius, p.borderPoints)

	others := make([]domain.HitArea, 0, len(hitAreas)-1)
	for i, h := range hitAreas {
		if i != idx {
			others = append(others, h)
		}
	}

	safe := make([]domain.LonLat, 0, len(border))
	for _, pt := range border {
		if !geo.IsInHitArea(pt.Lat(), pt.Lng(), others) {
			safe = append(safe, pt)
		}
	}
	if len(safe) == 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNoSafeBorderPoint)
	}

	results := make([]*domain.Route, len(safe))
	var g errgroup.Group
	for i, pt := range safe {
		g.Go(func() error {
			route, err := p.router.Route(ctx, user, pt.Point(), nil)
			if err != nil {
				p.logger.Debug("border point unreachable",
					slog.Int("sample", i),
					slog.Any("error", err),
				)
				return nil
			}
			results[i] = route
			return nil
		})
	}
	_ = g.Wait()

	var best *candidate
	for i, route := range results {
		if route == nil {
			continue
		}
		if best == nil || better(route.Metrics, best.route.Metrics) {
			best = &candidate{point: safe[i], route: route}
		}
	}
	if best == nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, errors.Join(e.ErrNoRoute, err))
		}
		return nil, fmt.Errorf("%s: %w", op, e.ErrNoRoute)
	}

	return &domain.EvacuationResult{
		Route:       best.route,
		BorderPoint: best.point,
		HitArea:     closest,
		Distance:    dist,
		Metrics:     best.route.Metrics,
	}, nil
}

// better orders routes by duration, then distance.
func better(a, b domain.RouteMetrics) bool {
	if a.Duration != b.Duration {
		return a.Duration < b.Duration
	}
	return a.Distance < b.Distance
}

// SafeRouteToShelter tries shelters nearest first and returns the first one
// reachable while avoiding every hit area.
func (p *Planner) SafeRouteToShelter(ctx context.Context, user domain.Point, shelters []domain.Shelter, hitAreas []domain.HitArea) (*domain.ShelterRoute, error) {
	const op = "evacuation.Planner.SafeRouteToShelter"

	if len(shelters) == 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNoShelters)
	}

	avoid := geo.HitAreasToPolygons(hitAreas)

	type ranked struct {
		shelter  domain.Shelter
		distance float64
	}
	sorted := make([]ranked, 0, len(shelters))
	for _, s := range shelters {
		sorted = append(sorted, ranked{shelter: s, distance: geo.Distance(user, s.Location())})
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].distance < sorted[j].distance })

	for _, r := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, errors.Join(e.ErrNoRoute, err))
		}
		route, err := p.router.Route(ctx, user, r.shelter.Location(), avoid)
		if err != nil {
			p.logger.Debug("shelter unreachable",
				slog.String("shelter_id", r.shelter.ID.String()),
				slog.Float64("distance_m", r.distance),
				slog.Any("error", err),
			)
			continue
		}
		return &domain.ShelterRoute{Route: route, Shelter: r.shelter}, nil
	}

	return nil, fmt.Errorf("%s: %w", op, e.ErrNoRoute)
}

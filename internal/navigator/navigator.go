// Package navigator drives the live evacuation map: it classifies location
// fixes against hit areas and requests evacuation or shelter routes.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"drp/internal/domain"
	"drp/internal/hitarea"
)

//go:generate mockgen -source=navigator.go -destination=mocks/mock.go

const DefaultRouteTimeout = 15 * time.Second

type WatchOptions struct {
	EnableHighAccuracy   bool
	DistanceFilterMeters float64
	MinInterval          time.Duration
}

// LocationSource streams device positions.
type LocationSource interface {
	Current(ctx context.Context) (domain.Point, error)
	Watch(ctx context.Context, opts WatchOptions) (<-chan domain.Point, error)
	Stop() error
}

type Planner interface {
	EvacuationRoute(ctx context.Context, user domain.Point, hitAreas []domain.HitArea) (*domain.EvacuationResult, error)
	SafeRouteToShelter(ctx context.Context, user domain.Point, shelters []domain.Shelter, hitAreas []domain.HitArea) (*domain.ShelterRoute, error)
}

type Config struct {
	HitAreaRadius    float64
	ArrivalThreshold float64
	RouteTimeout     time.Duration
	Watch            WatchOptions
}

type Navigator struct {
	machine *Machine
	planner Planner
	source  LocationSource
	clock   clockwork.Clock
	cfg     Config
	logger  *slog.Logger

	onChange func(Snapshot)

	events   chan func() []Command
	done     chan struct{}
	inflight sync.WaitGroup
}

func New(cfg Config, planner Planner, source LocationSource, clock clockwork.Clock, logger *slog.Logger) *Navigator {
	if cfg.HitAreaRadius <= 0 {
		cfg.HitAreaRadius = hitarea.DefaultRadiusMeters
	}
	if cfg.RouteTimeout <= 0 {
		cfg.RouteTimeout = DefaultRouteTimeout
	}
	n := &Navigator{
		machine: NewMachine(cfg.ArrivalThreshold),
		planner: planner,
		source:  source,
		clock:   clock,
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "navigator")),
		events:  make(chan func() []Command, 16),
		done:    make(chan struct{}),
	}
	n.machine.OnTransition = func(from, to State) {
		n.logger.Info("state changed",
			slog.String("from", string(from)),
			slog.String("to", string(to)),
		)
	}
	return n
}

// OnChange registers a callback invoked from the navigator goroutine after
// every processed event. It must be set before Run and must not call
// Snapshot.
func (n *Navigator) OnChange(fn func(Snapshot)) { n.onChange = fn }

// Run watches the location source and processes events until ctx is done.
// The watch is stopped on return.
func (n *Navigator) Run(ctx context.Context) error {
	defer close(n.done)

	fixes, err := n.source.Watch(ctx, n.cfg.Watch)
	if err != nil {
		return fmt.Errorf("watch location: %w", err)
	}
	defer func() {
		if err := n.source.Stop(); err != nil {
			n.logger.Warn("stop location watch", slog.Any("error", err))
		}
		n.inflight.Wait()
	}()

	if p, err := n.source.Current(ctx); err == nil {
		n.apply(ctx, func() []Command { return n.machine.OnLocation(p) })
	} else if !errors.Is(err, context.Canceled) {
		n.logger.Debug("no initial fix", slog.Any("error", err))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-fixes:
			if !ok {
				fixes = nil
				continue
			}
			n.apply(ctx, func() []Command { return n.machine.OnLocation(p) })
		case ev := <-n.events:
			n.apply(ctx, ev)
		}
	}
}

func (n *Navigator) UpdateIncidents(incidents []domain.Incident) {
	areas := hitarea.BuildHitAreas(incidents, n.cfg.HitAreaRadius)
	n.send(func() []Command {
		n.machine.SetHitAreas(areas)
		return nil
	})
}

func (n *Navigator) UpdateShelters(shelters []domain.Shelter) {
	n.send(func() []Command {
		n.machine.SetShelters(shelters)
		return nil
	})
}

func (n *Navigator) AnswerPrompt(accept bool) {
	n.send(func() []Command { return n.machine.AnswerPrompt(accept) })
}

func (n *Navigator) Recalculate() {
	n.send(n.machine.Recalculate)
}

// Snapshot returns the current state. ok is false once the navigator stopped.
func (n *Navigator) Snapshot() (snap Snapshot, ok bool) {
	reply := make(chan Snapshot, 1)
	if !n.send(func() []Command {
		reply <- n.machine.Snapshot()
		return nil
	}) {
		return Snapshot{}, false
	}
	select {
	case snap = <-reply:
		return snap, true
	case <-n.done:
		return Snapshot{}, false
	}
}

func (n *Navigator) send(ev func() []Command) bool {
	select {
	case n.events <- ev:
		return true
	case <-n.done:
		return false
	}
}

func (n *Navigator) apply(ctx context.Context, ev func() []Command) {
	for _, cmd := range ev() {
		n.dispatch(ctx, cmd)
	}
	if n.onChange != nil {
		n.onChange(n.machine.Snapshot())
	}
}

// dispatch runs a planner call off the event loop and feeds the result back
// as an event tagged with the command generation.
func (n *Navigator) dispatch(ctx context.Context, cmd Command) {
	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()

		rctx, cancel := context.WithTimeout(ctx, n.cfg.RouteTimeout)
		defer cancel()

		started := n.clock.Now()
		var result func() []Command
		switch cmd.Kind {
		case RequestEvacuation:
			res, err := n.planner.EvacuationRoute(rctx, cmd.From, cmd.HitAreas)
			n.logResult("evacuation", cmd, started, err)
			result = func() []Command {
				if !n.machine.OnEvacuationResult(cmd.Generation, res, err) {
					n.logger.Debug("stale evacuation result dropped", slog.Uint64("generation", cmd.Generation))
				}
				return nil
			}
		case RequestShelterRoute:
			res, err := n.planner.SafeRouteToShelter(rctx, cmd.From, cmd.Shelters, cmd.HitAreas)
			n.logResult("shelter", cmd, started, err)
			result = func() []Command {
				if !n.machine.OnShelterResult(cmd.Generation, res, err) {
					n.logger.Debug("stale shelter result dropped", slog.Uint64("generation", cmd.Generation))
				}
				return nil
			}
		default:
			return
		}

		select {
		case n.events <- result:
		case <-ctx.Done():
		}
	}()
}

func (n *Navigator) logResult(kind string, cmd Command, started time.Time, err error) {
	attrs := []any{
		slog.String("kind", kind),
		slog.Uint64("generation", cmd.Generation),
		slog.Duration("took", n.clock.Since(started)),
	}
	if err != nil {
		n.logger.Warn("route computation failed", append(attrs, slog.Any("error", err))...)
		return
	}
	n.logger.Info("route computed", attrs...)
}

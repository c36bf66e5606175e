package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

//go:generate mockgen -source=guest_janitor.go -destination=mocks/guest_janitor_mock.go

type GuestStore interface {
	DeleteInactiveGuests(ctx context.Context, before time.Time) (int64, error)
}

// GuestJanitor periodically drops guests that have not reported a position
// for longer than maxIdle.
type GuestJanitor struct {
	store    GuestStore
	interval time.Duration
	maxIdle  time.Duration
	clock    clockwork.Clock
	logger   *slog.Logger
}

func NewGuestJanitor(store GuestStore, interval, maxIdle time.Duration, clock clockwork.Clock, logger *slog.Logger) *GuestJanitor {
	return &GuestJanitor{store: store, interval: interval, maxIdle: maxIdle, clock: clock, logger: logger}
}

func (j *GuestJanitor) Run(ctx context.Context) {
	ticker := j.clock.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			j.Sweep(ctx)
		}
	}
}

// Sweep runs one cleanup pass.
func (j *GuestJanitor) Sweep(ctx context.Context) {
	n, err := j.store.DeleteInactiveGuests(ctx, j.clock.Now().UTC().Add(-j.maxIdle))
	if err != nil {
		j.logger.Warn("guest cleanup failed", slog.Any("error", err))
		return
	}
	if n > 0 {
		j.logger.Info("inactive guests removed", slog.Int64("count", n))
	}
}

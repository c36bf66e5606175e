package workers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"

	"drp/internal/workers"
	mock_workers "drp/internal/workers/mocks"
)

func TestGuestJanitor_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 9, 14, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	store := mock_workers.NewMockGuestStore(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	janitor := workers.NewGuestJanitor(store, time.Hour, 30*24*time.Hour, clock, logger)

	store.EXPECT().DeleteInactiveGuests(gomock.Any(), now.Add(-30*24*time.Hour)).Return(int64(3), nil)
	janitor.Sweep(context.Background())

	store.EXPECT().DeleteInactiveGuests(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
	janitor.Sweep(context.Background())
}

func TestGuestJanitor_RunTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := clockwork.NewFakeClock()
	store := mock_workers.NewMockGuestStore(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	janitor := workers.NewGuestJanitor(store, time.Hour, time.Hour, clock, logger)

	swept := make(chan struct{}, 1)
	store.EXPECT().
		DeleteInactiveGuests(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			swept <- struct{}{}
			return 0, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		janitor.Run(ctx)
		close(done)
	}()

	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("ticker never registered: %v", err)
	}
	clock.Advance(time.Hour)

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatalf("expected a sweep after one interval")
	}

	cancel()
	<-done
}

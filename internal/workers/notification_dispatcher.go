package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"drp/internal/domain"
	"drp/pkg/e"
)

//go:generate mockgen -source=notification_dispatcher.go -destination=mocks/mock.go

type JobQueue interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.NotificationJob, error)
}

type Notifier interface {
	TriggerNotification(ctx context.Context, req domain.NotificationRequest)
}

const (
	defaultPopTimeout = 5 * time.Second
	errorBackoff      = 500 * time.Millisecond
)

// NotificationDispatcher drains the notification queue with a fixed pool of
// workers. Each job runs on a context detached from the worker so shutdown
// does not cut a fan-out in half; jobTimeout bounds it instead.
type NotificationDispatcher struct {
	queue      JobQueue
	notifier   Notifier
	poolSize   int
	jobTimeout time.Duration
	popTimeout time.Duration
	logger     *slog.Logger
}

func NewNotificationDispatcher(queue JobQueue, notifier Notifier, poolSize int, jobTimeout time.Duration, logger *slog.Logger) *NotificationDispatcher {
	if poolSize < 1 {
		poolSize = 1
	}
	return &NotificationDispatcher{
		queue:      queue,
		notifier:   notifier,
		poolSize:   poolSize,
		jobTimeout: jobTimeout,
		popTimeout: defaultPopTimeout,
		logger:     logger.With(slog.String("component", "notification_dispatcher")),
	}
}

// Run blocks until ctx is done and every worker has returned.
func (d *NotificationDispatcher) Run(ctx context.Context) {
	d.logger.Info("notification dispatcher STARTED", slog.Int("workers", d.poolSize))

	var wg sync.WaitGroup
	for i := 0; i < d.poolSize; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			d.worker(ctx, id)
		}(i)
	}
	wg.Wait()

	d.logger.Info("notification dispatcher STOPPED", slog.String("reason", context.Cause(ctx).Error()))
}

func (d *NotificationDispatcher) worker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := d.queue.BRPop(ctx, d.popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrNotificationQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			d.logger.Error("BRPop failed", slog.Int("worker", id), slog.Any("error", err))
			select {
			case <-time.After(errorBackoff):
			case <-ctx.Done():
				return
			}
			continue
		}

		d.process(ctx, id, job)
	}
}

func (d *NotificationDispatcher) process(ctx context.Context, id int, job domain.NotificationJob) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notification job panicked",
				slog.Int("worker", id),
				slog.String("incident_id", job.IncidentID.String()),
				slog.Any("panic", r),
			)
		}
	}()

	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.jobTimeout)
	defer cancel()

	started := time.Now()
	d.notifier.TriggerNotification(jobCtx, job.Request())
	d.logger.Info("notification job done",
		slog.Int("worker", id),
		slog.String("incident_id", job.IncidentID.String()),
		slog.Duration("queued_for", started.Sub(job.SubmittedAt)),
		slog.Duration("took", time.Since(started)),
	)
}

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"drp/internal/domain"
	"drp/internal/observability"
	"drp/pkg/e"
	"drp/pkg/validator"
)

const (
	DefaultActiveCacheTTL = 5 * time.Minute
	DefaultNearRadius     = 1000.0
)

type IncidentOptions struct {
	ActiveCacheTTL time.Duration
	NearRadius     float64
}

type incidentService struct {
	repo      IncidentRepository
	cache     IncidentCache
	queue     NotificationQueue
	publisher IncidentPublisher
	metrics   *observability.Metrics
	clock     clockwork.Clock
	opts      IncidentOptions
	logger    *slog.Logger
}

// NewIncidentService wires incident storage with the active-incident cache,
// the incident event publisher and the notification queue. publisher may be
// nil when broker publishing is disabled.
func NewIncidentService(
	repo IncidentRepository,
	cache IncidentCache,
	queue NotificationQueue,
	publisher IncidentPublisher,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	opts IncidentOptions,
	logger *slog.Logger,
) IncidentService {
	if opts.ActiveCacheTTL <= 0 {
		opts.ActiveCacheTTL = DefaultActiveCacheTTL
	}
	if opts.NearRadius <= 0 {
		opts.NearRadius = DefaultNearRadius
	}
	return &incidentService{
		repo:      repo,
		cache:     cache,
		queue:     queue,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
		opts:      opts,
		logger:    logger.With(slog.String("component", "incident_service")),
	}
}

// Create stores the incident and hands notification fan-out to the
// background queue. Side-channel failures are logged; the incident is
// still reported as created.
func (s *incidentService) Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	inc := &domain.Incident{
		ID:          uuid.New(),
		Lat:         req.Lat,
		Lng:         req.Lng,
		TypeID:      req.TypeID,
		TypeName:    req.TypeName,
		Severity:    req.Severity,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, inc); err != nil {
		return nil, err
	}

	log := s.logger.With(slog.String("incident_id", inc.ID.String()))

	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn("active cache invalidate failed", slog.Any("error", err))
	}

	if s.publisher != nil {
		if err := s.publisher.PublishIncident(ctx, domain.IncidentEvent{Action: domain.IncidentCreated, Incident: *inc}); err != nil {
			log.Error("publish incident event failed", slog.Any("error", err))
		}
	}

	job := domain.NotificationJob{
		IncidentID:  inc.ID,
		Lat:         inc.Lat,
		Lng:         inc.Lng,
		Type:        inc.TypeName,
		Description: inc.Description,
		SubmittedAt: s.clock.Now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.metrics.QueueErrors.WithLabelValues("enqueue").Inc()
		log.Error("enqueue notification failed", slog.Any("error", err))
	} else {
		s.metrics.QueueEnqueued.Inc()
		log.Info("notification enqueued")
	}

	return inc, nil
}

func (s *incidentService) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	return s.repo.Get(ctx, id)
}

func (s *incidentService) List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error) {
	return s.repo.List(ctx, page, limit)
}

// ListActive serves the non-fake incident set from cache, refilling it from
// storage on a miss.
func (s *incidentService) ListActive(ctx context.Context) ([]*domain.Incident, error) {
	cached, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("active cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	incidents, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetActive(ctx, incidents, s.opts.ActiveCacheTTL); err != nil {
		s.logger.Warn("active cache write failed", slog.Any("error", err))
	}
	return incidents, nil
}

func (s *incidentService) ListNear(ctx context.Context, p domain.Point) ([]*domain.Incident, error) {
	if err := validator.ValidateStruct(p); err != nil {
		return nil, e.ErrInvalidCoordinates
	}
	return s.repo.ListNear(ctx, p, s.opts.NearRadius)
}

func (s *incidentService) MarkFake(ctx context.Context, id uuid.UUID, fake bool) error {
	if err := s.repo.MarkFake(ctx, id, fake); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("active cache invalidate failed", slog.Any("error", err))
	}
	s.logger.Info("incident flagged", slog.String("incident_id", id.String()), slog.Bool("is_fake", fake))
	return nil
}

// Package notifier fans an incident out to every device near it.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"drp/internal/domain"
	"drp/internal/observability"
)

//go:generate mockgen -source=notifier.go -destination=mocks/mock.go

const (
	DefaultSearchRadiusMeters = 1000.0
	DefaultLiveFreshness      = 60 * time.Minute

	fallbackBody = "Stay alert and safe."
)

// LocationFinder answers "who is within radius meters of p".
type LocationFinder interface {
	GuestsNear(ctx context.Context, p domain.Point, radius float64) ([]domain.Guest, error)
	LiveUsersNear(ctx context.Context, p domain.Point, radius float64, since time.Time) ([]domain.LiveLocation, error)
	ManualUsersNear(ctx context.Context, p domain.Point, radius float64) ([]domain.ManualLocation, error)
}

type TokenRegistry interface {
	FindTokens(ctx context.Context, owners []domain.Owner) ([]domain.PushToken, error)
}

type PushSender interface {
	SendMulticast(ctx context.Context, msg domain.PushMessage) (*domain.MulticastResult, error)
}

// AuditStore inserts records independently; a failed row does not stop the
// rest. It returns how many rows were written.
type AuditStore interface {
	InsertNotifications(ctx context.Context, records []domain.NotificationRecord) (int, error)
}

type Config struct {
	SearchRadius  float64
	LiveFreshness time.Duration
}

type Service struct {
	locations LocationFinder
	tokens    TokenRegistry
	push      PushSender
	audit     AuditStore
	clock     clockwork.Clock
	cfg       Config
	metrics   *observability.Metrics
	logger    *slog.Logger
}

func New(
	cfg Config,
	locations LocationFinder,
	tokens TokenRegistry,
	push PushSender,
	audit AuditStore,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Service {
	if cfg.SearchRadius <= 0 {
		cfg.SearchRadius = DefaultSearchRadiusMeters
	}
	if cfg.LiveFreshness <= 0 {
		cfg.LiveFreshness = DefaultLiveFreshness
	}
	return &Service{
		locations: locations,
		tokens:    tokens,
		push:      push,
		audit:     audit,
		clock:     clock,
		cfg:       cfg,
		metrics:   metrics,
		logger:    logger.With(slog.String("component", "notifier")),
	}
}

// TriggerNotification notifies every device near req.Location. It never
// fails: errors are logged and the fan-out stops where it failed.
func (s *Service) TriggerNotification(ctx context.Context, req domain.NotificationRequest) {
	log := s.logger.With(
		slog.String("incident_id", req.IncidentID.String()),
		slog.String("type", req.Type),
	)

	s.metrics.NotificationsTriggered.Inc()
	started := s.clock.Now()
	defer func() {
		s.metrics.NotifierDuration.Observe(s.clock.Since(started).Seconds())
	}()

	if err := s.notify(ctx, req, log); err != nil {
		log.Error("notification fan-out failed", slog.Any("error", err))
	}
}

func (s *Service) notify(ctx context.Context, req domain.NotificationRequest, log *slog.Logger) error {
	users, guests, err := s.findOwners(ctx, req.Location)
	if err != nil {
		return err
	}
	s.metrics.NotificationTargets.WithLabelValues(string(domain.OwnerUser)).Add(float64(len(users)))
	s.metrics.NotificationTargets.WithLabelValues(string(domain.OwnerGuest)).Add(float64(len(guests)))

	tokens, err := s.findTokens(ctx, users, guests)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		log.Info("no devices to notify",
			slog.Int("users", len(users)),
			slog.Int("guests", len(guests)),
		)
		return nil
	}

	msg := buildMessage(req, tokens)
	res, err := s.push.SendMulticast(ctx, msg)
	if err != nil {
		s.metrics.PushResults.WithLabelValues("error").Add(float64(len(msg.Tokens)))
		return fmt.Errorf("send multicast to %d tokens: %w", len(msg.Tokens), err)
	}
	s.logDelivery(log, msg.Tokens, res)

	s.writeAudit(ctx, req.IncidentID, users, log)
	return nil
}

// findOwners runs the three radius queries concurrently and returns unique
// registered users and guests, in first-seen order.
func (s *Service) findOwners(ctx context.Context, p domain.Point) (users, guests []uuid.UUID, err error) {
	var (
		guestLocs  []domain.Guest
		liveLocs   []domain.LiveLocation
		manualLocs []domain.ManualLocation
	)
	since := s.clock.Now().Add(-s.cfg.LiveFreshness)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.locations.GuestsNear(gctx, p, s.cfg.SearchRadius)
		if err != nil {
			return fmt.Errorf("guests near: %w", err)
		}
		guestLocs = res
		return nil
	})
	g.Go(func() error {
		res, err := s.locations.LiveUsersNear(gctx, p, s.cfg.SearchRadius, since)
		if err != nil {
			return fmt.Errorf("live users near: %w", err)
		}
		liveLocs = res
		return nil
	})
	g.Go(func() error {
		res, err := s.locations.ManualUsersNear(gctx, p, s.cfg.SearchRadius)
		if err != nil {
			return fmt.Errorf("manual users near: %w", err)
		}
		manualLocs = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	seenUsers := make(map[uuid.UUID]struct{}, len(liveLocs)+len(manualLocs))
	for _, l := range liveLocs {
		users = appendUnique(users, seenUsers, l.UserID)
	}
	for _, l := range manualLocs {
		users = appendUnique(users, seenUsers, l.UserID)
	}
	seenGuests := make(map[uuid.UUID]struct{}, len(guestLocs))
	for _, gl := range guestLocs {
		guests = appendUnique(guests, seenGuests, gl.ID)
	}
	return users, guests, nil
}

func appendUnique(ids []uuid.UUID, seen map[uuid.UUID]struct{}, id uuid.UUID) []uuid.UUID {
	if _, ok := seen[id]; ok {
		return ids
	}
	seen[id] = struct{}{}
	return append(ids, id)
}

func (s *Service) findTokens(ctx context.Context, users, guests []uuid.UUID) ([]domain.PushToken, error) {
	var userTokens, guestTokens []domain.PushToken

	g, gctx := errgroup.WithContext(ctx)
	if len(users) > 0 {
		g.Go(func() error {
			res, err := s.tokens.FindTokens(gctx, owners(domain.OwnerUser, users))
			if err != nil {
				return fmt.Errorf("user tokens: %w", err)
			}
			userTokens = res
			return nil
		})
	}
	if len(guests) > 0 {
		g.Go(func() error {
			res, err := s.tokens.FindTokens(gctx, owners(domain.OwnerGuest, guests))
			if err != nil {
				return fmt.Errorf("guest tokens: %w", err)
			}
			guestTokens = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return append(userTokens, guestTokens...), nil
}

func owners(kind domain.OwnerKind, ids []uuid.UUID) []domain.Owner {
	out := make([]domain.Owner, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Owner{Kind: kind, ID: id})
	}
	return out
}

func buildMessage(req domain.NotificationRequest, tokens []domain.PushToken) domain.PushMessage {
	list := make([]string, 0, len(tokens))
	for _, t := range tokens {
		list = append(list, t.Token)
	}
	body := req.Description
	if body == "" {
		body = fallbackBody
	}
	return domain.PushMessage{
		Tokens: list,
		Title:  fmt.Sprintf("🚨 %s reported nearby!", req.Type),
		Body:   body,
		Data: map[string]string{
			"type": req.Type,
			"lng":  strconv.FormatFloat(req.Location.Lng, 'f', -1, 64),
			"lat":  strconv.FormatFloat(req.Location.Lat, 'f', -1, 64),
		},
	}
}

func (s *Service) logDelivery(log *slog.Logger, tokens []string, res *domain.MulticastResult) {
	for i, r := range res.Responses {
		if i >= len(tokens) {
			break
		}
		if r.Success {
			s.metrics.PushResults.WithLabelValues("success").Inc()
			log.Debug("push delivered", slog.Int("token_index", i), slog.String("message_id", r.MessageID))
			continue
		}
		s.metrics.PushResults.WithLabelValues("failure").Inc()
		log.Warn("push failed", slog.Int("token_index", i), slog.Any("error", r.Err))
	}
	log.Info("multicast sent",
		slog.Int("tokens", len(tokens)),
		slog.Int("success", res.SuccessCount),
		slog.Int("failure", res.FailureCount),
	)
}

func (s *Service) writeAudit(ctx context.Context, incidentID uuid.UUID, users []uuid.UUID, log *slog.Logger) {
	if len(users) == 0 {
		return
	}
	now := s.clock.Now().UTC()
	records := make([]domain.NotificationRecord, 0, len(users))
	for _, id := range users {
		records = append(records, domain.NotificationRecord{
			UserID:     id,
			IncidentID: incidentID,
			Type:       domain.NotificationNearbyIncident,
			CreatedAt:  now,
		})
	}

	inserted, err := s.audit.InsertNotifications(ctx, records)
	s.metrics.AuditRecords.WithLabelValues("inserted").Add(float64(inserted))
	if failed := len(records) - inserted; failed > 0 {
		s.metrics.AuditRecords.WithLabelValues("failed").Add(float64(failed))
	}
	if err != nil {
		log.Warn("audit insert incomplete",
			slog.Int("inserted", inserted),
			slog.Int("total", len(records)),
			slog.Any("error", err),
		)
	}
}

package postgres

import (
	"context"
	"time"

	"drp/internal/domain"

	"github.com/google/uuid"
)

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error)
	ListActive(ctx context.Context) ([]*domain.Incident, error)
	ListNear(ctx context.Context, p domain.Point, radius float64) ([]*domain.Incident, error)
	MarkFake(ctx context.Context, id uuid.UUID, fake bool) error
}

type ShelterRepository interface {
	Create(ctx context.Context, s *domain.Shelter) error
	List(ctx context.Context) ([]domain.Shelter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LocationRepository interface {
	UpsertLive(ctx context.Context, loc *domain.LiveLocation) error
	UpsertGuest(ctx context.Context, g *domain.Guest) error
	SaveManual(ctx context.Context, loc *domain.ManualLocation) error
	GuestsNear(ctx context.Context, p domain.Point, radius float64) ([]domain.Guest, error)
	LiveUsersNear(ctx context.Context, p domain.Point, radius float64, since time.Time) ([]domain.LiveLocation, error)
	ManualUsersNear(ctx context.Context, p domain.Point, radius float64) ([]domain.ManualLocation, error)
	DeleteInactiveGuests(ctx context.Context, before time.Time) (int64, error)
}

type TokenRepository interface {
	Upsert(ctx context.Context, t *domain.PushToken) error
	Delete(ctx context.Context, kind domain.OwnerKind, deviceID string) error
	FindTokens(ctx context.Context, owners []domain.Owner) ([]domain.PushToken, error)
}

type NotificationRepository interface {
	InsertNotifications(ctx context.Context, records []domain.NotificationRecord) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationRecord, error)
}

var (
	_ IncidentRepository     = (*Incidents)(nil)
	_ ShelterRepository      = (*Shelters)(nil)
	_ LocationRepository     = (*Locations)(nil)
	_ TokenRepository        = (*Tokens)(nil)
	_ NotificationRepository = (*Notifications)(nil)
)

func (p *Postgres) Incidents() IncidentRepository         { return p.Incident }
func (p *Postgres) Shelters() ShelterRepository           { return p.Shelter }
func (p *Postgres) Locations() LocationRepository         { return p.Location }
func (p *Postgres) Tokens() TokenRepository               { return p.Token }
func (p *Postgres) Notifications() NotificationRepository { return p.Notification }

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"drp/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type IncidentService interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error)
	ListActive(ctx context.Context) ([]*domain.Incident, error)
	ListNear(ctx context.Context, p domain.Point) ([]*domain.Incident, error)
	MarkFake(ctx context.Context, id uuid.UUID, fake bool) error
}

type LocationService interface {
	UpdateLive(ctx context.Context, req domain.LiveLocationRequest) error
	UpdateGuest(ctx context.Context, req domain.GuestLocationRequest) error
	SaveManual(ctx context.Context, req domain.ManualLocationRequest) (*domain.ManualLocation, error)
}

type TokenService interface {
	Register(ctx context.Context, req domain.RegisterTokenRequest) error
	Unregister(ctx context.Context, kind domain.OwnerKind, deviceID string) error
}

type ShelterService interface {
	Create(ctx context.Context, req domain.CreateShelterRequest) (*domain.Shelter, error)
	List(ctx context.Context) ([]domain.Shelter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RouteService plans routes server side so the routing key never leaves the
// backend.
type RouteService interface {
	Evacuation(ctx context.Context, p domain.Point) (*domain.EvacuationResult, error)
	ToShelter(ctx context.Context, p domain.Point) (*domain.ShelterRoute, error)
}

type NotificationService interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationRecord, error)
}

// Dependencies.

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, page, limit int) ([]*domain.Incident, int64, error)
	ListActive(ctx context.Context) ([]*domain.Incident, error)
	ListNear(ctx context.Context, p domain.Point, radius float64) ([]*domain.Incident, error)
	MarkFake(ctx context.Context, id uuid.UUID, fake bool) error
}

type IncidentCache interface {
	GetActive(ctx context.Context) ([]*domain.Incident, error)
	SetActive(ctx context.Context, incidents []*domain.Incident, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, job domain.NotificationJob) error
}

type IncidentPublisher interface {
	PublishIncident(ctx context.Context, event domain.IncidentEvent) error
}

type LocationRepository interface {
	UpsertLive(ctx context.Context, loc *domain.LiveLocation) error
	UpsertGuest(ctx context.Context, g *domain.Guest) error
	SaveManual(ctx context.Context, loc *domain.ManualLocation) error
}

type TokenRepository interface {
	Upsert(ctx context.Context, t *domain.PushToken) error
	Delete(ctx context.Context, kind domain.OwnerKind, deviceID string) error
}

type ShelterRepository interface {
	Create(ctx context.Context, s *domain.Shelter) error
	List(ctx context.Context) ([]domain.Shelter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationRecord, error)
}

type RoutePlanner interface {
	EvacuationRoute(ctx context.Context, user domain.Point, hitAreas []domain.HitArea) (*domain.EvacuationResult, error)
	SafeRouteToShelter(ctx context.Context, user domain.Point, shelters []domain.Shelter, hitAreas []domain.HitArea) (*domain.ShelterRoute, error)
}

type Service struct {
	Incidents     IncidentService
	Locations     LocationService
	Tokens        TokenService
	Shelters      ShelterService
	Routes        RouteService
	Notifications NotificationService
}

func NewService(
	incidents IncidentService,
	locations LocationService,
	tokens TokenService,
	shelters ShelterService,
	routes RouteService,
	notifications NotificationService,
) *Service {
	return &Service{
		Incidents:     incidents,
		Locations:     locations,
		Tokens:        tokens,
		Shelters:      shelters,
		Routes:        routes,
		Notifications: notifications,
	}
}

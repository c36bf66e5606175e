package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"drp/internal/domain"
	"drp/pkg/validator"
)

type locationService struct {
	repo   LocationRepository
	clock  clockwork.Clock
	logger *slog.Logger
}

func NewLocationService(repo LocationRepository, clock clockwork.Clock, logger *slog.Logger) LocationService {
	return &locationService{repo: repo, clock: clock, logger: logger}
}

func (s *locationService) UpdateLive(ctx context.Context, req domain.LiveLocationRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return err
	}
	return s.repo.UpsertLive(ctx, &domain.LiveLocation{
		UserID:    req.UserID,
		DeviceID:  req.DeviceID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Timestamp: s.clock.Now().UTC(),
	})
}

func (s *locationService) UpdateGuest(ctx context.Context, req domain.GuestLocationRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return err
	}
	return s.repo.UpsertGuest(ctx, &domain.Guest{
		ID:         req.GuestID,
		Lat:        req.Lat,
		Lng:        req.Lng,
		LastActive: s.clock.Now().UTC(),
	})
}

func (s *locationService) SaveManual(ctx context.Context, req domain.ManualLocationRequest) (*domain.ManualLocation, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	loc := &domain.ManualLocation{
		ID:     uuid.New(),
		UserID: req.UserID,
		Name:   req.Name,
		Lat:    req.Lat,
		Lng:    req.Lng,
	}
	if loc.Name == "" {
		loc.Name = "home"
	}
	if err := s.repo.SaveManual(ctx, loc); err != nil {
		return nil, err
	}
	s.logger.Debug("manual location saved",
		slog.String("user_id", loc.UserID.String()),
		slog.String("name", loc.Name),
	)
	return loc, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"drp/internal/domain"
	"drp/pkg/e"
	"drp/pkg/validator"
)

type tokenService struct {
	repo   TokenRepository
	clock  clockwork.Clock
	logger *slog.Logger
}

func NewTokenService(repo TokenRepository, clock clockwork.Clock, logger *slog.Logger) TokenService {
	return &tokenService{repo: repo, clock: clock, logger: logger}
}

// Register binds a device's push token to its owner. Registering the same
// device again replaces the token.
func (s *tokenService) Register(ctx context.Context, req domain.RegisterTokenRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return err
	}
	err := s.repo.Upsert(ctx, &domain.PushToken{
		Owner:    req.Owner,
		DeviceID: req.DeviceID,
		Token:    req.Token,
		LastUsed: s.clock.Now().UTC(),
	})
	if err != nil {
		return err
	}
	s.logger.Info("push token registered",
		slog.String("owner", req.Owner.String()),
		slog.String("device_id", req.DeviceID),
	)
	return nil
}

func (s *tokenService) Unregister(ctx context.Context, kind domain.OwnerKind, deviceID string) error {
	if !kind.Valid() {
		return e.ErrInvalidOwner
	}
	if deviceID == "" {
		return fmt.Errorf("device_id: %w", e.ErrInvalidInput)
	}
	return s.repo.Delete(ctx, kind, deviceID)
}

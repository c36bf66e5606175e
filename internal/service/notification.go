package service

import (
	"context"

	"github.com/google/uuid"

	"drp/internal/domain"
	"drp/pkg/e"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

type notificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationRecord, error) {
	if userID == uuid.Nil {
		return nil, e.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

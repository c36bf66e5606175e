package service

import (
	"context"

	"github.com/google/uuid"

	"drp/internal/domain"
	"drp/pkg/validator"
)

type shelterService struct {
	repo ShelterRepository
}

func NewShelterService(repo ShelterRepository) ShelterService {
	return &shelterService{repo: repo}
}

func (s *shelterService) Create(ctx context.Context, req domain.CreateShelterRequest) (*domain.Shelter, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	sh := &domain.Shelter{
		ID:       uuid.New(),
		Title:    req.Title,
		Lat:      req.Lat,
		Lng:      req.Lng,
		Capacity: req.Capacity,
	}
	if err := s.repo.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *shelterService) List(ctx context.Context) ([]domain.Shelter, error) {
	return s.repo.List(ctx)
}

func (s *shelterService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

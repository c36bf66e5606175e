package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drp/internal/domain"
	"drp/internal/service"
	mock_service "drp/internal/service/mocks"
	"drp/pkg/e"
)

func TestRouteService_EvacuationBuildsHitAreasFromActiveIncidents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	incidents := mock_service.NewMockIncidentService(ctrl)
	shelters := mock_service.NewMockShelterRepository(ctrl)
	planner := mock_service.NewMockRoutePlanner(ctrl)

	user := domain.Point{Lat: 43.2, Lng: 76.9}
	incidents.EXPECT().ListActive(gomock.Any()).Return([]*domain.Incident{
		{ID: uuid.New(), Lat: 43.2, Lng: 76.9},
		{ID: uuid.New(), Lat: 43.3, Lng: 77.0, IsFake: true},
	}, nil)

	want := &domain.EvacuationResult{Distance: 0}
	planner.EXPECT().
		EvacuationRoute(gomock.Any(), user, []domain.HitArea{{Lat: 43.2, Lng: 76.9, Radius: 500}}).
		Return(want, nil)

	svc := service.NewRouteService(incidents, shelters, planner, 500, discard())
	got, err := svc.Evacuation(context.Background(), user)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestRouteService_ToShelterPassesSheltersAndAreas(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	incidents := mock_service.NewMockIncidentService(ctrl)
	shelters := mock_service.NewMockShelterRepository(ctrl)
	planner := mock_service.NewMockRoutePlanner(ctrl)

	user := domain.Point{Lat: 43.25, Lng: 76.95}
	list := []domain.Shelter{{ID: uuid.New(), Title: "School #12", Lat: 43.26, Lng: 76.96}}

	incidents.EXPECT().ListActive(gomock.Any()).Return([]*domain.Incident{{Lat: 43.2, Lng: 76.9}}, nil)
	shelters.EXPECT().List(gomock.Any()).Return(list, nil)
	planner.EXPECT().
		SafeRouteToShelter(gomock.Any(), user, list, []domain.HitArea{{Lat: 43.2, Lng: 76.9, Radius: 750}}).
		Return(nil, e.ErrNoRoute)

	svc := service.NewRouteService(incidents, shelters, planner, 750, discard())
	_, err := svc.ToShelter(context.Background(), user)
	assert.True(t, e.IsNoRoute(err))
}

func TestRouteService_Errors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	incidents := mock_service.NewMockIncidentService(ctrl)
	planner := mock_service.NewMockRoutePlanner(ctrl)
	svc := service.NewRouteService(incidents, mock_service.NewMockShelterRepository(ctrl), planner, 0, discard())

	_, err := svc.Evacuation(context.Background(), domain.Point{Lat: -91})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinates)

	incidents.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db down"))
	_, err = svc.Evacuation(context.Background(), domain.Point{Lat: 1, Lng: 1})
	assert.ErrorContains(t, err, "db down")
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"drp/internal/domain"
	"drp/internal/service"
	mock_service "drp/internal/service/mocks"
	"drp/pkg/e"
)

func TestLocationService_UpdateLiveStampsTime(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockLocationRepository(ctrl)
	clock := fixedClock()
	svc := service.NewLocationService(repo, clock, discard())

	req := domain.LiveLocationRequest{UserID: uuid.New(), DeviceID: "pixel-7", Lat: 43.2, Lng: 76.9}
	repo.EXPECT().UpsertLive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *domain.LiveLocation) error {
			if loc.UserID != req.UserID || loc.DeviceID != "pixel-7" {
				t.Fatalf("unexpected location: %+v", loc)
			}
			if !loc.Timestamp.Equal(clock.Now()) {
				t.Fatalf("timestamp = %s, want %s", loc.Timestamp, clock.Now())
			}
			return nil
		})

	if err := svc.UpdateLive(context.Background(), req); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLocationService_UpdateGuest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockLocationRepository(ctrl)
	svc := service.NewLocationService(repo, fixedClock(), discard())

	id := uuid.New()
	repo.EXPECT().UpsertGuest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *domain.Guest) error {
			if g.ID != id || g.LastActive.IsZero() {
				t.Fatalf("unexpected guest: %+v", g)
			}
			return nil
		})

	if err := svc.UpdateGuest(context.Background(), domain.GuestLocationRequest{GuestID: id, Lat: 0, Lng: 0}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	err := svc.UpdateGuest(context.Background(), domain.GuestLocationRequest{Lat: 1, Lng: 1})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing guest id, got %v", err)
	}
}

func TestLocationService_SaveManualDefaultsName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockLocationRepository(ctrl)
	svc := service.NewLocationService(repo, fixedClock(), discard())

	repo.EXPECT().SaveManual(gomock.Any(), gomock.Any()).Return(nil)

	loc, err := svc.SaveManual(context.Background(), domain.ManualLocationRequest{UserID: uuid.New(), Lat: 10, Lng: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if loc.Name != "home" {
		t.Fatalf("name = %q, want home", loc.Name)
	}
}

func TestTokenService_Register(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockTokenRepository(ctrl)
	svc := service.NewTokenService(repo, fixedClock(), discard())

	owner := domain.GuestOwner(uuid.New())
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tok *domain.PushToken) error {
			if tok.Owner != owner || tok.Token != "fcm-1" || tok.DeviceID != "d1" {
				t.Fatalf("unexpected token: %+v", tok)
			}
			return nil
		})

	if err := svc.Register(context.Background(), domain.RegisterTokenRequest{Owner: owner, DeviceID: "d1", Token: "fcm-1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	err := svc.Register(context.Background(), domain.RegisterTokenRequest{Owner: domain.Owner{Kind: "admin", ID: uuid.New()}, DeviceID: "d1", Token: "x"})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTokenService_Unregister(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockTokenRepository(ctrl)
	svc := service.NewTokenService(repo, fixedClock(), discard())

	repo.EXPECT().Delete(gomock.Any(), domain.OwnerUser, "d1").Return(nil)
	if err := svc.Unregister(context.Background(), domain.OwnerUser, "d1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := svc.Unregister(context.Background(), "robot", "d1"); !errors.Is(err, e.ErrInvalidOwner) {
		t.Fatalf("expected ErrInvalidOwner, got %v", err)
	}
	if err := svc.Unregister(context.Background(), domain.OwnerGuest, ""); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNotificationService_ListByUserClampsLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mock_service.NewMockNotificationRepository(ctrl)
	svc := service.NewNotificationService(repo)

	id := uuid.New()
	repo.EXPECT().ListByUser(gomock.Any(), id, 50).Return(nil, nil)
	repo.EXPECT().ListByUser(gomock.Any(), id, 200).Return(nil, nil)

	if _, err := svc.ListByUser(context.Background(), id, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.ListByUser(context.Background(), id, 10_000); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.ListByUser(context.Background(), uuid.Nil, 10); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

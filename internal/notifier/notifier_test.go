package notifier_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drp/internal/domain"
	"drp/internal/notifier"
	mock_notifier "drp/internal/notifier/mocks"
	"drp/internal/observability"
)

var (
	now        = time.Date(2025, 9, 14, 12, 0, 0, 0, time.UTC)
	incidentAt = domain.Point{Lat: 43.2389, Lng: 76.8897}
)

type deps struct {
	locations *mock_notifier.MockLocationFinder
	tokens    *mock_notifier.MockTokenRegistry
	push      *mock_notifier.MockPushSender
	audit     *mock_notifier.MockAuditStore
	svc       *notifier.Service
}

func newDeps(t *testing.T) *deps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &deps{
		locations: mock_notifier.NewMockLocationFinder(ctrl),
		tokens:    mock_notifier.NewMockTokenRegistry(ctrl),
		push:      mock_notifier.NewMockPushSender(ctrl),
		audit:     mock_notifier.NewMockAuditStore(ctrl),
	}
	d.svc = notifier.New(
		notifier.Config{},
		d.locations, d.tokens, d.push, d.audit,
		clockwork.NewFakeClockAt(now),
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return d
}

// liveStore answers LiveUsersNear from fixtures, applying the freshness cutoff
// the way the database query does.
func liveStore(fixtures ...domain.LiveLocation) func(context.Context, domain.Point, float64, time.Time) ([]domain.LiveLocation, error) {
	return func(_ context.Context, _ domain.Point, _ float64, since time.Time) ([]domain.LiveLocation, error) {
		var out []domain.LiveLocation
		for _, l := range fixtures {
			if !l.Timestamp.Before(since) {
				out = append(out, l)
			}
		}
		return out, nil
	}
}

func request(id uuid.UUID) domain.NotificationRequest {
	return domain.NotificationRequest{
		Location:    incidentAt,
		Type:        "Fire",
		Description: "Smoke on the 4th floor",
		IncidentID:  id,
	}
}

func TestTriggerNotification_LiveUserAndGuest(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	userID, guestID, incidentID := uuid.New(), uuid.New(), uuid.New()

	d.locations.EXPECT().GuestsNear(gomock.Any(), incidentAt, 1000.0).
		Return([]domain.Guest{{ID: guestID, Lat: 43.2416, Lng: 76.8897}}, nil)
	d.locations.EXPECT().LiveUsersNear(gomock.Any(), incidentAt, 1000.0, now.Add(-time.Hour)).
		DoAndReturn(liveStore(domain.LiveLocation{UserID: userID, DeviceID: "pixel", Timestamp: now.Add(-10 * time.Minute)}))
	d.locations.EXPECT().ManualUsersNear(gomock.Any(), incidentAt, 1000.0).Return(nil, nil)

	d.tokens.EXPECT().FindTokens(gomock.Any(), []domain.Owner{domain.UserOwner(userID)}).
		Return([]domain.PushToken{{Owner: domain.UserOwner(userID), Token: "tok-user"}}, nil)
	d.tokens.EXPECT().FindTokens(gomock.Any(), []domain.Owner{domain.GuestOwner(guestID)}).
		Return([]domain.PushToken{{Owner: domain.GuestOwner(guestID), Token: "tok-guest"}}, nil)

	d.push.EXPECT().SendMulticast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.PushMessage) (*domain.MulticastResult, error) {
			assert.ElementsMatch(t, []string{"tok-user", "tok-guest"}, msg.Tokens)
			assert.Equal(t, "🚨 Fire reported nearby!", msg.Title)
			assert.Equal(t, "Smoke on the 4th floor", msg.Body)
			assert.Equal(t, map[string]string{"type": "Fire", "lng": "76.8897", "lat": "43.2389"}, msg.Data)
			return &domain.MulticastResult{
				SuccessCount: 1,
				FailureCount: 1,
				Responses: []domain.SendResult{
					{Success: true, MessageID: "m-1"},
					{Err: errors.New("registration-token-not-registered")},
				},
			}, nil
		})

	d.audit.EXPECT().InsertNotifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.NotificationRecord) (int, error) {
			require.Len(t, records, 1)
			assert.Equal(t, userID, records[0].UserID)
			assert.Equal(t, incidentID, records[0].IncidentID)
			assert.Equal(t, domain.NotificationNearbyIncident, records[0].Type)
			assert.Equal(t, now, records[0].CreatedAt)
			return 1, nil
		})

	d.svc.TriggerNotification(context.Background(), request(incidentID))
}

func TestTriggerNotification_StaleLiveLocationExcluded(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	stale := domain.LiveLocation{UserID: uuid.New(), DeviceID: "old", Timestamp: now.Add(-2 * time.Hour)}

	d.locations.EXPECT().GuestsNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.locations.EXPECT().LiveUsersNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(liveStore(stale))
	d.locations.EXPECT().ManualUsersNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	// no owners: neither tokens nor push nor audit are touched

	d.svc.TriggerNotification(context.Background(), request(uuid.New()))
}

func TestTriggerNotification_ManualLocationStillQualifies(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	userID := uuid.New()
	stale := domain.LiveLocation{UserID: userID, Timestamp: now.Add(-3 * time.Hour)}

	d.locations.EXPECT().GuestsNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.locations.EXPECT().LiveUsersNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(liveStore(stale))
	d.locations.EXPECT().ManualUsersNear(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.ManualLocation{{UserID: userID, Name: "home"}}, nil)
	d.tokens.EXPECT().FindTokens(gomock.Any(), []domain.Owner{domain.UserOwner(userID)}).
		Return([]domain.PushToken{{Owner: domain.UserOwner(userID), Token: "tok"}}, nil)
	d.push.EXPECT().SendMulticast(gomock.Any(), gomock.Any()).
		Return(&domain.MulticastResult{SuccessCount: 1, Responses: []domain.SendResult{{Success: true}}}, nil)
	d.audit.EXPECT().InsertNotifications(gomock.Any(), gomock.Len(1)).Return(1, nil)

	d.svc.TriggerNotification(context.Background(), request(uuid.New()))
}

func TestTriggerNotification_DedupLiveAndManual(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	userID := uuid.New()
	d.locations.EXPECT().GuestsNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.locations.EXPECT().LiveUsersNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.LiveLocation{
			{UserID: userID, DeviceID: "phone", Timestamp: now},
			{UserID: userID, DeviceID: "tablet", Timestamp: now},
		}, nil)
	d.locations.EXPECT().ManualUsersNear(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.ManualLocation{{UserID: userID, Name: "work"}}, nil)
	d.tokens.EXPECT().FindTokens(gomock.Any(), []domain.Owner{domain.UserOwner(userID)}).
		Return([]domain.PushToken{{Owner: domain.UserOwner(userID), Token: "tok"}}, nil)
	d.push.EXPECT().SendMulticast(gomock.Any(), gomock.Any()).
		Return(&domain.MulticastResult{SuccessCount: 1, Responses: []domain.SendResult{{Success: true}}}, nil)
	d.audit.EXPECT().InsertNotifications(gomock.Any(), gomock.Len(1)).Return(1, nil)

	d.svc.TriggerNotification(context.Background(), request(uuid.New()))
}

func TestTriggerNotification_NoTokens(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	userID := uuid.New()
	d.locations.EXPECT().GuestsNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.locations.EXPECT().LiveUsersNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.LiveLocation{{UserID: userID, Timestamp: now}}, nil)
	d.locations.EXPECT().ManualUsersNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.tokens.EXPECT().FindTokens(gomock.Any(), gomock.Any()).Return(nil, nil)
	// SendMulticast and InsertNotifications have no expectations: calling them fails the test

	d.svc.TriggerNotification(context.Background(), request(uuid.New()))
}

func TestTriggerNotification_FallbackBody(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	guestID := uuid.New()
	d.locations.EXPECT().GuestsNear(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Guest{{ID: guestID}, {ID: guestID}}, nil)
	d.locations.EXPECT().LiveUsersNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.locations.EXPECT().ManualUsersNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.tokens.EXPECT().FindTokens(gomock.Any(), []domain.Owner{domain.GuestOwner(guestID)}).
		Return([]domain.PushToken{{Owner: domain.GuestOwner(guestID), Token: "tok"}}, nil)
	d.push.EXPECT().SendMulticast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.PushMessage) (*domain.MulticastResult, error) {
			assert.Equal(t, "Stay alert and safe.", msg.Body)
			return &domain.MulticastResult{SuccessCount: 1, Responses: []domain.SendResult{{Success: true}}}, nil
		})
	// guests only: no audit rows

	req := request(uuid.New())
	req.Description = ""
	d.svc.TriggerNotification(context.Background(), req)
}

func TestTriggerNotification_QueryErrorSwallowed(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	d.locations.EXPECT().GuestsNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")).AnyTimes()
	d.locations.EXPECT().LiveUsersNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	d.locations.EXPECT().ManualUsersNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	assert.NotPanics(t, func() {
		d.svc.TriggerNotification(context.Background(), request(uuid.New()))
	})
}

func TestTriggerNotification_AuditPartialFailure(t *testing.T) {
	t.Parallel()
	d := newDeps(t)

	u1, u2 := uuid.New(), uuid.New()
	d.locations.EXPECT().GuestsNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.locations.EXPECT().LiveUsersNear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.LiveLocation{{UserID: u1, Timestamp: now}, {UserID: u2, Timestamp: now}}, nil)
	d.locations.EXPECT().ManualUsersNear(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.tokens.EXPECT().FindTokens(gomock.Any(), gomock.Len(2)).
		Return([]domain.PushToken{{Token: "a"}, {Token: "b"}}, nil)
	d.push.EXPECT().SendMulticast(gomock.Any(), gomock.Any()).
		Return(&domain.MulticastResult{SuccessCount: 2, Responses: []domain.SendResult{{Success: true}, {Success: true}}}, nil)
	d.audit.EXPECT().InsertNotifications(gomock.Any(), gomock.Len(2)).
		Return(1, errors.New("1 of 2 rows failed"))

	assert.NotPanics(t, func() {
		d.svc.TriggerNotification(context.Background(), request(uuid.New()))
	})
}

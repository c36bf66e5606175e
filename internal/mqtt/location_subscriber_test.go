package mqtt

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drp/internal/domain"
	mock_mqtt "drp/internal/mqtt/mocks"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestLocationSubscriber_UserUpsertsLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_mqtt.NewMockLocationService(ctrl)
	sub := NewLocationSubscriber(nil, "", svc, discard())

	userID := uuid.New()
	svc.EXPECT().UpdateLive(gomock.Any(), domain.LiveLocationRequest{
		UserID:   userID,
		DeviceID: "pixel-7",
		Lat:      43.238,
		Lng:      76.889,
	}).Return(nil)

	payload := []byte(`{"owner_kind":"user","owner_id":"` + userID.String() + `","lat":43.238,"lng":76.889}`)
	require.NoError(t, sub.handle(context.Background(), "drp/devices/pixel-7/location", payload))
}

func TestLocationSubscriber_GuestUpsertsGuest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_mqtt.NewMockLocationService(ctrl)
	sub := NewLocationSubscriber(nil, "", svc, discard())

	guestID := uuid.New()
	svc.EXPECT().UpdateGuest(gomock.Any(), domain.GuestLocationRequest{GuestID: guestID, Lat: -33.9, Lng: 18.4}).
		Return(errors.New("db down"))

	payload := []byte(`{"owner_kind":"guest","owner_id":"` + guestID.String() + `","lat":-33.9,"lng":18.4}`)
	err := sub.handle(context.Background(), "drp/devices/abc/location", payload)
	assert.ErrorContains(t, err, "db down")
}

func TestLocationSubscriber_RejectsInvalidMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_mqtt.NewMockLocationService(ctrl)
	sub := NewLocationSubscriber(nil, "", svc, discard())
	id := uuid.NewString()

	cases := map[string]struct {
		topic   string
		payload string
	}{
		"bad json":     {"drp/devices/d1/location", `{"lat":`},
		"unknown kind": {"drp/devices/d1/location", `{"owner_kind":"robot","owner_id":"` + id + `","lat":1,"lng":1}`},
		"bad owner id": {"drp/devices/d1/location", `{"owner_kind":"user","owner_id":"nope","lat":1,"lng":1}`},
		"lat range":    {"drp/devices/d1/location", `{"owner_kind":"user","owner_id":"` + id + `","lat":91,"lng":1}`},
		"lng range":    {"drp/devices/d1/location", `{"owner_kind":"guest","owner_id":"` + id + `","lat":1,"lng":-181}`},
		"no device":    {"location", `{"owner_kind":"guest","owner_id":"` + id + `","lat":1,"lng":1}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, sub.handle(context.Background(), tc.topic, []byte(tc.payload)))
		})
	}
}

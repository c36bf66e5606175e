package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"drp/internal/domain"
)

//go:generate mockgen -source=location_subscriber.go -destination=mocks/mock.go

const DefaultLocationTopic = "drp/devices/+/location"

const handleTimeout = 5 * time.Second

type LocationService interface {
	UpdateLive(ctx context.Context, req domain.LiveLocationRequest) error
	UpdateGuest(ctx context.Context, req domain.GuestLocationRequest) error
}

type locationMessage struct {
	OwnerKind domain.OwnerKind `json:"owner_kind"`
	OwnerID   string           `json:"owner_id"`
	Latitude  float64          `json:"lat"`
	Longitude float64          `json:"lng"`
}

// LocationSubscriber stores positions that devices publish on
// drp/devices/{deviceId}/location.
type LocationSubscriber struct {
	client  paho.Client
	topic   string
	service LocationService
	logger  *slog.Logger
}

func NewLocationSubscriber(client paho.Client, topic string, service LocationService, logger *slog.Logger) *LocationSubscriber {
	if topic == "" {
		topic = DefaultLocationTopic
	}
	return &LocationSubscriber{
		client:  client,
		topic:   topic,
		service: service,
		logger:  logger.With(slog.String("component", "mqtt.location_subscriber")),
	}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(s.topic, 1, s.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", s.topic, err)
	}
	s.logger.Info("subscribed", slog.String("topic", s.topic))
	return nil
}

func (s *LocationSubscriber) Stop() error {
	token := s.client.Unsubscribe(s.topic)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ paho.Client, msg paho.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := s.handle(ctx, msg.Topic(), msg.Payload()); err != nil {
		s.logger.Warn("location message dropped",
			slog.String("topic", msg.Topic()),
			slog.Any("error", err),
		)
	}
}

func (s *LocationSubscriber) handle(ctx context.Context, topic string, payload []byte) error {
	deviceID, err := deviceFromTopic(topic)
	if err != nil {
		return err
	}

	var raw locationMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return fmt.Errorf("invalid location message: %w", err)
	}

	ownerID, err := validateLocationMessage(&raw)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	switch raw.OwnerKind {
	case domain.OwnerUser:
		return s.service.UpdateLive(ctx, domain.LiveLocationRequest{
			UserID:   ownerID,
			DeviceID: deviceID,
			Lat:      raw.Latitude,
			Lng:      raw.Longitude,
		})
	default:
		return s.service.UpdateGuest(ctx, domain.GuestLocationRequest{
			GuestID: ownerID,
			Lat:     raw.Latitude,
			Lng:     raw.Longitude,
		})
	}
}

// deviceFromTopic extracts {deviceId} from drp/devices/{deviceId}/location.
func deviceFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" {
		return "", fmt.Errorf("topic %q: missing device id", topic)
	}
	return parts[len(parts)-2], nil
}

func validateLocationMessage(msg *locationMessage) (uuid.UUID, error) {
	if !msg.OwnerKind.Valid() {
		return uuid.Nil, fmt.Errorf("owner_kind: must be user or guest")
	}
	id, err := uuid.Parse(msg.OwnerID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("owner_id: must be a uuid")
	}
	if err := validCoordinates(msg.Latitude, msg.Longitude); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

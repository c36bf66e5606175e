package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/jonboulle/clockwork"

	"drp/internal/domain"
	"drp/internal/geo"
	"drp/internal/navigator"
	"drp/pkg/e"
)

var _ navigator.LocationSource = (*DeviceSource)(nil)

var ErrAlreadyWatching = errors.New("location watch already active")

type gpsMessage struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Accuracy  float64 `json:"accuracy"`
}

// watchRequest is published retained on the device's config topic so the
// device tunes its GPS sampling to what the watcher asked for.
type watchRequest struct {
	HighAccuracy   bool    `json:"high_accuracy"`
	DistanceFilter float64 `json:"distance_filter_m"`
	MinIntervalMs  int64   `json:"min_interval_ms"`
	Active         bool    `json:"active"`
}

// DeviceSource reads a single device's GPS fixes from
// drp/devices/{deviceId}/gps.
type DeviceSource struct {
	client      paho.Client
	topic       string
	configTopic string
	clock       clockwork.Clock
	logger      *slog.Logger

	mu       sync.Mutex
	current  domain.Point
	hasFix   bool
	emitted  domain.Point
	emitAt   time.Time
	hasEmit  bool
	opts     navigator.WatchOptions
	out      chan domain.Point
	watching bool
}

func NewDeviceSource(client paho.Client, deviceID string, clock clockwork.Clock, logger *slog.Logger) *DeviceSource {
	return &DeviceSource{
		client:      client,
		topic:       fmt.Sprintf("drp/devices/%s/gps", deviceID),
		configTopic: fmt.Sprintf("drp/devices/%s/gps/config", deviceID),
		clock:       clock,
		logger:      logger.With(slog.String("component", "mqtt.device_source"), slog.String("device_id", deviceID)),
	}
}

// Current returns the most recent fix without waiting for a new one.
func (s *DeviceSource) Current(ctx context.Context) (domain.Point, error) {
	if err := ctx.Err(); err != nil {
		return domain.Point{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFix {
		return domain.Point{}, e.ErrLocationUnavailable
	}
	return s.current, nil
}

func (s *DeviceSource) Watch(ctx context.Context, opts navigator.WatchOptions) (<-chan domain.Point, error) {
	out, err := s.start(opts)
	if err != nil {
		return nil, err
	}

	s.publishWatch(watchRequest{
		HighAccuracy:   opts.EnableHighAccuracy,
		DistanceFilter: opts.DistanceFilterMeters,
		MinIntervalMs:  opts.MinInterval.Milliseconds(),
		Active:         true,
	})

	token := s.client.Subscribe(s.topic, 1, s.handleMessage)
	select {
	case <-token.Done():
	case <-ctx.Done():
		s.finish()
		return nil, ctx.Err()
	}
	if err := token.Error(); err != nil {
		s.finish()
		return nil, fmt.Errorf("subscribe %s: %w", s.topic, err)
	}

	s.logger.Info("watching location",
		slog.Bool("high_accuracy", opts.EnableHighAccuracy),
		slog.Float64("distance_filter_m", opts.DistanceFilterMeters),
		slog.Duration("min_interval", opts.MinInterval),
	)
	return out, nil
}

// Stop unsubscribes and closes the watch channel. It is safe to call more
// than once.
func (s *DeviceSource) Stop() error {
	if !s.finish() {
		return nil
	}
	s.publishWatch(watchRequest{Active: false})

	token := s.client.Unsubscribe(s.topic)
	token.Wait()
	return token.Error()
}

func (s *DeviceSource) start(opts navigator.WatchOptions) (<-chan domain.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watching {
		return nil, ErrAlreadyWatching
	}
	s.watching = true
	s.opts = opts
	s.hasEmit = false
	s.out = make(chan domain.Point, 8)
	return s.out, nil
}

func (s *DeviceSource) finish() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.watching {
		return false
	}
	s.watching = false
	close(s.out)
	return true
}

func (s *DeviceSource) publishWatch(req watchRequest) {
	body, err := json.Marshal(req)
	if err != nil {
		return
	}
	token := s.client.Publish(s.configTopic, 1, true, body)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			s.logger.Warn("publish watch config", slog.Any("error", token.Error()))
		}
	}()
}

func (s *DeviceSource) handleMessage(_ paho.Client, msg paho.Message) {
	var raw gpsMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		s.logger.Warn("invalid gps message", slog.Any("error", err))
		return
	}
	if err := validCoordinates(raw.Latitude, raw.Longitude); err != nil {
		s.logger.Warn("invalid gps message", slog.Any("error", err))
		return
	}
	s.deliver(domain.Point{Lat: raw.Latitude, Lng: raw.Longitude})
}

// deliver records p as the current fix and forwards it to the watcher unless
// the distance filter or minimum interval suppresses it.
func (s *DeviceSource) deliver(p domain.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current, s.hasFix = p, true
	if !s.watching {
		return
	}

	now := s.clock.Now()
	if s.hasEmit {
		if s.opts.MinInterval > 0 && now.Sub(s.emitAt) < s.opts.MinInterval {
			return
		}
		if s.opts.DistanceFilterMeters > 0 && geo.Distance(s.emitted, p) < s.opts.DistanceFilterMeters {
			return
		}
	}

	select {
	case s.out <- p:
		s.emitted, s.emitAt, s.hasEmit = p, now, true
	default:
		s.logger.Debug("watcher busy, fix dropped")
	}
}

package mqtt

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drp/internal/domain"
	"drp/internal/navigator"
	"drp/pkg/e"
)

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func drain(ch <-chan domain.Point) []domain.Point {
	var out []domain.Point
	for {
		select {
		case p := <-ch:
			out = append(out, p)
		default:
			return out
		}
	}
}

func TestDeviceSource_CurrentBeforeAnyFix(t *testing.T) {
	src := NewDeviceSource(nil, "d1", clockwork.NewFakeClock(), discard())

	_, err := src.Current(context.Background())
	assert.ErrorIs(t, err, e.ErrLocationUnavailable)

	src.handleMessage(nil, fakeMessage{topic: "drp/devices/d1/gps", payload: []byte(`{"lat":10,"lng":20}`)})

	p, err := src.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Point{Lat: 10, Lng: 20}, p)
}

func TestDeviceSource_DistanceFilter(t *testing.T) {
	clock := clockwork.NewFakeClock()
	src := NewDeviceSource(nil, "d1", clock, discard())

	out, err := src.start(navigator.WatchOptions{DistanceFilterMeters: 10})
	require.NoError(t, err)

	src.deliver(domain.Point{Lat: 0, Lng: 0})
	src.deliver(domain.Point{Lat: 0.00003, Lng: 0}) // ~3.3 m
	src.deliver(domain.Point{Lat: 0.0002, Lng: 0})  // ~22 m

	got := drain(out)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Point{Lat: 0, Lng: 0}, got[0])
	assert.Equal(t, domain.Point{Lat: 0.0002, Lng: 0}, got[1])

	// the filtered fix still updates the current position
	cur, err := src.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Point{Lat: 0.0002, Lng: 0}, cur)
}

func TestDeviceSource_MinInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	src := NewDeviceSource(nil, "d1", clock, discard())

	out, err := src.start(navigator.WatchOptions{MinInterval: 5 * time.Second})
	require.NoError(t, err)

	src.deliver(domain.Point{Lat: 1, Lng: 1})
	clock.Advance(2 * time.Second)
	src.deliver(domain.Point{Lat: 2, Lng: 2})
	clock.Advance(4 * time.Second)
	src.deliver(domain.Point{Lat: 3, Lng: 3})

	got := drain(out)
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Lat)
	assert.Equal(t, 3.0, got[1].Lat)
}

func TestDeviceSource_InvalidPayloadIgnored(t *testing.T) {
	src := NewDeviceSource(nil, "d1", clockwork.NewFakeClock(), discard())
	out, err := src.start(navigator.WatchOptions{})
	require.NoError(t, err)

	src.handleMessage(nil, fakeMessage{payload: []byte(`garbage`)})
	src.handleMessage(nil, fakeMessage{payload: []byte(`{"lat":100,"lng":0}`)})

	assert.Empty(t, drain(out))
	_, err = src.Current(context.Background())
	assert.ErrorIs(t, err, e.ErrLocationUnavailable)
}

func TestDeviceSource_SingleWatch(t *testing.T) {
	src := NewDeviceSource(nil, "d1", clockwork.NewFakeClock(), discard())

	out, err := src.start(navigator.WatchOptions{})
	require.NoError(t, err)

	_, err = src.start(navigator.WatchOptions{})
	assert.ErrorIs(t, err, ErrAlreadyWatching)

	assert.True(t, src.finish())
	assert.False(t, src.finish())

	_, ok := <-out
	assert.False(t, ok)

	// fixes after the watch ended only update the current position
	src.deliver(domain.Point{Lat: 5, Lng: 5})
	p, err := src.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.Lat)
}

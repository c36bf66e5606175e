package push

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drp/internal/domain"
)

type fakeMessaging struct {
	batches []*messaging.MulticastMessage
	fail    map[string]bool
	err     error
}

func (f *fakeMessaging) SendEachForMulticast(_ context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, m)
	br := &messaging.BatchResponse{}
	for _, tok := range m.Tokens {
		if f.fail[tok] {
			br.FailureCount++
			br.Responses = append(br.Responses, &messaging.SendResponse{Error: errors.New("unregistered")})
			continue
		}
		br.SuccessCount++
		br.Responses = append(br.Responses, &messaging.SendResponse{Success: true, MessageID: "id-" + tok})
	}
	return br, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestFCMSender_SplitsBatches(t *testing.T) {
	tokens := make([]string, 1203)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("t%d", i)
	}
	fake := &fakeMessaging{fail: map[string]bool{"t0": true, "t700": true}}
	s := &FCMSender{client: fake, logger: discard()}

	res, err := s.SendMulticast(context.Background(), domain.PushMessage{
		Tokens: tokens,
		Title:  "🚨 Flood reported nearby!",
		Body:   "Stay alert and safe.",
		Data:   map[string]string{"type": "Flood"},
	})
	require.NoError(t, err)

	require.Len(t, fake.batches, 3)
	assert.Len(t, fake.batches[0].Tokens, 500)
	assert.Len(t, fake.batches[2].Tokens, 203)
	assert.Equal(t, "🚨 Flood reported nearby!", fake.batches[1].Notification.Title)
	assert.Equal(t, "Flood", fake.batches[1].Data["type"])

	assert.Equal(t, 1201, res.SuccessCount)
	assert.Equal(t, 2, res.FailureCount)
	require.Len(t, res.Responses, len(tokens))
	assert.False(t, res.Responses[0].Success)
	assert.False(t, res.Responses[700].Success)
	assert.Equal(t, "id-t701", res.Responses[701].MessageID)
}

func TestFCMSender_TransportError(t *testing.T) {
	s := &FCMSender{client: &fakeMessaging{err: errors.New("unavailable")}, logger: discard()}

	res, err := s.SendMulticast(context.Background(), domain.PushMessage{Tokens: []string{"a"}})
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestLogSender_ReportsSuccess(t *testing.T) {
	res, err := NewLogSender(discard()).SendMulticast(context.Background(), domain.PushMessage{Tokens: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Len(t, res.Responses, 2)
}

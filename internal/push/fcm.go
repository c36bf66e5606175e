// Package push delivers multicast notifications to device tokens.
package push

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"drp/internal/domain"
)

// maxTokensPerBatch is the FCM limit for one multicast call.
const maxTokensPerBatch = 500

type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// FCMSender sends through Firebase Cloud Messaging.
type FCMSender struct {
	client multicastClient
	logger *slog.Logger
}

// NewFCMSender initialises the Firebase app. An empty credentialsFile falls
// back to application default credentials.
func NewFCMSender(ctx context.Context, credentialsFile string, logger *slog.Logger) (*FCMSender, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}
	return &FCMSender{client: client, logger: logger}, nil
}

// SendMulticast splits msg into FCM-sized batches. Responses stay aligned with
// msg.Tokens. A transport failure of any batch fails the whole call.
func (s *FCMSender) SendMulticast(ctx context.Context, msg domain.PushMessage) (*domain.MulticastResult, error) {
	out := &domain.MulticastResult{Responses: make([]domain.SendResult, 0, len(msg.Tokens))}

	for start := 0; start < len(msg.Tokens); start += maxTokensPerBatch {
		end := min(start+maxTokensPerBatch, len(msg.Tokens))
		batch := msg.Tokens[start:end]

		br, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
		})
		if err != nil {
			return nil, fmt.Errorf("fcm batch %d-%d: %w", start, end, err)
		}

		out.SuccessCount += br.SuccessCount
		out.FailureCount += br.FailureCount
		for _, r := range br.Responses {
			out.Responses = append(out.Responses, domain.SendResult{
				Success:   r.Success,
				MessageID: r.MessageID,
				Err:       r.Error,
			})
		}
	}

	s.logger.Debug("fcm multicast done",
		slog.Int("tokens", len(msg.Tokens)),
		slog.Int("success", out.SuccessCount),
		slog.Int("failure", out.FailureCount),
	)
	return out, nil
}

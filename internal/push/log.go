package push

import (
	"context"
	"fmt"
	"log/slog"

	"drp/internal/domain"
)

// LogSender only logs messages. It is used when push delivery is disabled.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendMulticast(_ context.Context, msg domain.PushMessage) (*domain.MulticastResult, error) {
	s.logger.Info("push disabled, message dropped",
		slog.String("title", msg.Title),
		slog.Int("tokens", len(msg.Tokens)),
	)
	res := &domain.MulticastResult{
		SuccessCount: len(msg.Tokens),
		Responses:    make([]domain.SendResult, len(msg.Tokens)),
	}
	for i := range res.Responses {
		res.Responses[i] = domain.SendResult{Success: true, MessageID: fmt.Sprintf("log-%d", i)}
	}
	return res, nil
}

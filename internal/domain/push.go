package domain

import "time"

type PushToken struct {
	Owner    Owner     `json:"owner"`
	DeviceID string    `json:"device_id"`
	Token    string    `json:"-"`
	LastUsed time.Time `json:"last_used"`
}

type RegisterTokenRequest struct {
	Owner    Owner  `json:"owner"`
	DeviceID string `json:"device_id" validate:"required,max=128"`
	Token    string `json:"token" validate:"required"`
}

// PushMessage is a single multicast notification.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// SendResult is the outcome for one token; it aligns positionally with PushMessage.Tokens.
type SendResult struct {
	Success   bool
	MessageID string
	Err       error
}

type MulticastResult struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResult
}

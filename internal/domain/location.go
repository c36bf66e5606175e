package domain

import (
	"time"

	"github.com/google/uuid"
)

// LiveLocation is the last GPS fix reported by a registered user's device.
type LiveLocation struct {
	UserID    uuid.UUID `json:"user_id"`
	DeviceID  string    `json:"device_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// ManualLocation is a fixed point a user saved (home, work).
type ManualLocation struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Lat    float64   `json:"lat"`
	Lng    float64   `json:"lng"`
}

type Guest struct {
	ID         uuid.UUID `json:"id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	LastActive time.Time `json:"last_active"`
}

type LiveLocationRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	DeviceID string    `json:"device_id" validate:"required,max=128"`
	Lat      float64   `json:"lat" validate:"lat"`
	Lng      float64   `json:"lng" validate:"lng"`
}

type GuestLocationRequest struct {
	GuestID uuid.UUID `json:"guest_id" validate:"required"`
	Lat     float64   `json:"lat" validate:"lat"`
	Lng     float64   `json:"lng" validate:"lng"`
}

type ManualLocationRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Name   string    `json:"name" validate:"max=64"`
	Lat    float64   `json:"lat" validate:"lat"`
	Lng    float64   `json:"lng" validate:"lng"`
}

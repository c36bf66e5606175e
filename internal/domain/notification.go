package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const NotificationNearbyIncident NotificationType = "nearby_incident"

// NotificationRecord is the audit trail row written for every targeted registered user.
type NotificationRecord struct {
	UserID     uuid.UUID        `json:"user_id"`
	IncidentID uuid.UUID        `json:"incident_id"`
	Type       NotificationType `json:"notification_type"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NotificationRequest is the notifier input for one incident.
type NotificationRequest struct {
	Location    Point
	Type        string
	Description string
	IncidentID  uuid.UUID
}

// NotificationJob is the queued form of a NotificationRequest.
type NotificationJob struct {
	IncidentID  uuid.UUID `json:"incident_id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (j NotificationJob) Request() NotificationRequest {
	return NotificationRequest{
		Location:    Point{Lat: j.Lat, Lng: j.Lng},
		Type:        j.Type,
		Description: j.Description,
		IncidentID:  j.IncidentID,
	}
}

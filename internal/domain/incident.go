package domain

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Incident struct {
	ID          uuid.UUID `json:"id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	TypeID      uuid.UUID `json:"type_id"`
	TypeName    string    `json:"type_name"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	IsFake      bool      `json:"is_fake"`
	CreatedAt   time.Time `json:"created_at"`
}

func (i Incident) Location() Point { return Point{Lat: i.Lat, Lng: i.Lng} }

type IncidentAction string

const IncidentCreated IncidentAction = "created"

// IncidentEvent is broadcast to the broker after an incident is stored.
type IncidentEvent struct {
	Action   IncidentAction `json:"action"`
	Incident Incident       `json:"incident"`
}

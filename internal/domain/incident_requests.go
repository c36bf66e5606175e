package domain

import "github.com/google/uuid"

type CreateIncidentRequest struct {
	Lat         float64   `json:"lat" validate:"lat"`
	Lng         float64   `json:"lng" validate:"lng"`
	TypeID      uuid.UUID `json:"type_id" validate:"required"`
	TypeName    string    `json:"type_name" validate:"required,max=64"`
	Severity    Severity  `json:"severity" validate:"required,oneof=low medium high"`
	Description string    `json:"description" validate:"max=2000"`
}

type ListIncidentsResponse struct {
	Incidents []*Incident `json:"incidents"`
	Page      int         `json:"page"`
	Limit     int         `json:"limit"`
	Total     int64       `json:"total"`
}

type MarkFakeRequest struct {
	IsFake bool `json:"is_fake"`
}

package domain

import "github.com/google/uuid"

type Shelter struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Lat      float64   `json:"lat"`
	Lng      float64   `json:"lng"`
	Capacity int       `json:"capacity"`
}

func (s Shelter) Location() Point { return Point{Lat: s.Lat, Lng: s.Lng} }

type CreateShelterRequest struct {
	Title    string  `json:"title" validate:"required,max=128"`
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	Capacity int     `json:"capacity" validate:"min=0"`
}

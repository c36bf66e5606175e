package ors

import "drp/internal/domain"

// OpenRouteService request and response types.

type directionsRequest struct {
	Coordinates      [][2]float64       `json:"coordinates"`
	Units            string             `json:"units"`
	Instructions     bool               `json:"instructions"`
	ContinueStraight bool               `json:"continue_straight"`
	GeometrySimplify bool               `json:"geometry_simplify"`
	SuppressWarnings bool               `json:"suppress_warnings"`
	Options          *directionsOptions `json:"options,omitempty"`
}

type directionsOptions struct {
	AvoidPolygons *multiPolygon `json:"avoid_polygons,omitempty"`
}

type multiPolygon struct {
	Type        string           `json:"type"`
	Coordinates [][][][2]float64 `json:"coordinates"` // polygons -> rings -> positions
}

func newDirectionsRequest(start, end domain.Point, avoid []domain.Polygon) directionsRequest {
	req := directionsRequest{
		Coordinates: [][2]float64{
			{start.Lng, start.Lat},
			{end.Lng, end.Lat},
		},
		Units:            "m",
		Instructions:     true,
		ContinueStraight: false,
		GeometrySimplify: false,
		SuppressWarnings: true,
	}
	if len(avoid) == 0 {
		return req
	}

	mp := &multiPolygon{Type: "MultiPolygon", Coordinates: make([][][][2]float64, 0, len(avoid))}
	for _, poly := range avoid {
		ring := make([][2]float64, 0, len(poly))
		for _, p := range poly {
			ring = append(ring, [2]float64(p))
		}
		mp.Coordinates = append(mp.Coordinates, [][][2]float64{ring})
	}
	req.Options = &directionsOptions{AvoidPolygons: mp}
	return req
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Geometry   geometry   `json:"geometry"`
	Properties properties `json:"properties"`
}

type geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

type properties struct {
	Summary summary `json:"summary"`
}

type summary struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

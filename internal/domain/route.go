package domain

type RouteMetrics struct {
	Distance float64 `json:"distance"` // meters
	Duration float64 `json:"duration"` // seconds
}

// Route is a walking route returned by the routing provider.
type Route struct {
	Coordinates []LonLat     `json:"coordinates"`
	Metrics     RouteMetrics `json:"metrics"`
}

type EvacuationResult struct {
	Route       *Route       `json:"route"`
	BorderPoint LonLat       `json:"border_point"`
	HitArea     HitArea      `json:"hit_area"`
	Distance    float64      `json:"distance"` // user to hit area center, meters
	Metrics     RouteMetrics `json:"route_metrics"`
}

type ShelterRoute struct {
	Route   *Route  `json:"route"`
	Shelter Shelter `json:"shelter"`
}

type RouteMode string

const (
	RouteNone       RouteMode = "NONE"
	RouteEvacuation RouteMode = "EVACUATION"
	RouteToShelter  RouteMode = "TO_SHELTER"
)

// RouteState is the route currently shown to the user.
type RouteState struct {
	Mode       RouteMode `json:"mode"`
	Route      []LonLat  `json:"route"`
	StartPoint LonLat    `json:"start_point"`
	EndPoint   LonLat    `json:"end_point"`
}

type RouteRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

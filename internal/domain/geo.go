package domain

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// LonLat is a GeoJSON position: [longitude, latitude].
type LonLat [2]float64

func (p LonLat) Lng() float64 { return p[0] }
func (p LonLat) Lat() float64 { return p[1] }

func (p LonLat) Point() Point { return Point{Lat: p[1], Lng: p[0]} }

func (p Point) LonLat() LonLat { return LonLat{p.Lng, p.Lat} }

// HitArea is the circular danger zone around an active incident.
// Radius is in meters.
type HitArea struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius float64 `json:"radius"`
}

func (h HitArea) Center() Point { return Point{Lat: h.Lat, Lng: h.Lng} }

// Polygon is a single closed linear ring.
type Polygon []LonLat

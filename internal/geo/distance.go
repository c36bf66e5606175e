// Package geo holds the spherical geometry shared by the notifier and the
// evacuation engine.
package geo

import (
	"math"

	"drp/internal/domain"
)

const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between two points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRad(lat1)
	phi2 := toRad(lat2)
	dPhi := toRad(lat2 - lat1)
	dLambda := toRad(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

func IsWithinDistance(latA, lonA, latB, lonB, thresholdMeters float64) bool {
	return DistanceMeters(latA, lonA, latB, lonB) <= thresholdMeters
}

// Distance is DistanceMeters over domain points.
func Distance(a, b domain.Point) float64 {
	return DistanceMeters(a.Lat, a.Lng, b.Lat, b.Lng)
}

// IsInHitArea reports whether the point lies inside at least one hit area.
func IsInHitArea(lat, lng float64, hitAreas []domain.HitArea) bool {
	for _, h := range hitAreas {
		if DistanceMeters(lat, lng, h.Lat, h.Lng) <= h.Radius {
			return true
		}
	}
	return false
}

// ClosestHitArea picks the hit area whose center is nearest to p. Ties keep
// the first one encountered. ok is false for an empty slice.
func ClosestHitArea(p domain.Point, hitAreas []domain.HitArea) (closest domain.HitArea, index int, distance float64, ok bool) {
	index = -1
	distance = math.Inf(1)
	for i, h := range hitAreas {
		d := DistanceMeters(p.Lat, p.Lng, h.Lat, h.Lng)
		if d < distance {
			closest, index, distance = h, i, d
		}
	}
	return closest, index, distance, index >= 0
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

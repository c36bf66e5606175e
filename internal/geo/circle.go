package geo

import (
	"math"

	"drp/internal/domain"
)

const DefaultCirclePoints = 8

// DestinationPoint walks distanceMeters from (lat, lng) along bearingDeg
// (clockwise from north) on a sphere.
func DestinationPoint(lat, lng, distanceMeters, bearingDeg float64) domain.LonLat {
	angular := distanceMeters / EarthRadiusMeters
	bearing := toRad(bearingDeg)
	lat1 := toRad(lat)
	lon1 := toRad(lng)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) +
		math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2),
	)

	return domain.LonLat{toDeg(lon2), toDeg(lat2)}
}

// GenerateCirclePoints samples numPoints+1 positions around the center, one
// per bearing step starting at north. The last sample repeats bearing 360 so
// the ring is closed.
func GenerateCirclePoints(lat, lng, radiusMeters float64, numPoints int) []domain.LonLat {
	if numPoints <= 0 {
		numPoints = DefaultCirclePoints
	}
	coords := make([]domain.LonLat, 0, numPoints+1)
	for i := 0; i < numPoints; i++ {
		bearing := float64(i) * 360 / float64(numPoints)
		coords = append(coords, DestinationPoint(lat, lng, radiusMeters, bearing))
	}
	// bearing 360 lands on bearing 0; reuse it so the ring closes exactly
	coords = append(coords, coords[0])
	return coords
}

// HitAreasToPolygons approximates each hit area by a closed ring suitable for
// routing avoidance.
func HitAreasToPolygons(hitAreas []domain.HitArea) []domain.Polygon {
	polygons := make([]domain.Polygon, 0, len(hitAreas))
	for _, h := range hitAreas {
		polygons = append(polygons, domain.Polygon(GenerateCirclePoints(h.Lat, h.Lng, h.Radius, DefaultCirclePoints)))
	}
	return polygons
}

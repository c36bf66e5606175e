package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drp/internal/domain"
)

// Beirut, roughly where the platform was first deployed.
const (
	baseLat = 33.8938
	baseLng = 35.5018
)

func TestDistanceMeters_KnownValues(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(baseLat, baseLng, baseLat, baseLng))

	// one degree of latitude is ~111.195 km on a 6371 km sphere
	d := DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111194.93, d, 0.5)

	// symmetric
	ab := DistanceMeters(baseLat, baseLng, 33.9, 35.52)
	ba := DistanceMeters(33.9, 35.52, baseLat, baseLng)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestIsWithinDistance_Boundary(t *testing.T) {
	p := DestinationPoint(baseLat, baseLng, 500, 90)
	d := DistanceMeters(baseLat, baseLng, p.Lat(), p.Lng())

	assert.True(t, IsWithinDistance(baseLat, baseLng, p.Lat(), p.Lng(), d))
	assert.False(t, IsWithinDistance(baseLat, baseLng, p.Lat(), p.Lng(), d-0.01))
}

func TestIsInHitArea(t *testing.T) {
	areas := []domain.HitArea{
		{Lat: baseLat, Lng: baseLng, Radius: 500},
		{Lat: 33.95, Lng: 35.60, Radius: 200},
	}

	tests := []struct {
		name   string
		point  domain.LonLat
		areas  []domain.HitArea
		inside bool
	}{
		{"empty set", domain.LonLat{baseLng, baseLat}, nil, false},
		{"center", domain.LonLat{baseLng, baseLat}, areas, true},
		{"inside first", DestinationPoint(baseLat, baseLng, 499, 45), areas, true},
		{"outside first", DestinationPoint(baseLat, baseLng, 501, 45), areas, false},
		{"inside second only", DestinationPoint(33.95, 35.60, 150, 200), areas, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsInHitArea(tt.point.Lat(), tt.point.Lng(), tt.areas)
			assert.Equal(t, tt.inside, got)

			var want bool
			for _, h := range tt.areas {
				if DistanceMeters(tt.point.Lat(), tt.point.Lng(), h.Lat, h.Lng) <= h.Radius {
					want = true
				}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestGenerateCirclePoints_ClosedRingAtRadius(t *testing.T) {
	for _, n := range []int{3, 8, 16, 36} {
		pts := GenerateCirclePoints(baseLat, baseLng, 500, n)
		require.Len(t, pts, n+1)

		first, last := pts[0], pts[len(pts)-1]
		assert.InDelta(t, first.Lat(), last.Lat(), 1e-9)
		assert.InDelta(t, first.Lng(), last.Lng(), 1e-9)

		for _, p := range pts {
			assert.InDelta(t, 500, DistanceMeters(baseLat, baseLng, p.Lat(), p.Lng()), 1e-6)
		}
	}
}

func TestGenerateCirclePoints_DefaultAndOrder(t *testing.T) {
	pts := GenerateCirclePoints(baseLat, baseLng, 1000, 0)
	require.Len(t, pts, DefaultCirclePoints+1)

	// first sample is due north, third due east
	assert.Greater(t, pts[0].Lat(), baseLat)
	assert.InDelta(t, baseLng, pts[0].Lng(), 1e-9)
	assert.Greater(t, pts[2].Lng(), baseLng)
	assert.InDelta(t, baseLat, pts[2].Lat(), 1e-4)
}

func TestClosestHitArea_CenterDistanceAndTies(t *testing.T) {
	user := domain.Point{Lat: baseLat, Lng: baseLng}

	_, _, _, ok := ClosestHitArea(user, nil)
	assert.False(t, ok)

	east := DestinationPoint(baseLat, baseLng, 300, 90)
	west := DestinationPoint(baseLat, baseLng, 350, 270)
	far := DestinationPoint(baseLat, baseLng, 900, 0)

	areas := []domain.HitArea{
		{Lat: far.Lat(), Lng: far.Lng(), Radius: 2000},
		{Lat: east.Lat(), Lng: east.Lng(), Radius: 100},
		{Lat: west.Lat(), Lng: west.Lng(), Radius: 100},
	}

	got, idx, dist, ok := ClosestHitArea(user, areas)
	require.True(t, ok)
	// the large area contains the user but its center is farther away
	assert.Equal(t, 1, idx)
	assert.Equal(t, areas[1], got)
	assert.InDelta(t, 300, dist, 1e-6)

	dup := []domain.HitArea{areas[1], areas[1]}
	_, idx, _, ok = ClosestHitArea(user, dup)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestHitAreasToPolygons(t *testing.T) {
	polys := HitAreasToPolygons([]domain.HitArea{
		{Lat: baseLat, Lng: baseLng, Radius: 500},
		{Lat: 34, Lng: 35.6, Radius: 250},
	})
	require.Len(t, polys, 2)
	for _, p := range polys {
		require.Len(t, p, DefaultCirclePoints+1)
		assert.Equal(t, p[0], p[len(p)-1])
	}
	assert.False(t, math.IsNaN(polys[1][3].Lat()))
}

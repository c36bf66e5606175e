// Package hitarea classifies a device position against the live incident set
// and reports membership transitions.
package hitarea

import (
	"drp/internal/domain"
	"drp/internal/geo"
)

const DefaultRadiusMeters = 500.0

// BuildHitAreas derives one hit area per active incident. Incidents flagged as
// fake are skipped.
func BuildHitAreas(incidents []domain.Incident, radius float64) []domain.HitArea {
	if radius <= 0 {
		radius = DefaultRadiusMeters
	}
	areas := make([]domain.HitArea, 0, len(incidents))
	for _, inc := range incidents {
		if inc.IsFake {
			continue
		}
		areas = append(areas, domain.HitArea{Lat: inc.Lat, Lng: inc.Lng, Radius: radius})
	}
	return areas
}

type Transition int

const (
	// Initial is the first classification after the detector is created or reset.
	Initial Transition = iota
	// None means membership did not change.
	None
	// Enter means the device moved from outside all hit areas to inside one.
	Enter
	// Exit means the device left the last hit area it was inside.
	Exit
)

func (t Transition) String() string {
	switch t {
	case Initial:
		return "initial"
	case None:
		return "none"
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	}
	return "unknown"
}

type Observation struct {
	Inside     bool
	Transition Transition
}

// Detector remembers the previous membership. It is not safe for concurrent
// use; the navigator owns it from a single goroutine.
type Detector struct {
	seen   bool
	inside bool
}

func (d *Detector) Observe(p domain.Point, hitAreas []domain.HitArea) Observation {
	inside := geo.IsInHitArea(p.Lat, p.Lng, hitAreas)

	obs := Observation{Inside: inside, Transition: None}
	switch {
	case !d.seen:
		obs.Transition = Initial
	case !d.inside && inside:
		obs.Transition = Enter
	case d.inside && !inside:
		obs.Transition = Exit
	}

	d.seen = true
	d.inside = inside
	return obs
}

// Inside returns the last observed membership.
func (d *Detector) Inside() bool { return d.inside }

func (d *Detector) Reset() { *d = Detector{} }

package navigator

import (
	"drp/internal/domain"
	"drp/internal/geo"
	"drp/internal/hitarea"
)

type State string

const (
	StateInit              State = "INIT"
	StateSafe              State = "SAFE"
	StateEvacuating        State = "EVACUATING"
	StateSafePendingPrompt State = "SAFE_PENDING_PROMPT"
	StateRoutingToShelter  State = "ROUTING_TO_SHELTER"
	StateArrived           State = "ARRIVED"
)

const DefaultArrivalThresholdMeters = 75.0

const (
	MsgEvacuationFailed = "failed to get evacuation route, move away from the danger zone manually"
	MsgNoShelterRoute   = "no safe route to a shelter found"
)

type CommandKind int

const (
	RequestEvacuation CommandKind = iota + 1
	RequestShelterRoute
)

// Command asks the caller to compute a route. Generation must be passed back
// with the result so stale answers can be recognised.
type Command struct {
	Kind       CommandKind
	Generation uint64
	From       domain.Point
	HitAreas   []domain.HitArea
	Shelters   []domain.Shelter
}

// Snapshot is what the map renders.
type Snapshot struct {
	State       State             `json:"state"`
	Location    *domain.Point     `json:"location,omitempty"`
	Inside      bool              `json:"inside"`
	Route       domain.RouteState `json:"route"`
	Destination *domain.Shelter   `json:"destination,omitempty"`
	HitAreas    []domain.HitArea  `json:"hit_areas"`
	Message     string            `json:"message,omitempty"`
	Generation  uint64            `json:"generation"`
}

// Machine is the single owner of the orchestrator state. Every input returns
// the route computations the caller must start. It is not safe for
// concurrent use.
type Machine struct {
	state            State
	generation       uint64
	detector         hitarea.Detector
	hitAreas         []domain.HitArea
	shelters         []domain.Shelter
	location         *domain.Point
	route            domain.RouteState
	destination      *domain.Shelter
	message          string
	arrivalThreshold float64

	// OnTransition, when set, observes every state change including the
	// transient ARRIVED state.
	OnTransition func(from, to State)
}

func NewMachine(arrivalThreshold float64) *Machine {
	if arrivalThreshold <= 0 {
		arrivalThreshold = DefaultArrivalThresholdMeters
	}
	return &Machine{
		state:            StateInit,
		route:            domain.RouteState{Mode: domain.RouteNone},
		arrivalThreshold: arrivalThreshold,
	}
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Generation() uint64 { return m.generation }

func (m *Machine) SetHitAreas(areas []domain.HitArea) { m.hitAreas = areas }

func (m *Machine) SetShelters(shelters []domain.Shelter) { m.shelters = shelters }

func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		State:      m.state,
		Inside:     m.detector.Inside(),
		Route:      m.route,
		HitAreas:   m.hitAreas,
		Message:    m.message,
		Generation: m.generation,
	}
	if m.location != nil {
		loc := *m.location
		s.Location = &loc
	}
	if m.destination != nil {
		dst := *m.destination
		s.Destination = &dst
	}
	return s
}

// OnLocation applies one location fix.
func (m *Machine) OnLocation(p domain.Point) []Command {
	m.location = &p
	obs := m.detector.Observe(p, m.hitAreas)

	switch obs.Transition {
	case hitarea.Initial:
		if obs.Inside {
			return m.startEvacuation()
		}
		m.setState(StateSafe)
	case hitarea.Enter:
		// any shelter flow is abandoned once the user is back in danger
		return m.startEvacuation()
	case hitarea.Exit:
		if m.state == StateEvacuating {
			m.generation++
			m.clearRoute()
			m.message = ""
			m.setState(StateSafePendingPrompt)
		}
	case hitarea.None:
		if m.state == StateRoutingToShelter && m.destination != nil &&
			geo.Distance(p, m.destination.Location()) <= m.arrivalThreshold {
			m.arrive()
		}
	}
	return nil
}

// AnswerPrompt resolves the shelter-routing prompt. It is ignored outside
// SAFE_PENDING_PROMPT.
func (m *Machine) AnswerPrompt(accept bool) []Command {
	if m.state != StateSafePendingPrompt {
		return nil
	}
	if !accept {
		m.setState(StateSafe)
		return nil
	}
	m.setState(StateRoutingToShelter)
	return []Command{m.nextCommand(RequestShelterRoute)}
}

// Recalculate re-evaluates the last known location against the current hit
// areas and re-requests the active route.
func (m *Machine) Recalculate() []Command {
	if m.location == nil {
		return nil
	}
	prev := m.state
	if cmds := m.OnLocation(*m.location); len(cmds) > 0 || m.state != prev {
		return cmds
	}
	switch m.state {
	case StateEvacuating:
		m.message = ""
		return []Command{m.nextCommand(RequestEvacuation)}
	case StateRoutingToShelter:
		m.message = ""
		return []Command{m.nextCommand(RequestShelterRoute)}
	}
	return nil
}

// OnEvacuationResult applies a planner answer. It reports false when the
// result was stale and dropped.
func (m *Machine) OnEvacuationResult(generation uint64, res *domain.EvacuationResult, err error) bool {
	if generation != m.generation || m.state != StateEvacuating {
		return false
	}
	if err != nil || res == nil || res.Route == nil {
		m.clearRoute()
		m.message = MsgEvacuationFailed
		return true
	}
	m.message = ""
	m.route = domain.RouteState{
		Mode:       domain.RouteEvacuation,
		Route:      res.Route.Coordinates,
		StartPoint: m.startPoint(res.Route),
		EndPoint:   res.BorderPoint,
	}
	return true
}

// OnShelterResult applies a shelter route answer. A failure keeps the state
// so a recalculation can retry.
func (m *Machine) OnShelterResult(generation uint64, res *domain.ShelterRoute, err error) bool {
	if generation != m.generation || m.state != StateRoutingToShelter {
		return false
	}
	if err != nil || res == nil || res.Route == nil {
		m.clearRoute()
		m.message = MsgNoShelterRoute
		return true
	}
	shelter := res.Shelter
	m.destination = &shelter
	m.message = ""
	m.route = domain.RouteState{
		Mode:       domain.RouteToShelter,
		Route:      res.Route.Coordinates,
		StartPoint: m.startPoint(res.Route),
		EndPoint:   shelter.Location().LonLat(),
	}
	if m.location != nil && geo.Distance(*m.location, shelter.Location()) <= m.arrivalThreshold {
		m.arrive()
	}
	return true
}

func (m *Machine) startEvacuation() []Command {
	m.clearRoute()
	m.message = ""
	m.setState(StateEvacuating)
	return []Command{m.nextCommand(RequestEvacuation)}
}

func (m *Machine) arrive() {
	m.generation++
	m.setState(StateArrived)
	m.clearRoute()
	m.setState(StateSafe)
}

func (m *Machine) setState(next State) {
	prev := m.state
	m.state = next
	if prev != next && m.OnTransition != nil {
		m.OnTransition(prev, next)
	}
}

func (m *Machine) clearRoute() {
	m.route = domain.RouteState{Mode: domain.RouteNone}
	m.destination = nil
}

func (m *Machine) nextCommand(kind CommandKind) Command {
	m.generation++
	cmd := Command{
		Kind:       kind,
		Generation: m.generation,
		HitAreas:   append([]domain.HitArea(nil), m.hitAreas...),
	}
	if m.location != nil {
		cmd.From = *m.location
	}
	if kind == RequestShelterRoute {
		cmd.Shelters = append([]domain.Shelter(nil), m.shelters...)
	}
	return cmd
}

func (m *Machine) startPoint(r *domain.Route) domain.LonLat {
	if len(r.Coordinates) > 0 {
		return r.Coordinates[0]
	}
	if m.location != nil {
		return m.location.LonLat()
	}
	return domain.LonLat{}
}

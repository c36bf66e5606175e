package navigator_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drp/internal/domain"
	"drp/internal/navigator"
)

var (
	dangerZone = domain.HitArea{Lat: 0, Lng: 0, Radius: 500}
	insidePt   = domain.Point{Lat: 0, Lng: 0.001}
	outsidePt  = domain.Point{Lat: 0, Lng: 0.01}
	shelter    = domain.Shelter{ID: uuid.New(), Title: "school #12", Lat: 0, Lng: 0.02, Capacity: 300}
	nearShelt  = domain.Point{Lat: 0, Lng: 0.0203}
)

func newMachine(t *testing.T) (*navigator.Machine, *[]navigator.State) {
	t.Helper()
	m := navigator.NewMachine(75)
	m.SetHitAreas([]domain.HitArea{dangerZone})
	m.SetShelters([]domain.Shelter{shelter})
	var seen []navigator.State
	m.OnTransition = func(_, to navigator.State) { seen = append(seen, to) }
	return m, &seen
}

func evacResult() *domain.EvacuationResult {
	return &domain.EvacuationResult{
		Route: &domain.Route{
			Coordinates: []domain.LonLat{insidePt.LonLat(), {0.0045, 0}},
			Metrics:     domain.RouteMetrics{Distance: 390, Duration: 280},
		},
		BorderPoint: domain.LonLat{0.0045, 0},
		HitArea:     dangerZone,
	}
}

func shelterResult() *domain.ShelterRoute {
	return &domain.ShelterRoute{
		Route: &domain.Route{
			Coordinates: []domain.LonLat{outsidePt.LonLat(), shelter.Location().LonLat()},
			Metrics:     domain.RouteMetrics{Distance: 1120, Duration: 800},
		},
		Shelter: shelter,
	}
}

func TestMachine_StartInsideEvacuatesWithoutPrompt(t *testing.T) {
	m, seen := newMachine(t)

	cmds := m.OnLocation(insidePt)
	require.Len(t, cmds, 1)
	assert.Equal(t, navigator.RequestEvacuation, cmds[0].Kind)
	assert.Equal(t, insidePt, cmds[0].From)
	assert.Equal(t, []domain.HitArea{dangerZone}, cmds[0].HitAreas)
	assert.Equal(t, navigator.StateEvacuating, m.State())
	assert.Equal(t, []navigator.State{navigator.StateEvacuating}, *seen)

	require.True(t, m.OnEvacuationResult(cmds[0].Generation, evacResult(), nil))
	snap := m.Snapshot()
	assert.Equal(t, domain.RouteEvacuation, snap.Route.Mode)
	assert.Equal(t, domain.LonLat{0.0045, 0}, snap.Route.EndPoint)
	assert.Equal(t, insidePt.LonLat(), snap.Route.StartPoint)
	assert.True(t, snap.Inside)
}

func TestMachine_StartOutsideIsSafe(t *testing.T) {
	m, _ := newMachine(t)

	assert.Empty(t, m.OnLocation(outsidePt))
	assert.Equal(t, navigator.StateSafe, m.State())
	assert.Equal(t, domain.RouteNone, m.Snapshot().Route.Mode)
}

func TestMachine_ExitClearsRouteAndPrompts(t *testing.T) {
	m, _ := newMachine(t)

	cmds := m.OnLocation(insidePt)
	m.OnEvacuationResult(cmds[0].Generation, evacResult(), nil)

	assert.Empty(t, m.OnLocation(outsidePt), "shelter routing must wait for the prompt")
	assert.Equal(t, navigator.StateSafePendingPrompt, m.State())
	assert.Equal(t, domain.RouteNone, m.Snapshot().Route.Mode)
	assert.Empty(t, m.Snapshot().Route.Route)
}

func TestMachine_DeclinePromptReturnsToSafe(t *testing.T) {
	m, _ := newMachine(t)
	m.OnLocation(insidePt)
	m.OnLocation(outsidePt)

	assert.Empty(t, m.AnswerPrompt(false))
	assert.Equal(t, navigator.StateSafe, m.State())
}

func TestMachine_ShelterFlowArrives(t *testing.T) {
	m, seen := newMachine(t)
	m.OnLocation(insidePt)
	m.OnLocation(outsidePt)

	cmds := m.AnswerPrompt(true)
	require.Len(t, cmds, 1)
	assert.Equal(t, navigator.RequestShelterRoute, cmds[0].Kind)
	assert.Equal(t, outsidePt, cmds[0].From)
	assert.Equal(t, []domain.Shelter{shelter}, cmds[0].Shelters)
	assert.Equal(t, navigator.StateRoutingToShelter, m.State())

	require.True(t, m.OnShelterResult(cmds[0].Generation, shelterResult(), nil))
	snap := m.Snapshot()
	assert.Equal(t, domain.RouteToShelter, snap.Route.Mode)
	require.NotNil(t, snap.Destination)
	assert.Equal(t, shelter.ID, snap.Destination.ID)

	// still far from the shelter
	m.OnLocation(domain.Point{Lat: 0, Lng: 0.015})
	assert.Equal(t, navigator.StateRoutingToShelter, m.State())

	m.OnLocation(nearShelt)
	assert.Equal(t, navigator.StateSafe, m.State())
	assert.Equal(t, domain.RouteNone, m.Snapshot().Route.Mode)
	assert.Nil(t, m.Snapshot().Destination)

	assert.Equal(t, []navigator.State{
		navigator.StateEvacuating,
		navigator.StateSafePendingPrompt,
		navigator.StateRoutingToShelter,
		navigator.StateArrived,
		navigator.StateSafe,
	}, *seen)
}

func TestMachine_ReenterCancelsShelterFlow(t *testing.T) {
	m, _ := newMachine(t)
	m.OnLocation(insidePt)
	m.OnLocation(outsidePt)
	shelterCmd := m.AnswerPrompt(true)[0]

	cmds := m.OnLocation(insidePt)
	require.Len(t, cmds, 1)
	assert.Equal(t, navigator.RequestEvacuation, cmds[0].Kind)
	assert.Equal(t, navigator.StateEvacuating, m.State())

	// the shelter answer arrives after the user went back in
	assert.False(t, m.OnShelterResult(shelterCmd.Generation, shelterResult(), nil))
	assert.Equal(t, domain.RouteNone, m.Snapshot().Route.Mode)
}

func TestMachine_ReenterFromPendingPrompt(t *testing.T) {
	m, _ := newMachine(t)
	m.OnLocation(insidePt)
	m.OnLocation(outsidePt)

	cmds := m.OnLocation(insidePt)
	require.Len(t, cmds, 1)
	assert.Equal(t, navigator.StateEvacuating, m.State())
	assert.Empty(t, m.AnswerPrompt(true), "prompt is gone once evacuating again")
}

func TestMachine_StaleEvacuationResultDropped(t *testing.T) {
	m, _ := newMachine(t)
	first := m.OnLocation(insidePt)[0]

	second := m.Recalculate()
	require.Len(t, second, 1)
	assert.Greater(t, second[0].Generation, first.Generation)

	assert.False(t, m.OnEvacuationResult(first.Generation, evacResult(), nil))
	assert.Equal(t, domain.RouteNone, m.Snapshot().Route.Mode)
	assert.True(t, m.OnEvacuationResult(second[0].Generation, evacResult(), nil))
	assert.Equal(t, domain.RouteEvacuation, m.Snapshot().Route.Mode)
}

func TestMachine_EvacuationFailureMessage(t *testing.T) {
	m, _ := newMachine(t)
	cmd := m.OnLocation(insidePt)[0]

	require.True(t, m.OnEvacuationResult(cmd.Generation, nil, errors.New("no route")))
	snap := m.Snapshot()
	assert.Equal(t, navigator.StateEvacuating, snap.State)
	assert.Equal(t, navigator.MsgEvacuationFailed, snap.Message)

	// recalculating is the only recovery path
	retry := m.Recalculate()
	require.Len(t, retry, 1)
	assert.Empty(t, m.Snapshot().Message)
}

func TestMachine_ShelterFailureKeepsRouting(t *testing.T) {
	m, _ := newMachine(t)
	m.OnLocation(insidePt)
	m.OnLocation(outsidePt)
	cmd := m.AnswerPrompt(true)[0]

	require.True(t, m.OnShelterResult(cmd.Generation, nil, errors.New("no route")))
	assert.Equal(t, navigator.StateRoutingToShelter, m.State())
	assert.Equal(t, navigator.MsgNoShelterRoute, m.Snapshot().Message)

	retry := m.Recalculate()
	require.Len(t, retry, 1)
	assert.Equal(t, navigator.RequestShelterRoute, retry[0].Kind)
}

func TestMachine_RecalculatePicksUpNewIncident(t *testing.T) {
	m, _ := newMachine(t)
	m.SetHitAreas(nil)
	m.OnLocation(insidePt)
	require.Equal(t, navigator.StateSafe, m.State())

	m.SetHitAreas([]domain.HitArea{dangerZone})
	cmds := m.Recalculate()
	require.Len(t, cmds, 1)
	assert.Equal(t, navigator.RequestEvacuation, cmds[0].Kind)
	assert.Equal(t, navigator.StateEvacuating, m.State())
}

func TestMachine_RecalculateWithoutFix(t *testing.T) {
	m, _ := newMachine(t)
	assert.Empty(t, m.Recalculate())
	assert.Equal(t, navigator.StateInit, m.State())
}

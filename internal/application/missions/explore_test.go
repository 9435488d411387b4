package missions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/test/helpers"
)

func TestHandleExplore_ScansSystemThenMovesOn(t *testing.T) {
	g := helpers.NewGalaxy(t, 20, 10)
	sol := g.AddSolarSystem("Sol", 5, 5, 1)
	g.AddSolarSystem("Vega", 15, 5, 1)
	r := g.AddRealm("Terrans")
	f := g.AddFleet(r, "Scout", 4, 4, scout(t, "Scout"))
	m := g.AddMission(r, mission.MissionTypeExplore, mission.MissionPhaseExecuting, 4, 4, f.Name())
	m.SetSunName("Sol")
	h, _ := newHandler()

	for turn := 0; turn < 20 && m.SunName() == "Sol"; turn++ {
		playTurn(t, h, g, r, m, f)
		assert.False(t, g.Map.IsBlocked(f.X(), f.Y()))
		r.Visibility().Scan(f.Coordinate(), 0)
	}

	assert.True(t, g.Map.IsSolarSystemScanned(r.Visibility(), sol))
	assert.Equal(t, "Vega", m.SunName())
	assert.Equal(t, mission.MissionPhaseTrekking, m.Phase())
}

func TestHandleExplore_EverythingScannedHolds(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	g.AddSolarSystem("Sol", 5, 5, 1)
	r := g.AddRealm("Terrans")
	r.Visibility().Scan(g.Map.SolarSystemByName("Sol").Center(), 1)
	f := g.AddFleet(r, "Scout", 4, 4, scout(t, "Scout"))
	m := g.AddMission(r, mission.MissionTypeExplore, mission.MissionPhaseExecuting, 4, 4, f.Name())
	m.SetSunName("Sol")
	h, _ := newHandler()

	require.NoError(t, h.HandleExplore(context.Background(), m, f, r, g.Map))

	assert.Equal(t, mission.MissionPhaseExecuting, m.Phase())
	assert.Equal(t, 1, r.Missions().Len())
	assert.Zero(t, f.MovesLeft())
}

func TestHandleColonyExplore_EndsWhenSystemScanned(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	sol := g.AddSolarSystem("Sol", 5, 5, 1)
	r := g.AddRealm("Terrans")
	f := g.AddFleet(r, "Surveyor", 1, 1, scout(t, "Surveyor"))
	m := g.AddMission(r, mission.MissionTypeColonyExplore, mission.MissionPhaseBuilding, 4, 4, f.Name())
	m.SetSunName("Sol")
	h, rec := newHandler()

	for turn := 0; turn < 30 && r.Missions().Len() > 0; turn++ {
		playTurn(t, h, g, r, m, f)
		r.Visibility().Scan(f.Coordinate(), 0)
	}

	assert.True(t, g.Map.IsSolarSystemScanned(r.Visibility(), sol))
	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"completed"}, rec.removals)
}

func TestHandleColonyExplore_UnknownSystem(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	f := g.AddFleet(r, "Surveyor", 1, 1, scout(t, "Surveyor"))
	m := g.AddMission(r, mission.MissionTypeColonyExplore, mission.MissionPhaseBuilding, 4, 4, f.Name())
	m.SetSunName("Nowhere")
	h, rec := newHandler()

	require.NoError(t, h.HandleColonyExplore(context.Background(), m, f, r, g.Map))

	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"target_lost"}, rec.removals)
}

func TestHandleRoam_PicksAnotherSystem(t *testing.T) {
	g := helpers.NewGalaxy(t, 20, 10)
	g.AddSolarSystem("Sol", 5, 5, 1)
	g.AddSolarSystem("Vega", 15, 5, 1)
	g.AddSolarSystem("Deneb", 5, 1, 1)
	r := g.AddRealm("Terrans")
	f := g.AddFleet(r, "Wanderer", 4, 4, scout(t, "Wanderer"))
	m := g.AddMission(r, mission.MissionTypeRoam, mission.MissionPhaseTrekking, 4, 4, f.Name())
	m.SetSunName("Sol")
	h, _ := newHandler()

	require.NoError(t, h.HandleRoam(context.Background(), m, f, r, g.Map))

	assert.Equal(t, "Deneb", m.SunName())
	assert.NotNil(t, f.Route())
}

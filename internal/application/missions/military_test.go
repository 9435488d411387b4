package missions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/test/helpers"
)

func bomber(t *testing.T, name string) *navigation.Ship {
	return helpers.NewShip(t, navigation.ShipSpec{Name: name, MilitaryPower: 2, Bombs: true})
}

func TestHandleDefend_RefreshCycle(t *testing.T) {
	tests := []struct {
		name          string
		missionTime   int
		expectedPhase mission.MissionPhase
		expectedTime  int
	}{
		{"below refresh keeps guarding", 29, mission.MissionPhaseExecuting, 30},
		{"at refresh hands back to planning", 30, mission.MissionPhasePlanning, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := helpers.NewGalaxy(t, 10, 10)
			r := g.AddRealm("Terrans")
			f := g.AddFleet(r, "Guard", 5, 5, warship(t, "Frigate", 1))
			m := g.AddMission(r, mission.MissionTypeDefend, mission.MissionPhaseExecuting, 5, 5, f.Name())
			m.SetMissionTime(tt.missionTime)
			h, _ := newHandler()

			require.NoError(t, h.HandleDefend(context.Background(), m, f, r, g.Map))

			assert.Equal(t, tt.expectedPhase, m.Phase())
			assert.Equal(t, tt.expectedTime, m.MissionTime())
			assert.Zero(t, f.MovesLeft())
		})
	}
}

func TestHandleDefend_ArrivalStartsGuarding(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	f := g.AddFleet(r, "Guard", 5, 5, warship(t, "Frigate", 1))
	m := g.AddMission(r, mission.MissionTypeDefend, mission.MissionPhaseTrekking, 5, 5, f.Name())
	m.SetMissionTime(12)
	h, _ := newHandler()

	require.NoError(t, h.HandleDefend(context.Background(), m, f, r, g.Map))

	assert.Equal(t, mission.MissionPhaseExecuting, m.Phase())
	assert.Zero(t, m.MissionTime())
	require.NotNil(t, f.Route())
	assert.Zero(t, f.Route().Length())
	assert.Zero(t, f.MovesLeft())
}

func TestHandleAttack_PlanningMergesAndLaunches(t *testing.T) {
	// Arrange
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	vega := g.AddPlanet("Vega", 8, 5, "Rivals", 5)
	lead := g.AddFleet(r, "Strike #0", 5, 5, bomber(t, "Bomber"))
	wing := g.AddFleet(r, "Strike #1", 5, 5, warship(t, "Destroyer", 4))
	m := g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhasePlanning, 5, 5, lead.Name())
	m.SetTargetPlanet(vega.Name())
	g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhaseTrekking, 5, 5, wing.Name()).SetTargetPlanet(vega.Name())
	h, rec := newHandler()

	// Act
	require.NoError(t, h.HandleAttack(context.Background(), m, lead, r, g.Map))

	// Assert
	assert.Equal(t, 2, lead.NumberOfShips())
	assert.Equal(t, 1, r.Fleets().Len())
	assert.Equal(t, 1, r.Missions().Len())
	assert.Equal(t, []string{"merged"}, rec.removals)
	assert.Equal(t, mission.MissionPhaseExecuting, m.Phase())
	assert.Equal(t, vega.Coordinate(), m.Target())
	require.NotNil(t, lead.Route())
	assert.Equal(t, vega.Coordinate(), lead.Route().End())
}

func TestHandleAttack_PlanningWaitsWhenTooWeak(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	g.AddPlanet("Vega", 8, 5, "Rivals", 5)
	lead := g.AddFleet(r, "Strike #0", 5, 5, bomber(t, "Bomber"))
	m := g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhasePlanning, 5, 5, lead.Name())
	m.SetTargetPlanet("Vega")
	h, _ := newHandler()

	require.NoError(t, h.HandleAttack(context.Background(), m, lead, r, g.Map))

	assert.Equal(t, mission.MissionPhasePlanning, m.Phase())
	assert.Equal(t, shared.Coordinate{X: 5, Y: 5}, m.Target())
	assert.Nil(t, lead.Route())
	assert.Zero(t, lead.MovesLeft())
}

func TestHandleAttack_PlanningWaitsForGroup(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	g.AddPlanet("Vega", 8, 5, "Rivals", 5)
	lead := g.AddFleet(r, "Strike #0", 5, 5, bomber(t, "Bomber"), warship(t, "Destroyer", 4))
	straggler := g.AddFleet(r, "Strike #1", 1, 1, warship(t, "Cruiser", 3))
	m := g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhasePlanning, 5, 5, lead.Name())
	m.SetTargetPlanet("Vega")
	g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhaseTrekking, 5, 5, straggler.Name())
	h, _ := newHandler()

	require.NoError(t, h.HandleAttack(context.Background(), m, lead, r, g.Map))

	assert.Equal(t, mission.MissionPhasePlanning, m.Phase())
	assert.Equal(t, 2, r.Fleets().Len())
}

func TestHandleAttack_RallyArrivalJoinsGroup(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	host := g.AddFleet(r, "Strike #0", 5, 5, bomber(t, "Bomber"))
	arriving := g.AddFleet(r, "Strike #2", 5, 5, warship(t, "Destroyer", 4))
	m := g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhaseTrekking, 5, 5, arriving.Name())
	h, rec := newHandler()

	require.NoError(t, h.HandleAttack(context.Background(), m, arriving, r, g.Map))

	assert.Equal(t, 2, host.NumberOfShips())
	assert.False(t, r.Fleets().Exists(arriving.Name()))
	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"merged"}, rec.removals)
}

func TestHandleAttack_ExecutingEndsWhenPlanetTaken(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	vega := g.AddPlanet("Vega", 8, 5, "Rivals", 5)
	f := g.AddFleet(r, "Strike #0", 8, 5, bomber(t, "Bomber"))
	m := g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhaseExecuting, 8, 5, f.Name())
	m.SetTargetPlanet(vega.Name())
	h, rec := newHandler()
	ctx := context.Background()

	require.NoError(t, h.HandleAttack(ctx, m, f, r, g.Map))
	assert.Equal(t, 1, r.Missions().Len())
	assert.Zero(t, f.MovesLeft())

	vega.SetOwner("Terrans")
	f.ResetMoves()
	require.NoError(t, h.HandleAttack(ctx, m, f, r, g.Map))
	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"completed"}, rec.removals)
}

func TestHandleGather_BindsClosestQualifyingFleet(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	near := g.AddFleet(r, "Bombers", 6, 6, bomber(t, "Bomber"))
	g.AddFleet(r, "Far Bombers", 1, 1, bomber(t, "Bomber"))
	g.AddFleet(r, "Assault", 7, 7, warship(t, "Destroyer", 4))
	m := g.AddMission(r, mission.MissionTypeGather, mission.MissionPhaseBuilding, 8, 8, "")
	require.NoError(t, m.SetShipType(mission.ShipTypeBomber))
	h, _ := newHandler()

	require.NoError(t, h.HandleGather(context.Background(), m, nil, r, g.Map))

	assert.Equal(t, near.Name(), m.FleetName())
	assert.Equal(t, mission.MissionPhaseTrekking, m.Phase())
	require.NotNil(t, near.Route())
	assert.Equal(t, shared.Coordinate{X: 8, Y: 8}, near.Route().End())
}

func TestHandleGather_SkipsClaimedFleets(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	busy := g.AddFleet(r, "Bombers", 6, 6, bomber(t, "Bomber"))
	g.AddMission(r, mission.MissionTypeDefend, mission.MissionPhaseExecuting, 6, 6, busy.Name())
	m := g.AddMission(r, mission.MissionTypeGather, mission.MissionPhaseBuilding, 8, 8, "")
	require.NoError(t, m.SetShipType(mission.ShipTypeBomber))
	h, _ := newHandler()

	require.NoError(t, h.HandleGather(context.Background(), m, nil, r, g.Map))

	assert.False(t, m.IsBound())
	assert.Equal(t, mission.MissionPhaseBuilding, m.Phase())
}

func TestHandleGather_ArrivalJoinsWaitingFleet(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	waiting := g.AddFleet(r, "Siege", 8, 8, warship(t, "Destroyer", 4))
	g.AddMission(r, mission.MissionTypeDestroyStarbase, mission.MissionPhasePlanning, 8, 8, waiting.Name())
	gathered := g.AddFleet(r, "Bombers", 8, 8, bomber(t, "Bomber"))
	m := g.AddMission(r, mission.MissionTypeGather, mission.MissionPhaseTrekking, 8, 8, gathered.Name())
	h, rec := newHandler()

	require.NoError(t, h.HandleGather(context.Background(), m, gathered, r, g.Map))

	assert.Equal(t, 2, waiting.NumberOfShips())
	assert.False(t, r.Fleets().Exists(gathered.Name()))
	assert.Equal(t, 1, r.Missions().Len())
	assert.Equal(t, []string{"merged"}, rec.removals)
}

func TestHandleIntercept_ChasesQuarry(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	rivals := g.AddRealm("Rivals")
	quarry := g.AddFleet(rivals, "Courier", 6, 2, scout(t, "Courier"))
	f := g.AddFleet(r, "Hunter", 2, 2, warship(t, "Frigate", 2))
	m := g.AddMission(r, mission.MissionTypeIntercept, mission.MissionPhaseBuilding, 6, 2, f.Name())
	m.SetTargetRealm("Rivals")
	m.SetTargetPlanet(quarry.Name())
	h, rec := newHandler()

	// The quarry moves away before the first chase step
	quarry.SetCoordinate(shared.Coordinate{X: 7, Y: 3})
	playTurn(t, h, g, r, m, f)
	assert.Equal(t, shared.Coordinate{X: 7, Y: 3}, m.Target())
	assert.Equal(t, mission.MissionPhaseTrekking, m.Phase())

	playTurn(t, h, g, r, m, f)
	playTurn(t, h, g, r, m, f)
	assert.Equal(t, quarry.Coordinate(), f.Coordinate())
	assert.Equal(t, mission.MissionPhaseExecuting, m.Phase())

	rivals.RemoveFleet(quarry)
	playTurn(t, h, g, r, m, f)
	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"completed"}, rec.removals)
}

func TestHandleDestroyFleet_IgnoresUnarmedQuarry(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	r := g.AddRealm("Terrans")
	rivals := g.AddRealm("Rivals")
	quarry := g.AddFleet(rivals, "Courier", 6, 2, scout(t, "Courier"))
	f := g.AddFleet(r, "Hunter", 2, 2, warship(t, "Frigate", 2))
	m := g.AddMission(r, mission.MissionTypeDestroyFleet, mission.MissionPhaseBuilding, 6, 2, f.Name())
	m.SetTargetRealm("Rivals")
	m.SetTargetPlanet(quarry.Name())
	h, rec := newHandler()

	require.NoError(t, h.HandleDestroyFleet(context.Background(), m, f, r, g.Map))

	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"target_lost"}, rec.removals)
}

func TestHandlePrivateer_AttacksNearbyUnarmedFleet(t *testing.T) {
	g := helpers.NewGalaxy(t, 12, 12)
	g.AddSolarSystem("Sol", 10, 10, 1)
	r := g.AddRealm("Terrans")
	rivals := g.AddRealm("Rivals")
	g.AddFleet(rivals, "Escort", 4, 2, warship(t, "Frigate", 3))
	trader := g.AddFleet(rivals, "Trader", 5, 2, scout(t, "Hauler"))
	f := g.AddFleet(r, "Corsair", 2, 2, helpers.NewShip(t, navigation.ShipSpec{Name: "Corsair", MilitaryPower: 2, Privateer: true}))
	m := g.AddMission(r, mission.MissionTypePrivateer, mission.MissionPhaseTrekking, 10, 10, f.Name())
	h, _ := newHandler()

	require.NoError(t, h.HandlePrivateer(context.Background(), m, f, r, g.Map))

	assert.Equal(t, trader.Name(), m.TargetPlanet())
	assert.Equal(t, "Rivals", m.TargetRealm())
	assert.Equal(t, trader.Coordinate(), m.Target())
	require.NotNil(t, f.Route())
}

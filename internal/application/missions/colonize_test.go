package missions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
	"github.com/andrescamacho/realmfleet-go/test/helpers"
)

func colonyShip(t *testing.T, capacity int) *navigation.Ship {
	return helpers.NewShip(t, navigation.ShipSpec{Name: "Ark", Design: "Ark", ColonyModule: true, ColonistCapacity: capacity})
}

func TestHandleColonize_LoadsThenFoundsColony(t *testing.T) {
	// Arrange
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	home := g.AddPlanet("Terra", 2, 2, "Terrans", 10)
	nova := g.AddPlanet("Nova", 4, 2, "", 0)
	f := g.AddFleet(r, "Settlers", 2, 2, colonyShip(t, 2))
	m := g.AddMission(r, mission.MissionTypeColonize, mission.MissionPhaseBuilding, 4, 2, f.Name())
	m.SetPlanetBuilding(home.Name())
	h, rec := newHandler()

	// Act - first turn embarks colonists and flies
	playTurn(t, h, g, r, m, f)

	// Assert
	assert.Equal(t, 8, home.Population())
	assert.Equal(t, 2, f.Colonists())
	assert.Equal(t, mission.MissionPhaseTrekking, m.Phase())
	assert.Equal(t, nova.Coordinate(), f.Coordinate())

	// Act - second turn settles
	playTurn(t, h, g, r, m, f)

	// Assert
	assert.Equal(t, "Terrans", nova.Owner())
	assert.Equal(t, 2, nova.Population())
	assert.Equal(t, 2, nova.Workers(starmap.WorkerFood))
	assert.Zero(t, r.ShipStat("Ark").InUse())
	assert.False(t, r.Fleets().Exists("Settlers"))
	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"completed"}, rec.removals)
}

func TestHandleColonize_WaitsForPopulation(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	home := g.AddPlanet("Terra", 2, 2, "Terrans", 2)
	f := g.AddFleet(r, "Settlers", 2, 2, colonyShip(t, 2))
	m := g.AddMission(r, mission.MissionTypeColonize, mission.MissionPhaseBuilding, 4, 2, f.Name())
	m.SetPlanetBuilding(home.Name())
	h, _ := newHandler()

	require.NoError(t, h.HandleColonize(context.Background(), m, f, r, g.Map))

	assert.Equal(t, mission.MissionPhaseLoading, m.Phase())
	assert.Equal(t, 2, home.Population())
	assert.Zero(t, f.MovesLeft())
	assert.Nil(t, f.Route())
}

func TestHandleColonize_EmbarksOnlyAtBuildingPlanet(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	home := g.AddPlanet("Terra", 2, 2, "Terrans", 10)
	f := g.AddFleet(r, "Settlers", 6, 6, colonyShip(t, 2))
	m := g.AddMission(r, mission.MissionTypeColonize, mission.MissionPhaseBuilding, 4, 2, f.Name())
	m.SetPlanetBuilding(home.Name())
	h, _ := newHandler()

	require.NoError(t, h.HandleColonize(context.Background(), m, f, r, g.Map))

	assert.Equal(t, 10, home.Population())
	assert.Zero(t, f.Colonists())
	assert.Equal(t, mission.MissionPhaseLoading, m.Phase())
	assert.Nil(t, f.Route())
}

func TestHandleColonize_ThresholdsPerUnit(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	// 3 > 2 lets the first colonist go; the second needs more than 3
	home := g.AddPlanet("Terra", 2, 2, "Terrans", 3)
	f := g.AddFleet(r, "Settlers", 2, 2, colonyShip(t, 4))
	m := g.AddMission(r, mission.MissionTypeColonize, mission.MissionPhaseLoading, 4, 2, f.Name())
	m.SetPlanetBuilding(home.Name())
	h, _ := newHandler()

	require.NoError(t, h.HandleColonize(context.Background(), m, f, r, g.Map))

	assert.Equal(t, 1, f.Colonists())
	assert.Equal(t, 2, home.Population())
	assert.Equal(t, mission.MissionPhaseTrekking, m.Phase())
}

func TestHandleColonize_IsIdempotent(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	nova := g.AddPlanet("Nova", 4, 2, "", 0)
	escort := warship(t, "Escort", 1)
	f := g.AddFleet(r, "Settlers", 4, 2, helpers.NewShip(t, navigation.ShipSpec{
		Name: "Ark", Design: "Ark", ColonyModule: true, ColonistCapacity: 3, Colonists: 3,
	}), escort)
	m := g.AddMission(r, mission.MissionTypeColonize, mission.MissionPhaseTrekking, 4, 2, f.Name())
	h, rec := newHandler()
	ctx := context.Background()

	require.NoError(t, h.HandleColonize(ctx, m, f, r, g.Map))
	require.NoError(t, h.HandleColonize(ctx, m, f, r, g.Map))

	assert.Equal(t, 3, nova.Population())
	assert.Zero(t, r.ShipStat("Ark").InUse())
	assert.Equal(t, []*navigation.Ship{escort}, f.Ships())
	assert.True(t, r.Fleets().Exists("Settlers"))
	assert.Equal(t, []string{"completed"}, rec.removals)
}

func TestHandleColonize_EmptyHoldStillSettlesOne(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	race := helpers.DefaultRace("Builders")
	race.PrefersProductionWorkers = true
	r := g.AddRealmWithRace("Builders", race, true)
	nova := g.AddPlanet("Nova", 4, 2, "", 0)
	f := g.AddFleet(r, "Settlers", 4, 2, colonyShip(t, 2))
	m := g.AddMission(r, mission.MissionTypeColonize, mission.MissionPhaseTrekking, 4, 2, f.Name())
	h, _ := newHandler()

	require.NoError(t, h.HandleColonize(context.Background(), m, f, r, g.Map))

	assert.Equal(t, 1, nova.Population())
	assert.Equal(t, 1, nova.Workers(starmap.WorkerProduction))
}

func TestHandleColonize_TargetTakenRemovesMission(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	g.AddPlanet("Nova", 4, 2, "Rivals", 4)
	f := g.AddFleet(r, "Settlers", 4, 2, colonyShip(t, 2))
	m := g.AddMission(r, mission.MissionTypeColonize, mission.MissionPhaseTrekking, 4, 2, f.Name())
	h, rec := newHandler()

	require.NoError(t, h.HandleColonize(context.Background(), m, f, r, g.Map))

	assert.NotNil(t, f.ColonyShip())
	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"target_lost"}, rec.removals)
}

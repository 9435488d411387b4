package missions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/test/helpers"
)

func hauler(t *testing.T) *navigation.Ship {
	return helpers.NewShip(t, navigation.ShipSpec{Name: "Hauler", TradeCapacity: 2})
}

func TestHandleTrade_RoundTrip(t *testing.T) {
	// Arrange
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	g.AddPlanet("Terra", 2, 2, "Terrans", 9)
	g.AddPlanet("Vega", 5, 2, "Rivals", 9)
	r.SetHomePlanet("Terra")
	f := g.AddFleet(r, "Merchant", 2, 2, hauler(t))
	m := g.AddMission(r, mission.MissionTypeTradeFleet, mission.MissionPhaseLoading, 2, 2, f.Name())
	m.SetPlanetBuilding("Terra")
	m.SetTargetPlanet("Vega")
	h, _ := newHandler()

	// Act - load, fly, sell abroad
	for turn := 0; turn < 3; turn++ {
		playTurn(t, h, g, r, m, f)
	}

	// Assert - 2 goods at 1 + 9/3 each
	assert.Equal(t, 8, r.Credits())
	assert.Equal(t, mission.MissionPhaseLoading, m.Phase())
	assert.Equal(t, "Vega", m.PlanetBuilding())
	assert.Equal(t, "Terra", m.TargetPlanet())

	// Act - back home and sell again
	for turn := 0; turn < 3; turn++ {
		playTurn(t, h, g, r, m, f)
	}

	// Assert - own port pays 1 per unit
	assert.Equal(t, 10, r.Credits())
	assert.Equal(t, "Terra", m.PlanetBuilding())
	assert.Equal(t, "Vega", m.TargetPlanet())
	assert.Equal(t, 1, r.Missions().Len())
}

func TestHandleTrade_UnprofitablePortSendsFleetHome(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	g.AddPlanet("Terra", 2, 2, "Terrans", 9)
	g.AddPlanet("Rock", 5, 2, "", 0)
	r.SetHomePlanet("Terra")
	f := g.AddFleet(r, "Merchant", 5, 2, hauler(t))
	f.LoadTradeGoods()
	m := g.AddMission(r, mission.MissionTypeTradeFleet, mission.MissionPhaseExecuting, 5, 2, f.Name())
	m.SetPlanetBuilding("Terra")
	m.SetTargetPlanet("Rock")
	h, rec := newHandler()

	playTurn(t, h, g, r, m, f)

	assert.Zero(t, r.Credits())
	assert.Equal(t, mission.MissionPhaseTrekking, m.Phase())
	assert.Empty(t, m.PlanetBuilding())
	assert.Equal(t, "Terra", m.TargetPlanet())
	assert.NotNil(t, f.Route())

	// Fly, arrive, then sell the unsold cargo at home
	for turn := 0; turn < 3; turn++ {
		playTurn(t, h, g, r, m, f)
	}

	assert.Equal(t, 2, r.Credits())
	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"completed"}, rec.removals)
}

func TestHandleTrade_NothingToSellAtHomeEnds(t *testing.T) {
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	g.AddPlanet("Terra", 2, 2, "Terrans", 9)
	r.SetHomePlanet("Terra")
	f := g.AddFleet(r, "Merchant", 2, 2, hauler(t))
	m := g.AddMission(r, mission.MissionTypeTradeFleet, mission.MissionPhaseExecuting, 2, 2, f.Name())
	m.SetTargetPlanet("Terra")
	h, rec := newHandler()

	playTurn(t, h, g, r, m, f)

	assert.Zero(t, r.Missions().Len())
	assert.Equal(t, []string{"unprofitable"}, rec.removals)
}

func TestHandleTrade_LoadsOnlyAtLoadingPort(t *testing.T) {
	// Arrange
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	terra := g.AddPlanet("Terra", 2, 2, "Terrans", 9)
	g.AddPlanet("Vega", 5, 2, "Rivals", 9)
	f := g.AddFleet(r, "Merchant", 8, 8, hauler(t))
	m := g.AddMission(r, mission.MissionTypeTradeFleet, mission.MissionPhaseLoading, 8, 8, f.Name())
	m.SetPlanetBuilding("Terra")
	m.SetTargetPlanet("Vega")
	h, _ := newHandler()

	// Act - first turn only flies toward the loading port
	playTurn(t, h, g, r, m, f)

	// Assert
	assert.Equal(t, mission.MissionPhaseLoading, m.Phase())
	assert.Equal(t, terra.Coordinate(), m.Target())
	assert.Zero(t, f.Ships()[0].TradeGoods())

	// Act - arrive, then load and leave for Vega
	for turn := 0; turn < 4 && m.Phase() == mission.MissionPhaseLoading; turn++ {
		playTurn(t, h, g, r, m, f)
	}

	// Assert
	assert.Equal(t, mission.MissionPhaseTrekking, m.Phase())
	assert.Equal(t, shared.Coordinate{X: 5, Y: 2}, m.Target())
	assert.Equal(t, 2, f.Ships()[0].TradeGoods())
}

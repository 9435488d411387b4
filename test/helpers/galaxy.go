package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// Galaxy is a small hand-built star map with realms for tests
type Galaxy struct {
	t      testing.TB
	Map    *starmap.StarMap
	Realms map[string]*realm.Realm
}

// NewGalaxy creates an empty map of the given size
func NewGalaxy(t testing.TB, width, height int) *Galaxy {
	t.Helper()
	sm, err := starmap.NewStarMap(width, height)
	require.NoError(t, err)
	return &Galaxy{t: t, Map: sm, Realms: make(map[string]*realm.Realm)}
}

// DefaultRace returns the stock AI tuning under a race name
func DefaultRace(name string) realm.Race {
	return realm.Race{
		Name:                     name,
		ExploringThreshold:       10,
		DefenseRefresh:           30,
		AttackMinBombersTroopers: 1,
		AttackMinMilitaryShips:   2,
		MaxFleetShips:            10,
	}
}

// AddRealm creates an AI realm with the default race and registers its fleets on the map
func (g *Galaxy) AddRealm(name string) *realm.Realm {
	return g.AddRealmWithRace(name, DefaultRace(name), true)
}

func (g *Galaxy) AddRealmWithRace(name string, race realm.Race, ai bool) *realm.Realm {
	g.t.Helper()
	r, err := realm.NewRealm(name, race, ai, g.Map.NewVisibility())
	require.NoError(g.t, err)
	g.Map.RegisterFleetOwner(r)
	g.Realms[name] = r
	return r
}

func (g *Galaxy) AddPlanet(name string, x, y int, owner string, population int) *starmap.Planet {
	g.t.Helper()
	p, err := starmap.NewPlanet(name, shared.Coordinate{X: x, Y: y}, owner, population)
	require.NoError(g.t, err)
	require.NoError(g.t, g.Map.AddPlanet(p))
	return p
}

func (g *Galaxy) AddSolarSystem(name string, x, y, radius int) *starmap.SolarSystem {
	g.t.Helper()
	s, err := starmap.NewSolarSystem(name, shared.Coordinate{X: x, Y: y}, radius)
	require.NoError(g.t, err)
	require.NoError(g.t, g.Map.AddSolarSystem(s))
	return s
}

// Wall fills column x from y0 to y1 inclusive with black holes
func (g *Galaxy) Wall(x, y0, y1 int) {
	g.t.Helper()
	for y := y0; y <= y1; y++ {
		require.NoError(g.t, g.Map.SetTile(x, y, starmap.TileBlackHole))
	}
}

// NewShip builds a ship, filling in design and speeds when left at zero
func NewShip(t testing.TB, spec navigation.ShipSpec) *navigation.Ship {
	t.Helper()
	if spec.Design == "" {
		spec.Design = spec.Name + " Mk1"
	}
	if spec.Speed == 0 {
		spec.Speed = 1
	}
	if spec.FTLSpeed == 0 {
		spec.FTLSpeed = 3
	}
	ship, err := navigation.NewShip(spec)
	require.NoError(t, err)
	return ship
}

// AddFleet commissions a fleet into a realm
func (g *Galaxy) AddFleet(r *realm.Realm, name string, x, y int, ships ...*navigation.Ship) *navigation.Fleet {
	g.t.Helper()
	f, err := navigation.NewFleet(name, shared.Coordinate{X: x, Y: y}, ships...)
	require.NoError(g.t, err)
	r.CommissionFleet(f)
	return f
}

// AddMission adds a mission bound to fleetName (empty for unbound)
func (g *Galaxy) AddMission(r *realm.Realm, missionType mission.MissionType, phase mission.MissionPhase, x, y int, fleetName string) *mission.Mission {
	g.t.Helper()
	m, err := mission.NewMission(missionType, phase, shared.Coordinate{X: x, Y: y})
	require.NoError(g.t, err)
	m.SetFleetName(fleetName)
	r.Missions().Add(m)
	return m
}

package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/domain/fleet"
	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

func ship(t *testing.T, name string, spec navigation.ShipSpec) *navigation.Ship {
	t.Helper()
	spec.Name = name
	spec.Design = name + " Mk1"
	spec.Speed = 1
	spec.FTLSpeed = 3
	s, err := navigation.NewShip(spec)
	require.NoError(t, err)
	return s
}

func newFleet(t *testing.T, name string, at shared.Coordinate, ships ...*navigation.Ship) *navigation.Fleet {
	t.Helper()
	f, err := navigation.NewFleet(name, at, ships...)
	require.NoError(t, err)
	return f
}

// gatherFleets builds the three single-ship fleets used by the gather scenarios
func gatherFleets(t *testing.T) (bomber, trooper, assault *navigation.Fleet) {
	bomber = newFleet(t, "Bomber", shared.Coordinate{X: 1, Y: 1}, ship(t, "Bomber", navigation.ShipSpec{MilitaryPower: 2, Bombs: true}))
	trooper = newFleet(t, "Trooper", shared.Coordinate{X: 2, Y: 2}, ship(t, "Trooper", navigation.ShipSpec{Trooper: true}))
	assault = newFleet(t, "Assault", shared.Coordinate{X: 3, Y: 3}, ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	return bomber, trooper, assault
}

func TestFindGatheringFleet_ByShipType(t *testing.T) {
	bomber, trooper, assault := gatherFleets(t)
	fleets := []*navigation.Fleet{bomber, trooper, assault}
	selector := fleet.NewGatherSelector()
	target := shared.Coordinate{X: 10, Y: 10}

	tests := []struct {
		shipType string
		expected *navigation.Fleet
	}{
		{mission.ShipTypeAssault, assault},
		{mission.ShipTypeTrooper, trooper},
		{mission.ShipTypeBomber, bomber},
	}

	for _, tt := range tests {
		t.Run(tt.shipType, func(t *testing.T) {
			result, err := selector.FindGatheringFleet(tt.shipType, target, fleets, nil)

			require.NoError(t, err)
			assert.Same(t, tt.expected, result.Fleet)
		})
	}
}

func TestFindGatheringFleet_SkipsClaimedAndPrefersClosest(t *testing.T) {
	far := newFleet(t, "Assault #0", shared.Coordinate{X: 0, Y: 0}, ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	near := newFleet(t, "Assault #1", shared.Coordinate{X: 8, Y: 8}, ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	target := shared.Coordinate{X: 10, Y: 10}
	selector := fleet.NewGatherSelector()

	result, err := selector.FindGatheringFleet(mission.ShipTypeAssault, target, []*navigation.Fleet{far, near}, nil)
	require.NoError(t, err)
	assert.Same(t, near, result.Fleet)
	assert.Equal(t, 2, result.Distance)

	claimed := func(name string) bool { return name == "Assault #1" }
	result, err = selector.FindGatheringFleet(mission.ShipTypeAssault, target, []*navigation.Fleet{far, near}, claimed)
	require.NoError(t, err)
	assert.Same(t, far, result.Fleet)
}

func TestFindGatheringFleet_NoneQualifies(t *testing.T) {
	_, trooper, _ := gatherFleets(t)

	_, err := fleet.NewGatherSelector().FindGatheringFleet(mission.ShipTypeBomber, shared.Coordinate{}, []*navigation.Fleet{trooper}, nil)

	assert.Error(t, err)
}

func TestMergeFleets_SamePrefixAtSameCell(t *testing.T) {
	at := shared.Coordinate{X: 4, Y: 4}
	first := newFleet(t, "Defender #0", at,
		ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}),
		ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	second := newFleet(t, "Defender #1", at, ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	fleets := navigation.NewFleetList(first, second)
	require.Equal(t, 2, fleets.Len())

	absorbed := fleet.NewMergeService().MergeFleets(first, fleets, 10)

	assert.Equal(t, []*navigation.Fleet{second}, absorbed)
	assert.Equal(t, 1, fleets.Len())
	assert.Equal(t, 3, first.NumberOfShips())
	assert.True(t, second.IsEmpty())
}

func TestMergeFleets_TooBig(t *testing.T) {
	at := shared.Coordinate{X: 4, Y: 4}
	first := newFleet(t, "Defender #0", at,
		ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}),
		ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	second := newFleet(t, "Defender #1", at, ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	fleets := navigation.NewFleetList(first, second)

	absorbed := fleet.NewMergeService().MergeFleets(first, fleets, 2)

	assert.Empty(t, absorbed)
	assert.Equal(t, 2, fleets.Len())
	assert.Equal(t, 2, first.NumberOfShips())
	assert.Equal(t, 1, second.NumberOfShips())
}

func TestMergeFleets_IgnoresOtherPrefixesAndCells(t *testing.T) {
	at := shared.Coordinate{X: 4, Y: 4}
	first := newFleet(t, "Defender #0", at, ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	other := newFleet(t, "Scout", at, ship(t, "Scout", navigation.ShipSpec{}))
	away := newFleet(t, "Defender #1", shared.Coordinate{X: 5, Y: 4}, ship(t, "Destroyer", navigation.ShipSpec{MilitaryPower: 4}))
	fleets := navigation.NewFleetList(first, other, away)

	absorbed := fleet.NewMergeService().MergeFleets(first, fleets, 10)

	assert.Empty(t, absorbed)
	assert.Equal(t, 3, fleets.Len())
}

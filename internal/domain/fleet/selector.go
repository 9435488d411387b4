package fleet

import (
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// SelectionResult contains the result of gather fleet selection
type SelectionResult struct {
	Fleet    *navigation.Fleet
	Distance int
	Reason   string
}

// GatherSelector implements the fleet selection rules of GATHER missions
type GatherSelector struct{}

// NewGatherSelector creates a new gather selector
func NewGatherSelector() *GatherSelector {
	return &GatherSelector{}
}

// FindGatheringFleet selects the fleet a GATHER mission should claim.
//
// Business Rules:
// 1. ASSAULT fleets carry military power but neither bombs nor troopers
// 2. TROOPER fleets carry at least one trooper ship
// 3. BOMBER fleets carry at least one ship with bombs
// 4. Fleets already bound by any mission are skipped
// 5. The fleet closest to the gathering point wins; ties keep fleet order
//
// Parameters:
//   - shipType: ASSAULT, TROOPER or BOMBER
//   - target: Gathering point
//   - fleets: The realm's fleets
//   - claimed: Reports whether a fleet name is already bound
//
// Returns:
//   - SelectionResult with the selected fleet and its distance
//   - Error if no fleet qualifies
func (s *GatherSelector) FindGatheringFleet(
	shipType string,
	target shared.Coordinate,
	fleets []*navigation.Fleet,
	claimed func(fleetName string) bool,
) (*SelectionResult, error) {
	if !mission.IsValidGatherShipType(shipType) {
		return nil, fmt.Errorf("unknown gather ship type %q", shipType)
	}

	var closest *navigation.Fleet
	minDistance := 0

	for _, f := range fleets {
		if f.IsEmpty() || !Qualifies(f, shipType) {
			continue
		}
		if claimed != nil && claimed(f.Name()) {
			continue
		}

		distance := f.Coordinate().DistanceTo(target)
		if closest == nil || distance < minDistance {
			closest = f
			minDistance = distance
		}
	}

	if closest == nil {
		return nil, fmt.Errorf("no unclaimed %s fleet available", shipType)
	}

	return &SelectionResult{
		Fleet:    closest,
		Distance: minDistance,
		Reason:   fmt.Sprintf("closest %s fleet (%d cells)", shipType, minDistance),
	}, nil
}

// Qualifies checks whether a fleet belongs to a gather ship category
func Qualifies(f *navigation.Fleet, shipType string) bool {
	switch shipType {
	case mission.ShipTypeAssault:
		return f.TotalMilitaryPower() > 0 && !f.HasBombs() && !f.HasTroopers()
	case mission.ShipTypeTrooper:
		return f.HasTroopers()
	case mission.ShipTypeBomber:
		return f.HasBombs()
	default:
		return false
	}
}

package fleet

import (
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
)

// MergeService consolidates attack-group fleets meeting at a rally point
type MergeService struct{}

// NewMergeService creates a new merge service
func NewMergeService() *MergeService {
	return &MergeService{}
}

// MergeFleets absorbs into f every other fleet on the same cell whose name
// shares f's "#" prefix, removing the emptied fleets from the list.
//
// Business Rules:
//   - A candidate is skipped when the merged fleet would hold more than
//     maxShips ships; f is left untouched by that candidate
//   - maxShips <= 0 disables the cap
//
// Returns the absorbed fleets, so the caller can drop their missions.
func (ms *MergeService) MergeFleets(f *navigation.Fleet, fleets *navigation.FleetList, maxShips int) []*navigation.Fleet {
	var absorbed []*navigation.Fleet
	prefix := f.NamePrefix()

	for _, other := range fleets.At(f.Coordinate()) {
		if other == f || other.NamePrefix() != prefix {
			continue
		}
		if ms.MergeInto(other, f, fleets, maxShips) {
			absorbed = append(absorbed, other)
		}
	}

	return absorbed
}

// MergeInto moves every ship of f into host and removes f from the list.
// Returns false, changing nothing, when the result would exceed maxShips.
func (ms *MergeService) MergeInto(f, host *navigation.Fleet, fleets *navigation.FleetList, maxShips int) bool {
	if f == host {
		return false
	}
	if maxShips > 0 && f.NumberOfShips()+host.NumberOfShips() > maxShips {
		return false
	}
	host.AddShips(f.TakeAllShips()...)
	host.SetMovesLeft(min(host.MovesLeft(), host.Speed()))
	fleets.Remove(f)
	return true
}

package navigation

import "github.com/andrescamacho/realmfleet-go/internal/domain/shared"

// FleetList is a realm's ordered collection of fleets.
// Iteration order is insertion order and is what the turn driver follows.
type FleetList struct {
	fleets []*Fleet
}

func NewFleetList(fleets ...*Fleet) *FleetList {
	return &FleetList{fleets: append([]*Fleet(nil), fleets...)}
}

func (l *FleetList) Add(f *Fleet) {
	l.fleets = append(l.fleets, f)
}

// Remove drops the fleet from the list. Returns false if it was not listed.
func (l *FleetList) Remove(f *Fleet) bool {
	for i, existing := range l.fleets {
		if existing == f {
			l.fleets = append(l.fleets[:i], l.fleets[i+1:]...)
			return true
		}
	}
	return false
}

// ByName resolves a fleet name, nil when no such fleet exists
func (l *FleetList) ByName(name string) *Fleet {
	if name == "" {
		return nil
	}
	for _, f := range l.fleets {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Exists checks whether a fleet name still resolves
func (l *FleetList) Exists(name string) bool {
	return l.ByName(name) != nil
}

// At returns every fleet on the given cell
func (l *FleetList) At(c shared.Coordinate) []*Fleet {
	var result []*Fleet
	for _, f := range l.fleets {
		if f.Coordinate().Equals(c) {
			result = append(result, f)
		}
	}
	return result
}

// All returns a copy of the list, safe to iterate while fleets are removed
func (l *FleetList) All() []*Fleet {
	fleets := make([]*Fleet, len(l.fleets))
	copy(fleets, l.fleets)
	return fleets
}

func (l *FleetList) Len() int {
	return len(l.fleets)
}

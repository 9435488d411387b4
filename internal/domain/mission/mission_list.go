package mission

import (
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// MissionList is a realm's set of missions.
//
// Lookups by fleet assume at most one active mission per fleet name. That is
// a planning rule; the list tolerates violations by letting the most recently
// added mission win, and CheckExclusive reports them.
type MissionList struct {
	missions []*Mission
}

func NewMissionList(missions ...*Mission) *MissionList {
	return &MissionList{missions: append([]*Mission(nil), missions...)}
}

func (l *MissionList) Add(m *Mission) {
	l.missions = append(l.missions, m)
}

// Remove drops a mission. Returns false if it was not listed.
func (l *MissionList) Remove(m *Mission) bool {
	for i, existing := range l.missions {
		if existing == m {
			l.missions = append(l.missions[:i], l.missions[i+1:]...)
			return true
		}
	}
	return false
}

func (l *MissionList) Len() int {
	return len(l.missions)
}

// All returns a copy, safe to iterate while missions are removed
func (l *MissionList) All() []*Mission {
	missions := make([]*Mission, len(l.missions))
	copy(missions, l.missions)
	return missions
}

// GetForFleet returns the mission bound to a fleet name
func (l *MissionList) GetForFleet(fleetName string) *Mission {
	if fleetName == "" {
		return nil
	}
	return l.last(func(m *Mission) bool { return m.fleetName == fleetName })
}

// GetForPlanet returns the mission of a type being built at a planet
func (l *MissionList) GetForPlanet(planetName string, missionType MissionType) *Mission {
	if planetName == "" {
		return nil
	}
	return l.first(func(m *Mission) bool {
		return m.planetBuilding == planetName && m.missionType == missionType
	})
}

// GetForPlanetInPhase returns the mission in a phase being built at a planet
func (l *MissionList) GetForPlanetInPhase(planetName string, phase MissionPhase) *Mission {
	if planetName == "" {
		return nil
	}
	return l.first(func(m *Mission) bool {
		return m.planetBuilding == planetName && m.phase == phase
	})
}

// Get returns the first mission with the given type and phase
func (l *MissionList) Get(missionType MissionType, phase MissionPhase) *Mission {
	return l.first(func(m *Mission) bool {
		return m.missionType == missionType && m.phase == phase
	})
}

func (l *MissionList) GetByID(id string) *Mission {
	return l.first(func(m *Mission) bool { return m.id == id })
}

// CountGatherMissions counts GATHER missions aimed at a coordinate
func (l *MissionList) CountGatherMissions(target shared.Coordinate) int {
	n := 0
	for _, m := range l.missions {
		if m.missionType == MissionTypeGather && m.target.Equals(target) {
			n++
		}
	}
	return n
}

// IsLastAttackMission is true when no other ATTACK mission for the target is
// still on its way (BUILDING, LOADING or TREKKING)
func (l *MissionList) IsLastAttackMission(target shared.Coordinate) bool {
	pending := l.first(func(m *Mission) bool {
		if m.missionType != MissionTypeAttack || !m.target.Equals(target) {
			return false
		}
		return m.phase.IsPreparing() || m.phase == MissionPhaseTrekking
	})
	return pending == nil
}

// Prune removes bound missions whose fleet no longer exists.
// Missions in PLANNING survive since they are waiting for a fleet.
// Returns the removed missions in list order.
func (l *MissionList) Prune(exists func(fleetName string) bool) []*Mission {
	var removed []*Mission
	kept := l.missions[:0]
	for _, m := range l.missions {
		if m.phase != MissionPhasePlanning && m.IsBound() && !exists(m.fleetName) {
			removed = append(removed, m)
			continue
		}
		kept = append(kept, m)
	}
	for i := len(kept); i < len(l.missions); i++ {
		l.missions[i] = nil
	}
	l.missions = kept
	return removed
}

// DuplicateFleetBindings lists fleet names bound by more than one mission
func (l *MissionList) DuplicateFleetBindings() []string {
	counts := make(map[string]int)
	var order []string
	for _, m := range l.missions {
		if !m.IsBound() {
			continue
		}
		if counts[m.fleetName] == 0 {
			order = append(order, m.fleetName)
		}
		counts[m.fleetName]++
	}

	var duplicates []string
	for _, name := range order {
		if counts[name] > 1 {
			duplicates = append(duplicates, name)
		}
	}
	return duplicates
}

// CheckExclusive returns a PlanningConflictError when a fleet is bound twice
func (l *MissionList) CheckExclusive() error {
	if duplicates := l.DuplicateFleetBindings(); len(duplicates) > 0 {
		return shared.NewPlanningConflictError(duplicates)
	}
	return nil
}

func (l *MissionList) first(match func(*Mission) bool) *Mission {
	for _, m := range l.missions {
		if match(m) {
			return m
		}
	}
	return nil
}

func (l *MissionList) last(match func(*Mission) bool) *Mission {
	for i := len(l.missions) - 1; i >= 0; i-- {
		if match(l.missions[i]) {
			return l.missions[i]
		}
	}
	return nil
}

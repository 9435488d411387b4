package realm

import (
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// Race holds the per-race AI tuning consulted by mission handling.
// Values come from configuration and may be overridden per realm.
type Race struct {
	Name string

	// ExploringThreshold is how many turns an explorer keeps working one
	// search before it is dropped and re-planned
	ExploringThreshold int

	// DefenseRefresh is how many turns a defender holds before its mission
	// is sent back to planning
	DefenseRefresh int

	// AttackMinBombersTroopers and AttackMinMilitaryShips gate the move from
	// PLANNING to EXECUTING for attack groups
	AttackMinBombersTroopers int
	AttackMinMilitaryShips   int

	// PrefersProductionWorkers seeds new colonies with production workers
	// instead of food workers
	PrefersProductionWorkers bool

	// MaxFleetShips caps fleet merges
	MaxFleetShips int
}

// Validate checks the tuning values
func (r Race) Validate() error {
	if r.Name == "" {
		return shared.NewValidationError("race.name", "cannot be empty")
	}
	checks := []struct {
		field string
		value int
	}{
		{"race.exploring_threshold", r.ExploringThreshold},
		{"race.defense_refresh", r.DefenseRefresh},
		{"race.attack_min_bombers_troopers", r.AttackMinBombersTroopers},
		{"race.attack_min_military_ships", r.AttackMinMilitaryShips},
	}
	for _, check := range checks {
		if check.value < 0 {
			return shared.NewValidationError(check.field, fmt.Sprintf("%d cannot be negative", check.value))
		}
	}
	if r.MaxFleetShips <= 0 {
		return shared.NewValidationError("race.max_fleet_ships", "must be positive")
	}
	return nil
}

// ColonyWorkerSlot is where a new colony's first population goes
func (r Race) ColonyWorkerSlot() starmap.WorkerSlot {
	if r.PrefersProductionWorkers {
		return starmap.WorkerProduction
	}
	return starmap.WorkerFood
}

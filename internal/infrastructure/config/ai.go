package config

import (
	"github.com/andrescamacho/realmfleet-go/internal/application/missions"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
)

// AIConfig holds the mission handling tuning shared by all AI realms
type AIConfig struct {
	// Radius cap of the A* detour search
	DetourRadius int `mapstructure:"detour_radius" validate:"min=1,max=64"`

	// Cells scanned around each fleet after it moves
	ScanRadius int `mapstructure:"scan_radius" validate:"min=0,max=16"`

	// Reach of privateer prey and spy target searches
	HostileSearchRadius int `mapstructure:"hostile_search_radius" validate:"min=1"`

	// Planet population that must be exceeded to embark the first and each
	// further colonist
	FirstColonistThreshold int `mapstructure:"first_colonist_threshold" validate:"min=0"`
	NextColonistThreshold  int `mapstructure:"next_colonist_threshold" validate:"min=0"`

	EspionageBonus int `mapstructure:"espionage_bonus" validate:"min=0"`

	// Race defaults for scenario realms that do not override them
	Race RaceConfig `mapstructure:"race"`
}

// RaceConfig holds the per-race AI thresholds
type RaceConfig struct {
	ExploringThreshold       int `mapstructure:"exploring_threshold" validate:"min=1"`
	DefenseRefresh           int `mapstructure:"defense_refresh" validate:"min=1"`
	AttackMinBombersTroopers int `mapstructure:"attack_min_bombers_troopers" validate:"min=0"`
	AttackMinMilitaryShips   int `mapstructure:"attack_min_military_ships" validate:"min=0"`
	MaxFleetShips            int `mapstructure:"max_fleet_ships" validate:"min=1"`
}

// MissionConfig converts the tuning for the mission handler
func (c AIConfig) MissionConfig() missions.Config {
	return missions.Config{
		DetourRadius:           c.DetourRadius,
		HostileSearchRadius:    c.HostileSearchRadius,
		FirstColonistThreshold: c.FirstColonistThreshold,
		NextColonistThreshold:  c.NextColonistThreshold,
		EspionageBonus:         c.EspionageBonus,
	}
}

// Race builds a race with these defaults under the given name
func (c RaceConfig) Race(name string) realm.Race {
	return realm.Race{
		Name:                     name,
		ExploringThreshold:       c.ExploringThreshold,
		DefenseRefresh:           c.DefenseRefresh,
		AttackMinBombersTroopers: c.AttackMinBombersTroopers,
		AttackMinMilitaryShips:   c.AttackMinMilitaryShips,
		MaxFleetShips:            c.MaxFleetShips,
	}
}

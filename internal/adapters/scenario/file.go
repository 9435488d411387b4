package scenario

// File is the YAML layout of a scenario
type File struct {
	Name         string       `yaml:"name" validate:"required"`
	Turns        int          `yaml:"turns" validate:"min=0"`
	Map          MapSpec      `yaml:"map"`
	Tiles        []TileSpec   `yaml:"tiles" validate:"dive"`
	SolarSystems []SystemSpec `yaml:"solar_systems" validate:"dive"`
	Planets      []PlanetSpec `yaml:"planets" validate:"dive"`
	Realms       []RealmSpec  `yaml:"realms" validate:"required,min=1,dive"`
}

type MapSpec struct {
	Width  int `yaml:"width" validate:"min=1"`
	Height int `yaml:"height" validate:"min=1"`
}

// TileSpec sets one cell, or a vertical run of cells when ToY is given
type TileSpec struct {
	X    int    `yaml:"x" validate:"min=0"`
	Y    int    `yaml:"y" validate:"min=0"`
	ToY  int    `yaml:"to_y" validate:"min=0"`
	Kind string `yaml:"kind" validate:"required"`
}

type SystemSpec struct {
	Name   string `yaml:"name" validate:"required"`
	X      int    `yaml:"x" validate:"min=0"`
	Y      int    `yaml:"y" validate:"min=0"`
	Radius int    `yaml:"radius" validate:"min=0"`
}

type PlanetSpec struct {
	Name       string `yaml:"name" validate:"required"`
	X          int    `yaml:"x" validate:"min=0"`
	Y          int    `yaml:"y" validate:"min=0"`
	Owner      string `yaml:"owner"`
	Population int    `yaml:"population" validate:"min=0"`
}

// RealmSpec describes a realm. AI defaults to true; race fields left out use
// the configured defaults.
type RealmSpec struct {
	Name       string        `yaml:"name" validate:"required"`
	AI         *bool         `yaml:"ai"`
	HomePlanet string        `yaml:"home_planet"`
	Credits    int           `yaml:"credits" validate:"min=0"`
	Race       RaceSpec      `yaml:"race"`
	Fleets     []FleetSpec   `yaml:"fleets" validate:"dive"`
	Missions   []MissionSpec `yaml:"missions" validate:"dive"`
}

type RaceSpec struct {
	Name                     string `yaml:"name"`
	ExploringThreshold       *int   `yaml:"exploring_threshold" validate:"omitempty,min=1"`
	DefenseRefresh           *int   `yaml:"defense_refresh" validate:"omitempty,min=1"`
	AttackMinBombersTroopers *int   `yaml:"attack_min_bombers_troopers" validate:"omitempty,min=0"`
	AttackMinMilitaryShips   *int   `yaml:"attack_min_military_ships" validate:"omitempty,min=0"`
	MaxFleetShips            *int   `yaml:"max_fleet_ships" validate:"omitempty,min=1"`
	PrefersProductionWorkers bool   `yaml:"prefers_production_workers"`
}

type FleetSpec struct {
	Name  string     `yaml:"name" validate:"required"`
	X     int        `yaml:"x" validate:"min=0"`
	Y     int        `yaml:"y" validate:"min=0"`
	Ships []ShipSpec `yaml:"ships" validate:"required,min=1,dive"`
}

type ShipSpec struct {
	Name             string `yaml:"name" validate:"required"`
	Design           string `yaml:"design"`
	Speed            int    `yaml:"speed" validate:"min=1"`
	FTLSpeed         int    `yaml:"ftl_speed" validate:"min=1"`
	MilitaryPower    int    `yaml:"military_power" validate:"min=0"`
	Bombs            bool   `yaml:"bombs"`
	Trooper          bool   `yaml:"trooper"`
	ColonyModule     bool   `yaml:"colony_module"`
	Starbase         bool   `yaml:"starbase"`
	Privateer        bool   `yaml:"privateer"`
	ColonistCapacity int    `yaml:"colonist_capacity" validate:"min=0"`
	Colonists        int    `yaml:"colonists" validate:"min=0,ltefield=ColonistCapacity"`
	TradeCapacity    int    `yaml:"trade_capacity" validate:"min=0"`
}

type MissionSpec struct {
	Type           string `yaml:"type" validate:"required"`
	Phase          string `yaml:"phase" validate:"required"`
	X              int    `yaml:"x" validate:"min=0"`
	Y              int    `yaml:"y" validate:"min=0"`
	Fleet          string `yaml:"fleet"`
	PlanetBuilding string `yaml:"planet_building"`
	Sun            string `yaml:"sun"`
	TargetPlanet   string `yaml:"target_planet"`
	TargetRealm    string `yaml:"target_realm"`
	ShipType       string `yaml:"ship_type" validate:"omitempty,oneof=ASSAULT TROOPER BOMBER"`
	MissionTime    int    `yaml:"mission_time" validate:"min=0"`
}

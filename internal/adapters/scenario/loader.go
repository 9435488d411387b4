package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// RaceDefaults returns the configured race tuning for a realm name
type RaceDefaults func(name string) realm.Race

// World is a loaded scenario ready for the turn driver
type World struct {
	Name   string
	Turns  int
	Map    *starmap.StarMap
	Realms []*realm.Realm
}

// Realm finds a realm by name
func (w *World) Realm(name string) *realm.Realm {
	for _, r := range w.Realms {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// LoadFile reads and builds a scenario from a YAML file
func LoadFile(path string, defaults RaceDefaults) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Load(bytes.NewReader(data), defaults)
}

// Load decodes, validates and builds a scenario
func Load(r io.Reader, defaults RaceDefaults) (*World, error) {
	file, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return file.Build(defaults)
}

// Parse decodes a scenario and checks its structure. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenario is empty")
		}
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, formatValidationError(err)
	}
	return &file, nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("invalid scenario:\n  %s", strings.Join(messages, "\n  "))
}

// Build constructs the star map and realms. Planets and systems are placed
// before realms so missions may name them.
func (f *File) Build(defaults RaceDefaults) (*World, error) {
	sm, err := starmap.NewStarMap(f.Map.Width, f.Map.Height)
	if err != nil {
		return nil, err
	}

	for _, t := range f.Tiles {
		kind, err := starmap.ParseTileKind(t.Kind)
		if err != nil {
			return nil, fmt.Errorf("tile (%d,%d): %w", t.X, t.Y, err)
		}
		toY := t.ToY
		if toY < t.Y {
			toY = t.Y
		}
		for y := t.Y; y <= toY; y++ {
			if err := sm.SetTile(t.X, y, kind); err != nil {
				return nil, fmt.Errorf("tile (%d,%d): %w", t.X, y, err)
			}
		}
	}

	for _, s := range f.SolarSystems {
		system, err := starmap.NewSolarSystem(s.Name, shared.Coordinate{X: s.X, Y: s.Y}, s.Radius)
		if err != nil {
			return nil, fmt.Errorf("solar system %s: %w", s.Name, err)
		}
		if err := sm.AddSolarSystem(system); err != nil {
			return nil, fmt.Errorf("solar system %s: %w", s.Name, err)
		}
	}

	for _, p := range f.Planets {
		planet, err := starmap.NewPlanet(p.Name, shared.Coordinate{X: p.X, Y: p.Y}, p.Owner, p.Population)
		if err != nil {
			return nil, fmt.Errorf("planet %s: %w", p.Name, err)
		}
		if err := sm.AddPlanet(planet); err != nil {
			return nil, fmt.Errorf("planet %s: %w", p.Name, err)
		}
	}

	world := &World{Name: f.Name, Turns: f.Turns, Map: sm}
	seen := make(map[string]bool)
	for _, spec := range f.Realms {
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate realm %s", spec.Name)
		}
		seen[spec.Name] = true

		r, err := buildRealm(spec, sm, defaults)
		if err != nil {
			return nil, fmt.Errorf("realm %s: %w", spec.Name, err)
		}
		world.Realms = append(world.Realms, r)
	}
	return world, nil
}

func buildRealm(spec RealmSpec, sm *starmap.StarMap, defaults RaceDefaults) (*realm.Realm, error) {
	race := spec.Race.apply(defaults(spec.Name))
	ai := spec.AI == nil || *spec.AI

	r, err := realm.NewRealm(spec.Name, race, ai, sm.NewVisibility())
	if err != nil {
		return nil, err
	}
	sm.RegisterFleetOwner(r)
	r.AddCredits(spec.Credits)
	if spec.HomePlanet != "" {
		if sm.PlanetByName(spec.HomePlanet) == nil {
			return nil, fmt.Errorf("home planet %s not on the map", spec.HomePlanet)
		}
		r.SetHomePlanet(spec.HomePlanet)
	}

	for _, fs := range spec.Fleets {
		fleet, err := buildFleet(fs)
		if err != nil {
			return nil, fmt.Errorf("fleet %s: %w", fs.Name, err)
		}
		if r.Fleets().Exists(fleet.Name()) {
			return nil, fmt.Errorf("duplicate fleet %s", fleet.Name())
		}
		if !sm.Contains(fleet.Coordinate().X, fleet.Coordinate().Y) {
			return nil, fmt.Errorf("fleet %s at %s is off the map", fleet.Name(), fleet.Coordinate())
		}
		r.CommissionFleet(fleet)
	}

	for i, ms := range spec.Missions {
		m, err := buildMission(ms)
		if err != nil {
			return nil, fmt.Errorf("mission %d: %w", i, err)
		}
		r.Missions().Add(m)
	}
	return r, nil
}

func (s RaceSpec) apply(race realm.Race) realm.Race {
	if s.Name != "" {
		race.Name = s.Name
	}
	if s.ExploringThreshold != nil {
		race.ExploringThreshold = *s.ExploringThreshold
	}
	if s.DefenseRefresh != nil {
		race.DefenseRefresh = *s.DefenseRefresh
	}
	if s.AttackMinBombersTroopers != nil {
		race.AttackMinBombersTroopers = *s.AttackMinBombersTroopers
	}
	if s.AttackMinMilitaryShips != nil {
		race.AttackMinMilitaryShips = *s.AttackMinMilitaryShips
	}
	if s.MaxFleetShips != nil {
		race.MaxFleetShips = *s.MaxFleetShips
	}
	race.PrefersProductionWorkers = race.PrefersProductionWorkers || s.PrefersProductionWorkers
	return race
}

func buildFleet(spec FleetSpec) (*navigation.Fleet, error) {
	ships := make([]*navigation.Ship, 0, len(spec.Ships))
	for _, s := range spec.Ships {
		design := s.Design
		if design == "" {
			design = s.Name
		}
		ship, err := navigation.NewShip(navigation.ShipSpec{
			Name:             s.Name,
			Design:           design,
			Speed:            s.Speed,
			FTLSpeed:         s.FTLSpeed,
			MilitaryPower:    s.MilitaryPower,
			Bombs:            s.Bombs,
			Trooper:          s.Trooper,
			ColonyModule:     s.ColonyModule,
			Starbase:         s.Starbase,
			Privateer:        s.Privateer,
			ColonistCapacity: s.ColonistCapacity,
			Colonists:        s.Colonists,
			TradeCapacity:    s.TradeCapacity,
		})
		if err != nil {
			return nil, fmt.Errorf("ship %s: %w", s.Name, err)
		}
		ships = append(ships, ship)
	}
	return navigation.NewFleet(spec.Name, shared.Coordinate{X: spec.X, Y: spec.Y}, ships...)
}

func buildMission(spec MissionSpec) (*mission.Mission, error) {
	missionType, err := mission.ParseMissionType(spec.Type)
	if err != nil {
		return nil, err
	}
	phase, err := mission.ParseMissionPhase(spec.Phase)
	if err != nil {
		return nil, err
	}

	m, err := mission.NewMission(missionType, phase, shared.Coordinate{X: spec.X, Y: spec.Y})
	if err != nil {
		return nil, err
	}
	m.SetFleetName(spec.Fleet)
	m.SetPlanetBuilding(spec.PlanetBuilding)
	m.SetSunName(spec.Sun)
	m.SetTargetPlanet(spec.TargetPlanet)
	m.SetTargetRealm(spec.TargetRealm)
	if spec.ShipType != "" {
		if err := m.SetShipType(spec.ShipType); err != nil {
			return nil, err
		}
	}
	m.SetMissionTime(spec.MissionTime)
	return m, nil
}

package starmap

import (
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// Worker allocation slots seeded when a planet is colonized
type WorkerSlot string

const (
	WorkerFood       WorkerSlot = "FOOD"
	WorkerProduction WorkerSlot = "PRODUCTION"
)

// Planet is the slice of planet state missions read and mutate:
// owner, population and worker allocation. The rest of the colony economy
// lives elsewhere.
type Planet struct {
	name       string
	coordinate shared.Coordinate
	owner      string
	population int
	workers    map[WorkerSlot]int
}

// NewPlanet creates a planet; owner may be empty for unclaimed planets
func NewPlanet(name string, coordinate shared.Coordinate, owner string, population int) (*Planet, error) {
	if name == "" {
		return nil, shared.NewValidationError("planet.name", "cannot be empty")
	}
	if population < 0 {
		return nil, shared.NewValidationError("planet.population", "cannot be negative")
	}
	return &Planet{
		name:       name,
		coordinate: coordinate,
		owner:      owner,
		population: population,
		workers:    map[WorkerSlot]int{},
	}, nil
}

func (p *Planet) Name() string                  { return p.name }
func (p *Planet) Coordinate() shared.Coordinate { return p.coordinate }
func (p *Planet) Owner() string                 { return p.owner }
func (p *Planet) Population() int               { return p.population }
func (p *Planet) IsColonized() bool             { return p.owner != "" }

// Workers returns the population assigned to a slot
func (p *Planet) Workers(slot WorkerSlot) int {
	return p.workers[slot]
}

// TakeColonist removes one population unit for embarking
func (p *Planet) TakeColonist() error {
	if p.population <= 0 {
		return shared.NewValidationError("planet.population", fmt.Sprintf("%s has no population left", p.name))
	}
	p.population--
	for _, slot := range []WorkerSlot{WorkerFood, WorkerProduction} {
		if p.workers[slot] > p.population {
			p.workers[slot] = p.population
		}
	}
	return nil
}

// Colonize hands the planet to a realm with an initial population,
// all of it assigned to one worker slot
func (p *Planet) Colonize(owner string, population int, slot WorkerSlot) {
	p.owner = owner
	p.population = population
	p.workers = map[WorkerSlot]int{slot: population}
}

// SetOwner changes ownership without touching population (conquest)
func (p *Planet) SetOwner(owner string) {
	p.owner = owner
}

func (p *Planet) String() string {
	return fmt.Sprintf("Planet(%s at %s, owner=%q, pop=%d)", p.name, p.coordinate, p.owner, p.population)
}

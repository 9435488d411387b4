package navigation

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/realmfleet-go/internal/domain/pathfinding"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// Fleet entity - a group of ships moving together on the star map
//
// Invariants:
// - Name is non-empty
// - Speeds are derived from the slowest ship
// - At most one Route and one path search are bound at a time
//
// Movement state:
// - movesLeft is refilled by ResetMoves at the start of each turn
// - route is the FTL lane; nil means travel was interrupted or never armed
// - pathSearch is the detour search; only mission handling binds or clears it
type Fleet struct {
	name       string
	coordinate shared.Coordinate
	ships      []*Ship
	movesLeft  int
	route      *Route
	pathSearch *pathfinding.Search
}

// NewFleet creates a new Fleet entity with validation
func NewFleet(name string, coordinate shared.Coordinate, ships ...*Ship) (*Fleet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("fleet.name", "cannot be empty")
	}
	f := &Fleet{
		name:       name,
		coordinate: coordinate,
		ships:      append([]*Ship(nil), ships...),
	}
	f.ResetMoves()
	return f, nil
}

// Getters

func (f *Fleet) Name() string {
	return f.name
}

func (f *Fleet) Coordinate() shared.Coordinate {
	return f.coordinate
}

func (f *Fleet) X() int {
	return f.coordinate.X
}

func (f *Fleet) Y() int {
	return f.coordinate.Y
}

func (f *Fleet) MovesLeft() int {
	return f.movesLeft
}

func (f *Fleet) Route() *Route {
	return f.route
}

func (f *Fleet) PathSearch() *pathfinding.Search {
	return f.pathSearch
}

// Ships returns a copy of the ship manifest
func (f *Fleet) Ships() []*Ship {
	ships := make([]*Ship, len(f.ships))
	copy(ships, f.ships)
	return ships
}

// NumberOfShips returns the manifest size
func (f *Fleet) NumberOfShips() int {
	return len(f.ships)
}

// IsEmpty checks if every ship has left the fleet
func (f *Fleet) IsEmpty() bool {
	return len(f.ships) == 0
}

// NamePrefix returns the part of the name before '#', used to group
// attack-group fleets such as "Defender #0" and "Defender #1"
func (f *Fleet) NamePrefix() string {
	if idx := strings.Index(f.name, "#"); idx >= 0 {
		return strings.TrimSpace(f.name[:idx])
	}
	return strings.TrimSpace(f.name)
}

// Setters used by mission handling

func (f *Fleet) SetCoordinate(c shared.Coordinate) {
	f.coordinate = c
}

func (f *Fleet) SetMovesLeft(moves int) {
	if moves < 0 {
		moves = 0
	}
	f.movesLeft = moves
}

func (f *Fleet) SetRoute(r *Route) {
	f.route = r
}

func (f *Fleet) SetPathSearch(s *pathfinding.Search) {
	f.pathSearch = s
}

// ResetMoves refills the regular movement budget for a new turn
func (f *Fleet) ResetMoves() {
	f.movesLeft = f.Speed()
}

// Speed and capability queries

// Speed is the regular per-turn move budget of the slowest ship
func (f *Fleet) Speed() int {
	return f.minOf(func(s *Ship) int { return s.Speed() })
}

// FTLSpeed is the route speed of the slowest ship
func (f *Fleet) FTLSpeed() int {
	return f.minOf(func(s *Ship) int { return s.FTLSpeed() })
}

func (f *Fleet) minOf(value func(*Ship) int) int {
	result := 0
	found := false
	for _, ship := range f.ships {
		if ship.IsDeployed() {
			continue
		}
		if v := value(ship); !found || v < result {
			result = v
			found = true
		}
	}
	return result
}

// TotalMilitaryPower sums the weapons of every ship
func (f *Fleet) TotalMilitaryPower() int {
	total := 0
	for _, ship := range f.ships {
		total += ship.MilitaryPower()
	}
	return total
}

// MilitaryShipCount counts ships with positive military power
func (f *Fleet) MilitaryShipCount() int {
	return f.count(func(s *Ship) bool { return s.IsMilitary() })
}

// BomberCount counts ships carrying bombs
func (f *Fleet) BomberCount() int {
	return f.count(func(s *Ship) bool { return s.HasBombs() })
}

// TrooperCount counts trooper ships
func (f *Fleet) TrooperCount() int {
	return f.count(func(s *Ship) bool { return s.IsTrooperShip() })
}

func (f *Fleet) HasBombs() bool {
	return f.BomberCount() > 0
}

func (f *Fleet) HasTroopers() bool {
	return f.TrooperCount() > 0
}

// IsMilitary checks if any ship carries weapons
func (f *Fleet) IsMilitary() bool {
	return f.MilitaryShipCount() > 0
}

// IsPrivateer checks if the whole fleet is made of privateer hulls
func (f *Fleet) IsPrivateer() bool {
	return len(f.ships) > 0 && f.count(func(s *Ship) bool { return s.IsPrivateer() }) == len(f.ships)
}

func (f *Fleet) count(match func(*Ship) bool) int {
	n := 0
	for _, ship := range f.ships {
		if match(ship) {
			n++
		}
	}
	return n
}

// ColonistCapacity sums the colonist holds of all ships
func (f *Fleet) ColonistCapacity() int {
	total := 0
	for _, ship := range f.ships {
		total += ship.ColonistCapacity()
	}
	return total
}

// Colonists sums the colonists carried by all ships
func (f *Fleet) Colonists() int {
	total := 0
	for _, ship := range f.ships {
		total += ship.Colonists()
	}
	return total
}

// FreeColonistCapacity returns how many more colonists the fleet can carry
func (f *Fleet) FreeColonistCapacity() int {
	return f.ColonistCapacity() - f.Colonists()
}

// LoadColonist embarks one unit on the first ship with room
func (f *Fleet) LoadColonist() error {
	for _, ship := range f.ships {
		if ship.FreeColonistCapacity() > 0 {
			return ship.LoadColonist()
		}
	}
	return shared.NewValidationError("fleet.colonists", fmt.Sprintf("fleet %s has no free colonist capacity", f.name))
}

// ColonyShip returns the first ship with a colony module
func (f *Fleet) ColonyShip() *Ship {
	return f.first(func(s *Ship) bool { return s.IsColonyShip() })
}

// StarbaseShip returns the first starbase hull
func (f *Fleet) StarbaseShip() *Ship {
	return f.first(func(s *Ship) bool { return s.IsStarbase() })
}

func (f *Fleet) first(match func(*Ship) bool) *Ship {
	for _, ship := range f.ships {
		if match(ship) {
			return ship
		}
	}
	return nil
}

// DoTrade trades every ship's cargo at the port and returns the credits earned
func (f *Fleet) DoTrade(port TradePort, ownRealm string) int {
	credits := 0
	for _, ship := range f.ships {
		credits += ship.DoTrade(port, ownRealm)
	}
	return credits
}

// LoadTradeGoods fills every trade hold
func (f *Fleet) LoadTradeGoods() {
	for _, ship := range f.ships {
		ship.LoadTradeGoods()
	}
}

// Manifest changes

// AddShips moves ships into the fleet
func (f *Fleet) AddShips(ships ...*Ship) {
	f.ships = append(f.ships, ships...)
}

// RemoveShip takes a ship out of the fleet. Returns false if it was not aboard.
func (f *Fleet) RemoveShip(ship *Ship) bool {
	for i, s := range f.ships {
		if s == ship {
			f.ships = append(f.ships[:i], f.ships[i+1:]...)
			return true
		}
	}
	return false
}

// TakeAllShips empties the fleet and returns its former manifest
func (f *Fleet) TakeAllShips() []*Ship {
	ships := f.ships
	f.ships = nil
	return ships
}

func (f *Fleet) String() string {
	return fmt.Sprintf("Fleet(%s at %s, ships=%d, moves=%d)", f.name, f.coordinate, len(f.ships), f.movesLeft)
}

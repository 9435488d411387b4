package navigation

import (
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// ShipSpec describes a ship at construction time
type ShipSpec struct {
	Name             string
	Design           string
	Speed            int
	FTLSpeed         int
	MilitaryPower    int
	Bombs            bool
	Trooper          bool
	ColonyModule     bool
	Starbase         bool
	Privateer        bool
	ColonistCapacity int
	Colonists        int
	TradeCapacity    int
}

// TradePort is the part of a planet a trade ship deals with
type TradePort interface {
	Name() string
	Owner() string
	Population() int
}

// Ship entity - a single hull inside a fleet
//
// Invariants:
// - Name and design are non-empty
// - Speed and FTL speed are positive
// - Colonists never exceed colonist capacity
// - Trade goods never exceed trade capacity
type Ship struct {
	name             string
	design           string
	speed            int
	ftlSpeed         int
	militaryPower    int
	bombs            bool
	trooper          bool
	colonyModule     bool
	starbase         bool
	privateer        bool
	colonistCapacity int
	colonists        int
	tradeCapacity    int
	tradeGoods       int
	deployed         bool
}

// NewShip creates a new Ship entity with validation
func NewShip(spec ShipSpec) (*Ship, error) {
	s := &Ship{
		name:             spec.Name,
		design:           spec.Design,
		speed:            spec.Speed,
		ftlSpeed:         spec.FTLSpeed,
		militaryPower:    spec.MilitaryPower,
		bombs:            spec.Bombs,
		trooper:          spec.Trooper,
		colonyModule:     spec.ColonyModule,
		starbase:         spec.Starbase,
		privateer:        spec.Privateer,
		colonistCapacity: spec.ColonistCapacity,
		colonists:        spec.Colonists,
		tradeCapacity:    spec.TradeCapacity,
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Ship) validate() error {
	if s.name == "" {
		return shared.NewValidationError("ship.name", "cannot be empty")
	}
	if s.design == "" {
		return shared.NewValidationError("ship.design", "cannot be empty")
	}
	if s.speed <= 0 {
		return shared.NewValidationError("ship.speed", "must be positive")
	}
	if s.ftlSpeed <= 0 {
		return shared.NewInvalidSpeedError(s.ftlSpeed)
	}
	if s.militaryPower < 0 {
		return shared.NewValidationError("ship.military_power", "cannot be negative")
	}
	if s.colonistCapacity < 0 || s.colonists < 0 || s.colonists > s.colonistCapacity {
		return shared.NewValidationError("ship.colonists", fmt.Sprintf("%d colonists do not fit capacity %d", s.colonists, s.colonistCapacity))
	}
	if s.tradeCapacity < 0 {
		return shared.NewValidationError("ship.trade_capacity", "cannot be negative")
	}
	return nil
}

// Getters

func (s *Ship) Name() string          { return s.name }
func (s *Ship) Design() string        { return s.design }
func (s *Ship) Speed() int            { return s.speed }
func (s *Ship) FTLSpeed() int         { return s.ftlSpeed }
func (s *Ship) MilitaryPower() int    { return s.militaryPower }
func (s *Ship) HasBombs() bool        { return s.bombs }
func (s *Ship) IsTrooperShip() bool   { return s.trooper }
func (s *Ship) IsColonyShip() bool    { return s.colonyModule }
func (s *Ship) IsStarbase() bool      { return s.starbase }
func (s *Ship) IsPrivateer() bool     { return s.privateer }
func (s *Ship) IsDeployed() bool      { return s.deployed }
func (s *Ship) Colonists() int        { return s.colonists }
func (s *Ship) ColonistCapacity() int { return s.colonistCapacity }
func (s *Ship) TradeGoods() int       { return s.tradeGoods }
func (s *Ship) TradeCapacity() int    { return s.tradeCapacity }

// IsMilitary checks if the ship carries any weapons
func (s *Ship) IsMilitary() bool {
	return s.militaryPower > 0
}

// Colonist cargo

// FreeColonistCapacity returns how many more colonists fit aboard
func (s *Ship) FreeColonistCapacity() int {
	return s.colonistCapacity - s.colonists
}

// LoadColonist embarks one population unit
func (s *Ship) LoadColonist() error {
	if s.FreeColonistCapacity() <= 0 {
		return shared.NewValidationError("ship.colonists", fmt.Sprintf("ship %s has no free colonist capacity", s.name))
	}
	s.colonists++
	return nil
}

// UnloadColonists empties the colonist cargo and returns the unit count
func (s *Ship) UnloadColonists() int {
	units := s.colonists
	s.colonists = 0
	return units
}

// Deploy anchors a starbase hull; it no longer travels afterwards
func (s *Ship) Deploy() {
	s.deployed = true
}

// Trading

// DoTrade sells carried goods at the port and loads a fresh cargo.
//
// Goods sold at a foreign port are worth 1 + population/3 credits per unit,
// goods sold at a port of the ship's own realm are worth 1 per unit.
// Returns the credits earned.
func (s *Ship) DoTrade(port TradePort, ownRealm string) int {
	if s.tradeCapacity == 0 || port == nil || port.Owner() == "" {
		return 0
	}

	worth := 1
	if port.Owner() != ownRealm {
		worth += port.Population() / 3
	}
	credits := s.tradeGoods * worth

	s.LoadTradeGoods()
	return credits
}

// LoadTradeGoods fills the trade hold without selling anything
func (s *Ship) LoadTradeGoods() {
	s.tradeGoods = s.tradeCapacity
}

func (s *Ship) String() string {
	return fmt.Sprintf("Ship(%s, design=%s, power=%d)", s.name, s.design, s.militaryPower)
}

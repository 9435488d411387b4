package realm

import (
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// Realm aggregate - one player's state as seen by mission handling
//
// Invariants:
// - Name is non-empty and the race tuning is valid
// - Fleets, missions and records are always allocated
// - Credits never go negative
type Realm struct {
	name       string
	race       Race
	ai         bool
	homePlanet string
	credits    int

	fleets     *navigation.FleetList
	missions   *mission.MissionList
	visibility *starmap.Visibility
	shipStats  map[string]*ShipStat
	espionage  *Espionage
	diplomacy  *Diplomacy
}

// NewRealm creates a realm with empty fleet and mission lists
func NewRealm(name string, race Race, ai bool, visibility *starmap.Visibility) (*Realm, error) {
	if name == "" {
		return nil, shared.NewValidationError("realm.name", "cannot be empty")
	}
	if err := race.Validate(); err != nil {
		return nil, fmt.Errorf("realm %s: %w", name, err)
	}
	if visibility == nil {
		return nil, shared.NewValidationError("realm.visibility", "cannot be nil")
	}
	return &Realm{
		name:       name,
		race:       race,
		ai:         ai,
		fleets:     navigation.NewFleetList(),
		missions:   mission.NewMissionList(),
		visibility: visibility,
		shipStats:  make(map[string]*ShipStat),
		espionage:  NewEspionage(),
		diplomacy:  NewDiplomacy(),
	}, nil
}

// Getters

func (r *Realm) Name() string                    { return r.name }
func (r *Realm) Race() Race                      { return r.race }
func (r *Realm) IsAI() bool                      { return r.ai }
func (r *Realm) HomePlanet() string              { return r.homePlanet }
func (r *Realm) Credits() int                    { return r.credits }
func (r *Realm) Fleets() *navigation.FleetList   { return r.fleets }
func (r *Realm) Missions() *mission.MissionList  { return r.missions }
func (r *Realm) Visibility() *starmap.Visibility { return r.visibility }
func (r *Realm) Espionage() *Espionage           { return r.espionage }
func (r *Realm) Diplomacy() *Diplomacy           { return r.diplomacy }

func (r *Realm) SetHomePlanet(name string) {
	r.homePlanet = name
}

// AddCredits books trade income; negative amounts are ignored
func (r *Realm) AddCredits(amount int) {
	if amount > 0 {
		r.credits += amount
	}
}

// ShipStat returns the in-use counter for a design, creating it on first use
func (r *Realm) ShipStat(design string) *ShipStat {
	stat, ok := r.shipStats[design]
	if !ok {
		stat = NewShipStat(design, 0)
		r.shipStats[design] = stat
	}
	return stat
}

// CommissionFleet adds a fleet and counts its ships against their designs
func (r *Realm) CommissionFleet(f *navigation.Fleet) {
	for _, ship := range f.Ships() {
		r.ShipStat(ship.Design()).IncrementInUse()
	}
	r.fleets.Add(f)
}

// RemoveFleet drops a fleet from the realm
func (r *Realm) RemoveFleet(f *navigation.Fleet) bool {
	return r.fleets.Remove(f)
}

func (r *Realm) String() string {
	return fmt.Sprintf("Realm(%s, ai=%t, fleets=%d, missions=%d)", r.name, r.ai, r.fleets.Len(), r.missions.Len())
}

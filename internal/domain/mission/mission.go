package mission

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// Mission entity - one task a realm's AI has assigned to a fleet
//
// Invariants:
// - Type and phase are always valid values
// - fleetName is set once the mission is bound; it is a weak reference
//   resolved against the realm's fleet list every turn
// - A GATHER mission carries a valid ship category
//
// Optional references use the empty string for "none".
type Mission struct {
	id             string
	missionType    MissionType
	phase          MissionPhase
	target         shared.Coordinate
	fleetName      string
	planetBuilding string
	sunName        string
	targetPlanet   string
	targetRealm    string
	shipType       string
	missionTime    int
}

// NewMission creates a new mission with a fresh id
func NewMission(missionType MissionType, phase MissionPhase, target shared.Coordinate) (*Mission, error) {
	return RestoreMission(uuid.New().String(), missionType, phase, target)
}

// RestoreMission rebuilds a mission with a known id (journal replay)
func RestoreMission(id string, missionType MissionType, phase MissionPhase, target shared.Coordinate) (*Mission, error) {
	m := &Mission{
		id:          id,
		missionType: missionType,
		phase:       phase,
		target:      target,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mission) validate() error {
	if m.id == "" {
		return shared.NewValidationError("mission.id", "cannot be empty")
	}
	if !m.missionType.IsValid() {
		return shared.NewValidationError("mission.type", fmt.Sprintf("unknown type %q", m.missionType))
	}
	if !m.phase.IsValid() {
		return shared.NewValidationError("mission.phase", fmt.Sprintf("unknown phase %q", m.phase))
	}
	return nil
}

// Getters

func (m *Mission) ID() string {
	return m.id
}

func (m *Mission) Type() MissionType {
	return m.missionType
}

func (m *Mission) Phase() MissionPhase {
	return m.phase
}

func (m *Mission) Target() shared.Coordinate {
	return m.target
}

func (m *Mission) FleetName() string {
	return m.fleetName
}

// IsBound checks whether a fleet has been assigned
func (m *Mission) IsBound() bool {
	return m.fleetName != ""
}

func (m *Mission) PlanetBuilding() string {
	return m.planetBuilding
}

func (m *Mission) SunName() string {
	return m.sunName
}

func (m *Mission) TargetPlanet() string {
	return m.targetPlanet
}

func (m *Mission) TargetRealm() string {
	return m.targetRealm
}

func (m *Mission) ShipType() string {
	return m.shipType
}

func (m *Mission) MissionTime() int {
	return m.missionTime
}

// State changes

// SetPhase moves the mission to another phase. The mission timer is left alone;
// handlers reset it where their own cycle requires.
func (m *Mission) SetPhase(phase MissionPhase) {
	m.phase = phase
}

func (m *Mission) SetTarget(target shared.Coordinate) {
	m.target = target
}

func (m *Mission) SetFleetName(name string) {
	m.fleetName = name
}

func (m *Mission) SetPlanetBuilding(name string) {
	m.planetBuilding = name
}

func (m *Mission) SetSunName(name string) {
	m.sunName = name
}

func (m *Mission) SetTargetPlanet(name string) {
	m.targetPlanet = name
}

func (m *Mission) SetTargetRealm(name string) {
	m.targetRealm = name
}

// SetShipType sets the GATHER ship category
func (m *Mission) SetShipType(shipType string) error {
	if m.missionType == MissionTypeGather && !IsValidGatherShipType(shipType) {
		return shared.NewValidationError("mission.ship_type", fmt.Sprintf("unknown gather ship type %q", shipType))
	}
	m.shipType = shipType
	return nil
}

func (m *Mission) SetMissionTime(turns int) {
	m.missionTime = turns
}

// IncrementMissionTime counts one more turn and returns the new value
func (m *Mission) IncrementMissionTime() int {
	m.missionTime++
	return m.missionTime
}

func (m *Mission) ResetMissionTime() {
	m.missionTime = 0
}

func (m *Mission) String() string {
	return fmt.Sprintf("Mission(%s %s target=%s fleet=%q time=%d)", m.missionType, m.phase, m.target, m.fleetName, m.missionTime)
}

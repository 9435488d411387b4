package mission

import "fmt"

// MissionType is the closed set of fleet missions an AI realm runs
type MissionType string

const (
	MissionTypeExplore            MissionType = "EXPLORE"
	MissionTypeColonize           MissionType = "COLONIZE"
	MissionTypeAttack             MissionType = "ATTACK"
	MissionTypeDefend             MissionType = "DEFEND"
	MissionTypeGather             MissionType = "GATHER"
	MissionTypeDeployStarbase     MissionType = "DEPLOY_STARBASE"
	MissionTypeDestroyStarbase    MissionType = "DESTROY_STARBASE"
	MissionTypeTradeFleet         MissionType = "TRADE_FLEET"
	MissionTypePrivateer          MissionType = "PRIVATEER"
	MissionTypeColonyExplore      MissionType = "COLONY_EXPLORE"
	MissionTypeSpy                MissionType = "SPY_MISSION"
	MissionTypeEspionage          MissionType = "ESPIONAGE_MISSION"
	MissionTypeDiplomaticDelegacy MissionType = "DIPLOMATIC_DELEGACY"
	MissionTypeIntercept          MissionType = "INTERCEPT"
	MissionTypeDestroyFleet       MissionType = "DESTROY_FLEET"
	MissionTypeRoam               MissionType = "ROAM"
)

// AllMissionTypes returns every mission type in declaration order
func AllMissionTypes() []MissionType {
	return []MissionType{
		MissionTypeExplore,
		MissionTypeColonize,
		MissionTypeAttack,
		MissionTypeDefend,
		MissionTypeGather,
		MissionTypeDeployStarbase,
		MissionTypeDestroyStarbase,
		MissionTypeTradeFleet,
		MissionTypePrivateer,
		MissionTypeColonyExplore,
		MissionTypeSpy,
		MissionTypeEspionage,
		MissionTypeDiplomaticDelegacy,
		MissionTypeIntercept,
		MissionTypeDestroyFleet,
		MissionTypeRoam,
	}
}

func (t MissionType) String() string {
	return string(t)
}

// IsValid checks if the mission type is one of the known types
func (t MissionType) IsValid() bool {
	for _, known := range AllMissionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseMissionType parses a string into a MissionType
func ParseMissionType(s string) (MissionType, error) {
	t := MissionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid mission type: %s", s)
	}
	return t, nil
}

// MissionPhase is the sub-state of a mission
type MissionPhase string

const (
	// MissionPhaseBuilding - the fleet is still being built at planetBuilding
	MissionPhaseBuilding MissionPhase = "BUILDING"

	// MissionPhaseLoading - colonists, troops or trade goods are embarking
	MissionPhaseLoading MissionPhase = "LOADING"

	// MissionPhaseTrekking - the fleet travels to the mission target
	MissionPhaseTrekking MissionPhase = "TREKKING"

	// MissionPhasePlanning - waiting for a fleet or for other missions to line up
	MissionPhasePlanning MissionPhase = "PLANNING"

	// MissionPhaseExecuting - the fleet is on target doing the mission's work
	MissionPhaseExecuting MissionPhase = "EXECUTING"
)

func AllMissionPhases() []MissionPhase {
	return []MissionPhase{
		MissionPhaseBuilding,
		MissionPhaseLoading,
		MissionPhaseTrekking,
		MissionPhasePlanning,
		MissionPhaseExecuting,
	}
}

func (p MissionPhase) String() string {
	return string(p)
}

func (p MissionPhase) IsValid() bool {
	switch p {
	case MissionPhaseBuilding,
		MissionPhaseLoading,
		MissionPhaseTrekking,
		MissionPhasePlanning,
		MissionPhaseExecuting:
		return true
	default:
		return false
	}
}

// IsPreparing is true while the fleet has not yet left for the target
func (p MissionPhase) IsPreparing() bool {
	return p == MissionPhaseBuilding || p == MissionPhaseLoading
}

// ParseMissionPhase parses a string into a MissionPhase
func ParseMissionPhase(s string) (MissionPhase, error) {
	p := MissionPhase(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid mission phase: %s", s)
	}
	return p, nil
}

// Gather ship categories carried in a GATHER mission's shipType
const (
	ShipTypeAssault = "ASSAULT"
	ShipTypeTrooper = "TROOPER"
	ShipTypeBomber  = "BOMBER"
)

// IsValidGatherShipType checks a GATHER mission's ship category
func IsValidGatherShipType(s string) bool {
	return s == ShipTypeAssault || s == ShipTypeTrooper || s == ShipTypeBomber
}

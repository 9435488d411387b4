package missions

import (
	"context"
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/domain/fleet"
	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// Removal reasons reported to metrics and logs
const (
	RemovalCompleted    = "completed"
	RemovalMerged       = "merged"
	RemovalStale        = "stale"
	RemovalTargetLost   = "target_lost"
	RemovalUnprofitable = "unprofitable"
)

// Config holds the AI tuning shared by every realm
type Config struct {
	// DetourRadius caps the A* search run when FTL travel is interrupted
	DetourRadius int

	// HostileSearchRadius bounds privateer and spy target searches
	HostileSearchRadius int

	// FirstColonistThreshold and NextColonistThreshold are the planet
	// populations that must be exceeded before the first and every further
	// colonist embarks
	FirstColonistThreshold int
	NextColonistThreshold  int

	// EspionageBonus is the one-shot value of an ESPIONAGE_MISSION
	EspionageBonus int
}

// DefaultConfig returns the stock AI tuning
func DefaultConfig() Config {
	return Config{
		DetourRadius:           7,
		HostileSearchRadius:    6,
		FirstColonistThreshold: 2,
		NextColonistThreshold:  3,
		EspionageBonus:         5,
	}
}

// MetricsRecorder receives mission handling events
type MetricsRecorder interface {
	RecordTransition(missionType, from, to string)
	RecordDetourSearch(realmName string, reached bool)
	RecordRemoval(missionType, reason string)
}

type noOpRecorder struct{}

func (noOpRecorder) RecordTransition(missionType, from, to string)     {}
func (noOpRecorder) RecordDetourSearch(realmName string, reached bool) {}
func (noOpRecorder) RecordRemoval(missionType, reason string)          {}

// Handler runs one turn of a mission for one fleet.
//
// Every entry point takes the mission, the fleet bound to it, the owning realm
// and the map, and mutates them in place. Entry points return nil without doing
// anything when the mission's type does not match. Errors are only returned for
// broken invariants (a route armed with a non-positive speed); every game
// condition such as a vanished target is handled by removing the mission.
type Handler struct {
	cfg      Config
	merger   *fleet.MergeService
	selector *fleet.GatherSelector
	metrics  MetricsRecorder
}

// NewHandler creates a mission handler; a nil recorder disables metrics
func NewHandler(cfg Config, metrics MetricsRecorder) *Handler {
	if metrics == nil {
		metrics = noOpRecorder{}
	}
	return &Handler{
		cfg:      cfg,
		merger:   fleet.NewMergeService(),
		selector: fleet.NewGatherSelector(),
		metrics:  metrics,
	}
}

// Handle dispatches to the entry point of the mission's type
func (h *Handler) Handle(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	switch m.Type() {
	case mission.MissionTypeExplore:
		return h.HandleExplore(ctx, m, f, r, sm)
	case mission.MissionTypeColonize:
		return h.HandleColonize(ctx, m, f, r, sm)
	case mission.MissionTypeAttack:
		return h.HandleAttack(ctx, m, f, r, sm)
	case mission.MissionTypeDefend:
		return h.HandleDefend(ctx, m, f, r, sm)
	case mission.MissionTypeGather:
		return h.HandleGather(ctx, m, f, r, sm)
	case mission.MissionTypeDeployStarbase:
		return h.HandleDeployStarbase(ctx, m, f, r, sm)
	case mission.MissionTypeDestroyStarbase:
		return h.HandleDestroyStarbase(ctx, m, f, r, sm)
	case mission.MissionTypeTradeFleet:
		return h.HandleTrade(ctx, m, f, r, sm)
	case mission.MissionTypePrivateer:
		return h.HandlePrivateer(ctx, m, f, r, sm)
	case mission.MissionTypeColonyExplore:
		return h.HandleColonyExplore(ctx, m, f, r, sm)
	case mission.MissionTypeSpy:
		return h.HandleSpy(ctx, m, f, r, sm)
	case mission.MissionTypeEspionage:
		return h.HandleEspionage(ctx, m, f, r, sm)
	case mission.MissionTypeDiplomaticDelegacy:
		return h.HandleDiplomaticDelegacy(ctx, m, f, r, sm)
	case mission.MissionTypeIntercept:
		return h.HandleIntercept(ctx, m, f, r, sm)
	case mission.MissionTypeDestroyFleet:
		return h.HandleDestroyFleet(ctx, m, f, r, sm)
	case mission.MissionTypeRoam:
		return h.HandleRoam(ctx, m, f, r, sm)
	default:
		return fmt.Errorf("no handler for mission type %s", m.Type())
	}
}

// run guards a type handler: it skips mismatched types and missing fleets, and
// enforces that a fleet entering with a bound path search and moves left ends
// the call with no moves left.
func (h *Handler) run(m *mission.Mission, want mission.MissionType, f *navigation.Fleet, fn func() error) error {
	if m.Type() != want || f == nil {
		return nil
	}
	searching := f.PathSearch() != nil && f.MovesLeft() > 0
	err := fn()
	if searching {
		f.SetMovesLeft(0)
	}
	return err
}

// setPhase moves the mission to a new phase and reports the transition
func (h *Handler) setPhase(ctx context.Context, r *realm.Realm, m *mission.Mission, phase mission.MissionPhase) {
	from := m.Phase()
	if from == phase {
		return
	}
	m.SetPhase(phase)
	h.metrics.RecordTransition(m.Type().String(), from.String(), phase.String())
	common.LoggerFromContext(ctx).Log("DEBUG", fmt.Sprintf("[Missions] %s mission of %s: %s -> %s", m.Type(), m.FleetName(), from, phase), map[string]interface{}{
		"realm":   r.Name(),
		"mission": m.ID(),
	})
}

// removeMission drops the mission from its realm
func (h *Handler) removeMission(ctx context.Context, r *realm.Realm, m *mission.Mission, reason string) {
	if !r.Missions().Remove(m) {
		return
	}
	h.metrics.RecordRemoval(m.Type().String(), reason)
	common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Missions] %s mission of %s removed: %s", m.Type(), m.FleetName(), reason), map[string]interface{}{
		"realm":   r.Name(),
		"mission": m.ID(),
		"target":  m.Target().String(),
	})
}

// armRoute binds a fresh FTL route from the fleet to the mission target
func (h *Handler) armRoute(m *mission.Mission, f *navigation.Fleet) error {
	route, err := navigation.NewRoute(f.Coordinate(), m.Target(), f.FTLSpeed())
	if err != nil {
		return fmt.Errorf("arm route for fleet %s: %w", f.Name(), err)
	}
	f.SetRoute(route)
	return nil
}

// retarget points the mission elsewhere, drops stale movement and arms a route
func (h *Handler) retarget(m *mission.Mission, f *navigation.Fleet) error {
	f.SetPathSearch(nil)
	return h.armRoute(m, f)
}

// depart sends a prepared fleet on its way
func (h *Handler) depart(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm) error {
	h.setPhase(ctx, r, m, mission.MissionPhaseTrekking)
	return h.retarget(m, f)
}

// trek is the shared TREKKING step: run the arrival action once the fleet
// stands on the target, otherwise detour when FTL travel was interrupted.
func (h *Handler) trek(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap, arrived bool, onArrival func() error) error {
	if arrived {
		return onArrival()
	}
	if f.Route() == nil {
		return h.detour(ctx, m, f, r, sm)
	}
	return nil
}

// hold keeps the fleet where it is for the rest of the turn
func hold(f *navigation.Fleet) {
	f.SetRoute(nil)
	f.SetPathSearch(nil)
	f.SetMovesLeft(0)
}

func isAt(f *navigation.Fleet, m *mission.Mission) bool {
	return f.Coordinate().Equals(m.Target())
}

// inSolarSystem treats reaching any cell of the mission's named system as arrival
func inSolarSystem(f *navigation.Fleet, m *mission.Mission, sm *starmap.StarMap) bool {
	if isAt(f, m) {
		return true
	}
	sun := sm.SolarSystemByName(m.SunName())
	return sun != nil && sun.Contains(f.Coordinate())
}

package turn

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/application/missions"
	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// DefaultScanRadius is how far a fleet sees around itself after moving
const DefaultScanRadius = 2

// ProcessTurnCommand advances every AI realm by one turn
type ProcessTurnCommand struct {
	Turn   int
	Map    *starmap.StarMap
	Realms []*realm.Realm
}

// MissionJournal stores the mission list of a realm after each turn
type MissionJournal interface {
	RecordTurn(ctx context.Context, turn int, realmName string, missions []*mission.Mission) error
}

// RealmStateRecorder is implemented by metrics recorders that also track
// per-realm totals at the end of a turn
type RealmStateRecorder interface {
	RecordRealmState(realmName string, missions, fleets, credits int)
}

// ProcessTurnHandler - Handles process turn commands
type ProcessTurnHandler struct {
	cfg        missions.Config
	scanRadius int
	metrics    missions.MetricsRecorder
	journal    MissionJournal
}

// NewProcessTurnHandler creates a new process turn handler.
// metrics and journal are optional.
func NewProcessTurnHandler(
	cfg missions.Config,
	scanRadius int,
	metrics missions.MetricsRecorder,
	journal MissionJournal,
) *ProcessTurnHandler {
	if scanRadius < 0 {
		scanRadius = 0
	}
	return &ProcessTurnHandler{
		cfg:        cfg,
		scanRadius: scanRadius,
		metrics:    metrics,
		journal:    journal,
	}
}

// Handle executes the process turn command
func (h *ProcessTurnHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ProcessTurnCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if cmd.Map == nil {
		return nil, fmt.Errorf("turn %d: star map is required", cmd.Turn)
	}

	report := &TurnReport{Turn: cmd.Turn}
	for _, r := range cmd.Realms {
		if !r.IsAI() {
			continue
		}
		realmReport, err := h.processRealm(ctx, cmd, r)
		if err != nil {
			return nil, err
		}
		report.Realms = append(report.Realms, *realmReport)
	}

	common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Turn] turn %d processed", cmd.Turn), map[string]interface{}{
		"realms":   len(report.Realms),
		"missions": report.MissionCount(),
		"removed":  report.RemovalCount(),
	})
	return report, nil
}

func (h *ProcessTurnHandler) processRealm(ctx context.Context, cmd *ProcessTurnCommand, r *realm.Realm) (*RealmReport, error) {
	logger := common.LoggerFromContext(ctx)
	rec := newReportRecorder(h.metrics)
	handler := missions.NewHandler(h.cfg, rec)

	// Unbound gather missions pick their fleet before any fleet moves
	for _, m := range r.Missions().All() {
		if m.Type() == mission.MissionTypeGather && !m.IsBound() {
			if err := handler.Handle(ctx, m, nil, r, cmd.Map); err != nil {
				return nil, fmt.Errorf("turn %d: realm %s: bind gather mission %s: %w", cmd.Turn, r.Name(), m.ID(), err)
			}
		}
	}

	for _, f := range r.Fleets().All() {
		// Merged away earlier this turn
		if f.IsEmpty() || !r.Fleets().Exists(f.Name()) {
			continue
		}
		m := r.Missions().GetForFleet(f.Name())
		if m == nil {
			continue
		}

		f.ResetMoves()
		if err := handler.Handle(ctx, m, f, r, cmd.Map); err != nil {
			return nil, fmt.Errorf("turn %d: realm %s: fleet %s: %w", cmd.Turn, r.Name(), f.Name(), err)
		}
		if f.MovesLeft() > 0 && f.Route() != nil {
			navigation.TravelRoute(f, cmd.Map)
		}
		r.Visibility().Scan(f.Coordinate(), h.scanRadius)
	}

	handler.Cleanup(ctx, r)

	var conflicts []string
	if err := r.Missions().CheckExclusive(); err != nil {
		conflicts = r.Missions().DuplicateFleetBindings()
		logger.Log("WARNING", fmt.Sprintf("[Turn] %s: %v", r.Name(), err), map[string]interface{}{
			"turn":   cmd.Turn,
			"fleets": conflicts,
		})
	}

	if h.journal != nil {
		if err := h.journal.RecordTurn(ctx, cmd.Turn, r.Name(), r.Missions().All()); err != nil {
			return nil, fmt.Errorf("turn %d: realm %s: record missions: %w", cmd.Turn, r.Name(), err)
		}
	}

	if state, ok := h.metrics.(RealmStateRecorder); ok {
		state.RecordRealmState(r.Name(), r.Missions().Len(), r.Fleets().Len(), r.Credits())
	}

	return buildRealmReport(r, rec, conflicts), nil
}

func buildRealmReport(r *realm.Realm, rec *reportRecorder, conflicts []string) *RealmReport {
	byState := make(map[string]int)
	for _, m := range r.Missions().All() {
		byState[MissionKey(m.Type(), m.Phase())]++
	}
	sort.Strings(conflicts)
	return &RealmReport{
		Realm:       r.Name(),
		Credits:     r.Credits(),
		Fleets:      r.Fleets().Len(),
		Missions:    byState,
		Removals:    rec.removals,
		Transitions: rec.transitions,
		Detours:     rec.detours,
		Conflicts:   conflicts,
	}
}

package missions

import (
	"context"

	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// Cleanup drops missions whose bound fleet no longer exists and removes fleets
// left without ships. Missions still in PLANNING are kept.
// Returns the pruned missions.
func (h *Handler) Cleanup(ctx context.Context, r *realm.Realm) []*mission.Mission {
	logger := common.LoggerFromContext(ctx)

	for _, f := range r.Fleets().All() {
		if f.IsEmpty() {
			r.RemoveFleet(f)
		}
	}

	removed := r.Missions().Prune(r.Fleets().Exists)
	for _, m := range removed {
		stale := shared.NewStaleReferenceError(m.Type().String(), m.FleetName())
		h.metrics.RecordRemoval(m.Type().String(), RemovalStale)
		logger.Log("DEBUG", "[Cleanup] "+stale.Error(), map[string]interface{}{
			"realm":   r.Name(),
			"mission": m.ID(),
			"phase":   m.Phase().String(),
		})
	}
	return removed
}

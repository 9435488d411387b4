package missions

import (
	"context"
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// HandleDeployStarbase flies a starbase hull to its anchor point and deploys it
func (h *Handler) HandleDeployStarbase(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeDeployStarbase, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				return h.deployStarbase(ctx, m, f, r, sm)
			})
		case mission.MissionPhaseExecuting:
			hold(f)
			return nil
		default:
			if f.StarbaseShip() == nil {
				h.removeMission(ctx, r, m, RemovalTargetLost)
				return nil
			}
			return h.depart(ctx, m, f, r)
		}
	})
}

func (h *Handler) deployStarbase(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	ship := f.StarbaseShip()
	if ship == nil {
		h.removeMission(ctx, r, m, RemovalTargetLost)
		return nil
	}
	target := m.Target()
	if err := sm.SetTile(target.X, target.Y, starmap.TileStarbaseAnchor); err != nil {
		return fmt.Errorf("deploy starbase of %s: %w", f.Name(), err)
	}
	ship.Deploy()
	hold(f)
	h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)

	common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Starbase] %s deployed %s at %s", r.Name(), ship.Name(), target), nil)
	return nil
}

// HandleDestroyStarbase waits for its gather missions to deliver their fleets,
// then attacks the starbase anchor until the tile no longer holds one
func (h *Handler) HandleDestroyStarbase(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeDestroyStarbase, f, func() error {
		target := m.Target()
		switch m.Phase() {
		case mission.MissionPhaseBuilding, mission.MissionPhaseLoading:
			h.setPhase(ctx, r, m, mission.MissionPhasePlanning)
			hold(f)
			return nil
		case mission.MissionPhasePlanning:
			hold(f)
			if r.Missions().CountGatherMissions(target) > 0 {
				return nil
			}
			h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
			return h.retarget(m, f)
		default:
			if sm.Tile(target.X, target.Y) != starmap.TileStarbaseAnchor {
				h.removeMission(ctx, r, m, RemovalCompleted)
				return nil
			}
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				hold(f)
				return nil
			})
		}
	})
}

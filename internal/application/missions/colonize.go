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

// HandleColonize embarks colonists, flies the colony ship to its target and
// founds the colony on arrival
func (h *Handler) HandleColonize(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeColonize, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseBuilding, mission.MissionPhaseLoading:
			return h.load(ctx, m, f, r, sm)
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				h.colonize(ctx, m, f, r, sm)
				return nil
			})
		default:
			return nil
		}
	})
}

// colonize founds the colony. Calling it again after success changes nothing:
// the colony ship is already gone, so there is nothing left to settle with.
func (h *Handler) colonize(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) {
	ship := f.ColonyShip()
	if ship == nil {
		h.removeMission(ctx, r, m, RemovalTargetLost)
		return
	}

	planet := sm.PlanetAt(m.Target().X, m.Target().Y)
	if planet == nil || planet.IsColonized() {
		h.removeMission(ctx, r, m, RemovalTargetLost)
		return
	}

	population := ship.UnloadColonists()
	if population < 1 {
		population = 1
	}
	planet.Colonize(r.Name(), population, r.Race().ColonyWorkerSlot())

	f.RemoveShip(ship)
	r.ShipStat(ship.Design()).DecrementInUse()
	if f.IsEmpty() {
		r.RemoveFleet(f)
	}
	hold(f)

	common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Colonize] %s founded a colony on %s", r.Name(), planet.Name()), map[string]interface{}{
		"fleet":      f.Name(),
		"population": population,
	})
	h.removeMission(ctx, r, m, RemovalCompleted)
}

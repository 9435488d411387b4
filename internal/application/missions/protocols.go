package missions

import (
	"context"
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/pathfinding"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// detour moves the fleet around whatever interrupted its FTL route.
//
// Postcondition: the fleet has no moves left. This turn's budget is always
// fully consumed once a detour search begins, whether or not the fleet moved.
//
// A capped search is bound on first use and walked over later turns. When its
// last point is reached the search is cleared, and if the fleet is still short
// of the target a new FTL route is armed from where it stands.
func (h *Handler) detour(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	defer f.SetMovesLeft(0)

	search := f.PathSearch()
	if search == nil {
		search = h.newDetourSearch(sm, f.Coordinate(), m.Target())
		f.SetPathSearch(search)
		h.metrics.RecordDetourSearch(r.Name(), search.Reached())
		common.LoggerFromContext(ctx).Log("DEBUG", fmt.Sprintf("[Detour] %s searching %s -> %s", f.Name(), f.Coordinate(), m.Target()), map[string]interface{}{
			"realm":    r.Name(),
			"reached":  search.Reached(),
			"radius":   search.MaxRadius(),
			"steps":    search.Len(),
			"expanded": search.Expanded(),
		})
	}

	navigation.MakeRegularMoves(f, sm)

	if !search.IsLastMove() {
		return nil
	}
	f.SetPathSearch(nil)
	if f.Coordinate().DistanceTo(m.Target()) > 0 {
		return h.armRoute(m, f)
	}
	return nil
}

// newDetourSearch runs the capped search and doubles its radius while it
// cannot bring the fleet any closer to the target. Once the radius spans the
// map the search runs uncapped.
func (h *Handler) newDetourSearch(sm *starmap.StarMap, from, to shared.Coordinate) *pathfinding.Search {
	radius := h.cfg.DetourRadius
	search := pathfinding.NewSearch(sm, from, to, radius)
	for radius > 0 && !search.MakesProgress() {
		radius *= 2
		if radius >= max(sm.Width(), sm.Height()) {
			radius = 0
		}
		search = pathfinding.NewSearch(sm, from, to, radius)
	}
	return search
}

// load embarks colonists or troops from the building planet.
//
// Units embark one at a time while the planet's population exceeds the
// threshold (the first unit has a lower threshold than the rest) and the fleet
// has room, and only while the fleet stands on that planet. The fleet departs once it has at least one unit aboard, or at once
// when it carries no colonist cargo at all.
func (h *Handler) load(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	if f.ColonistCapacity() == 0 {
		return h.depart(ctx, m, f, r)
	}

	planet := sm.PlanetByName(m.PlanetBuilding())
	if planet != nil && planet.Owner() == r.Name() && f.Coordinate().Equals(planet.Coordinate()) {
		for f.FreeColonistCapacity() > 0 {
			threshold := h.cfg.NextColonistThreshold
			if f.Colonists() == 0 {
				threshold = h.cfg.FirstColonistThreshold
			}
			if planet.Population() <= threshold {
				break
			}
			if err := planet.TakeColonist(); err != nil {
				break
			}
			if err := f.LoadColonist(); err != nil {
				return fmt.Errorf("load colonist on %s: %w", f.Name(), err)
			}
		}
	}

	if f.Colonists() > 0 {
		return h.depart(ctx, m, f, r)
	}
	h.setPhase(ctx, r, m, mission.MissionPhaseLoading)
	f.SetMovesLeft(0)
	return nil
}

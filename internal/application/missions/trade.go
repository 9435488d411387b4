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

// HandleTrade shuttles goods between the loading port (planetBuilding) and the
// trade port (targetPlanet) for as long as the trips pay off.
//
// An unprofitable port sends the fleet home with no loading port left. Selling at
// home ends the mission; so does a home port that pays nothing.
func (h *Handler) HandleTrade(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeTradeFleet, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseLoading:
			port := sm.PlanetByName(m.TargetPlanet())
			if port == nil {
				h.removeMission(ctx, r, m, RemovalTargetLost)
				return nil
			}
			loading := sm.PlanetByName(m.PlanetBuilding())
			if loading == nil {
				h.removeMission(ctx, r, m, RemovalTargetLost)
				return nil
			}
			if !f.Coordinate().Equals(loading.Coordinate()) {
				return h.sailToLoadingPort(ctx, m, f, r, sm, loading)
			}
			f.LoadTradeGoods()
			m.SetTarget(port.Coordinate())
			return h.depart(ctx, m, f, r)
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
				f.SetMovesLeft(0)
				return nil
			})
		case mission.MissionPhaseExecuting:
			return h.trade(ctx, m, f, r, sm)
		default:
			h.setPhase(ctx, r, m, mission.MissionPhaseLoading)
			f.SetMovesLeft(0)
			return nil
		}
	})
}

// sailToLoadingPort brings a fleet in LOADING to its loading port; goods are
// only taken aboard there
func (h *Handler) sailToLoadingPort(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap, loading *starmap.Planet) error {
	if !m.Target().Equals(loading.Coordinate()) {
		m.SetTarget(loading.Coordinate())
		return h.retarget(m, f)
	}
	return h.trek(ctx, m, f, r, sm, false, nil)
}

func (h *Handler) trade(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	port := sm.PlanetAt(f.X(), f.Y())
	var credits int
	if port != nil {
		credits = f.DoTrade(port, r.Name())
	}
	r.AddCredits(credits)
	hold(f)

	common.LoggerFromContext(ctx).Log("DEBUG", fmt.Sprintf("[Trade] %s traded at %s for %d credits", f.Name(), f.Coordinate(), credits), map[string]interface{}{
		"realm":   r.Name(),
		"credits": r.Credits(),
	})

	home := r.HomePlanet()
	if credits > 0 {
		if m.PlanetBuilding() == "" {
			// Returned home with goods; the route is over
			h.removeMission(ctx, r, m, RemovalCompleted)
			return nil
		}
		loading := m.PlanetBuilding()
		m.SetPlanetBuilding(m.TargetPlanet())
		m.SetTargetPlanet(loading)
		h.setPhase(ctx, r, m, mission.MissionPhaseLoading)
		return nil
	}

	homePlanet := sm.PlanetByName(home)
	if homePlanet == nil || m.TargetPlanet() == home {
		h.removeMission(ctx, r, m, RemovalUnprofitable)
		return nil
	}
	m.SetPlanetBuilding("")
	m.SetTargetPlanet(home)
	m.SetTarget(homePlanet.Coordinate())
	return h.depart(ctx, m, f, r)
}

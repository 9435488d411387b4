package missions

import (
	"context"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// HandleExplore scouts solar systems one after another. It never ends on its own.
func (h *Handler) HandleExplore(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeExplore, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, inSolarSystem(f, m, sm), func() error {
				h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
				m.ResetMissionTime()
				return nil
			})
		case mission.MissionPhaseExecuting:
			return h.exploreSystem(ctx, m, f, r, sm)
		default:
			return h.depart(ctx, m, f, r)
		}
	})
}

func (h *Handler) exploreSystem(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	if m.IncrementMissionTime() > r.Race().ExploringThreshold {
		f.SetPathSearch(nil)
		m.ResetMissionTime()
	}

	sun := sm.SolarSystemByName(m.SunName())
	if sun == nil {
		sun = sm.SolarSystemAt(f.Coordinate())
	}

	if sun == nil || sm.IsSolarSystemScanned(r.Visibility(), sun) {
		exclude := ""
		if sun != nil {
			exclude = sun.Name()
		}
		next := sm.NearestSolarSystem(f.X(), f.Y(), r.Visibility(), exclude)
		if next == nil {
			// Everything known is scanned; keep watching
			hold(f)
			return nil
		}
		m.SetSunName(next.Name())
		m.SetTarget(entryPoint(sm, r.Visibility(), f, next))
		h.setPhase(ctx, r, m, mission.MissionPhaseTrekking)
		return h.retarget(m, f)
	}

	return h.scanSector(ctx, m, f, r, sm, sun)
}

// scanSector detours to the nearest unscanned cell of the system
func (h *Handler) scanSector(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap, sun *starmap.SolarSystem) error {
	sector, ok := sm.NearestUnscannedSector(r.Visibility(), f.Coordinate(), sun)
	if !ok {
		hold(f)
		return nil
	}
	if !sector.Equals(m.Target()) {
		m.SetTarget(sector)
		f.SetPathSearch(nil)
	}
	f.SetRoute(nil)
	return h.detour(ctx, m, f, r, sm)
}

// HandleColonyExplore scans one solar system for colony sites and ends once
// every cell of it has been seen
func (h *Handler) HandleColonyExplore(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeColonyExplore, f, func() error {
		sun := sm.SolarSystemByName(m.SunName())
		if sun == nil {
			sun = sm.SolarSystemAt(m.Target())
		}
		if sun == nil {
			h.removeMission(ctx, r, m, RemovalTargetLost)
			return nil
		}

		switch m.Phase() {
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, sun.Contains(f.Coordinate()) || isAt(f, m), func() error {
				h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
				return nil
			})
		case mission.MissionPhaseExecuting:
			if sm.IsSolarSystemScanned(r.Visibility(), sun) {
				h.removeMission(ctx, r, m, RemovalCompleted)
				return nil
			}
			return h.scanSector(ctx, m, f, r, sm, sun)
		default:
			return h.depart(ctx, m, f, r)
		}
	})
}

// HandleRoam wanders from one solar system to the nearest other one
func (h *Handler) HandleRoam(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeRoam, f, func() error {
		if m.Phase() != mission.MissionPhaseTrekking {
			return h.depart(ctx, m, f, r)
		}
		return h.trek(ctx, m, f, r, sm, inSolarSystem(f, m, sm), func() error {
			return h.roamOn(ctx, m, f, r, sm)
		})
	})
}

// roamOn re-targets the nearest solar system other than the one the fleet is in
func (h *Handler) roamOn(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	exclude := m.SunName()
	if here := sm.SolarSystemAt(f.Coordinate()); here != nil {
		exclude = here.Name()
	}
	next := sm.NearestSolarSystem(f.X(), f.Y(), nil, exclude)
	if next == nil {
		hold(f)
		return nil
	}
	m.SetSunName(next.Name())
	m.SetTarget(entryPoint(sm, nil, f, next))
	h.setPhase(ctx, r, m, mission.MissionPhaseTrekking)
	return h.retarget(m, f)
}

// entryPoint picks where to aim for inside a system: the closest unscanned
// cell when vis is given, else the closest enterable one, else the sun itself
func entryPoint(sm *starmap.StarMap, vis *starmap.Visibility, f *navigation.Fleet, sun *starmap.SolarSystem) shared.Coordinate {
	if cell, ok := sm.NearestUnscannedSector(vis, f.Coordinate(), sun); ok {
		return cell
	}
	if cell, ok := sm.NearestOpenCell(f.Coordinate(), sun); ok {
		return cell
	}
	return sun.Center()
}

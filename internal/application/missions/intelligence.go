package missions

import (
	"context"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
)

// HandleSpy parks a spy ship over a hostile planet, gathering one point of
// espionage on its owner every turn
func (h *Handler) HandleSpy(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeSpy, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				planet := sm.PlanetAt(m.Target().X, m.Target().Y)
				if planet != nil && planet.IsColonized() && planet.Owner() != r.Name() {
					m.SetTargetPlanet(planet.Name())
					m.SetTargetRealm(planet.Owner())
					m.ResetMissionTime()
					h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
					hold(f)
					return nil
				}

				next := sm.NearestHostilePlanet(f.Coordinate(), r.Name(), h.cfg.HostileSearchRadius)
				if next == nil {
					hold(f)
					h.removeMission(ctx, r, m, RemovalTargetLost)
					return nil
				}
				m.SetTarget(next.Coordinate())
				m.SetTargetPlanet(next.Name())
				m.SetTargetRealm(next.Owner())
				return h.retarget(m, f)
			})
		case mission.MissionPhaseExecuting:
			hold(f)
			planet := sm.PlanetByName(m.TargetPlanet())
			if planet == nil || !planet.IsColonized() || planet.Owner() == r.Name() {
				h.removeMission(ctx, r, m, RemovalTargetLost)
				return nil
			}
			m.IncrementMissionTime()
			r.Espionage().Add(planet.Owner(), 1)
			return nil
		default:
			return h.depart(ctx, m, f, r)
		}
	})
}

// HandleEspionage delivers a one-shot espionage strike on the target realm
func (h *Handler) HandleEspionage(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeEspionage, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				hold(f)
				planet := sm.PlanetAt(m.Target().X, m.Target().Y)
				if planet == nil || !planet.IsColonized() || planet.Owner() == r.Name() {
					h.removeMission(ctx, r, m, RemovalTargetLost)
					return nil
				}
				if m.TargetRealm() != "" && planet.Owner() != m.TargetRealm() {
					h.removeMission(ctx, r, m, RemovalTargetLost)
					return nil
				}
				m.SetTargetRealm(planet.Owner())
				h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
				return nil
			})
		case mission.MissionPhaseExecuting:
			hold(f)
			r.Espionage().Add(m.TargetRealm(), h.cfg.EspionageBonus)
			h.removeMission(ctx, r, m, RemovalCompleted)
			return nil
		default:
			return h.depart(ctx, m, f, r)
		}
	})
}

// HandleDiplomaticDelegacy carries an envoy to a foreign planet and records the meeting
func (h *Handler) HandleDiplomaticDelegacy(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeDiplomaticDelegacy, f, func() error {
		meet := func() error {
			hold(f)
			planet := sm.PlanetByName(m.TargetPlanet())
			if planet == nil {
				planet = sm.PlanetAt(m.Target().X, m.Target().Y)
			}
			if planet == nil || !planet.IsColonized() || planet.Owner() == r.Name() {
				h.removeMission(ctx, r, m, RemovalTargetLost)
				return nil
			}
			r.Diplomacy().RecordMeeting(planet.Owner())
			h.removeMission(ctx, r, m, RemovalCompleted)
			return nil
		}

		switch m.Phase() {
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), meet)
		case mission.MissionPhaseExecuting:
			return meet()
		default:
			return h.depart(ctx, m, f, r)
		}
	})
}

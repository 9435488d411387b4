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

// HandleAttack gathers an attack group at its rally point and sends it
// against the target planet once the whole group has arrived
func (h *Handler) HandleAttack(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeAttack, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseBuilding, mission.MissionPhaseLoading:
			return h.load(ctx, m, f, r, sm)
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				if m.TargetPlanet() == "" {
					h.joinGroup(ctx, m, f, r)
					return nil
				}
				h.setPhase(ctx, r, m, mission.MissionPhasePlanning)
				hold(f)
				return nil
			})
		case mission.MissionPhasePlanning:
			return h.planAttack(ctx, m, f, r, sm)
		case mission.MissionPhaseExecuting:
			planet := sm.PlanetByName(m.TargetPlanet())
			if planet == nil {
				h.removeMission(ctx, r, m, RemovalTargetLost)
				return nil
			}
			if planet.Owner() == r.Name() {
				h.removeMission(ctx, r, m, RemovalCompleted)
				return nil
			}
			// On target the fleet waits for combat to be resolved outside
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				hold(f)
				return nil
			})
		default:
			return nil
		}
	})
}

// joinGroup merges the arriving fleet into a same-prefix fleet at the rally
// point and ends its mission. The mission ends even if no merge was possible.
func (h *Handler) joinGroup(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm) {
	for _, host := range r.Fleets().At(f.Coordinate()) {
		if host == f || host.NamePrefix() != f.NamePrefix() {
			continue
		}
		if h.merger.MergeInto(f, host, r.Fleets(), r.Race().MaxFleetShips) {
			common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Attack] %s joined %s at %s", f.Name(), host.Name(), f.Coordinate()), map[string]interface{}{
				"realm": r.Name(),
				"ships": host.NumberOfShips(),
			})
			h.removeMission(ctx, r, m, RemovalMerged)
			return
		}
	}
	hold(f)
	h.removeMission(ctx, r, m, RemovalCompleted)
}

// planAttack consolidates the group and launches it when it is complete and strong enough
func (h *Handler) planAttack(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	hold(f)
	for _, absorbed := range h.merger.MergeFleets(f, r.Fleets(), r.Race().MaxFleetShips) {
		if other := r.Missions().GetForFleet(absorbed.Name()); other != nil && other != m {
			h.removeMission(ctx, r, other, RemovalMerged)
		}
	}

	race := r.Race()
	if !r.Missions().IsLastAttackMission(m.Target()) {
		return nil
	}
	if f.BomberCount()+f.TrooperCount() < race.AttackMinBombersTroopers || f.MilitaryShipCount() < race.AttackMinMilitaryShips {
		return nil
	}

	planet := sm.PlanetByName(m.TargetPlanet())
	if planet == nil {
		h.removeMission(ctx, r, m, RemovalTargetLost)
		return nil
	}
	if planet.Owner() == r.Name() {
		h.removeMission(ctx, r, m, RemovalCompleted)
		return nil
	}

	m.SetTarget(planet.Coordinate())
	h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
	return h.retarget(m, f)
}

// HandleDefend posts a defender at its target and periodically hands the
// mission back to planning so a fresh defender can be chosen
func (h *Handler) HandleDefend(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeDefend, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseBuilding, mission.MissionPhaseLoading:
			return h.depart(ctx, m, f, r)
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
				m.ResetMissionTime()
				f.SetPathSearch(nil)
				// Zero-length route: the fleet holds its position
				if err := h.armRoute(m, f); err != nil {
					return err
				}
				f.SetMovesLeft(0)
				return nil
			})
		case mission.MissionPhaseExecuting:
			f.SetMovesLeft(0)
			if m.IncrementMissionTime() > r.Race().DefenseRefresh {
				m.ResetMissionTime()
				h.setPhase(ctx, r, m, mission.MissionPhasePlanning)
			}
			return nil
		default:
			return nil
		}
	})
}

// HandleGather claims a fleet of the mission's ship category and brings it to
// the gathering point, where it joins the fleet already waiting there
func (h *Handler) HandleGather(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	if m.Type() != mission.MissionTypeGather {
		return nil
	}
	if !m.IsBound() {
		return h.bindGatherFleet(ctx, m, r)
	}
	return h.run(m, mission.MissionTypeGather, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseTrekking:
			return h.trek(ctx, m, f, r, sm, isAt(f, m), func() error {
				h.joinGathering(ctx, m, f, r)
				return nil
			})
		default:
			return h.depart(ctx, m, f, r)
		}
	})
}

func (h *Handler) bindGatherFleet(ctx context.Context, m *mission.Mission, r *realm.Realm) error {
	claimed := func(name string) bool { return r.Missions().GetForFleet(name) != nil }
	result, err := h.selector.FindGatheringFleet(m.ShipType(), m.Target(), r.Fleets().All(), claimed)
	if err != nil {
		common.LoggerFromContext(ctx).Log("DEBUG", fmt.Sprintf("[Gather] %s mission stays unbound: %v", m.ShipType(), err), map[string]interface{}{
			"realm":   r.Name(),
			"mission": m.ID(),
		})
		return nil
	}

	m.SetFleetName(result.Fleet.Name())
	common.LoggerFromContext(ctx).Log("INFO", fmt.Sprintf("[Gather] bound %s: %s", result.Fleet.Name(), result.Reason), map[string]interface{}{
		"realm":   r.Name(),
		"mission": m.ID(),
	})
	return h.depart(ctx, m, result.Fleet, r)
}

// joinGathering merges the gathered fleet into the fleet waiting at the
// target: a same-prefix fleet if there is one, else a fleet on a non-gather
// mission. The mission ends either way.
func (h *Handler) joinGathering(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm) {
	var host *navigation.Fleet
	for _, candidate := range r.Fleets().At(f.Coordinate()) {
		if candidate == f {
			continue
		}
		if candidate.NamePrefix() == f.NamePrefix() {
			host = candidate
			break
		}
		if host == nil {
			if cm := r.Missions().GetForFleet(candidate.Name()); cm != nil && cm.Type() != mission.MissionTypeGather {
				host = candidate
			}
		}
	}

	reason := RemovalCompleted
	if host != nil && h.merger.MergeInto(f, host, r.Fleets(), r.Race().MaxFleetShips) {
		reason = RemovalMerged
	}
	hold(f)
	h.removeMission(ctx, r, m, reason)
}

// HandlePrivateer hunts unarmed foreign fleets near the privateer and roams
// between solar systems while nothing is in reach
func (h *Handler) HandlePrivateer(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypePrivateer, f, func() error {
		switch m.Phase() {
		case mission.MissionPhaseTrekking, mission.MissionPhasePlanning:
			prey, ok := h.findPrey(f, r, sm)
			if !ok {
				m.SetTargetPlanet("")
				h.setPhase(ctx, r, m, mission.MissionPhaseTrekking)
				return h.trek(ctx, m, f, r, sm, inSolarSystem(f, m, sm), func() error {
					return h.roamOn(ctx, m, f, r, sm)
				})
			}
			m.SetTargetRealm(prey.Owner)
			m.SetTargetPlanet(prey.Fleet.Name())
			return h.pursue(ctx, m, f, r, sm, prey.Fleet)
		case mission.MissionPhaseExecuting:
			prey, ok := sm.FleetByName(m.TargetRealm(), m.TargetPlanet())
			if !ok || !prey.Coordinate().Equals(f.Coordinate()) {
				m.SetTargetPlanet("")
				h.setPhase(ctx, r, m, mission.MissionPhaseTrekking)
				return nil
			}
			hold(f)
			return nil
		default:
			return h.depart(ctx, m, f, r)
		}
	})
}

// findPrey returns the closest foreign non-military fleet within the hostile search radius
func (h *Handler) findPrey(f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) (starmap.FleetSighting, bool) {
	var best starmap.FleetSighting
	found := false
	bestDistance := 0
	for _, sighting := range sm.FleetsNear(f.Coordinate(), h.cfg.HostileSearchRadius) {
		if sighting.Owner == r.Name() || sighting.Fleet.IsEmpty() || sighting.Fleet.IsMilitary() {
			continue
		}
		d := f.Coordinate().DistanceTo(sighting.Fleet.Coordinate())
		if !found || d < bestDistance {
			best, bestDistance, found = sighting, d, true
		}
	}
	return best, found
}

// HandleIntercept chases the fleet named by the mission inside its target realm
func (h *Handler) HandleIntercept(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeIntercept, f, func() error {
		return h.hunt(ctx, m, f, r, sm, false)
	})
}

// HandleDestroyFleet chases a named military fleet to destroy it
func (h *Handler) HandleDestroyFleet(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap) error {
	return h.run(m, mission.MissionTypeDestroyFleet, f, func() error {
		return h.hunt(ctx, m, f, r, sm, true)
	})
}

// hunt is the pursuit shared by INTERCEPT and DESTROY_FLEET. The target
// fleet's name travels in the mission's targetPlanet slot.
func (h *Handler) hunt(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap, militaryOnly bool) error {
	quarry, ok := sm.FleetByName(m.TargetRealm(), m.TargetPlanet())

	switch m.Phase() {
	case mission.MissionPhaseExecuting:
		if !ok || quarry.IsEmpty() {
			h.removeMission(ctx, r, m, RemovalCompleted)
			return nil
		}
		if quarry.Coordinate().Equals(f.Coordinate()) {
			hold(f)
			return nil
		}
		h.setPhase(ctx, r, m, mission.MissionPhaseTrekking)
		return h.pursue(ctx, m, f, r, sm, quarry)
	default:
		if !ok || quarry.IsEmpty() || (militaryOnly && !quarry.IsMilitary()) {
			h.removeMission(ctx, r, m, RemovalTargetLost)
			return nil
		}
		return h.pursue(ctx, m, f, r, sm, quarry)
	}
}

// pursue re-aims the mission at a moving fleet every turn. Standing on the
// same cell switches to EXECUTING; combat itself is resolved elsewhere.
func (h *Handler) pursue(ctx context.Context, m *mission.Mission, f *navigation.Fleet, r *realm.Realm, sm *starmap.StarMap, quarry *navigation.Fleet) error {
	if quarry.Coordinate().Equals(f.Coordinate()) {
		m.SetTarget(quarry.Coordinate())
		h.setPhase(ctx, r, m, mission.MissionPhaseExecuting)
		hold(f)
		return nil
	}

	h.setPhase(ctx, r, m, mission.MissionPhaseTrekking)
	if !m.Target().Equals(quarry.Coordinate()) {
		m.SetTarget(quarry.Coordinate())
		return h.retarget(m, f)
	}
	if f.Route() == nil {
		return h.detour(ctx, m, f, r, sm)
	}
	return nil
}

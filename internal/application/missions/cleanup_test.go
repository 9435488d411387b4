package missions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/test/helpers"
)

func TestCleanup_PrunesStaleMissions(t *testing.T) {
	// Arrange
	g := helpers.NewGalaxy(t, 10, 10)
	r := g.AddRealm("Terrans")
	g.AddFleet(r, "Guard", 1, 1, warship(t, "Frigate", 1))
	g.AddFleet(r, "Husk", 2, 2)

	alive := g.AddMission(r, mission.MissionTypeDefend, mission.MissionPhaseExecuting, 1, 1, "Guard")
	husk := g.AddMission(r, mission.MissionTypeExplore, mission.MissionPhaseTrekking, 5, 5, "Husk")
	ghost := g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhaseTrekking, 5, 5, "Ghost")
	planning := g.AddMission(r, mission.MissionTypeAttack, mission.MissionPhasePlanning, 5, 5, "Lost")
	unbound := g.AddMission(r, mission.MissionTypeGather, mission.MissionPhaseBuilding, 5, 5, "")
	h, rec := newHandler()

	// Act
	removed := h.Cleanup(context.Background(), r)

	// Assert
	assert.ElementsMatch(t, []*mission.Mission{husk, ghost}, removed)
	assert.ElementsMatch(t, []*mission.Mission{alive, planning, unbound}, r.Missions().All())
	assert.False(t, r.Fleets().Exists("Husk"))
	assert.Equal(t, []string{"stale", "stale"}, rec.removals)
}

package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/application/missions"
	"github.com/andrescamacho/realmfleet-go/internal/application/turn"
	"github.com/andrescamacho/realmfleet-go/internal/domain/fleet"
	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/realm"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
	"github.com/andrescamacho/realmfleet-go/internal/domain/starmap"
	"github.com/andrescamacho/realmfleet-go/test/helpers"
)

// fleetAIContext holds one galaxy with a single AI realm and the results of
// the turns played over it
type fleetAIContext struct {
	starMap   *starmap.StarMap
	realmName string
	race      realm.Race
	realm     *realm.Realm
	mediator  common.Mediator
	turn      int
	reports   []*turn.TurnReport
	selected  *navigation.Fleet

	// Per-fleet observations taken after every turn
	blockedVisits map[string]int
	movesLeft     map[string][]int
}

func (fc *fleetAIContext) reset() {
	fc.starMap = nil
	fc.realmName = ""
	fc.race = realm.Race{}
	fc.realm = nil
	fc.mediator = nil
	fc.turn = 0
	fc.reports = nil
	fc.selected = nil
	fc.blockedVisits = make(map[string]int)
	fc.movesLeft = make(map[string][]int)
}

// ensureRealm creates the realm on first use so race tuning steps can run first
func (fc *fleetAIContext) ensureRealm() (*realm.Realm, error) {
	if fc.realm != nil {
		return fc.realm, nil
	}
	if fc.starMap == nil || fc.realmName == "" {
		return nil, fmt.Errorf("a star map and a realm must be declared first")
	}
	r, err := realm.NewRealm(fc.realmName, fc.race, true, fc.starMap.NewVisibility())
	if err != nil {
		return nil, err
	}
	fc.starMap.RegisterFleetOwner(r)
	fc.realm = r
	return r, nil
}

func (fc *fleetAIContext) fleetByName(name string) (*navigation.Fleet, error) {
	r, err := fc.ensureRealm()
	if err != nil {
		return nil, err
	}
	f := r.Fleets().ByName(name)
	if f == nil {
		return nil, fmt.Errorf("fleet %q not found", name)
	}
	return f, nil
}

// Galaxy setup steps

func (fc *fleetAIContext) aStarMap(width, height int) error {
	sm, err := starmap.NewStarMap(width, height)
	if err != nil {
		return err
	}
	fc.starMap = sm
	return nil
}

func (fc *fleetAIContext) aWallOfBlackHoles(x, fromY, toY int) error {
	for y := fromY; y <= toY; y++ {
		if err := fc.starMap.SetTile(x, y, starmap.TileBlackHole); err != nil {
			return err
		}
	}
	return nil
}

func (fc *fleetAIContext) blackHolesAround(x, y int) error {
	for _, c := range (shared.Coordinate{X: x, Y: y}).Neighbors() {
		if err := fc.starMap.SetTile(c.X, c.Y, starmap.TileBlackHole); err != nil {
			return err
		}
	}
	return nil
}

func (fc *fleetAIContext) aPlanetOwnedByNobody(name string, x, y, population int) error {
	p, err := starmap.NewPlanet(name, shared.Coordinate{X: x, Y: y}, "", population)
	if err != nil {
		return err
	}
	return fc.starMap.AddPlanet(p)
}

func (fc *fleetAIContext) anAIRealm(name string) error {
	fc.realmName = name
	fc.race = helpers.DefaultRace(name)
	return nil
}

func (fc *fleetAIContext) theRealmsDefenseRefreshIs(turns int) error {
	if fc.realm != nil {
		return fmt.Errorf("race tuning must come before fleets and missions")
	}
	fc.race.DefenseRefresh = turns
	return nil
}

// theRealmHasFleets builds one fleet per row. Columns other than name, x and
// y are optional: ships (count), military, bombs, trooper, colony, colonists.
func (fc *fleetAIContext) theRealmHasFleets(table *godog.Table) error {
	r, err := fc.ensureRealm()
	if err != nil {
		return err
	}

	for _, row := range table.Rows[1:] {
		name := getCell(table, row, "name")
		x, err := strconv.Atoi(getCell(table, row, "x"))
		if err != nil {
			return fmt.Errorf("fleet %s: x: %w", name, err)
		}
		y, err := strconv.Atoi(getCell(table, row, "y"))
		if err != nil {
			return fmt.Errorf("fleet %s: y: %w", name, err)
		}

		count := intCell(table, row, "ships", 1)
		military := intCell(table, row, "military", 1)
		colonists := intCell(table, row, "colonists", 0)
		ships := make([]*navigation.Ship, 0, count)
		for i := 0; i < count; i++ {
			ship, err := navigation.NewShip(navigation.ShipSpec{
				Name:             fmt.Sprintf("%s-%d", name, i+1),
				Design:           "Mk1",
				Speed:            1,
				FTLSpeed:         3,
				MilitaryPower:    military,
				Bombs:            getCell(table, row, "bombs") == "true",
				Trooper:          getCell(table, row, "trooper") == "true",
				ColonyModule:     getCell(table, row, "colony") == "true",
				ColonistCapacity: colonists,
				Colonists:        colonists,
			})
			if err != nil {
				return fmt.Errorf("fleet %s: %w", name, err)
			}
			ships = append(ships, ship)
		}

		f, err := navigation.NewFleet(name, shared.Coordinate{X: x, Y: y}, ships...)
		if err != nil {
			return err
		}
		r.CommissionFleet(f)
	}
	return nil
}

func intCell(table *godog.Table, row *messages.PickleTableRow, column string, fallback int) int {
	value := getCell(table, row, column)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func (fc *fleetAIContext) fleetHasAMission(fleetName, missionType, phase string, x, y int) error {
	r, err := fc.ensureRealm()
	if err != nil {
		return err
	}
	t, err := mission.ParseMissionType(missionType)
	if err != nil {
		return err
	}
	p, err := mission.ParseMissionPhase(phase)
	if err != nil {
		return err
	}
	m, err := mission.NewMission(t, p, shared.Coordinate{X: x, Y: y})
	if err != nil {
		return err
	}
	m.SetFleetName(fleetName)
	r.Missions().Add(m)
	return nil
}

// Fleet service steps

func (fc *fleetAIContext) aGatherMissionSelectsAFleet(shipType string, x, y int) error {
	r, err := fc.ensureRealm()
	if err != nil {
		return err
	}
	claimed := func(name string) bool { return r.Missions().GetForFleet(name) != nil }
	result, err := fleet.NewGatherSelector().FindGatheringFleet(shipType, shared.Coordinate{X: x, Y: y}, r.Fleets().All(), claimed)
	if err != nil {
		sharedErr = err
		return nil
	}
	fc.selected = result.Fleet
	return nil
}

func (fc *fleetAIContext) fleetShouldBeSelected(name string) error {
	if fc.selected == nil {
		return fmt.Errorf("expected fleet %q to be selected, none was (error: %v)", name, sharedErr)
	}
	if fc.selected.Name() != name {
		return fmt.Errorf("expected fleet %q to be selected, got %q", name, fc.selected.Name())
	}
	return nil
}

func (fc *fleetAIContext) fleetMergesItsGroup(name string, maxShips int) error {
	f, err := fc.fleetByName(name)
	if err != nil {
		return err
	}
	fleet.NewMergeService().MergeFleets(f, fc.realm.Fleets(), maxShips)
	return nil
}

// Turn steps

func (fc *fleetAIContext) playTurn() error {
	r, err := fc.ensureRealm()
	if err != nil {
		return err
	}
	if fc.mediator == nil {
		fc.mediator = common.NewMediator()
		handler := turn.NewProcessTurnHandler(missions.DefaultConfig(), turn.DefaultScanRadius, nil, nil)
		if err := common.RegisterHandler[*turn.ProcessTurnCommand](fc.mediator, handler); err != nil {
			return err
		}
	}

	fc.turn++
	response, err := fc.mediator.Send(context.Background(), &turn.ProcessTurnCommand{
		Turn:   fc.turn,
		Map:    fc.starMap,
		Realms: []*realm.Realm{r},
	})
	if err != nil {
		return err
	}
	report, ok := response.(*turn.TurnReport)
	if !ok {
		return fmt.Errorf("unexpected response %T", response)
	}
	fc.reports = append(fc.reports, report)

	for _, f := range r.Fleets().All() {
		if fc.starMap.IsBlocked(f.X(), f.Y()) {
			fc.blockedVisits[f.Name()]++
		}
		fc.movesLeft[f.Name()] = append(fc.movesLeft[f.Name()], f.MovesLeft())
	}
	return nil
}

func (fc *fleetAIContext) turnsArePlayed(n int) error {
	for i := 0; i < n; i++ {
		if err := fc.playTurn(); err != nil {
			return err
		}
	}
	return nil
}

func (fc *fleetAIContext) turnsArePlayedUntilPhase(fleetName, phase string, limit int) error {
	for i := 0; i < limit; i++ {
		if m := fc.realm.Missions().GetForFleet(fleetName); m != nil && string(m.Phase()) == phase {
			return nil
		}
		if err := fc.playTurn(); err != nil {
			return err
		}
	}
	if m := fc.realm.Missions().GetForFleet(fleetName); m != nil && string(m.Phase()) == phase {
		return nil
	}
	return fmt.Errorf("fleet %q did not reach %s within %d turns", fleetName, phase, limit)
}

// Assertion steps

func (fc *fleetAIContext) fleetShouldBeAt(name string, x, y int) error {
	f, err := fc.fleetByName(name)
	if err != nil {
		return err
	}
	expected := shared.Coordinate{X: x, Y: y}
	if f.Coordinate() != expected {
		return fmt.Errorf("expected fleet %q at %s, got %s", name, expected, f.Coordinate())
	}
	return nil
}

func (fc *fleetAIContext) fleetShouldNeverHaveStoodOnABlockedCell(name string) error {
	if n := fc.blockedVisits[name]; n > 0 {
		return fmt.Errorf("fleet %q ended %d turns on a blocked cell", name, n)
	}
	return nil
}

func (fc *fleetAIContext) everyTurnShouldHaveLeftFleetWithoutMoves(name string) error {
	moves := fc.movesLeft[name]
	if len(moves) == 0 {
		return fmt.Errorf("no turns recorded for fleet %q", name)
	}
	for i, left := range moves {
		if left != 0 {
			return fmt.Errorf("fleet %q had %d moves left after turn %d", name, left, i+1)
		}
	}
	return nil
}

func (fc *fleetAIContext) atLeastDetourSearchesShouldHaveBeenRecorded(expected int) error {
	total := 0
	for _, report := range fc.reports {
		for _, rr := range report.Realms {
			total += rr.Detours
		}
	}
	if total < expected {
		return fmt.Errorf("expected at least %d detour searches, got %d", expected, total)
	}
	return nil
}

func (fc *fleetAIContext) theMissionOfFleetShouldBeInPhase(name, phase string) error {
	m := fc.realm.Missions().GetForFleet(name)
	if m == nil {
		return fmt.Errorf("fleet %q has no mission", name)
	}
	if string(m.Phase()) != phase {
		return fmt.Errorf("expected mission of fleet %q in %s, got %s", name, phase, m.Phase())
	}
	return nil
}

func (fc *fleetAIContext) fleetShouldHaveShips(name string, expected int) error {
	f, err := fc.fleetByName(name)
	if err != nil {
		return err
	}
	if f.NumberOfShips() != expected {
		return fmt.Errorf("expected fleet %q to have %d ships, got %d", name, expected, f.NumberOfShips())
	}
	return nil
}

func (fc *fleetAIContext) fleetShouldNoLongerExist(name string) error {
	if fc.realm.Fleets().Exists(name) {
		return fmt.Errorf("expected fleet %q to be gone", name)
	}
	return nil
}

func (fc *fleetAIContext) planetShouldBeOwnedByWithPopulation(name, owner string, population int) error {
	p := fc.starMap.PlanetByName(name)
	if p == nil {
		return fmt.Errorf("planet %q not found", name)
	}
	if p.Owner() != owner || p.Population() != population {
		return fmt.Errorf("expected %s owned by %q with population %d, got %q with %d",
			name, owner, population, p.Owner(), p.Population())
	}
	return nil
}

func (fc *fleetAIContext) theRealmShouldHaveMissions(expected int) error {
	if fc.realm.Missions().Len() != expected {
		return fmt.Errorf("expected %d missions, got %d", expected, fc.realm.Missions().Len())
	}
	return nil
}

func (fc *fleetAIContext) missionsShouldHaveBeenRemovedAs(expected int, reason string) error {
	total := 0
	for _, report := range fc.reports {
		for _, rr := range report.Realms {
			total += rr.Removals[reason]
		}
	}
	if total != expected {
		return fmt.Errorf("expected %d missions removed as %q, got %d", expected, reason, total)
	}
	return nil
}

func (fc *fleetAIContext) theTurnShouldReportABindingConflictFor(name string) error {
	if len(fc.reports) == 0 {
		return fmt.Errorf("no turn has been played")
	}
	last := fc.reports[len(fc.reports)-1]
	rr, ok := last.Realm(fc.realmName)
	if !ok {
		return fmt.Errorf("realm %q missing from the report", fc.realmName)
	}
	for _, conflict := range rr.Conflicts {
		if conflict == name {
			return nil
		}
	}
	return fmt.Errorf("expected a binding conflict for %q, got %v", name, rr.Conflicts)
}

// InitializeFleetAIScenario registers the galaxy, fleet service and turn steps
func InitializeFleetAIScenario(ctx *godog.ScenarioContext) {
	fc := &fleetAIContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.reset()
		return c, nil
	})

	// Given steps
	ctx.Step(`^a (\d+)x(\d+) star map$`, fc.aStarMap)
	ctx.Step(`^a wall of black holes at column (\d+) from row (\d+) to row (\d+)$`, fc.aWallOfBlackHoles)
	ctx.Step(`^black holes around \((\d+),(\d+)\)$`, fc.blackHolesAround)
	ctx.Step(`^a planet "([^"]*)" at \((\d+),(\d+)\) owned by nobody with population (\d+)$`, fc.aPlanetOwnedByNobody)
	ctx.Step(`^an AI realm "([^"]*)"$`, fc.anAIRealm)
	ctx.Step(`^the realm's defense refresh is (\d+) turns$`, fc.theRealmsDefenseRefreshIs)
	ctx.Step(`^the realm has fleets:$`, fc.theRealmHasFleets)
	ctx.Step(`^fleet "([^"]*)" has an? ([A-Z_]+) mission in phase ([A-Z]+) targeting \((\d+),(\d+)\)$`, fc.fleetHasAMission)

	// When steps
	ctx.Step(`^a gather mission for ([A-Z]+) ships at \((\d+),(\d+)\) selects a fleet$`, fc.aGatherMissionSelectsAFleet)
	ctx.Step(`^fleet "([^"]*)" merges its group allowing (\d+) ships$`, fc.fleetMergesItsGroup)
	ctx.Step(`^(\d+) turns? (?:is|are) played$`, fc.turnsArePlayed)
	ctx.Step(`^turns are played until fleet "([^"]*)" is ([A-Z]+), at most (\d+)$`, fc.turnsArePlayedUntilPhase)

	// Then steps
	ctx.Step(`^fleet "([^"]*)" should be selected$`, fc.fleetShouldBeSelected)
	ctx.Step(`^fleet "([^"]*)" should be at \((\d+),(\d+)\)$`, fc.fleetShouldBeAt)
	ctx.Step(`^fleet "([^"]*)" should never have stood on a blocked cell$`, fc.fleetShouldNeverHaveStoodOnABlockedCell)
	ctx.Step(`^every turn should have left fleet "([^"]*)" without moves$`, fc.everyTurnShouldHaveLeftFleetWithoutMoves)
	ctx.Step(`^at least (\d+) detour searche?s? should have been recorded$`, fc.atLeastDetourSearchesShouldHaveBeenRecorded)
	ctx.Step(`^the mission of fleet "([^"]*)" should be in phase ([A-Z]+)$`, fc.theMissionOfFleetShouldBeInPhase)
	ctx.Step(`^fleet "([^"]*)" should have (\d+) ships?$`, fc.fleetShouldHaveShips)
	ctx.Step(`^fleet "([^"]*)" should no longer exist$`, fc.fleetShouldNoLongerExist)
	ctx.Step(`^planet "([^"]*)" should be owned by "([^"]*)" with population (\d+)$`, fc.planetShouldBeOwnedByWithPopulation)
	ctx.Step(`^the realm should have (\d+) missions?$`, fc.theRealmShouldHaveMissions)
	ctx.Step(`^(\d+) missions? should have been removed as "([^"]*)"$`, fc.missionsShouldHaveBeenRemovedAs)
	ctx.Step(`^the turn should report a binding conflict for "([^"]*)"$`, fc.theTurnShouldReportABindingConflictFor)
}

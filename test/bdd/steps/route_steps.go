package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

type routeContext struct {
	route *navigation.Route
	err   error
}

func (rc *routeContext) reset() {
	rc.route = nil
	rc.err = nil
}

func (rc *routeContext) aRouteFromToAtSpeed(x1, y1, x2, y2, speed int) error {
	route, err := navigation.NewRoute(shared.Coordinate{X: x1, Y: y1}, shared.Coordinate{X: x2, Y: y2}, speed)
	if err != nil {
		return err
	}
	rc.route = route
	return nil
}

func (rc *routeContext) iCreateARouteFromToAtSpeed(x1, y1, x2, y2, speed int) error {
	rc.route, rc.err = navigation.NewRoute(shared.Coordinate{X: x1, Y: y1}, shared.Coordinate{X: x2, Y: y2}, speed)
	sharedErr = rc.err
	return nil
}

func (rc *routeContext) theRouteAdvancesTimes(n int) error {
	if rc.route == nil {
		return fmt.Errorf("no route")
	}
	for i := 0; i < n; i++ {
		rc.route.Advance()
	}
	return nil
}

func (rc *routeContext) theRouteLengthShouldBe(expected int) error {
	if rc.route.Length() != expected {
		return fmt.Errorf("expected route length %d, got %d", expected, rc.route.Length())
	}
	return nil
}

func (rc *routeContext) theRouteShouldReachItsEndInTurns(expected int) error {
	if rc.route.TimeEstimate() != expected {
		return fmt.Errorf("expected %d turns to the end, got %d", expected, rc.route.TimeEstimate())
	}
	return nil
}

func (rc *routeContext) theRoutePositionShouldBe(x, y int) error {
	expected := shared.Coordinate{X: x, Y: y}
	if rc.route.Position() != expected {
		return fmt.Errorf("expected route position %s, got %s", expected, rc.route.Position())
	}
	return nil
}

func (rc *routeContext) theRouteShouldBeAtItsEnd() error {
	if !rc.route.IsEndReached() {
		return fmt.Errorf("expected route to be at its end, at %s", rc.route.Position())
	}
	return nil
}

func (rc *routeContext) theRouteShouldNotBeAtItsEnd() error {
	if rc.route.IsEndReached() {
		return fmt.Errorf("expected route not to be at its end")
	}
	return nil
}

func (rc *routeContext) theNextCellsShouldBe(table *godog.Table) error {
	cells := rc.route.NextCells()
	rows := table.Rows[1:]
	if len(cells) != len(rows) {
		return fmt.Errorf("expected %d next cells, got %v", len(rows), cells)
	}
	for i, row := range rows {
		x, err := strconv.Atoi(getCell(table, row, "x"))
		if err != nil {
			return err
		}
		y, err := strconv.Atoi(getCell(table, row, "y"))
		if err != nil {
			return err
		}
		if cells[i] != (shared.Coordinate{X: x, Y: y}) {
			return fmt.Errorf("next cell %d: expected (%d,%d), got %s", i, x, y, cells[i])
		}
	}
	return nil
}

// InitializeRouteScenario registers the FTL route steps
func InitializeRouteScenario(ctx *godog.ScenarioContext) {
	rc := &routeContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		rc.reset()
		return c, nil
	})

	ctx.Step(`^a route from \((\d+),(\d+)\) to \((\d+),(\d+)\) at speed (-?\d+)$`, rc.aRouteFromToAtSpeed)
	ctx.Step(`^I create a route from \((\d+),(\d+)\) to \((\d+),(\d+)\) at speed (-?\d+)$`, rc.iCreateARouteFromToAtSpeed)
	ctx.Step(`^the route advances (\d+) times?$`, rc.theRouteAdvancesTimes)
	ctx.Step(`^the route length should be (\d+)$`, rc.theRouteLengthShouldBe)
	ctx.Step(`^the route should reach its end in (\d+) turns$`, rc.theRouteShouldReachItsEndInTurns)
	ctx.Step(`^the route position should be \((\d+),(\d+)\)$`, rc.theRoutePositionShouldBe)
	ctx.Step(`^the route should be at its end$`, rc.theRouteShouldBeAtItsEnd)
	ctx.Step(`^the route should not be at its end$`, rc.theRouteShouldNotBeAtItsEnd)
	ctx.Step(`^the next cells should be:$`, rc.theNextCellsShouldBe)
}

package navigation

import (
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// Route is a straight-line FTL traversal between two cells at constant speed.
//
// Invariants:
// - Speed is positive
// - Traveled never exceeds the route length
//
// A Route does not avoid obstacles. The movement service checks the cells of
// each advance against the map and drops the route when something is in the way,
// which hands the fleet over to the detour search.
type Route struct {
	start    shared.Coordinate
	end      shared.Coordinate
	speed    int
	traveled int
}

// NewRoute creates a new route with validation
func NewRoute(start, end shared.Coordinate, speed int) (*Route, error) {
	if speed <= 0 {
		return nil, shared.NewInvalidSpeedError(speed)
	}
	return &Route{
		start: start,
		end:   end,
		speed: speed,
	}, nil
}

// MustNewRoute creates a route and panics on invalid speed.
// Only for configuration code that has already validated its speeds.
func MustNewRoute(start, end shared.Coordinate, speed int) *Route {
	r, err := NewRoute(start, end, speed)
	if err != nil {
		panic(err)
	}
	return r
}

// Getters

func (r *Route) Start() shared.Coordinate {
	return r.start
}

func (r *Route) End() shared.Coordinate {
	return r.end
}

func (r *Route) Speed() int {
	return r.speed
}

// Length is the number of grid units between start and end
func (r *Route) Length() int {
	return r.start.DistanceTo(r.end)
}

// Route execution

// Advance moves up to speed units along the line
func (r *Route) Advance() {
	r.traveled += r.speed
	if r.traveled > r.Length() {
		r.traveled = r.Length()
	}
}

// Position returns the current cell on the line
func (r *Route) Position() shared.Coordinate {
	return r.pointAt(r.traveled)
}

// IsEndReached checks if the route has been fully traveled
func (r *Route) IsEndReached() bool {
	return r.traveled >= r.Length()
}

// TimeEstimate returns the number of turns left to reach the end
func (r *Route) TimeEstimate() int {
	remaining := r.Length() - r.traveled
	return (remaining + r.speed - 1) / r.speed
}

// NextCells lists every cell the next Advance passes through, in order
func (r *Route) NextCells() []shared.Coordinate {
	target := r.traveled + r.speed
	if target > r.Length() {
		target = r.Length()
	}

	cells := make([]shared.Coordinate, 0, target-r.traveled)
	for unit := r.traveled + 1; unit <= target; unit++ {
		cells = append(cells, r.pointAt(unit))
	}
	return cells
}

// pointAt interpolates the cell after the given number of units
func (r *Route) pointAt(units int) shared.Coordinate {
	length := r.Length()
	if length == 0 || units >= length {
		if length == 0 {
			return r.start
		}
		return r.end
	}
	dx := r.end.X - r.start.X
	dy := r.end.Y - r.start.Y
	return shared.Coordinate{
		X: r.start.X + roundDiv(dx*units, length),
		Y: r.start.Y + roundDiv(dy*units, length),
	}
}

func (r *Route) String() string {
	return fmt.Sprintf("Route(%s → %s, speed=%d, eta=%d)", r.start, r.end, r.speed, r.TimeEstimate())
}

// roundDiv divides rounding half away from zero
func roundDiv(a, b int) int {
	if (a < 0) != (b < 0) {
		return (a - b/2) / b
	}
	return (a + b/2) / b
}

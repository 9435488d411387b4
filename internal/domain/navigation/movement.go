package navigation

import "github.com/andrescamacho/realmfleet-go/internal/domain/pathfinding"

// MakeRegularMoves walks the fleet along its bound path search.
//
// Each of the fleet's remaining moves peeks the next path point; a clear point is
// committed and consumed, a blocked one is left in place and retried by the next
// move. The whole budget is spent either way: movesLeft is zero on return, so a
// fleet that cannot move this turn still uses its turn.
//
// Returns the number of cells actually moved.
func MakeRegularMoves(fleet *Fleet, grid pathfinding.Grid) int {
	moved := 0
	search := fleet.PathSearch()
	if search != nil {
		for mv := 0; mv < fleet.MovesLeft(); mv++ {
			point, ok := search.Move()
			if !ok {
				break
			}
			if grid.IsBlocked(point.X, point.Y) {
				continue
			}
			fleet.SetCoordinate(point.Coordinate())
			search.NextMove()
			moved++
		}
	}
	fleet.SetMovesLeft(0)
	return moved
}

// TravelRoute advances the fleet one turn along its FTL route.
//
// Every cell crossed by the advance is checked against the grid. On the first
// blocked cell the fleet stops on the last clear cell and the route is dropped,
// which is the signal mission handling uses to start a detour search. The route
// is also dropped once its end is reached. Returns true if the fleet moved.
func TravelRoute(fleet *Fleet, grid pathfinding.Grid) bool {
	route := fleet.Route()
	if route == nil {
		return false
	}
	defer fleet.SetMovesLeft(0)

	if route.IsEndReached() {
		fleet.SetRoute(nil)
		return false
	}

	start := fleet.Coordinate()
	for _, cell := range route.NextCells() {
		if grid.IsBlocked(cell.X, cell.Y) {
			fleet.SetRoute(nil)
			return !fleet.Coordinate().Equals(start)
		}
		fleet.SetCoordinate(cell)
	}

	route.Advance()
	fleet.SetCoordinate(route.Position())
	if route.IsEndReached() {
		fleet.SetRoute(nil)
	}
	return !fleet.Coordinate().Equals(start)
}

package pathfinding

import (
	"container/heap"
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

const (
	// DefaultDetourRadius is the search cap used when a fleet needs to get
	// around an obstacle. Long range travel resumes on a Route afterwards.
	DefaultDetourRadius = 7

	// maxIterations bounds uncapped searches on grids without edges
	maxIterations = 20000
)

// Grid exposes the blocked-cell predicate of a map snapshot.
// Cells outside the map must report blocked.
type Grid interface {
	IsBlocked(x, y int) bool
}

// PathPoint is a single step of a computed path
type PathPoint struct {
	X int
	Y int
}

// Coordinate converts the point to a grid coordinate
func (p PathPoint) Coordinate() shared.Coordinate {
	return shared.Coordinate{X: p.X, Y: p.Y}
}

// Search is an A* path bound to (grid, start, goal).
//
// The path is computed once at construction and consumed through a cursor:
// Move peeks the next point, NextMove advances past it. The sequence cannot be
// restarted; when the map changes the caller builds a new search.
//
// When the goal lies outside the radius cap or is walled off, the path leads to
// the explored cell closest to the goal instead of failing.
type Search struct {
	start     shared.Coordinate
	goal      shared.Coordinate
	maxRadius int
	path      []PathPoint
	cursor    int
	reached   bool
	expanded  int
}

// NewSearch runs A* from start to goal. A maxRadius of zero disables the cap.
func NewSearch(grid Grid, start, goal shared.Coordinate, maxRadius int) *Search {
	s := &Search{
		start:     start,
		goal:      goal,
		maxRadius: maxRadius,
	}
	s.run(grid)
	return s
}

// Getters

func (s *Search) Start() shared.Coordinate {
	return s.start
}

func (s *Search) Goal() shared.Coordinate {
	return s.goal
}

func (s *Search) MaxRadius() int {
	return s.maxRadius
}

// Reached reports whether the full path to the goal was found
func (s *Search) Reached() bool {
	return s.reached
}

// Len returns the number of steps in the path, start excluded
func (s *Search) Len() int {
	return len(s.path)
}

// Expanded returns how many cells the search expanded
func (s *Search) Expanded() int {
	return s.expanded
}

// Path returns a copy of the remaining steps
func (s *Search) Path() []PathPoint {
	remaining := make([]PathPoint, len(s.path)-s.cursor)
	copy(remaining, s.path[s.cursor:])
	return remaining
}

// Cursor handling

// Move returns the next step without consuming it
func (s *Search) Move() (PathPoint, bool) {
	if s.cursor >= len(s.path) {
		return PathPoint{}, false
	}
	return s.path[s.cursor], true
}

// NextMove consumes the current step
func (s *Search) NextMove() {
	if s.cursor < len(s.path) {
		s.cursor++
	}
}

// IsLastMove reports whether every step of the path has been consumed
func (s *Search) IsLastMove() bool {
	return s.cursor >= len(s.path)
}

// RemainingDistanceToGoal is the grid distance from the end of the path to the
// true goal. Zero when the search reached its goal.
func (s *Search) RemainingDistanceToGoal() int {
	end := s.start
	if len(s.path) > 0 {
		end = s.path[len(s.path)-1].Coordinate()
	}
	return end.DistanceTo(s.goal)
}

// MakesProgress reports whether walking the path leaves the fleet closer to the
// goal than where it started
func (s *Search) MakesProgress() bool {
	return s.reached || s.RemainingDistanceToGoal() < s.start.DistanceTo(s.goal)
}

func (s *Search) String() string {
	return fmt.Sprintf("Search(%s -> %s, steps=%d, reached=%t)", s.start, s.goal, len(s.path), s.reached)
}

// A* internals

type node struct {
	coord shared.Coordinate
	g     int
	h     int
	seq   int
	index int
}

type openSet []*node

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	fi, fj := o[i].g+o[i].h, o[j].g+o[j].h
	if fi != fj {
		return fi < fj
	}
	if o[i].h != o[j].h {
		return o[i].h < o[j].h
	}
	return o[i].seq < o[j].seq
}

func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openSet) Push(x any) {
	n := x.(*node)
	n.index = len(*o)
	*o = append(*o, n)
}

func (o *openSet) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*o = old[:len(old)-1]
	n.index = -1
	return n
}

func (s *Search) run(grid Grid) {
	if s.start.Equals(s.goal) {
		s.reached = true
		return
	}

	open := &openSet{}
	seq := 0
	nodes := map[shared.Coordinate]*node{}
	closed := map[shared.Coordinate]bool{}
	cameFrom := map[shared.Coordinate]shared.Coordinate{}

	startNode := &node{coord: s.start, g: 0, h: s.start.DistanceTo(s.goal), seq: seq}
	nodes[s.start] = startNode
	heap.Push(open, startNode)

	best := startNode

	for open.Len() > 0 && s.expanded < maxIterations {
		current := heap.Pop(open).(*node)
		if closed[current.coord] {
			continue
		}
		closed[current.coord] = true
		s.expanded++

		if current.h < best.h || (current.h == best.h && current.g < best.g) {
			best = current
		}

		if current.coord.Equals(s.goal) {
			s.reached = true
			best = current
			break
		}

		for _, next := range current.coord.Neighbors() {
			if closed[next] || grid.IsBlocked(next.X, next.Y) {
				continue
			}
			if s.maxRadius > 0 && s.start.DistanceTo(next) > s.maxRadius {
				continue
			}

			g := current.g + 1
			if existing, ok := nodes[next]; ok {
				if g >= existing.g {
					continue
				}
				existing.g = g
				cameFrom[next] = current.coord
				if existing.index >= 0 {
					heap.Fix(open, existing.index)
				} else {
					heap.Push(open, existing)
				}
				continue
			}

			seq++
			n := &node{coord: next, g: g, h: next.DistanceTo(s.goal), seq: seq}
			nodes[next] = n
			cameFrom[next] = current.coord
			heap.Push(open, n)
		}
	}

	s.path = reconstruct(cameFrom, s.start, best.coord)
}

func reconstruct(cameFrom map[shared.Coordinate]shared.Coordinate, start, end shared.Coordinate) []PathPoint {
	if end.Equals(start) {
		return nil
	}

	var reversed []PathPoint
	for at := end; !at.Equals(start); {
		reversed = append(reversed, PathPoint{X: at.X, Y: at.Y})
		prev, ok := cameFrom[at]
		if !ok {
			break
		}
		at = prev
	}

	path := make([]PathPoint, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}

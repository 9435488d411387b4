package shared

import "fmt"

// Coordinate represents an immutable cell on the star map grid
type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// NewCoordinate creates a coordinate, rejecting negative positions
func NewCoordinate(x, y int) (Coordinate, error) {
	if x < 0 || y < 0 {
		return Coordinate{}, NewValidationError("coordinate", fmt.Sprintf("(%d,%d) is outside the map", x, y))
	}
	return Coordinate{X: x, Y: y}, nil
}

// DistanceTo returns the grid distance to another coordinate.
// Diagonal steps cost the same as orthogonal ones, so this is max(|dx|,|dy|).
func (c Coordinate) DistanceTo(other Coordinate) int {
	dx := abs(other.X - c.X)
	dy := abs(other.Y - c.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Equals checks if both coordinates point to the same cell
func (c Coordinate) Equals(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// IsAdjacent checks if other is one of the eight surrounding cells
func (c Coordinate) IsAdjacent(other Coordinate) bool {
	return c.DistanceTo(other) == 1
}

// Neighbors returns the eight surrounding cells clockwise from north.
// Cells may lie outside the map; callers filter them through the grid.
func (c Coordinate) Neighbors() []Coordinate {
	return []Coordinate{
		{c.X, c.Y - 1},
		{c.X + 1, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X + 1, c.Y + 1},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y + 1},
		{c.X - 1, c.Y},
		{c.X - 1, c.Y - 1},
	}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// FindNearestCoordinate returns the nearest coordinate from a list and its distance.
// Returns false if targets is empty. Ties keep the first candidate.
func FindNearestCoordinate(from Coordinate, targets []Coordinate) (Coordinate, int, bool) {
	if len(targets) == 0 {
		return Coordinate{}, 0, false
	}

	nearest := targets[0]
	minDistance := from.DistanceTo(targets[0])

	for _, target := range targets[1:] {
		distance := from.DistanceTo(target)
		if distance < minDistance {
			minDistance = distance
			nearest = target
		}
	}

	return nearest, minDistance, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

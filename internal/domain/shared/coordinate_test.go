package shared_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

func TestCoordinate_DistanceIsChebyshev(t *testing.T) {
	a := shared.Coordinate{X: 2, Y: 3}

	assert.Equal(t, 0, a.DistanceTo(a))
	assert.Equal(t, 5, a.DistanceTo(shared.Coordinate{X: 7, Y: 1}))
	assert.Equal(t, 4, a.DistanceTo(shared.Coordinate{X: 6, Y: 7}))
}

func TestCoordinate_Neighbors(t *testing.T) {
	c := shared.Coordinate{X: 5, Y: 5}

	neighbors := c.Neighbors()

	require.Len(t, neighbors, 8)
	for _, n := range neighbors {
		assert.True(t, c.IsAdjacent(n), "%s should be adjacent to %s", n, c)
	}
}

func TestNewCoordinate_RejectsNegative(t *testing.T) {
	_, err := shared.NewCoordinate(-1, 4)

	var validationErr *shared.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "coordinate", validationErr.Field)
}

func TestFindNearestCoordinate(t *testing.T) {
	from := shared.Coordinate{X: 0, Y: 0}
	targets := []shared.Coordinate{{X: 9, Y: 9}, {X: 3, Y: 1}, {X: 1, Y: 3}}

	nearest, distance, ok := shared.FindNearestCoordinate(from, targets)

	require.True(t, ok)
	assert.Equal(t, shared.Coordinate{X: 3, Y: 1}, nearest)
	assert.Equal(t, 3, distance)

	_, _, ok = shared.FindNearestCoordinate(from, nil)
	assert.False(t, ok)
}

func TestPlanningConflictError_ListsFleets(t *testing.T) {
	err := shared.NewPlanningConflictError([]string{"Scout #1", "Scout #2"})

	assert.Contains(t, err.Error(), "Scout #1, Scout #2")
}

package starmap

import (
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// SolarSystem is a named square region around a sun.
// A cell belongs to the system when its Chebyshev distance to the center
// is at most the radius.
type SolarSystem struct {
	name   string
	center shared.Coordinate
	radius int
}

func NewSolarSystem(name string, center shared.Coordinate, radius int) (*SolarSystem, error) {
	if name == "" {
		return nil, shared.NewValidationError("solar_system.name", "cannot be empty")
	}
	if radius < 0 {
		return nil, shared.NewValidationError("solar_system.radius", "cannot be negative")
	}
	return &SolarSystem{name: name, center: center, radius: radius}, nil
}

func (s *SolarSystem) Name() string              { return s.name }
func (s *SolarSystem) Center() shared.Coordinate { return s.center }
func (s *SolarSystem) Radius() int               { return s.radius }

// Contains checks whether a coordinate lies inside the system
func (s *SolarSystem) Contains(c shared.Coordinate) bool {
	return s.center.DistanceTo(c) <= s.radius
}

func (s *SolarSystem) String() string {
	return fmt.Sprintf("SolarSystem(%s at %s, r=%d)", s.name, s.center, s.radius)
}

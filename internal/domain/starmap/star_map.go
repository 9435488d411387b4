package starmap

import (
	"fmt"

	"github.com/andrescamacho/realmfleet-go/internal/domain/navigation"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// FleetOwner is anything whose fleets are visible on the map (a realm)
type FleetOwner interface {
	Name() string
	Fleets() *navigation.FleetList
}

// FleetSighting is a fleet found on the map together with its owner's name
type FleetSighting struct {
	Fleet *navigation.Fleet
	Owner string
}

// StarMap aggregate - the shared grid every realm moves on
//
// Invariants:
// - Width and height are positive
// - Cells outside the map are blocked
// - Planet names are unique and every planet sits inside the map
//
// The map satisfies pathfinding.Grid, so it can be handed directly to
// path searches and movement.
type StarMap struct {
	width        int
	height       int
	tiles        []TileKind
	planets      []*Planet
	solarSystems []*SolarSystem
	owners       []FleetOwner
}

// NewStarMap creates an empty map
func NewStarMap(width, height int) (*StarMap, error) {
	if width <= 0 || height <= 0 {
		return nil, shared.NewValidationError("star_map.size", fmt.Sprintf("%dx%d must be positive", width, height))
	}
	tiles := make([]TileKind, width*height)
	for i := range tiles {
		tiles[i] = TileEmpty
	}
	return &StarMap{width: width, height: height, tiles: tiles}, nil
}

func (m *StarMap) Width() int  { return m.width }
func (m *StarMap) Height() int { return m.height }

// Contains checks whether a cell lies inside the map
func (m *StarMap) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Tile returns the kind of a cell; out-of-map cells read as BLACK_HOLE
func (m *StarMap) Tile(x, y int) TileKind {
	if !m.Contains(x, y) {
		return TileBlackHole
	}
	return m.tiles[y*m.width+x]
}

// SetTile changes a cell's kind
func (m *StarMap) SetTile(x, y int, kind TileKind) error {
	if !m.Contains(x, y) {
		return shared.NewValidationError("star_map.tile", fmt.Sprintf("(%d,%d) is outside the map", x, y))
	}
	m.tiles[y*m.width+x] = kind
	return nil
}

// IsBlocked reports whether a fleet may not enter the cell
func (m *StarMap) IsBlocked(x, y int) bool {
	return m.Tile(x, y).IsBlocked()
}

// NewVisibility creates an unscanned visibility record sized to this map
func (m *StarMap) NewVisibility() *Visibility {
	return NewVisibility(m.width, m.height)
}

// Registration

// AddPlanet places a planet on the map
func (m *StarMap) AddPlanet(p *Planet) error {
	c := p.Coordinate()
	if !m.Contains(c.X, c.Y) {
		return shared.NewValidationError("planet.coordinate", fmt.Sprintf("%s is outside the map", c))
	}
	if m.PlanetByName(p.Name()) != nil {
		return shared.NewValidationError("planet.name", fmt.Sprintf("duplicate planet %q", p.Name()))
	}
	if m.PlanetAt(c.X, c.Y) != nil {
		return shared.NewValidationError("planet.coordinate", fmt.Sprintf("%s already holds a planet", c))
	}
	m.planets = append(m.planets, p)
	return nil
}

// AddSolarSystem registers a solar system and marks its center as a sun
func (m *StarMap) AddSolarSystem(s *SolarSystem) error {
	c := s.Center()
	if !m.Contains(c.X, c.Y) {
		return shared.NewValidationError("solar_system.center", fmt.Sprintf("%s is outside the map", c))
	}
	if m.SolarSystemByName(s.Name()) != nil {
		return shared.NewValidationError("solar_system.name", fmt.Sprintf("duplicate solar system %q", s.Name()))
	}
	m.solarSystems = append(m.solarSystems, s)
	return m.SetTile(c.X, c.Y, TileSun)
}

// RegisterFleetOwner makes an owner's fleets visible to fleet queries
func (m *StarMap) RegisterFleetOwner(owner FleetOwner) {
	m.owners = append(m.owners, owner)
}

func (m *StarMap) Planets() []*Planet {
	planets := make([]*Planet, len(m.planets))
	copy(planets, m.planets)
	return planets
}

func (m *StarMap) SolarSystems() []*SolarSystem {
	systems := make([]*SolarSystem, len(m.solarSystems))
	copy(systems, m.solarSystems)
	return systems
}

// Planet queries

// PlanetAt returns the planet on a cell, nil if none
func (m *StarMap) PlanetAt(x, y int) *Planet {
	for _, p := range m.planets {
		if p.Coordinate().X == x && p.Coordinate().Y == y {
			return p
		}
	}
	return nil
}

// PlanetByName resolves a planet name, nil if unknown or empty
func (m *StarMap) PlanetByName(name string) *Planet {
	if name == "" {
		return nil
	}
	for _, p := range m.planets {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// NearestHostilePlanet finds the closest planet owned by a realm other than
// the given one. A radius of 0 searches the whole map.
func (m *StarMap) NearestHostilePlanet(from shared.Coordinate, realm string, radius int) *Planet {
	var nearest *Planet
	best := 0
	for _, p := range m.planets {
		if !p.IsColonized() || p.Owner() == realm {
			continue
		}
		d := from.DistanceTo(p.Coordinate())
		if radius > 0 && d > radius {
			continue
		}
		if nearest == nil || d < best {
			nearest = p
			best = d
		}
	}
	return nearest
}

// Fleet queries

// FleetAt returns the first fleet on the cell in owner registration order
func (m *StarMap) FleetAt(x, y int) (FleetSighting, bool) {
	c := shared.Coordinate{X: x, Y: y}
	for _, owner := range m.owners {
		if fleets := owner.Fleets().At(c); len(fleets) > 0 {
			return FleetSighting{Fleet: fleets[0], Owner: owner.Name()}, true
		}
	}
	return FleetSighting{}, false
}

// FleetByName resolves a fleet of a registered owner
func (m *StarMap) FleetByName(ownerName, fleetName string) (*navigation.Fleet, bool) {
	for _, owner := range m.owners {
		if owner.Name() != ownerName {
			continue
		}
		if f := owner.Fleets().ByName(fleetName); f != nil {
			return f, true
		}
	}
	return nil, false
}

// FleetsNear lists every fleet within radius of a coordinate
func (m *StarMap) FleetsNear(from shared.Coordinate, radius int) []FleetSighting {
	var result []FleetSighting
	for _, owner := range m.owners {
		for _, f := range owner.Fleets().All() {
			if from.DistanceTo(f.Coordinate()) <= radius {
				result = append(result, FleetSighting{Fleet: f, Owner: owner.Name()})
			}
		}
	}
	return result
}

// Solar system queries

// SolarSystemByName resolves a solar system name, nil if unknown
func (m *StarMap) SolarSystemByName(name string) *SolarSystem {
	if name == "" {
		return nil
	}
	for _, s := range m.solarSystems {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// SolarSystemAt returns the first system containing the coordinate
func (m *StarMap) SolarSystemAt(c shared.Coordinate) *SolarSystem {
	for _, s := range m.solarSystems {
		if s.Contains(c) {
			return s
		}
	}
	return nil
}

// IsSolarSystemScanned checks whether every enterable cell of the system was scanned
func (m *StarMap) IsSolarSystemScanned(vis *Visibility, sun *SolarSystem) bool {
	_, found := m.NearestUnscannedSector(vis, sun.Center(), sun)
	return !found
}

// NearestSolarSystem finds the system whose center is closest to (x,y),
// skipping the excluded name. When vis is given, fully scanned systems are
// skipped too. Returns nil when nothing qualifies.
func (m *StarMap) NearestSolarSystem(x, y int, vis *Visibility, exclude string) *SolarSystem {
	from := shared.Coordinate{X: x, Y: y}
	var nearest *SolarSystem
	best := 0
	for _, s := range m.solarSystems {
		if s.Name() == exclude {
			continue
		}
		if vis != nil && m.IsSolarSystemScanned(vis, s) {
			continue
		}
		d := from.DistanceTo(s.Center())
		if nearest == nil || d < best {
			nearest = s
			best = d
		}
	}
	return nearest
}

// NearestOpenCell returns the enterable cell of a system closest to from
func (m *StarMap) NearestOpenCell(from shared.Coordinate, sun *SolarSystem) (shared.Coordinate, bool) {
	return m.NearestUnscannedSector(nil, from, sun)
}

// NearestUnscannedSector finds the closest enterable unscanned cell.
// With a sun the search is limited to that system, otherwise it covers the map.
// A nil visibility treats every cell as unscanned.
// Ties resolve in row-major order.
func (m *StarMap) NearestUnscannedSector(vis *Visibility, from shared.Coordinate, sun *SolarSystem) (shared.Coordinate, bool) {
	minX, minY, maxX, maxY := 0, 0, m.width-1, m.height-1
	if sun != nil {
		c := sun.Center()
		minX, minY = max(minX, c.X-sun.Radius()), max(minY, c.Y-sun.Radius())
		maxX, maxY = min(maxX, c.X+sun.Radius()), min(maxY, c.Y+sun.Radius())
	}

	var nearest shared.Coordinate
	best := -1
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if m.IsBlocked(x, y) || vis.IsScanned(x, y) {
				continue
			}
			cell := shared.Coordinate{X: x, Y: y}
			if d := from.DistanceTo(cell); best < 0 || d < best {
				nearest = cell
				best = d
			}
		}
	}
	return nearest, best >= 0
}

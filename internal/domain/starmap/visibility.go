package starmap

import "github.com/andrescamacho/realmfleet-go/internal/domain/shared"

// Visibility is one realm's record of scanned cells
type Visibility struct {
	width   int
	height  int
	scanned []bool
}

// NewVisibility creates a fully unscanned record sized to a map
func NewVisibility(width, height int) *Visibility {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Visibility{width: width, height: height, scanned: make([]bool, width*height)}
}

// Scan marks every cell within radius of center, clipped to the map
func (v *Visibility) Scan(center shared.Coordinate, radius int) {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if v.inBounds(x, y) {
				v.scanned[y*v.width+x] = true
			}
		}
	}
}

// IsScanned is false for cells outside the map and for a nil record
func (v *Visibility) IsScanned(x, y int) bool {
	return v != nil && v.inBounds(x, y) && v.scanned[y*v.width+x]
}

// ScannedCount returns the number of scanned cells
func (v *Visibility) ScannedCount() int {
	n := 0
	for _, s := range v.scanned {
		if s {
			n++
		}
	}
	return n
}

func (v *Visibility) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height
}

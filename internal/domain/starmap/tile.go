package starmap

import "fmt"

// TileKind classifies a star map cell
type TileKind string

const (
	TileEmpty          TileKind = "EMPTY"
	TileSun            TileKind = "SUN"
	TileBlackHole      TileKind = "BLACK_HOLE"
	TileNebula         TileKind = "NEBULA"
	TileStarbaseAnchor TileKind = "STARBASE_ANCHOR"
)

// IsBlocked reports whether fleets cannot enter a tile of this kind
func (k TileKind) IsBlocked() bool {
	return k == TileSun || k == TileBlackHole
}

func (k TileKind) String() string {
	return string(k)
}

// ParseTileKind converts scenario text into a TileKind
func ParseTileKind(s string) (TileKind, error) {
	switch k := TileKind(s); k {
	case TileEmpty, TileSun, TileBlackHole, TileNebula, TileStarbaseAnchor:
		return k, nil
	case "":
		return TileEmpty, nil
	default:
		return "", fmt.Errorf("unknown tile kind %q", s)
	}
}

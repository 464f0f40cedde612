// Package tile defines the Qwirkle tile: a (shape, color) pair, the dense
// index used by hot-path duplicate checks, and the 108-tile multiset that
// seeds a fresh bag.
package tile

import "fmt"

// Shape is one of the six Qwirkle shapes. Backed by uint8 so a Tile stays
// two bytes and copies cheaply by value.
type Shape uint8

const (
	Circle Shape = iota
	Square
	Diamond
	Clover
	Star
	Starburst
)

// NumShapes is the number of distinct shapes.
const NumShapes = 6

func (s Shape) String() string {
	switch s {
	case Circle:
		return "Circle"
	case Square:
		return "Square"
	case Diamond:
		return "Diamond"
	case Clover:
		return "Clover"
	case Star:
		return "Star"
	case Starburst:
		return "Starburst"
	default:
		return "Unknown"
	}
}

// Color is one of the six Qwirkle colors.
type Color uint8

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Purple
)

// NumColors is the number of distinct colors.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Orange:
		return "Orange"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Purple:
		return "Purple"
	default:
		return "Unknown"
	}
}

// NumUnique is the number of distinct (shape, color) tiles: 6*6.
const NumUnique = NumShapes * NumColors

// CopiesPerTile is how many copies of each unique tile a full bag holds.
const CopiesPerTile = 3

// TotalTiles is the size of a full Qwirkle bag.
const TotalTiles = NumUnique * CopiesPerTile

// Tile is a value type: two small enums, never aliased across entities.
// Callers pass Tile by value throughout this module.
type Tile struct {
	Shape Shape
	Color Color
}

// Equal reports whether two tiles have the same shape and color.
func (t Tile) Equal(other Tile) bool {
	return t.Shape == other.Shape && t.Color == other.Color
}

// String renders a tile as "Color Shape", e.g. "Red Circle".
func (t Tile) String() string {
	return t.Color.String() + " " + t.Shape.String()
}

// Index returns a dense index in [0, NumUnique) for this tile, used to key
// fixed-size arrays instead of maps in hot paths.
func (t Tile) Index() int {
	return int(t.Shape)*NumColors + int(t.Color)
}

// FromIndex is the inverse of Index.
func FromIndex(idx int) Tile {
	return Tile{Shape: Shape(idx / NumColors), Color: Color(idx % NumColors)}
}

// AllTiles returns the 108 tiles of a full Qwirkle set: three copies of
// each of the 36 (shape, color) pairs.
func AllTiles() []Tile {
	tiles := make([]Tile, 0, TotalTiles)
	for n := 0; n < CopiesPerTile; n++ {
		for s := Shape(0); s < NumShapes; s++ {
			for c := Color(0); c < NumColors; c++ {
				tiles = append(tiles, Tile{Shape: s, Color: c})
			}
		}
	}
	return tiles
}

// GoString supports "%#v" for debug dumps in test failures.
func (t Tile) GoString() string {
	return fmt.Sprintf("Tile{Shape:%d,Color:%d}", t.Shape, t.Color)
}

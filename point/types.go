package point

import (
	"errors"
	"fmt"
)

// ErrZeroVector indicates an operation that is undefined for the (0,0) vector.
var ErrZeroVector = errors.New("point: operation undefined for the zero vector")

// Point is a 2D integer coordinate or displacement. The zero value is the origin.
// Points are comparable and may be used directly as map keys.
type Point struct {
	X, Y int
}

// Unit directions in screen coordinates (y grows downward).
var (
	Zero      = Point{0, 0}
	North     = Point{0, -1}
	South     = Point{0, 1}
	East      = Point{1, 0}
	West      = Point{-1, 0}
	NorthEast = Point{1, -1}
	NorthWest = Point{-1, -1}
	SouthEast = Point{1, 1}
	SouthWest = Point{-1, 1}
)

// Cardinals lists the four orthogonal unit directions in the order used by
// CardinalNeighbors: N, E, W, S.
var Cardinals = [4]Point{North, East, West, South}

// Compass lists all eight unit directions in the order used by Neighbors:
// N, E, W, S, NE, NW, SE, SW.
var Compass = [8]Point{North, East, West, South, NorthEast, NorthWest, SouthEast, SouthWest}

// New returns the point (x, y).
func New(x, y int) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

package hex

import (
	"fmt"
	"math"
)

// Point is a position in screen space. Y grows downward.
type Point struct {
	X, Y float64
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// ToScreen returns the center of hex a for hexes with the given edge
// length, with the board's top-left corner at the origin. Hex 0101 is
// centered at (edge, edge*sqrt(3)/2).
func ToScreen(a Address, edge float64) Point {
	height := edge * math.Sqrt(3)
	return Point{
		X: 1.5*edge*float64(a.col) + edge,
		Y: height*(float64(a.row)+0.5*float64(a.col&1)) + 0.5*height,
	}
}

// FromScreen returns the hex containing p, the inverse of ToScreen. Points
// in the margins around the board fail with ErrOutOfBounds.
func FromScreen(p Point, edge float64) (Address, error) {
	if !(edge > 0) || math.IsInf(edge, 0) {
		return Address{}, fmt.Errorf("%w: edge length %v", ErrOutOfBounds, edge)
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return Address{}, fmt.Errorf("%w: point (%v, %v)", ErrOutOfBounds, p.X, p.Y)
	}

	height := edge * math.Sqrt(3)
	bandWidth := 1.5 * edge

	// Keep the float to int conversions below well inside int range.
	band := math.Floor(p.X / bandWidth)
	if band < -1 || band > Cols || p.Y < -height || p.Y > height*(Rows+1) {
		return Address{}, fmt.Errorf("%w: point (%.1f, %.1f)", ErrOutOfBounds, p.X, p.Y)
	}

	// Each column band is 1.5 edges wide and holds the body of one column
	// of hexes plus the pointed right tips of the column to its left.
	ci := int(band)
	localX := p.X - band*bandWidth

	stagger := 0.5 * height * float64(ci&1)
	cj := int(math.Floor((p.Y - stagger) / height))
	localY := p.Y - stagger - float64(cj)*height

	if localX > math.Abs(edge/2-edge*localY/height) {
		return New(ci, cj)
	}

	// Left of the slanted edges: the upper-left or lower-left neighbor.
	upper := 0
	if localY < height/2 {
		upper = 1
	}
	return New(ci-1, cj+(ci&1)-upper)
}

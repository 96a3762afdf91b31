package hex

import "math"

// Layout fits the board into a viewport of a given height, placing the
// board's top-left corner at Origin.
type Layout struct {
	Origin    Point
	Edge      float64 // hex edge length, also the center-to-corner radius
	HexHeight float64 // flat side to flat side
	Width     float64 // width of the whole board
	Height    float64 // height of the whole board
}

// NewLayout sizes hexes so that all rows, plus the half hex that odd
// columns hang below the even ones, fill height exactly.
func NewLayout(origin Point, height float64) Layout {
	hexHeight := height / (Rows + 0.5)
	edge := hexHeight / math.Sqrt(3)
	return Layout{
		Origin:    origin,
		Edge:      edge,
		HexHeight: hexHeight,
		Width:     1.5*edge*Cols + 0.5*edge,
		Height:    height,
	}
}

// LayoutForEdge returns the layout for a fixed edge length.
func LayoutForEdge(origin Point, edge float64) Layout {
	hexHeight := edge * math.Sqrt(3)
	return Layout{
		Origin:    origin,
		Edge:      edge,
		HexHeight: hexHeight,
		Width:     1.5*edge*Cols + 0.5*edge,
		Height:    hexHeight * (Rows + 0.5),
	}
}

// Center returns the screen position of the center of a.
func (l Layout) Center(a Address) Point {
	return ToScreen(a, l.Edge).Add(l.Origin)
}

// Locate returns the hex under screen point p.
func (l Layout) Locate(p Point) (Address, error) {
	return FromScreen(p.Sub(l.Origin), l.Edge)
}

// Corners returns the six vertices of a, starting at the right-hand corner
// and going clockwise on screen.
func (l Layout) Corners(a Address) [6]Point {
	c := l.Center(a)
	var pts [6]Point
	for i := range pts {
		rad := math.Pi / 3 * float64(i)
		pts[i] = Point{
			X: c.X + l.Edge*math.Cos(rad),
			Y: c.Y + l.Edge*math.Sin(rad),
		}
	}
	return pts
}

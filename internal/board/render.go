package board

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hexfleet/internal/hex"
)

// Marker is a ship (or anything with a facing) drawn at a hex center.
type Marker struct {
	Hex    hex.Address
	Facing hex.Facing
	Glyph  rune
	Color  Color
}

// View describes what to draw.
type View struct {
	Edge       float64 // hex edge length in board units (one unit = one column)
	Camera     Camera
	Cursor     hex.Address
	ShowCursor bool
	Markers    []Marker
	Path       []hex.Address
}

// labelEdge is the smallest edge length at which labels fit inside a hex.
const labelEdge = 4.0

var facingArrows = [6]rune{'↑', '↗', '↘', '↓', '↙', '↖'}

// Arrow returns the arrow glyph for a facing.
func Arrow(f hex.Facing) rune {
	if !f.Valid() {
		return '?'
	}
	return facingArrows[f]
}

// slot is the hex under one character cell; ok is false off the board.
type slot struct {
	addr hex.Address
	ok   bool
}

func (s slot) same(o slot) bool {
	return s.ok == o.ok && (!s.ok || s.addr == o.addr)
}

// cellPoint returns the board-space point at the middle of character cell (x, y).
func cellPoint(x, y int) hex.Point {
	return hex.Point{X: float64(x) + 0.5, Y: (float64(y) + 0.5) * Aspect}
}

// HexAt returns the hex under character cell (x, y) of a viewport.
func HexAt(cam Camera, edge float64, x, y int) (hex.Address, error) {
	return cam.Layout(edge).Locate(cellPoint(x, y))
}

// CellOf returns the character cell holding the center of hex a.
func CellOf(cam Camera, edge float64, a hex.Address) (x, y int) {
	c := cam.Layout(edge).Center(a)
	return int(math.Floor(c.X)), int(math.Floor(c.Y / Aspect))
}

// Render draws the map into c. Every cell is resolved to a hex; borders go
// where neighboring cells resolve to different hexes.
func Render(c *Canvas, v View) error {
	if !(v.Edge > 0) || math.IsInf(v.Edge, 0) {
		return fmt.Errorf("board: invalid edge length %v", v.Edge)
	}

	c.Clear()
	w, h := c.Width(), c.Height()
	layout := v.Camera.Layout(v.Edge)

	// One extra column and row so every cell has a right and lower neighbor.
	grid := make([][]slot, h+1)
	for y := range grid {
		grid[y] = make([]slot, w+1)
		for x := range grid[y] {
			if a, err := layout.Locate(cellPoint(x, y)); err == nil {
				grid[y][x] = slot{addr: a, ok: true}
			}
		}
	}

	isCursor := func(s slot) bool {
		return v.ShowCursor && s.ok && s.addr == v.Cursor
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			here, right, down := grid[y][x], grid[y][x+1], grid[y+1][x]

			color := ColorGrid
			switch {
			case !here.same(right):
				if isCursor(here) || isCursor(right) {
					color = ColorCursor
				}
				c.Set(x, y, slantRune(layout, cellPoint(x, y), here, right), color)
			case !here.same(down):
				if isCursor(here) || isCursor(down) {
					color = ColorCursor
				}
				c.Set(x, y, '_', color)
			}
		}
	}

	for _, a := range v.Path {
		x, y := CellOf(v.Camera, v.Edge, a)
		c.Set(x, y, '·', ColorPath)
	}

	if v.Edge >= labelEdge {
		drawLabels(c, v)
	}

	for _, m := range v.Markers {
		x, y := CellOf(v.Camera, v.Edge, m.Hex)
		c.Set(x-1, y, m.Glyph, m.Color)
		c.Set(x, y, Arrow(m.Facing), m.Color)
	}

	if v.ShowCursor {
		x, y := CellOf(v.Camera, v.Edge, v.Cursor)
		if v.Edge >= 3 {
			c.Set(x-2, y, '[', ColorCursor)
			c.Set(x+1, y, ']', ColorCursor)
		} else {
			c.Tint(x, y, ColorCursor)
		}
	}

	return nil
}

// drawLabels writes each visible hex's label on the row above its center.
func drawLabels(c *Canvas, v View) {
	for col := 0; col < hex.Cols; col++ {
		for row := 0; row < hex.Rows; row++ {
			a, _ := hex.New(col, row)
			x, y := CellOf(v.Camera, v.Edge, a)
			if x < -2 || x > c.Width()+2 || y < 0 || y > c.Height() {
				continue
			}
			color := ColorLabel
			if v.ShowCursor && a == v.Cursor {
				color = ColorCursor
			}
			c.DrawText(x-2, y-1, a.Label(), color)
		}
	}
}

// slantRune picks the border character between a cell and its right-hand
// neighbor. Right of a hex center the upper edge runs down to the tip
// ('\') and the lower edge runs up ('/'); left of a center it is mirrored.
func slantRune(l hex.Layout, p hex.Point, left, right slot) rune {
	if left.ok {
		if p.Y < l.Center(left.addr).Y {
			return '\\'
		}
		return '/'
	}
	if p.Y < l.Center(right.addr).Y {
		return '/'
	}
	return '\\'
}

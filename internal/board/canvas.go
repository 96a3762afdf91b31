// Package board draws the hex map into a character grid. It knows nothing
// about Bubble Tea; the TUI turns a Canvas into styled terminal output.
package board

import (
	"strings"
)

// Color represents a foreground color for a canvas cell.
type Color uint8

// Colors used on the map.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorLabel
	ColorCursor
	ColorSelected
	ColorFriendly
	ColorHostile
	ColorPath
)

// Cell is one character of the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Canvas is a 2D character buffer with a color per cell.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a blank canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions and clears it.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		c.Clear()
		return
	}
	c.width = width
	c.height = height
	c.allocate()
	c.Clear()
}

// Clear fills the entire canvas with blanks.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Tint recolors a cell without changing its rune.
func (c *Canvas) Tint(x, y int, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x].Color = color
}

// Get returns the rune at the given position, or space when out of bounds.
func (c *Canvas) Get(x, y int) rune {
	return c.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (c *Canvas) GetCell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the canvas.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// String converts the canvas to plain text, rows joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

package board

import "github.com/vovakirdan/hexfleet/internal/hex"

// Aspect is how many board units one terminal row covers. Character cells
// are roughly twice as tall as they are wide.
const Aspect = 2.0

// margin is how far past the board edge the camera may scroll, in board units.
const margin = 4.0

// Camera is the board-space position of the viewport's top-left corner.
type Camera struct {
	X, Y float64
}

// Layout returns the hex layout that puts the camera at the viewport origin.
func (c Camera) Layout(edge float64) hex.Layout {
	return hex.LayoutForEdge(hex.Point{X: -c.X, Y: -c.Y}, edge)
}

// Pan moves the camera by whole character cells and clamps it to the board.
func (c Camera) Pan(dx, dy int, edge float64, viewW, viewH int) Camera {
	c.X += float64(dx)
	c.Y += float64(dy) * Aspect
	return c.Clamp(edge, viewW, viewH)
}

// CenterOn returns a camera with hex a in the middle of the viewport.
func (c Camera) CenterOn(a hex.Address, edge float64, viewW, viewH int) Camera {
	p := hex.ToScreen(a, edge)
	c.X = p.X - float64(viewW)/2
	c.Y = p.Y - float64(viewH)*Aspect/2
	return c.Clamp(edge, viewW, viewH)
}

// Follow scrolls just enough to keep hex a inside the viewport.
func (c Camera) Follow(a hex.Address, edge float64, viewW, viewH int) Camera {
	p := hex.ToScreen(a, edge)
	w, h := float64(viewW), float64(viewH)*Aspect

	if p.X-edge < c.X {
		c.X = p.X - edge
	} else if p.X+edge > c.X+w {
		c.X = p.X + edge - w
	}
	half := edge * 0.9
	if p.Y-half < c.Y {
		c.Y = p.Y - half
	} else if p.Y+half > c.Y+h {
		c.Y = p.Y + half - h
	}
	return c.Clamp(edge, viewW, viewH)
}

// Clamp keeps the viewport over the board. A board smaller than the
// viewport is pinned to the top-left margin.
func (c Camera) Clamp(edge float64, viewW, viewH int) Camera {
	l := hex.LayoutForEdge(hex.Point{}, edge)
	maxX := l.Width + margin - float64(viewW)
	maxY := l.Height + margin - float64(viewH)*Aspect

	c.X = clampF(c.X, -margin, maxX)
	c.Y = clampF(c.Y, -margin, maxY)
	return c
}

func clampF(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

package board

import (
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(80, 24)

	if c.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", c.Width())
	}
	if c.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", c.Height())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if cell := c.GetCell(x, y); cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("New canvas should be blank, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}

	if neg := NewCanvas(-1, -5); neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative dimensions should clamp to zero, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 5, 'X', ColorHostile)
	if cell := c.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorHostile {
		t.Errorf("GetCell(5, 5) = %+v, expected X/hostile", cell)
	}

	c.Tint(5, 5, ColorCursor)
	if cell := c.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorCursor {
		t.Errorf("Tint should keep the rune, got %+v", cell)
	}

	// Out of bounds should be silent
	c.Set(-1, 0, 'A', ColorDefault)
	c.Set(100, 0, 'A', ColorDefault)
	c.Tint(0, -1, ColorCursor)

	if c.Get(-1, 0) != ' ' || c.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(8, 2)

	c.DrawText(6, 0, "0730", ColorLabel)
	if got := c.Row(0); got != "      07" {
		t.Errorf("Row(0) = %q, expected clipped label", got)
	}

	c.DrawText(0, 1, "↑→", ColorFriendly)
	if c.Get(0, 1) != '↑' || c.Get(1, 1) != '→' {
		t.Errorf("multi-byte runes should take one cell each, got %q", c.Row(1))
	}
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(1, 1, '#', ColorGrid)

	c.Resize(6, 3)
	if c.Width() != 6 || c.Height() != 3 {
		t.Fatalf("Resize() gave %dx%d, expected 6x3", c.Width(), c.Height())
	}
	if c.Get(1, 1) != ' ' {
		t.Error("Resize should clear the canvas")
	}

	c.Set(0, 0, '#', ColorGrid)
	c.Resize(6, 3)
	if c.Get(0, 0) != ' ' {
		t.Error("Resize to the same size should still clear")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawText(0, 0, "abc", ColorDefault)
	c.DrawText(0, 1, "de", ColorDefault)

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 || lines[0] != "abc" || lines[1] != "de " {
		t.Errorf("String() = %q", c.String())
	}
	if c.Row(5) != "   " {
		t.Errorf("Row out of range should be blank, got %q", c.Row(5))
	}
}

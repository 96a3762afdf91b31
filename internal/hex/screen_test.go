package hex

import (
	"errors"
	"math"
	"testing"
)

func TestToScreen(t *testing.T) {
	const edge = 60.0
	height := edge * math.Sqrt(3)

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, 60, height / 2},
		{1, 0, 150, height},
		{2, 0, 240, height / 2},
		{0, 1, 60, height * 1.5},
	}

	for _, tc := range tests {
		p := ToScreen(mustNew(t, tc.col, tc.row), edge)
		if math.Abs(p.X-tc.x) > 1e-9 || math.Abs(p.Y-tc.y) > 1e-9 {
			t.Errorf("ToScreen(%d, %d) = (%f, %f), expected (%f, %f)", tc.col, tc.row, p.X, p.Y, tc.x, tc.y)
		}
	}
}

func TestFromScreenScenarios(t *testing.T) {
	if a, err := FromScreen(Point{0, 0}, 60); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("FromScreen(0, 0) = %v, %v; expected ErrOutOfBounds", a, err)
	}

	a, err := FromScreen(Point{30, 30}, 60)
	if err != nil {
		t.Fatalf("FromScreen(30, 30) failed: %v", err)
	}
	if a != mustNew(t, 0, 0) {
		t.Errorf("FromScreen(30, 30) = %v, expected 0101", a)
	}
}

func TestScreenRoundTrip(t *testing.T) {
	for _, edge := range []float64{60, 7.5, 15.13, 1} {
		for _, a := range allAddresses() {
			got, err := FromScreen(ToScreen(a, edge), edge)
			if err != nil {
				t.Fatalf("edge %v: FromScreen(ToScreen(%v)) failed: %v", edge, a, err)
			}
			if got != a {
				t.Fatalf("edge %v: FromScreen(ToScreen(%v)) = %v", edge, a, got)
			}
		}
	}
}

func TestFromScreenNearCorners(t *testing.T) {
	layout := LayoutForEdge(Point{}, 20)
	for _, a := range allAddresses() {
		c := layout.Center(a)
		for _, corner := range layout.Corners(a) {
			// Just inside the hex, toward each corner.
			p := Point{X: c.X + 0.95*(corner.X-c.X), Y: c.Y + 0.95*(corner.Y-c.Y)}
			got, err := FromScreen(p, layout.Edge)
			if err != nil || got != a {
				t.Fatalf("FromScreen near corner of %v = %v, %v", a, got, err)
			}
		}
	}
}

func TestFromScreenOffBoard(t *testing.T) {
	const edge = 60.0
	height := edge * math.Sqrt(3)

	points := []Point{
		{-10, 100},
		{100, -10},
		{1.5*edge*Cols + edge, 100},
		{100, height*Rows + height},
		{math.NaN(), 10},
		{10, math.Inf(1)},
		{1e300, 1e300},
		{-1e300, 5},
		// Top-left margin of an odd column.
		{1.5*edge + edge/2, 5},
	}

	for _, p := range points {
		if a, err := FromScreen(p, edge); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("FromScreen(%v, %v) = %v, %v; expected ErrOutOfBounds", p.X, p.Y, a, err)
		}
	}
}

func TestFromScreenBadEdge(t *testing.T) {
	for _, edge := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		if _, err := FromScreen(Point{30, 30}, edge); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("FromScreen with edge %v: error = %v, expected ErrOutOfBounds", edge, err)
		}
	}
}

func TestFromScreenDiagonal(t *testing.T) {
	const edge = 60.0
	height := edge * math.Sqrt(3)

	// The right-hand tip of 0101 reaches into column band 1.
	p := Point{X: 1.5*edge + 5, Y: height / 2}
	a, err := FromScreen(p, edge)
	if err != nil || a != mustNew(t, 0, 0) {
		t.Errorf("FromScreen right tip of 0101 = %v, %v", a, err)
	}

	// The right-hand tip of 0201 reaches into column band 2.
	p = Point{X: 3*edge + 5, Y: height}
	a, err = FromScreen(p, edge)
	if err != nil || a != mustNew(t, 1, 0) {
		t.Errorf("FromScreen right tip of 0201 = %v, %v", a, err)
	}
}

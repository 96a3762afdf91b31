package hex

import "math"

// cube is the three-axis form of an address with x+y+z == 0. It only
// exists to make distance and line drawing simple integer arithmetic.
type cube struct {
	x, y, z int
}

// toCube converts odd-q offset coordinates to cube coordinates. The
// (col - col&1)/2 term must agree with the parity of the directions table.
func toCube(a Address) cube {
	x := a.col
	z := a.row - (a.col-(a.col&1))/2
	return cube{x: x, y: -x - z, z: z}
}

// toOffset is the inverse of toCube. The result is not range checked.
func (c cube) toOffset() (col, row int) {
	return c.x, c.z + (c.x-(c.x&1))/2
}

// Distance returns the number of hex steps between a and b.
func Distance(a, b Address) int {
	ca, cb := toCube(a), toCube(b)
	return (abs(ca.x-cb.x) + abs(ca.y-cb.y) + abs(ca.z-cb.z)) / 2
}

// Line returns the hexes crossed by a straight line from the center of a
// to the center of b, both ends included. Hexes the line clips outside the
// board (possible along the jagged top and bottom edges) are left out.
func Line(a, b Address) []Address {
	n := Distance(a, b)
	if n == 0 {
		return []Address{a}
	}

	ca, cb := toCube(a), toCube(b)
	// Nudge off exact hex edges so ties always round the same way.
	ax := float64(ca.x) + 1e-6
	ay := float64(ca.y) + 2e-6
	az := float64(ca.z) - 3e-6

	result := make([]Address, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c := cubeRound(
			lerp(ax, float64(cb.x), t),
			lerp(ay, float64(cb.y), t),
			lerp(az, float64(cb.z), t),
		)
		col, row := c.toOffset()
		if h, err := New(col, row); err == nil {
			result = append(result, h)
		}
	}
	return result
}

// Within returns every hex at most n steps from a, including a itself,
// ordered by column and then row.
func Within(a Address, n int) []Address {
	if n < 0 {
		return nil
	}
	var result []Address
	for col := max(0, a.col-n); col <= min(Cols-1, a.col+n); col++ {
		for row := max(0, a.row-n); row <= min(Rows-1, a.row+n); row++ {
			h := Address{col: col, row: row}
			if Distance(a, h) <= n {
				result = append(result, h)
			}
		}
	}
	return result
}

func cubeRound(fx, fy, fz float64) cube {
	rx, ry, rz := math.Round(fx), math.Round(fy), math.Round(fz)
	dx, dy, dz := math.Abs(rx-fx), math.Abs(ry-fy), math.Abs(rz-fz)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return cube{x: int(rx), y: int(ry), z: int(rz)}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

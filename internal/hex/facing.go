package hex

import (
	"fmt"
	"math"
	"strings"
)

// Facing is one of the six hex sides, lettered clockwise from straight up
// as printed on the map:
//
//	  A
//	F   B
//	E   C
//	  D
//
// The ordinal is used as a table index and must not be reordered.
type Facing uint8

const (
	FacingA Facing = 0
	FacingB Facing = 1
	FacingC Facing = 2
	FacingD Facing = 3
	FacingE Facing = 4
	FacingF Facing = 5

	numFacings = 6
)

// Facings returns all facings in clockwise order starting at A.
func Facings() []Facing {
	return []Facing{FacingA, FacingB, FacingC, FacingD, FacingE, FacingF}
}

// Valid reports whether f is one of A..F.
func (f Facing) Valid() bool {
	return f < numFacings
}

// String returns the facing letter.
func (f Facing) String() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune('A' + f))
}

// TurnRight returns the next facing clockwise.
func (f Facing) TurnRight() Facing {
	return (f + 1) % numFacings
}

// TurnLeft returns the next facing counter-clockwise.
func (f Facing) TurnLeft() Facing {
	return (f + numFacings - 1) % numFacings
}

// Opposite returns the facing pointing the other way.
func (f Facing) Opposite() Facing {
	return (f + 3) % numFacings
}

// Rotation returns the clockwise rotation from straight up, in radians.
func (f Facing) Rotation() float64 {
	return float64(f%numFacings) * math.Pi / 3
}

// ParseFacing parses a facing letter, case-insensitively.
func ParseFacing(s string) (Facing, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if len(t) != 1 || t[0] < 'A' || t[0] > 'F' {
		return 0, fmt.Errorf("hex: unknown facing %q", s)
	}
	return Facing(t[0] - 'A'), nil
}

type offset struct {
	dc, dr int
}

// directions holds the neighbor offsets, indexed by column parity and then
// facing. Odd columns sit half a hex lower, so their diagonal neighbors are
// one row further down than an even column's.
var directions = [2][numFacings]offset{
	{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}},
	{{0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}},
}

// Neighbor returns the hex adjacent to a across side f. It fails with
// ErrOutOfBounds when that hex is off the board.
func Neighbor(a Address, f Facing) (Address, error) {
	if !f.Valid() {
		return Address{}, fmt.Errorf("%w: facing %d", ErrOutOfBounds, f)
	}
	d := directions[a.col&1][f]
	return New(a.col+d.dc, a.row+d.dr)
}

// Neighbors returns the on-board neighbors of a in facing order.
func Neighbors(a Address) []Address {
	result := make([]Address, 0, numFacings)
	for _, f := range Facings() {
		if n, err := Neighbor(a, f); err == nil {
			result = append(result, n)
		}
	}
	return result
}

package hex

import "math"

// Bearing is the direction of one hex as seen from another: either one of
// the six 60-degree sectors centered on a facing, or the exact boundary
// between two adjacent sectors. Values run clockwise from sector A.
type Bearing uint8

const (
	BearingA Bearing = iota
	BearingAB
	BearingB
	BearingBC
	BearingC
	BearingCD
	BearingD
	BearingDE
	BearingE
	BearingEF
	BearingF
	BearingFA

	numBearings = 12
)

var bearingNames = [numBearings]string{
	"A", "A/B", "B", "B/C", "C", "C/D", "D", "D/E", "E", "E/F", "F", "F/A",
}

// String returns the sector letter, or both letters for a tie.
func (b Bearing) String() string {
	if b >= numBearings {
		return "?"
	}
	return bearingNames[b]
}

// IsTie reports whether b lies exactly on a sector boundary.
func (b Bearing) IsTie() bool {
	return b%2 == 1
}

// Facings returns the facing of a sector, or the two facings either side
// of a tie in clockwise order.
func (b Bearing) Facings() []Facing {
	if b.IsTie() {
		left := Facing(b / 2)
		return []Facing{left, left.TurnRight()}
	}
	return []Facing{Facing(b / 2)}
}

// Relative rotates an absolute bearing into the frame of something facing
// f, so that a relative BearingA is dead ahead.
func (b Bearing) Relative(f Facing) Bearing {
	return Bearing((int(b) - 2*int(f%numFacings) + 2*numBearings) % numBearings)
}

// Angle returns the counter-clockwise angle from a to b in whole degrees,
// 0 meaning due right on the map. It is measured between hex centers and
// rounded half up. Angle(a, a) is 0.
func Angle(a, b Address) int {
	pa, pb := ToScreen(a, 1), ToScreen(b, 1)
	dx := pb.X - pa.X
	dy := pa.Y - pb.Y // screen y grows downward

	var deg float64
	switch {
	case dx == 0 && dy > 0:
		deg = 90
	case dx == 0 && dy < 0:
		deg = 270
	case dx == 0:
		deg = 0
	default:
		deg = math.Atan(dy/dx) * 180 / math.Pi
		if dx < 0 {
			deg += 180
		} else if dy < 0 {
			deg += 360
		}
	}

	n := int(deg + 0.5)
	if n >= 360 {
		n -= 360
	}
	return n
}

// Classify buckets an angle from Angle. Sector A covers the open interval
// (60, 120); the multiples of 60 are ties and never fold into a sector.
func Classify(theta int) Bearing {
	theta = ((theta % 360) + 360) % 360
	// Clockwise degrees from the counter-clockwise edge of sector A.
	cw := (120 - theta + 360) % 360
	if cw%60 == 0 {
		return Bearing((cw/30 + numBearings - 1) % numBearings)
	}
	return Bearing(cw / 60 * 2)
}

// BearingOf classifies the direction of b as seen from a.
func BearingOf(a, b Address) Bearing {
	return Classify(Angle(a, b))
}

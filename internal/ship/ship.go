// Package ship models ships on the hex map: where they are, which way
// they face, and which of their shields face a given hex.
package ship

import (
	"fmt"

	"github.com/vovakirdan/hexfleet/internal/config"
	"github.com/vovakirdan/hexfleet/internal/hex"
)

// Position is a hex plus a facing.
type Position struct {
	Hex    hex.Address
	Facing hex.Facing
}

// String returns e.g. "4203E".
func (p Position) String() string {
	return p.Hex.Label() + p.Facing.String()
}

// Energy is the power a ship has available each turn.
type Energy struct {
	Warp    int
	Impulse int
	Reactor int
}

// Total returns all available power.
func (e Energy) Total() int {
	return e.Warp + e.Impulse + e.Reactor
}

// Ship is one ship on the map.
type Ship struct {
	Name     string
	SpecName string
	Spec     config.ShipSpec
	Position Position
	Speed    int
	Shields  [6]int // Current strength, index 0 is shield #1
}

// New creates a ship at full shields.
func New(name, specName string, spec config.ShipSpec, pos Position, speed int) *Ship {
	return &Ship{
		Name:     name,
		SpecName: specName,
		Spec:     spec,
		Position: pos,
		Speed:    speed,
		Shields:  spec.Defenses.Shields(),
	}
}

// Glyph returns the character drawn for the ship on the terminal map.
func (s *Ship) Glyph() rune {
	for _, r := range s.Spec.Fx.Glyph {
		return r
	}
	return '*'
}

// MoveTo places the ship at pos.
func (s *Ship) MoveTo(pos Position) {
	s.Position = pos
}

// MoveForward moves one hex in the direction the ship faces. Moving off
// the map fails and leaves the ship where it was.
func (s *Ship) MoveForward() error {
	next, err := hex.Neighbor(s.Position.Hex, s.Position.Facing)
	if err != nil {
		return fmt.Errorf("%s cannot move %v from %v: %w", s.Name, s.Position.Facing, s.Position.Hex, err)
	}
	s.Position.Hex = next
	return nil
}

// TurnLeft turns the ship one hex side counter-clockwise.
func (s *Ship) TurnLeft() {
	s.Position.Facing = s.Position.Facing.TurnLeft()
}

// TurnRight turns the ship one hex side clockwise.
func (s *Ship) TurnRight() {
	s.Position.Facing = s.Position.Facing.TurnRight()
}

// RelativeBearing returns the bearing of target relative to the ship's
// bow, so BearingA is dead ahead and BearingD directly astern.
func (s *Ship) RelativeBearing(target hex.Address) hex.Bearing {
	return hex.BearingOf(s.Position.Hex, target).Relative(s.Position.Facing)
}

// ShieldsFacing returns the shield numbers (1-6) that fire from target
// would strike. A target exactly on a shield boundary faces two shields.
// Fire from the ship's own hex is treated as striking shield #1.
func (s *Ship) ShieldsFacing(target hex.Address) []int {
	if target == s.Position.Hex {
		return []int{1}
	}
	facings := s.RelativeBearing(target).Facings()
	shields := make([]int, len(facings))
	for i, f := range facings {
		shields[i] = int(f) + 1
	}
	return shields
}

// Energy returns the power available from the ship's engines.
func (s *Ship) Energy() Energy {
	p := s.Spec.Power
	return Energy{
		Warp:    p.LeftWarp + p.CenterWarp + p.RightWarp,
		Impulse: p.Impulse,
		Reactor: p.Battery,
	}
}

// DistanceTo returns the range in hexes to another ship.
func (s *Ship) DistanceTo(other *Ship) int {
	return hex.Distance(s.Position.Hex, other.Position.Hex)
}

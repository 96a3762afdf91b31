package ship

import (
	"fmt"

	"github.com/vovakirdan/hexfleet/internal/config"
	"github.com/vovakirdan/hexfleet/internal/hex"
)

// SpecLoader resolves a ship spec name such as "klingon/d7".
type SpecLoader func(name string) (config.ShipSpec, error)

// Fleet is the ordered set of ships in play.
type Fleet struct {
	ships []*Ship
}

// NewFleet builds a fleet from a scenario.
func NewFleet(sc config.Scenario, load SpecLoader) (*Fleet, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	f := &Fleet{ships: make([]*Ship, 0, len(sc.Ships))}
	for _, entry := range sc.Ships {
		spec, err := load(entry.Spec)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: ship %s: %w", sc.ID, entry.Name, err)
		}
		addr, facing, err := entry.Start()
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.ID, err)
		}
		pos := Position{Hex: addr, Facing: facing}
		f.ships = append(f.ships, New(entry.Name, entry.Spec, spec, pos, entry.Speed))
	}
	return f, nil
}

// Len returns the number of ships.
func (f *Fleet) Len() int {
	return len(f.ships)
}

// At returns the i-th ship in scenario order.
func (f *Fleet) At(i int) *Ship {
	return f.ships[i]
}

// Ships returns the ships in scenario order.
func (f *Fleet) Ships() []*Ship {
	return f.ships
}

// Get returns the ship with the given name, or nil.
func (f *Fleet) Get(name string) *Ship {
	for _, s := range f.ships {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Occupant returns the first ship in hex a, or nil.
func (f *Fleet) Occupant(a hex.Address) *Ship {
	for _, s := range f.ships {
		if s.Position.Hex == a {
			return s
		}
	}
	return nil
}

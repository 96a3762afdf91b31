// Package config provides YAML-based ship specifications and scenario
// definitions, with built-in defaults embedded in the binary.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexfleet/internal/hex"
)

// ShipSpec is the static description of a ship class.
type ShipSpec struct {
	Name     string   `yaml:"name"`
	Fx       Fx       `yaml:"fx"`
	Defenses Defenses `yaml:"defenses"`
	Power    Power    `yaml:"power"`
	Hull     Hull     `yaml:"hull"`
}

// Fx holds presentation hints for a ship class.
type Fx struct {
	Image string `yaml:"image"`
	Glyph string `yaml:"glyph"` // Single character used on the terminal map
}

// Defenses lists shield strengths, numbered clockwise from the bow.
type Defenses struct {
	Shield1 int `yaml:"shield1"`
	Shield2 int `yaml:"shield2"`
	Shield3 int `yaml:"shield3"`
	Shield4 int `yaml:"shield4"`
	Shield5 int `yaml:"shield5"`
	Shield6 int `yaml:"shield6"`
	Armor   int `yaml:"armor"`
}

// Shields returns the six shield strengths in shield-number order.
func (d Defenses) Shields() [6]int {
	return [6]int{d.Shield1, d.Shield2, d.Shield3, d.Shield4, d.Shield5, d.Shield6}
}

// Power defines the ship's power plant.
type Power struct {
	LeftWarp   int `yaml:"left_warp"`
	CenterWarp int `yaml:"center_warp"`
	RightWarp  int `yaml:"right_warp"`
	Impulse    int `yaml:"impulse"`
	Battery    int `yaml:"battery"`
}

// Hull defines hull boxes.
type Hull struct {
	Forward int `yaml:"forward"`
	Aft     int `yaml:"aft"`
}

// Validate checks that a spec is usable.
func (s ShipSpec) Validate() error {
	if s.Name == "" {
		return errors.New("ship spec: missing name")
	}
	for i, v := range s.Defenses.Shields() {
		if v < 0 {
			return fmt.Errorf("ship spec %s: shield%d is negative", s.Name, i+1)
		}
	}
	p := s.Power
	if p.LeftWarp < 0 || p.CenterWarp < 0 || p.RightWarp < 0 || p.Impulse < 0 || p.Battery < 0 {
		return fmt.Errorf("ship spec %s: negative power", s.Name)
	}
	return nil
}

// Scenario places named ships on the map.
type Scenario struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Ships       []ScenarioShip `yaml:"ships"`
}

// ScenarioShip is one ship's starting state. Hex is a map label such as
// "0730" and Facing a letter A-F.
type ScenarioShip struct {
	Name   string `yaml:"name"`
	Spec   string `yaml:"spec"`
	Hex    string `yaml:"hex"`
	Facing string `yaml:"facing"`
	Speed  int    `yaml:"speed"`
}

// Start resolves the starting hex and facing.
func (s ScenarioShip) Start() (hex.Address, hex.Facing, error) {
	addr, err := hex.ParseLabel(s.Hex)
	if err != nil {
		return hex.Address{}, 0, fmt.Errorf("ship %s: %w", s.Name, err)
	}
	facing, err := hex.ParseFacing(s.Facing)
	if err != nil {
		return hex.Address{}, 0, fmt.Errorf("ship %s: %w", s.Name, err)
	}
	return addr, facing, nil
}

// Validate checks ship names and starting positions.
func (s Scenario) Validate() error {
	if s.ID == "" {
		return errors.New("scenario: missing id")
	}
	if len(s.Ships) == 0 {
		return fmt.Errorf("scenario %s: no ships", s.ID)
	}

	seen := make(map[string]bool, len(s.Ships))
	for _, ship := range s.Ships {
		if ship.Name == "" {
			return fmt.Errorf("scenario %s: ship without a name", s.ID)
		}
		if seen[ship.Name] {
			return fmt.Errorf("scenario %s: duplicate ship %q", s.ID, ship.Name)
		}
		seen[ship.Name] = true

		if ship.Spec == "" {
			return fmt.Errorf("scenario %s: ship %s has no spec", s.ID, ship.Name)
		}
		if ship.Speed < 0 {
			return fmt.Errorf("scenario %s: ship %s has negative speed", s.ID, ship.Name)
		}
		if _, _, err := ship.Start(); err != nil {
			return fmt.Errorf("scenario %s: %w", s.ID, err)
		}
	}
	return nil
}

// Package hex is the geometry engine for the fixed 60x30 hex map.
//
// The map uses zero-based offset coordinates in an "odd-q" layout: hexes
// are flat-topped, columns run left to right and every odd column sits
// half a hex lower than its even neighbors. The package has no external
// dependencies and holds no state, so every function is safe to call from
// any goroutine.
package hex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Board dimensions.
const (
	Cols = 60
	Rows = 30
)

var (
	// ErrOutOfBounds reports a column/row pair or screen point that does not
	// resolve to a hex on the board.
	ErrOutOfBounds = errors.New("hex: out of bounds")

	// ErrMalformedLabel reports a hex label that is not a 4-digit number.
	ErrMalformedLabel = errors.New("hex: malformed label")
)

// Address identifies one hex on the board. The zero value is hex 0101.
// Addresses can only be built through New, ParseLabel, Neighbor or
// FromScreen, so a non-zero Address is always on the board.
type Address struct {
	col int
	row int
}

// New returns the address at (col, row).
func New(col, row int) (Address, error) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return Address{}, fmt.Errorf("%w: col %d, row %d", ErrOutOfBounds, col, row)
	}
	return Address{col: col, row: row}, nil
}

// Col returns the zero-based column.
func (a Address) Col() int {
	return a.col
}

// Row returns the zero-based row.
func (a Address) Row() int {
	return a.row
}

// Number returns the number printed on the map, e.g. 101 for the top-left
// hex and 6030 for the bottom-right one.
func (a Address) Number() int {
	return (a.col+1)*100 + (a.row + 1)
}

// Label returns Number zero-padded to four digits.
func (a Address) Label() string {
	return fmt.Sprintf("%04d", a.Number())
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Label()
}

// ParseLabel is the inverse of Label. Shorter forms such as "101" are
// accepted since the number is what identifies the hex.
func ParseLabel(text string) (Address, error) {
	s := strings.TrimSpace(text)
	if len(s) == 0 || len(s) > 4 {
		return Address{}, fmt.Errorf("%w: %q", ErrMalformedLabel, text)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Address{}, fmt.Errorf("%w: %q", ErrMalformedLabel, text)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q", ErrMalformedLabel, text)
	}
	return New(n/100-1, n%100-1)
}

package cart

import (
	"fmt"
	"strings"
)

// Unit is the granularity a product is sold by.
type Unit string

const (
	UnitPiece  Unit = "piece"
	UnitCarton Unit = "carton"
)

// Valid reports whether u belongs to the closed set of units.
func (u Unit) Valid() bool {
	switch u {
	case UnitPiece, UnitCarton:
		return true
	default:
		return false
	}
}

// DefaultLabel is the storefront label shown next to an item when the
// caller did not capture one from the unit selector.
func (u Unit) DefaultLabel() string {
	switch u {
	case UnitPiece:
		return "حبة"
	case UnitCarton:
		return "كرتون"
	default:
		return string(u)
	}
}

func (u Unit) String() string {
	return string(u)
}

// ParseUnit maps a selector value onto a Unit. Matching ignores case and
// surrounding whitespace.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

package conversion

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how converted amounts are rounded.
type RoundingMode int

const (
	// RoundHalfEven rounds exact halves to the nearest even digit (banker's rounding).
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp rounds exact halves away from zero.
	RoundHalfUp
	// RoundDown truncates towards zero.
	RoundDown
)

func (m RoundingMode) String() string {
	switch m {
	case RoundHalfEven:
		return "half_even"
	case RoundHalfUp:
		return "half_up"
	case RoundDown:
		return "down"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// ParseRoundingMode parses the names returned by RoundingMode.String.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half_even", "bankers":
		return RoundHalfEven, nil
	case "half_up":
		return RoundHalfUp, nil
	case "down", "truncate":
		return RoundDown, nil
	}
	return RoundHalfEven, fmt.Errorf("unknown rounding mode %q", s)
}

// Round rounds value to places fractional digits using mode.
// Rounding works on the decimal value itself, never on a binary float.
func Round(value decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case RoundHalfUp:
		return value.Round(places)
	case RoundDown:
		return value.Truncate(places)
	default:
		return value.RoundBank(places)
	}
}

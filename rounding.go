package cash

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// RoundingMode specifies how a fractional number of minor units is resolved
// into a whole number.
// The zero value is [HalfEven].
type RoundingMode uint8

const (
	HalfEven RoundingMode = iota // ties to the nearest even digit (banker's rounding)
	HalfUp                       // ties away from zero
	HalfDown                     // ties toward zero
	HalfOdd                      // ties to the nearest odd digit
	Up                           // away from zero
	Down                         // toward zero (truncation)
	Ceiling                      // toward positive infinity
	Floor                        // toward negative infinity
)

var modeNames = [...]string{
	HalfEven: "half_even",
	HalfUp:   "half_up",
	HalfDown: "half_down",
	HalfOdd:  "half_odd",
	Up:       "up",
	Down:     "down",
	Ceiling:  "ceiling",
	Floor:    "floor",
}

// ParseRoundingMode converts a name such as "half_up" or "FLOOR" to a rounding mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for m, n := range modeNames {
		if n == name {
			return RoundingMode(m), nil
		}
	}
	return HalfEven, fmt.Errorf("rounding mode %q is not supported", s)
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// MarshalText implements [encoding.TextMarshaler] interface.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("rounding mode %d is not supported", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}

// Round returns d rounded to the given number of digits after the decimal
// point.
// If d already has no more digits than that, it is returned unchanged.
func (m RoundingMode) Round(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Scale() <= scale {
		return d, nil
	}
	switch m {
	case HalfEven:
		return d.Round(scale), nil
	case Down:
		return d.Trunc(scale), nil
	case Ceiling:
		return d.Ceil(scale), nil
	case Floor:
		return d.Floor(scale), nil
	case Up:
		return away(d, scale), nil
	case HalfUp, HalfDown, HalfOdd:
		// handled below
	default:
		return decimal.Decimal{}, fmt.Errorf("rounding mode %d is not supported", uint8(m))
	}

	// Comparing the discarded digits with one half of the last kept digit
	t := d.Trunc(scale)
	r, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, err
	}
	switch c := r.CmpAbs(half); {
	case c < 0:
		return t, nil
	case c > 0:
		return away(d, scale), nil
	}

	// Tie
	switch m {
	case HalfUp:
		return away(d, scale), nil
	case HalfDown:
		return t, nil
	default:
		if t.Coef()%2 == 1 {
			return t, nil
		}
		return away(d, scale), nil
	}
}

// roundRat returns num / den rounded to a whole number.
// The quotient is rounded once, from its exact value, so directed modes are
// not affected by the limited precision of [decimal.Decimal].
func (m RoundingMode) roundRat(num, den *big.Int) (decimal.Decimal, error) {
	if den.Sign() == 0 {
		return decimal.Decimal{}, errDivisionByZero
	}
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		up, err := m.roundsAway(q, r, den, num.Sign() < 0)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if up {
			q.Add(q, big.NewInt(int64(num.Sign())))
		}
	}
	return decimalFromBig(q, 0)
}

// roundsAway reports whether the truncated quotient q with a nonzero
// remainder r must be moved one unit away from zero.
func (m RoundingMode) roundsAway(q, r, den *big.Int, neg bool) (bool, error) {
	switch m {
	case Down:
		return false, nil
	case Up:
		return true, nil
	case Ceiling:
		return !neg, nil
	case Floor:
		return neg, nil
	case HalfEven, HalfUp, HalfDown, HalfOdd:
		// handled below
	default:
		return false, fmt.Errorf("rounding mode %d is not supported", uint8(m))
	}
	twice := new(big.Int).Abs(r)
	twice.Lsh(twice, 1)
	switch c := twice.Cmp(den); {
	case c < 0:
		return false, nil
	case c > 0:
		return true, nil
	}

	// Tie
	switch m {
	case HalfUp:
		return true, nil
	case HalfDown:
		return false, nil
	case HalfEven:
		return q.Bit(0) == 1, nil
	default:
		return q.Bit(0) == 0, nil
	}
}

// valid reports whether m is one of the supported modes.
func (m RoundingMode) valid() bool {
	return int(m) < len(modeNames)
}

// away rounds d away from zero.
func away(d decimal.Decimal, scale int) decimal.Decimal {
	if d.IsNeg() {
		return d.Floor(scale)
	}
	return d.Ceil(scale)
}

// modeKey is the context key of the scoped rounding mode.
type modeKey struct{}

// WithRoundingMode returns a copy of ctx in which mode is the active rounding
// mode.
// Every rounding performed with the returned context, or any context derived
// from it, observes mode until another scope is entered.
// The parent context is not modified, so dropping the returned context
// restores the previous mode on every exit path.
// See also function [RoundingScope].
func WithRoundingMode(ctx context.Context, mode RoundingMode) context.Context {
	return context.WithValue(ctx, modeKey{}, mode)
}

// RoundingModeFrom returns the rounding mode active in ctx.
// If no scope was entered, the mode of the default [Config] is returned.
func RoundingModeFrom(ctx context.Context) RoundingMode {
	if ctx != nil {
		if m, ok := ctx.Value(modeKey{}).(RoundingMode); ok {
			return m
		}
	}
	return Default().Mode
}

// RoundingScope runs body with mode as the active rounding mode and returns
// its result.
// Scopes can be nested; the innermost mode wins.
// After RoundingScope returns, or body panics, the mode observed through ctx
// is the one that was active before the call.
func RoundingScope[T any](ctx context.Context, mode RoundingMode, body func(ctx context.Context) (T, error)) (T, error) {
	return body(WithRoundingMode(ctx, mode))
}

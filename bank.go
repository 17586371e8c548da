package cash

import (
	"context"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// RoundFunc resolves a (possibly fractional) number of minor units produced
// by an exchange into a whole number of minor units.
// The units it receives carry at most [decimal.MaxPrec] significant digits.
// See also function [RoundWith].
type RoundFunc func(units decimal.Decimal) decimal.Decimal

// RoundWith returns a rounding function that applies the given mode.
//
// RoundWith panics if the mode is not supported.
func RoundWith(mode RoundingMode) RoundFunc {
	if !mode.valid() {
		panic(fmt.Sprintf("RoundWith(%v) failed: rounding mode is not supported", mode))
	}
	return func(units decimal.Decimal) decimal.Decimal {
		d, err := mode.Round(units, 0)
		if err != nil {
			panic(fmt.Sprintf("RoundWith(%v)(%v) failed: %v", mode, units, err))
		}
		return d
	}
}

// Bank converts amounts between currencies.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// Exchange returns amount m converted to currency to.
// If round is not nil, it decides how fractional minor units are resolved,
// otherwise the rounding mode active in ctx is used, and [Infinite] amounts
// keep the fraction.
// Implementations return errors wrapping [ErrUnknownRate] when no rate is
// known and [ErrConversionDisallowed] when they refuse to convert.
type Bank interface {
	Exchange(ctx context.Context, m Money, to Currency, round RoundFunc) (Money, error)
}

// Convert returns amount m converted to currency to with the given rate,
// which is the price of one major unit of the currency of m in major units
// of currency to.
// The number of minor units is computed as
//
//	units × rate × to.SubunitToUnit / from.SubunitToUnit
//
// and then resolved by round, if it is not nil, or by the rounding mode
// active in ctx.
// Banks use Convert once they know the rate.
//
// Convert returns an error if:
//   - the rate is not positive;
//   - the result has more than [decimal.MaxPrec] digits;
//   - round returns a fractional number of minor units.
func Convert(ctx context.Context, m Money, to Currency, rate decimal.Decimal, round RoundFunc) (Money, error) {
	n, err := convert(ctx, m, to, rate, round)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v to %v at %v: %w", m, to, rate, err)
	}
	return n, nil
}

func convert(ctx context.Context, m Money, to Currency, rate decimal.Decimal, round RoundFunc) (Money, error) {
	if !rate.IsPos() {
		return Money{}, fmt.Errorf("rate must be positive")
	}
	if m.prec == Exact && round == nil {
		num, den := ratOf(m.units)
		rn, rd := ratOf(rate)
		num.Mul(num, rn)
		num.Mul(num, big.NewInt(to.SubunitToUnit()))
		den.Mul(den, rd)
		den.Mul(den, big.NewInt(m.Curr().SubunitToUnit()))
		d, err := RoundingModeFrom(ctx).roundRat(num, den)
		if err != nil {
			return Money{}, err
		}
		return newMoneyUnsafe(to, d, Exact), nil
	}
	d, err := m.units.Mul(rate)
	if err != nil {
		return Money{}, err
	}
	if from, to := m.Curr().SubunitToUnit(), to.SubunitToUnit(); from != to {
		d, err = d.Mul(unitsOf(to))
		if err != nil {
			return Money{}, err
		}
		d, err = d.Quo(unitsOf(from))
		if err != nil {
			return Money{}, err
		}
	}
	if round != nil {
		d = round(d)
		if !d.IsInt() {
			return Money{}, fmt.Errorf("round returned %v: %w", d, errFractionalPart)
		}
		return newMoneyUnsafe(to, d.Trunc(0), m.prec), nil
	}
	return newMoneyRounded(to, d, m.prec, RoundingModeFrom(ctx))
}

// ExchangeTo converts the amount to currency to using the bank of the
// default [Config].
// See also method [Config.Exchange].
func (m Money) ExchangeTo(ctx context.Context, to Currency) (Money, error) {
	return Default().Exchange(ctx, m, to)
}

package cash

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// Split divides the amount into n parts that differ by at most one unit.
// It is equivalent to [Money.Allocate] with n equal weights, so for
// example USD 1.00 is split into 3 parts as USD 0.34, USD 0.33, USD 0.33.
//
// Split returns an error wrapping [ErrInvalidAllocation] if n is not positive.
func (m Money) Split(n int) ([]Money, error) {
	if n <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, n, ErrInvalidAllocation)
	}
	weights := make([]decimal.Decimal, n)
	for i := range weights {
		weights[i] = unitsOf(1)
	}
	return m.Allocate(weights...)
}

// Allocate divides the amount into parts proportional to the weights.
// The parts have the currency and precision of the amount and their sum is
// always exactly equal to it.
//
// Every part first receives its share rounded down to a whole unit.
// The units left over are then given one by one to the parts in the order
// of the weights, so USD 0.05 allocated by weights 3 and 7 becomes
// USD 0.02 and USD 0.03.
// The unit is always one minor unit, so amounts that are [Money.Equal] are
// divided into equal parts however they were constructed.
// The fraction of a minor unit held by an [Infinite] amount is added to the
// first part.
// Negative amounts are divided by magnitude and every part is negated.
//
// Allocate returns an error wrapping [ErrInvalidAllocation] if there are no
// weights, any weight is negative, or all weights are zero.
func (m Money) Allocate(weights ...decimal.Decimal) ([]Money, error) {
	parts, err := m.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by %v: %w", m, weights, err)
	}
	return parts, nil
}

func (m Money) allocate(weights []decimal.Decimal) ([]Money, error) {
	if len(weights) == 0 {
		return nil, ErrInvalidAllocation
	}
	ws, err := scaleWeights(weights)
	if err != nil {
		return nil, err
	}
	sum := new(big.Int)
	for _, w := range ws {
		sum.Add(sum, w)
	}
	if sum.Sign() == 0 {
		return nil, ErrInvalidAllocation
	}

	// Whole minor units are divided, the fraction goes to the first part
	abs := m.units.Abs()
	whole := abs.Trunc(0)
	frac, err := abs.Sub(whole)
	if err != nil {
		return nil, err
	}

	// Base shares
	total := new(big.Int).SetUint64(whole.Coef())
	left := new(big.Int).Set(total)
	shares := make([]*big.Int, len(ws))
	for i, w := range ws {
		s := new(big.Int).Mul(total, w)
		s.Quo(s, sum)
		shares[i] = s
		left.Sub(left, s)
	}

	// Leftover is less than the number of parts
	one := big.NewInt(1)
	for i := 0; left.Sign() > 0; i++ {
		shares[i].Add(shares[i], one)
		left.Sub(left, one)
	}

	parts := make([]Money, len(shares))
	for i, s := range shares {
		d, err := decimalFromBig(s, 0)
		if err != nil {
			return nil, err
		}
		if i == 0 && !frac.IsZero() {
			d, err = d.Add(frac)
			if err != nil {
				return nil, err
			}
		}
		if m.IsNeg() {
			d = d.Neg()
		}
		parts[i] = newMoneyUnsafe(m.Curr(), d, m.prec)
	}
	return parts, nil
}

// scaleWeights converts weights to integers with a common scale.
func scaleWeights(weights []decimal.Decimal) ([]*big.Int, error) {
	scale := 0
	for _, w := range weights {
		if w.IsNeg() {
			return nil, ErrInvalidAllocation
		}
		scale = max(scale, w.Scale())
	}
	ws := make([]*big.Int, len(weights))
	for i, w := range weights {
		n := new(big.Int).SetUint64(w.Coef())
		ws[i] = n.Mul(n, pow10(scale-w.Scale()))
	}
	return ws, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ratOf returns d as the fraction num / den.
func ratOf(d decimal.Decimal) (num, den *big.Int) {
	num = new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	return num, pow10(d.Scale())
}

// decimalFromBig returns n / 10^scale as a decimal.
func decimalFromBig(n *big.Int, scale int) (decimal.Decimal, error) {
	if n.IsInt64() {
		return decimal.New(n.Int64(), scale)
	}
	r := new(big.Rat).SetFrac(n, pow10(scale))
	d, err := decimal.Parse(r.FloatString(scale))
	if err != nil {
		return decimal.Decimal{}, errUnitsOverflow
	}
	return d, nil
}

package cash

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// Precision specifies whether an amount keeps fractions of a minor unit.
// It is chosen when an amount is constructed and inherited by the results
// of arithmetic operations.
type Precision uint8

const (
	// Exact amounts always hold a whole number of minor units.
	// Operations that produce fractions round them with the active
	// rounding mode.
	Exact Precision = iota
	// Infinite amounts keep fractional minor units until they are rounded
	// explicitly, see method [Money.Round].
	// The fraction is limited by the [decimal.MaxPrec] significant digits
	// of the underlying decimal, and [Money.Major] rounds amounts whose
	// minor units and currency exponent together need more than
	// [decimal.MaxScale] digits after the decimal point.
	Infinite
)

// String implements the [fmt.Stringer] interface.
func (p Precision) String() string {
	switch p {
	case Exact:
		return "exact"
	case Infinite:
		return "infinite"
	}
	return fmt.Sprintf("Precision(%d)", uint8(p))
}

// Money type represents a monetary amount as a number of minor units of
// its currency.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Money is designed to be safe for concurrent use by multiple goroutines.
//
// Use [Money.Equal] rather than == to compare amounts: amounts
// constructed with different precision may have different representations
// of the same value.
type Money struct {
	curr  Currency        // currency of the amount
	units decimal.Decimal // amount in minor units
	prec  Precision       // whether units may have a fractional part
}

// newMoneyUnsafe creates a new amount without rounding.
// Use it only if you are absolutely sure that the units are valid for the precision.
func newMoneyUnsafe(c Currency, d decimal.Decimal, p Precision) Money {
	return Money{curr: c, units: d, prec: p}
}

// newMoneyRounded creates a new amount and rounds exact amounts to a
// whole number of minor units.
func newMoneyRounded(c Currency, d decimal.Decimal, p Precision, mode RoundingMode) (Money, error) {
	if p == Exact {
		var err error
		d, err = mode.Round(d, 0)
		if err != nil {
			return Money{}, fmt.Errorf("rounding %v minor units: %w", d, err)
		}
	}
	return newMoneyUnsafe(c, d, p), nil
}

// unitsOf converts an integer to a decimal with zero scale.
func unitsOf(n int64) decimal.Decimal {
	d, err := decimal.New(n, 0)
	if err != nil {
		panic(fmt.Sprintf("decimal.New(%v, 0) failed: %v", n, err))
	}
	return d
}

// NewMoney returns an exact amount of minor units of currency c
// (e.g. cents, pennies, fens).
// See also method [Money.MinorUnits].
func NewMoney(c Currency, units int64) Money {
	return newMoneyUnsafe(c, unitsOf(units), Exact)
}

// FromMinorUnits is like [NewMoney] but looks the currency up by code in
// the default registry.
//
// FromMinorUnits returns an error wrapping [ErrUnknownCurrency] if the
// currency is not registered.
func FromMinorUnits(curr string, units int64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return NewMoney(c, units), nil
}

// NewMoneyFromUnits returns an amount of (possibly fractional) minor units
// of currency c.
// When p is [Exact], the units are rounded to a whole number using the
// rounding mode active in ctx.
func NewMoneyFromUnits(ctx context.Context, c Currency, units decimal.Decimal, p Precision) (Money, error) {
	return newMoneyRounded(c, units, p, RoundingModeFrom(ctx))
}

// NewMoneyFromMajor converts an amount in major units of currency c
// (e.g. dollars) to minor units by multiplying it by [Currency.SubunitToUnit].
// When p is [Exact], the result is rounded to a whole number of minor units
// using the rounding mode active in ctx, otherwise the fraction is kept.
//
// NewMoneyFromMajor returns an error if the number of minor units has
// more than [decimal.MaxPrec] digits.
func NewMoneyFromMajor(ctx context.Context, c Currency, major decimal.Decimal, p Precision) (Money, error) {
	if p == Exact {
		num, den := ratOf(major)
		d, err := RoundingModeFrom(ctx).roundRat(num.Mul(num, big.NewInt(c.SubunitToUnit())), den)
		if err != nil {
			return Money{}, fmt.Errorf("converting %v %v to minor units: %w", c, major, err)
		}
		return newMoneyUnsafe(c, d, Exact), nil
	}
	d, err := major.Mul(unitsOf(c.SubunitToUnit()))
	if err != nil {
		return Money{}, fmt.Errorf("converting %v %v to minor units: %w", c, major, errUnitsOverflow)
	}
	return newMoneyRounded(c, d, p, RoundingModeFrom(ctx))
}

// FromMajor is like [NewMoneyFromMajor] with [Exact] precision, but looks
// the currency up by code in the default registry.
func FromMajor(ctx context.Context, curr string, major decimal.Decimal) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return NewMoneyFromMajor(ctx, c, major, Exact)
}

// NewMoneyFromFloat64 converts a float in major units to an amount.
// See also method [Money.Float64].
//
// NewMoneyFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float cannot be represented by a decimal;
//   - the number of minor units has more than [decimal.MaxPrec] digits.
func NewMoneyFromFloat64(ctx context.Context, c Currency, major float64, p Precision) (Money, error) {
	if math.IsNaN(major) || math.IsInf(major, 0) {
		return Money{}, fmt.Errorf("converting float: special value %v", major)
	}
	d, err := decimal.Parse(strconv.FormatFloat(major, 'f', -1, 64))
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return NewMoneyFromMajor(ctx, c, d, p)
}

// ParseMoney converts currency and decimal strings to an exact amount.
// The decimal string is in major units, for example "12.34" dollars.
//
// ParseMoney returns an error if:
//   - the currency is not registered;
//   - the decimal string is not valid;
//   - the amount has digits beyond the minor unit of the currency,
//     ParseMoney never rounds.
func ParseMoney(curr, amount string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	d, err = d.Mul(unitsOf(c.SubunitToUnit()))
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", errUnitsOverflow)
	}
	if !d.IsInt() {
		return Money{}, fmt.Errorf("parsing amount %q: %w", amount, errFractionalPart)
	}
	return newMoneyUnsafe(c, d.Trunc(0), Exact), nil
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	return m.curr
}

// Precision returns the precision the amount was constructed with.
func (m Money) Precision() Precision {
	return m.prec
}

// Units returns the amount in minor units of currency.
// The result is a whole number for [Exact] amounts and may have
// a fractional part for [Infinite] amounts.
func (m Money) Units() decimal.Decimal {
	return m.units
}

// MinorUnits returns a (possibly rounded) amount in minor units of currency
// (e.g. cents, pennies, fens).
// Fractional minor units of [Infinite] amounts are rounded using
// [rounding half to even] (banker's rounding).
// See also constructor [NewMoney].
//
// If the result cannot be represented as an int64, then false is returned.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) MinorUnits() (units int64, ok bool) {
	units, _, ok = m.units.Round(0).Int64(0)
	return units, ok
}

// Major returns the amount in major units of currency, computed by dividing
// minor units by [Currency.SubunitToUnit].
// The result has at least as many digits after the decimal point as the
// scale of the currency.
// It is exact unless the amount is [Infinite] and the result would need more
// than [decimal.MaxScale] digits after the decimal point, in which case it
// is rounded half to even to [decimal.MaxScale] digits.
// Use [Money.Units] to read such amounts without loss.
func (m Money) Major() decimal.Decimal {
	d, err := m.units.Quo(unitsOf(m.Curr().SubunitToUnit()))
	if err != nil {
		panic(fmt.Sprintf("%v.Major() failed: %v", m.units, err))
	}
	return d.Pad(m.Curr().Scale())
}

// Int64 returns the integer part of the amount in major units.
// The fractional part is discarded (truncated toward zero).
//
// If the result cannot be represented as an int64, then false is returned.
func (m Money) Int64() (whole int64, ok bool) {
	whole, _, ok = m.Major().Trunc(0).Int64(0)
	return whole, ok
}

// Float64 returns the nearest binary floating-point number of major units.
// See also constructor [NewMoneyFromFloat64].
//
// This conversion may lose data and is meant for display and interoperability
// only; never feed the result back into monetary computations.
func (m Money) Float64() (f float64, ok bool) {
	return m.Major().Float64()
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.units.Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.units.IsZero()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.units.IsNeg()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.units.IsPos()
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return newMoneyUnsafe(m.Curr(), m.units.Abs(), m.prec)
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return newMoneyUnsafe(m.Curr(), m.units.Neg(), m.prec)
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Currency.Equal].
func (m Money) SameCurr(b Money) bool {
	return m.Curr().Equal(b.Curr())
}

// Add returns the sum of amounts m and b.
// The result is [Infinite] if either amount is.
//
// Add returns an error if:
//   - amounts are denominated in different currencies, see [ErrCurrencyMismatch];
//   - the result has more than [decimal.MaxPrec] digits.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	d, err := m.units.Add(b.units)
	if err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(m.Curr(), d, max(m.prec, b.prec)), nil
}

// Sub returns the difference between amounts m and b.
// The result is [Infinite] if either amount is.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies, see [ErrCurrencyMismatch];
//   - the result has more than [decimal.MaxPrec] digits.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	d, err := m.units.Sub(b.units)
	if err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(m.Curr(), d, max(m.prec, b.prec)), nil
}

// Mul returns the product of amount m and factor e.
// [Exact] amounts are rounded to a whole number of minor units using the
// rounding mode active in ctx.
//
// Mul returns an error if the result has more than [decimal.MaxPrec] digits.
func (m Money) Mul(ctx context.Context, e decimal.Decimal) (Money, error) {
	c, err := m.mul(RoundingModeFrom(ctx), e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

func (m Money) mul(mode RoundingMode, e decimal.Decimal) (Money, error) {
	if m.prec == Exact {
		num, den := ratOf(m.units)
		en, ed := ratOf(e)
		d, err := mode.roundRat(num.Mul(num, en), den.Mul(den, ed))
		if err != nil {
			return Money{}, err
		}
		return newMoneyUnsafe(m.Curr(), d, Exact), nil
	}
	d, err := m.units.Mul(e)
	if err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(m.Curr(), d, m.prec), nil
}

// Quo returns the quotient of amount m and divisor e.
// [Exact] amounts are rounded to a whole number of minor units using the
// rounding mode active in ctx.
// See also methods [Money.Rat], [Money.Split] and [Money.Allocate].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the result has more than [decimal.MaxPrec] digits.
func (m Money) Quo(ctx context.Context, e decimal.Decimal) (Money, error) {
	c, err := m.quo(RoundingModeFrom(ctx), e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return c, nil
}

func (m Money) quo(mode RoundingMode, e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, errDivisionByZero
	}
	if m.prec == Exact {
		num, den := ratOf(m.units)
		en, ed := ratOf(e)
		d, err := mode.roundRat(num.Mul(num, ed), den.Mul(den, en))
		if err != nil {
			return Money{}, err
		}
		return newMoneyUnsafe(m.Curr(), d, Exact), nil
	}
	d, err := m.units.Quo(e)
	if err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(m.Curr(), d, m.prec), nil
}

// Rat returns the (possibly rounded) ratio between amounts m and b.
// This method is useful for determining percentages within a single currency.
//
// Rat returns an error if:
//   - amounts are denominated in different currencies, see [ErrCurrencyMismatch];
//   - the divisor is 0.
func (m Money) Rat(b Money) (decimal.Decimal, error) {
	if !m.SameCurr(b) {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, b, ErrCurrencyMismatch)
	}
	if b.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, b, errDivisionByZero)
	}
	d, err := m.units.Quo(b.units)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return d, nil
}

// Round returns the amount rounded to a whole number of minor units using
// the rounding mode active in ctx.
// The precision of the result is kept, so an [Infinite] amount stays
// [Infinite] but no longer has a fraction.
// See also method [Money.RoundTo].
func (m Money) Round(ctx context.Context) (Money, error) {
	return m.RoundTo(RoundingModeFrom(ctx), 0)
}

// RoundTo returns the amount rounded to the given number of digits after
// the minor unit using the given mode.
// Digits of 0 round to a whole number of minor units; greater values keep
// finer fractions, which is only meaningful for [Infinite] amounts.
//
// RoundTo returns an error if digits is negative or greater than [decimal.MaxScale].
func (m Money) RoundTo(mode RoundingMode, digits int) (Money, error) {
	if digits < 0 || digits > decimal.MaxScale {
		return Money{}, fmt.Errorf("rounding %v: digits %v out of range", m, digits)
	}
	d, err := mode.Round(m.units, digits)
	if err != nil {
		return Money{}, fmt.Errorf("rounding %v: %w", m, err)
	}
	return newMoneyUnsafe(m.Curr(), d, m.prec), nil
}

// RoundToNearestCashValue returns the amount in minor units rounded to the
// nearest multiple of the smallest cash denomination of its currency,
// using the rounding mode active in ctx.
// For example, CHF 0.07 is 5 in Swiss coins.
// See also method [Money.ToNearestCashValue].
//
// RoundToNearestCashValue returns an error wrapping
// [ErrUndefinedSmallestDenomination] if the currency has no physical cash.
func (m Money) RoundToNearestCashValue(ctx context.Context) (decimal.Decimal, error) {
	unit, ok := m.Curr().SmallestDenomination()
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("rounding %v to cash: %w", m, ErrUndefinedSmallestDenomination)
	}
	den := unitsOf(unit)
	q, err := m.units.Quo(den)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rounding %v to cash: %w", m, err)
	}
	q, err = RoundingModeFrom(ctx).Round(q, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rounding %v to cash: %w", m, err)
	}
	d, err := q.Mul(den)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rounding %v to cash: %w", m, err)
	}
	return d.Trunc(0), nil
}

// ToNearestCashValue is like [Money.RoundToNearestCashValue] but returns
// the result as an amount of the same currency and precision.
func (m Money) ToNearestCashValue(ctx context.Context) (Money, error) {
	d, err := m.RoundToNearestCashValue(ctx)
	if err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(m.Curr(), d, m.prec), nil
}

// Cmp compares amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error wrapping [ErrCurrencyMismatch] if amounts are
// denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return m.units.Cmp(b.units), nil
}

// Equal returns true if amounts have the same currency and the same value,
// regardless of their precision and internal representation.
// Amounts in different currencies are never equal.
func (m Money) Equal(b Money) bool {
	return m.SameCurr(b) && m.units.Cmp(b.units) == 0
}

// Hash returns a hash of the currency code and the value of the amount.
// Equal amounts have equal hashes, see method [Money.Equal].
func (m Money) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(m.Curr().Code()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(m.units.Trim(0).String()))
	return h.Sum64()
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in different currencies.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0:
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in different currencies.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0:
		return m, nil
	default:
		return b, nil
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount in major units, such as "USD 12.34".
// See also method [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Curr().Code() + " " + m.Major().String()
}

// Display returns the amount as it is usually shown to people, using the
// symbol, thousands separator and decimal mark of the currency,
// such as "$1,234.56" or "-€5,00".
// Currencies without a symbol are shown with their code, as in "XTS 1.00".
func (m Money) Display() string {
	c := m.Curr()
	digits := m.Major().Abs().String()
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if m.IsNeg() {
		b.WriteByte('-')
	}
	if sym := c.Symbol(); sym != "" {
		b.WriteString(sym)
	} else {
		b.WriteString(c.Code())
		b.WriteByte(' ')
	}
	sep := c.ThousandsSeparator()
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		mark := c.DecimalMark()
		if mark == "" {
			mark = "."
		}
		b.WriteString(mark)
		b.WriteString(frac)
	}
	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example       | Description              |
//	| ------ | ------------- | ------------------------ |
//	| %s, %v | USD -123.45   | Currency and major units |
//	| %q     | "USD -123.45" | Quoted %s                |
//	| %f     | -123.45       | Major units              |
//	| %d     | -12345        | Minor units, rounded     |
//	| %c     | USD           | Currency code            |
//	| %y     | -$123.45      | Display form             |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c and %y.
//
// Precision is only supported for the %f verb.
// The precision is never smaller than the scale of the currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	c := m.Curr()

	// Number
	var num string
	switch verb {
	case 'd', 'D':
		num = m.units.Round(0).String()
	case 'c', 'C', 'y', 'Y':
		// skip
	default:
		d := m.Major()
		if p, ok := state.Precision(); ok && (verb == 'f' || verb == 'F') {
			p = max(p, c.Scale())
			if p < d.Scale() {
				d = d.Round(p)
			} else {
				d = d.Pad(p)
			}
		}
		num = d.String()
	}

	// Arithmetic sign
	sign := ""
	switch {
	case num == "":
		// skip
	case strings.HasPrefix(num, "-"):
		sign, num = "-", num[1:]
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Currency code and delimiter
	prefix := ""
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		prefix = c.Code() + " "
	case 'c', 'C':
		prefix = c.Code()
	case 'y', 'Y':
		prefix = m.Display()
	}

	// Opening and closing quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := utf8.RuneCountInString(prefix) + len(sign) + len(num) + 2*len(quote)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && num != "":
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lspaces))
	b.WriteString(quote)
	b.WriteString(prefix)
	b.WriteString(sign)
	b.WriteString(strings.Repeat("0", lzeros))
	b.WriteString(num)
	b.WriteString(quote)
	b.WriteString(strings.Repeat(" ", tspaces))

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C', 'y', 'Y':
		state.Write([]byte(b.String()))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(cash.Money="))
		state.Write([]byte(m.String()))
		state.Write([]byte(")"))
	}
}

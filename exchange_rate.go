package cash

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// ExchangeRate is the price of one major unit of the base currency expressed
// in major units of the quote currency. It converts in one direction only.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where [XXX]
// indicates an unknown currency.
// Rates are values and can be shared between goroutines.
type ExchangeRate struct {
	base  Currency // sold
	quote Currency // bought
	value decimal.Decimal
}

// NewExchRate returns the rate at which base is exchanged for quote.
// Unlike amounts, rates are never rounded.
//
// NewExchRate returns an error if:
//   - the rate is not positive;
//   - the currencies are the same and the rate is not 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v must be positive", rate)
	}
	if base.Equal(quote) && rate.Cmp(rate.One()) != 0 {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v/%v must be equal to 1", base, quote)
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote currency: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	return NewExchRate(b, q, d)
}

// MustParseExchRate is like [ParseExchRate] but panics on error.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency sold at this rate.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency bought at this rate.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the rate as a decimal.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// Mul scales the rate by a positive factor e, keeping both currencies.
//
// Mul returns an error if factor e is not positive or the result has more
// than [decimal.MaxPrec] digits.
func (r ExchangeRate) Mul(e decimal.Decimal) (ExchangeRate, error) {
	if !e.IsPos() {
		return ExchangeRate{}, fmt.Errorf("computing [%v * %v]: factor must be positive", r, e)
	}
	d, err := r.value.Mul(e)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	return NewExchRate(r.Base(), r.Quote(), d)
}

// Inv returns the (possibly rounded) inverse of the exchange rate.
//
// Inv returns an error if the rate is zero, which is only possible for the
// zero value.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	if r.value.IsZero() {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, errDivisionByZero)
	}
	d, err := r.value.One().Quo(r.value)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.Quote(), r.Base(), d)
}

// Conv returns amount m converted from the base currency to the quote currency.
// See function [Convert] for how the result is rounded.
//
// Conv returns an error wrapping [ErrCurrencyMismatch] if the currency of m
// is not the base currency.
func (r ExchangeRate) Conv(ctx context.Context, m Money, round RoundFunc) (Money, error) {
	if !m.Curr().Equal(r.Base()) {
		return Money{}, fmt.Errorf("converting %v at %v: %w", m, r, ErrCurrencyMismatch)
	}
	return Convert(ctx, m, r.Quote(), r.value, round)
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.Base().Equal(r.Base()) && q.Quote().Equal(r.Quote())
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "USD/EUR 0.9123".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().Code() + "/" + r.Quote().Code() + " " + r.value.String()
}

// Format implements [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: USD/EUR 1.2345
//	%q:    "USD/EUR 1.2345"
//	%f:     1.2345
//	%c:     USD/EUR
//
// The '-' format flag can be used with all verbs.
// The '0' format flag can be used with all verbs except %c.
//
// Precision is only supported for the %f verb.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	// Rate
	num := ""
	switch verb {
	case 'c', 'C':
		// skip
	case 'f', 'F':
		d := r.value
		if p, ok := state.Precision(); ok {
			if p < d.Scale() {
				d = d.Round(p)
			} else {
				d = d.Pad(p)
			}
		}
		num = d.String()
	default:
		num = r.value.String()
	}

	// Currency pair
	pair := ""
	switch verb {
	case 'f', 'F':
		// skip
	case 'c', 'C':
		pair = r.Base().Code() + "/" + r.Quote().Code()
	default:
		pair = r.Base().Code() + "/" + r.Quote().Code() + " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := utf8.RuneCountInString(pair) + len(num) + 2*len(quote)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	text := strings.Repeat(" ", lspaces) + quote + pair + strings.Repeat("0", lzeros) + num + quote + strings.Repeat(" ", tspaces)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(cash.ExchangeRate="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

package cash

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/govalues/decimal"
)

// Config is an immutable set of defaults for constructing and exchanging
// monetary values.
// The zero value uses [XXX], no bank, [HalfEven] rounding and [Exact] precision.
type Config struct {
	Currency  Currency     // currency of amounts created without one
	Bank      Bank         // bank used by Config.Exchange, nil refuses all conversions
	Mode      RoundingMode // rounding mode when no scope is active, see RoundingModeFrom
	Precision Precision    // precision of amounts created with Config.FromMajor
}

var defaultConfig atomic.Pointer[Config]

// Default returns the process-wide configuration.
func Default() Config {
	if c := defaultConfig.Load(); c != nil {
		return *c
	}
	return Config{}
}

// SetDefault replaces the process-wide configuration and returns the previous one.
// It is meant to be called during program initialization, or deferred to
// restore the previous value in tests; goroutines running concurrently
// may observe either configuration.
func SetDefault(c Config) Config {
	old := defaultConfig.Swap(&c)
	if old == nil {
		return Config{}
	}
	return *old
}

// Context returns a copy of ctx with the configured mode active.
// See also function [WithRoundingMode].
func (c Config) Context(ctx context.Context) context.Context {
	return WithRoundingMode(ctx, c.Mode)
}

// Money returns an amount of minor units in the configured currency.
func (c Config) Money(units int64) Money {
	return NewMoney(c.Currency, units)
}

// FromMajor converts major units to an amount in the configured currency,
// rounding with the configured mode unless the configured precision is [Infinite].
func (c Config) FromMajor(major decimal.Decimal) (Money, error) {
	return NewMoneyFromMajor(c.Context(context.Background()), c.Currency, major, c.Precision)
}

// Exchange converts amount m to currency to using the configured bank and
// the rounding mode active in ctx.
// Amounts already in currency to are returned unchanged.
//
// Exchange returns an error wrapping [ErrConversionDisallowed] if no bank
// is configured.
func (c Config) Exchange(ctx context.Context, m Money, to Currency) (Money, error) {
	switch {
	case m.Curr().Equal(to):
		return m, nil
	case c.Bank == nil:
		return Money{}, fmt.Errorf("exchanging %v to %v: no bank configured: %w", m, to, ErrConversionDisallowed)
	}
	return c.Bank.Exchange(ctx, m, to, nil)
}

// Package feed implements a [cash.Bank] backed by a live exchange rate feed.
//
// A [Source] loads rates over the network, [Cache] keeps them for a while,
// and [Bank] uses them to exchange amounts:
//
//	src := feed.NewHTTPSource(feed.WithLogger(logger))
//	b := feed.NewBank(feed.Cache(src, time.Minute))
package feed

import (
	"context"

	"github.com/govalues/cash"
	"github.com/govalues/decimal"
)

// Rates maps currency codes to the price of one major unit of the base
// currency in major units of that currency.
// Rates returned by a Source must not be modified.
type Rates map[string]decimal.Decimal

// Source loads the current exchange rates of a base currency.
type Source interface {
	Rates(ctx context.Context, base cash.Currency) (Rates, error)
}

package feed

import (
	"context"
	"fmt"

	"github.com/govalues/cash"
)

// Bank is a [cash.Bank] that exchanges amounts at the rates of a Source.
type Bank struct {
	src Source
}

// NewBank returns a bank that asks src for rates on every exchange.
// Wrap src with [Cache] to avoid a request per exchange.
func NewBank(src Source) *Bank {
	return &Bank{src: src}
}

// Exchange converts m to currency to, see [cash.Bank].
// Amounts already in currency to are returned unchanged.
//
// Exchange returns an error wrapping [cash.ErrUnknownRate] if the source
// has no rate for currency to.
func (b *Bank) Exchange(ctx context.Context, m cash.Money, to cash.Currency, round cash.RoundFunc) (cash.Money, error) {
	if m.Curr().Equal(to) {
		return m, nil
	}
	rates, err := b.src.Rates(ctx, m.Curr())
	if err != nil {
		return cash.Money{}, fmt.Errorf("exchanging %v to %v: %w", m, to, err)
	}
	rate, ok := rates[to.Code()]
	if !ok {
		return cash.Money{}, fmt.Errorf("exchanging %v to %v: %w", m, to, cash.ErrUnknownRate)
	}
	return cash.Convert(ctx, m, to, rate, round)
}

package bank

import (
	"context"
	"fmt"

	"github.com/govalues/cash"
)

// SingleCurrency is a [cash.Bank] that refuses every conversion.
// It is useful for applications that must never mix currencies.
type SingleCurrency struct{}

// Exchange returns m unchanged if it is already in currency to, and an error
// wrapping [cash.ErrConversionDisallowed] otherwise.
func (SingleCurrency) Exchange(_ context.Context, m cash.Money, to cash.Currency, _ cash.RoundFunc) (cash.Money, error) {
	if !m.Curr().Equal(to) {
		return cash.Money{}, fmt.Errorf("exchanging %v to %v: %w", m, to, cash.ErrConversionDisallowed)
	}
	return m, nil
}

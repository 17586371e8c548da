package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/govalues/cash"
	"github.com/govalues/decimal"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format of a rate table.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// pair is the key of a rate, made of upper-case currency codes.
type pair struct {
	from, to string
}

func (p pair) String() string {
	return p.from + "_TO_" + p.to
}

func parsePair(key string) (pair, error) {
	from, to, ok := strings.Cut(strings.ToUpper(key), "_TO_")
	if !ok || from == "" || to == "" {
		return pair{}, fmt.Errorf("rate key %q is not in FROM_TO_TO form", key)
	}
	return pair{from: from, to: to}, nil
}

// VariableExchange is a [cash.Bank] backed by a table of exchange rates that
// can be changed at any time.
// If the table has no rate from one currency to another but has the opposite
// rate, the inverse of the opposite rate is used.
// VariableExchange is safe for concurrent use by multiple goroutines.
type VariableExchange struct {
	mu    sync.RWMutex
	rates map[pair]decimal.Decimal
	round cash.RoundFunc
}

// Option configures a VariableExchange.
type Option func(*VariableExchange)

// WithRoundFunc sets the rounding function used by Exchange when the caller
// does not pass one.
func WithRoundFunc(f cash.RoundFunc) Option {
	return func(b *VariableExchange) {
		b.round = f
	}
}

// NewVariableExchange returns a bank with an empty rate table.
func NewVariableExchange(opts ...Option) *VariableExchange {
	b := &VariableExchange{
		rates: map[pair]decimal.Decimal{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRate stores the rate, replacing any rate between the same currencies.
func (b *VariableExchange) AddRate(r cash.ExchangeRate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rates[pair{from: r.Base().Code(), to: r.Quote().Code()}] = r.Decimal()
}

// SetRate stores the price of one major unit of from in major units of to.
//
// SetRate returns an error if the rate is not positive.
func (b *VariableExchange) SetRate(from, to cash.Currency, rate decimal.Decimal) error {
	r, err := cash.NewExchRate(from, to, rate)
	if err != nil {
		return fmt.Errorf("setting rate: %w", err)
	}
	b.AddRate(r)
	return nil
}

// GetRate returns the rate stored from one currency to another.
// Inverse rates are not considered.
func (b *VariableExchange) GetRate(from, to cash.Currency) (decimal.Decimal, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	d, ok := b.rates[pair{from: from.Code(), to: to.Code()}]
	return d, ok
}

// Rates returns the stored rates sorted by currency codes.
// Rates between currencies that are no longer registered are skipped.
func (b *VariableExchange) Rates() []cash.ExchangeRate {
	b.mu.RLock()
	keys := make([]pair, 0, len(b.rates))
	for k := range b.rates {
		keys = append(keys, k)
	}
	rates := make(map[pair]decimal.Decimal, len(b.rates))
	for k, v := range b.rates {
		rates[k] = v
	}
	b.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	res := make([]cash.ExchangeRate, 0, len(keys))
	for _, k := range keys {
		r, err := cash.ParseExchRate(k.from, k.to, rates[k].String())
		if err != nil {
			continue
		}
		res = append(res, r)
	}
	return res
}

// Exchange converts m to currency to, see [cash.Bank].
// Amounts already in currency to are returned unchanged.
//
// Exchange returns an error wrapping [cash.ErrUnknownRate] if neither the
// rate nor the opposite rate is stored.
func (b *VariableExchange) Exchange(ctx context.Context, m cash.Money, to cash.Currency, round cash.RoundFunc) (cash.Money, error) {
	if m.Curr().Equal(to) {
		return m, nil
	}
	if round == nil {
		round = b.round
	}
	rate, err := b.rate(m.Curr(), to)
	if err != nil {
		return cash.Money{}, fmt.Errorf("exchanging %v to %v: %w", m, to, err)
	}
	return cash.Convert(ctx, m, to, rate, round)
}

func (b *VariableExchange) rate(from, to cash.Currency) (decimal.Decimal, error) {
	if d, ok := b.GetRate(from, to); ok {
		return d, nil
	}
	if d, ok := b.GetRate(to, from); ok {
		inv, err := d.One().Quo(d)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("inverting %v: %w", d, err)
		}
		return inv, nil
	}
	return decimal.Decimal{}, cash.ErrUnknownRate
}

// Export writes the rate table to w as a map from keys such as "USD_TO_EUR"
// to decimal strings.
func (b *VariableExchange) Export(w io.Writer, f Format) error {
	b.mu.RLock()
	table := make(map[string]string, len(b.rates))
	for k, v := range b.rates {
		table[k.String()] = v.String()
	}
	b.mu.RUnlock()

	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(table); err != nil {
			return fmt.Errorf("encoding rates: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(table); err != nil {
			return fmt.Errorf("encoding rates: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding rates: %w", err)
		}
	default:
		return fmt.Errorf("format %q is not supported", f)
	}
	return nil
}

// Import reads a rate table written by Export and stores its rates.
// Either all rates are stored or none.
func (b *VariableExchange) Import(r io.Reader, f Format) error {
	var table map[string]string
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&table); err != nil {
			return fmt.Errorf("decoding rates: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&table); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding rates: %w", err)
		}
	default:
		return fmt.Errorf("format %q is not supported", f)
	}

	rates := make(map[pair]decimal.Decimal, len(table))
	for k, v := range table {
		p, err := parsePair(k)
		if err != nil {
			return fmt.Errorf("decoding rates: %w", err)
		}
		d, err := decimal.Parse(v)
		if err != nil {
			return fmt.Errorf("decoding rate %v: %w", p, err)
		}
		if !d.IsPos() {
			return fmt.Errorf("decoding rate %v: rate %v must be positive", p, d)
		}
		rates[p] = d
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for k, v := range rates {
		b.rates[k] = v
	}
	return nil
}

package cash

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry maps currency codes to currencies.
// Lookups are case-insensitive and also accept ISO 4217 numeric codes.
//
// A registry is usually filled once during program initialization and only
// read afterwards, but it is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu    sync.RWMutex
	codes map[string]Currency
	nums  map[string]string // numeric code -> alphabetic code
}

// NewRegistry returns a registry that contains the given currencies.
// A later currency with the same code replaces an earlier one.
func NewRegistry(currs ...Currency) *Registry {
	r := &Registry{
		codes: make(map[string]Currency, len(currs)),
		nums:  make(map[string]string, len(currs)),
	}
	for _, c := range currs {
		r.put(c)
	}
	return r
}

// defaultRegistry is seeded with the built-in ISO 4217 table.
var defaultRegistry = NewRegistry(builtinCurrencies...)

// DefaultRegistry returns the registry used by [ParseCurr] and [RegisterCurrency].
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup returns the currency registered under the given alphabetic or
// numeric code.
//
// Lookup returns an error wrapping [ErrUnknownCurrency] if nothing is
// registered under the code.
func (r *Registry) Lookup(code string) (Currency, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.codes[key]; ok {
		return c, nil
	}
	if alpha, ok := r.nums[key]; ok {
		return r.codes[alpha], nil
	}
	return Currency{}, fmt.Errorf("looking up %q: %w", code, ErrUnknownCurrency)
}

// Register adds a currency to the registry or replaces the currency with
// the same code.
//
// Register returns an error if the currency is the zero value.
func (r *Registry) Register(c Currency) error {
	if c.code == "" {
		return fmt.Errorf("registering %v: zero currency", c)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(c)
	return nil
}

func (r *Registry) put(c Currency) {
	if old, ok := r.codes[c.code]; ok && old.num != "" {
		delete(r.nums, old.num)
	}
	r.codes[c.code] = c
	if c.num != "" {
		r.nums[c.num] = c.code
	}
}

// Currencies returns the registered currencies sorted by code.
func (r *Registry) Currencies() []Currency {
	r.mu.RLock()
	res := make([]Currency, 0, len(r.codes))
	for _, c := range r.codes {
		res = append(res, c)
	}
	r.mu.RUnlock()
	sort.Slice(res, func(i, j int) bool {
		return res[i].code < res[j].code
	})
	return res
}

// Load decodes a list of currency records and registers them.
// The input is YAML; since JSON is a subset of YAML, JSON input works too:
//
//	- code: XBT
//	  name: Bitcoin
//	  exponent: 8
//	  subunit_to_unit: 100000000
//	  symbol: ₿
//
// Either all records are registered or none.
func (r *Registry) Load(in io.Reader) error {
	var infos []CurrencyInfo
	dec := yaml.NewDecoder(in)
	if err := dec.Decode(&infos); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding currencies: %w", err)
	}
	currs := make([]Currency, 0, len(infos))
	for i, info := range infos {
		c, err := NewCurrency(info)
		if err != nil {
			return fmt.Errorf("decoding currency #%v: %w", i, err)
		}
		currs = append(currs, c)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range currs {
		r.put(c)
	}
	return nil
}

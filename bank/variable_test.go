package bank

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/govalues/cash"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableExchange_Exchange(t *testing.T) {
	ctx := context.Background()
	b := NewVariableExchange()
	require.NoError(t, b.SetRate(cash.USD, cash.EUR, decimal.MustParse("0.8")))

	tests := []struct {
		name string
		m    cash.Money
		to   cash.Currency
		want cash.Money
	}{
		{"direct", cash.NewMoney(cash.USD, 100), cash.EUR, cash.NewMoney(cash.EUR, 80)},
		{"inverse", cash.NewMoney(cash.EUR, 80), cash.USD, cash.NewMoney(cash.USD, 100)},
		{"same currency", cash.NewMoney(cash.USD, 100), cash.USD, cash.NewMoney(cash.USD, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Exchange(ctx, tt.m, tt.to, nil)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}

	t.Run("unknown rate", func(t *testing.T) {
		_, err := b.Exchange(ctx, cash.NewMoney(cash.USD, 100), cash.JPY, nil)
		assert.ErrorIs(t, err, cash.ErrUnknownRate)
	})
}

func TestVariableExchange_Rounding(t *testing.T) {
	ctx := context.Background()
	m := cash.NewMoney(cash.USD, 100)

	b := NewVariableExchange()
	b.AddRate(cash.MustParseExchRate("USD", "JPY", "151.5"))

	got, err := b.Exchange(ctx, m, cash.JPY, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(cash.NewMoney(cash.JPY, 152)), "got %v", got)

	got, err = b.Exchange(cash.WithRoundingMode(ctx, cash.Down), m, cash.JPY, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(cash.NewMoney(cash.JPY, 151)), "got %v", got)

	got, err = b.Exchange(ctx, m, cash.JPY, cash.RoundWith(cash.Ceiling))
	require.NoError(t, err)
	assert.True(t, got.Equal(cash.NewMoney(cash.JPY, 152)), "got %v", got)

	floor := NewVariableExchange(WithRoundFunc(cash.RoundWith(cash.Floor)))
	floor.AddRate(cash.MustParseExchRate("USD", "JPY", "151.5"))
	got, err = floor.Exchange(ctx, m, cash.JPY, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(cash.NewMoney(cash.JPY, 151)), "got %v", got)
}

func TestVariableExchange_Rates(t *testing.T) {
	b := NewVariableExchange()
	assert.Error(t, b.SetRate(cash.USD, cash.EUR, decimal.MustParse("0")))
	require.NoError(t, b.SetRate(cash.USD, cash.EUR, decimal.MustParse("0.9")))
	require.NoError(t, b.SetRate(cash.EUR, cash.GBP, decimal.MustParse("0.85")))
	require.NoError(t, b.SetRate(cash.USD, cash.EUR, decimal.MustParse("0.91")))

	d, ok := b.GetRate(cash.USD, cash.EUR)
	assert.True(t, ok)
	assert.Equal(t, "0.91", d.String())

	_, ok = b.GetRate(cash.EUR, cash.USD)
	assert.False(t, ok)

	rates := b.Rates()
	require.Len(t, rates, 2)
	assert.Equal(t, "EUR/GBP 0.85", rates[0].String())
	assert.Equal(t, "USD/EUR 0.91", rates[1].String())
}

func TestVariableExchange_ExportImport(t *testing.T) {
	for _, f := range []Format{JSON, YAML} {
		t.Run(string(f), func(t *testing.T) {
			src := NewVariableExchange()
			require.NoError(t, src.SetRate(cash.USD, cash.EUR, decimal.MustParse("0.9")))
			require.NoError(t, src.SetRate(cash.USD, cash.JPY, decimal.MustParse("151.25")))

			var buf bytes.Buffer
			require.NoError(t, src.Export(&buf, f))
			assert.Contains(t, buf.String(), "USD_TO_EUR")

			dst := NewVariableExchange()
			require.NoError(t, dst.Import(&buf, f))
			assert.Equal(t, src.Rates(), dst.Rates())
		})
	}

	t.Run("json input", func(t *testing.T) {
		b := NewVariableExchange()
		require.NoError(t, b.Import(strings.NewReader(`{"usd_to_eur": "0.9"}`), JSON))
		d, ok := b.GetRate(cash.USD, cash.EUR)
		assert.True(t, ok)
		assert.Equal(t, "0.9", d.String())
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"key":      `{"USDEUR": "0.9"}`,
			"rate":     `{"USD_TO_EUR": "abc"}`,
			"negative": `{"USD_TO_EUR": "-1"}`,
			"syntax":   `{`,
		}
		for name, in := range tests {
			t.Run(name, func(t *testing.T) {
				b := NewVariableExchange()
				assert.Error(t, b.Import(strings.NewReader(in), JSON))
				assert.Empty(t, b.Rates())
			})
		}
		assert.Error(t, NewVariableExchange().Export(&bytes.Buffer{}, Format("xml")))
		assert.Error(t, NewVariableExchange().Import(strings.NewReader(""), Format("xml")))
	})
}

func TestVariableExchange_Concurrent(t *testing.T) {
	ctx := context.Background()
	b := NewVariableExchange()
	require.NoError(t, b.SetRate(cash.USD, cash.EUR, decimal.MustParse("0.9")))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = b.SetRate(cash.USD, cash.EUR, decimal.MustParse("0.9"))
		}()
		go func() {
			defer wg.Done()
			_, err := b.Exchange(ctx, cash.NewMoney(cash.USD, 100), cash.EUR, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

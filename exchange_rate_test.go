package cash

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/govalues/decimal"
)

func TestNewExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, err := NewExchRate(USD, EUR, decimal.MustParse("0.9123456789"))
		if err != nil {
			t.Fatalf("NewExchRate failed: %v", err)
		}
		if r.Base() != USD || r.Quote() != EUR {
			t.Errorf("NewExchRate(USD, EUR) = %v", r)
		}
		if got := r.String(); got != "USD/EUR 0.9123456789" {
			t.Errorf("%v.String() = %q", r, got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote Currency
			rate        string
		}{
			"zero":     {USD, EUR, "0"},
			"negative": {USD, EUR, "-1"},
			"same":     {USD, USD, "2"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewExchRate(tt.base, tt.quote, decimal.MustParse(tt.rate))
				if err == nil {
					t.Errorf("NewExchRate(%v, %v, %v) did not fail", tt.base, tt.quote, tt.rate)
				}
			})
		}
	})
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, err := ParseExchRate("usd", "jpy", "151.25")
		if err != nil {
			t.Fatalf("ParseExchRate failed: %v", err)
		}
		if got := r.String(); got != "USD/JPY 151.25" {
			t.Errorf("ParseExchRate(usd, jpy, 151.25) = %q", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := [][3]string{
			{"UUU", "USD", "1"},
			{"USD", "UUU", "1"},
			{"USD", "EUR", "abc"},
			{"USD", "EUR", "0"},
		}
		for _, tt := range tests {
			if _, err := ParseExchRate(tt[0], tt[1], tt[2]); err == nil {
				t.Errorf("ParseExchRate(%q, %q, %q) did not fail", tt[0], tt[1], tt[2])
			}
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseExchRate(\"USD\", \"EUR\", \"0\") did not panic")
		}
	}()
	MustParseExchRate("USD", "EUR", "0")
}

func TestExchangeRate_Inv(t *testing.T) {
	r := MustParseExchRate("EUR", "USD", "1.25")
	got, err := r.Inv()
	if err != nil {
		t.Fatalf("%v.Inv() failed: %v", r, err)
	}
	if want := MustParseExchRate("USD", "EUR", "0.8"); !got.SameCurr(want) || got.Decimal().Cmp(want.Decimal()) != 0 {
		t.Errorf("%v.Inv() = %v, want %v", r, got, want)
	}
	if _, err := (ExchangeRate{}).Inv(); err == nil {
		t.Errorf("ExchangeRate{}.Inv() did not fail")
	}
}

func TestExchangeRate_Mul(t *testing.T) {
	r := MustParseExchRate("EUR", "USD", "1.25")
	got, err := r.Mul(decimal.MustParse("2"))
	if err != nil {
		t.Fatalf("%v.Mul(2) failed: %v", r, err)
	}
	if got.Decimal().Cmp(decimal.MustParse("2.5")) != 0 {
		t.Errorf("%v.Mul(2) = %v, want 2.5", r, got)
	}
	if _, err := r.Mul(decimal.MustParse("-1")); err == nil {
		t.Errorf("%v.Mul(-1) did not fail", r)
	}
}

func TestExchangeRate_Conv(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r     ExchangeRate
			m     Money
			mode  RoundingMode
			round RoundFunc
			want  Money
		}{
			{MustParseExchRate("USD", "EUR", "0.9"), NewMoney(USD, 100), HalfEven, nil, NewMoney(EUR, 90)},
			{MustParseExchRate("USD", "JPY", "151.25"), NewMoney(USD, 100), HalfEven, nil, NewMoney(JPY, 151)},
			{MustParseExchRate("USD", "JPY", "151.5"), NewMoney(USD, 100), HalfEven, nil, NewMoney(JPY, 152)},
			{MustParseExchRate("USD", "JPY", "151.5"), NewMoney(USD, 100), Down, nil, NewMoney(JPY, 151)},
			{MustParseExchRate("USD", "JPY", "151.5"), NewMoney(USD, 100), HalfEven, RoundWith(Floor), NewMoney(JPY, 151)},
			{MustParseExchRate("JPY", "USD", "0.0066"), NewMoney(JPY, 1000), HalfEven, nil, NewMoney(USD, 660)},
			{MustParseExchRate("USD", "OMR", "0.385"), NewMoney(USD, 100), HalfEven, nil, NewMoney(OMR, 385)},
			{MustParseExchRate("USD", "EUR", "0.6666666666666666667"), NewMoney(USD, 3), Ceiling, nil, NewMoney(EUR, 3)},
			{MustParseExchRate("USD", "EUR", "0.6666666666666666667"), NewMoney(USD, 3), Down, nil, NewMoney(EUR, 2)},
			{MustParseExchRate("USD", "MGA", "0.6666666666666666667"), NewMoney(USD, 300), Floor, nil, NewMoney(MGA, 10)},
		}
		for _, tt := range tests {
			got, err := tt.r.Conv(WithRoundingMode(ctx, tt.mode), tt.m, tt.round)
			if err != nil {
				t.Errorf("%v.Conv(%q) failed: %v", tt.r, tt.m, err)
				continue
			}
			if !got.Equal(tt.want) {
				t.Errorf("%v.Conv(%q) = %q, want %q", tt.r, tt.m, got, tt.want)
			}
		}
	})

	t.Run("infinite", func(t *testing.T) {
		r := MustParseExchRate("USD", "EUR", "0.915")
		m, err := NewMoneyFromUnits(ctx, USD, decimal.MustParse("1"), Infinite)
		if err != nil {
			t.Fatalf("NewMoneyFromUnits failed: %v", err)
		}
		got, err := r.Conv(ctx, m, nil)
		if err != nil {
			t.Fatalf("%v.Conv(%q) failed: %v", r, m, err)
		}
		if got.Units().Cmp(decimal.MustParse("0.915")) != 0 || got.Precision() != Infinite {
			t.Errorf("%v.Conv(%q) = %v units, %v", r, m, got.Units(), got.Precision())
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseExchRate("USD", "EUR", "0.9")
		m := NewMoney(GBP, 100)
		if _, err := r.Conv(ctx, m, nil); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("%v.Conv(%q) error = %v, want %v", r, m, err, ErrCurrencyMismatch)
		}
		half := func(units decimal.Decimal) decimal.Decimal {
			return decimal.MustParse("0.5")
		}
		if _, err := r.Conv(ctx, NewMoney(USD, 100), half); err == nil {
			t.Errorf("%v.Conv() with fractional round did not fail", r)
		}
	})
}

func TestRoundWith(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			mode  RoundingMode
			units string
			want  string
		}{
			{HalfEven, "2.5", "2"},
			{HalfUp, "2.5", "3"},
			{Floor, "-2.1", "-3"},
			{Ceiling, "2.1", "3"},
		}
		for _, tt := range tests {
			got := RoundWith(tt.mode)(decimal.MustParse(tt.units))
			if want := decimal.MustParse(tt.want); got.Cmp(want) != 0 {
				t.Errorf("RoundWith(%v)(%v) = %v, want %v", tt.mode, tt.units, got, want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("RoundWith(42) did not panic")
			}
		}()
		RoundWith(RoundingMode(42))
	})
}

func TestExchangeRate_Format(t *testing.T) {
	r := MustParseExchRate("USD", "EUR", "1.2345")
	tests := []struct {
		format, want string
	}{
		{"%T", "cash.ExchangeRate"},
		{"%s", "USD/EUR 1.2345"},
		{"%v", "USD/EUR 1.2345"},
		{"%q", "\"USD/EUR 1.2345\""},
		{"%f", "1.2345"},
		{"%.2f", "1.23"},
		{"%.6f", "1.234500"},
		{"%8f", "  1.2345"},
		{"%08f", "001.2345"},
		{"%c", "USD/EUR"},
		{"%-9c", "USD/EUR  "},
		{"%16v", "  USD/EUR 1.2345"},
		{"%b", "%!b(cash.ExchangeRate=USD/EUR 1.2345)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, r)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, r, got, tt.want)
		}
	}
}

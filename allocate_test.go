package cash

import (
	"context"
	"errors"
	"testing"

	"github.com/govalues/decimal"
	"pgregory.net/rapid"
)

func weightsOf(ws ...string) []decimal.Decimal {
	res := make([]decimal.Decimal, len(ws))
	for i, w := range ws {
		res[i] = decimal.MustParse(w)
	}
	return res
}

func sumOf(t testing.TB, c Currency, parts []Money) Money {
	t.Helper()
	sum := NewMoney(c, 0)
	for _, p := range parts {
		var err error
		sum, err = sum.Add(p)
		if err != nil {
			t.Fatalf("%q.Add(%q) failed: %v", sum, p, err)
		}
	}
	return sum
}

func TestMoney_Allocate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m       Money
			weights []string
			want    []int64
		}{
			{NewMoney(USD, 100), []string{"1", "1", "1"}, []int64{34, 33, 33}},
			{NewMoney(USD, 5), []string{"3", "7"}, []int64{2, 3}},
			{NewMoney(USD, 5), []string{"7", "3"}, []int64{4, 1}},
			{NewMoney(USD, 100), []string{"0.5", "0.25", "0.25"}, []int64{50, 25, 25}},
			{NewMoney(USD, 100), []string{"1", "0"}, []int64{100, 0}},
			{NewMoney(USD, 1), []string{"1", "1", "1"}, []int64{1, 0, 0}},
			{NewMoney(USD, -100), []string{"1", "1", "1"}, []int64{-34, -33, -33}},
			{NewMoney(USD, 0), []string{"1", "2"}, []int64{0, 0}},
			{NewMoney(JPY, 1000), []string{"33.3", "33.3", "33.4"}, []int64{333, 333, 334}},
		}
		for _, tt := range tests {
			got, err := tt.m.Allocate(weightsOf(tt.weights...)...)
			if err != nil {
				t.Errorf("%q.Allocate(%v) failed: %v", tt.m, tt.weights, err)
				continue
			}
			if len(got) != len(tt.want) {
				t.Errorf("%q.Allocate(%v) returned %v parts, want %v", tt.m, tt.weights, len(got), len(tt.want))
				continue
			}
			for i := range got {
				if want := NewMoney(tt.m.Curr(), tt.want[i]); !got[i].Equal(want) {
					t.Errorf("%q.Allocate(%v)[%v] = %q, want %q", tt.m, tt.weights, i, got[i], want)
				}
			}
			if sum := sumOf(t, tt.m.Curr(), got); !sum.Equal(tt.m) {
				t.Errorf("sum of %q.Allocate(%v) = %q", tt.m, tt.weights, sum)
			}
		}
	})

	t.Run("infinite", func(t *testing.T) {
		tests := []struct {
			major string
			want  []string
		}{
			{"1", []string{"34", "33", "33"}},
			{"1.00", []string{"34", "33", "33"}},
			{"0.001", []string{"0.1", "0", "0"}},
			{"0.0010", []string{"0.1", "0", "0"}},
			{"0.02345", []string{"1.345", "1", "0"}},
			{"-1.0050", []string{"-34.5", "-33", "-33"}},
		}
		ctx := context.Background()
		for _, tt := range tests {
			m, err := NewMoneyFromMajor(ctx, USD, decimal.MustParse(tt.major), Infinite)
			if err != nil {
				t.Fatalf("NewMoneyFromMajor(%v) failed: %v", tt.major, err)
			}
			got, err := m.Split(3)
			if err != nil {
				t.Errorf("%q.Split(3) failed: %v", m, err)
				continue
			}
			for i := range tt.want {
				if got[i].Units().Cmp(decimal.MustParse(tt.want[i])) != 0 {
					t.Errorf("%q.Split(3)[%v].Units() = %v, want %v", m, i, got[i].Units(), tt.want[i])
				}
				if got[i].Precision() != Infinite {
					t.Errorf("%q.Split(3)[%v].Precision() = %v, want %v", m, i, got[i].Precision(), Infinite)
				}
			}
			if sum := sumOf(t, USD, got); !sum.Equal(m) {
				t.Errorf("sum of %q.Split(3) = %q", m, sum)
			}
		}
	})

	t.Run("equal amounts", func(t *testing.T) {
		ctx := context.Background()
		inf, err := NewMoneyFromMajor(ctx, USD, decimal.MustParse("1.00"), Infinite)
		if err != nil {
			t.Fatalf("NewMoneyFromMajor failed: %v", err)
		}
		exact := NewMoney(USD, 100)
		if !inf.Equal(exact) {
			t.Fatalf("%q.Equal(%q) = false", inf, exact)
		}
		a, err := inf.Allocate(weightsOf("3", "7")...)
		if err != nil {
			t.Fatalf("%q.Allocate failed: %v", inf, err)
		}
		b, err := exact.Allocate(weightsOf("3", "7")...)
		if err != nil {
			t.Fatalf("%q.Allocate failed: %v", exact, err)
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				t.Errorf("part %v: %q and %q differ", i, a[i], b[i])
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]string{
			"empty":    {},
			"negative": {"1", "-1"},
			"zero":     {"0", "0"},
		}
		m := NewMoney(USD, 100)
		for name, ws := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := m.Allocate(weightsOf(ws...)...)
				if !errors.Is(err, ErrInvalidAllocation) {
					t.Errorf("%q.Allocate(%v) error = %v, want %v", m, ws, err, ErrInvalidAllocation)
				}
			})
		}
	})
}

func TestMoney_Split(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    Money
			n    int
			want []int64
		}{
			{NewMoney(USD, 100), 2, []int64{50, 50}},
			{NewMoney(USD, 100), 3, []int64{34, 33, 33}},
			{NewMoney(USD, 2), 3, []int64{1, 1, 0}},
			{NewMoney(USD, 100), 1, []int64{100}},
		}
		for _, tt := range tests {
			got, err := tt.m.Split(tt.n)
			if err != nil {
				t.Errorf("%q.Split(%v) failed: %v", tt.m, tt.n, err)
				continue
			}
			if len(got) != len(tt.want) {
				t.Errorf("%q.Split(%v) returned %v parts, want %v", tt.m, tt.n, len(got), len(tt.want))
				continue
			}
			for i := range got {
				if want := NewMoney(tt.m.Curr(), tt.want[i]); !got[i].Equal(want) {
					t.Errorf("%q.Split(%v)[%v] = %q, want %q", tt.m, tt.n, i, got[i], want)
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := NewMoney(USD, 100)
		for _, n := range []int{0, -1} {
			if _, err := m.Split(n); !errors.Is(err, ErrInvalidAllocation) {
				t.Errorf("%q.Split(%v) error = %v, want %v", m, n, err, ErrInvalidAllocation)
			}
		}
	})
}

func TestMoney_AllocateConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		curr := rapid.SampledFrom([]Currency{USD, JPY, OMR, MGA}).Draw(t, "curr")
		units := rapid.Int64Range(-1_000_000_000_000, 1_000_000_000_000).Draw(t, "units")
		raw := rapid.SliceOfN(rapid.IntRange(0, 1000), 1, 12).Draw(t, "weights")

		weights := make([]decimal.Decimal, len(raw))
		positive := false
		for i, w := range raw {
			weights[i] = unitsOf(int64(w))
			positive = positive || w > 0
		}
		if !positive {
			weights[0] = unitsOf(1)
		}

		m := NewMoney(curr, units)
		parts, err := m.Allocate(weights...)
		if err != nil {
			t.Fatalf("%q.Allocate(%v) failed: %v", m, weights, err)
		}
		if len(parts) != len(weights) {
			t.Fatalf("%q.Allocate(%v) returned %v parts, want %v", m, weights, len(parts), len(weights))
		}
		sum := NewMoney(curr, 0)
		for _, p := range parts {
			if !p.SameCurr(m) {
				t.Fatalf("part %q has a different currency than %q", p, m)
			}
			if !p.Units().IsInt() {
				t.Fatalf("part %q has fractional minor units", p)
			}
			sum, err = sum.Add(p)
			if err != nil {
				t.Fatalf("%q.Add(%q) failed: %v", sum, p, err)
			}
		}
		if !sum.Equal(m) {
			t.Fatalf("sum of %q.Allocate(%v) = %q", m, weights, sum)
		}
	})
}

func TestMoney_SplitSpread(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		units := rapid.Int64Range(0, 1_000_000_000).Draw(t, "units")
		n := rapid.IntRange(1, 50).Draw(t, "n")

		m := NewMoney(USD, units)
		parts, err := m.Split(n)
		if err != nil {
			t.Fatalf("%q.Split(%v) failed: %v", m, n, err)
		}
		first, _ := parts[0].MinorUnits()
		for i, p := range parts {
			u, _ := p.MinorUnits()
			if first-u > 1 || u > first {
				t.Fatalf("%q.Split(%v)[%v] = %q, first part is %q", m, n, i, p, parts[0])
			}
		}
	})
}

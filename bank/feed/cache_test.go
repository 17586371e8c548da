package feed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/govalues/cash"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mock struct {
	count int32
	rates Rates
	err   error
}

func (m *mock) Rates(_ context.Context, _ cash.Currency) (Rates, error) {
	atomic.AddInt32(&m.count, 1)
	return m.rates, m.err
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	underlying := &mock{rates: Rates{"EUR": decimal.MustParse("0.9")}}
	s := Cache(underlying, time.Minute, WithClock(clk.Now))

	_, _ = s.Rates(ctx, cash.USD)
	assert.Equal(t, int32(1), atomic.LoadInt32(&underlying.count))

	clk.now = clk.now.Add(30 * time.Second)
	rates, err := s.Rates(ctx, cash.USD)
	require.NoError(t, err)
	assert.Equal(t, "0.9", rates["EUR"].String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&underlying.count))

	_, _ = s.Rates(ctx, cash.EUR)
	assert.Equal(t, int32(2), atomic.LoadInt32(&underlying.count))

	clk.now = clk.now.Add(time.Minute)
	_, _ = s.Rates(ctx, cash.USD)
	assert.Equal(t, int32(3), atomic.LoadInt32(&underlying.count))
}

func TestCache_Error(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	underlying := &mock{err: boom}
	s := Cache(underlying, time.Minute)

	_, err := s.Rates(ctx, cash.USD)
	assert.ErrorIs(t, err, boom)

	// Failures are not cached
	_, _ = s.Rates(ctx, cash.USD)
	assert.Equal(t, int32(2), atomic.LoadInt32(&underlying.count))
}

package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/govalues/cash"
)

// cachingSource decorates a Source with a cache of rates.
type cachingSource struct {
	next Source
	ttl  time.Duration
	now  func() time.Time

	// lock guards entries
	lock    sync.RWMutex
	entries map[string]entry
}

type entry struct {
	rates  Rates
	loaded time.Time
}

// CacheOption configures the source returned by Cache.
type CacheOption func(*cachingSource)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) CacheOption {
	return func(s *cachingSource) {
		s.now = now
	}
}

// Cache returns a source that keeps the rates loaded by next for ttl.
// Concurrent requests for a base that is not cached may each call next.
func Cache(next Source, ttl time.Duration, opts ...CacheOption) Source {
	s := &cachingSource{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]entry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *cachingSource) Rates(ctx context.Context, base cash.Currency) (Rates, error) {
	now := s.now()

	s.lock.RLock()
	e, ok := s.entries[base.Code()]
	s.lock.RUnlock()
	if ok && now.Sub(e.loaded) < s.ttl {
		return e.rates, nil
	}

	rates, err := s.next.Rates(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("refreshing cache [%v]: %w", base, err)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.entries[base.Code()] = entry{rates: rates, loaded: now}
	return rates, nil
}

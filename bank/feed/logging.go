package feed

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/govalues/cash"
)

// loggingSource decorates a Source with logging
type loggingSource struct {
	logger log.Logger
	next   Source
}

// Logging returns a source that logs every request made to next.
func Logging(logger log.Logger, next Source) Source {
	return &loggingSource{
		logger: logger,
		next:   next,
	}
}

func (s *loggingSource) Rates(ctx context.Context, base cash.Currency) (rates Rates, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rates",
			"currency", base,
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates(ctx, base)
}

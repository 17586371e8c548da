package bank

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/govalues/cash"
)

// loggingBank decorates a cash.Bank with logging
type loggingBank struct {
	logger log.Logger
	next   cash.Bank
}

// Logging returns a bank that logs every exchange performed by next.
// Failed exchanges are logged at error level, the rest at debug level.
func Logging(logger log.Logger, next cash.Bank) cash.Bank {
	return &loggingBank{
		logger: logger,
		next:   next,
	}
}

func (b *loggingBank) Exchange(ctx context.Context, m cash.Money, to cash.Currency, round cash.RoundFunc) (res cash.Money, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(b.logger)
		if err != nil {
			logger = level.Error(b.logger)
		}
		logger.Log(
			"method", "exchange",
			"amount", m,
			"to", to,
			"mode", cash.RoundingModeFrom(ctx),
			"result", res,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Exchange(ctx, m, to, round)
}

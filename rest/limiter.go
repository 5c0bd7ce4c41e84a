package rest

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

type limiter struct {
	slots  *semaphore.Weighted
	steady *rate.Limiter
}

func newLimiter(maxConcurrency int64, perSecond float64) *limiter {
	l := &limiter{slots: semaphore.NewWeighted(maxConcurrency)}
	if perSecond > 0 {
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		l.steady = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	return l
}

// acquire takes a slot. The caller must call release once the response body
// has been read.
func (l *limiter) acquire(ctx context.Context) error {
	if err := l.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	if l.steady != nil {
		if err := l.steady.Wait(ctx); err != nil {
			l.slots.Release(1)
			return err
		}
	}
	return nil
}

func (l *limiter) release() {
	l.slots.Release(1)
}

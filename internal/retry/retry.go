// Package retry generates exponential backoff intervals with random jitter.
package retry

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

type Policy struct {
	Base   time.Duration
	Max    time.Duration
	Jitter time.Duration
}

var DefaultPolicy = Policy{
	Base:   1 * time.Second,
	Max:    30 * time.Second,
	Jitter: 1 * time.Second,
}

// Backoff hands out the intervals of one logical call. It is not safe for
// concurrent use.
type Backoff struct {
	rand        *rand.Rand
	jitter      time.Duration
	curInterval time.Duration
	maxInterval time.Duration
}

func (p Policy) Start() *Backoff {
	return &Backoff{
		rand:        sharedRand(),
		jitter:      p.Jitter,
		curInterval: p.Base,
		maxInterval: p.Max,
	}
}

// WithRand replaces the jitter source, for deterministic tests.
func (b *Backoff) WithRand(r *rand.Rand) *Backoff {
	b.rand = r
	return b
}

func (b *Backoff) Next() time.Duration {
	random := time.Duration(0)
	if b.jitter > 0 {
		random = time.Duration(b.rand.Int63n(int64(b.jitter)))
	}

	interval := b.curInterval + random

	b.curInterval *= 2
	if b.curInterval > b.maxInterval {
		b.curInterval = b.maxInterval
	}

	return interval
}

var (
	randOnce sync.Once
	randMu   sync.Mutex
	seed     *rand.Rand
)

// sharedRand gives every Backoff its own source seeded from a shared one, so
// the seeding itself is the only synchronized step.
func sharedRand() *rand.Rand {
	randOnce.Do(func() {
		seed = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	randMu.Lock()
	defer randMu.Unlock()
	return rand.New(rand.NewSource(seed.Int63()))
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Retry calls fn until it succeeds, attempts calls were made, or ctx is done.
func Retry[T any](ctx context.Context, attempts int, fn func(context.Context) (T, error)) (T, error) {
	b := DefaultPolicy.Start()

	for i := 1; ; i++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		if i >= attempts {
			return *new(T), err
		}

		slog.Debug("Retrying...", slog.String("error", err.Error()), slog.Int("attempt", i))

		if err := Sleep(ctx, b.Next()); err != nil {
			return *new(T), err
		}
	}
}

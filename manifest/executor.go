package manifest

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Executor runs blocking file work off the calling goroutine.
type Executor interface {
	Run(ctx context.Context, f func(ctx context.Context) error) error
}

type goroutineExecutor struct{}

// DefaultExecutor starts one goroutine per job.
var DefaultExecutor Executor = goroutineExecutor{}

func (goroutineExecutor) Run(ctx context.Context, f func(ctx context.Context) error) error {
	done := make(chan error, 1)
	go func() {
		done <- f(ctx)
	}()
	return <-done
}

// PoolExecutor runs at most n jobs at once.
type PoolExecutor struct {
	g errgroup.Group
}

func NewPoolExecutor(n int) *PoolExecutor {
	p := &PoolExecutor{}
	p.g.SetLimit(n)
	return p
}

func (p *PoolExecutor) Run(ctx context.Context, f func(ctx context.Context) error) error {
	done := make(chan error, 1)
	p.g.Go(func() error {
		done <- f(ctx)
		return nil
	})
	return <-done
}

// Wait blocks until every submitted job has finished.
func (p *PoolExecutor) Wait() {
	p.g.Wait()
}

// Package iterator provides a single-pass, lazy sequence with the usual
// combinators. Paged API results are exposed through it.
package iterator

import (
	"context"
	"errors"
	"iter"
	"slices"

	"golang.org/x/sync/errgroup"
)

// ErrStopIteration is returned by Next once the sequence is exhausted.
var ErrStopIteration = errors.New("stop iteration")

// Iterator is consumed as it is read. It is not safe for concurrent use.
type Iterator[T any] struct {
	next func() (T, error)
	err  error
}

func New[T any](next func() (T, error)) *Iterator[T] {
	return &Iterator[T]{next: next}
}

func From[T any](items []T) *Iterator[T] {
	i := 0
	return New(func() (T, error) {
		if i >= len(items) {
			var zero T
			return zero, ErrStopIteration
		}
		v := items[i]
		i++
		return v, nil
	})
}

func FromSeq[T any](seq iter.Seq[T]) *Iterator[T] {
	next, stop := iter.Pull(seq)
	return New(func() (T, error) {
		v, ok := next()
		if !ok {
			stop()
			return v, ErrStopIteration
		}
		return v, nil
	})
}

func Empty[T any]() *Iterator[T] {
	return From[T](nil)
}

// Next returns the next item, ErrStopIteration at the end, or the error of
// the underlying source. Errors are sticky.
func (it *Iterator[T]) Next() (T, error) {
	if it.err != nil {
		var zero T
		return zero, it.err
	}
	v, err := it.next()
	if err != nil {
		it.err = err
	}
	return v, err
}

// Err returns the first error other than ErrStopIteration, if any.
func (it *Iterator[T]) Err() error {
	if errors.Is(it.err, ErrStopIteration) {
		return nil
	}
	return it.err
}

func (it *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return New(func() (T, error) {
		for {
			v, err := it.Next()
			if err != nil || pred(v) {
				return v, err
			}
		}
	})
}

func (it *Iterator[T]) Take(n int) *Iterator[T] {
	taken := 0
	return New(func() (T, error) {
		if taken >= n {
			var zero T
			return zero, ErrStopIteration
		}
		taken++
		return it.Next()
	})
}

func (it *Iterator[T]) Skip(n int) *Iterator[T] {
	skipped := false
	return New(func() (T, error) {
		if !skipped {
			skipped = true
			for i := 0; i < n; i++ {
				if v, err := it.Next(); err != nil {
					return v, err
				}
			}
		}
		return it.Next()
	})
}

func (it *Iterator[T]) TakeWhile(pred func(T) bool) *Iterator[T] {
	done := false
	return New(func() (T, error) {
		var zero T
		if done {
			return zero, ErrStopIteration
		}
		v, err := it.Next()
		if err != nil {
			return v, err
		}
		if !pred(v) {
			done = true
			return zero, ErrStopIteration
		}
		return v, nil
	})
}

func (it *Iterator[T]) DropWhile(pred func(T) bool) *Iterator[T] {
	dropping := true
	return New(func() (T, error) {
		for {
			v, err := it.Next()
			if err != nil {
				return v, err
			}
			if dropping && pred(v) {
				continue
			}
			dropping = false
			return v, nil
		}
	})
}

// materialize defers reading the whole source until the first Next call.
func (it *Iterator[T]) materialize(f func([]T) []T) *Iterator[T] {
	var inner *Iterator[T]
	return New(func() (T, error) {
		if inner == nil {
			items, err := it.Collect()
			if err != nil {
				var zero T
				return zero, err
			}
			inner = From(f(items))
		}
		return inner.Next()
	})
}

// Sort yields the items ordered by cmp. It reads the whole source first.
func (it *Iterator[T]) Sort(cmp func(a, b T) int) *Iterator[T] {
	return it.materialize(func(items []T) []T {
		slices.SortStableFunc(items, cmp)
		return items
	})
}

func (it *Iterator[T]) Reversed() *Iterator[T] {
	return it.materialize(func(items []T) []T {
		slices.Reverse(items)
		return items
	})
}

// Union yields the items of it followed by those of other.
func (it *Iterator[T]) Union(other *Iterator[T]) *Iterator[T] {
	first := true
	return New(func() (T, error) {
		if first {
			v, err := it.Next()
			if !errors.Is(err, ErrStopIteration) {
				return v, err
			}
			first = false
		}
		return other.Next()
	})
}

func (it *Iterator[T]) First() (T, error) {
	return it.Next()
}

func (it *Iterator[T]) Last() (T, error) {
	var last T
	found := false
	for {
		v, err := it.Next()
		if errors.Is(err, ErrStopIteration) {
			if !found {
				return last, ErrStopIteration
			}
			return last, nil
		}
		if err != nil {
			return v, err
		}
		last = v
		found = true
	}
}

// Nth returns the item at index n counting from the current position.
func (it *Iterator[T]) Nth(n int) (T, error) {
	return it.Skip(n).Next()
}

func (it *Iterator[T]) ForEach(f func(T)) error {
	for {
		v, err := it.Next()
		if errors.Is(err, ErrStopIteration) {
			return nil
		}
		if err != nil {
			return err
		}
		f(v)
	}
}

// ForEachConcurrent runs f on up to limit items at a time and returns the
// first error. Items are not read past the first failure.
func (it *Iterator[T]) ForEachConcurrent(ctx context.Context, limit int, f func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for ctx.Err() == nil {
		v, err := it.Next()
		if errors.Is(err, ErrStopIteration) {
			break
		}
		if err != nil {
			g.Go(func() error { return err })
			break
		}
		g.Go(func() error {
			return f(ctx, v)
		})
	}
	return g.Wait()
}

func (it *Iterator[T]) All(pred func(T) bool) (bool, error) {
	for {
		v, err := it.Next()
		if errors.Is(err, ErrStopIteration) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if !pred(v) {
			return false, nil
		}
	}
}

func (it *Iterator[T]) Any(pred func(T) bool) (bool, error) {
	for {
		v, err := it.Next()
		if errors.Is(err, ErrStopIteration) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if pred(v) {
			return true, nil
		}
	}
}

func (it *Iterator[T]) Count() (int, error) {
	n := 0
	err := it.ForEach(func(T) { n++ })
	return n, err
}

func (it *Iterator[T]) Collect() ([]T, error) {
	var items []T
	err := it.ForEach(func(v T) { items = append(items, v) })
	return items, err
}

// Seq adapts it to a range-over-func sequence. Iteration stops at the first
// error, which is then available from Err.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func Map[T, U any](it *Iterator[T], f func(T) U) *Iterator[U] {
	return New(func() (U, error) {
		v, err := it.Next()
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	})
}

type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip stops at the end of the shorter iterator.
func Zip[A, B any](a *Iterator[A], b *Iterator[B]) *Iterator[Pair[A, B]] {
	return New(func() (Pair[A, B], error) {
		va, err := a.Next()
		if err != nil {
			return Pair[A, B]{}, err
		}
		vb, err := b.Next()
		if err != nil {
			return Pair[A, B]{}, err
		}
		return Pair[A, B]{First: va, Second: vb}, nil
	})
}

type Indexed[T any] struct {
	Index int
	Value T
}

func Enumerate[T any](it *Iterator[T], start int) *Iterator[Indexed[T]] {
	i := start
	return New(func() (Indexed[T], error) {
		v, err := it.Next()
		if err != nil {
			return Indexed[T]{}, err
		}
		out := Indexed[T]{Index: i, Value: v}
		i++
		return out, nil
	})
}

// CollectAs drains it into whatever collect builds, such as slices.Collect.
func CollectAs[T, C any](it *Iterator[T], collect func(iter.Seq[T]) C) (C, error) {
	c := collect(it.Seq())
	return c, it.Err()
}

// Paged pulls pages from fetch, starting at page start, until it reports no
// more results. Pages are requested only as they are needed.
func Paged[T any](ctx context.Context, start int, fetch func(ctx context.Context, page int) (items []T, hasMore bool, err error)) *Iterator[T] {
	var (
		buf  []T
		page = start
		more = true
	)
	return New(func() (T, error) {
		var zero T
		for len(buf) == 0 {
			if !more {
				return zero, ErrStopIteration
			}
			items, hasMore, err := fetch(ctx, page)
			if err != nil {
				return zero, err
			}
			page++
			more = hasMore && len(items) > 0
			buf = items
		}
		v := buf[0]
		buf = buf[1:]
		return v, nil
	})
}

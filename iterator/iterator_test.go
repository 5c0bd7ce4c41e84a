package iterator

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func numbers(n int) *Iterator[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return From(items)
}

var _ = Describe("Iterator", func() {
	It("should end with ErrStopIteration", func() {
		it := From([]string{"a"})
		v, err := it.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("a"))
		_, err = it.Next()
		Expect(err).To(MatchError(ErrStopIteration))
		Expect(it.Err()).NotTo(HaveOccurred())
	})

	It("should evaluate lazily", func() {
		calls := 0
		got, err := Map(numbers(100), func(v int) int {
			calls++
			return v * 10
		}).Take(3).Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]int{10, 20, 30}))
		Expect(calls).To(BeNumerically("<=", 3))
	})

	It("should chain filters and windows", func() {
		got, err := numbers(10).
			Filter(func(v int) bool { return v%2 == 0 }).
			Skip(1).
			TakeWhile(func(v int) bool { return v < 9 }).
			Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]int{4, 6, 8}))

		got, err = numbers(5).DropWhile(func(v int) bool { return v < 3 }).Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]int{3, 4, 5}))
	})

	It("should sort, reverse and join", func() {
		got, err := From([]int{3, 1, 2}).Sort(cmp.Compare[int]).Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]int{1, 2, 3}))

		got, err = numbers(3).Reversed().Union(numbers(2)).Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]int{3, 2, 1, 1, 2}))
	})

	It("should answer terminal queries", func() {
		Expect(numbers(4).First()).To(Equal(1))
		Expect(numbers(4).Last()).To(Equal(4))
		Expect(numbers(4).Nth(2)).To(Equal(3))
		Expect(numbers(4).Count()).To(Equal(4))
		Expect(numbers(4).All(func(v int) bool { return v > 0 })).To(BeTrue())
		Expect(numbers(4).Any(func(v int) bool { return v > 3 })).To(BeTrue())
		Expect(numbers(4).Any(func(v int) bool { return v > 4 })).To(BeFalse())

		_, err := Empty[int]().Last()
		Expect(err).To(MatchError(ErrStopIteration))
		_, err = numbers(2).Nth(5)
		Expect(err).To(MatchError(ErrStopIteration))
	})

	It("should zip and enumerate", func() {
		zipped, err := Zip(numbers(3), From([]string{"a", "b"})).Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(zipped).To(Equal([]Pair[int, string]{{1, "a"}, {2, "b"}}))

		indexed, err := Enumerate(From([]string{"x", "y"}), 1).Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(indexed).To(Equal([]Indexed[string]{{1, "x"}, {2, "y"}}))
	})

	It("should range over Seq and collect into other containers", func() {
		var got []int
		for v := range numbers(3).Seq() {
			got = append(got, v)
		}
		Expect(got).To(Equal([]int{1, 2, 3}))

		collected, err := CollectAs(numbers(3), slices.Collect[int])
		Expect(err).NotTo(HaveOccurred())
		Expect(collected).To(Equal([]int{1, 2, 3}))

		got = nil
		for v := range FromSeq(slices.Values([]int{7, 8})).Seq() {
			got = append(got, v)
		}
		Expect(got).To(Equal([]int{7, 8}))
	})

	It("should keep source errors sticky", func() {
		boom := errors.New("boom")
		n := 0
		it := New(func() (int, error) {
			n++
			if n > 2 {
				return 0, boom
			}
			return n, nil
		})
		got, err := it.Collect()
		Expect(err).To(MatchError(boom))
		Expect(got).To(Equal([]int{1, 2}))
		Expect(it.Err()).To(MatchError(boom))
		_, err = it.Next()
		Expect(err).To(MatchError(boom))
	})

	It("should run bounded concurrent work", func() {
		var mu sync.Mutex
		var seen []int
		var inFlight, peak atomic.Int32
		err := numbers(20).ForEachConcurrent(context.Background(), 3, func(ctx context.Context, v int) error {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, v)
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(ConsistOf(slices.Collect(numbers(20).Seq())))
		Expect(peak.Load()).To(BeNumerically("<=", 3))
	})

	It("should return the first concurrent failure", func() {
		boom := errors.New("boom")
		err := numbers(5).ForEachConcurrent(context.Background(), 1, func(ctx context.Context, v int) error {
			if v == 2 {
				return boom
			}
			return nil
		})
		Expect(err).To(MatchError(boom))
	})
})

var _ = Describe("Paged", func() {
	It("should fetch pages on demand", func() {
		var pages []int
		it := Paged(context.Background(), 0, func(ctx context.Context, page int) ([]string, bool, error) {
			pages = append(pages, page)
			switch page {
			case 0:
				return []string{"a", "b"}, true, nil
			case 1:
				return []string{"c"}, false, nil
			}
			return nil, false, errors.New("unexpected page")
		})

		v, err := it.First()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("a"))
		Expect(pages).To(Equal([]int{0}))

		rest, err := it.Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(rest).To(Equal([]string{"b", "c"}))
		Expect(pages).To(Equal([]int{0, 1}))
	})

	It("should stop on an empty page", func() {
		calls := 0
		got, err := Paged(context.Background(), 1, func(ctx context.Context, page int) ([]int, bool, error) {
			calls++
			return nil, true, nil
		}).Collect()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeEmpty())
		Expect(calls).To(Equal(1))
	})
})

func Test(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Iterator Suite")
}

package retry

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Backoff", func() {
	It("should calculate the correct intervals", func() {
		intervals := createReferenceInterval()
		sut := DefaultPolicy.Start().WithRand(rand.New(rand.NewSource(0)))

		for _, expectedInterval := range intervals {
			got := sut.Next()
			Expect(got).To(Equal(expectedInterval))
		}
	})

	It("should not add jitter when disabled", func() {
		sut := Policy{Base: time.Second, Max: 3 * time.Second}.Start()
		Expect(sut.Next()).To(Equal(1 * time.Second))
		Expect(sut.Next()).To(Equal(2 * time.Second))
		Expect(sut.Next()).To(Equal(3 * time.Second))
		Expect(sut.Next()).To(Equal(3 * time.Second))
	})
})

var _ = Describe("Retry", func() {
	It("should return the first success", func() {
		calls := 0
		got, err := Retry(context.Background(), 3, func(context.Context) (int, error) {
			calls++
			return 7, nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(7))
		Expect(calls).To(Equal(1))
	})

	It("should give up when the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Retry(ctx, 3, func(context.Context) (int, error) {
			return 0, errors.New("boom")
		})
		Expect(err).To(MatchError(context.Canceled))
	})

	It("should stop after the last attempt", func() {
		_, err := Retry(context.Background(), 1, func(context.Context) (int, error) {
			return 0, errors.New("boom")
		})
		Expect(err).To(MatchError("boom"))
	})
})

func createReferenceInterval() []time.Duration {
	intervals := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		30 * time.Second,
		30 * time.Second,
	}
	rand := rand.New(rand.NewSource(0))
	for i := 0; i < len(intervals); i++ {
		intervals[i] += time.Duration(rand.Int63n(int64(time.Second)))
	}

	return intervals
}

func Test(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Retry Suite")
}

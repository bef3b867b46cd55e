package ising

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BatchedPointSource", func() {
	It("should only produce coordinates within the lattice", func() {
		src := NewBatchedPointSource(5, 1)

		for i := 0; i < 5000; i++ {
			row, col := src.Next()

			Expect(row).To(SatisfyAll(
				BeNumerically(">=", 0), BeNumerically("<", 5)))
			Expect(col).To(SatisfyAll(
				BeNumerically(">=", 0), BeNumerically("<", 5)))
		}
	})

	It("should cover all sites roughly uniformly", func() {
		src := NewBatchedPointSource(4, 2)

		counts := make([]int, 16)
		numDraws := 32000
		for i := 0; i < numDraws; i++ {
			row, col := src.Next()
			counts[row*4+col]++
		}

		expected := numDraws / 16
		for _, c := range counts {
			Expect(c).To(BeNumerically("~", expected, expected/2))
		}
	})

	It("should refill exactly when the batch is exhausted", func() {
		src := NewBatchedPointSourceWithBatchSize(4, 3, 8)

		Expect(src.Fills()).To(Equal(1))

		for i := 0; i < 8; i++ {
			src.Next()
		}
		Expect(src.Fills()).To(Equal(1))

		src.Next()
		Expect(src.Fills()).To(Equal(2))
	})

	It("should replay the same sequence for the same seed", func() {
		src1 := NewBatchedPointSourceWithBatchSize(6, 99, 16)
		src2 := NewBatchedPointSourceWithBatchSize(6, 99, 16)

		for i := 0; i < 100; i++ {
			r1, c1 := src1.Next()
			r2, c2 := src2.Next()

			Expect(r1).To(Equal(r2))
			Expect(c1).To(Equal(c2))
		}
	})

	It("should panic on invalid parameters", func() {
		Expect(func() { NewBatchedPointSource(0, 1) }).To(Panic())
		Expect(func() {
			NewBatchedPointSourceWithBatchSize(4, 1, 0)
		}).To(Panic())
	})
})

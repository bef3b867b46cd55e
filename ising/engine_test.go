package ising

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

func sumSpins(spins []int8) int {
	sum := 0
	for _, s := range spins {
		sum += int(s)
	}
	return sum
}

var _ = Describe("Engine", func() {
	var (
		mockCtrl *gomock.Controller
		points   *MockPointSource
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		points = NewMockPointSource(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	// A target of -N is met by the all-up start, so construction draws
	// no points and the lattice is in a known configuration.
	newColdEngine := func(size int) *Engine {
		return NewEngine(size, -size*size, points)
	}

	It("should start all-up when the target is the ground state", func() {
		engine := newColdEngine(4)

		Expect(engine.SystemEnergy()).To(Equal(-16))
		Expect(engine.DemonEnergy()).To(Equal(0))
		Expect(engine.Magnetization()).To(Equal(16))
		Expect(engine.Sweeps()).To(Equal(int64(0)))
		Expect(engine.Temperature()).To(Equal(0.0))
	})

	It("should reject a flip the demon cannot pay for", func() {
		engine := newColdEngine(4)

		// Every flip of the all-up lattice costs 8, and the demon is
		// empty, so the whole sweep is rejected.
		points.EXPECT().Next().Return(0, 0).Times(16)

		engine.Step()

		Expect(engine.AcceptedMoves()).To(Equal(int64(0)))
		Expect(engine.SystemEnergy()).To(Equal(-16))
		Expect(engine.DemonEnergy()).To(Equal(0))
		Expect(engine.Magnetization()).To(Equal(16))
		Expect(engine.Sweeps()).To(Equal(int64(1)))
	})

	It("should reject de=4 when the demon is empty", func() {
		engine := newColdEngine(4)

		engine.lattice.Flip(0, 1)
		engine.systemEnergy = -8
		engine.magnetization = 14

		Expect(engine.delta(1, 1)).To(Equal(4))

		points.EXPECT().Next().Return(1, 1).Times(16)

		engine.Step()

		Expect(engine.AcceptedMoves()).To(Equal(int64(0)))
		Expect(engine.SystemEnergy()).To(Equal(-8))
		Expect(engine.DemonEnergy()).To(Equal(0))
		Expect(engine.lattice.Spin(1, 1)).To(Equal(SpinUp))
	})

	It("should accept de=-4 and bank the energy in the demon", func() {
		engine := newColdEngine(4)

		// Three isolated down spins surround (1,1) with three down
		// neighbors and one up neighbor, so flipping it releases 4.
		engine.lattice.Flip(0, 1)
		engine.lattice.Flip(1, 0)
		engine.lattice.Flip(2, 1)
		engine.systemEnergy = 8
		engine.magnetization = 10

		Expect(engine.delta(1, 1)).To(Equal(-4))

		// After (1,1) is accepted, the corner (0,0) sits between two up
		// and two down neighbors, so re-flipping it is free every time.
		points.EXPECT().Next().Return(1, 1)
		points.EXPECT().Next().Return(0, 0).Times(15)

		engine.Step()

		Expect(engine.AcceptedMoves()).To(Equal(int64(16)))
		Expect(engine.SystemEnergy()).To(Equal(4))
		Expect(engine.DemonEnergy()).To(Equal(4))
		Expect(engine.Magnetization()).To(Equal(6))
		Expect(engine.lattice.Spin(1, 1)).To(Equal(SpinDown))

		Expect(engine.MeanSystemEnergy()).To(Equal(4.0))
		Expect(engine.MeanDemonEnergy()).To(Equal(4.0))
		Expect(engine.MeanMagnetization()).To(Equal(7.0))
		Expect(engine.MeanMagnetizationSquared()).To(Equal(50.0))

		Expect(engine.Temperature()).To(
			BeNumerically("~", 4.0/math.Log(2), 1e-12))
	})

	It("should report a degenerate temperature without guarding", func() {
		engine := newColdEngine(4)

		points.EXPECT().Next().Return(0, 0).Times(16)

		engine.Step()

		// The mean demon energy is exactly zero, so the estimator
		// degenerates to 4/log(+Inf).
		Expect(engine.Temperature()).To(Equal(0.0))
	})

	It("should prepare the lattice near the requested energy", func() {
		engine := NewEngine(4, 4, NewBatchedPointSource(4, 1))

		Expect(engine.SystemEnergy()).To(BeNumerically(">=", -16))
		Expect(engine.SystemEnergy()).To(BeNumerically("<=", 16))
		Expect(engine.DemonEnergy()).To(Equal(0))
		Expect(engine.Magnetization()).To(
			Equal(sumSpins(engine.Snapshot().Spins)))
	})

	It("should undershoot silently when the trial budget runs out", func() {
		engine := NewEngine(4, 1000, NewBatchedPointSource(4, 1))

		Expect(engine.SystemEnergy()).To(BeNumerically("<", 1000))
		Expect(engine.SystemEnergy()).To(BeNumerically("<=", 16))
	})

	It("should keep the invariants over many sweeps", func() {
		engine := NewEngine(8, 32, NewBatchedPointSource(8, 42))

		initialTotal := engine.SystemEnergy() + engine.DemonEnergy()

		for i := 0; i < 10; i++ {
			engine.Step()

			snap := engine.Snapshot()
			Expect(snap.Magnetization).To(Equal(sumSpins(snap.Spins)))
			Expect(snap.SystemEnergy + snap.DemonEnergy).
				To(Equal(initialTotal))
			Expect(snap.SystemEnergy).To(BeNumerically(">=", -128))
			Expect(snap.SystemEnergy).To(BeNumerically("<=", 128))
		}

		Expect(engine.Sweeps()).To(Equal(int64(10)))
	})

	It("should replay identically for the same seed", func() {
		engine1 := MakeBuilder().
			WithSize(8).
			WithTargetEnergy(16).
			WithSeed(7).
			Build()
		engine2 := MakeBuilder().
			WithSize(8).
			WithTargetEnergy(16).
			WithSeed(7).
			Build()

		for i := 0; i < 5; i++ {
			engine1.Step()
			engine2.Step()
		}

		Expect(engine1.Snapshot()).To(Equal(engine2.Snapshot()))
	})

	It("should not let snapshots alias the lattice", func() {
		engine := newColdEngine(4)

		snap := engine.Snapshot()
		snap.Spins[0] = SpinDown

		Expect(engine.Snapshot().Spins[0]).To(Equal(SpinUp))
	})
})

var _ = Describe("Builder", func() {
	It("should panic on a non-positive lattice size", func() {
		Expect(func() { MakeBuilder().WithSize(0).Build() }).To(Panic())
	})

	It("should reject a batch size together with a point source", func() {
		Expect(func() {
			MakeBuilder().
				WithSize(4).
				WithBatchSize(16).
				WithPointSource(NewBatchedPointSource(4, 1)).
				Build()
		}).To(Panic())
	})
})

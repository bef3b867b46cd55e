package ising

import (
	"math/rand/v2"
)

// DefaultBatchSize is the number of coordinate pairs drawn per batch fill.
const DefaultBatchSize = 10240

// A PointSource supplies an unbounded sequence of uniformly random
// lattice coordinates.
type PointSource interface {
	// Next returns one (row, col) pair, each component independently
	// uniform over [0, L). Next always succeeds.
	Next() (row, col int)
}

type point struct {
	row, col int
}

// A BatchedPointSource pre-draws coordinate pairs in batches to amortize
// the per-call cost of the random number generator. The batch is refilled
// exactly when it is exhausted, and a refill draws from the same
// distribution as the initial fill.
//
// A BatchedPointSource is not safe for concurrent use.
type BatchedPointSource struct {
	size   int
	rng    *rand.Rand
	batch  []point
	cursor int
	fills  int
}

// NewBatchedPointSource creates a source of coordinates over an L*L
// lattice with the default batch size. The seed fully determines the
// sequence of points.
func NewBatchedPointSource(size int, seed uint64) *BatchedPointSource {
	return NewBatchedPointSourceWithBatchSize(size, seed, DefaultBatchSize)
}

// NewBatchedPointSourceWithBatchSize creates a source with a custom
// batch size.
func NewBatchedPointSourceWithBatchSize(
	size int,
	seed uint64,
	batchSize int,
) *BatchedPointSource {
	if size <= 0 {
		panic("lattice size must be positive")
	}

	if batchSize <= 0 {
		panic("batch size must be positive")
	}

	s := &BatchedPointSource{
		size:  size,
		rng:   rand.New(rand.NewPCG(seed, 0)),
		batch: make([]point, batchSize),
	}

	s.fill()

	return s
}

// Next returns the next pre-drawn coordinate pair, refilling the batch
// when it is exhausted.
func (s *BatchedPointSource) Next() (row, col int) {
	if s.cursor >= len(s.batch) {
		s.fill()
	}

	p := s.batch[s.cursor]
	s.cursor++

	return p.row, p.col
}

func (s *BatchedPointSource) fill() {
	for i := range s.batch {
		s.batch[i] = point{
			row: s.rng.IntN(s.size),
			col: s.rng.IntN(s.size),
		}
	}

	s.cursor = 0
	s.fills++
}

// Fills returns the number of times the batch has been drawn, counting
// the initial fill.
func (s *BatchedPointSource) Fills() int {
	return s.fills
}

package ising

// A Builder can build engines.
type Builder struct {
	size         int
	targetEnergy int
	seed         uint64
	batchSize    int
	points       PointSource
}

// MakeBuilder creates a builder with the default parameters.
func MakeBuilder() Builder {
	return Builder{
		size:         50,
		targetEnergy: 100,
		batchSize:    DefaultBatchSize,
	}
}

// WithSize sets the lattice edge length L.
func (b Builder) WithSize(size int) Builder {
	b.size = size
	return b
}

// WithTargetEnergy sets the system energy the initial configuration is
// prepared toward. The target is a request, not a guarantee.
func (b Builder) WithTargetEnergy(energy int) Builder {
	b.targetEnergy = energy
	return b
}

// WithSeed sets the seed of the coordinate source, making the whole run
// deterministic.
func (b Builder) WithSeed(seed uint64) Builder {
	b.seed = seed
	return b
}

// WithBatchSize sets the number of coordinates pre-drawn per batch.
func (b Builder) WithBatchSize(batchSize int) Builder {
	b.batchSize = batchSize
	return b
}

// WithPointSource replaces the batched coordinate source with a custom
// one. Useful for driving the engine with scripted coordinates in tests.
func (b Builder) WithPointSource(points PointSource) Builder {
	b.points = points
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.size <= 0 {
		panic("lattice size must be positive")
	}

	if b.batchSize <= 0 {
		panic("batch size must be positive")
	}

	if b.points != nil && b.batchSize != DefaultBatchSize {
		panic("batch size cannot be set when a point source is provided")
	}
}

// Build builds the engine. Building runs the initial energy preparation
// synchronously, so the returned engine is ready to step.
func (b Builder) Build() *Engine {
	b.parametersMustBeValid()

	points := b.points
	if points == nil {
		points = NewBatchedPointSourceWithBatchSize(
			b.size, b.seed, b.batchSize)
	}

	return NewEngine(b.size, b.targetEnergy, points)
}

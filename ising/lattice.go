package ising

// Spin values of a lattice site.
const (
	SpinUp   int8 = 1
	SpinDown int8 = -1
)

// neighborDirs are the four nearest-neighbor offsets on a square lattice.
var neighborDirs = [4]struct{ dr, dc int }{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// A Lattice is a square grid of spins with periodic boundary conditions.
// Spins are stored in a flat row-major array. The lattice is never
// resized after creation.
type Lattice struct {
	size  int
	spins []int8
}

// NewLattice creates a lattice of the given edge length with all spins up.
func NewLattice(size int) *Lattice {
	if size <= 0 {
		panic("lattice size must be positive")
	}

	l := &Lattice{
		size:  size,
		spins: make([]int8, size*size),
	}

	for i := range l.spins {
		l.spins[i] = SpinUp
	}

	return l
}

// Size returns the edge length L.
func (l *Lattice) Size() int {
	return l.size
}

// NumSites returns the number of sites N = L*L.
func (l *Lattice) NumSites() int {
	return l.size * l.size
}

func (l *Lattice) offset(row, col int) int {
	return row*l.size + col
}

// Spin returns the spin at (row, col).
func (l *Lattice) Spin(row, col int) int8 {
	return l.spins[l.offset(row, col)]
}

// Flip negates the spin at (row, col) and returns the new value.
func (l *Lattice) Flip(row, col int) int8 {
	i := l.offset(row, col)
	l.spins[i] = -l.spins[i]

	return l.spins[i]
}

// NeighborSum sums the spins of the four nearest neighbors of (row, col).
// Coordinates wrap at the edges, so the lattice is topologically a torus.
// The wrap is applied after the neighbor offset is added: coordinate L
// maps to 0 and coordinate -1 maps to L-1.
func (l *Lattice) NeighborSum(row, col int) int {
	sum := 0

	for _, d := range neighborDirs {
		r := row + d.dr
		if r == l.size {
			r = 0
		} else if r == -1 {
			r = l.size - 1
		}

		c := col + d.dc
		if c == l.size {
			c = 0
		} else if c == -1 {
			c = l.size - 1
		}

		sum += int(l.spins[l.offset(r, c)])
	}

	return sum
}

// Spins returns a copy of all spins in row-major order.
func (l *Lattice) Spins() []int8 {
	spins := make([]int8, len(l.spins))
	copy(spins, l.spins)

	return spins
}

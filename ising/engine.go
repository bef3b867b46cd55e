// Package ising implements a microcanonical Monte Carlo simulation of the
// 2D Ising spin model. Instead of the probabilistic Metropolis rule, the
// simulation couples the lattice to a demon, an energy reservoir that pays
// for every accepted spin flip, so that the total of system and demon
// energy is conserved exactly and the temperature emerges as a statistic
// of the demon's mean energy.
package ising

import (
	"math"
)

// initTrialsPerSite bounds the greedy search that prepares the initial
// lattice configuration.
const initTrialsPerSite = 10

// A Snapshot is a point-in-time copy of the observable engine state,
// intended for presentation layers that poll the engine between sweeps.
type Snapshot struct {
	Size          int     `json:"size"`
	Spins         []int8  `json:"spins"`
	SystemEnergy  int     `json:"system_energy"`
	DemonEnergy   int     `json:"demon_energy"`
	Magnetization int     `json:"magnetization"`
	AcceptedMoves int64   `json:"accepted_moves"`
	Sweeps        int64   `json:"sweeps"`
	Temperature   float64 `json:"temperature"`
}

// An Engine evolves an Ising lattice with the demon algorithm.
//
// The engine is strictly sequential. Step runs one full sweep to
// completion before returning, and no method is safe for concurrent use.
type Engine struct {
	lattice *Lattice
	points  PointSource

	systemEnergy  int
	demonEnergy   int
	magnetization int

	systemEnergyAcc int64
	demonEnergyAcc  int64
	magAcc          int64
	mag2Acc         int64

	acceptedMoves int64
	sweeps        int64
	temperature   float64
}

// NewEngine creates an engine over an L*L lattice and prepares the
// lattice near the target energy before returning. The preparation is a
// greedy search that only accepts energy-raising flips and gives up after
// 10*N trials, so the reached energy may fall short of the request.
func NewEngine(size, targetEnergy int, points PointSource) *Engine {
	e := &Engine{
		lattice: NewLattice(size),
		points:  points,
	}

	e.initialize(targetEnergy)

	return e
}

func (e *Engine) initialize(targetEnergy int) {
	n := e.lattice.NumSites()

	// All-up configuration.
	energy := -n
	e.magnetization = n

	maxTrials := initTrialsPerSite * n
	for trials := 0; energy < targetEnergy && trials < maxTrials; trials++ {
		row, col := e.points.Next()

		de := e.delta(row, col)
		if de > 0 {
			energy += de
			spin := e.lattice.Flip(row, col)
			e.magnetization += 2 * int(spin)
		}
	}

	e.systemEnergy = energy
}

// delta returns the system energy change that flipping the spin at
// (row, col) would cause. It is recomputed fresh for every candidate.
func (e *Engine) delta(row, col int) int {
	return 2 * int(e.lattice.Spin(row, col)) * e.lattice.NeighborSum(row, col)
}

// Step runs one Monte Carlo sweep of N = L*L candidate flips.
//
// A candidate is accepted exactly when its energy change fits in the
// demon's reservoir (de <= demon energy). The demon then pays for the
// flip, keeping system plus demon energy constant. There is no
// probabilistic accept/reject. Accumulators are updated after every
// candidate, accepted or not, and the temperature estimate is refreshed
// at the end of the sweep.
func (e *Engine) Step() {
	n := e.lattice.NumSites()

	for i := 0; i < n; i++ {
		row, col := e.points.Next()
		de := e.delta(row, col)

		if de <= e.demonEnergy {
			spin := e.lattice.Flip(row, col)
			e.acceptedMoves++
			e.systemEnergy += de
			e.demonEnergy -= de
			e.magnetization += 2 * int(spin)
		}

		e.systemEnergyAcc += int64(e.systemEnergy)
		e.demonEnergyAcc += int64(e.demonEnergy)
		e.magAcc += int64(e.magnetization)
		e.mag2Acc += int64(e.magnetization) * int64(e.magnetization)
	}

	e.sweeps++
	e.temperature = estimateTemperature(e.MeanDemonEnergy())
}

// estimateTemperature relates the demon's mean energy per site to an
// emergent temperature for a 4-neighbor Ising lattice. A zero mean demon
// energy makes the expression degenerate; the non-finite result is
// propagated as computed, never substituted.
func estimateTemperature(meanDemonEnergy float64) float64 {
	return 4.0 / math.Log(1+4/meanDemonEnergy)
}

// Snapshot returns a copy of the observable state at call time. It never
// mutates the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Size:          e.lattice.Size(),
		Spins:         e.lattice.Spins(),
		SystemEnergy:  e.systemEnergy,
		DemonEnergy:   e.demonEnergy,
		Magnetization: e.magnetization,
		AcceptedMoves: e.acceptedMoves,
		Sweeps:        e.sweeps,
		Temperature:   e.temperature,
	}
}

// Size returns the lattice edge length L.
func (e *Engine) Size() int {
	return e.lattice.Size()
}

// SystemEnergy returns the current lattice energy.
func (e *Engine) SystemEnergy() int {
	return e.systemEnergy
}

// DemonEnergy returns the energy currently held by the demon.
func (e *Engine) DemonEnergy() int {
	return e.demonEnergy
}

// Magnetization returns the current sum of all spins.
func (e *Engine) Magnetization() int {
	return e.magnetization
}

// AcceptedMoves returns the number of accepted flips since construction.
func (e *Engine) AcceptedMoves() int64 {
	return e.acceptedMoves
}

// Sweeps returns the number of completed sweeps.
func (e *Engine) Sweeps() int64 {
	return e.sweeps
}

// Temperature returns the estimate computed at the end of the last sweep.
func (e *Engine) Temperature() float64 {
	return e.temperature
}

// MeanSystemEnergy returns the system energy averaged over all candidate
// moves so far.
func (e *Engine) MeanSystemEnergy() float64 {
	return e.meanPerCandidate(e.systemEnergyAcc)
}

// MeanDemonEnergy returns the demon energy averaged over all candidate
// moves so far.
func (e *Engine) MeanDemonEnergy() float64 {
	return e.meanPerCandidate(e.demonEnergyAcc)
}

// MeanMagnetization returns the magnetization averaged over all candidate
// moves so far.
func (e *Engine) MeanMagnetization() float64 {
	return e.meanPerCandidate(e.magAcc)
}

// MeanMagnetizationSquared returns the squared magnetization averaged
// over all candidate moves so far.
func (e *Engine) MeanMagnetizationSquared() float64 {
	return e.meanPerCandidate(e.mag2Acc)
}

func (e *Engine) meanPerCandidate(acc int64) float64 {
	n := e.lattice.NumSites()
	return float64(acc) / float64(e.sweeps) / float64(n)
}

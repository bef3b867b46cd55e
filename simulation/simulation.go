// Package simulation wires the Ising engine to data recording and live
// monitoring, and drives it sweep by sweep.
package simulation

import (
	"sync"

	"github.com/spinlab/demonmc/datarecording"
	"github.com/spinlab/demonmc/ising"
	"github.com/spinlab/demonmc/monitoring"
)

const sweepStatsTable = "sweep_stats"

// SweepStats is one recorded row of per-sweep statistics.
type SweepStats struct {
	Sweep                    int64
	SystemEnergy             int
	DemonEnergy              int
	Magnetization            int
	AcceptedMoves            int64
	Temperature              float64
	MeanSystemEnergy         float64
	MeanDemonEnergy          float64
	MeanMagnetization        float64
	MeanMagnetizationSquared float64
}

// A Simulation drives an engine for a fixed number of sweeps, recording
// statistics after each one. The engine itself stays strictly
// sequential; pausing only gates the loop between sweeps and never
// truncates a sweep in flight.
type Simulation struct {
	id     string
	engine *ising.Engine

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	progressBar  *monitoring.ProgressBar

	totalSweeps uint64

	stepLock sync.Mutex

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex
}

// ID returns the unique ID of the run.
func (s *Simulation) ID() string {
	return s.id
}

// Engine returns the engine driven by the simulation.
func (s *Simulation) Engine() *ising.Engine {
	return s.engine
}

// DataRecorder returns the data recorder used in the simulation, or nil
// when recording is disabled.
func (s *Simulation) DataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// Monitor returns the monitor used in the simulation, or nil when
// monitoring is disabled.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Run steps the engine until the requested number of sweeps completes.
func (s *Simulation) Run() error {
	for uint64(s.engine.Sweeps()) < s.totalSweeps {
		s.pauseLock.Lock()
		s.stepLock.Lock()

		s.engine.Step()
		s.recordSweep()

		s.stepLock.Unlock()
		s.pauseLock.Unlock()

		if s.progressBar != nil {
			s.progressBar.IncrementFinished(1)
		}
	}

	return nil
}

func (s *Simulation) recordSweep() {
	if s.dataRecorder == nil {
		return
	}

	e := s.engine
	s.dataRecorder.InsertData(sweepStatsTable, SweepStats{
		Sweep:                    e.Sweeps(),
		SystemEnergy:             e.SystemEnergy(),
		DemonEnergy:              e.DemonEnergy(),
		Magnetization:            e.Magnetization(),
		AcceptedMoves:            e.AcceptedMoves(),
		Temperature:              e.Temperature(),
		MeanSystemEnergy:         e.MeanSystemEnergy(),
		MeanDemonEnergy:          e.MeanDemonEnergy(),
		MeanMagnetization:        e.MeanMagnetization(),
		MeanMagnetizationSquared: e.MeanMagnetizationSquared(),
	})
}

// Pause stops the run before the next sweep.
func (s *Simulation) Pause() {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	if s.isPaused {
		return
	}

	s.pauseLock.Lock()
	s.isPaused = true
}

// Continue resumes a paused run.
func (s *Simulation) Continue() {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	if !s.isPaused {
		return
	}

	s.pauseLock.Unlock()
	s.isPaused = false
}

// Snapshot returns the engine state after the last completed sweep.
func (s *Simulation) Snapshot() ising.Snapshot {
	s.stepLock.Lock()
	defer s.stepLock.Unlock()

	return s.engine.Snapshot()
}

// Terminate flushes recorded data and closes the recorder.
func (s *Simulation) Terminate() {
	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}

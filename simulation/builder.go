package simulation

import (
	"github.com/rs/xid"
	"github.com/spinlab/demonmc/datarecording"
	"github.com/spinlab/demonmc/ising"
	"github.com/spinlab/demonmc/monitoring"
)

// Builder can be used to build a simulation.
type Builder struct {
	latticeSize    int
	targetEnergy   int
	seed           uint64
	batchSize      int
	sweeps         uint64
	monitorOn      bool
	monitorPort    int
	openBrowser    bool
	recordOn       bool
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		latticeSize:  50,
		targetEnergy: 100,
		batchSize:    ising.DefaultBatchSize,
		sweeps:       1000,
		monitorOn:    true,
		recordOn:     true,
	}
}

// WithLatticeSize sets the lattice edge length L.
func (b Builder) WithLatticeSize(size int) Builder {
	b.latticeSize = size
	return b
}

// WithTargetEnergy sets the system energy the run is prepared toward.
func (b Builder) WithTargetEnergy(energy int) Builder {
	b.targetEnergy = energy
	return b
}

// WithSeed sets the random seed, making the run deterministic.
func (b Builder) WithSeed(seed uint64) Builder {
	b.seed = seed
	return b
}

// WithBatchSize sets the number of coordinates pre-drawn per batch.
func (b Builder) WithBatchSize(batchSize int) Builder {
	b.batchSize = batchSize
	return b
}

// WithSweeps sets the number of Monte Carlo sweeps to run.
func (b Builder) WithSweeps(sweeps uint64) Builder {
	b.sweeps = sweeps
	return b
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithBrowser makes the monitor open its page in a browser on start.
func (b Builder) WithBrowser() Builder {
	b.openBrowser = true
	return b
}

// WithoutRecording sets the simulation to not record statistics.
func (b Builder) WithoutRecording() Builder {
	b.recordOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.monitorPort != 0 && !b.monitorOn {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if b.openBrowser && !b.monitorOn {
		panic("browser cannot be opened when monitoring is disabled")
	}

	if b.outputFileName != "" && !b.recordOn {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the simulation. Building prepares the lattice near the
// target energy, so the returned simulation is ready to run.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		totalSweeps: b.sweeps,
	}

	s.id = xid.New().String()

	if b.recordOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "demonmc_run_" + s.id
		}

		s.dataRecorder = datarecording.New(outputPath)
		s.dataRecorder.CreateTable(sweepStatsTable, SweepStats{})
	}

	s.engine = ising.MakeBuilder().
		WithSize(b.latticeSize).
		WithTargetEnergy(b.targetEnergy).
		WithSeed(b.seed).
		WithBatchSize(b.batchSize).
		Build()

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		if b.openBrowser {
			s.monitor.WithBrowser()
		}
		s.monitor.RegisterRunner(s)
		s.progressBar = s.monitor.CreateProgressBar("sweeps", b.sweeps)
		s.monitor.StartServer()
	}

	return s
}

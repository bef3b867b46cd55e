package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spinlab/demonmc/ising"
	"github.com/spinlab/demonmc/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a demon Monte Carlo simulation.",
	Run: func(cmd *cobra.Command, _ []string) {
		runSimulation(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("size", "L", 50, "lattice edge length")
	runCmd.Flags().IntP("energy", "E", 100, "target system energy")
	runCmd.Flags().Uint64("sweeps", 1000, "number of Monte Carlo sweeps")
	runCmd.Flags().Uint64("seed", 0, "random seed")
	runCmd.Flags().Int("batch-size", ising.DefaultBatchSize,
		"number of random coordinates pre-drawn per batch")
	runCmd.Flags().Int("monitor-port", 0,
		"port for the monitoring server, 0 picks a random port")
	runCmd.Flags().Bool("no-monitor", false,
		"disable the monitoring server")
	runCmd.Flags().Bool("browser", false,
		"open the monitor page in a browser")
	runCmd.Flags().Bool("no-record", false,
		"disable statistics recording")
	runCmd.Flags().String("output", "",
		"output database name, without the .sqlite3 suffix")
}

func runSimulation(cmd *cobra.Command) {
	size, _ := cmd.Flags().GetInt("size")
	energy, _ := cmd.Flags().GetInt("energy")
	sweeps, _ := cmd.Flags().GetUint64("sweeps")
	seed, _ := cmd.Flags().GetUint64("seed")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	monitorPort, _ := cmd.Flags().GetInt("monitor-port")
	noMonitor, _ := cmd.Flags().GetBool("no-monitor")
	openBrowser, _ := cmd.Flags().GetBool("browser")
	noRecord, _ := cmd.Flags().GetBool("no-record")
	output, _ := cmd.Flags().GetString("output")

	if !cmd.Flags().Changed("monitor-port") {
		monitorPort = envInt("DEMONMC_MONITOR_PORT", monitorPort)
	}
	if !cmd.Flags().Changed("output") {
		output = os.Getenv("DEMONMC_OUTPUT")
	}

	builder := simulation.MakeBuilder().
		WithLatticeSize(size).
		WithTargetEnergy(energy).
		WithSeed(seed).
		WithBatchSize(batchSize).
		WithSweeps(sweeps)

	if noMonitor {
		builder = builder.WithoutMonitoring()
	} else {
		if monitorPort > 0 {
			builder = builder.WithMonitorPort(monitorPort)
		}
		if openBrowser {
			builder = builder.WithBrowser()
		}
	}

	if noRecord {
		builder = builder.WithoutRecording()
	} else if output != "" {
		builder = builder.WithOutputFileName(output)
	}

	s := builder.Build()
	defer s.Terminate()

	err := s.Run()
	if err != nil {
		log.Fatalf("Error running simulation: %v", err)
	}

	snap := s.Snapshot()
	fmt.Printf("Run %s finished after %d sweeps\n", s.ID(), snap.Sweeps)
	fmt.Printf("  system energy:  %d\n", snap.SystemEnergy)
	fmt.Printf("  demon energy:   %d\n", snap.DemonEnergy)
	fmt.Printf("  magnetization:  %d\n", snap.Magnetization)
	fmt.Printf("  accepted moves: %d\n", snap.AcceptedMoves)
	fmt.Printf("  temperature:    %f\n", snap.Temperature)
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid value for %s: %q", name, v)
	}

	return n
}

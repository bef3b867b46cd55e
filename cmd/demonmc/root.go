package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "demonmc",
	Short: "demonmc simulates the 2D Ising model with the demon " +
		"algorithm.",
	Long: `demonmc simulates the 2D Ising model with a microcanonical ` +
		`Monte Carlo method. A demon exchanges energy with the lattice so ` +
		`that the total energy is conserved exactly, and the temperature ` +
		`emerges as a statistic of the demon's mean energy.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Optional defaults from a .env file. Flags win.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

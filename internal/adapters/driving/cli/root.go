// Package cli implements the cobra command surface of fortuna.
//
// Commands hold package-level service variables that are constructed on
// first use from the loaded configuration; tests inject mocks instead.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Nubicola/fortuna/internal/adapters/driven/config/file"
	"github.com/Nubicola/fortuna/internal/core/ports/driving"
	"github.com/Nubicola/fortuna/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose bool
	flagConfig  string
)

// Services used by the commands. Constructed lazily from configuration;
// tests swap in mocks.
var (
	scanService    driving.ScanService
	historyService driving.HistoryService
)

var rootCmd = &cobra.Command{
	Use:   "fortuna",
	Short: "Part of Fortune conjunction scanner",
	Long: `fortuna walks a time window minute by minute, computes the Part of
Fortune from the Sun, Moon and Ascendant, and reports every minute at which
it falls within orb of the Sun, Moon, Mercury, Venus, Mars, Jupiter or
Saturn.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.toml (default ~/.fortuna/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the TOML configuration honouring the --config flag.
func loadConfig() (file.Config, error) {
	return file.Load(flagConfig)
}

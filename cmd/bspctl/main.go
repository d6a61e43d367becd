//go:build !tinygo

// Bspctl drives the m401 board layer from a host.
//
// By default it runs against the GPIO simulator, which is useful for
// checking the ownership rules. With a board map selecting the periph
// driver it drives real GPIO lines on a Linux host wired as a stand-in
// for the board.
//
// See 'bspctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"m401-bsp/internal/logging"
)

var version = "dev"

var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bspctl",
	Short: "m401 board support control utility",
	Long: `Claim and drive the m401 board peripherals (LEDs, push-buttons and the
RF front-end switch) through the same ownership rules as the firmware.

The driver is chosen by the board map (--config). Without one, the GPIO
simulator is used.`,
	Version: version,
	Example: `  # List board lines and their host mapping
  bspctl pins --config board.yaml

  # Run the LED/button/RF walk-through on the simulator
  bspctl demo --press pb2

  # Put the RF switch into low-power transmit
  bspctl rfswitch tx_lp --config board.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "board map YAML file (default: simulator)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logging.LogLevelEnvVar+")")

	rootCmd.AddCommand(pinsCmd, demoCmd, ledCmd, buttonsCmd, rfswitchCmd)
}

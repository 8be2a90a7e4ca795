package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/e10lab/din18599/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "din18599",
	Short: "Monthly DIN V 18599 building energy balance",
	Long: `din18599 runs the DIN V 18599 quasi-steady-state monthly energy
balance for a building project: transmission and ventilation losses,
solar and internal gains, heating/cooling demand, lighting and DHW,
converted to final energy, primary energy and CO2 by carrier.`,
	DisableAutoGenTag: true,
}

var logLevelFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, error")
	cobra.OnInitialize(func() {
		logging.SetLevel(parseLevel(logLevelFlag))
	})
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.DEBUG
	case "warn":
		return logging.WARN
	case "error":
		return logging.ERROR
	default:
		return logging.INFO
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Debug("no .env file loaded: %v", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

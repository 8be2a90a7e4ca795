package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/e10lab/din18599/internal/stationio"
)

var importEPWOutputPath string

func init() {
	importEPWCmd.Flags().StringVar(&importEPWOutputPath, "output", "", "write the resolved station JSON here instead of stdout")
	rootCmd.AddCommand(importEPWCmd)
}

var importEPWCmd = &cobra.Command{
	Use:   "import-epw <file.epw>",
	Short: "Convert an EnergyPlus weather file into a pre-resolved station JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		station, err := stationio.ReadEPW(args[0])
		if err != nil {
			return err
		}
		body, err := json.MarshalIndent(station, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding station: %w", err)
		}
		if importEPWOutputPath == "" {
			fmt.Println(string(body))
			return nil
		}
		return os.WriteFile(importEPWOutputPath, body, 0o644)
	},
}

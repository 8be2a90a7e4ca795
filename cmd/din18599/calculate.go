package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/e10lab/din18599/internal/appconfig"
	"github.com/e10lab/din18599/internal/engine"
	"github.com/e10lab/din18599/internal/logging"
	"github.com/e10lab/din18599/internal/model"
	"github.com/e10lab/din18599/internal/profilecat"
	"github.com/e10lab/din18599/internal/projectio"
	"github.com/e10lab/din18599/internal/stationio"
	"github.com/e10lab/din18599/internal/stationstore"
)

var (
	calculateConfigPath string
	calculateOutputPath string
)

func init() {
	calculateCmd.Flags().StringVar(&calculateConfigPath, "config", "", "run configuration YAML file (required)")
	calculateCmd.Flags().StringVar(&calculateOutputPath, "output", "", "write results JSON here instead of stdout")
	calculateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(calculateCmd)
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the monthly energy balance for a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalculate()
	},
}

func runCalculate() error {
	cfg, err := appconfig.Load(calculateConfigPath)
	if err != nil {
		return err
	}

	project, err := projectio.ReadProjectJSON(cfg.ProjectPath)
	if err != nil {
		return err
	}
	if cfg.AutomationClassOverride != "" {
		project.AutomationClass = stringToAutomationClass(cfg.AutomationClassOverride)
	}

	station, err := resolveStation(cfg.Station)
	if err != nil {
		return err
	}

	catalogue := profilecat.New()
	results, err := engine.Calculate(project, station, catalogue)
	if err != nil {
		return err
	}

	for _, flag := range results.Flags {
		logging.Warn("%s[%s]: %s", flag.Kind, flag.EntityID, flag.Message)
	}

	body, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if calculateOutputPath == "" {
		fmt.Println(string(body))
		return nil
	}
	return os.WriteFile(calculateOutputPath, body, 0o644)
}

func resolveStation(cfg appconfig.StationConfig) (model.ClimateStation, error) {
	switch {
	case cfg.Path != "":
		return stationio.ReadStationJSON(cfg.Path)
	case cfg.EPWPath != "":
		return stationio.ReadEPW(cfg.EPWPath)
	case cfg.Bucket != "" && cfg.Key != "":
		store, err := stationstore.New(context.Background(), cfg.Bucket, cfg.Region)
		if err != nil {
			return model.ClimateStation{}, err
		}
		return store.Get(context.Background(), cfg.Key)
	default:
		return model.ClimateStation{}, fmt.Errorf("station config declares neither path, epw_path nor bucket/key")
	}
}

func stringToAutomationClass(s string) model.AutomationClass {
	switch s {
	case "A":
		return model.AutomationA
	case "B":
		return model.AutomationB
	case "C":
		return model.AutomationC
	case "D":
		return model.AutomationD
	default:
		return model.AutomationD
	}
}

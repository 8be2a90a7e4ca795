package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/e10lab/din18599/internal/model"
	"github.com/e10lab/din18599/internal/stationio"
	"github.com/e10lab/din18599/internal/stationstore"
)

var (
	stationFetchRegion string
	stationPutRegion   string
	stationPutSource   string
)

func init() {
	stationFetchCmd.Flags().StringVar(&stationFetchRegion, "region", "", "AWS region")
	stationPutCmd.Flags().StringVar(&stationPutRegion, "region", "", "AWS region")
	stationPutCmd.Flags().StringVar(&stationPutSource, "source", "", "pre-resolved station JSON or .epw file to cache (required)")
	stationPutCmd.MarkFlagRequired("source")

	stationCmd.AddCommand(stationFetchCmd)
	stationCmd.AddCommand(stationPutCmd)
	rootCmd.AddCommand(stationCmd)
}

var stationCmd = &cobra.Command{
	Use:   "station",
	Short: "Manage the S3-backed climate station cache",
}

var stationFetchCmd = &cobra.Command{
	Use:   "fetch <bucket> <key>",
	Short: "Fetch a cached station record and print it as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := stationstore.New(context.Background(), args[0], stationFetchRegion)
		if err != nil {
			return err
		}
		station, err := store.Get(context.Background(), args[1])
		if err != nil {
			return err
		}
		body, err := json.MarshalIndent(station, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding station: %w", err)
		}
		fmt.Println(string(body))
		return nil
	},
}

var stationPutCmd = &cobra.Command{
	Use:   "cache-put <bucket> <key>",
	Short: "Parse a station source file and upload it to the cache",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		station, err := readStationSource(stationPutSource)
		if err != nil {
			return err
		}
		store, err := stationstore.New(context.Background(), args[0], stationPutRegion)
		if err != nil {
			return err
		}
		return store.Put(context.Background(), args[1], station)
	},
}

func readStationSource(path string) (model.ClimateStation, error) {
	if strings.HasSuffix(path, ".epw") {
		return stationio.ReadEPW(path)
	}
	return stationio.ReadStationJSON(path)
}

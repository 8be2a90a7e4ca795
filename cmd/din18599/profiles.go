package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/e10lab/din18599/internal/profilecat"
)

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	rootCmd.AddCommand(profilesCmd)
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect the usage-profile catalogue",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every usage-profile key in the catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogue := profilecat.New()
		keys := catalogue.Keys()
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print one usage profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogue := profilecat.New()
		profile, err := catalogue.Lookup(args[0])
		if err != nil {
			return err
		}
		body, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding profile: %w", err)
		}
		fmt.Println(string(body))
		return nil
	},
}

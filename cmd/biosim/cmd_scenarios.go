package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/bionet-simulator/core"
)

func newScenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenario presets in a preset file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("scenario-file")
			scenarios, err := core.LoadScenarioFile(path)
			if err != nil {
				return err
			}

			for _, sc := range scenarios {
				archetype := sc.Archetype
				if archetype == "" {
					archetype = "all"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s [%s] %s\n", sc.Name, archetype, sc.Description)
			}
			return nil
		},
	}

	cmd.Flags().String("scenario-file", "configs/scenarios.yaml", "Scenario preset file")
	return cmd
}

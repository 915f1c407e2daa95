package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/bionet-simulator/core"
	"github.com/verdantlabs/bionet-simulator/internal/logging"
	"github.com/verdantlabs/bionet-simulator/runstore"
)

func newRunCmd(log logging.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [archetype]",
		Short: "Simulate a single archetype",
		Long: `Simulate one archetype (vascular, neural, circulatory or mycelial)
and print its transport metrics. The archetype may also come from a
scenario preset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, scenarioArchetype, err := resolveParameters(cmd)
			if err != nil {
				return err
			}

			name := scenarioArchetype
			if len(args) > 0 {
				name = args[0]
			}
			if name == "" {
				return fmt.Errorf("archetype required (as argument, or via a scenario that names one)")
			}
			archetype, err := core.ParseArchetype(name)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, runLog := logging.WithRunLogger(ctx, log)

			engine, collector, err := buildEngine(cmd, runLog)
			if err != nil {
				return err
			}

			res, err := engine.Simulate(ctx, archetype, params)
			if err != nil {
				return err
			}

			store := runstore.New()
			if err := store.Add(logging.RunIDFromContext(ctx), res); err != nil {
				return err
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				printResult(cmd.OutOrStdout(), res)
			}

			if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
				if err := writeCSVFile(csvPath, []*core.SimulationResult{res}); err != nil {
					return err
				}
			}

			return holdForMetrics(ctx, cmd, collector, store, runLog)
		},
	}

	addParameterFlags(cmd)
	cmd.Flags().Bool("json", false, "Print the full result (nodes, edges, flows) as JSON")
	cmd.Flags().String("csv", "", "Write the metrics row to this CSV file")
	return cmd
}

func printResult(w io.Writer, r *core.SimulationResult) {
	fmt.Fprintf(w, "Archetype:           %s\n", r.Archetype)
	fmt.Fprintf(w, "Seed:                %d\n", r.Seed)
	fmt.Fprintf(w, "Nodes / edges:       %d / %d (%d damaged)\n", len(r.Nodes), len(r.Edges), r.DamagedNodeCount())
	fmt.Fprintf(w, "Total transported:   %.2f\n", r.TotalTransported)
	fmt.Fprintf(w, "Utilization rate:    %.1f%%\n", r.UtilizationRate)
	fmt.Fprintf(w, "Energy efficiency:   %.2f\n", r.EnergyEfficiency)
	fmt.Fprintf(w, "Average speed:       %.2f\n", r.AvgSpeed)
	fmt.Fprintf(w, "Throughput:          %.2f / min\n", r.Throughput)
	fmt.Fprintf(w, "Total energy used:   %.2f\n", r.TotalEnergyUsed)
	fmt.Fprintf(w, "Total transit time:  %.2f\n", r.TotalTime)
	fmt.Fprintf(w, "Pathway efficiency:  %.2f\n", r.PathwayEfficiency)
	fmt.Fprintf(w, "Network robustness:  %.2f\n", r.NetworkRobustness)
}

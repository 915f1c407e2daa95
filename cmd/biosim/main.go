package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/bionet-simulator/internal/logging"
	"github.com/verdantlabs/bionet-simulator/internal/observability"
)

var version = "0.3.0"

func main() {
	log := logging.NewFromEnv()

	ctx := context.Background()
	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	rootCmd := &cobra.Command{
		Use:   "biosim",
		Short: "Compare nutrient transport across biological network archetypes",
		Long: `biosim generates vascular, neural, circulatory and mycelial transport
networks and simulates nutrient flow over them under environmental and
damage perturbations.

All parameters can come from flags or from a named scenario preset in a
YAML file (see the scenarios command).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed; 0 reseeds every run")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090) and stay up after the run")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(log),
		newCompareCmd(log),
		newScenariosCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "biosim version %s\n", version)
		},
	}
}

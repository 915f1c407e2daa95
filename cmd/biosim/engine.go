package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/bionet-simulator/core"
	"github.com/verdantlabs/bionet-simulator/internal/logging"
	"github.com/verdantlabs/bionet-simulator/internal/observability"
	"github.com/verdantlabs/bionet-simulator/runstore"
)

// buildEngine wires the engine from persistent flags: seed, logger,
// and (when a metrics address is configured) a Prometheus collector.
func buildEngine(cmd *cobra.Command, log logging.Logger) (*core.SimulationEngine, *observability.SimCollector, error) {
	seed, _ := cmd.Flags().GetInt64("seed")
	addr, _ := cmd.Flags().GetString("metrics-addr")

	opts := []core.Option{core.WithSeed(seed), core.WithLogger(log)}

	var collector *observability.SimCollector
	if addr != "" {
		var err error
		collector, err = observability.NewSimCollector(nil)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, core.WithMetrics(collector))
	}

	return core.NewSimulationEngine(opts...), collector, nil
}

// holdForMetrics serves /metrics and /runs on the configured address
// until the context is cancelled (Ctrl-C), so an external Prometheus
// can scrape the run's metrics and the run history stays inspectable.
// It returns immediately when no address is set.
func holdForMetrics(ctx context.Context, cmd *cobra.Command, collector *observability.SimCollector, store *runstore.RunStore, log logging.Logger) error {
	addr, _ := cmd.Flags().GetString("metrics-addr")
	if addr == "" || collector == nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	if store != nil {
		mux.HandleFunc("/runs", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(store.List()); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		})
	}
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info(ctx, "serving metrics until interrupted", logging.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

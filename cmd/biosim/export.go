package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/verdantlabs/bionet-simulator/core"
)

// writeCSV emits the flat metric export: a header row followed by one
// row per result. Nil results (failed runs) are skipped.
func writeCSV(w io.Writer, results []*core.SimulationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(core.MetricsHeader()); err != nil {
		return err
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		if err := cw.Write(r.FlatRecord()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVFile(path string, results []*core.SimulationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	defer f.Close()

	if err := writeCSV(f, results); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}

package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/bionet-simulator/core"
)

func TestWriteCSV(t *testing.T) {
	engine := core.NewSimulationEngine(core.WithSeed(42))
	results, err := engine.SimulateAll(context.Background(), core.DefaultParameters())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, results))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus one row per archetype.
	require.Len(t, rows, 1+len(results))
	assert.Equal(t, core.MetricsHeader(), rows[0])
	for i, res := range results {
		assert.Equal(t, string(res.Archetype), rows[i+1][0])
		assert.Len(t, rows[i+1], len(rows[0]))
	}
}

func TestWriteCSVSkipsNilResults(t *testing.T) {
	engine := core.NewSimulationEngine(core.WithSeed(7))
	res, err := engine.Simulate(context.Background(), core.ArchetypeNeural, core.DefaultParameters())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, []*core.SimulationResult{nil, res, nil}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "neural", rows[1][0])
}

func TestPrintComparisonHighlightsWinner(t *testing.T) {
	engine := core.NewSimulationEngine(core.WithSeed(9))
	results, err := engine.SimulateAll(context.Background(), core.DefaultParameters())
	require.NoError(t, err)

	var buf bytes.Buffer
	printComparison(&buf, results)

	out := buf.String()
	for _, a := range core.AllArchetypes() {
		assert.Contains(t, out, string(a))
	}
}

package core

import "strconv"

// SimulationResult is the complete, read-only outcome of one run.
// Downstream consumers render Nodes/Edges as a graph, animate Flows,
// display the scalar metrics, and export FlatRecord rows to CSV.
// Nothing in a result is shared with later runs.
type SimulationResult struct {
	Archetype Archetype `json:"Archetype"`
	// Seed reproduces this exact result when passed back to the
	// engine with identical parameters.
	Seed  int64      `json:"Seed"`
	Nodes []Node     `json:"Nodes"`
	Edges []Edge     `json:"Edges"`
	Flows []EdgeFlow `json:"Flows"`

	TotalTransported float64 `json:"TotalTransported"`
	// UtilizationRate is a percentage and may exceed 100 by
	// construction.
	UtilizationRate  float64 `json:"UtilizationRate"`
	EnergyEfficiency float64 `json:"EnergyEfficiency"`
	AvgSpeed         float64 `json:"AvgSpeed"`
	// Throughput is units per simulated minute.
	Throughput        float64 `json:"Throughput"`
	TotalEnergyUsed   float64 `json:"TotalEnergyUsed"`
	TotalTime         float64 `json:"TotalTime"`
	PathwayEfficiency float64 `json:"PathwayEfficiency"`
	// NetworkRobustness = 1 − damaged/N, always in [0,1].
	NetworkRobustness float64 `json:"NetworkRobustness"`
}

// DamagedNodeCount counts nodes flagged as damaged in this run.
func (r *SimulationResult) DamagedNodeCount() int {
	count := 0
	for _, n := range r.Nodes {
		if n.Damaged {
			count++
		}
	}
	return count
}

// MetricsHeader returns the CSV column names matching FlatRecord, in
// order. One exported row per archetype is the whole export format.
func MetricsHeader() []string {
	return []string{
		"archetype",
		"nodes",
		"edges",
		"total_transported",
		"utilization_rate",
		"energy_efficiency",
		"avg_speed",
		"throughput",
		"total_energy_used",
		"total_time",
		"pathway_efficiency",
		"network_robustness",
	}
}

// FlatRecord serializes the result's metrics as one flat row aligned
// with MetricsHeader.
func (r *SimulationResult) FlatRecord() []string {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
	return []string{
		string(r.Archetype),
		strconv.Itoa(len(r.Nodes)),
		strconv.Itoa(len(r.Edges)),
		f(r.TotalTransported),
		f(r.UtilizationRate),
		f(r.EnergyEfficiency),
		f(r.AvgSpeed),
		f(r.Throughput),
		f(r.TotalEnergyUsed),
		f(r.TotalTime),
		f(r.PathwayEfficiency),
		f(r.NetworkRobustness),
	}
}

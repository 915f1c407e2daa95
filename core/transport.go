package core

import (
	"math"
	"math/rand"
)

// Multipliers applied to an edge whose either endpoint is damaged.
const (
	damagedCapacityFactor   = 0.3
	damagedEfficiencyFactor = 0.5
)

// EdgeFlow is the computed transport outcome for a single edge. The
// presentation layer animates these; the aggregates in
// SimulationResult are sums and means over them.
type EdgeFlow struct {
	Edge        Edge    `json:"Edge"`
	Transported float64 `json:"Transported"` // after environment, damage and noise
	EnergyUsed  float64 `json:"EnergyUsed"`
	TransitTime float64 `json:"TransitTime"`
	// PathwayEfficiency is transported per unit energy; 0 when the
	// edge used no energy.
	PathwayEfficiency float64 `json:"PathwayEfficiency"`
}

// aggregate collects the run-level metrics produced alongside the
// per-edge flows.
type aggregate struct {
	totalTransported  float64
	totalEnergy       float64
	totalTime         float64
	utilization       float64
	energyEfficiency  float64
	avgSpeed          float64
	throughput        float64
	pathwayEfficiency float64
}

// simulateTransport computes per-edge flow and the aggregate metrics
// for one generated network. Each edge is closed-form arithmetic:
//
//  1. damage penalty on capacity/efficiency if either endpoint is
//     damaged,
//  2. base transport = min(capacity, concentration · efficiency),
//  3. one uniform noise draw in ±NoiseLevel,
//  4. actual = max(0, base · environment · (1 + noise)).
//
// Every aggregate ratio falls back to zero on a zero denominator;
// degenerate networks (no edges, zero time or energy) are valid
// inputs, not errors.
func simulateTransport(nodes []Node, edges []Edge, p Parameters, rng *rand.Rand) ([]EdgeFlow, aggregate) {
	env := p.EnvironmentalMultiplier()

	flows := make([]EdgeFlow, 0, len(edges))
	var agg aggregate
	var pathwaySum float64

	for _, e := range edges {
		from := nodes[e.From]
		to := nodes[e.To]

		capacity := e.Capacity
		efficiency := e.Efficiency
		if from.Damaged || to.Damaged {
			capacity *= damagedCapacityFactor
			efficiency *= damagedEfficiencyFactor
		}

		base := math.Min(capacity, p.NutrientConcentration*efficiency)
		noise := (rng.Float64()*2 - 1) * p.NoiseLevel
		transported := base * env * (1 + noise)
		if transported < 0 {
			transported = 0
		}

		energy := transported * p.EnergyRate
		transit := from.Position().DistanceTo(to.Position()) / p.TransportSpeed

		pathway := 0.0
		if energy > 0 {
			pathway = transported / energy
		}

		flows = append(flows, EdgeFlow{
			Edge:              e,
			Transported:       transported,
			EnergyUsed:        energy,
			TransitTime:       transit,
			PathwayEfficiency: pathway,
		})

		agg.totalTransported += transported
		agg.totalEnergy += energy
		agg.totalTime += transit
		pathwaySum += pathway
	}

	if m := float64(len(edges)); m > 0 {
		// Edges draw independently, so utilization can exceed 100%
		// when many edges each run near full concentration. That is
		// model behavior, not a bug; it is deliberately not clamped.
		agg.utilization = agg.totalTransported / (p.NutrientConcentration * m) * 100
		agg.pathwayEfficiency = pathwaySum / m
	}
	if agg.totalEnergy > 0 {
		agg.energyEfficiency = agg.totalTransported / agg.totalEnergy
	}
	if agg.totalTime > 0 {
		agg.avgSpeed = agg.totalTransported / agg.totalTime
	}
	if p.SimulationSeconds > 0 {
		agg.throughput = agg.totalTransported / (p.SimulationSeconds / 60)
	}

	return flows, agg
}

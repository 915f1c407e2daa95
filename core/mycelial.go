package core

import "math/rand"

// mycelialDiffusionRange is the Euclidean proximity threshold below
// which two hyphal tips exchange nutrients.
const mycelialDiffusionRange = 25.0

// mycelialBlueprint models a fungal mycelium: role-homogeneous hyphal
// nodes scattered uniformly, connected by short-range diffusion in
// both directions.
type mycelialBlueprint struct{}

func (mycelialBlueprint) Roles() []NodeRole {
	return []NodeRole{RoleHyphal}
}

func (mycelialBlueprint) GenerateNodes(n int, damageRate float64, rng *rand.Rand) []Node {
	nodes := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, Node{
			ID:         i,
			Role:       RoleHyphal,
			X:          rng.Float64() * CanvasSize,
			Y:          rng.Float64() * CanvasSize,
			Capacity:   30 + rng.Float64()*50,
			Efficiency: drawEfficiency(rng),
			Damaged:    drawDamaged(damageRate, rng),
		})
	}
	return nodes
}

// GenerateEdges connects every ordered pair of distinct nodes closer
// than the diffusion range. The quadratic scan is fine at the intended
// scale of a few dozen hyphal tips.
func (mycelialBlueprint) GenerateEdges(nodes []Node) []Edge {
	var edges []Edge
	for i := range nodes {
		for j := range nodes {
			if i == j {
				continue
			}
			if nodes[i].Position().DistanceTo(nodes[j].Position()) < mycelialDiffusionRange {
				edges = append(edges, Edge{From: nodes[i].ID, To: nodes[j].ID, Capacity: 45, Efficiency: 0.7, Type: TransportDiffusion})
			}
		}
	}
	return edges
}

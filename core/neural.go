package core

import "math/rand"

// neuralBlueprint models signal transport through a nervous system:
// one brain node, a spinal column descending from it, and peripheral
// nodes spread over the whole canvas.
type neuralBlueprint struct{}

func (neuralBlueprint) Roles() []NodeRole {
	return []NodeRole{RoleBrain, RoleSpinal, RolePeripheral}
}

// GenerateNodes assigns roles positionally: index 0 is the brain, the
// first 20% of indices are spinal, the rest are peripheral.
func (neuralBlueprint) GenerateNodes(n int, damageRate float64, rng *rand.Rand) []Node {
	nodes := make([]Node, 0, n)
	spinalCut := 0.2 * float64(n)

	for i := 0; i < n; i++ {
		var node Node
		switch {
		case i == 0:
			node = Node{
				ID:       i,
				Role:     RoleBrain,
				X:        50,
				Y:        90,
				Capacity: jittered(120, 5, rng),
			}
		case float64(i) < spinalCut:
			// Spinal column descends straight below the brain.
			node = Node{
				ID:       i,
				Role:     RoleSpinal,
				X:        50,
				Y:        85 - 60*float64(i)/spinalCut,
				Capacity: jittered(90, 5, rng),
			}
		default:
			node = Node{
				ID:       i,
				Role:     RolePeripheral,
				X:        rng.Float64() * CanvasSize,
				Y:        rng.Float64() * CanvasSize,
				Capacity: jittered(50, 5, rng),
			}
		}
		node.Efficiency = drawEfficiency(rng)
		node.Damaged = drawDamaged(damageRate, rng)
		nodes = append(nodes, node)
	}
	return nodes
}

func (neuralBlueprint) GenerateEdges(nodes []Node) []Edge {
	brains := filterByRole(nodes, RoleBrain)
	spinals := filterByRole(nodes, RoleSpinal)
	peripherals := filterByRole(nodes, RolePeripheral)

	var edges []Edge

	// Every brain drives every spinal segment.
	for _, b := range brains {
		for _, s := range spinals {
			edges = append(edges, Edge{From: b.ID, To: s.ID, Capacity: 100, Efficiency: 0.95, Type: TransportElectrical})
		}
	}

	// Each spinal segment innervates its four nearest peripherals.
	for _, s := range spinals {
		for _, p := range nearestByManhattan(s, peripherals, 4) {
			edges = append(edges, Edge{From: s.ID, To: p.ID, Capacity: 70, Efficiency: 0.85, Type: TransportElectrical})
		}
	}

	return edges
}

package core

import "math/rand"

// vascularBlueprint models plant vascular transport: a single root,
// a stem column climbing the trunk, and a canopy of leaves. Xylem
// edges carry water/nutrients upward, phloem edges drain sugars back
// from the leaves.
type vascularBlueprint struct{}

func (vascularBlueprint) Roles() []NodeRole {
	return []NodeRole{RoleRoot, RoleStem, RoleLeaf}
}

// GenerateNodes assigns roles positionally: index 0 is the root, the
// first 30% of indices are stem, the rest are leaves.
func (vascularBlueprint) GenerateNodes(n int, damageRate float64, rng *rand.Rand) []Node {
	nodes := make([]Node, 0, n)
	stemCut := 0.3 * float64(n)

	for i := 0; i < n; i++ {
		var node Node
		switch {
		case i == 0:
			node = Node{
				ID:       i,
				Role:     RoleRoot,
				X:        50,
				Y:        10,
				Capacity: jittered(100, 10, rng),
			}
		case float64(i) < stemCut:
			// Stem column hugs the trunk; height climbs with index.
			node = Node{
				ID:       i,
				Role:     RoleStem,
				X:        50 + (rng.Float64()*2-1)*15,
				Y:        15 + 55*float64(i)/stemCut,
				Capacity: jittered(70, 10, rng),
			}
		default:
			// Leaves scatter across the upper band of the canvas.
			node = Node{
				ID:       i,
				Role:     RoleLeaf,
				X:        rng.Float64() * CanvasSize,
				Y:        60 + rng.Float64()*35,
				Capacity: jittered(40, 10, rng),
			}
		}
		node.Efficiency = drawEfficiency(rng)
		node.Damaged = drawDamaged(damageRate, rng)
		nodes = append(nodes, node)
	}
	return nodes
}

func (vascularBlueprint) GenerateEdges(nodes []Node) []Edge {
	roots := filterByRole(nodes, RoleRoot)
	stems := filterByRole(nodes, RoleStem)
	leaves := filterByRole(nodes, RoleLeaf)

	var edges []Edge

	// Xylem trunk: every root feeds every stem.
	for _, r := range roots {
		for _, s := range stems {
			edges = append(edges, Edge{From: r.ID, To: s.ID, Capacity: 80, Efficiency: 0.9, Type: TransportXylem})
		}
	}

	// Each stem feeds its three nearest leaves.
	for _, s := range stems {
		for _, l := range nearestByManhattan(s, leaves, 3) {
			edges = append(edges, Edge{From: s.ID, To: l.ID, Capacity: 50, Efficiency: 0.8, Type: TransportXylem})
		}
	}

	// Phloem return: each leaf drains to its single nearest stem.
	for _, l := range leaves {
		for _, s := range nearestByManhattan(l, stems, 1) {
			edges = append(edges, Edge{From: l.ID, To: s.ID, Capacity: 40, Efficiency: 0.85, Type: TransportPhloem})
		}
	}

	return edges
}

package core

import (
	"math"
	"math/rand"
)

// circulatoryBlueprint models blood circulation: a central heart with
// arteries, capillaries and veins placed on concentric rings around
// it. Arterial edges push outward, venous edges return to the heart.
type circulatoryBlueprint struct{}

func (circulatoryBlueprint) Roles() []NodeRole {
	return []NodeRole{RoleHeart, RoleArtery, RoleCapillary, RoleVein}
}

// GenerateNodes assigns roles positionally: index 0 is the heart, the
// first 30% of indices are arteries, up to 70% are capillaries, the
// rest are veins. Non-heart nodes sit on concentric rings at angle
// 2π·i/N.
func (circulatoryBlueprint) GenerateNodes(n int, damageRate float64, rng *rand.Rand) []Node {
	nodes := make([]Node, 0, n)
	arteryCut := 0.3 * float64(n)
	capillaryCut := 0.7 * float64(n)

	for i := 0; i < n; i++ {
		var node Node
		angle := 2 * math.Pi * float64(i) / float64(n)

		switch {
		case i == 0:
			node = Node{
				ID:       i,
				Role:     RoleHeart,
				X:        50,
				Y:        50,
				Capacity: jittered(150, 8, rng),
			}
		case float64(i) < arteryCut:
			node = Node{
				ID:       i,
				Role:     RoleArtery,
				X:        50 + 25*math.Cos(angle),
				Y:        50 + 25*math.Sin(angle),
				Capacity: jittered(80, 8, rng),
			}
		case float64(i) < capillaryCut:
			node = Node{
				ID:       i,
				Role:     RoleCapillary,
				X:        50 + 40*math.Cos(angle),
				Y:        50 + 40*math.Sin(angle),
				Capacity: jittered(30, 8, rng),
			}
		default:
			node = Node{
				ID:       i,
				Role:     RoleVein,
				X:        50 + 35*math.Cos(angle),
				Y:        50 + 35*math.Sin(angle),
				Capacity: jittered(60, 8, rng),
			}
		}
		node.Efficiency = drawEfficiency(rng)
		node.Damaged = drawDamaged(damageRate, rng)
		nodes = append(nodes, node)
	}
	return nodes
}

func (circulatoryBlueprint) GenerateEdges(nodes []Node) []Edge {
	hearts := filterByRole(nodes, RoleHeart)
	arteries := filterByRole(nodes, RoleArtery)
	capillaries := filterByRole(nodes, RoleCapillary)
	veins := filterByRole(nodes, RoleVein)

	var edges []Edge

	// The heart pumps into every artery.
	for _, h := range hearts {
		for _, a := range arteries {
			edges = append(edges, Edge{From: h.ID, To: a.ID, Capacity: 120, Efficiency: 0.92, Type: TransportArterial})
		}
	}

	// Each artery supplies its three nearest capillaries.
	for _, a := range arteries {
		for _, c := range nearestByManhattan(a, capillaries, 3) {
			edges = append(edges, Edge{From: a.ID, To: c.ID, Capacity: 60, Efficiency: 0.8, Type: TransportArterial})
		}
	}

	// Each capillary drains into its single nearest vein.
	for _, c := range capillaries {
		for _, v := range nearestByManhattan(c, veins, 1) {
			edges = append(edges, Edge{From: c.ID, To: v.ID, Capacity: 40, Efficiency: 0.75, Type: TransportVenous})
		}
	}

	// Every vein returns to every heart, closing the loop.
	for _, v := range veins {
		for _, h := range hearts {
			edges = append(edges, Edge{From: v.ID, To: h.ID, Capacity: 80, Efficiency: 0.85, Type: TransportVenous})
		}
	}

	return edges
}

package core

import "math/rand"

// NodeRole identifies the functional role a node plays within its
// archetype. Each archetype generates a closed role set; no role ever
// appears in a connection rule it was not generated for.
type NodeRole string

const (
	// Vascular (plant) roles.
	RoleRoot NodeRole = "root"
	RoleStem NodeRole = "stem"
	RoleLeaf NodeRole = "leaf"

	// Neural roles.
	RoleBrain      NodeRole = "brain"
	RoleSpinal     NodeRole = "spinal"
	RolePeripheral NodeRole = "peripheral"

	// Circulatory roles.
	RoleHeart     NodeRole = "heart"
	RoleArtery    NodeRole = "artery"
	RoleCapillary NodeRole = "capillary"
	RoleVein      NodeRole = "vein"

	// Mycelial networks are role-homogeneous.
	RoleHyphal NodeRole = "hyphal"
)

// Node is one transport site in a generated network. Nodes are created
// once per simulation run and are immutable afterwards; IDs are dense
// in 0..N-1 and double as indices into the run's node slice.
type Node struct {
	ID         int      `json:"ID"`
	Role       NodeRole `json:"Role"`
	X          float64  `json:"X"`
	Y          float64  `json:"Y"`
	Capacity   float64  `json:"Capacity"`
	Efficiency float64  `json:"Efficiency"`
	Damaged    bool     `json:"Damaged"`
}

// Position returns the node's coordinates on the layout canvas.
func (n Node) Position() Point {
	return Point{X: n.X, Y: n.Y}
}

// filterByRole returns the nodes carrying the given role, preserving
// input order (and therefore ascending ID order).
func filterByRole(nodes []Node, role NodeRole) []Node {
	var out []Node
	for _, n := range nodes {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

// jittered returns base + Uniform(-jitter, +jitter).
func jittered(base, jitter float64, rng *rand.Rand) float64 {
	return base + (rng.Float64()*2-1)*jitter
}

// drawEfficiency samples the per-node efficiency ~ Uniform(0.7, 0.95).
func drawEfficiency(rng *rand.Rand) float64 {
	return 0.70 + rng.Float64()*0.25
}

// drawDamaged samples the per-node damage flag ~ Bernoulli(rate/100).
func drawDamaged(damageRate float64, rng *rand.Rand) bool {
	return rng.Float64() < damageRate/100
}

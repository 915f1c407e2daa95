package core

import (
	"math/rand"
	"testing"
)

func TestNeuralGenerateNodes_RoleSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	nodes := neuralBlueprint{}.GenerateNodes(10, 0, rng)

	if nodes[0].Role != RoleBrain || nodes[0].X != 50 || nodes[0].Y != 90 {
		t.Errorf("node 0 = %+v, want brain at (50, 90)", nodes[0])
	}
	// With N=10 the 20% spinal cut covers index 1 only.
	if nodes[1].Role != RoleSpinal {
		t.Errorf("node 1 role = %s, want spinal", nodes[1].Role)
	}
	for i := 2; i < 10; i++ {
		if nodes[i].Role != RolePeripheral {
			t.Errorf("node %d role = %s, want peripheral", i, nodes[i].Role)
		}
	}
}

func TestNeuralGenerateNodes_SpinalColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	nodes := neuralBlueprint{}.GenerateNodes(50, 0, rng)

	spinals := filterByRole(nodes, RoleSpinal)
	if len(spinals) != 9 {
		t.Fatalf("spinal count = %d, want 9", len(spinals))
	}
	prevY := nodes[0].Y
	for _, s := range spinals {
		if s.X != 50 {
			t.Errorf("spinal %d x = %v, want 50", s.ID, s.X)
		}
		if s.Y >= prevY {
			t.Errorf("spinal %d y = %v, should descend below %v", s.ID, s.Y, prevY)
		}
		prevY = s.Y
	}
}

func TestNeuralGenerateNodes_CapacityBands(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	nodes := neuralBlueprint{}.GenerateNodes(40, 0, rng)

	for _, n := range nodes {
		var lo, hi float64
		switch n.Role {
		case RoleBrain:
			lo, hi = 115, 125
		case RoleSpinal:
			lo, hi = 85, 95
		case RolePeripheral:
			lo, hi = 45, 55
		}
		if n.Capacity < lo || n.Capacity > hi {
			t.Errorf("%s node %d capacity %v outside [%v, %v]", n.Role, n.ID, n.Capacity, lo, hi)
		}
	}
}

func TestNeuralGenerateEdges_Topology(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	bp := neuralBlueprint{}
	nodes := bp.GenerateNodes(10, 0, rng)
	edges := bp.GenerateEdges(nodes)

	// 1 brain x 1 spinal, 1 spinal x 4 nearest peripherals.
	if len(edges) != 1+4 {
		t.Fatalf("edge count = %d, want 5", len(edges))
	}

	for _, e := range edges {
		if e.Type != TransportElectrical {
			t.Errorf("edge %+v type = %s, want electrical", e, e.Type)
		}
		switch nodes[e.From].Role {
		case RoleBrain:
			if nodes[e.To].Role != RoleSpinal || e.Capacity != 100 || e.Efficiency != 0.95 {
				t.Errorf("bad brain edge %+v", e)
			}
		case RoleSpinal:
			if nodes[e.To].Role != RolePeripheral || e.Capacity != 70 || e.Efficiency != 0.85 {
				t.Errorf("bad spinal edge %+v", e)
			}
		default:
			t.Errorf("unexpected source role %s", nodes[e.From].Role)
		}
	}
}

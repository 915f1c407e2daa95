package core

import (
	"math"
	"sort"
)

// CanvasSize is the side length of the square layout canvas. All node
// positions live in [0, CanvasSize] on both axes.
const CanvasSize = 100.0

// Point is a 2D position on the layout canvas.
type Point struct {
	X, Y float64
}

// DistanceTo returns the straight-line (Euclidean) distance between
// two points. Transit times and mycelial proximity use this metric.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ManhattanTo returns the L1 distance between two points. The
// nearest-k connection rules use this metric.
func (p Point) ManhattanTo(other Point) float64 {
	return math.Abs(p.X-other.X) + math.Abs(p.Y-other.Y)
}

// nearestByManhattan returns up to k nodes from candidates, ordered by
// ascending Manhattan distance to origin. Equal distances are broken
// by ascending node ID so edge generation is deterministic for a fixed
// layout.
func nearestByManhattan(origin Node, candidates []Node, k int) []Node {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}

	sorted := make([]Node, len(candidates))
	copy(sorted, candidates)

	op := origin.Position()
	sort.SliceStable(sorted, func(i, j int) bool {
		di := sorted[i].Position().ManhattanTo(op)
		dj := sorted[j].Position().ManhattanTo(op)
		if di != dj {
			return di < dj
		}
		return sorted[i].ID < sorted[j].ID
	})

	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}

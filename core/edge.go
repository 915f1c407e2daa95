package core

// TransportType labels the biological mechanism an edge models. It is
// carried through to presentation (edge coloring) and never affects
// the transport arithmetic.
type TransportType string

const (
	TransportXylem      TransportType = "xylem"
	TransportPhloem     TransportType = "phloem"
	TransportElectrical TransportType = "electrical"
	TransportArterial   TransportType = "arterial"
	TransportVenous     TransportType = "venous"
	TransportDiffusion  TransportType = "diffusion"
)

// Edge is a directed, capacity-weighted connection between two nodes
// of the same run. From and To are node IDs (= indices into the run's
// node slice). Multiple edges between a pair are valid and additive;
// the generators never deduplicate.
type Edge struct {
	From       int           `json:"From"`
	To         int           `json:"To"`
	Capacity   float64       `json:"Capacity"`
	Efficiency float64       `json:"Efficiency"`
	Type       TransportType `json:"Type"`
}

package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SimCollector bundles Prometheus metrics for the simulation engine
// and provides a ready-to-serve /metrics handler. It satisfies the
// engine's MetricsRecorder interface so the engine can drive counters
// and gauges directly from its run path.
type SimCollector struct {
	gatherer prometheus.Gatherer

	Runs         *prometheus.CounterVec
	RunDurations *prometheus.HistogramVec

	NetworkNodes     *prometheus.GaugeVec
	NetworkEdges     *prometheus.GaugeVec
	TotalTransported *prometheus.GaugeVec
}

// NewSimCollector registers simulation Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry
// when nil.
func NewSimCollector(reg prometheus.Registerer) (*SimCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bionet_runs_total",
		Help: "Total number of simulation runs, labeled by archetype and outcome.",
	}, []string{"archetype", "outcome"})
	runs, err := registerCounterVec(reg, runs, "bionet_runs_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bionet_run_duration_seconds",
		Help:    "Simulation run latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"archetype"})
	durations, err = registerHistogramVec(reg, durations, "bionet_run_duration_seconds")
	if err != nil {
		return nil, err
	}

	nodes, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bionet_network_nodes",
		Help: "Node count of the most recently generated network per archetype.",
	}, []string{"archetype"}), "bionet_network_nodes")
	if err != nil {
		return nil, err
	}
	edges, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bionet_network_edges",
		Help: "Edge count of the most recently generated network per archetype.",
	}, []string{"archetype"}), "bionet_network_edges")
	if err != nil {
		return nil, err
	}
	transported, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bionet_total_transported",
		Help: "Total transported amount of the most recent run per archetype.",
	}, []string{"archetype"}), "bionet_total_transported")
	if err != nil {
		return nil, err
	}

	return &SimCollector{
		gatherer:         gatherer,
		Runs:             runs,
		RunDurations:     durations,
		NetworkNodes:     nodes,
		NetworkEdges:     edges,
		TotalTransported: transported,
	}, nil
}

// ObserveRun records one completed (or rejected) run. Implements the
// engine's MetricsRecorder interface.
func (c *SimCollector) ObserveRun(archetype, outcome string, seconds float64) {
	if c == nil {
		return
	}
	if c.Runs != nil {
		c.Runs.WithLabelValues(archetype, outcome).Inc()
	}
	if c.RunDurations != nil {
		c.RunDurations.WithLabelValues(archetype).Observe(seconds)
	}
}

// SetNetworkSize records the generated topology size for a run.
func (c *SimCollector) SetNetworkSize(archetype string, nodes, edges int) {
	if c == nil {
		return
	}
	if c.NetworkNodes != nil {
		c.NetworkNodes.WithLabelValues(archetype).Set(float64(nodes))
	}
	if c.NetworkEdges != nil {
		c.NetworkEdges.WithLabelValues(archetype).Set(float64(edges))
	}
}

// ObserveTransport records the aggregate transported amount of a run.
func (c *SimCollector) ObserveTransport(archetype string, total float64) {
	if c == nil {
		return
	}
	if c.TotalTransported != nil {
		c.TotalTransported.WithLabelValues(archetype).Set(total)
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SimCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

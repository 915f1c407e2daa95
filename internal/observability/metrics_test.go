package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRunRecordsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSimCollector(reg)
	if err != nil {
		t.Fatalf("NewSimCollector: %v", err)
	}

	collector.ObserveRun("vascular", "ok", 0.002)
	collector.ObserveRun("vascular", "ok", 0.004)
	collector.ObserveRun("neural", "invalid", 0.001)

	if got := testutil.ToFloat64(collector.Runs.WithLabelValues("vascular", "ok")); got != 2 {
		t.Fatalf("bionet_runs_total{vascular,ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.Runs.WithLabelValues("neural", "invalid")); got != 1 {
		t.Fatalf("bionet_runs_total{neural,invalid} = %v, want 1", got)
	}

	if count := histogramSampleCount(t, reg, "bionet_run_duration_seconds", map[string]string{
		"archetype": "vascular",
	}); count != 2 {
		t.Fatalf("bionet_run_duration_seconds sample_count = %d, want 2", count)
	}
}

func TestNetworkGaugesTrackLatestRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSimCollector(reg)
	if err != nil {
		t.Fatalf("NewSimCollector: %v", err)
	}

	collector.SetNetworkSize("mycelial", 30, 122)
	collector.SetNetworkSize("mycelial", 40, 210)
	collector.ObserveTransport("mycelial", 512.5)

	if got := testutil.ToFloat64(collector.NetworkNodes.WithLabelValues("mycelial")); got != 40 {
		t.Fatalf("bionet_network_nodes = %v, want 40", got)
	}
	if got := testutil.ToFloat64(collector.NetworkEdges.WithLabelValues("mycelial")); got != 210 {
		t.Fatalf("bionet_network_edges = %v, want 210", got)
	}
	if got := testutil.ToFloat64(collector.TotalTransported.WithLabelValues("mycelial")); got != 512.5 {
		t.Fatalf("bionet_total_transported = %v, want 512.5", got)
	}
}

func TestMetricsHandlerExposesSimulationMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSimCollector(reg)
	if err != nil {
		t.Fatalf("NewSimCollector: %v", err)
	}
	collector.ObserveRun("circulatory", "ok", 0.003)
	collector.SetNetworkSize("circulatory", 20, 34)
	collector.ObserveTransport("circulatory", 700)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"bionet_runs_total",
		"bionet_run_duration_seconds",
		"bionet_network_nodes",
		"bionet_network_edges",
		"bionet_total_transported",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected %q in /metrics output", metric)
		}
	}
}

func TestNewSimCollectorTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewSimCollector(reg)
	if err != nil {
		t.Fatalf("first NewSimCollector: %v", err)
	}
	second, err := NewSimCollector(reg)
	if err != nil {
		t.Fatalf("second NewSimCollector: %v", err)
	}

	first.ObserveRun("vascular", "ok", 0.001)
	second.ObserveRun("vascular", "ok", 0.001)

	if got := testutil.ToFloat64(second.Runs.WithLabelValues("vascular", "ok")); got != 2 {
		t.Fatalf("shared counter = %v, want 2", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var collector *SimCollector
	collector.ObserveRun("vascular", "ok", 0.001)
	collector.SetNetworkSize("vascular", 1, 1)
	collector.ObserveTransport("vascular", 1)
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, lp := range got {
		if v, ok := want[lp.GetName()]; ok && v == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}

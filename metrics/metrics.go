// Package metrics exposes the Solver's internals to Prometheus: queue
// depth, current gap, nodes popped, and per-subproblem compile counts and
// durations. Grounded on a PrometheusMetrics collector from the retrieved
// corpus (gauges/histograms/counters registered via promauto.With against
// an injected registry, with Disable/Enable for test isolation).
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records the Solver's branch-and-bound progress. All methods
// are nil-safe on a nil *Collector, so a Solver built without metrics pays
// no cost and needs no nil checks at call sites.
type Collector struct {
	queueDepth   prometheus.Gauge
	gap          prometheus.Gauge
	nodesPopped  prometheus.Counter
	compiles     *prometheus.CounterVec
	compileTime  *prometheus.HistogramVec

	mu      sync.RWMutex
	enabled bool
}

// New registers the mddbb_* metrics with registry and returns a ready
// Collector. A nil registry falls back to prometheus.DefaultRegisterer.
func New(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Collector{
		enabled: true,

		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mddbb",
			Name:      "queue_depth",
			Help:      "Number of open subproblems currently on the Solver's priority queue",
		}),

		gap: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mddbb",
			Name:      "gap",
			Help:      "Current optimality gap between the incumbent lower bound and the global upper bound",
		}),

		nodesPopped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mddbb",
			Name:      "nodes_popped_total",
			Help:      "Cumulative count of subproblems popped off the priority queue",
		}),

		compiles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mddbb",
			Name:      "compiles_total",
			Help:      "Cumulative count of MDD compilations, labeled by mode",
		}, []string{"mode"}), // mode: restricted, relaxed

		compileTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mddbb",
			Name:      "compile_duration_seconds",
			Help:      "Per-subproblem MDD compile duration, labeled by mode",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
	}
}

// SetQueueDepth records the Solver's current open-subproblem count.
func (c *Collector) SetQueueDepth(depth int) {
	if c == nil || !c.isEnabled() {
		return
	}
	c.queueDepth.Set(float64(depth))
}

// SetGap records the Solver's current optimality gap.
func (c *Collector) SetGap(gap float64) {
	if c == nil || !c.isEnabled() {
		return
	}
	c.gap.Set(gap)
}

// IncNodesPopped increments the popped-subproblem counter.
func (c *Collector) IncNodesPopped() {
	if c == nil || !c.isEnabled() {
		return
	}
	c.nodesPopped.Inc()
}

// ObserveCompile records one MDD compilation of the given mode ("restricted"
// or "relaxed") and its wall-clock duration.
func (c *Collector) ObserveCompile(mode string, d time.Duration) {
	if c == nil || !c.isEnabled() {
		return
	}
	c.compiles.WithLabelValues(mode).Inc()
	c.compileTime.WithLabelValues(mode).Observe(d.Seconds())
}

func (c *Collector) isEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.enabled
}

// Disable stops recording without unregistering the underlying metrics;
// useful for test isolation.
func (c *Collector) Disable() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
}

// Enable resumes recording after Disable.
func (c *Collector) Enable() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
}

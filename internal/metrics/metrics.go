package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "screenpulse"

// Metrics owns the service's Prometheus collectors and their registry.
//
// All observe methods are safe to call on a nil *Metrics, so components
// can be built without metrics in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
	dashboardBuilds   *prometheus.CounterVec
	dashboardStocks   prometheus.Gauge
	shapeRejections   prometheus.Counter
	snapshotRefreshes *prometheus.CounterVec
}

// New creates a Metrics instance backed by a fresh registry that also
// exposes Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dashboardBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_builds_total",
			Help:      "Dashboard builds by result (ok|error).",
		}, []string{"result"}),
		dashboardStocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dashboard_stocks",
			Help:      "Total stock count of the most recent dashboard.",
		}),
		shapeRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "benchmark_shape_rejections_total",
			Help:      "Benchmark series rejected for mismatched array lengths.",
		}),
		snapshotRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_refreshes_total",
			Help:      "Scheduled dashboard snapshot refreshes by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpLatency,
		m.dashboardBuilds,
		m.dashboardStocks,
		m.shapeRejections,
		m.snapshotRefreshes,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDashboard records a dashboard build; total is ignored on error.
func (m *Metrics) ObserveDashboard(total int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.dashboardBuilds.WithLabelValues("error").Inc()
		return
	}
	m.dashboardBuilds.WithLabelValues("ok").Inc()
	m.dashboardStocks.Set(float64(total))
}

// ObserveShapeRejections adds n rejected benchmark series.
func (m *Metrics) ObserveShapeRejections(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.shapeRejections.Add(float64(n))
}

// ObserveSnapshot records one scheduled refresh.
func (m *Metrics) ObserveSnapshot(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.snapshotRefreshes.WithLabelValues(result).Inc()
}

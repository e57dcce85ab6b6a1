package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all terminal metrics.
type Metrics struct {
	registry *prometheus.Registry

	Rebuilds        prometheus.Counter
	RebuildDuration prometheus.Histogram
	EntriesScanned  prometheus.Gauge
	ViewSize        prometheus.Gauge
	LedgerEntries   prometheus.Gauge
	Upserts         prometheus.Counter
	HTTPRequests    *prometheus.CounterVec
}

// New creates and registers all metrics.
func New(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.Rebuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "view_rebuilds_total",
		Help:      "Total number of view rebuilds",
	})
	m.RebuildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "view_rebuild_duration_seconds",
		Help:      "View rebuild duration in seconds",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	})
	m.EntriesScanned = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: cfg.Namespace,
		Name:      "view_entries_scanned",
		Help:      "Ledger entries scanned by the last rebuild",
	})
	m.ViewSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: cfg.Namespace,
		Name:      "view_size",
		Help:      "Number of entries in the current view",
	})
	m.LedgerEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: cfg.Namespace,
		Name:      "ledger_entries",
		Help:      "Number of distinct identities in the ledger",
	})
	m.Upserts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "ledger_upserts_total",
		Help:      "Total number of stock deltas applied",
	})
	m.HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	registry.MustRegister(
		m.Rebuilds,
		m.RebuildDuration,
		m.EntriesScanned,
		m.ViewSize,
		m.LedgerEntries,
		m.Upserts,
		m.HTTPRequests,
	)

	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRebuild implements view.Observer.
func (m *Metrics) ObserveRebuild(elapsed time.Duration, scanned, size int) {
	m.Rebuilds.Inc()
	m.RebuildDuration.Observe(elapsed.Seconds())
	m.EntriesScanned.Set(float64(scanned))
	m.ViewSize.Set(float64(size))
}

// ObserveUpserts records n applied deltas and the resulting ledger size.
func (m *Metrics) ObserveUpserts(n, ledgerSize int) {
	m.Upserts.Add(float64(n))
	m.LedgerEntries.Set(float64(ledgerSize))
}

// SetLedgerEntries records the ledger size.
func (m *Metrics) SetLedgerEntries(n int) {
	m.LedgerEntries.Set(float64(n))
}

// Middleware counts requests by method, route and status.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		m.HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

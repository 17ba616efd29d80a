// Package metrics provides Prometheus instrumentation for the trade saga
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tradesaga"

// codeOK labels trades that finished without an error code
const codeOK = "ok"

// Prometheus records saga, HTTP and connection pool metrics on its own registry
type Prometheus struct {
	registry *prometheus.Registry

	stepDuration    *prometheus.HistogramVec
	compensations   *prometheus.CounterVec
	reconciliations *prometheus.CounterVec
	trades          *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbOpen         prometheus.Gauge
	dbInUse        prometheus.Gauge
	dbIdle         prometheus.Gauge
	dbWaitCount    prometheus.Gauge
	dbWaitDuration prometheus.Gauge
}

// New creates the collectors and registers them with a fresh registry
func New() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),

		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Duration of trade saga steps in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"step", "outcome"}),
		compensations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compensations_total",
			Help:      "Budget releases after a failed saga step",
		}, []string{"step"}),
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_items_total",
			Help:      "Liability items recorded for manual reconciliation",
		}, []string{"reason"}),
		trades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_total",
			Help:      "Finished trades and sells by result code",
		}, []string{"kind", "code"}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "path"}),

		dbOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Open database connections",
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Database connections currently in use",
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_idle_connections",
			Help:      "Idle database connections",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_wait_count",
			Help:      "Total connections waited for",
		}),
		dbWaitDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_wait_duration_seconds",
			Help:      "Total time blocked waiting for a connection",
		}),
	}

	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.stepDuration,
		p.compensations,
		p.reconciliations,
		p.trades,
		p.httpRequests,
		p.httpDuration,
		p.dbOpen,
		p.dbInUse,
		p.dbIdle,
		p.dbWaitCount,
		p.dbWaitDuration,
	)
	return p
}

// ObserveStep records the duration and outcome of one saga step
func (p *Prometheus) ObserveStep(step, outcome string, duration time.Duration) {
	p.stepDuration.WithLabelValues(step, outcome).Observe(duration.Seconds())
}

// IncCompensation counts a budget release
func (p *Prometheus) IncCompensation(step string) {
	p.compensations.WithLabelValues(step).Inc()
}

// IncReconciliation counts a recorded liability item
func (p *Prometheus) IncReconciliation(reason string) {
	p.reconciliations.WithLabelValues(reason).Inc()
}

// IncTrade counts a finished trade. An empty code means success.
func (p *Prometheus) IncTrade(kind, code string) {
	if code == "" {
		code = codeOK
	}
	p.trades.WithLabelValues(kind, code).Inc()
}

// ObserveHTTP records one served request. path should be the route pattern.
func (p *Prometheus) ObserveHTTP(method, path string, status int, duration time.Duration) {
	p.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPoolStats publishes a database pool snapshot
func (p *Prometheus) RecordPoolStats(stats sql.DBStats) {
	p.dbOpen.Set(float64(stats.OpenConnections))
	p.dbInUse.Set(float64(stats.InUse))
	p.dbIdle.Set(float64(stats.Idle))
	p.dbWaitCount.Set(float64(stats.WaitCount))
	p.dbWaitDuration.Set(stats.WaitDuration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

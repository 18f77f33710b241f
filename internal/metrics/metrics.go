// Package metrics exposes sensormon's runtime counters as Prometheus
// collectors: records processed and dropped, alerts fired, actor
// timeouts, the worker pool's in-flight task count, and the streaming
// queue's depth.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns every collector registered by sensormon. The zero value
// is not usable; construct with New. A nil *Metrics is safe to call
// methods on, so wiring metrics in is optional everywhere it's consumed.
type Metrics struct {
	recordsProcessed *prometheus.CounterVec
	recordsDropped   prometheus.Counter
	alertsFired      *prometheus.CounterVec
	actorTimeouts    prometheus.Counter
	poolInFlight     prometheus.Gauge
	queueDepth       prometheus.Gauge
}

// New builds and registers sensormon's collectors against reg. Pass
// prometheus.NewRegistry() for an isolated registry (tests) or nil to use
// the global DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		recordsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sensormon_records_processed_total",
			Help: "Total sensor records that completed the pipeline, by type.",
		}, []string{"type"}),
		recordsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sensormon_records_dropped_total",
			Help: "Total raw lines dropped for failing to parse.",
		}),
		alertsFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sensormon_alerts_fired_total",
			Help: "Total threshold alerts fired, by kind.",
		}, []string{"kind"}),
		actorTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sensormon_actor_timeouts_total",
			Help: "Total actor requests that exceeded their reply deadline.",
		}),
		poolInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sensormon_worker_pool_in_flight",
			Help: "Tasks currently executing in the worker pool.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sensormon_stream_queue_depth",
			Help: "Items currently buffered in the streaming queue.",
		}),
	}

	reg.MustRegister(
		m.recordsProcessed,
		m.recordsDropped,
		m.alertsFired,
		m.actorTimeouts,
		m.poolInFlight,
		m.queueDepth,
	)
	return m
}

// Handler returns the HTTP handler serving this process's metrics in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// RecordProcessed increments the per-type processed counter.
func (m *Metrics) RecordProcessed(sensorType string) {
	if m == nil {
		return
	}
	m.recordsProcessed.WithLabelValues(sensorType).Inc()
}

// RecordDropped increments the dropped-line counter.
func (m *Metrics) RecordDropped() {
	if m == nil {
		return
	}
	m.recordsDropped.Inc()
}

// AlertFired increments the per-kind alert counter.
func (m *Metrics) AlertFired(kind string) {
	if m == nil {
		return
	}
	m.alertsFired.WithLabelValues(kind).Inc()
}

// ActorTimeout increments the actor-deadline-exceeded counter.
func (m *Metrics) ActorTimeout() {
	if m == nil {
		return
	}
	m.actorTimeouts.Inc()
}

// SetPoolInFlight sets the worker pool's current in-flight task count.
func (m *Metrics) SetPoolInFlight(n int) {
	if m == nil {
		return
	}
	m.poolInFlight.Set(float64(n))
}

// SetQueueDepth sets the streaming queue's current buffered item count.
func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}

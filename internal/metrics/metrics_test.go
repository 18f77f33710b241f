package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordProcessedIncrementsByType(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.RecordProcessed("temp")
	m.RecordProcessed("temp")
	assert.Equal(t, float64(2), testutil.ToFloat64(m.recordsProcessed.WithLabelValues("temp")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordProcessed("temp")
		m.RecordDropped()
		m.AlertFired("HIGH TEMP ALERT")
		m.ActorTimeout()
		m.SetPoolInFlight(3)
		m.SetQueueDepth(5)
	})
}

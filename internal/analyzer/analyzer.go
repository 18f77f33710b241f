// Package analyzer implements the per-type stateful statistical
// accumulators described in spec §3/§4.4: temperature, humidity and
// battery analyzers, each producing a plain-text report on demand.
package analyzer

import (
	"sync"

	"nrgchamp/sensormon/internal/record"
)

// Analyzer accumulates statistics for one sensor dimension and can render
// them as a plain-text report at any time.
type Analyzer interface {
	// Ingest folds r into the analyzer's accumulated state. Ingest must be
	// safe to call concurrently.
	Ingest(r record.Record)
	// Report renders the current accumulated state as plain text.
	Report() string
}

// Factory builds an Analyzer with injected thresholds; new analyzer
// variants can be registered with Manager without modifying it.
type Factory func() Analyzer

// Manager holds one Analyzer per label (spec label == sensor type string,
// e.g. "temp", "humidity", "battery") and dispatches records to them.
type Manager struct {
	mu        sync.Mutex
	analyzers map[string]Analyzer
}

// NewManager returns an empty Manager; register analyzers with Register.
func NewManager() *Manager {
	return &Manager{analyzers: make(map[string]Analyzer)}
}

// DefaultManager returns a Manager pre-registered with the three built-in
// analyzers at their spec §3 default thresholds.
func DefaultManager() *Manager {
	m := NewManager()
	m.Register(string(record.TypeTemperature), NewTemperatureAnalyzer(DefaultTempWarn, DefaultTempCritical))
	m.Register(string(record.TypeHumidity), NewHumidityAnalyzer(DefaultHumidityLow, DefaultHumidityHigh))
	m.Register(string(record.TypeBattery), NewBatteryAnalyzer(DefaultBatteryLow))
	return m
}

// Register installs analyzer under label, overwriting any prior analyzer
// registered under the same label.
func (m *Manager) Register(label string, a Analyzer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyzers[label] = a
}

// AnalyzeData dispatches r to the analyzer registered for r.Type, and,
// independently, to the battery analyzer (if any) whenever r.Type isn't
// already "battery" — the battery analyzer always sees every record so it
// can pick up battery fields carried on temperature/humidity readings.
func (m *Manager) AnalyzeData(r record.Record) {
	m.mu.Lock()
	byType, hasType := m.analyzers[string(r.Type)]
	battery, hasBattery := m.analyzers[string(record.TypeBattery)]
	m.mu.Unlock()

	if hasType {
		byType.Ingest(r)
	}
	if hasBattery && r.Type != record.TypeBattery {
		battery.Ingest(r)
	}
}

// ResultsAll returns every registered analyzer's report keyed by label.
func (m *Manager) ResultsAll() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.analyzers))
	for label, a := range m.analyzers {
		out[label] = a.Report()
	}
	return out
}

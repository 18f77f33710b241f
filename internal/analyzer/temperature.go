package analyzer

import (
	"fmt"
	"sync"

	"nrgchamp/sensormon/internal/record"
)

// Default temperature thresholds, spec §3.
const (
	DefaultTempWarn     = 25.0
	DefaultTempCritical = 30.0
)

// TemperatureAnalyzer collects every positive temperature observed.
type TemperatureAnalyzer struct {
	mu       sync.Mutex
	warn     float64
	critical float64
	values   []float64
}

// NewTemperatureAnalyzer returns a TemperatureAnalyzer using the given
// warn/critical thresholds.
func NewTemperatureAnalyzer(warn, critical float64) *TemperatureAnalyzer {
	return &TemperatureAnalyzer{warn: warn, critical: critical}
}

func (a *TemperatureAnalyzer) Ingest(r record.Record) {
	if !r.HasTemperature() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values = append(a.values, r.Temperature)
}

func (a *TemperatureAnalyzer) Report() string {
	a.mu.Lock()
	values := append([]float64(nil), a.values...)
	warn, critical := a.warn, a.critical
	a.mu.Unlock()

	if len(values) == 0 {
		return "Temperature Analysis: no data"
	}
	mean, min, max := meanMinMax(values)
	status := "Normal"
	if max > critical {
		status = "CRITICAL"
	} else if max > warn {
		status = "Warning"
	}
	return fmt.Sprintf("Temperature Analysis:\nMean: %.2f°C\nMaximum: %.2f°C\nMinimum: %.2f°C\nStatus: %s",
		mean, max, min, status)
}

func meanMinMax(values []float64) (mean, min, max float64) {
	min, max = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return sum / float64(len(values)), min, max
}

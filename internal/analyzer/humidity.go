package analyzer

import (
	"fmt"
	"sync"

	"nrgchamp/sensormon/internal/record"
)

// Default humidity thresholds, spec §3.
const (
	DefaultHumidityLow  = 30.0
	DefaultHumidityHigh = 70.0
)

// HumidityAnalyzer collects every positive humidity observed.
type HumidityAnalyzer struct {
	mu     sync.Mutex
	low    float64
	high   float64
	values []float64
}

// NewHumidityAnalyzer returns a HumidityAnalyzer using the given
// low/high thresholds.
func NewHumidityAnalyzer(low, high float64) *HumidityAnalyzer {
	return &HumidityAnalyzer{low: low, high: high}
}

func (a *HumidityAnalyzer) Ingest(r record.Record) {
	if !r.HasHumidity() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values = append(a.values, r.Humidity)
}

func (a *HumidityAnalyzer) Report() string {
	a.mu.Lock()
	values := append([]float64(nil), a.values...)
	low, high := a.low, a.high
	a.mu.Unlock()

	if len(values) == 0 {
		return "Humidity Analysis: no data"
	}
	mean, min, max := meanMinMax(values)
	status := "Normal"
	if min < low {
		status = "Too Dry"
	} else if max > high {
		status = "Too Humid"
	}
	return fmt.Sprintf("Humidity Analysis:\nMean: %.2f%%\nMaximum: %.2f%%\nMinimum: %.2f%%\nStatus: %s",
		mean, max, min, status)
}

package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"nrgchamp/sensormon/internal/record"
)

// DefaultBatteryLow is the default low-battery ratio threshold (level/max).
const DefaultBatteryLow = 0.2

type batteryObservation struct {
	serial string
	ratio  float64
}

// BatteryAnalyzer collects records carrying both batteryLevel and
// batteryMax and tracks which sensors fall below the low threshold.
type BatteryAnalyzer struct {
	mu    sync.Mutex
	low   float64
	obs   []batteryObservation
}

// NewBatteryAnalyzer returns a BatteryAnalyzer using the given low-battery
// ratio threshold.
func NewBatteryAnalyzer(low float64) *BatteryAnalyzer {
	return &BatteryAnalyzer{low: low}
}

func (a *BatteryAnalyzer) Ingest(r record.Record) {
	if !r.HasBattery() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.obs = append(a.obs, batteryObservation{serial: r.Serial, ratio: r.BatteryLevel / r.BatteryMax})
}

func (a *BatteryAnalyzer) Report() string {
	a.mu.Lock()
	obs := append([]batteryObservation(nil), a.obs...)
	low := a.low
	a.mu.Unlock()

	if len(obs) == 0 {
		return "Battery Analysis: no data"
	}
	var sum float64
	var lowList []string
	for _, o := range obs {
		sum += o.ratio
		if o.ratio < low {
			lowList = append(lowList, o.serial)
		}
	}
	mean := sum / float64(len(obs))
	sort.Strings(lowList)
	lowStr := "none"
	if len(lowList) > 0 {
		lowStr = strings.Join(lowList, ", ")
	}
	return fmt.Sprintf("Battery Analysis:\nMean Ratio: %.2f\nLow Battery Sensors: %s", mean, lowStr)
}

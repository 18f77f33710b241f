package observer

import (
	"log/slog"

	"nrgchamp/sensormon/internal/record"
)

// TemperatureMonitor logs a warning/critical message when a temperature
// record exceeds its thresholds. It ignores records whose type isn't
// "temp".
type TemperatureMonitor struct {
	Warn     float64
	Critical float64
	lg       *slog.Logger
}

// NewTemperatureMonitor returns a TemperatureMonitor with the given
// thresholds.
func NewTemperatureMonitor(warn, critical float64, lg *slog.Logger) *TemperatureMonitor {
	if lg == nil {
		lg = slog.Default()
	}
	return &TemperatureMonitor{Warn: warn, Critical: critical, lg: lg}
}

func (m *TemperatureMonitor) OnRecord(r record.Record) {
	if r.Type != record.TypeTemperature || !r.HasTemperature() {
		return
	}
	switch {
	case r.Temperature > m.Critical:
		m.lg.Error("temperature critical", "serial", r.Serial, "tempC", r.Temperature)
	case r.Temperature > m.Warn:
		m.lg.Warn("temperature warning", "serial", r.Serial, "tempC", r.Temperature)
	}
}

// BatteryMonitor logs a warning when a record's battery ratio drops below
// its threshold. It ignores records without battery data.
type BatteryMonitor struct {
	Low float64
	lg  *slog.Logger
}

// NewBatteryMonitor returns a BatteryMonitor with the given low threshold
// (a ratio, e.g. 0.2 for 20%).
func NewBatteryMonitor(low float64, lg *slog.Logger) *BatteryMonitor {
	if lg == nil {
		lg = slog.Default()
	}
	return &BatteryMonitor{Low: low, lg: lg}
}

func (m *BatteryMonitor) OnRecord(r record.Record) {
	if !r.HasBattery() {
		return
	}
	ratio := r.BatteryLevel / r.BatteryMax
	if ratio < m.Low {
		m.lg.Warn("battery low", "serial", r.Serial, "ratio", ratio)
	}
}

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nrgchamp/sensormon/internal/record"
)

func TestTemperatureAnalyzerCriticalStatus(t *testing.T) {
	a := NewTemperatureAnalyzer(DefaultTempWarn, DefaultTempCritical)
	a.Ingest(record.Record{Temperature: 24.5})
	a.Ingest(record.Record{Temperature: 31.5})
	report := a.Report()
	assert.Contains(t, report, "Maximum: 31.50°C")
	assert.Contains(t, report, "Minimum: 24.50°C")
	assert.Contains(t, report, "Status: CRITICAL")
}

func TestHumidityAnalyzerTooDry(t *testing.T) {
	a := NewHumidityAnalyzer(DefaultHumidityLow, DefaultHumidityHigh)
	a.Ingest(record.Record{Humidity: 10})
	assert.Contains(t, a.Report(), "Status: Too Dry")
}

func TestBatteryAnalyzerListsLowSensors(t *testing.T) {
	a := NewBatteryAnalyzer(DefaultBatteryLow)
	a.Ingest(record.Record{Serial: "333", BatteryLevel: 15, BatteryMax: 100})
	a.Ingest(record.Record{Serial: "111", BatteryLevel: 80, BatteryMax: 100})
	report := a.Report()
	assert.Contains(t, report, "333")
	assert.NotContains(t, report, "Low Battery Sensors: none")
}

func TestManagerDispatchesBatteryRegardlessOfType(t *testing.T) {
	m := NewManager()
	m.Register(string(record.TypeTemperature), NewTemperatureAnalyzer(DefaultTempWarn, DefaultTempCritical))
	m.Register(string(record.TypeBattery), NewBatteryAnalyzer(DefaultBatteryLow))

	m.AnalyzeData(record.Record{Type: record.TypeTemperature, Temperature: 24.5, BatteryLevel: 80, BatteryMax: 100})

	results := m.ResultsAll()
	assert.Contains(t, results[string(record.TypeTemperature)], "24.50")
	assert.Contains(t, results[string(record.TypeBattery)], "Mean Ratio: 0.80")
}

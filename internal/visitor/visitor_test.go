package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nrgchamp/sensormon/internal/composite"
	"nrgchamp/sensormon/internal/record"
)

func TestHealthVisitorClassifiesByBatteryLevel(t *testing.T) {
	m := composite.New(nil, nil)
	m.AddRecord(record.Record{Serial: "111", Type: record.TypeTemperature, BatteryLevel: 20, BatteryMax: 100})
	m.AddRecord(record.Record{Serial: "222", Type: record.TypeTemperature, BatteryLevel: 80, BatteryMax: 100})

	v := NewHealthVisitor()
	out := m.ApplyVisitor(v)
	assert.Contains(t, out, "Critical: 111")
	assert.Contains(t, out, "1 healthy")
}

func TestAnomalyVisitorReportsOutOfRange(t *testing.T) {
	m := composite.New(nil, nil)
	m.AddRecord(record.Record{Serial: "333", Type: record.TypeTemperature, Temperature: 31.5})

	v := DefaultAnomalyVisitor()
	out := m.ApplyVisitor(v)
	assert.Contains(t, out, "333: temperature 31.50°C above 30.00°C")
}

func TestAnomalyVisitorSkipsEmptyLeaves(t *testing.T) {
	m := composite.New(nil, nil)
	m.AddRecord(record.Record{Serial: "444", Type: record.TypeTemperature, Temperature: 0})

	v := DefaultAnomalyVisitor()
	out := m.ApplyVisitor(v)
	assert.Equal(t, "Anomaly Report: none", out)
}

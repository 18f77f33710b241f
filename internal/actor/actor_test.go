package actor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nrgchamp/sensormon/internal/record"
)

func TestDataStoreActorFIFOPerSerial(t *testing.T) {
	a := NewDataStoreActor()
	defer a.stop()

	a.Ingest(record.Record{Serial: "111", Type: record.TypeTemperature, Temperature: 1})
	a.Ingest(record.Record{Serial: "111", Type: record.TypeTemperature, Temperature: 2})
	a.Ingest(record.Record{Serial: "111", Type: record.TypeTemperature, Temperature: 3})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	processed, active, err := a.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, processed)
	assert.Equal(t, 1, active)

	// The Status reply is sent after the three ingests were handled, so the
	// history is safe to read here.
	hist := a.storage["111"]
	require.Len(t, hist, 3)
	for i, r := range hist {
		assert.Equal(t, float64(i+1), r.Temperature)
	}
}

func TestDataStoreActorAnalyzeCountsDistinctSensors(t *testing.T) {
	a := NewDataStoreActor()
	defer a.stop()

	a.Ingest(record.Record{Serial: "111", Type: record.TypeTemperature, Temperature: 20})
	a.Ingest(record.Record{Serial: "111", Type: record.TypeTemperature, Temperature: 22})
	a.Ingest(record.Record{Serial: "222", Type: record.TypeTemperature, Temperature: 24})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := a.Analyze(ctx, record.TypeTemperature)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
}

func TestAlertActorEmitsHighTempAndLowBattery(t *testing.T) {
	a := NewAlertActor(nil, DefaultThresholds())
	defer a.stop()

	a.Ingest(record.Record{Serial: "333", Type: record.TypeTemperature, Temperature: 31.5, BatteryLevel: 25, BatteryMax: 100})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	log, err := a.Status(ctx)
	require.NoError(t, err)
	assert.Contains(t, log, "HIGH TEMP ALERT: Sensor 333 reported 31.5°C (threshold: 30°C)")
	assert.Contains(t, log, "LOW BATTERY ALERT: Sensor 333 battery at 25.0% (threshold: 30%)")
}

func TestAlertActorNoAlertWithinBounds(t *testing.T) {
	a := NewAlertActor(nil, DefaultThresholds())
	defer a.stop()

	a.Ingest(record.Record{Serial: "111", Type: record.TypeTemperature, Temperature: 24.5, BatteryLevel: 80, BatteryMax: 100})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	log, err := a.Status(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestSubsystemSendFansToBothActors(t *testing.T) {
	s := NewSubsystem(nil)
	defer s.Shutdown()

	s.Send(record.Record{Serial: "333", Type: record.TypeTemperature, Temperature: 31.5, BatteryLevel: 25, BatteryMax: 100})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	processed, _, err := s.GetProcessed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	alerts, err := s.GetAlerts(ctx)
	require.NoError(t, err)
	assert.Contains(t, alerts, "HIGH TEMP ALERT")
}

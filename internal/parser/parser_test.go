package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nrgchamp/sensormon/internal/record"
)

func TestSelectPicksStandardBeforeManufacturerFirst(t *testing.T) {
	set := DefaultSet()

	p, ok := Select(set, "serial:111temp:2450type:tempbat:80batmax:100state:OK")
	require.True(t, ok)
	require.IsType(t, StandardParser{}, p)

	p, ok = Select(set, "manu:Qualcommserial:333temp:3150type:tempbat:25batmax:100")
	require.True(t, ok)
	require.IsType(t, ManufacturerFirstParser{}, p)

	_, ok = Select(set, "garbage:data")
	assert.False(t, ok)
}

func TestStandardParserDecodesAndNormalizes(t *testing.T) {
	r := StandardParser{}.Parse("serial:111temp:2450type:tempbat:80batmax:100state:OK")

	assert.Equal(t, "111", r.Serial)
	assert.Equal(t, record.TypeTemperature, r.Type)
	assert.InDelta(t, 24.5, r.Temperature, 0.001)
	assert.InDelta(t, 80, r.BatteryLevel, 0.001)
	assert.InDelta(t, 100, r.BatteryMax, 0.001)
	assert.Equal(t, "ok", r.State)
}

func TestManufacturerFirstParserDecodes(t *testing.T) {
	r := ManufacturerFirstParser{}.Parse("manu:Qualcommserial:333temp:3150type:tempbat:25batmax:100")

	assert.Equal(t, "Qualcomm", r.Manufacturer)
	assert.Equal(t, "333", r.Serial)
	assert.InDelta(t, 31.5, r.Temperature, 0.001)
	assert.InDelta(t, 25, r.BatteryLevel, 0.001)
}

func TestHumidityAboveHundredIsDividedByTen(t *testing.T) {
	r := StandardParser{}.Parse("serial:555hum:450")
	assert.InDelta(t, 45.0, r.Humidity, 0.001)
}

func TestEmptySerialWithManufacturerGetsSyntheticSerial(t *testing.T) {
	r := ManufacturerFirstParser{}.Parse("manu:NXPtemp:2200")
	assert.Regexp(t, `^Unknown-[0-9a-f]{8}$`, r.Serial)
}

func TestDuplicateKeyFirstOccurrenceWins(t *testing.T) {
	r := StandardParser{}.Parse("serial:111serial:222temp:2000")
	assert.Equal(t, "111", r.Serial)
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	r := StandardParser{}.Parse("serial:111foo:bartemp:2000")
	assert.Equal(t, "111", r.Serial)
	assert.InDelta(t, 20.0, r.Temperature, 0.001)
}

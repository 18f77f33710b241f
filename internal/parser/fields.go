package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"nrgchamp/sensormon/internal/record"
)

// keyField maps every known key alias (case-insensitive, already lowercased
// by tokenize) to the canonical field it populates. Spec §4.1.
var keyField = map[string]string{
	"serial":       "serial",
	"serialnumber": "serial",
	"temp":         "temperature",
	"hum":          "humidity",
	"bat":          "batteryLevel",
	"batlevel":     "batteryLevel",
	"batterylevel": "batteryLevel",
	"batmax":       "batteryMax",
	"batmin":       "batteryMin",
	"state":        "state",
	"manu":         "manufacturer",
	"manufac":      "manufacturer",
	"manufacturer": "manufacturer",
	"type":         "type",
	"error":        "error",
	"v":            "voltage",
	"v2":           "voltage",
	"v3":           "voltage",
}

// populate fills a Record from tokenized key/value pairs, then normalizes
// it per spec §3/§6. Numeric coercion failures are silent (field stays 0)
// per the ParseMalformed policy in spec §7 — parsing never fails.
func populate(tokens map[string]string) record.Record {
	r := record.Record{Timestamp: time.Now()}
	for key, val := range tokens {
		field, ok := keyField[key]
		if !ok {
			continue
		}
		switch field {
		case "serial":
			if r.Serial == "" {
				r.Serial = val
			}
		case "temperature":
			r.Temperature = parseFloat(val)
		case "humidity":
			r.Humidity = parseFloat(val)
		case "batteryLevel":
			r.BatteryLevel = parseFloat(val)
		case "batteryMax":
			r.BatteryMax = parseFloat(val)
		case "batteryMin":
			r.BatteryMin = parseFloat(val)
		case "state":
			r.State = val
		case "manufacturer":
			if r.Manufacturer == "" {
				r.Manufacturer = val
			}
		case "type":
			r.Type = record.Type(strings.ToLower(val))
		case "error":
			r.Error = val
		case "voltage":
			r.Voltage = parseFloat(val)
		}
	}
	normalize(&r)
	return r
}

// normalize applies the bit-exact adjustments required by spec §3/§6.
func normalize(r *record.Record) {
	if r.Temperature > 100 {
		r.Temperature = roundTo2(r.Temperature / 100)
	}
	if r.Humidity > 100 {
		r.Humidity = roundTo2(r.Humidity / 10)
	}
	r.State = strings.ToLower(r.State)
	if r.Serial == "" && r.Manufacturer != "" {
		r.Serial = syntheticSerial()
	}
	if r.Type == "" {
		r.Type = record.TypeUnknown
	}
}

func syntheticSerial() string {
	id := uuid.New().String()
	hex := strings.ReplaceAll(id, "-", "")
	return fmt.Sprintf("Unknown-%s", hex[:8])
}

// roundTo2 rounds half-away-from-zero to two decimal places.
func roundTo2(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v*100+0.5) / 100
	}
	return math.Floor(v*100+0.5) / 100
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// Package sink implements pluggable (formatter, transport) output pairs,
// the two orthogonal axes of spec §4.11: serialization (text/json) and
// transport (console/file). New formatters or transports can be added
// without modifying existing ones.
package sink

import (
	"encoding/json"
	"fmt"

	"nrgchamp/sensormon/internal/record"
)

// Formatter renders a Record as a line of output text.
type Formatter interface {
	Format(r record.Record) string
}

// TextFormatter renders a human-readable summary line.
type TextFormatter struct{}

func (TextFormatter) Format(r record.Record) string {
	return fmt.Sprintf("[%s] serial=%s type=%s temp=%.2f hum=%.2f bat=%.2f/%.2f state=%s",
		r.Timestamp.Format("15:04:05"), r.Serial, r.Type, r.Temperature, r.Humidity,
		r.BatteryLevel, r.BatteryMax, r.State)
}

// JSONFormatter renders each record as a single-line JSON object.
type JSONFormatter struct{}

func (JSONFormatter) Format(r record.Record) string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(b)
}

var (
	_ Formatter = TextFormatter{}
	_ Formatter = JSONFormatter{}
)

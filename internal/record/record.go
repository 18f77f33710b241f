// Package record defines the canonical sensor observation produced by the
// parser set and consumed by every downstream component.
package record

import "time"

// Type is the sensor kind a Record reports on.
type Type string

const (
	TypeTemperature Type = "temp"
	TypeHumidity    Type = "humidity"
	TypeBattery     Type = "battery"
	TypeUnknown     Type = "unknown"
)

// Record is the canonical, normalized form of a parsed sensor line.
//
// Zero on Temperature/Humidity/BatteryLevel/BatteryMax/BatteryMin/Voltage
// means "absent", matching the raw key/value wire format where an omitted
// key never appears.
type Record struct {
	Serial       string
	Type         Type
	Temperature  float64
	Humidity     float64
	BatteryLevel float64
	BatteryMax   float64
	BatteryMin   float64
	State        string
	Manufacturer string
	Error        string
	Voltage      float64
	Timestamp    time.Time
}

// HasTemperature reports whether the record carries a usable temperature.
func (r Record) HasTemperature() bool { return r.Temperature > 0 }

// HasHumidity reports whether the record carries a usable humidity.
func (r Record) HasHumidity() bool { return r.Humidity > 0 }

// HasBattery reports whether the record carries a usable battery ratio.
func (r Record) HasBattery() bool { return r.BatteryLevel > 0 && r.BatteryMax > 0 }

// BatteryPercent returns level/max expressed as a percentage, or 0 if absent.
func (r Record) BatteryPercent() float64 {
	if !r.HasBattery() {
		return 0
	}
	return (r.BatteryLevel / r.BatteryMax) * 100
}

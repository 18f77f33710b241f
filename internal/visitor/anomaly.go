package visitor

import (
	"fmt"
	"strings"

	"nrgchamp/sensormon/internal/composite"
)

// Default anomaly thresholds, spec §4.10.
const (
	DefaultTempLow   = 15.0
	DefaultTempHigh  = 30.0
	DefaultHumLow    = 30.0
	DefaultHumHigh   = 70.0
)

// AnomalyVisitor reports leaves whose aggregated temperature or humidity
// falls outside configured bounds. It ignores groups.
type AnomalyVisitor struct {
	TempLow, TempHigh float64
	HumLow, HumHigh   float64

	lines []string
}

// NewAnomalyVisitor returns an AnomalyVisitor with the given thresholds.
func NewAnomalyVisitor(tempLow, tempHigh, humLow, humHigh float64) *AnomalyVisitor {
	return &AnomalyVisitor{TempLow: tempLow, TempHigh: tempHigh, HumLow: humLow, HumHigh: humHigh}
}

// DefaultAnomalyVisitor returns an AnomalyVisitor with spec default
// thresholds.
func DefaultAnomalyVisitor() *AnomalyVisitor {
	return NewAnomalyVisitor(DefaultTempLow, DefaultTempHigh, DefaultHumLow, DefaultHumHigh)
}

func (v *AnomalyVisitor) Reset() { v.lines = nil }

func (v *AnomalyVisitor) VisitGroup(*composite.Group) {}

func (v *AnomalyVisitor) VisitLeaf(l *composite.Leaf) {
	s := l.Stats()
	if s.DataPointCount == 0 {
		return
	}
	if s.Temperature > 0 {
		if s.Temperature > v.TempHigh {
			v.lines = append(v.lines, fmt.Sprintf("%s: temperature %.2f°C above %.2f°C", l.Serial, s.Temperature, v.TempHigh))
		} else if s.Temperature < v.TempLow {
			v.lines = append(v.lines, fmt.Sprintf("%s: temperature %.2f°C below %.2f°C", l.Serial, s.Temperature, v.TempLow))
		}
	}
	if s.Humidity > 0 {
		if s.Humidity > v.HumHigh {
			v.lines = append(v.lines, fmt.Sprintf("%s: humidity %.2f%% above %.2f%%", l.Serial, s.Humidity, v.HumHigh))
		} else if s.Humidity < v.HumLow {
			v.lines = append(v.lines, fmt.Sprintf("%s: humidity %.2f%% below %.2f%%", l.Serial, s.Humidity, v.HumLow))
		}
	}
}

func (v *AnomalyVisitor) Result() string {
	if len(v.lines) == 0 {
		return "Anomaly Report: none"
	}
	return "Anomaly Report:\n" + strings.Join(v.lines, "\n")
}

var _ composite.Visitor = (*AnomalyVisitor)(nil)

// Package visitor implements read-only traversals over the composite
// tree that produce textual health and anomaly reports, per spec §4.10.
package visitor

import (
	"fmt"
	"strings"

	"nrgchamp/sensormon/internal/composite"
)

// HealthVisitor classifies each leaf by its aggregated BatteryLevel.
type HealthVisitor struct {
	healthy  []string
	warning  []string
	critical []string
}

// NewHealthVisitor returns a ready-to-use HealthVisitor.
func NewHealthVisitor() *HealthVisitor { return &HealthVisitor{} }

func (v *HealthVisitor) Reset() {
	v.healthy = nil
	v.warning = nil
	v.critical = nil
}

func (v *HealthVisitor) VisitGroup(*composite.Group) {}

func (v *HealthVisitor) VisitLeaf(l *composite.Leaf) {
	s := l.Stats()
	if s.DataPointCount == 0 {
		return
	}
	switch {
	case s.BatteryLevel < 30:
		v.critical = append(v.critical, l.Serial)
	case s.BatteryLevel < 50:
		v.warning = append(v.warning, l.Serial)
	default:
		v.healthy = append(v.healthy, l.Serial)
	}
}

func (v *HealthVisitor) Result() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Health Report: %d healthy, %d warning, %d critical\n",
		len(v.healthy), len(v.warning), len(v.critical))
	if len(v.critical) > 0 {
		fmt.Fprintf(&b, "Critical: %s\n", strings.Join(v.critical, ", "))
	}
	if len(v.warning) > 0 {
		fmt.Fprintf(&b, "Warning: %s\n", strings.Join(v.warning, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

var _ composite.Visitor = (*HealthVisitor)(nil)

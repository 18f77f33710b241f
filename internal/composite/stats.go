package composite

// Stats is the AggregatedStats map of spec §3, concretized as a struct
// with exactly the four required fields.
type Stats struct {
	DataPointCount int
	Temperature    float64
	Humidity       float64
	BatteryLevel   float64
}

// Stats computes a Leaf's aggregation: counts plus arithmetic means over
// records where the relevant field is present (>0). Battery is expressed
// as a percentage of max.
func (l *Leaf) Stats() Stats {
	_, hist := l.snapshot()
	var tempSum, humSum, batSum float64
	var tempN, humN, batN int
	for _, r := range hist {
		if r.HasTemperature() {
			tempSum += r.Temperature
			tempN++
		}
		if r.HasHumidity() {
			humSum += r.Humidity
			humN++
		}
		if r.HasBattery() {
			batSum += r.BatteryPercent()
			batN++
		}
	}
	s := Stats{DataPointCount: len(hist)}
	if tempN > 0 {
		s.Temperature = tempSum / float64(tempN)
	}
	if humN > 0 {
		s.Humidity = humSum / float64(humN)
	}
	if batN > 0 {
		s.BatteryLevel = batSum / float64(batN)
	}
	return s
}

// Stats computes a Group's aggregation over the distinct leaves reachable
// beneath it: DataPointCount sums their counts; the three mean fields
// average over leaves whose own mean is >0 (a leaf contributing 0 is
// excluded from the denominator, not treated as a zero observation). A leaf
// can be reachable through more than one path (e.g. linked directly under
// root and again under its type-group), so leaves are collected by pointer
// identity before aggregating — each leaf counts exactly once no matter how
// many of the group's descendants also reference it (spec §3 invariant
// (ii) / IP3).
func (g *Group) Stats() Stats {
	seen := make(map[*Leaf]struct{})
	collectLeaves(g, seen)

	var out Stats
	var tempSum, humSum, batSum float64
	var tempN, humN, batN int
	for l := range seen {
		ls := l.Stats()
		out.DataPointCount += ls.DataPointCount
		if ls.Temperature > 0 {
			tempSum += ls.Temperature
			tempN++
		}
		if ls.Humidity > 0 {
			humSum += ls.Humidity
			humN++
		}
		if ls.BatteryLevel > 0 {
			batSum += ls.BatteryLevel
			batN++
		}
	}
	if tempN > 0 {
		out.Temperature = tempSum / float64(tempN)
	}
	if humN > 0 {
		out.Humidity = humSum / float64(humN)
	}
	if batN > 0 {
		out.BatteryLevel = batSum / float64(batN)
	}
	return out
}

// collectLeaves walks n depth-first, recording every distinct Leaf reached
// by pointer identity in seen.
func collectLeaves(n Node, seen map[*Leaf]struct{}) {
	switch v := n.(type) {
	case *Group:
		for _, c := range v.childSnapshot() {
			collectLeaves(c, seen)
		}
	case *Leaf:
		seen[v] = struct{}{}
	}
}

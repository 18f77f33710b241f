package observer

import (
	"sync"

	"nrgchamp/sensormon/internal/record"
)

// StatsCollector is a user-supplied observer example: a thread-safe
// running count of records seen per sensor type.
type StatsCollector struct {
	mu     sync.Mutex
	counts map[record.Type]int
}

// NewStatsCollector returns an empty StatsCollector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{counts: make(map[record.Type]int)}
}

func (s *StatsCollector) OnRecord(r record.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[r.Type]++
}

// Counts returns a copy of the per-type record counts observed so far.
func (s *StatsCollector) Counts() map[record.Type]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[record.Type]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

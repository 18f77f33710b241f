package sink

import (
	"log/slog"

	"nrgchamp/sensormon/internal/record"
)

// Sink pairs a Formatter with a Transport.
type Sink struct {
	Formatter Formatter
	Transport Transport
}

// New returns a Sink combining formatter and transport.
func New(formatter Formatter, transport Transport) Sink {
	return Sink{Formatter: formatter, Transport: transport}
}

// Display formats r and writes it through the transport.
func (s Sink) Display(r record.Record) error {
	return s.Transport.Write(s.Formatter.Format(r))
}

// Set fans Display out to every registered sink. A transport failure is
// logged and does not stop delivery to the remaining sinks (spec §7
// SinkIOFailure) — sinks are best-effort, not part of the pipeline's
// failure-isolation boundary in the other direction: a sink failure never
// aborts ProcessRecord.
type Set struct {
	sinks []Sink
	lg    *slog.Logger
}

// NewSet returns a Set fanning out to the given sinks.
func NewSet(lg *slog.Logger, sinks ...Sink) *Set {
	if lg == nil {
		lg = slog.Default()
	}
	return &Set{sinks: sinks, lg: lg}
}

// Display writes r to every sink in the set, in registration order.
func (s *Set) Display(r record.Record) {
	for _, sk := range s.sinks {
		if err := sk.Display(r); err != nil {
			s.lg.Error("sink display failed", "err", err)
		}
	}
}

// Close closes every sink's transport, collecting the first error (if
// any) while still attempting to close the rest.
func (s *Set) Close() error {
	var firstErr error
	for _, sk := range s.sinks {
		if err := sk.Transport.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

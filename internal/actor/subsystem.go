package actor

import (
	"context"

	"nrgchamp/sensormon/internal/record"
)

// Subsystem composes the data-store and alert actors behind a single
// entry point, per spec §4.6.
type Subsystem struct {
	store *DataStoreActor
	alert *AlertActor
}

// NewSubsystem starts both actors, with per-type alert threshold
// overrides and the spec default thresholds as the fallback.
func NewSubsystem(thresholds map[record.Type]Thresholds) *Subsystem {
	return NewSubsystemWithDefaults(thresholds, DefaultThresholds())
}

// NewSubsystemWithDefaults is NewSubsystem with an explicit fallback
// threshold set, for callers driving alert thresholds from config.
func NewSubsystemWithDefaults(thresholds map[record.Type]Thresholds, defaults Thresholds) *Subsystem {
	return &Subsystem{
		store: NewDataStoreActor(),
		alert: NewAlertActor(thresholds, defaults),
	}
}

// Send fans r to both actors. The caller suspends only while either
// mailbox is full, never while r is being processed.
func (s *Subsystem) Send(r record.Record) {
	s.store.Ingest(r)
	s.alert.Ingest(r)
}

// AnalyzeType requests aggregated stats for sensors of type t from the
// data-store actor, failing with ErrDeadlineExceeded after 5 seconds.
func (s *Subsystem) AnalyzeType(ctx context.Context, t record.Type) (StatsResult, error) {
	return s.store.Analyze(ctx, t)
}

// GetProcessed requests (processed, activeSensorCount) from the
// data-store actor.
func (s *Subsystem) GetProcessed(ctx context.Context) (int, int, error) {
	return s.store.Status(ctx)
}

// GetAlerts requests the alert log from the alert actor.
func (s *Subsystem) GetAlerts(ctx context.Context) (string, error) {
	return s.alert.Status(ctx)
}

// Shutdown drains both mailboxes and waits (up to the per-actor drain
// window) for each actor to terminate.
func (s *Subsystem) Shutdown() {
	s.store.stop()
	s.alert.stop()
}

// Package pipeline implements the single entry point that every ingest
// mode funnels through: Coordinator.ProcessRecord (spec §4.9). All of its
// dependencies are either internally synchronized, message-passing, or
// append-only thread-safe, so ProcessRecord is safe to call concurrently
// from any number of goroutines.
package pipeline

import (
	"context"
	"log/slog"
	"sync/atomic"

	"nrgchamp/sensormon/internal/actor"
	"nrgchamp/sensormon/internal/analyzer"
	"nrgchamp/sensormon/internal/composite"
	"nrgchamp/sensormon/internal/metrics"
	"nrgchamp/sensormon/internal/observer"
	"nrgchamp/sensormon/internal/parser"
	"nrgchamp/sensormon/internal/record"
	"nrgchamp/sensormon/internal/registry"
	"nrgchamp/sensormon/internal/sink"
)

// Stats tracks the pipeline's own lifetime activity rather than any one
// subsystem's.
type Stats struct {
	RecordsProcessed int64
	RecordsDropped   int64
	ParseFailures    int64
	ActorTimeouts    int64
}

// Coordinator composes the parser set, registry, composite aggregator,
// analyzer manager, actor subsystem, sink set and observer broadcaster
// into the single per-record pipeline described in spec §4.9.
type Coordinator struct {
	parsers    []parser.Parser
	registry   *registry.TypeRegistry
	composite  *composite.Manager
	analyzers  *analyzer.Manager
	actors     *actor.Subsystem
	sinks      *sink.Set
	observers  *observer.Broadcaster
	metrics    *metrics.Metrics
	lg         *slog.Logger

	recordsProcessed int64
	recordsDropped   int64
	parseFailures    int64
	actorTimeouts    int64
}

// Deps bundles the Coordinator's collaborators.
type Deps struct {
	Parsers   []parser.Parser
	Registry  *registry.TypeRegistry
	Composite *composite.Manager
	Analyzers *analyzer.Manager
	Actors    *actor.Subsystem
	Sinks     *sink.Set
	Observers *observer.Broadcaster
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// New constructs a Coordinator from deps, defaulting any unset
// collaborator to an empty/default instance.
func New(deps Deps) *Coordinator {
	lg := deps.Logger
	if lg == nil {
		lg = slog.Default()
	}
	if deps.Parsers == nil {
		deps.Parsers = parser.DefaultSet()
	}
	if deps.Registry == nil {
		deps.Registry = registry.New()
	}
	if deps.Composite == nil {
		deps.Composite = composite.New(nil, lg)
	}
	if deps.Analyzers == nil {
		deps.Analyzers = analyzer.DefaultManager()
	}
	if deps.Actors == nil {
		deps.Actors = actor.NewSubsystem(nil)
	}
	if deps.Sinks == nil {
		deps.Sinks = sink.NewSet(lg)
	}
	if deps.Observers == nil {
		deps.Observers = observer.New(lg)
	}
	return &Coordinator{
		parsers:   deps.Parsers,
		registry:  deps.Registry,
		composite: deps.Composite,
		analyzers: deps.Analyzers,
		actors:    deps.Actors,
		sinks:     deps.Sinks,
		observers: deps.Observers,
		metrics:   deps.Metrics,
		lg:        lg,
	}
}

// ProcessRecord runs the full per-record pipeline of spec §4.9. A parser
// miss is a drop, not a failure: it is counted in RecordsDropped and logged
// as a warning. Any other per-record failure is
// caught, logged with the raw line, and never propagates — subsequent
// records keep being processed (spec §7, §8 IP8).
func (c *Coordinator) ProcessRecord(raw string) {
	p, ok := parser.Select(c.parsers, raw)
	if !ok {
		atomic.AddInt64(&c.recordsDropped, 1)
		c.metrics.RecordDropped()
		c.lg.Warn("unparseable line dropped", "raw", raw)
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			atomic.AddInt64(&c.parseFailures, 1)
			c.lg.Error("pipeline step panicked", "raw", raw, "panic", rec)
		}
	}()

	r := p.Parse(raw)

	c.composite.AddRecord(r)

	if r.Serial != "" && r.Type != "" && r.Type != record.TypeUnknown {
		c.registry.Register(r.Serial, r.Type)
	}

	c.analyzers.AnalyzeData(r)

	c.actors.Send(r)

	c.sinks.Display(r)

	c.observers.Notify(r)

	atomic.AddInt64(&c.recordsProcessed, 1)
	c.metrics.RecordProcessed(string(r.Type))
}

// Stats returns a snapshot of the coordinator's lifetime counters.
func (c *Coordinator) Stats() Stats {
	return Stats{
		RecordsProcessed: atomic.LoadInt64(&c.recordsProcessed),
		RecordsDropped:   atomic.LoadInt64(&c.recordsDropped),
		ParseFailures:    atomic.LoadInt64(&c.parseFailures),
		ActorTimeouts:    atomic.LoadInt64(&c.actorTimeouts),
	}
}

// AnalyzeType requests aggregated actor-side stats for sensors of type t,
// counting a timeout against ActorTimeouts.
func (c *Coordinator) AnalyzeType(ctx context.Context, t record.Type) (actor.StatsResult, error) {
	res, err := c.actors.AnalyzeType(ctx, t)
	if err == actor.ErrDeadlineExceeded {
		atomic.AddInt64(&c.actorTimeouts, 1)
		c.metrics.ActorTimeout()
	}
	return res, err
}

// Alerts returns the alert actor's log.
func (c *Coordinator) Alerts(ctx context.Context) (string, error) {
	out, err := c.actors.GetAlerts(ctx)
	if err == actor.ErrDeadlineExceeded {
		atomic.AddInt64(&c.actorTimeouts, 1)
	}
	return out, err
}

// Registry exposes the type registry for read-only callers (e.g. the
// HTTP status surface).
func (c *Coordinator) Registry() *registry.TypeRegistry { return c.registry }

// Composite exposes the composite manager for read-only callers.
func (c *Coordinator) Composite() *composite.Manager { return c.composite }

// Analyzers exposes the analyzer manager for read-only callers.
func (c *Coordinator) Analyzers() *analyzer.Manager { return c.analyzers }

// Actors exposes the actor subsystem (e.g. for GetProcessed queries).
func (c *Coordinator) Actors() *actor.Subsystem { return c.actors }

// Shutdown shuts down the actor subsystem and flushes/closes sinks, in
// the order spec §5 prescribes for the coordinator (steps a-b, streaming
// queue and worker pool, are the callers' responsibility since those are
// mode drivers, not coordinator state).
func (c *Coordinator) Shutdown() {
	c.actors.Shutdown()
	if err := c.sinks.Close(); err != nil {
		c.lg.Error("sink close failed", "err", err)
	}
}

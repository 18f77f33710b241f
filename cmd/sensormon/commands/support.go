package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"nrgchamp/sensormon/internal/config"
	"nrgchamp/sensormon/internal/pipeline"
	"nrgchamp/sensormon/internal/sink"
	"nrgchamp/sensormon/internal/workerpool"
)

// newLogger builds the slog.Logger used for sensormon's own operational
// logs, per the configured level and format.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// buildSinks constructs the sink.Set described by cfg.Sinks.
func buildSinks(cfg *config.Config, lg *slog.Logger) (*sink.Set, error) {
	var sinks []sink.Sink
	if cfg.Sinks.Console {
		sinks = append(sinks, sink.New(sink.TextFormatter{}, sink.NewConsoleTransport(os.Stdout)))
	}
	if cfg.Sinks.JSON {
		sinks = append(sinks, sink.New(sink.JSONFormatter{}, sink.NewConsoleTransport(os.Stdout)))
	}
	if cfg.Sinks.File {
		ft, err := sink.NewFileTransport(cfg.Sinks.FilePath, lg)
		if err != nil {
			return nil, fmt.Errorf("sink: %w", err)
		}
		sinks = append(sinks, sink.New(sink.TextFormatter{}, ft))
	}
	return sink.NewSet(lg, sinks...), nil
}

// openInput opens path for reading sensor lines, or returns os.Stdin
// (with a no-op closer) when path is empty.
func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, f.Close, nil
}

// runMode drives the ingest mode named by mode, reading from in. An
// unrecognized mode falls back to sequential.
func runMode(mode string, coord *pipeline.Coordinator, in io.Reader, cfg *config.Config) error {
	switch mode {
	case "pool":
		pool := workerpool.New(cfg.Workers)
		return coord.RunPool(in, pool)
	case "stream":
		d := pipeline.NewStreamDriver(coord, cfg.Queue.Capacity)
		if err := d.Start(coord); err != nil {
			return err
		}
		err := feedStream(d, in)
		d.Stop()
		return err
	default:
		return coord.RunSequential(in)
	}
}

// feedStream scans lines from in and produces each onto d, stopping at
// the first Produce error (typically ErrClosed from a concurrent Stop).
func feedStream(d *pipeline.StreamDriver, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := d.Produce(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Package commands implements the sensormon CLI's subcommands.
package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nrgchamp/sensormon/internal/actor"
	"nrgchamp/sensormon/internal/config"
	"nrgchamp/sensormon/internal/httpapi"
	"nrgchamp/sensormon/internal/metrics"
	"nrgchamp/sensormon/internal/pipeline"
	"nrgchamp/sensormon/internal/record"
)

// RunCommand holds the run subcommand's flags.
type RunCommand struct {
	configPath string
	inputPath  string
	mode       string
	httpAddr   string
}

// NewRunCommand builds the "run" subcommand: ingest sensor lines from a
// file (or stdin) through the pipeline, in the configured mode, serving
// a status surface until the input is exhausted or a signal arrives.
func NewRunCommand() *cobra.Command {
	rc := &RunCommand{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest sensor readings through the monitoring pipeline",
		RunE:  rc.run,
	}

	cmd.Flags().StringVarP(&rc.configPath, "config", "c", "", "path to a sensormon.yaml config file")
	cmd.Flags().StringVarP(&rc.inputPath, "input", "i", "", "path to a sensor reading file (default: stdin)")
	cmd.Flags().StringVarP(&rc.mode, "mode", "m", "", "ingest mode: sequential, pool, or stream (overrides config)")
	cmd.Flags().StringVar(&rc.httpAddr, "http", "", "address to serve the status surface on (e.g. :8090); empty disables it")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if rc.mode != "" {
		cfg.Mode = rc.mode
	}

	lg := newLogger(cfg.Logging)

	metricsReg := metrics.New(nil)
	sinks, err := buildSinks(cfg, lg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	coord := pipeline.New(pipeline.Deps{
		Analyzers: cfg.AnalyzerManager(),
		Actors:    actor.NewSubsystemWithDefaults(map[record.Type]actor.Thresholds{}, cfg.AlertThresholds()),
		Sinks:     sinks,
		Metrics:   metricsReg,
		Logger:    lg,
	})
	defer coord.Shutdown()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if rc.httpAddr != "" {
		srv := &http.Server{
			Addr:              rc.httpAddr,
			Handler:           httpapi.WithLogging(os.Stdout, httpapi.NewRouter(coord)),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			lg.Info("status surface listening", "addr", rc.httpAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				lg.Error("status surface failed", "err", err)
			}
		}()
		defer srv.Shutdown(context.Background())
	}

	in, closeIn, err := openInput(rc.inputPath)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer closeIn()

	done := make(chan error, 1)
	go func() { done <- runMode(cfg.Mode, coord, in, cfg) }()

	select {
	case <-ctx.Done():
		lg.Info("shutdown signal received")
	case err := <-done:
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	stats := coord.Stats()
	lg.Info("pipeline finished", "processed", stats.RecordsProcessed, "dropped", stats.RecordsDropped)
	return nil
}

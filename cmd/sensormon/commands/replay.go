package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nrgchamp/sensormon/internal/config"
	"nrgchamp/sensormon/internal/pipeline"
)

// ReplayCommand holds the replay subcommand's flags. Replay is a
// sequential-only, no-HTTP convenience wrapper over run, meant for
// feeding archived logs back through the pipeline for inspection.
type ReplayCommand struct {
	configPath string
	inputPath  string
}

// NewReplayCommand builds the "replay" subcommand.
func NewReplayCommand() *cobra.Command {
	rc := &ReplayCommand{}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay an archived sensor log through the pipeline sequentially",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}
	cmd.Flags().StringVarP(&rc.configPath, "config", "c", "", "path to a sensormon.yaml config file")
	cmd.Flags().StringVarP(&rc.inputPath, "input", "i", "", "path to an archived sensor log (default: stdin)")

	return cmd
}

func (rc *ReplayCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	lg := newLogger(cfg.Logging)

	sinks, err := buildSinks(cfg, lg)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	coord := pipeline.New(pipeline.Deps{
		Analyzers: cfg.AnalyzerManager(),
		Sinks:     sinks,
		Logger:    lg,
	})
	defer coord.Shutdown()

	in, closeIn, err := openInput(rc.inputPath)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	defer closeIn()

	if err := coord.RunSequential(in); err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	stats := coord.Stats()
	lg.Info("replay finished", "processed", stats.RecordsProcessed, "dropped", stats.RecordsDropped)
	return nil
}

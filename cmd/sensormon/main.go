// Command sensormon ingests sensor readings through the monitoring
// pipeline described by this module's internal packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nrgchamp/sensormon/cmd/sensormon/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "sensormon",
		Short: "Sensor monitoring pipeline CLI",
		Long: `sensormon ingests sensor reading lines through a composite aggregation
tree, stateful analyzers, an actor-based alerting subsystem, and pluggable
output sinks, in one of three interchangeable execution modes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewRunCommand())
	root.AddCommand(commands.NewReplayCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

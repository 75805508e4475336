package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/figvars/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "figvars",
	Short: "Export design-tool variables as JSON, CSS and Tailwind config",
	Long: `Read local-variables documents exported from a design tool and write
variables.json, variables.css and tailwind.config.js.
Every mode of a collection becomes one CSS rule; references become var() calls.`,
	// Default behavior: run export when no subcommand is given.
	// PreRunE of exportCmd is not triggered when delegating via RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runExport(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.String("log-level", "warn", "Log level: debug|info|warn|error")
	pf.String("log-format", "console", "Log format: console|json")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".figvars.yaml", "Config file path")

	registerExportFlags(rootCmd.Flags())

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the logger from the loaded configuration
func newLogger() (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         getString("log-level", "warn"),
		HumanReadable: getString("log-format", "console") != "json",
	})
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return log, nil
}

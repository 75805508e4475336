package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/figvars"
	"github.com/yacobolo/figvars/internal/report"
)

// errIssuesFound makes the process exit 1 after issues were printed
var errIssuesFound = errors.New("undeclared custom properties found")

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"gen"},
	Short:   "Export variables as JSON, CSS and Tailwind config",
	Long: `Load every local-variables document matching --input and write the
selected artifacts into --output-dir.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExport,
}

func init() {
	registerExportFlags(exportCmd.Flags())
}

func registerExportFlags(f *pflag.FlagSet) {
	f.StringSlice("input", nil, "Glob patterns of local-variables JSON documents")
	f.String("output-dir", "dist", "Output directory for generated files")
	f.StringSlice("formats", nil, "Artifacts to write: css,json,tailwind or all")
	f.Int("tab-width", 2, "Indentation width in spaces")
	f.String("root-selector", ":root", "Selector bound to each collection's default mode (empty disables)")
	f.Float64("base-font-size", 16, "Root font size used for rem and em units")
	f.Bool("default-values", false, "Emit resolved fallbacks in var() references")
	f.StringSlice("trim-keyword", nil, "Literal substring removed from theme property names")
	f.StringSlice("unit", nil, "Unit per number scope, e.g. radius=rem")
	f.Bool("verify", false, "Check the generated stylesheet for undeclared references")
	f.String("output-format", "", "Output format: text|json")
}

func runExport(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	config.Logger = log

	result, err := figvars.Generate(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if !getBool("quiet", false) {
		format := figvars.DetermineOutputFormat(getString("output-format", ""))
		if err := figvars.WriteOutput(os.Stdout, result, format, reportOptions()); err != nil {
			return err
		}
	}

	if len(result.Issues) > 0 {
		return errIssuesFound
	}
	return nil
}

func reportOptions() report.Options {
	return report.Options{
		UseColors:       getBool("color", false),
		PrintLines:      getBool("check.print-lines", true),
		PrintLinterName: getBool("check.print-linter-name", true),
	}
}

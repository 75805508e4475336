package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/figvars"
	"github.com/yacobolo/figvars/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check stylesheets for var() references to undeclared custom properties",
	Args:  cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		issues, err := figvars.CheckFiles(args)
		if err != nil {
			return err
		}

		if !getBool("quiet", false) {
			r := report.NewReporter(os.Stdout, reportOptions())
			r.PrintIssues(issues)
			r.PrintIssueSummary(issues)
		}

		if len(issues) > 0 {
			return errIssuesFound
		}
		return nil
	},
}

func init() {
	f := checkCmd.Flags()
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (csscheck) suffix on issues")
}

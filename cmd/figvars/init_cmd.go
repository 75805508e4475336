package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .figvars.yaml config file",
	Long:  `Create a .figvars.yaml configuration file in the current directory with the default settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".figvars.yaml"); err == nil && !force {
			return fmt.Errorf(".figvars.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".figvars.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .figvars.yaml")
		return nil
	},
}

const defaultConfig = `# figvars configuration
# Docs: https://github.com/yacobolo/figvars

log-level: warn
log-format: console  # console | json
output-format: text  # text | json

# Export settings
export:
  input:
    - "variables/**/*.json"
  output-dir: dist
  formats: [json, css, tailwind]
  tab-width: 2
  root-selector: ":root"   # empty string disables the root binding
  base-font-size: 16
  default-values: false    # var(--x, fallback)
  trim-keywords: []
  units:                   # px | rem | em | none
    all-numbers: px
    radius: px
    size: px
    gap: px
    stroke-width: px
    font-size: px
    line-height: px
    letter-spacing: px
    font-weight: px
  verify: false

# Check settings
check:
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

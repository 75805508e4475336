package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/figvars"
	"github.com/yacobolo/figvars/internal/format"
	"github.com/yacobolo/figvars/internal/model"
)

var k = koanf.New(".")

// sections are the top-level config groups. Env names of keys inside a
// section keep the section separator: FIGVARS_EXPORT_OUTPUT_DIR -> export.output-dir.
var sections = []string{"export", "check"}

// flagKeys maps flag names onto their config keys. Flags not listed use
// their own name.
var flagKeys = map[string]string{
	"input":          "export.input",
	"output-dir":     "export.output-dir",
	"formats":        "export.formats",
	"tab-width":      "export.tab-width",
	"root-selector":  "export.root-selector",
	"base-font-size": "export.base-font-size",
	"default-values": "export.default-values",
	"trim-keyword":   "export.trim-keywords",
	"unit":           "export.unit-flags",
	"verify":         "export.verify",
	"output-format":  "output-format",
	"print-lines":    "check.print-lines",

	"print-linter-name": "check.print-linter-name",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".figvars.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags set on the command line, so defaults never mask the file
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// Separate from loadConfig so it can be tested without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("FIGVARS_", ".", envValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps FIGVARS_EXPORT_TAB_WIDTH -> export.tab-width and
// FIGVARS_LOG_LEVEL -> log-level
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "FIGVARS_"))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// listKeys hold comma-separated values when set from the environment
var listKeys = map[string]bool{
	"export.input":         true,
	"export.formats":       true,
	"export.trim-keywords": true,
}

func envValue(name, value string) (string, interface{}) {
	key := envKey(name)
	if listKeys[key] {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return key, parts
	}
	return key, value
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// buildGenerateConfig constructs the library's GenerateConfig from koanf state
func buildGenerateConfig() (figvars.GenerateConfig, error) {
	export := figvars.DefaultConfig()
	if err := k.Unmarshal("export", &export); err != nil {
		return figvars.GenerateConfig{}, fmt.Errorf("decoding export config: %w", err)
	}

	// scope=unit flags override the units map of the file
	for _, pair := range k.Strings("export.unit-flags") {
		scope, unit, ok := strings.Cut(pair, "=")
		if !ok {
			return figvars.GenerateConfig{}, fmt.Errorf("invalid --unit %q (want scope=unit)", pair)
		}
		export.Units[model.Scope(strings.TrimSpace(scope))] = format.Unit(strings.TrimSpace(unit))
	}

	formatNames := k.Strings("export.formats")
	if len(formatNames) == 0 {
		formatNames = []string{"all"}
	}
	formats, err := figvars.ParseFormats(formatNames)
	if err != nil {
		return figvars.GenerateConfig{}, err
	}

	inputs := k.Strings("export.input")
	if len(inputs) == 0 {
		inputs = []string{"variables/**/*.json"}
	}

	return figvars.GenerateConfig{
		Inputs:    inputs,
		OutputDir: getString("export.output-dir", "dist"),
		Formats:   formats,
		Export:    export,
		Verify:    getBool("export.verify", false),
	}, nil
}

// getString returns the value at key, or defaultVal when unset or empty
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or defaultVal when unset
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

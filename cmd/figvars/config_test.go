package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/figvars"
	"github.com/yacobolo/figvars/internal/format"
	"github.com/yacobolo/figvars/internal/model"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".figvars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	path := writeConfig(t, `
log-level: debug
export:
  input:
    - "design/**/*.json"
  output-dir: out
  tab-width: 4
  root-selector: ""
  default-values: true
check:
  print-lines: false
`)
	require.NoError(t, loadConfigFromPath(path))

	assert.Equal(t, "debug", k.String("log-level"))
	assert.Equal(t, []string{"design/**/*.json"}, k.Strings("export.input"))
	assert.Equal(t, "out", k.String("export.output-dir"))
	assert.Equal(t, 4, k.Int("export.tab-width"))
	assert.True(t, k.Bool("export.default-values"))
	assert.False(t, k.Bool("check.print-lines"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath("/nonexistent/.figvars.yaml"))

	config, err := buildGenerateConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"variables/**/*.json"}, config.Inputs)
	assert.Equal(t, "dist", config.OutputDir)
	assert.Equal(t, figvars.AllFormats, config.Formats)
	assert.Equal(t, figvars.DefaultConfig(), config.Export)
	assert.False(t, config.Verify)
}

func TestBuildGenerateConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	path := writeConfig(t, `
export:
  formats: [css]
  tab-width: 4
  root-selector: "html"
  base-font-size: 10
  trim-keywords: [default]
  units:
    radius: rem
  verify: true
`)
	require.NoError(t, loadConfigFromPath(path))

	config, err := buildGenerateConfig()
	require.NoError(t, err)
	assert.Equal(t, []figvars.Format{figvars.FormatCSS}, config.Formats)
	assert.Equal(t, 4, config.Export.TabWidth)
	assert.Equal(t, "html", config.Export.RootSelector)
	assert.InDelta(t, 10.0, config.Export.BaseFontSize, 0.001)
	assert.Equal(t, []string{"default"}, config.Export.TrimKeywords)
	assert.Equal(t, format.UnitRem, config.Export.Units[model.ScopeRadius])
	assert.Equal(t, format.UnitPx, config.Export.Units[model.ScopeSize], "unlisted scopes keep their default")
	assert.True(t, config.Verify)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	path := writeConfig(t, `
export:
  output-dir: from-file
  tab-width: 2
`)
	t.Setenv("FIGVARS_EXPORT_OUTPUT_DIR", "from-env")
	t.Setenv("FIGVARS_EXPORT_TAB_WIDTH", "8")
	t.Setenv("FIGVARS_EXPORT_FORMATS", "css, tailwind")
	t.Setenv("FIGVARS_LOG_LEVEL", "info")

	require.NoError(t, loadConfigFromPath(path))

	assert.Equal(t, "info", k.String("log-level"))

	config, err := buildGenerateConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.OutputDir)
	assert.Equal(t, 8, config.Export.TabWidth)
	assert.Equal(t, []figvars.Format{figvars.FormatCSS, figvars.FormatTailwind}, config.Formats)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"FIGVARS_EXPORT_OUTPUT_DIR", "export.output-dir"},
		{"FIGVARS_EXPORT_BASE_FONT_SIZE", "export.base-font-size"},
		{"FIGVARS_CHECK_PRINT_LINES", "check.print-lines"},
		{"FIGVARS_LOG_LEVEL", "log-level"},
		{"FIGVARS_QUIET", "quiet"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestLoadConfig_FlagsOverrideOnlyWhenSet(t *testing.T) {
	resetKoanf()

	path := writeConfig(t, `
export:
  output-dir: from-file
  tab-width: 4
`)

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	registerExportFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", path,
		"--tab-width=6",
		"--unit", "gap=em",
		"--formats", "json",
	}))

	require.NoError(t, loadConfig(cmd))

	config, err := buildGenerateConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, config.Export.TabWidth)
	assert.Equal(t, "from-file", config.OutputDir, "flag default must not mask the file")
	assert.Equal(t, format.UnitEm, config.Export.Units[model.ScopeGap])
	assert.Equal(t, []figvars.Format{figvars.FormatJSON}, config.Formats)
}

func TestBuildGenerateConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want string
	}{
		{name: "malformed unit flag", key: "export.unit-flags", val: []string{"radius"}, want: "want scope=unit"},
		{name: "unknown format", key: "export.formats", val: []string{"scss"}, want: "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			require.NoError(t, k.Set(tt.key, tt.val))

			_, err := buildGenerateConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

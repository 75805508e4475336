package figvars

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/figvars/internal/csscheck"
	"github.com/yacobolo/figvars/internal/logger"
	"github.com/yacobolo/figvars/internal/provider"
)

// Format is an output artifact kind
type Format string

const (
	FormatCSS      Format = "css"
	FormatJSON     Format = "json"
	FormatTailwind Format = "tailwind"
)

// AllFormats lists every format in generation order
var AllFormats = []Format{FormatJSON, FormatCSS, FormatTailwind}

// ErrUnknownFormat is returned for an unsupported output format
var ErrUnknownFormat = errors.New("unknown format")

// FileName returns the name of the artifact written for f
func (f Format) FileName() string {
	switch f {
	case FormatCSS:
		return "variables.css"
	case FormatJSON:
		return "variables.json"
	case FormatTailwind:
		return "tailwind.config.js"
	}
	return ""
}

// ParseFormats parses format names, accepting "all". The result is
// deduplicated and keeps the order given.
func ParseFormats(names []string) ([]Format, error) {
	seen := make(map[Format]bool)
	var formats []Format
	add := func(f Format) {
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "":
			continue
		case "all":
			for _, f := range AllFormats {
				add(f)
			}
		case string(FormatCSS), string(FormatJSON), string(FormatTailwind):
			add(Format(name))
		default:
			return nil, fmt.Errorf("%w %q (want css, json, tailwind or all)", ErrUnknownFormat, name)
		}
	}

	if len(formats) == 0 {
		return nil, fmt.Errorf("no output formats selected")
	}
	return formats, nil
}

// GenerateConfig configures a file-to-file export
type GenerateConfig struct {
	Inputs    []string // Doublestar glob patterns of local-variables documents
	OutputDir string
	Formats   []Format
	Export    Config
	Verify    bool // Check the generated stylesheet for undeclared references
	Logger    *logger.Logger
}

// Output is one written artifact
type Output struct {
	Format Format
	Path   string
	Bytes  int
}

// GenerateResult summarizes a Generate call
type GenerateResult struct {
	FilesScanned      int
	FilesSkipped      int
	VariablesExported int
	Outputs           []Output
	Warnings          []string
	Issues            []csscheck.Issue
}

// Generate reads the inputs once and writes every requested artifact
func Generate(ctx context.Context, config GenerateConfig) (*GenerateResult, error) {
	result := &GenerateResult{}
	log := config.Logger

	if len(config.Formats) == 0 {
		return nil, fmt.Errorf("no output formats selected")
	}
	if err := config.Export.Validate(); err != nil {
		return nil, err
	}

	// 1. Read inputs
	snap, err := provider.NewFile(config.Inputs...).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = snap.Stats.FilesLoaded
	result.FilesSkipped = snap.Stats.FilesSkipped
	if snap.Stats.FilesSkipped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d input files skipped by .gitignore", snap.Stats.FilesSkipped))
	}
	log.Info("inputs loaded", "files", snap.Stats.FilesLoaded, "skipped", snap.Stats.FilesSkipped)

	p := provider.NewMemory(snap.Collections, snap.Variables)
	opts := []Option{WithLogger(log)}

	// 2. Build the model once for the summary
	variables, err := LoadVariables(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	result.VariablesExported = len(variables)
	if len(variables) == 0 {
		result.Warnings = append(result.Warnings, "no exportable variables found")
	}

	// 3. Render and write each artifact
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	var css, cssPath string
	for _, f := range config.Formats {
		content, err := render(ctx, p, f, config.Export, opts)
		if err != nil {
			return nil, err
		}

		flog := log.WithFields(map[string]any{"format": string(f)})
		path := filepath.Join(config.OutputDir, f.FileName())
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			flog.Error(err, "artifact not written")
			return nil, fmt.Errorf("write failed: %w", err)
		}
		flog.Debug("artifact written", "path", path, "bytes", len(content))
		result.Outputs = append(result.Outputs, Output{Format: f, Path: path, Bytes: len(content)})

		if f == FormatCSS {
			css, cssPath = content, path
		}
	}

	// 4. Verify the stylesheet
	if config.Verify {
		if cssPath == "" {
			css, err = ExportCSS(ctx, p, config.Export, opts...)
			if err != nil {
				return nil, err
			}
			cssPath = FormatCSS.FileName()
		}
		report := csscheck.Check(css)
		result.Issues = report.Issues(cssPath, css)
	}

	for _, w := range result.Warnings {
		log.Warn(w)
	}

	return result, nil
}

func render(ctx context.Context, p provider.Provider, f Format, cfg Config, opts []Option) (string, error) {
	switch f {
	case FormatCSS:
		return ExportCSS(ctx, p, cfg, opts...)
	case FormatJSON:
		return ExportJSON(ctx, p, cfg, opts...)
	case FormatTailwind:
		return ExportTailwindConfig(ctx, p, cfg, opts...)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// CheckFiles runs the stylesheet check over every file in paths
func CheckFiles(paths []string) ([]csscheck.Issue, error) {
	var issues []csscheck.Issue
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("check failed: %w", err)
		}
		report := csscheck.Check(string(content))
		issues = append(issues, report.Issues(path, string(content))...)
	}
	return issues, nil
}

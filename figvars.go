// Package figvars exports design-tool variables as JSON, CSS custom
// properties and a Tailwind CSS config.
//
// Variables are read from a provider, normalized into a model with every
// reference chain resolved, and rendered by one of the exporters:
//
//	p := provider.NewFile("design/**/*.json")
//	css, err := figvars.ExportCSS(ctx, p, figvars.DefaultConfig())
//
// Every export call rebuilds the model from the provider. Nothing is cached
// between calls, so concurrent exports over the same provider are safe as
// long as the provider is.
//
// # CLI Tool
//
//	go install github.com/yacobolo/figvars/cmd/figvars@latest
package figvars

import (
	"context"
	"fmt"

	"github.com/yacobolo/figvars/internal/bundle"
	"github.com/yacobolo/figvars/internal/format"
	"github.com/yacobolo/figvars/internal/jsonexport"
	"github.com/yacobolo/figvars/internal/logger"
	"github.com/yacobolo/figvars/internal/model"
	"github.com/yacobolo/figvars/internal/provider"
	"github.com/yacobolo/figvars/internal/theme"
)

// Config parameterizes the formatters of an export
type Config = format.Config

// Unit is the CSS unit assigned to a number scope
type Unit = format.Unit

// DefaultConfig returns tab width 2, ":root", base font size 16 and px for
// every number scope
func DefaultConfig() Config {
	return format.DefaultConfig()
}

type options struct {
	log *logger.Logger
}

// Option customizes an export call
type Option func(*options)

// WithLogger sets the logger used while building the model
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LoadVariables builds the variable model from p
func LoadVariables(ctx context.Context, p provider.Provider, opts ...Option) ([]model.Variable, error) {
	o := collect(opts)
	variables, err := model.LoadVariables(ctx, p, o.log)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	return variables, nil
}

// ExportCSS renders one rule per collection mode. The default mode of each
// collection is additionally bound to the root selector.
func ExportCSS(ctx context.Context, p provider.Provider, cfg Config, opts ...Option) (string, error) {
	variables, set, err := prepare(ctx, p, cfg, format.DialectCSS, opts)
	if err != nil {
		return "", err
	}
	return bundle.Build(variables, set).CSS(cfg.TabWidth), nil
}

// ExportJSON renders every variable with references left unresolved
func ExportJSON(ctx context.Context, p provider.Provider, cfg Config, opts ...Option) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	variables, err := LoadVariables(ctx, p, opts...)
	if err != nil {
		return "", err
	}
	out, err := jsonexport.Export(variables, cfg.TabWidth)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return out, nil
}

// ExportTailwindConfig renders a Tailwind config module whose theme keys
// point at the custom properties it installs through a base-style plugin
func ExportTailwindConfig(ctx context.Context, p provider.Provider, cfg Config, opts ...Option) (string, error) {
	variables, set, err := prepare(ctx, p, cfg, format.DialectTailwind, opts)
	if err != nil {
		return "", err
	}
	out, err := theme.Build(variables, set).Source(cfg.TabWidth)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return out, nil
}

// prepare validates cfg, loads the model and creates the formatter set of
// one call
func prepare(ctx context.Context, p provider.Provider, cfg Config, dialect format.Dialect, opts []Option) ([]model.Variable, *format.Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	variables, err := LoadVariables(ctx, p, opts...)
	if err != nil {
		return nil, nil, err
	}
	return variables, format.New(cfg, model.NewIndex(variables), dialect), nil
}

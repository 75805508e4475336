package format

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/figvars/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.TabWidth)
	assert.Equal(t, ":root", cfg.RootSelector)
	assert.InDelta(t, 16.0, cfg.BaseFontSize, 0.001)
	assert.False(t, cfg.HasDefaultValues)
	assert.Empty(t, cfg.TrimKeywords)
	require.Len(t, cfg.Units, len(model.NumberScopes))
	for _, s := range model.NumberScopes {
		assert.Equal(t, UnitPx, cfg.Units[s], s)
	}
	require.NoError(t, cfg.Validate())

	// Each call returns its own units map
	cfg.Units[model.ScopeGap] = UnitRem
	assert.Equal(t, UnitPx, DefaultConfig().Units[model.ScopeGap])
}

func TestConfigValidate_ReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TabWidth = -1
	cfg.BaseFontSize = 0
	cfg.Units[model.ScopeRadius] = "pt"
	cfg.Units[model.ScopeFillColor] = UnitPx
	cfg.TrimKeywords = []string{""}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)

	msg := err.Error()
	assert.Contains(t, msg, "TabWidth")
	assert.Contains(t, msg, "BaseFontSize")
	assert.Contains(t, msg, `"oneof"`)
	assert.Contains(t, msg, `"number_scope"`)
	assert.Contains(t, msg, `"required"`)
}

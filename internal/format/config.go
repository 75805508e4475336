package format

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/yacobolo/figvars/internal/model"
)

// Unit is the CSS unit used to render number variables
type Unit string

// Supported units
const (
	UnitPx   Unit = "px"
	UnitRem  Unit = "rem"
	UnitEm   Unit = "em"
	UnitNone Unit = "none"
)

// Config parameterizes every exporter
type Config struct {
	TabWidth         int                  `koanf:"tab-width" validate:"gte=0,lte=16"`
	RootSelector     string               `koanf:"root-selector"`
	BaseFontSize     float64              `koanf:"base-font-size" validate:"gt=0"`
	Units            map[model.Scope]Unit `koanf:"units" validate:"dive,keys,number_scope,endkeys,oneof=px rem em none"`
	HasDefaultValues bool                 `koanf:"default-values"`
	TrimKeywords     []string             `koanf:"trim-keywords" validate:"dive,required"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	units := make(map[model.Scope]Unit, len(model.NumberScopes))
	for _, s := range model.NumberScopes {
		units[s] = UnitPx
	}
	return Config{
		TabWidth:     2,
		RootSelector: ":root",
		BaseFontSize: 16,
		Units:        units,
		TrimKeywords: []string{},
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		numberScopes := make(map[string]bool, len(model.NumberScopes))
		for _, s := range model.NumberScopes {
			numberScopes[string(s)] = true
		}
		_ = v.RegisterValidation("number_scope", func(fl validator.FieldLevel) bool {
			return numberScopes[fl.Field().String()]
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration and reports every invalid field at once
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid config: %w", err)
	}

	var merr *multierror.Error
	for _, fe := range validationErrs {
		merr = multierror.Append(merr, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %w", merr.ErrorOrNil())
}

// Package config holds the runtime parameters of a simulation and loads them
// from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/Micah-Ribbens/Game-Qu/history"
	"github.com/Micah-Ribbens/Game-Qu/paths"
)

// Config holds the parameters shared by all components of a simulation.
type Config struct {
	// HistoryWindow is the number of past frames retained by history.
	HistoryWindow int `yaml:"history_window" toml:"history_window" validate:"min=1,max=100000"`
	// DerivativeStep is the step h of numeric central differences.
	DerivativeStep float64 `yaml:"derivative_step" toml:"derivative_step" validate:"gt=0,lt=1"`
	// Subdivisions is the number of trapezoids of numeric integration.
	Subdivisions int `yaml:"integration_subdivisions" toml:"integration_subdivisions" validate:"min=1"`
	// Tick is the duration of a simulation frame, in seconds.
	Tick float64 `yaml:"tick" toml:"tick" validate:"gt=0"`
	// MaxDenominator bounds the denominators of exact time fractions.
	MaxDenominator int64 `yaml:"max_denominator" toml:"max_denominator" validate:"min=1"`
}

// Default returns the default configuration: 8 frames of history, numeric
// calculus per [calc.DefaultNumeric], and 60 frames per second.
func Default() Config {
	return Config{
		HistoryWindow:  history.DefaultWindow,
		DerivativeStep: calc.DefaultNumeric.Step,
		Subdivisions:   calc.DefaultNumeric.Subdivisions,
		Tick:           1.0 / 60,
		MaxDenominator: calc.DefaultMaxDenominator,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v, a struct or pointer to struct, against its validate
// tags. Every violated constraint is reported.
func Validate(v any) error {
	err := validate.Struct(v)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			errs[i] = fmt.Errorf("config: %s: must satisfy %s=%s, got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
		} else {
			errs[i] = fmt.Errorf("config: %s: must satisfy %s, got %v", fe.Namespace(), fe.Tag(), fe.Value())
		}
	}
	return errors.Join(errs...)
}

// Validate checks that all parameters are in range.
func (c Config) Validate() error {
	return Validate(c)
}

// Load reads a configuration file, starting from [Default] so that the file
// only needs to mention the parameters it changes. The format is chosen by
// extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeFile decodes a YAML or TOML file into v, depending on its extension.
// Keys that do not correspond to a field of v are an error.
func DecodeFile(path string, v any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("config: decoding %s: %w", path, err)
		}
		return nil
	case ".toml":
		md, err := toml.DecodeFile(path, v)
		if err != nil {
			return fmt.Errorf("config: decoding %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("config: decoding %s: unknown keys %v", path, undecoded)
		}
		return nil
	default:
		return fmt.Errorf("config: unsupported file extension %q of %s", ext, path)
	}
}

// Numeric returns the options for numeric calculus.
func (c Config) Numeric() calc.NumericOptions {
	return calc.NumericOptions{
		Step:         c.DerivativeStep,
		Subdivisions: c.Subdivisions,
	}
}

// NewKeeper returns an empty history keeper with the configured window.
func (c Config) NewKeeper(opts ...history.Option) *history.Keeper {
	return history.NewKeeper(c.HistoryWindow, opts...)
}

// VelocityCalculator returns a velocity calculator for k using the
// configured tick.
func (c Config) VelocityCalculator(k *history.Keeper) (*history.VelocityCalculator, error) {
	return history.NewVelocityCalculator(k, c.Tick)
}

// PathOptions returns the path options implied by the configuration.
func (c Config) PathOptions() []paths.Option {
	return []paths.Option{paths.WithMaxDenominator(c.MaxDenominator)}
}

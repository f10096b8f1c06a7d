package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/huynhanx03/go-keyset/pkg/keyset"
)

// DefaultTolerances is the gap sweep the analyzer runs when none is configured.
var DefaultTolerances = []uint32{1, 2, 4, 8, 16, 32, 64}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analyzer: Analyzer{
			Cutoff:     keyset.DefaultCutoff,
			Divisor:    keyset.DefaultDivisor,
			Page:       keyset.DefaultPage,
			Tolerances: append([]uint32(nil), DefaultTolerances...),
		},
		Logger: Logger{
			LogLevel: "info",
		},
	}
}

// Load reads a YAML config file over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "settings: read config")
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrap(err, "settings: parse config")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct-level constraints.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return errors.Wrap(err, "settings: invalid config")
	}
	return nil
}

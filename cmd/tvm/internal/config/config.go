package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/tvm/irr"
)

// EnvPrefix prefixes every environment override, e.g. TVM_LOG_LEVEL.
const EnvPrefix = "TVM"

// Config holds the tvm command configuration.
// Precedence: environment > file > Default().
type Config struct {
	Log    LogConfig    `yaml:"log" toml:"log"`
	Solver SolverConfig `yaml:"solver" toml:"solver"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level       string `yaml:"level" toml:"level"`
	Development bool   `yaml:"development" toml:"development"`
}

// SolverConfig holds the IRR search settings.
type SolverConfig struct {
	MaxIterations    int     `yaml:"max_iterations" toml:"max_iterations" split_words:"true"`
	AbsoluteAccuracy float64 `yaml:"absolute_accuracy" toml:"absolute_accuracy" split_words:"true"`
	// Guess is the starting rate used when an irr input omits one.
	Guess float64 `yaml:"guess" toml:"guess"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:       "info",
			Development: false,
		},
		Solver: SolverConfig{
			MaxIterations:    irr.DefaultConfig.MaxIterations,
			AbsoluteAccuracy: irr.DefaultConfig.AbsoluteAccuracy,
			Guess:            0.1,
		},
	}
}

// Load reads path (YAML or TOML, by extension) over the defaults and then
// applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decode(raw, filepath.Ext(path), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(raw []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, cfg)
	case ".toml":
		_, err := toml.Decode(string(raw), cfg)
		return err
	default:
		return fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}
}

// Validate rejects solver settings that could never converge.
func (c *Config) Validate() error {
	var errs []error
	if c.Solver.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("solver.max_iterations must be positive, got %d", c.Solver.MaxIterations))
	}
	if c.Solver.AbsoluteAccuracy <= 0 {
		errs = append(errs, fmt.Errorf("solver.absolute_accuracy must be positive, got %g", c.Solver.AbsoluteAccuracy))
	}
	return errors.Join(errs...)
}

// IRR converts the solver settings to an irr.Config.
func (s SolverConfig) IRR() irr.Config {
	return irr.Config{
		MaxIterations:    s.MaxIterations,
		AbsoluteAccuracy: s.AbsoluteAccuracy,
	}
}

// Package config resolves scan settings from defaults, a YAML file,
// dotenv files and command line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/lynchbell/pkg/lynchbell"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up when Load is given a directory.
const ConfigFileName = lynchbell.ConfigFileName

// Keys read from dotenv files.
const (
	EnvFirst  = lynchbell.EnvPrefix + "FIRST"
	EnvLast   = lynchbell.EnvPrefix + "LAST"
	EnvFormat = lynchbell.EnvPrefix + "FORMAT"
)

type ScanConfig struct {
	First int `yaml:"first,omitempty"`
	Last  int `yaml:"last,omitempty"`
}

type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
}

type ProjectConfig struct {
	Scan   ScanConfig   `yaml:"scan"`
	Output OutputConfig `yaml:"output"`
}

// Load reads a ProjectConfig from path. If path is a directory,
// ConfigFileName inside it is read.
func Load(path string) (*ProjectConfig, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ConfigFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options are the inputs Resolve layers on top of the defaults.
// Nil and empty values mean "not set".
type Options struct {
	ConfigPath string
	EnvFiles   []string
	First      *int
	Last       *int
	Format     string
}

// Settings are the fully resolved, validated scan settings.
type Settings struct {
	Range  lynchbell.Range
	Format lynchbell.Format
}

// Default returns the settings of a bare invocation.
func Default() Settings {
	return Settings{Range: lynchbell.DefaultRange(), Format: lynchbell.FormatText}
}

// Resolve builds Settings with precedence defaults < YAML < env files < options.
// Nothing is read from disk unless opts names it, and the process
// environment is never consulted.
func Resolve(opts Options, logger lynchbell.Logger) (Settings, error) {
	rng := lynchbell.DefaultRange()
	format := ""

	if opts.ConfigPath != "" {
		cfg, err := Load(opts.ConfigPath)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to load %s: %w: %w", opts.ConfigPath, err, lynchbell.ErrInvalidConfig)
		}
		logger.Verbose("Loaded config from %s", opts.ConfigPath)
		rng, format = cfg.apply(rng, format)
	}

	if len(opts.EnvFiles) > 0 {
		vars, err := godotenv.Read(opts.EnvFiles...)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read env files %v: %w: %w", opts.EnvFiles, err, lynchbell.ErrInvalidConfig)
		}
		logger.Verbose("Loaded %d variable(s) from %d env file(s)", len(vars), len(opts.EnvFiles))
		rng, format, err = applyEnv(vars, rng, format)
		if err != nil {
			return Settings{}, err
		}
	}

	if opts.First != nil {
		rng.First = *opts.First
	}
	if opts.Last != nil {
		rng.Last = *opts.Last
	}
	if opts.Format != "" {
		format = opts.Format
	}

	f, err := lynchbell.ParseFormat(format)
	if err != nil {
		return Settings{}, err
	}
	if err := rng.Validate(); err != nil {
		return Settings{}, err
	}
	return Settings{Range: rng, Format: f}, nil
}

func (c *ProjectConfig) apply(rng lynchbell.Range, format string) (lynchbell.Range, string) {
	if c.Scan.First != 0 {
		rng.First = c.Scan.First
	}
	if c.Scan.Last != 0 {
		rng.Last = c.Scan.Last
	}
	if c.Output.Format != "" {
		format = c.Output.Format
	}
	return rng, format
}

func applyEnv(vars map[string]string, rng lynchbell.Range, format string) (lynchbell.Range, string, error) {
	for key, dst := range map[string]*int{EnvFirst: &rng.First, EnvLast: &rng.Last} {
		raw, ok := vars[key]
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return rng, format, fmt.Errorf("%s=%q is not an integer: %w", key, raw, lynchbell.ErrInvalidConfig)
		}
		*dst = n
	}
	if v, ok := vars[EnvFormat]; ok && v != "" {
		format = v
	}
	return rng, format, nil
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Defaults applied before any file or environment value.
const (
	DefaultTarget         = "amca.py"
	DefaultInterpreter    = "python"
	DefaultDepth          = 4
	DefaultBudgetSeconds  = 5
	DefaultIntervalMillis = 100
)

// Environment variable names.
const (
	EnvConfigFile  = "AMCA_FINDER_CONFIG_FILE"
	EnvTarget      = "AMCA_FINDER_TARGET"
	EnvInterpreter = "AMCA_FINDER_INTERPRETER"
	EnvDepth       = "AMCA_FINDER_DEPTH"
	EnvDryRun      = "AMCA_FINDER_DRY_RUN"
)

// ErrInvalidConfig is wrapped by every schema or environment validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed schema.json
var schema []byte

// Template is the commented example configuration shipped with the binaries.
//
//go:embed config.example.yaml
var Template []byte

// format is a supported configuration file format.
type format int

const (
	formatJSON format = iota
	formatYAML
)

// Config holds every tunable of the finder and launcher.
type Config struct {
	// Target is the file name to search for, matched exactly.
	Target string `json:"target" yaml:"target"`
	// Interpreter runs the selected script.
	Interpreter string `json:"interpreter" yaml:"interpreter"`
	// Depth is how many levels to ascend from the working directory.
	Depth int `json:"depth" yaml:"depth"`
	// DryRun prints the command instead of executing it.
	DryRun bool `json:"dryRun" yaml:"dryRun"`

	Watchdog struct {
		BudgetSeconds  int `json:"budgetSeconds" yaml:"budgetSeconds"`
		IntervalMillis int `json:"intervalMillis" yaml:"intervalMillis"`
	} `json:"watchdog" yaml:"watchdog"`

	Search struct {
		Workers        int  `json:"workers" yaml:"workers"`
		SkipUnreadable bool `json:"skipUnreadable" yaml:"skipUnreadable"`
	} `json:"search" yaml:"search"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	c := &Config{
		Target:      DefaultTarget,
		Interpreter: DefaultInterpreter,
		Depth:       DefaultDepth,
	}
	c.Watchdog.BudgetSeconds = DefaultBudgetSeconds
	c.Watchdog.IntervalMillis = DefaultIntervalMillis
	c.Search.Workers = runtime.NumCPU()
	return c
}

// Budget is the watchdog budget as a duration.
func (c *Config) Budget() time.Duration {
	return time.Duration(c.Watchdog.BudgetSeconds) * time.Second
}

// Interval is the watchdog polling interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Watchdog.IntervalMillis) * time.Millisecond
}

// Load builds a Config from defaults, the file at path (or
// AMCA_FINDER_CONFIG_FILE when path is empty), then the environment.
//
// Zero or negative values read from a file fall back to their defaults,
// except depth where 0 is meaningful.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.decode(data, detectFormat(path)); err != nil {
			return nil, err
		}
		cfg.normalize()
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat picks the decoder from the file extension, case-insensitively.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// decode validates data against the schema and merges it into c.
func (c *Config) decode(data []byte, f format) error {
	var doc gojsonschema.JSONLoader
	switch f {
	case formatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		if raw == nil {
			// Empty document.
			return nil
		}
		doc = gojsonschema.NewGoLoader(raw)
	default:
		if !json.Valid(data) {
			return fmt.Errorf("failed to parse JSON config file: %w", json.Unmarshal(data, new(any)))
		}
		doc = gojsonschema.NewBytesLoader(data)
	}

	if err := validate(doc); err != nil {
		return err
	}

	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// validate runs doc through the embedded schema and joins every violation.
func validate(doc gojsonschema.JSONLoader) error {
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func (c *Config) normalize() {
	if c.Target == "" {
		c.Target = DefaultTarget
	}
	if c.Interpreter == "" {
		c.Interpreter = DefaultInterpreter
	}
	if c.Depth < 0 {
		c.Depth = DefaultDepth
	}
	if c.Watchdog.BudgetSeconds <= 0 {
		c.Watchdog.BudgetSeconds = DefaultBudgetSeconds
	}
	if c.Watchdog.IntervalMillis <= 0 {
		c.Watchdog.IntervalMillis = DefaultIntervalMillis
	}
	if c.Search.Workers <= 0 {
		c.Search.Workers = runtime.NumCPU()
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvTarget); v != "" {
		c.Target = v
	}
	if v := os.Getenv(EnvInterpreter); v != "" {
		c.Interpreter = v
	}
	if v := os.Getenv(EnvDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s=%q must be an integer >= 0", ErrInvalidConfig, EnvDepth, v)
		}
		c.Depth = n
	}
	if v := os.Getenv(EnvDryRun); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q must be a boolean", ErrInvalidConfig, EnvDryRun, v)
		}
		c.DryRun = b
	}
	return nil
}

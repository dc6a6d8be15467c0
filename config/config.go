// Package config loads randwalk scenarios from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randwalk/batch"
	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
)

// ErrInvalidConfig is the umbrella for every validation failure in this package.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var (
	// ErrUnknownShape indicates a shape name other than sphere, box or ellipsoid.
	ErrUnknownShape = fmt.Errorf("%w: unknown shape", ErrInvalidConfig)

	// ErrBadVector indicates a coordinate list that does not hold exactly three values.
	ErrBadVector = fmt.Errorf("%w: vector must have 3 components", ErrInvalidConfig)

	// ErrBadEnv indicates an environment override that does not parse.
	ErrBadEnv = fmt.Errorf("%w: bad environment override", ErrInvalidConfig)
)

// Config holds everything needed to run one batch.
type Config struct {
	Walks       int          `yaml:"walks"`
	Workers     int          `yaml:"workers"` // 0 = GOMAXPROCS
	Seed        int64        `yaml:"seed"`    // 0 = step.DefaultSeed
	MaxSteps    int          `yaml:"max_steps"`
	Step        string       `yaml:"step"` // continuous, grid
	Start       []float64    `yaml:"start,flow"`
	MoveTarget  bool         `yaml:"move_target"`
	RecordPaths bool         `yaml:"record_paths"`
	Boundary    *ShapeConfig `yaml:"boundary,omitempty"` // absent = unconfined
	Target      *ShapeConfig `yaml:"target,omitempty"`   // absent = no target

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns a sphere of radius 20 around the origin with a small
// spherical target, walked 100 times with continuous steps.
func DefaultConfig() *Config {
	return &Config{
		Walks:    100,
		Seed:     step.DefaultSeed,
		MaxSteps: 1_000_000,
		Step:     step.KindContinuous.String(),
		Start:    []float64{0, 0, 0},
		Boundary: &ShapeConfig{
			Shape:  geom.KindSphere.String(),
			Center: []float64{0, 0, 0},
			Radius: 20,
		},
		Target: &ShapeConfig{
			Shape:  geom.KindSphere.String(),
			Center: []float64{10, 10, 10},
			Radius: 3.33,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// A missing file yields the defaults. A file that omits boundary or target
// describes an unconfined or untargeted walk.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		// Shapes are not merged with the defaults: absent means none.
		cfg.Boundary, cfg.Target = nil, nil
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies RANDWALK_* environment variables.
func (c *Config) applyEnvOverrides() error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"RANDWALK_WALKS", &c.Walks},
		{"RANDWALK_WORKERS", &c.Workers},
		{"RANDWALK_MAX_STEPS", &c.MaxSteps},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", e.name, v, ErrBadEnv)
		}
		*e.dst = n
	}

	if v := os.Getenv("RANDWALK_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("RANDWALK_SEED=%q: %w", v, ErrBadEnv)
		}
		c.Seed = seed
	}
	if v := os.Getenv("RANDWALK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks every field without running anything.
func (c *Config) Validate() error {
	if c.Walks <= 0 {
		return fmt.Errorf("walks=%d: %w", c.Walks, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level=%q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format=%q: %w", c.Logging.Format, ErrInvalidConfig)
	}

	sc, err := c.Scenario()
	if err != nil {
		return err
	}

	return sc.Validate()
}

// Scenario converts the configuration into a batch scenario.
func (c *Config) Scenario() (batch.Scenario, error) {
	kind, err := step.ParseKind(c.Step)
	if err != nil {
		return batch.Scenario{}, err
	}
	start, err := vec("start", c.Start)
	if err != nil {
		return batch.Scenario{}, err
	}

	sc := batch.Scenario{
		Start:      start,
		MaxSteps:   c.MaxSteps,
		Step:       kind,
		MoveTarget: c.MoveTarget,
	}
	if c.Boundary != nil {
		if sc.Boundary, err = c.Boundary.Build(); err != nil {
			return batch.Scenario{}, fmt.Errorf("boundary: %w", err)
		}
	}
	if c.Target != nil {
		if sc.Target, err = c.Target.Build(); err != nil {
			return batch.Scenario{}, fmt.Errorf("target: %w", err)
		}
	}

	return sc, nil
}

// RunnerOptions returns the batch options the configuration implies.
func (c *Config) RunnerOptions() []batch.Option {
	return []batch.Option{
		batch.WithSeed(c.Seed),
		batch.WithWorkers(c.Workers),
		batch.WithRecordPaths(c.RecordPaths),
	}
}

// vec converts a YAML coordinate list. An empty list is the origin.
func vec(field string, v []float64) (geom.Point3, error) {
	switch len(v) {
	case 0:
		return geom.Origin, nil
	case 3:
		return geom.Pt(v[0], v[1], v[2]), nil
	default:
		return geom.Point3{}, fmt.Errorf("%s=%v: %w", field, v, ErrBadVector)
	}
}

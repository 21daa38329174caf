// Package config loads polygeom settings. Values come from the defaults, then
// an optional YAML file, then the environment, each layer overriding the last.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/polygeom/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Curve       CurveConfig       `yaml:"curve"`
	Containment ContainmentConfig `yaml:"containment"`
	Render      RenderConfig      `yaml:"render"`
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
}

type CurveConfig struct {
	Tension  float64 `yaml:"tension"`
	Segments int     `yaml:"segments"`
}

type ContainmentConfig struct {
	LegacyEarlyExit bool `yaml:"legacy_early_exit"`
}

type RenderConfig struct {
	Scale   float64 `yaml:"scale"`
	Padding int     `yaml:"padding"`
	// Largest image side in pixels
	MaxSize int `yaml:"max_size"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Request bodies larger than this are rejected
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Curve: CurveConfig{
			Tension:  geom.DefaultTension,
			Segments: geom.DefaultSegments,
		},
		Render: RenderConfig{
			Scale:   10,
			Padding: 20,
			MaxSize: 8192,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty) over the
// defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing config %s", path)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Environment variables, checked after the file.
const (
	EnvTension         = "POLYGEOM_TENSION"
	EnvSegments        = "POLYGEOM_SEGMENTS"
	EnvLegacyEarlyExit = "POLYGEOM_LEGACY_EARLY_EXIT"
	EnvAddr            = "POLYGEOM_ADDR"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
)

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTension); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvTension)
		}
		cfg.Curve.Tension = f
	}
	if v, ok := lookup(EnvSegments); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSegments)
		}
		cfg.Curve.Segments = n
	}
	if v, ok := lookup(EnvLegacyEarlyExit); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvLegacyEarlyExit)
		}
		cfg.Containment.LegacyEarlyExit = b
	}
	if v, ok := lookup(EnvAddr); ok {
		cfg.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.Log.Format = strings.ToLower(v)
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.Curve.Segments < 1 {
		return errors.Errorf("curve.segments must be at least 1, got %d", cfg.Curve.Segments)
	}
	if cfg.Render.Scale <= 0 {
		return errors.Errorf("render.scale must be positive, got %g", cfg.Render.Scale)
	}
	if cfg.Render.MaxSize < 1 {
		return errors.Errorf("render.max_size must be positive, got %d", cfg.Render.MaxSize)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}
	return nil
}

// ContainsOptions builds the hit-test options for a line type.
func (cfg Config) ContainsOptions(lineType geom.LineType) geom.ContainsOptions {
	return geom.ContainsOptions{
		LineType:        lineType,
		Tension:         cfg.Curve.Tension,
		Segments:        cfg.Curve.Segments,
		LegacyEarlyExit: cfg.Containment.LegacyEarlyExit,
	}
}

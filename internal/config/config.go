// Package config loads application configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmoren/wellspring/internal/llm"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// CORSOrigins lists allowed origins for the browser frontend. Empty
	// means allow all, which suits local development.
	CORSOrigins []string `yaml:"cors_origins"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type SensorConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"-"`
}

// UnmarshalYAML accepts the interval as a duration string ("5s", "1m").
func (s *SensorConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Enabled  bool   `yaml:"enabled"`
		Interval string `yaml:"interval"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	s.Enabled = raw.Enabled
	if raw.Interval != "" {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return fmt.Errorf("parsing sensor interval: %w", err)
		}
		s.Interval = d
	}
	return nil
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Sensor SensorConfig `yaml:"sensor"`
	Log    LogConfig    `yaml:"log"`
	LLM    llm.Config   `yaml:"llm"`
}

// Default returns the development configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		DB:     DBConfig{Path: "data/wellspring.db"},
		Sensor: SensorConfig{Enabled: true, Interval: 5 * time.Second},
		Log:    LogConfig{Level: "info"},
		LLM:    llm.DefaultConfig(),
	}
}

// Load reads configuration: defaults, then the YAML file at path (if
// path is empty or missing the file is skipped), then environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("opening config %s: %w", path, err)
			}
		} else {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("decoding config %s: %w", path, err)
			}
		}
	}

	overrideFromEnv(cfg)
	llm.ApplyEnv(&cfg.LLM)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if addr := os.Getenv("WELLSPRING_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if path := os.Getenv("WELLSPRING_DB_PATH"); path != "" {
		cfg.DB.Path = path
	}
	if level := os.Getenv("WELLSPRING_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if enabled := os.Getenv("WELLSPRING_SENSOR_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			cfg.Sensor.Enabled = b
		}
	}
	if interval := os.Getenv("WELLSPRING_SENSOR_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			cfg.Sensor.Interval = d
		}
	}
}

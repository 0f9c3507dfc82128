package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pgvanniekerk/ezthreadpool/internal/threadpool"
	"gopkg.in/yaml.v3"
)

// Config is the file configuration of the demo driver.
type Config struct {
	Pool    PoolConfig    `yaml:"pool" json:"pool"`
	Log     LogConfig     `yaml:"log" json:"log"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
	Demo    DemoConfig    `yaml:"demo" json:"demo"`
}

// PoolConfig configures the thread pool.
type PoolConfig struct {
	Threads int `yaml:"threads" json:"threads"`
}

// LogConfig configures logging. Level is one of debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" json:"enabled"`
	Namespace string `yaml:"namespace" json:"namespace"`
	Address   string `yaml:"address" json:"address"`
}

// DemoConfig configures the jobs the demo enqueues. Job i sleeps i*JobDuration.
type DemoConfig struct {
	Jobs        int    `yaml:"jobs" json:"jobs"`
	JobDuration string `yaml:"job_duration" json:"job_duration"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pool:    PoolConfig{Threads: threadpool.DefaultThreads},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Namespace: "ezthreadpool", Address: ":9090"},
		Demo:    DemoConfig{Jobs: 10, JobDuration: "100ms"},
	}
}

// LoadFile reads a YAML or JSON file, chosen by extension, on top of Default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	if c.Pool.Threads <= 0 {
		errs = append(errs, fmt.Errorf("pool.threads: %w", threadpool.ErrInvalidThreadCount))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Metrics.Enabled && c.Metrics.Address == "" {
		errs = append(errs, errors.New("metrics.address is required when metrics are enabled"))
	}
	if c.Demo.Jobs < 0 {
		errs = append(errs, fmt.Errorf("demo.jobs must be >= 0, got %d", c.Demo.Jobs))
	}
	if _, err := c.JobDuration(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
}

// JobDuration parses Demo.JobDuration.
func (c *Config) JobDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Demo.JobDuration)
	if err != nil {
		return 0, fmt.Errorf("demo.job_duration: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("demo.job_duration must be >= 0, got %s", d)
	}
	return d, nil
}

// ThreadPoolOptions converts the pool section into constructor options.
func (c *Config) ThreadPoolOptions() []threadpool.Option {
	return []threadpool.Option{
		threadpool.WithThreads(c.Pool.Threads),
	}
}

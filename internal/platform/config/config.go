package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures process level configuration.
type Config struct {
	Addr            string        `yaml:"addr"`
	LogLevel        string        `yaml:"log_level"`
	BatchLimit      int           `yaml:"batch_limit"`
	MaxBatch        int           `yaml:"max_batch"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the development defaults.
func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		BatchLimit:      8,
		MaxBatch:        100,
		ShutdownTimeout: 10 * time.Second,
	}
}

// FromEnv builds a validated Config from defaults and environment variables.
// Malformed numeric values keep the default.
func FromEnv() (Config, error) {
	return Load("")
}

// Load reads a YAML file over the defaults, then applies environment
// variables on top and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.BatchLimit < 1 {
		return fmt.Errorf("batch_limit must be positive, got %d", c.BatchLimit)
	}
	if c.MaxBatch < 1 {
		return fmt.Errorf("max_batch must be positive, got %d", c.MaxBatch)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DOCBR_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DOCBR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if n, err := strconv.Atoi(os.Getenv("DOCBR_BATCH_LIMIT")); err == nil {
		cfg.BatchLimit = n
	}
	if n, err := strconv.Atoi(os.Getenv("DOCBR_MAX_BATCH")); err == nil {
		cfg.MaxBatch = n
	}
	if d, err := time.ParseDuration(os.Getenv("DOCBR_SHUTDOWN_TIMEOUT")); err == nil {
		cfg.ShutdownTimeout = d
	}
}

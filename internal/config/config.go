// Package config loads the docpress CLI configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoggerConfig mirrors the logging.Init parameters.
type LoggerConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Level      string `yaml:"level"`
}

// CacheConfig enables the shared Redis render cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	RedisAddr string        `yaml:"redis_addr"`
	RedisDB   int           `yaml:"redis_db"`
	TTL       time.Duration `yaml:"ttl"`
}

// Config is the full CLI configuration.
type Config struct {
	BaseURL     string       `yaml:"base_url"`
	TimeoutSecs int          `yaml:"timeout_secs"`
	Logger      LoggerConfig `yaml:"logger"`
	Cache       CacheConfig  `yaml:"cache"`
}

// Load reads the config from the path in CONFIG_PATH, defaulting to
// ./config.yaml. Invalid configuration is a startup defect and panics.
func Load() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the config at path, panicking on any problem.
func LoadFrom(path string) Config {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("config: cannot read %s: %v", path, err))
	}

	cfg := Config{
		TimeoutSecs: 30,
		Logger:      LoggerConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 14},
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic(fmt.Sprintf("config: cannot parse %s: %v", path, err))
	}

	if cfg.BaseURL == "" {
		panic("config: base_url is required")
	}
	if cfg.TimeoutSecs <= 0 {
		panic("config: timeout_secs must be positive")
	}
	if cfg.Cache.Enabled {
		if cfg.Cache.RedisAddr == "" {
			panic("config: cache.redis_addr is required when cache is enabled")
		}
		if cfg.Cache.TTL <= 0 {
			panic("config: cache.ttl must be positive when cache is enabled")
		}
	}
	return cfg
}

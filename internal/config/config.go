// Package config loads settings for the elementify binaries from a YAML file,
// an optional .env file and ELEMENTIFY_* environment variables, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Dictionary Dictionary `yaml:"dictionary"`
	Log        Log        `yaml:"log"`
}

type Server struct {
	Address       string        `yaml:"address"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout"`
	RateLimit     float64       `yaml:"rate_limit"` // requests per second, 0 disables limiting
	Burst         int           `yaml:"burst"`
	CacheSize     int           `yaml:"cache_size"`
	MaxPartials   int           `yaml:"max_partials"`
	MaxBatch      int           `yaml:"max_batch"`
	MaxWordLength int           `yaml:"max_word_length"`
}

type Dictionary struct {
	// Path to a JSON dictionary. Empty selects the built-in periodic table.
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

type Log struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // json or console
	Stdout     bool   `yaml:"stdout"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Address:       ":8080",
			ReadTimeout:   10 * time.Second,
			WriteTimeout:  30 * time.Second,
			RateLimit:     50,
			Burst:         100,
			CacheSize:     1024,
			MaxPartials:   1_000_000,
			MaxBatch:      100,
			MaxWordLength: 64,
		},
		Log: Log{
			Level:      "info",
			Format:     "json",
			Stdout:     true,
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped when
// path is empty), envFiles (or ./.env when present) and the environment.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
		return nil
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Server.Address = getEnv("ELEMENTIFY_ADDRESS", c.Server.Address)
	c.Dictionary.Path = getEnv("ELEMENTIFY_DICTIONARY", c.Dictionary.Path)
	c.Log.Level = getEnv("ELEMENTIFY_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("ELEMENTIFY_LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnv("ELEMENTIFY_LOG_FILE", c.Log.File)

	var err error
	if c.Server.RateLimit, err = getEnvFloat("ELEMENTIFY_RATE_LIMIT", c.Server.RateLimit); err != nil {
		return err
	}
	if c.Server.CacheSize, err = getEnvInt("ELEMENTIFY_CACHE_SIZE", c.Server.CacheSize); err != nil {
		return err
	}
	if c.Server.MaxPartials, err = getEnvInt("ELEMENTIFY_MAX_PARTIALS", c.Server.MaxPartials); err != nil {
		return err
	}
	if c.Dictionary.Watch, err = getEnvBool("ELEMENTIFY_DICTIONARY_WATCH", c.Dictionary.Watch); err != nil {
		return err
	}
	return nil
}

// Validate rejects settings the binaries cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Server.Address == "":
		return errors.New("server.address is required")
	case c.Server.RateLimit < 0:
		return fmt.Errorf("server.rate_limit must be >= 0, got %v", c.Server.RateLimit)
	case c.Server.RateLimit > 0 && c.Server.Burst < 1:
		return fmt.Errorf("server.burst must be >= 1 when rate limiting, got %d", c.Server.Burst)
	case c.Server.CacheSize < 0:
		return fmt.Errorf("server.cache_size must be >= 0, got %d", c.Server.CacheSize)
	case c.Server.MaxPartials < 0:
		return fmt.Errorf("server.max_partials must be >= 0, got %d", c.Server.MaxPartials)
	case c.Server.MaxBatch < 1:
		return fmt.Errorf("server.max_batch must be >= 1, got %d", c.Server.MaxBatch)
	case c.Server.MaxWordLength < 1:
		return fmt.Errorf("server.max_word_length must be >= 1, got %d", c.Server.MaxWordLength)
	case c.Dictionary.Watch && c.Dictionary.Path == "":
		return errors.New("dictionary.watch requires dictionary.path")
	case c.Log.Format != "json" && c.Log.Format != "console":
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

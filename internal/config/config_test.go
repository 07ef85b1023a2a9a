package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("Address = %q, want :8080", cfg.Server.Address)
	}
	if cfg.Dictionary.Path != "" {
		t.Errorf("Dictionary.Path = %q, want empty", cfg.Dictionary.Path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "elementify.yaml", `
server:
  address: ":9090"
  read_timeout: 2s
  rate_limit: 5
  burst: 10
  cache_size: 16
dictionary:
  path: /tmp/elements.json
  watch: true
log:
  level: debug
  format: console
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Errorf("Address = %q, want :9090", cfg.Server.Address)
	}
	if cfg.Server.ReadTimeout != 2*time.Second {
		t.Errorf("ReadTimeout = %v, want 2s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.RateLimit != 5 || cfg.Server.Burst != 10 {
		t.Errorf("RateLimit/Burst = %v/%d, want 5/10", cfg.Server.RateLimit, cfg.Server.Burst)
	}
	if cfg.Server.CacheSize != 16 {
		t.Errorf("CacheSize = %d, want 16", cfg.Server.CacheSize)
	}
	if cfg.Dictionary.Path != "/tmp/elements.json" || !cfg.Dictionary.Watch {
		t.Errorf("Dictionary = %+v", cfg.Dictionary)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "console" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "elementify.yaml", "server:\n  address: \":9090\"\n")
	t.Setenv("ELEMENTIFY_ADDRESS", ":7070")
	t.Setenv("ELEMENTIFY_CACHE_SIZE", "7")
	t.Setenv("ELEMENTIFY_RATE_LIMIT", "0")
	t.Setenv("ELEMENTIFY_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != ":7070" {
		t.Errorf("Address = %q, want :7070", cfg.Server.Address)
	}
	if cfg.Server.CacheSize != 7 {
		t.Errorf("CacheSize = %d, want 7", cfg.Server.CacheSize)
	}
	if cfg.Server.RateLimit != 0 {
		t.Errorf("RateLimit = %v, want 0", cfg.Server.RateLimit)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := writeFile(t, "test.env", "ELEMENTIFY_MAX_PARTIALS=42\n")
	t.Setenv("ELEMENTIFY_MAX_PARTIALS", "")
	os.Unsetenv("ELEMENTIFY_MAX_PARTIALS")

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.MaxPartials != 42 {
		t.Errorf("MaxPartials = %d, want 42", cfg.Server.MaxPartials)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "server: [")
		if _, err := Load(path); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})

	t.Run("bad env number", func(t *testing.T) {
		t.Setenv("ELEMENTIFY_CACHE_SIZE", "lots")
		_, err := Load("")
		if err == nil || !strings.Contains(err.Error(), "ELEMENTIFY_CACHE_SIZE") {
			t.Errorf("Load() error = %v, want ELEMENTIFY_CACHE_SIZE error", err)
		}
	})

	t.Run("missing env file", func(t *testing.T) {
		if _, err := Load("", filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "empty address", modify: func(c *Config) { c.Server.Address = "" }},
		{name: "negative rate", modify: func(c *Config) { c.Server.RateLimit = -1 }},
		{name: "zero burst", modify: func(c *Config) { c.Server.Burst = 0 }},
		{name: "negative cache", modify: func(c *Config) { c.Server.CacheSize = -1 }},
		{name: "negative partials", modify: func(c *Config) { c.Server.MaxPartials = -1 }},
		{name: "zero batch", modify: func(c *Config) { c.Server.MaxBatch = 0 }},
		{name: "zero word length", modify: func(c *Config) { c.Server.MaxWordLength = 0 }},
		{name: "watch without path", modify: func(c *Config) { c.Dictionary.Watch = true }},
		{name: "unknown format", modify: func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() error = nil, want error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("file sink", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "elementify.log")
		logger, err := NewLogger(Log{Level: "info", Format: "json", File: path, MaxSizeMB: 1})
		if err != nil {
			t.Fatalf("NewLogger() error = %v", err)
		}
		logger.Info("segmented")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if !strings.Contains(string(data), `"msg":"segmented"`) {
			t.Errorf("log file = %q, want the message", data)
		}
	})

	t.Run("no sinks", func(t *testing.T) {
		logger, err := NewLogger(Log{Level: "info", Format: "json"})
		if err != nil {
			t.Fatalf("NewLogger() error = %v", err)
		}
		logger.Info("dropped")
	})

	t.Run("bad level", func(t *testing.T) {
		if _, err := NewLogger(Log{Level: "loud", Format: "json"}); err == nil {
			t.Error("NewLogger() error = nil, want error")
		}
	})
}

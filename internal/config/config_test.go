package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var envVars = []string{
	"ENV_FILE",
	"SUBSTACK_BASE_URL",
	"SUBSTACK_POST_LIMIT",
	"SUBSTACK_HTTP_TIMEOUT",
	"SUBSTACK_DB_PATH",
	"SUBSTACK_OFFLINE",
	"SUBSTACK_LOG_FILE",
	"SUBSTACK_LOG_LEVEL",
}

// clearEnv unsets every variable the loader reads and restores them after t.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range envVars {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
}

func TestLoadFromEnv_UsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("unexpected base URL: %s", cfg.BaseURL)
	}
	if cfg.PostLimit != 25 {
		t.Fatalf("unexpected post limit: %d", cfg.PostLimit)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.HTTPTimeout)
	}
	if cfg.DBPath != "" || cfg.Offline {
		t.Fatalf("expected archive disabled by default: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoadFromEnv_ReadsOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUBSTACK_BASE_URL", "https://example.substack.com")
	t.Setenv("SUBSTACK_POST_LIMIT", "10")
	t.Setenv("SUBSTACK_HTTP_TIMEOUT", "3s")
	t.Setenv("SUBSTACK_DB_PATH", "posts.db")
	t.Setenv("SUBSTACK_OFFLINE", "true")
	t.Setenv("SUBSTACK_LOG_LEVEL", "DEBUG")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.BaseURL != "https://example.substack.com" || cfg.PostLimit != 10 || cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Offline || cfg.DBPath != "posts.db" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadFromEnv_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "reader.env")
	if err := os.WriteFile(path, []byte("SUBSTACK_POST_LIMIT=7\nSUBSTACK_BASE_URL=https://file.example.com\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("SUBSTACK_BASE_URL", "https://env.example.com")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.PostLimit != 7 {
		t.Fatalf("expected limit from env file, got %d", cfg.PostLimit)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Fatalf("expected process env to win over env file, got %s", cfg.BaseURL)
	}
}

func TestLoadFromEnv_MissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	if _, err := LoadFromEnv(); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestLoadFromEnv_RejectsMalformedValues(t *testing.T) {
	cases := map[string]string{
		"SUBSTACK_POST_LIMIT":   "many",
		"SUBSTACK_HTTP_TIMEOUT": "soon",
		"SUBSTACK_OFFLINE":      "perhaps",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(name, value)
			_, err := LoadFromEnv()
			if err == nil || !strings.Contains(err.Error(), name) {
				t.Fatalf("expected error naming %s, got %v", name, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		BaseURL:     "https://www.the-main-thread.com",
		PostLimit:   25,
		HTTPTimeout: time.Second,
		LogLevel:    "info",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty base url", mutate: func(c *Config) { c.BaseURL = "" }},
		{name: "trailing slash", mutate: func(c *Config) { c.BaseURL = "https://example.com/" }},
		{name: "bad scheme", mutate: func(c *Config) { c.BaseURL = "ftp://example.com" }},
		{name: "no host", mutate: func(c *Config) { c.BaseURL = "https://" }},
		{name: "zero limit", mutate: func(c *Config) { c.PostLimit = 0 }},
		{name: "limit too high", mutate: func(c *Config) { c.PostLimit = 51 }},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTPTimeout = 0 }},
		{name: "offline without db", mutate: func(c *Config) { c.Offline = true }},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "chatty" }},
		{name: "fatal level", mutate: func(c *Config) { c.LogLevel = "fatal" }},
	}
	for _, tc := range cases {
		cfg := valid
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL     = "https://www.the-main-thread.com"
	defaultPostLimit   = 25
	maxPostLimit       = 50
	defaultHTTPTimeout = 15 * time.Second
	defaultLogLevel    = "info"
)

// Config holds runtime settings for the reader.
type Config struct {
	BaseURL     string
	PostLimit   int
	HTTPTimeout time.Duration
	// DBPath enables the post archive when set.
	DBPath   string
	Offline  bool
	LogFile  string
	LogLevel string
}

func LoadFromEnv() (Config, error) {
	if err := loadEnvFiles(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:     os.Getenv("SUBSTACK_BASE_URL"),
		PostLimit:   defaultPostLimit,
		HTTPTimeout: defaultHTTPTimeout,
		DBPath:      os.Getenv("SUBSTACK_DB_PATH"),
		LogFile:     os.Getenv("SUBSTACK_LOG_FILE"),
		LogLevel:    strings.ToLower(os.Getenv("SUBSTACK_LOG_LEVEL")),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if raw := os.Getenv("SUBSTACK_POST_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("SUBSTACK_POST_LIMIT must be an integer: %q", raw)
		}
		cfg.PostLimit = n
	}
	if raw := os.Getenv("SUBSTACK_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("SUBSTACK_HTTP_TIMEOUT must be a duration: %q", raw)
		}
		cfg.HTTPTimeout = d
	}
	if raw := os.Getenv("SUBSTACK_OFFLINE"); raw != "" {
		offline, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("SUBSTACK_OFFLINE must be a boolean: %q", raw)
		}
		cfg.Offline = offline
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("BaseURL is required")
	}
	if strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("BaseURL must not end with '/': %s", c.BaseURL)
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("BaseURL is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("BaseURL must use http or https: %s", c.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("BaseURL has no host: %s", c.BaseURL)
	}
	if c.PostLimit < 1 || c.PostLimit > maxPostLimit {
		return fmt.Errorf("PostLimit must be between 1 and %d: %d", maxPostLimit, c.PostLimit)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTPTimeout must be positive: %s", c.HTTPTimeout)
	}
	if c.Offline && c.DBPath == "" {
		return errors.New("offline mode requires SUBSTACK_DB_PATH")
	}
	if level, err := log.ParseLevel(c.LogLevel); err != nil || level == log.FatalLevel {
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	return nil
}

// loadEnvFiles loads ENV_FILE when set, otherwise .env.local then .env.
// Variables already present in the environment win; missing files are ignored.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}
	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env.local: %w", err)
	}
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"job-dash/internal/service/search"
)

// Config holds the configuration for the dashboard server and CLI.
type Config struct {
	ListenAddr string // HTTP listen address (default ":8080")
	LogLevel   string // log level: debug, info, warn, error (default "info")
	Env        string // environment: "development" (default) or "production"

	// Dataset locations: a file path, s3://bucket/key, or
	// sqlite:///path.db?table=name.
	RawDataPath       string // raw listings, pruned before the overview (default "data.csv")
	ProcessedDataPath string // preprocessed listings for search and charts (default "processed_data.csv")
	DatasetConfigPath string // optional YAML with column names and chart settings

	// Dataset holds column names and chart settings, from DatasetConfigPath
	// or the built-in defaults.
	Dataset Dataset

	SearchEmptyPattern search.EmptyPatternPolicy
	TableCache         bool // reuse loaded tables until the file changes (default true)
	PreferDuckDB       bool // read local CSV files through DuckDB

	// S3 fields are nil when not configured.
	S3KeyID    *string
	S3Secret   *string
	S3Endpoint *string
	S3Region   *string

	// Rate limiting
	RateLimitRPS   float64 // sustained requests per second (default 50)
	RateLimitBurst int     // burst capacity (default 100)

	// CORS
	CORSAllowedOrigins []string // allowed origins for the JSON API (default: ["*"])

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// HasS3Config returns true if all required S3 fields are set.
func (c *Config) HasS3Config() bool {
	return c.S3KeyID != nil && c.S3Secret != nil &&
		c.S3Endpoint != nil && c.S3Region != nil
}

// LoadFromEnv loads configuration from environment variables.
// S3 variables are optional.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		ListenAddr:        os.Getenv("LISTEN_ADDR"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		Env:               os.Getenv("ENV"),
		RawDataPath:       os.Getenv("RAW_DATA_PATH"),
		ProcessedDataPath: os.Getenv("PROCESSED_DATA_PATH"),
		DatasetConfigPath: os.Getenv("DATASET_CONFIG"),
		TableCache:        parseBoolEnvDefault("TABLE_CACHE", true),
		PreferDuckDB:      parseBoolEnvDefault("PREFER_DUCKDB", false),
	}

	policy, err := search.ParseEmptyPatternPolicy(os.Getenv("SEARCH_EMPTY_PATTERN"))
	if err != nil {
		return nil, fmt.Errorf("SEARCH_EMPTY_PATTERN: %w", err)
	}
	cfg.SearchEmptyPattern = policy

	// Rate limiting
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring invalid RATE_LIMIT_RPS %q", v))
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring invalid RATE_LIMIT_BURST %q", v))
		}
	}

	// S3 fields are only set if present
	if v := os.Getenv("KEY_ID"); v != "" {
		cfg.S3KeyID = &v
	}
	if v := os.Getenv("SECRET"); v != "" {
		cfg.S3Secret = &v
	}
	if v := os.Getenv("ENDPOINT"); v != "" {
		cfg.S3Endpoint = &v
	}
	if v := os.Getenv("REGION"); v != "" {
		cfg.S3Region = &v
	}

	// CORS
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = compactNonEmpty(origins)
	}

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RawDataPath == "" {
		cfg.RawDataPath = "data.csv"
	}
	if cfg.ProcessedDataPath == "" {
		cfg.ProcessedDataPath = "processed_data.csv"
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 50
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 100
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	cfg.Dataset = DefaultDataset()
	if cfg.DatasetConfigPath != "" {
		ds, err := LoadDataset(cfg.DatasetConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Dataset = ds
	}

	usesS3 := strings.HasPrefix(cfg.RawDataPath, "s3://") || strings.HasPrefix(cfg.ProcessedDataPath, "s3://")
	if usesS3 && !cfg.HasS3Config() {
		cfg.Warnings = append(cfg.Warnings, "an s3:// dataset is configured but KEY_ID, SECRET, ENDPOINT, and REGION are not all set")
	}

	// Production mode: insecure defaults are fatal errors.
	if cfg.IsProduction() {
		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			return nil, fmt.Errorf("CORS wildcard (*) is not allowed in production (ENV=production)")
		}
	}

	return cfg, nil
}

func parseBoolEnvDefault(key string, defaultVal bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return defaultVal
	}
	if v == "0" || v == "false" || v == "no" || v == "off" {
		return false
	}
	if v == "1" || v == "true" || v == "yes" || v == "on" {
		return true
	}
	return defaultVal
}

func compactNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// LoadDotEnv reads a .env file and sets any variables not already in the environment.
// Lines must be in KEY=VALUE format. Comments (#) and blank lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		value = stripQuotes(strings.TrimSpace(value))
		// Only set if not already in the environment (env vars take precedence)
		if _, set := os.LookupEnv(key); !set {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

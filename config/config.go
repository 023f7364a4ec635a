// Package config loads scpdump settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

// Configuration validation errors.
var (
	ErrInvalidBaseURL   = errors.New("source.base_url must be an absolute http(s) URL")
	ErrInvalidSeries    = errors.New("source.series must be at least 1")
	ErrInvalidTimeout   = errors.New("source.timeout_sec must be at least 1")
	ErrInvalidStart     = errors.New("batch.start must be non-negative")
	ErrInvalidLimit     = errors.New("batch.limit must be at least 1")
	ErrInvalidFormat    = errors.New("render.format must be one of: markdown, json, pdf")
	ErrInvalidThreshold = errors.New("render.inline_threshold must be at least 1")
	ErrMissingOutputDir = errors.New("output.dir is required")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
)

type Config struct {
	Source  Source  `yaml:"source"`
	Batch   Batch   `yaml:"batch"`
	Parser  Parser  `yaml:"parser"`
	Render  Render  `yaml:"render"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

type Source struct {
	BaseURL    string `yaml:"base_url"`
	Series     int    `yaml:"series"`
	TimeoutSec int    `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
}

// Batch selects a contiguous slice of the harvested index.
type Batch struct {
	Start int `yaml:"start"`
	Limit int `yaml:"limit"`
}

type Parser struct {
	PreserveMarkup bool `yaml:"preserve_markup"`
}

type Render struct {
	Format          string `yaml:"format"`
	InlineThreshold int    `yaml:"inline_threshold"`
}

type Output struct {
	Dir string `yaml:"dir"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: Source{
			BaseURL:    "http://www.scp-wiki.net/",
			Series:     1,
			TimeoutSec: 30,
			UserAgent:  "scpdump/1.0",
		},
		Batch:   Batch{Start: 1, Limit: 49},
		Render:  Render{Format: "markdown", InlineThreshold: 35},
		Output:  Output{Dir: "dist"},
		Logging: Logging{Level: "info"},
	}
}

// Load reads and parses a config YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the scraper cannot use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Source.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Source.BaseURL)
	}
	if c.Source.Series < 1 {
		return ErrInvalidSeries
	}
	if c.Source.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Batch.Start < 0 {
		return ErrInvalidStart
	}
	if c.Batch.Limit < 1 {
		return ErrInvalidLimit
	}

	switch c.Render.Format {
	case "markdown", "json", "pdf":
	default:
		return ErrInvalidFormat
	}
	if c.Render.InlineThreshold < 1 {
		return ErrInvalidThreshold
	}

	if strings.TrimSpace(c.Output.Dir) == "" {
		return ErrMissingOutputDir
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}
	return nil
}

// Timeout returns the HTTP request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutSec) * time.Second
}

// LogLevel maps logging.level onto a slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

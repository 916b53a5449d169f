package config

import (
	"fmt"

	"github.com/GriffinCanCode/htmldoc/internal/document"
	"github.com/GriffinCanCode/htmldoc/internal/logging"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration.
type Config struct {
	Parser  ParserConfig
	Pretty  PrettyConfig
	Logging LogConfig
}

// ParserConfig holds parsing configuration.
type ParserConfig struct {
	MaxSize       int  `envconfig:"HTMLDOC_MAX_SIZE" default:"10485760"`
	DetectCharset bool `envconfig:"HTMLDOC_DETECT_CHARSET" default:"true"`
	Sanitize      bool `envconfig:"HTMLDOC_SANITIZE" default:"false"`
}

// PrettyConfig holds pretty-printer configuration.
type PrettyConfig struct {
	Width int `envconfig:"HTMLDOC_PRETTY_WIDTH" default:"80"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxSize:       document.DefaultMaxSize,
			DetectCharset: true,
			Sanitize:      false,
		},
		Pretty: PrettyConfig{
			Width: document.DefaultWidth,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	if c.Parser.MaxSize < 0 {
		return fmt.Errorf("invalid config: HTMLDOC_MAX_SIZE must not be negative, got %d", c.Parser.MaxSize)
	}
	if c.Pretty.Width <= 0 {
		return fmt.Errorf("invalid config: HTMLDOC_PRETTY_WIDTH must be positive, got %d", c.Pretty.Width)
	}
	return nil
}

// ParserOptions converts the parser section into document options.
func (c *Config) ParserOptions() document.Options {
	return document.Options{
		MaxSize:       c.Parser.MaxSize,
		DetectCharset: c.Parser.DetectCharset,
		Sanitize:      c.Parser.Sanitize,
	}
}

// LoggerConfig converts the logging section into logger configuration.
func (c *Config) LoggerConfig() logging.Config {
	if c.Logging.Development {
		cfg := logging.DevelopmentConfig()
		cfg.Level = c.Logging.Level
		return cfg
	}
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	return cfg
}

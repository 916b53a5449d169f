// Package htmldoc parses HTML into an immutable node tree with CSS and XPath
// lookup, plain-text projection and a ~HTML[...] pretty-printer.
//
// Parse and MustParse cover the common case. NewParser takes explicit
// options and a logger; LoadConfig and NewParserFromConfig build both from
// HTMLDOC_* and LOG_* environment variables. NewToolkit additionally exposes
// the parser as "document.*" tools behind a service registry with
// Prometheus metrics.
package htmldoc

import (
	"fmt"

	"github.com/GriffinCanCode/htmldoc/internal/config"
	"github.com/GriffinCanCode/htmldoc/internal/document"
	"github.com/GriffinCanCode/htmldoc/internal/logging"
	"github.com/GriffinCanCode/htmldoc/internal/monitoring"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	Document             = document.Document
	Node                 = document.Node
	Element              = document.Element
	Comment              = document.Comment
	Text                 = document.Text
	Attributes           = document.Attributes
	Attr                 = document.Attr
	Parser               = document.Parser
	Options              = document.Options
	UnsupportedNodeError = document.UnsupportedNodeError

	Logger    = logging.Logger
	LogConfig = logging.Config
	Config    = config.Config
	Metrics   = monitoring.Metrics
)

var (
	ErrParse           = document.ErrParse
	ErrNotFound        = document.ErrNotFound
	ErrInvalidSelector = document.ErrInvalidSelector
)

// Parse parses src as a body fragment with the default options.
func Parse(src string) (*Document, error) {
	return document.Parse(src)
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(src string) *Document {
	return document.MustParse(src)
}

// DefaultOptions returns the default parser options.
func DefaultOptions() Options {
	return document.DefaultOptions()
}

// NewParser creates a parser logging to logger; nil discards log output.
func NewParser(opts Options, logger *Logger) *Parser {
	return document.NewParser(opts, logger)
}

// NewLogger creates a zap-backed logger.
func NewLogger(cfg LogConfig) (*Logger, error) {
	return logging.New(cfg)
}

// NopLogger returns a logger that discards everything.
func NopLogger() *Logger {
	return logging.NewNop()
}

// NewMetrics registers the parse, lookup and tool metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return monitoring.NewMetrics(reg)
}

// LoadConfig reads configuration from the environment and validates it.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return config.Default()
}

// NewParserFromConfig creates a parser with the options and logger described
// by cfg.
func NewParserFromConfig(cfg *Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LoggerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return document.NewParser(cfg.ParserOptions(), logger), nil
}

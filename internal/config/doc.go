// Package config provides 12-factor configuration for htmldoc.
//
// Configuration is loaded from environment variables with sensible defaults.
// Nothing in the library reads the environment on its own; callers that want
// environment overrides call Load or LoadOrDefault and pass the result on.
//
// Configuration Sections:
//   - Parser: input size limit, charset detection, sanitization
//   - Pretty: pretty-printer line width
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	parser := document.NewParser(cfg.ParserOptions(), logger)
//
// Environment Variables:
//   - HTMLDOC_MAX_SIZE, HTMLDOC_DETECT_CHARSET, HTMLDOC_SANITIZE
//   - HTMLDOC_PRETTY_WIDTH
//   - LOG_LEVEL, LOG_DEV
package config

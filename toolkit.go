package htmldoc

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/htmldoc/internal/config"
	"github.com/GriffinCanCode/htmldoc/internal/document"
	"github.com/GriffinCanCode/htmldoc/internal/logging"
	"github.com/GriffinCanCode/htmldoc/internal/monitoring"
	docprovider "github.com/GriffinCanCode/htmldoc/internal/providers/document"
	"github.com/GriffinCanCode/htmldoc/internal/service"
	"github.com/GriffinCanCode/htmldoc/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type (
	Registry    = service.Registry
	Provider    = docprovider.Provider
	Service     = types.Service
	Tool        = types.Tool
	ToolContext = types.Context
	Result      = types.Result
)

// Toolkit is a configured parser exposed as "document.*" tools.
type Toolkit struct {
	Parser   *Parser
	Registry *Registry
	Metrics  *Metrics
	Logger   *Logger
}

// NewToolkit wires logger, metrics, parser and the document provider from
// cfg. A nil cfg uses DefaultConfig; a nil reg uses a private registry.
func NewToolkit(cfg *Config, reg prometheus.Registerer) (*Toolkit, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LoggerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := monitoring.NewMetrics(reg)

	parser := document.NewParser(cfg.ParserOptions(), logger).WithMetrics(metrics)
	provider := docprovider.NewProvider(parser, metrics, logger).WithWidth(cfg.Pretty.Width)

	registry := service.NewRegistry()
	if err := registry.Register(provider); err != nil {
		return nil, fmt.Errorf("failed to register document provider: %w", err)
	}

	logger.Info("document toolkit initialized",
		zap.Int("max_size", cfg.Parser.MaxSize),
		zap.Bool("sanitize", cfg.Parser.Sanitize),
		zap.Strings("tools", registry.Tools()),
	)

	return &Toolkit{
		Parser:   parser,
		Registry: registry,
		Metrics:  metrics,
		Logger:   logger,
	}, nil
}

// Execute runs a tool such as "document.select" through the registry.
func (t *Toolkit) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *ToolContext) (*Result, error) {
	return t.Registry.Execute(ctx, toolID, params, appCtx)
}

// Services lists the registered service definitions.
func (t *Toolkit) Services() []Service {
	return t.Registry.List(nil)
}

// Sync flushes buffered log output.
func (t *Toolkit) Sync() error {
	return t.Logger.Sync()
}

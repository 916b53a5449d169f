package document

import (
	"context"

	htmldoc "github.com/GriffinCanCode/htmldoc/internal/document"
	"github.com/GriffinCanCode/htmldoc/internal/logging"
	"github.com/GriffinCanCode/htmldoc/internal/monitoring"
	"github.com/GriffinCanCode/htmldoc/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Provider implements document tools over a shared parser
type Provider struct {
	parser  *htmldoc.Parser
	metrics *monitoring.Metrics
	logger  *logging.Logger
	width   int
}

// NewProvider creates a document provider. Nil dependencies get defaults:
// the default parser options, metrics on a private registry, and a no-op logger.
// Parses made through the provider are recorded on metrics.
func NewProvider(parser *htmldoc.Parser, metrics *monitoring.Metrics, logger *logging.Logger) *Provider {
	if logger == nil {
		logger = logging.NewNop()
	}
	if parser == nil {
		parser = htmldoc.NewParser(htmldoc.DefaultOptions(), logger)
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics(prometheus.NewRegistry())
	}
	return &Provider{
		parser:  parser.WithMetrics(metrics),
		metrics: metrics,
		logger:  logger.Named("document"),
		width:   htmldoc.DefaultWidth,
	}
}

// WithWidth sets the default pretty-print width
func (p *Provider) WithWidth(width int) *Provider {
	if width > 0 {
		p.width = width
	}
	return p
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "document",
		Name:        "HTML Document Service",
		Description: "Parse HTML into an immutable tree with CSS and XPath lookup, text projection and pretty-printing",
		Category:    types.CategoryDocument,
		Capabilities: []string{
			"html_parsing",
			"css_selectors",
			"xpath_queries",
			"text_extraction",
			"pretty_printing",
			"tree_export",
			"charset_detection",
			"html_sanitization",
		},
		Tools: p.tools(),
	}
}

// Execute routes to the tool implementation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	timer := monitoring.NewTimer(p.metrics, toolID)

	var (
		result *types.Result
		err    error
	)
	switch toolID {
	case "document.parse":
		result, err = p.parse(ctx, params)
	case "document.select":
		result, err = p.selectCSS(ctx, params)
	case "document.xpath":
		result, err = p.selectXPath(ctx, params)
	case "document.text":
		result, err = p.text(ctx, params)
	case "document.export":
		result, err = p.export(ctx, params)
	case "document.html":
		result, err = p.html(ctx, params)
	default:
		result, err = UnknownToolFailure(toolID)
	}

	status := "success"
	if err != nil || result == nil || !result.Success {
		status = "failure"
	}
	timer.Stop(status)

	logger := p.logger
	if appCtx != nil {
		logger = logger.ForRequest(appCtx.RequestID)
	}
	fields := []zap.Field{logging.Tool(toolID), zap.String("status", status)}
	if result != nil && result.Error != nil {
		fields = append(fields, zap.String("error", *result.Error))
	}
	logger.Debug("tool executed", fields...)

	return result, err
}

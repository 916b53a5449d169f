package htmldoc

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietConfig() *Config {
	cfg := DefaultConfig()
	cfg.Logging.Level = "error"
	return cfg
}

func TestNewToolkit(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := quietConfig()
	cfg.Pretty.Width = 10

	kit, err := NewToolkit(cfg, reg)
	require.NoError(t, err)

	services := kit.Services()
	require.Len(t, services, 1)
	assert.Equal(t, "document", services[0].ID)

	requestID := "req-7"
	result, err := kit.Execute(context.Background(), "document.parse", map[string]interface{}{
		"html": "aaaa<!--bbbb-->cccc",
	}, &ToolContext{RequestID: &requestID})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 3, result.Data["nodes"])
	assert.Equal(t, "~HTML[aaaa\n<!--bbbb-->\ncccc]", result.Data["pretty"])

	result, err = kit.Execute(context.Background(), "document.select", map[string]interface{}{
		"html":     "<p>a</p>",
		"selector": "span",
	}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, false, result.Data["found"])

	assert.Equal(t, 2.0, testutil.ToFloat64(kit.Metrics.Parses.WithLabelValues("fragment", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(kit.Metrics.ToolCalls.WithLabelValues("document.parse", "success")))

	count, err := testutil.GatherAndCount(reg, "htmldoc_parse_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestToolkitParserRecordsMetrics(t *testing.T) {
	kit, err := NewToolkit(quietConfig(), nil)
	require.NoError(t, err)

	_, err = kit.Parser.ParseDocument("<title>t</title>")
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(kit.Metrics.Parses.WithLabelValues("document", "success")))
}

func TestNewToolkitRejectsInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Pretty.Width = 0

	_, err := NewToolkit(cfg, nil)
	assert.Error(t, err)
}

func TestToolkitUnknownService(t *testing.T) {
	kit, err := NewToolkit(quietConfig(), nil)
	require.NoError(t, err)

	result, err := kit.Execute(context.Background(), "scraper.fetch", nil, nil)
	assert.Error(t, err)
	assert.False(t, result.Success)
}

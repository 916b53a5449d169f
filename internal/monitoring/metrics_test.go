package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordParse(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordParse("fragment", nil, time.Millisecond)
	m.RecordParse("fragment", nil, time.Millisecond)
	m.RecordParse("document", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Parses.WithLabelValues("fragment", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Parses.WithLabelValues("document", "error")))

	count, err := testutil.GatherAndCount(reg, "htmldoc_parse_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRecordLookup(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordLookup("css", OutcomeFound)
	m.RecordLookup("css", OutcomeNotFound)
	m.RecordLookup("xpath", OutcomeInvalid)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("css", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("css", OutcomeNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("xpath", OutcomeInvalid)))
}

func TestTimer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	timer := NewTimer(m, "document.text")
	time.Sleep(time.Millisecond)
	timer.Stop("success")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("document.text", "success")))

	count, err := testutil.GatherAndCount(reg, "htmldoc_tool_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}

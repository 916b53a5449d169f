/*
Package monitoring provides Prometheus metrics for document operations.

# Overview

Metrics are registered on a caller-supplied prometheus.Registerer so several
collectors (one per test, say) never collide on the default registry.

# Metrics

- htmldoc_tool_calls_total{tool,status}: provider tool executions
- htmldoc_tool_duration_seconds{tool}: provider tool latency
- htmldoc_parses_total{mode,status}: parse outcomes
- htmldoc_parse_duration_seconds{mode}: parse latency, recorded by a parser
  created with WithMetrics
- htmldoc_lookups_total{kind,outcome}: lookups by found, not_found or invalid

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	timer := monitoring.NewTimer(metrics, "document.select")
	// ... perform operation ...
	timer.Stop("success")
*/
package monitoring

package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests  atomic.Int64
	FetchRequests   atomic.Int64
	FetchErrors     atomic.Int64
	ExtractErrors   atomic.Int64
	WaybackRequests atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":  metrics.SearchRequests.Load(),
		"fetch_requests":   metrics.FetchRequests.Load(),
		"fetch_errors":     metrics.FetchErrors.Load(),
		"extract_errors":   metrics.ExtractErrors.Load(),
		"wayback_requests": metrics.WaybackRequests.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests",
		"fetch_requests", "fetch_errors", "extract_errors",
		"wayback_requests",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TrackListRequests atomic.Int64
	CueFetchRequests  atomic.Int64
	PlayerFallbacks   atomic.Int64
	ProviderErrors    atomic.Int64
	TranslatedFetches atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"track_list_requests": metrics.TrackListRequests.Load(),
		"cue_fetch_requests":  metrics.CueFetchRequests.Load(),
		"player_fallbacks":    metrics.PlayerFallbacks.Load(),
		"provider_errors":     metrics.ProviderErrors.Load(),
		"translated_fetches":  metrics.TranslatedFetches.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"track_list_requests", "cue_fetch_requests",
		"player_fallbacks", "provider_errors", "translated_fetches",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the youtube sub-package.
func IncrTrackListRequests() { metrics.TrackListRequests.Add(1) }
func IncrCueFetchRequests()  { metrics.CueFetchRequests.Add(1) }
func IncrPlayerFallbacks()   { metrics.PlayerFallbacks.Add(1) }
func IncrProviderErrors()    { metrics.ProviderErrors.Add(1) }
func IncrTranslatedFetches() { metrics.TranslatedFetches.Add(1) }

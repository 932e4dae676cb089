package model

import "github.com/carbonstream/carbonstream/internal/hardware"

// EffectiveLatencyMs is a tier's service latency plus the system-wide
// network transit and processing overhead, in milliseconds.
func EffectiveLatencyMs(p hardware.Profile, sys hardware.SystemProfile) float64 {
	return p.LatencyMs + sys.NetworkLatencyMs + sys.ProcessingLatencyMs
}

// AverageLatencyMs is the expected end-to-end latency: every request pays
// the frontend and cache tiers, only cache misses additionally pay the
// backend tier.
//
//	avg = frontend + cache + (1 - hitRate) × backend
//
// This is the standard AMAT (average memory access time) form. The
// historical grouping hit×cache + (1-hit)×(cache+backend) expands to
// cache + (1-hit)×backend, so both count the cache latency exactly once and
// are identical for every hit rate.
func AverageLatencyMs(sys hardware.SystemProfile, frontend, cache, backend hardware.Profile, hitRate float64) float64 {
	missRate := 1 - hitRate
	return EffectiveLatencyMs(frontend, sys) +
		EffectiveLatencyMs(cache, sys) +
		missRate*EffectiveLatencyMs(backend, sys)
}

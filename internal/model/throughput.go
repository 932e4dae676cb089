package model

import (
	"math"

	"github.com/carbonstream/carbonstream/internal/hardware"
)

// TierThroughput is a tier's aggregate throughput in requests per second:
// per-server throughput times the deployed server count.
func TierThroughput(p hardware.Profile, numServers int) float64 {
	return p.Throughput * float64(numServers)
}

// PeakThroughput is the system-wide sustainable throughput: the minimum of
// the three tier aggregates. The slowest tier caps the pipeline.
func PeakThroughput(frontend, cache, backend float64) float64 {
	return math.Min(frontend, math.Min(cache, backend))
}

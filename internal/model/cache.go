package model

import (
	"fmt"
	"math"
)

// CacheHitRate estimates the fraction of requests served from cache as the
// ratio of aggregate cache capacity to the total addressable data volume,
// clamped to 1. The estimate is monotonically non-decreasing in the server
// count; no lower clamp is needed since capacity and count are non-negative.
//
// Fails with ErrInvalidParameter when totalDataVolumeGB is not positive.
func CacheHitRate(capacityPerServerGB float64, numServers int, totalDataVolumeGB float64) (float64, error) {
	if totalDataVolumeGB <= 0 {
		return 0, fmt.Errorf("%w: total data volume must be positive, got %g", ErrInvalidParameter, totalDataVolumeGB)
	}
	hitRate := capacityPerServerGB * float64(numServers) / totalDataVolumeGB
	return math.Min(1, hitRate), nil
}

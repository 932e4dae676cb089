package model

import (
	"fmt"
	"math"
)

// ServersNeeded returns the number of servers a tier needs to sustain the
// SLO throughput: ceil(sloThroughput / perServerThroughput). Sizing is
// independent per tier; no cross-tier feedback.
//
// Fails with ErrInvalidParameter when perServerThroughput is not positive.
func ServersNeeded(sloThroughput, perServerThroughput float64) (int, error) {
	if perServerThroughput <= 0 {
		return 0, fmt.Errorf("%w: per-server throughput must be positive, got %g", ErrInvalidParameter, perServerThroughput)
	}
	if sloThroughput < 0 {
		return 0, fmt.Errorf("%w: SLO throughput must not be negative, got %g", ErrInvalidParameter, sloThroughput)
	}
	return int(math.Ceil(sloThroughput / perServerThroughput)), nil
}

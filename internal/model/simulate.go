package model

// Simulate evaluates one configuration: sizing, hit rate, latency,
// throughput and the carbon breakdown, in that order. The result is computed
// fresh on every call and never cached.
//
// The produced latency and throughput are reported alongside the SLO, not
// validated against it; whether the configuration actually meets the SLO is
// left to downstream analysis.
func Simulate(req SimulationRequest) (SimulationResult, error) {
	slo := float64(req.SLOThroughput)

	frontendServers, err := ServersNeeded(slo, req.Frontend.Throughput)
	if err != nil {
		return SimulationResult{}, err
	}
	cacheServers, err := ServersNeeded(slo, req.Cache.Throughput)
	if err != nil {
		return SimulationResult{}, err
	}
	backendServers, err := ServersNeeded(slo, req.Backend.Throughput)
	if err != nil {
		return SimulationResult{}, err
	}

	hitRate, err := CacheHitRate(req.Cache.CapacityGB, cacheServers, req.System.StorageCapacityGB)
	if err != nil {
		return SimulationResult{}, err
	}

	peak := PeakThroughput(
		TierThroughput(req.Frontend, frontendServers),
		TierThroughput(req.Cache, cacheServers),
		TierThroughput(req.Backend, backendServers),
	)

	avgLatency := AverageLatencyMs(req.System, req.Frontend, req.Cache, req.Backend, hitRate)

	// Only cache misses reach the backend, so its operational costs are
	// scaled by the miss rate. Sizing is not: the backend fleet must still
	// absorb the full SLO load on a cold cache.
	carbon := Breakdown{
		Frontend: TierCarbonCosts(frontendServers, req.Frontend, req.System, req.SimulationYears, 1),
		Cache:    TierCarbonCosts(cacheServers, req.Cache, req.System, req.SimulationYears, 1),
		Backend:  TierCarbonCosts(backendServers, req.Backend, req.System, req.SimulationYears, 1-hitRate),
	}

	frontendCapacity := float64(frontendServers) * req.Frontend.CapacityGB
	cacheCapacity := float64(cacheServers) * req.Cache.CapacityGB
	backendCapacity := float64(backendServers) * req.Backend.CapacityGB

	return SimulationResult{
		FrontendServers:    frontendServers,
		CacheServers:       cacheServers,
		BackendServers:     backendServers,
		CacheHitRate:       hitRate,
		AverageLatencyMs:   avgLatency,
		PeakThroughput:     peak,
		Carbon:             carbon,
		FrontendCapacityGB: frontendCapacity,
		CacheCapacityGB:    cacheCapacity,
		BackendCapacityGB:  backendCapacity,
		TotalCapacityGB:    frontendCapacity + cacheCapacity + backendCapacity,
	}, nil
}

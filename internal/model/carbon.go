package model

import "github.com/carbonstream/carbonstream/internal/hardware"

// SecondsPerYear converts the simulation horizon to operating seconds.
const SecondsPerYear = 365 * 24 * 60 * 60

// TierCarbonCosts computes the four lifecycle carbon components for one tier
// over the simulation horizon.
//
//   - Embodied: one-time manufacturing cost of the deployed fleet, not
//     time-scaled.
//   - Active: power drawn servicing reads and writes weighted by the
//     read/write mix, times carbon intensity, over the active fraction of the
//     horizon.
//   - Idle: idle power times carbon intensity over the remaining fraction.
//   - Replacement: full fleet re-manufacture each time the horizon exceeds a
//     whole hardware lifespan, charged as additional embodied cost.
//
// missScale is 1 for tiers every request reaches, and (1 - cacheHitRate) for
// the backend, which only cache misses reach. The replacement model assumes
// a synchronized fleet-wide refresh at each lifespan boundary with no
// partial-lifespan amortization; that is a documented simplification of real
// staggered depreciation, carried over deliberately.
func TierCarbonCosts(numServers int, p hardware.Profile, sys hardware.SystemProfile, simulationYears int, missScale float64) TierCarbon {
	servers := float64(numServers)
	totalSeconds := float64(simulationYears) * SecondsPerYear

	perServerActiveW := p.PowerActiveReadW*sys.ReadRatio + p.PowerActiveWriteW*(1-sys.ReadRatio)

	c := TierCarbon{
		EmbodiedKg: servers * p.EmbodiedCostKg,
		ActiveKg:   servers * perServerActiveW * sys.CarbonIntensity * totalSeconds * sys.ActiveRatio * missScale,
		IdleKg:     servers * p.PowerIdleW * sys.CarbonIntensity * totalSeconds * (1 - sys.ActiveRatio) * missScale,
	}

	if p.LifespanYears > 0 && simulationYears > p.LifespanYears {
		replacements := simulationYears / p.LifespanYears
		c.ReplacementKg = float64(replacements) * servers * p.EmbodiedCostKg
	}

	return c
}

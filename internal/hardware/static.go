package hardware

import "fmt"

// staticSpec is a raw entry in the built-in tables. Carbon figures are
// expressed per gigabyte: carbonCostPerGB in kgCO2e/GB of manufactured
// capacity, accessRead/accessWrite/idleRate in kgCO2e/GB/second of
// operation.
//
// Source: published embodied-carbon and access-energy figures for the
// respective storage technologies; values carried over unchanged from the
// original model calibration.
type staticSpec struct {
	latencyMs       float64
	throughput      float64
	carbonCostPerGB float64
	accessRead      float64
	accessWrite     float64
	idleRate        float64
	lifespanYears   int
	sizeGB          float64
}

var frontendSpecs = map[string]staticSpec{
	"low_performance": {
		latencyMs:       0.08,
		throughput:      5,
		carbonCostPerGB: 0.16,
		accessRead:      0.0000000004,
		accessWrite:     0.0000000004,
		idleRate:        0.00000000013,
		lifespanYears:   5,
		sizeGB:          3840,
	},
	"high_performance": {
		latencyMs:       0.00000001,
		throughput:      20,
		carbonCostPerGB: 0.31,
		accessRead:      0.000000087,
		accessWrite:     0.000000087,
		idleRate:        0.000000087,
		lifespanYears:   10,
		sizeGB:          4096,
	},
}

var cacheSpecs = map[string]staticSpec{
	"DRAM": {
		latencyMs:       0.00000001,
		throughput:      20,
		carbonCostPerGB: 0.31,
		accessRead:      0.000000087,
		accessWrite:     0.000000087,
		idleRate:        0.000000087,
		lifespanYears:   10,
		sizeGB:          4096,
	},
	"flash": {
		latencyMs:       0.08,
		throughput:      5,
		carbonCostPerGB: 0.16,
		accessRead:      0.0000000004,
		accessWrite:     0.0000000004,
		idleRate:        0.00000000013,
		lifespanYears:   5,
		sizeGB:          3840,
	},
}

var backendSpecs = map[string]staticSpec{
	"SSD": {
		latencyMs:       0.08,
		throughput:      5,
		carbonCostPerGB: 0.16,
		accessRead:      0.0000000004,
		accessWrite:     0.00000000049,
		idleRate:        0.00000000013,
		lifespanYears:   5,
		sizeGB:          3840,
	},
	"HDD": {
		latencyMs:       4.16,
		throughput:      0.27,
		carbonCostPerGB: 0.0017,
		accessRead:      0.000000000073,
		accessWrite:     0.000000000073,
		idleRate:        0.000000000041,
		lifespanYears:   5,
		sizeGB:          18000,
	},
	"tape": {
		latencyMs:       10000,
		throughput:      0.4,
		carbonCostPerGB: 0.00042,
		accessRead:      0.000000000002,
		accessWrite:     0.000000000002,
		idleRate:        0,
		lifespanYears:   30,
		sizeGB:          18000,
	},
	"glass": {
		latencyMs:       10,
		throughput:      0.21,
		carbonCostPerGB: 0.0001,
		accessRead:      0.000000000001,
		accessWrite:     0.00000000001,
		idleRate:        0,
		lifespanYears:   100,
		sizeGB:          7000,
	},
}

// Built-in system-wide parameters used alongside the constant tables.
const (
	staticNetworkLatencyMs    = 1
	staticProcessingLatencyMs = 0.5
	staticReadRatio           = 0.7
	staticActiveRatio         = 0.7
	staticStorageCapacityGB   = 10000000000
)

// Default hardware class per tier when no selector is supplied.
var staticDefaults = map[Tier]string{
	TierFrontend: "low_performance",
	TierCache:    "DRAM",
	TierBackend:  "SSD",
}

// StaticResolver resolves profiles from the built-in constant tables.
//
// The tables carry per-GB emission rates rather than watts, so profiles are
// normalized at resolution time: EmbodiedCostKg = carbonCostPerGB × sizeGB
// and each power field = rate × sizeGB, read as an emission rate in kg/s.
// The matching SystemProfile sets CarbonIntensity to 1 so the model's
// power × intensity product reproduces the per-GB rates exactly.
type StaticResolver struct{}

// NewStaticResolver creates a resolver backed by the built-in tables.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

// Tier resolves the profile for a hardware class. An empty selector resolves
// the tier's default class. Unknown selectors fail with ErrUnknownSelector.
func (r *StaticResolver) Tier(tier Tier, selector string) (Profile, error) {
	table, ok := map[Tier]map[string]staticSpec{
		TierFrontend: frontendSpecs,
		TierCache:    cacheSpecs,
		TierBackend:  backendSpecs,
	}[tier]
	if !ok {
		return Profile{}, fmt.Errorf("%w: tier %q", ErrUnknownSelector, tier)
	}

	if selector == "" {
		selector = staticDefaults[tier]
	}

	spec, ok := table[selector]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q is not a built-in %s class", ErrUnknownSelector, selector, tier)
	}

	logger.Debug().
		Str("tier", string(tier)).
		Str("selector", selector).
		Msg("resolved profile from built-in tables")

	return Profile{
		Name:              selector,
		LatencyMs:         spec.latencyMs,
		Throughput:        spec.throughput,
		CapacityGB:        spec.sizeGB,
		EmbodiedCostKg:    spec.carbonCostPerGB * spec.sizeGB,
		PowerActiveReadW:  spec.accessRead * spec.sizeGB,
		PowerActiveWriteW: spec.accessWrite * spec.sizeGB,
		PowerIdleW:        spec.idleRate * spec.sizeGB,
		LifespanYears:     spec.lifespanYears,
	}, nil
}

// System returns the built-in system-wide parameters. The selector is
// ignored; the constant tables have exactly one system configuration.
func (r *StaticResolver) System(selector string) (SystemProfile, error) {
	if selector != "" {
		logger.Warn().
			Str("selector", selector).
			Msg("system selector ignored in built-in mode")
	}
	return SystemProfile{
		NetworkLatencyMs:    staticNetworkLatencyMs,
		ProcessingLatencyMs: staticProcessingLatencyMs,
		StorageCapacityGB:   staticStorageCapacityGB,
		ActiveRatio:         staticActiveRatio,
		ReadRatio:           staticReadRatio,
		CarbonIntensity:     1,
	}, nil
}

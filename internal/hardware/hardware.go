// Package hardware resolves per-tier hardware profiles and the system-wide
// profile that feed the capacity and carbon model.
//
// Two resolution strategies exist: StaticResolver serves the built-in
// constant tables keyed by hardware class, FileResolver reads structured
// JSON or YAML profile files and falls back to embedded defaults. Both
// produce profiles in the same canonical units, so the model has a single
// formula path regardless of where the parameters came from.
package hardware

import "github.com/rs/zerolog"

// Tier identifies a stage in the three-tier request-serving pipeline.
type Tier string

const (
	TierFrontend Tier = "frontend"
	TierCache    Tier = "cache"
	TierBackend  Tier = "backend"
)

// Profile describes one server class within a tier. Immutable after
// resolution.
type Profile struct {
	// Name identifies the hardware class (e.g. "DRAM", "Samsung_PM9A3").
	Name string

	// LatencyMs is the per-request service latency in milliseconds.
	LatencyMs float64

	// Throughput is the sustained per-server throughput in requests per second.
	Throughput float64

	// CapacityGB is the usable storage capacity per server in gigabytes.
	CapacityGB float64

	// EmbodiedCostKg is the one-time manufacturing carbon cost per deployed
	// server in kgCO2e.
	EmbodiedCostKg float64

	// PowerActiveReadW and PowerActiveWriteW are the power draw while
	// servicing reads and writes, in watts.
	PowerActiveReadW  float64
	PowerActiveWriteW float64

	// PowerIdleW is the power draw while powered but unused, in watts.
	PowerIdleW float64

	// LifespanYears is the operational lifespan before the fleet is replaced.
	LifespanYears int
}

// SystemProfile holds the cross-cutting parameters shared by all tiers.
// Immutable after resolution.
type SystemProfile struct {
	// NetworkLatencyMs is the network transit latency added per tier hop.
	NetworkLatencyMs float64

	// ProcessingLatencyMs is the request processing overhead added per tier hop.
	ProcessingLatencyMs float64

	// StorageCapacityGB is the total addressable data volume in gigabytes.
	StorageCapacityGB float64

	// ActiveRatio is the fraction of time servers spend in the active state.
	ActiveRatio float64

	// ReadRatio is the fraction of operations that are reads.
	ReadRatio float64

	// CarbonIntensity is the carbon intensity of the electricity supply in
	// kgCO2e per watt-second.
	CarbonIntensity float64
}

// Resolver resolves hardware and system profiles from a selector. The
// meaning of the selector depends on the strategy: a hardware class name for
// StaticResolver, a file path for FileResolver. An empty selector resolves
// the strategy's default for that tier.
type Resolver interface {
	Tier(tier Tier, selector string) (Profile, error)
	System(selector string) (SystemProfile, error)
}

// logger is the package logger, injected via SetLogger. Defaults to a no-op
// logger so library consumers get no output unless they opt in.
var logger = zerolog.Nop()

// SetLogger injects the logger used for configuration-source diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Package model implements the analytical capacity and carbon model for a
// three-tier video-delivery pipeline.
//
// Given an SLO and the resolved hardware and system profiles, the model
// computes server counts per tier, a cache hit rate, average end-to-end
// latency, peak throughput, and a four-component lifecycle carbon breakdown
// (embodied, active, idle, replacement) over a simulated multi-year horizon.
// All formulas are closed-form; one request yields exactly one result.
package model

import (
	"errors"

	"github.com/carbonstream/carbonstream/internal/hardware"
)

// ErrInvalidParameter is returned when a formula input is physically
// nonsensical (non-positive throughput or data volume).
var ErrInvalidParameter = errors.New("invalid model parameter")

// SimulationRequest is the sole input to the model: the SLO target, the
// simulation horizon and the resolved profiles.
type SimulationRequest struct {
	SLOLatencyMs    int
	SLOThroughput   int
	SimulationYears int

	System   hardware.SystemProfile
	Frontend hardware.Profile
	Cache    hardware.Profile
	Backend  hardware.Profile
}

// SimulationResult is the derived, read-only outcome of one evaluation.
type SimulationResult struct {
	FrontendServers int
	CacheServers    int
	BackendServers  int

	CacheHitRate     float64
	AverageLatencyMs float64
	PeakThroughput   float64

	Carbon Breakdown

	FrontendCapacityGB float64
	CacheCapacityGB    float64
	BackendCapacityGB  float64
	TotalCapacityGB    float64
}

// TierCarbon holds the four carbon cost components for one tier, in kgCO2e.
type TierCarbon struct {
	EmbodiedKg    float64
	ActiveKg      float64
	IdleKg        float64
	ReplacementKg float64
}

// CumulativeKg is the tier's total: the sum of its four components.
func (c TierCarbon) CumulativeKg() float64 {
	return c.EmbodiedKg + c.ActiveKg + c.IdleKg + c.ReplacementKg
}

// Breakdown holds the per-tier carbon costs for one evaluation.
type Breakdown struct {
	Frontend TierCarbon
	Cache    TierCarbon
	Backend  TierCarbon
}

// EmbodiedKg is the embodied cost summed across tiers.
func (b Breakdown) EmbodiedKg() float64 {
	return b.Frontend.EmbodiedKg + b.Cache.EmbodiedKg + b.Backend.EmbodiedKg
}

// ActiveKg is the active-operation cost summed across tiers.
func (b Breakdown) ActiveKg() float64 {
	return b.Frontend.ActiveKg + b.Cache.ActiveKg + b.Backend.ActiveKg
}

// IdleKg is the idle-operation cost summed across tiers.
func (b Breakdown) IdleKg() float64 {
	return b.Frontend.IdleKg + b.Cache.IdleKg + b.Backend.IdleKg
}

// ReplacementKg is the replacement cost summed across tiers.
func (b Breakdown) ReplacementKg() float64 {
	return b.Frontend.ReplacementKg + b.Cache.ReplacementKg + b.Backend.ReplacementKg
}

// CumulativeKg is the system total across all tiers and components.
func (b Breakdown) CumulativeKg() float64 {
	return b.Frontend.CumulativeKg() + b.Cache.CumulativeKg() + b.Backend.CumulativeKg()
}

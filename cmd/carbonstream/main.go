package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/carbonstream/carbonstream/internal/hardware"
	"github.com/carbonstream/carbonstream/internal/model"
	"github.com/carbonstream/carbonstream/internal/results"
)

func main() {
	config := parseConfig()

	// Diagnostics go to stderr so stdout stays clean for the report. The run
	// ID only correlates log lines; it never reaches the results file.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("run_id", uuid.NewString()).Logger()
	hardware.SetLogger(log.Logger)

	var resolver hardware.Resolver
	switch config.Profiles {
	case profilesBuiltin:
		resolver = hardware.NewStaticResolver()
	case profilesFile:
		resolver = hardware.NewFileResolver()
	default:
		log.Fatal().Str("profiles", config.Profiles).Msg("profiles must be \"builtin\" or \"file\"")
	}

	system, err := resolver.System(config.System)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load system profile")
	}
	frontend, err := resolver.Tier(hardware.TierFrontend, config.Frontend)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load frontend profile")
	}
	cache, err := resolver.Tier(hardware.TierCache, config.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load cache profile")
	}
	backend, err := resolver.Tier(hardware.TierBackend, config.Backend)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load backend profile")
	}

	req := model.SimulationRequest{
		SLOLatencyMs:    config.SLOLatency,
		SLOThroughput:   config.SLOThroughput,
		SimulationYears: config.SimulationYears,
		System:          system,
		Frontend:        frontend,
		Cache:           cache,
		Backend:         backend,
	}

	res, err := model.Simulate(req)
	if err != nil {
		log.Fatal().Err(err).Msg("Simulation failed")
	}

	if !config.Quiet {
		results.WriteReport(os.Stdout, req, res)
	}

	if err := results.AppendRow(config.Output, req, res); err != nil {
		log.Fatal().Err(err).Str("output", config.Output).Msg("Failed to write results")
	}

	log.Info().
		Str("output", config.Output).
		Int("slo_throughput", config.SLOThroughput).
		Int("simulation_years", config.SimulationYears).
		Msg("evaluation complete")
}

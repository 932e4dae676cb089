package main

import "flag"

// Profile resolution strategies selectable via --profiles.
const (
	profilesBuiltin = "builtin"
	profilesFile    = "file"
)

// Config holds the CLI settings for one evaluation. In builtin mode the tier
// flags are hardware class selectors; in file mode they are paths to JSON or
// YAML profile files, with embedded defaults when left empty.
type Config struct {
	SLOLatency    int
	SLOThroughput int

	Profiles string
	System   string
	Frontend string
	Cache    string
	Backend  string

	SimulationYears int
	Output          string
	Quiet           bool
}

func parseConfig() *Config {
	config := &Config{}

	flag.IntVar(&config.SLOLatency, "slo_latency", 100, "End-to-end SLO latency (in milliseconds)")
	flag.IntVar(&config.SLOThroughput, "slo_throughput", 1000, "End-to-end SLO throughput (in requests per second)")
	flag.StringVar(&config.Profiles, "profiles", profilesBuiltin, "Profile source: builtin (constant tables) or file (JSON/YAML configs)")
	flag.StringVar(&config.System, "system", "", "System profile: config file path (file mode only)")
	flag.StringVar(&config.Frontend, "frontend", "", "Frontend hardware: class selector or config file path")
	flag.StringVar(&config.Cache, "cache", "", "Cache hardware: class selector or config file path")
	flag.StringVar(&config.Backend, "backend", "", "Backend hardware: class selector or config file path")
	flag.IntVar(&config.SimulationYears, "simulation_years", 10, "Number of years to simulate")
	flag.StringVar(&config.Output, "output", "results.csv", "Output CSV file for results")
	flag.BoolVar(&config.Quiet, "quiet", false, "Suppress the console report")

	flag.Parse()

	return config
}

package hardware

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Embedded default profiles, used when no path is supplied for a tier.
// These mirror the sample files under configs/.
var (
	//go:embed defaults/system.json
	defaultSystemJSON []byte

	//go:embed defaults/frontend.json
	defaultFrontendJSON []byte

	//go:embed defaults/cache.json
	defaultCacheJSON []byte

	//go:embed defaults/backend.json
	defaultBackendJSON []byte
)

var tierDefaults = map[Tier][]byte{
	TierFrontend: defaultFrontendJSON,
	TierCache:    defaultCacheJSON,
	TierBackend:  defaultBackendJSON,
}

// profileDoc is the on-disk schema for a hardware profile.
type profileDoc struct {
	Name         string  `json:"name" yaml:"name"`
	Latency      float64 `json:"latency" yaml:"latency"`
	Throughput   float64 `json:"throughput" yaml:"throughput"`
	EmbodiedCost struct {
		Initial float64 `json:"initial" yaml:"initial"`
	} `json:"embodied_cost" yaml:"embodied_cost"`
	PowerConsumption struct {
		Active struct {
			Read  float64 `json:"read" yaml:"read"`
			Write float64 `json:"write" yaml:"write"`
		} `json:"active" yaml:"active"`
		Idle float64 `json:"idle" yaml:"idle"`
	} `json:"power_consumption" yaml:"power_consumption"`
	Lifespan int     `json:"lifespan" yaml:"lifespan"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
}

// systemDoc is the on-disk schema for the system-wide profile.
type systemDoc struct {
	Latency struct {
		Network    float64 `json:"network" yaml:"network"`
		Processing float64 `json:"processing" yaml:"processing"`
	} `json:"latency" yaml:"latency"`
	StorageCapacity float64 `json:"storage_capacity" yaml:"storage_capacity"`
	ActiveIdleRatio float64 `json:"active_idle_ratio" yaml:"active_idle_ratio"`
	ReadWriteRatio  float64 `json:"read_write_ratio" yaml:"read_write_ratio"`
	CarbonIntensity float64 `json:"carbon_intensity" yaml:"carbon_intensity"`
}

// FileResolver resolves profiles from structured JSON or YAML files. The
// selector is a filesystem path; an empty selector resolves the embedded
// default for that tier. The decoder is chosen by file extension
// (.yaml/.yml for YAML, JSON otherwise).
type FileResolver struct{}

// NewFileResolver creates a resolver backed by profile files.
func NewFileResolver() *FileResolver {
	return &FileResolver{}
}

// Tier resolves a hardware profile from the file at selector, or from the
// embedded default when selector is empty.
func (r *FileResolver) Tier(tier Tier, selector string) (Profile, error) {
	def, ok := tierDefaults[tier]
	if !ok {
		return Profile{}, fmt.Errorf("%w: tier %q", ErrUnknownSelector, tier)
	}

	data, source, err := readConfig(selector, def)
	if err != nil {
		return Profile{}, err
	}

	var doc profileDoc
	if err := decodeConfig(selector, data, &doc); err != nil {
		return Profile{}, err
	}
	if doc.Name == "" || doc.Throughput <= 0 {
		return Profile{}, fmt.Errorf("%w: %s: profile requires a name and a positive throughput", ErrConfigMalformed, source)
	}

	logger.Info().
		Str("tier", string(tier)).
		Str("source", source).
		Str("profile", doc.Name).
		Msg("loaded hardware profile")

	return Profile{
		Name:              doc.Name,
		LatencyMs:         doc.Latency,
		Throughput:        doc.Throughput,
		CapacityGB:        doc.Capacity,
		EmbodiedCostKg:    doc.EmbodiedCost.Initial,
		PowerActiveReadW:  doc.PowerConsumption.Active.Read,
		PowerActiveWriteW: doc.PowerConsumption.Active.Write,
		PowerIdleW:        doc.PowerConsumption.Idle,
		LifespanYears:     doc.Lifespan,
	}, nil
}

// System resolves the system-wide profile from the file at selector, or from
// the embedded default when selector is empty.
func (r *FileResolver) System(selector string) (SystemProfile, error) {
	data, source, err := readConfig(selector, defaultSystemJSON)
	if err != nil {
		return SystemProfile{}, err
	}

	var doc systemDoc
	if err := decodeConfig(selector, data, &doc); err != nil {
		return SystemProfile{}, err
	}
	if doc.StorageCapacity <= 0 {
		return SystemProfile{}, fmt.Errorf("%w: %s: storage_capacity must be positive", ErrConfigMalformed, source)
	}

	logger.Info().
		Str("source", source).
		Msg("loaded system profile")

	return SystemProfile{
		NetworkLatencyMs:    doc.Latency.Network,
		ProcessingLatencyMs: doc.Latency.Processing,
		StorageCapacityGB:   doc.StorageCapacity,
		ActiveRatio:         doc.ActiveIdleRatio,
		ReadRatio:           doc.ReadWriteRatio,
		CarbonIntensity:     doc.CarbonIntensity,
	}, nil
}

// readConfig returns the raw config bytes and a human-readable source label.
// An empty path yields the embedded default.
func readConfig(path string, embedded []byte) ([]byte, string, error) {
	if path == "" {
		return embedded, "embedded default", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	return data, path, nil
}

// decodeConfig unmarshals data into out, choosing the codec from the path
// extension. Embedded defaults (empty path) are always JSON.
func decodeConfig(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigMalformed, sourceLabel(path), err)
		}
	default:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigMalformed, sourceLabel(path), err)
		}
	}
	return nil
}

func sourceLabel(path string) string {
	if path == "" {
		return "embedded default"
	}
	return path
}

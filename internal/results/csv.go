// Package results emits simulation results to the console and to an
// append-only CSV store.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/carbonstream/carbonstream/internal/model"
)

// Columns is the fixed CSV schema. The header is written once, when the
// output file is first created; later appends assume the schema is stable
// across runs against the same file.
var Columns = []string{
	"SLO Latency", "SLO Throughput", "Frontend", "Cache", "Backend",
	"Average Latency", "Peak Throughput", "Cumulative Carbon Cost",
	"Frontend Servers", "Cache Servers", "Backend Servers", "Cache Hit Rate",
	"Embodied Cost", "Active Cost", "Idle Cost", "Replacement Cost",
	"Frontend Capacity (GB)", "Cache Capacity (GB)", "Backend Capacity (GB)",
	"Total Capacity (GB)", "Simulation Years",
}

// AppendRow appends one result row to the CSV store at path, creating the
// file and emitting the header first if it does not yet exist.
//
// Concurrent invocations against the same path may interleave rows; the
// store assumes a single writer or external coordination.
func AppendRow(path string, req model.SimulationRequest, res model.SimulationResult) error {
	_, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(Columns); err != nil {
			return fmt.Errorf("write results header: %w", err)
		}
	}

	row := []string{
		strconv.Itoa(req.SLOLatencyMs),
		strconv.Itoa(req.SLOThroughput),
		req.Frontend.Name,
		req.Cache.Name,
		req.Backend.Name,
		formatFloat(res.AverageLatencyMs),
		formatFloat(res.PeakThroughput),
		formatFloat(res.Carbon.CumulativeKg()),
		strconv.Itoa(res.FrontendServers),
		strconv.Itoa(res.CacheServers),
		strconv.Itoa(res.BackendServers),
		formatFloat(res.CacheHitRate),
		formatFloat(res.Carbon.EmbodiedKg()),
		formatFloat(res.Carbon.ActiveKg()),
		formatFloat(res.Carbon.IdleKg()),
		formatFloat(res.Carbon.ReplacementKg()),
		formatFloat(res.FrontendCapacityGB),
		formatFloat(res.CacheCapacityGB),
		formatFloat(res.BackendCapacityGB),
		formatFloat(res.TotalCapacityGB),
		strconv.Itoa(req.SimulationYears),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write results row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush results file %s: %w", path, err)
	}
	return nil
}

// formatFloat renders a float with the shortest representation that parses
// back exactly, keeping rows deterministic for identical inputs.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

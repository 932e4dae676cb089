package results

import (
	"fmt"
	"io"

	"github.com/carbonstream/carbonstream/internal/model"
)

// WriteReport writes the human-readable result summary.
func WriteReport(w io.Writer, req model.SimulationRequest, res model.SimulationResult) {
	fmt.Fprintf(w, "Average Latency: %.2f ms\n", res.AverageLatencyMs)
	fmt.Fprintf(w, "Peak Throughput: %.2f requests/second\n", res.PeakThroughput)
	fmt.Fprintf(w, "Embodied Carbon Cost: %.2f kg CO2e\n", res.Carbon.EmbodiedKg())
	fmt.Fprintf(w, "Active Carbon Cost: %.2f kg CO2e\n", res.Carbon.ActiveKg())
	fmt.Fprintf(w, "Idle Carbon Cost: %.2f kg CO2e\n", res.Carbon.IdleKg())
	fmt.Fprintf(w, "Replacement Carbon Cost: %.2f kg CO2e\n", res.Carbon.ReplacementKg())
	fmt.Fprintf(w, "Cumulative Carbon Cost over %d years: %.2f kg CO2e\n", req.SimulationYears, res.Carbon.CumulativeKg())
	fmt.Fprintf(w, "Number of Frontend Servers: %d\n", res.FrontendServers)
	fmt.Fprintf(w, "Number of Cache Servers: %d\n", res.CacheServers)
	fmt.Fprintf(w, "Number of Backend Servers: %d\n", res.BackendServers)
	fmt.Fprintf(w, "Cache Hit Rate: %.2f\n", res.CacheHitRate)
}

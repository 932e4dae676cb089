package results

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonstream/carbonstream/internal/hardware"
	"github.com/carbonstream/carbonstream/internal/model"
)

func resultFixture() (model.SimulationRequest, model.SimulationResult) {
	req := model.SimulationRequest{
		SLOLatencyMs:    100,
		SLOThroughput:   1000,
		SimulationYears: 10,
		System: hardware.SystemProfile{
			NetworkLatencyMs: 1, ProcessingLatencyMs: 0.5,
			StorageCapacityGB: 10000000000, ActiveRatio: 0.7, ReadRatio: 0.7, CarbonIntensity: 1.05e-7,
		},
		Frontend: hardware.Profile{Name: "low_performance", Throughput: 20, CapacityGB: 3840, EmbodiedCostKg: 614.4, LifespanYears: 5},
		Cache:    hardware.Profile{Name: "DRAM", Throughput: 20, CapacityGB: 4096, EmbodiedCostKg: 1269.76, LifespanYears: 10},
		Backend:  hardware.Profile{Name: "SSD", Throughput: 5, CapacityGB: 3840, EmbodiedCostKg: 614.4, LifespanYears: 5},
	}
	res, err := model.Simulate(req)
	if err != nil {
		panic(err)
	}
	return req, res
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestAppendRow_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	req, res := resultFixture()

	require.NoError(t, AppendRow(path, req, res))
	require.NoError(t, AppendRow(path, req, res))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, rows[1], rows[2], "identical inputs must produce identical rows")
}

func TestAppendRow_RowContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	req, res := resultFixture()

	require.NoError(t, AppendRow(path, req, res))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	row := rows[1]
	require.Len(t, row, len(Columns))

	assert.Equal(t, "100", row[0])
	assert.Equal(t, "1000", row[1])
	assert.Equal(t, "low_performance", row[2])
	assert.Equal(t, "DRAM", row[3])
	assert.Equal(t, "SSD", row[4])
	assert.Equal(t, "50", row[8])
	assert.Equal(t, "50", row[9])
	assert.Equal(t, "200", row[10])
	assert.Equal(t, "192000", row[16]) // 50 × 3840
	assert.Equal(t, "204800", row[17]) // 50 × 4096
	assert.Equal(t, "768000", row[18]) // 200 × 3840
	assert.Equal(t, "10", row[20])
}

func TestAppendRow_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	req, res := resultFixture()

	require.NoError(t, AppendRow(path, req, res))
	before := readCSV(t, path)

	req.SLOThroughput = 2000
	res2, err := model.Simulate(req)
	require.NoError(t, err)
	require.NoError(t, AppendRow(path, req, res2))

	rows := readCSV(t, path)
	require.Len(t, rows, len(before)+1)
	assert.Equal(t, before[1], rows[1], "existing rows are never rewritten")
	assert.Equal(t, "2000", rows[2][1])
}

func TestAppendRow_UnwritablePath(t *testing.T) {
	req, res := resultFixture()

	err := AppendRow(filepath.Join(t.TempDir(), "no", "such", "dir", "results.csv"), req, res)

	require.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	req, res := resultFixture()

	var buf strings.Builder
	WriteReport(&buf, req, res)
	out := buf.String()

	assert.Contains(t, out, "Average Latency: ")
	assert.Contains(t, out, "Peak Throughput: 1000.00 requests/second")
	assert.Contains(t, out, "Cumulative Carbon Cost over 10 years: ")
	assert.Contains(t, out, "Number of Frontend Servers: 50")
	assert.Contains(t, out, "Number of Backend Servers: 200")
	assert.Contains(t, out, "Cache Hit Rate: 0.00")
}

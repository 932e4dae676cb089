package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHitRate(t *testing.T) {
	tests := []struct {
		name        string
		capacityGB  float64
		numServers  int
		totalVolume float64
		want        float64
	}{
		{
			name:        "single DRAM server against full catalog",
			capacityGB:  4096,
			numServers:  1,
			totalVolume: 10000000000,
			want:        4.096e-7,
		},
		{
			name:        "half the catalog cached",
			capacityGB:  1000,
			numServers:  5000,
			totalVolume: 10000000,
			want:        0.5,
		},
		{
			name:        "capacity equals catalog",
			capacityGB:  1000,
			numServers:  10000,
			totalVolume: 10000000,
			want:        1.0,
		},
		{
			name:        "overprovisioned cache clamps to 1",
			capacityGB:  4096,
			numServers:  10000000,
			totalVolume: 10000000000,
			want:        1.0,
		},
		{
			name:        "no cache servers",
			capacityGB:  4096,
			numServers:  0,
			totalVolume: 10000000000,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CacheHitRate(tt.capacityGB, tt.numServers, tt.totalVolume)

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestCacheHitRate_MonotonicInServerCount(t *testing.T) {
	prev := -1.0
	for servers := 0; servers <= 4096; servers += 64 {
		got, err := CacheHitRate(4096, servers, 10000000000)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, got, prev, "hit rate must not decrease when adding servers (at %d servers)", servers)
		prev = got
	}
}

func TestCacheHitRate_InvalidVolume(t *testing.T) {
	_, err := CacheHitRate(4096, 1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = CacheHitRate(4096, 1, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fielddist/domain/distribution"
)

func TestCompute_UniformBuckets(t *testing.T) {
	summary := distribution.FromCounts("k", []distribution.Entry{
		{Value: "a", Count: 25},
		{Value: "b", Count: 25},
		{Value: "c", Count: 25},
		{Value: "d", Count: 25},
	})

	p, err := Compute(summary)

	require.NoError(t, err)
	assert.Equal(t, 4, p.Buckets)
	assert.Equal(t, 100, p.Total)
	assert.InDelta(t, 25.0, p.MeanCount, 1e-9)
	assert.InDelta(t, 0.0, p.StdDevCount, 1e-9)
	// uniform over 4 buckets: entropy log2(4) = 2 bits
	assert.InDelta(t, 2.0, p.Entropy, 1e-9)
	// perfectly uniform: chi-square statistic 0, p-value 1
	assert.InDelta(t, 1.0, p.UniformityP, 1e-9)
}

func TestCompute_SkewedBuckets(t *testing.T) {
	summary := distribution.FromCounts("k", []distribution.Entry{
		{Value: "dominant", Count: 97},
		{Value: "rare", Count: 2},
		{Value: "rarer", Count: 1},
	})

	p, err := Compute(summary)

	require.NoError(t, err)
	assert.Less(t, p.UniformityP, 0.001)
	assert.Less(t, p.Entropy, math.Log2(3))
	assert.Equal(t, 97.0, p.MaxCount)
	assert.Equal(t, 1.0, p.MinCount)
	assert.Equal(t, 2.0, p.MedianCount)
}

func TestCompute_SingleBucket(t *testing.T) {
	summary := distribution.FromCounts("k", []distribution.Entry{{Value: "only", Count: 5}})

	p, err := Compute(summary)

	require.NoError(t, err)
	assert.InDelta(t, 0.0, p.Entropy, 1e-9)
	assert.Equal(t, 1.0, p.UniformityP)
}

func TestCompute_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		summary distribution.Summary
	}{
		{name: "no entries", summary: distribution.Summary{Field: "k"}},
		{name: "zero total", summary: distribution.FromCounts("k", []distribution.Entry{
			{Value: "a", Count: 0},
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compute(tt.summary)

			require.NoError(t, err)
			assert.Equal(t, 1.0, p.UniformityP)
			assert.Zero(t, p.Entropy)
			assert.Zero(t, p.MeanCount)
		})
	}
}

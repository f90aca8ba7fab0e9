package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"fielddist/domain/distribution"
)

// Profile describes the shape of a distribution's bucket counts: basic
// summary statistics, Shannon entropy, and a chi-square test of the
// hypothesis that records are spread uniformly across the buckets.
type Profile struct {
	Buckets     int     `json:"buckets"`
	Total       int     `json:"total"`
	MeanCount   float64 `json:"mean_count"`
	StdDevCount float64 `json:"stddev_count"`
	MinCount    float64 `json:"min_count"`
	MaxCount    float64 `json:"max_count"`
	MedianCount float64 `json:"median_count"`
	Entropy     float64 `json:"entropy"`
	UniformityP float64 `json:"uniformity_p"`
}

// Compute profiles a summary. Degenerate inputs (no buckets, zero total)
// produce a zero-valued profile with UniformityP of 1.
func Compute(summary distribution.Summary) (Profile, error) {
	p := Profile{
		Buckets:     len(summary.Entries),
		Total:       summary.Total,
		UniformityP: 1.0,
	}
	if len(summary.Entries) == 0 || summary.Total == 0 {
		return p, nil
	}

	counts := make([]float64, len(summary.Entries))
	for i, e := range summary.Entries {
		counts[i] = float64(e.Count)
	}

	var err error
	if p.MeanCount, err = stats.Mean(counts); err != nil {
		return p, err
	}
	if p.StdDevCount, err = stats.StandardDeviation(counts); err != nil {
		return p, err
	}
	if p.MinCount, err = stats.Min(counts); err != nil {
		return p, err
	}
	if p.MaxCount, err = stats.Max(counts); err != nil {
		return p, err
	}
	if p.MedianCount, err = stats.Median(counts); err != nil {
		return p, err
	}

	p.Entropy = shannonEntropy(counts, float64(summary.Total))
	p.UniformityP = uniformityPValue(counts, float64(summary.Total))

	return p, nil
}

// shannonEntropy computes entropy in bits over the bucket proportions.
func shannonEntropy(counts []float64, total float64) float64 {
	entropy := 0.0
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		prob := c / total
		entropy -= prob * math.Log2(prob)
	}
	return entropy
}

// uniformityPValue runs a chi-square goodness-of-fit test against the
// uniform distribution over the observed buckets.
func uniformityPValue(counts []float64, total float64) float64 {
	k := len(counts)
	if k < 2 {
		return 1.0
	}

	expected := total / float64(k)
	statistic := 0.0
	for _, c := range counts {
		diff := c - expected
		statistic += diff * diff / expected
	}

	chi := distuv.ChiSquared{K: float64(k - 1)}
	pValue := 1 - chi.CDF(statistic)
	if pValue < 0 {
		pValue = 0
	}
	return pValue
}

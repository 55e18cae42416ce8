package teamdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramBins_CountsSumToInput(t *testing.T) {
	cases := [][]float64{
		{104, 98, 83, 78, 71, 67, 65, 57, 56, 52},
		{1, 2},
		{0.5, 0.25, 0.75, 1, 0},
		{3},
	}
	for _, vals := range cases {
		bins := HistogramBins(vals)
		require.NotEmpty(t, bins)
		total := 0
		for i, b := range bins {
			total += b.Count
			assert.LessOrEqual(t, b.Lo, b.Hi)
			if i > 0 {
				assert.InDelta(t, bins[i-1].Hi, b.Lo, 1e-9)
			}
		}
		assert.Equal(t, len(vals), total, "values %v", vals)
	}
}

func TestHistogramBins_SturgesAndEdges(t *testing.T) {
	vals := []float64{104, 98, 83, 78, 71, 67, 65, 57, 56, 52}
	bins := HistogramBins(vals)
	assert.Len(t, bins, 5)
	assert.Equal(t, 52.0, bins[0].Lo)
	assert.Equal(t, 104.0, bins[4].Hi)
	// the maximum lands in the last bin
	assert.GreaterOrEqual(t, bins[4].Count, 1)
}

func TestHistogramBins_Degenerate(t *testing.T) {
	assert.Nil(t, HistogramBins(nil))
	bins := HistogramBins([]float64{7, 7, 7})
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
	assert.Equal(t, "7.00", bins[0].Label())
}

func TestFormatStat(t *testing.T) {
	assert.Equal(t, "73.10", FormatStat(73.1))
	assert.Equal(t, "n/a", FormatStat(math.NaN()))
	assert.Equal(t, "n/a", FormatStat(math.Inf(1)))
	assert.Equal(t, "52", FormatCompact(52))
	assert.Equal(t, "62.4", FormatCompact(62.4))
	assert.Equal(t, "0.33", FormatCompact(0.333))
	assert.Equal(t, "52-62.4", Bin{Lo: 52, Hi: 62.4}.Label())
}

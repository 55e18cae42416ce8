package teamdata

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is one histogram bucket covering [Lo, Hi).
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Label renders the bin range for axis ticks.
func (b Bin) Label() string {
	if b.Lo == b.Hi {
		return FormatStat(b.Lo)
	}
	return fmt.Sprintf("%s-%s", FormatCompact(b.Lo), FormatCompact(b.Hi))
}

// HistogramBins splits values into equal-width bins using Sturges' rule.
// The last bin is closed so the maximum is counted; all-equal input yields one bin.
func HistogramBins(values []float64) []Bin {
	if len(values) == 0 {
		return nil
	}
	xs := append([]float64(nil), values...)
	sort.Float64s(xs)
	lo, hi := xs[0], xs[len(xs)-1]
	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: len(xs)}}
	}
	k := int(math.Ceil(math.Log2(float64(len(xs))))) + 1
	dividers := floats.Span(make([]float64, k+1), lo, hi)
	// stat.Histogram needs every x strictly below the last divider
	dividers[k] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, xs, nil)
	bins := make([]Bin, k)
	for i := range bins {
		bins[i] = Bin{Lo: dividers[i], Hi: dividers[i+1], Count: int(counts[i])}
	}
	bins[k-1].Hi = hi
	return bins
}

// FormatStat renders a statistic with two decimals, "n/a" for NaN.
func FormatStat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatCompact drops trailing decimals for whole numbers.
func FormatCompact(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e12 {
		return fmt.Sprintf("%.0f", v)
	}
	if math.Abs(v) >= 10 {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

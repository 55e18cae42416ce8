package charts

import (
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

var stepFactors = []float64{1, 2, 2.5, 5, 10}

// niceStep is the smallest 1, 2, 2.5 or 5 times a power of ten that cuts span
// into at most parts pieces.
func niceStep(span float64, parts int) float64 {
	if span <= 0 || parts < 1 || math.IsInf(span, 0) {
		return 1
	}
	raw := span / float64(parts)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, f := range stepFactors {
		step = f * mag
		if step >= raw {
			break
		}
	}
	return step
}

// axisRange pads [lo, hi] by 5% and snaps both ends outward to whole steps.
// With fromZero the range starts at 0 and only the top is padded, which keeps
// a bar baseline on the axis.
func axisRange(lo, hi float64, parts int, fromZero bool) (float64, float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 1
	}
	if fromZero {
		if hi <= 0 {
			return 0, 1
		}
		lo = 0
	}
	if hi <= lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	if !fromZero {
		lo -= pad
	}
	hi += pad
	step := niceStep(hi-lo, parts)
	return math.Floor(lo/step) * step, math.Ceil(hi/step) * step
}

// niceTicks puts a tick on every step multiple inside [lo, hi], aiming for n ticks.
func niceTicks(lo, hi float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if hi <= lo {
		hi = lo + 1
	}
	step := niceStep(hi-lo, n-1)
	first := math.Ceil(lo/step - 1e-9)
	last := math.Floor(hi/step + 1e-9)
	ticks := make([]chart.Tick, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		v := k * step
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// formatTick drops decimals as values grow and trims trailing zeros.
func formatTick(v float64) string {
	av := math.Abs(v)
	if av < 1e-9 {
		return "0"
	}
	dec := 2
	if av >= 100 {
		dec = 0
	} else if av >= 10 {
		dec = 1
	}
	out := strconv.FormatFloat(v, 'f', dec, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(strings.TrimRight(out, "0"), ".")
	}
	return out
}

func minMax(vals []float64) (float64, float64, bool) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	ok := false
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

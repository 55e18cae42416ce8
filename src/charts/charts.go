// Package charts renders the viewer's bar, histogram, scatter and pie charts
// with go-chart and returns them as decoded images ready for a canvas or a PNG file.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

// Default size used when the caller passes no size (headless rendering, tests).
const (
	DefaultWidth  = 1000
	DefaultHeight = 360
)

var (
	ErrNoData      = errors.New("no data to plot")
	ErrLengthMatch = errors.New("labels and values differ in length")
)

// Options are shared by every chart kind.
type Options struct {
	Title  string
	XName  string
	YName  string
	Width  int
	Height int
	// Hint, when set, is drawn as a caption strip at the bottom of the image.
	Hint string
	// RotateLabels tilts category labels, useful for team names.
	RotateLabels bool
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (o Options) padBottom() int {
	p := 28
	if o.RotateLabels {
		p = 70
	}
	if o.Hint != "" {
		p += 18
	}
	return p
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// palette cycles bar fills so neighbouring bars stay distinguishable.
var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorRed,
	chart.ColorCyan,
	chart.ColorYellow,
	chart.ColorAlternateGray,
}

func barStyle(i int) chart.Style {
	c := palette[i%len(palette)]
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

type renderer interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func encode(r renderer, o Options) (image.Image, error) {
	var buf bytes.Buffer
	if err := r.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", o.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", o.Title, err)
	}
	if o.Hint != "" {
		return DrawHint(img, o.Hint), nil
	}
	return img, nil
}

// Bar draws one bar per label on a zero baseline.
func Bar(o Options, labels []string, values []float64) (image.Image, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if len(labels) != len(values) {
		return nil, ErrLengthMatch
	}
	w, h := o.size()
	bars := make([]chart.Value, len(values))
	for i, v := range values {
		bars[i] = chart.Value{Value: v, Label: labels[i], Style: barStyle(i)}
	}
	_, hi, _ := minMax(values)
	_, nMax := axisRange(0, hi, 5, true)
	xStyle := chart.Style{}
	if o.RotateLabels {
		xStyle.TextRotationDegrees = 30
	}
	barW := (w - 120) * 2 / (3 * len(values))
	if barW > 80 {
		barW = 80
	}
	if barW < 6 {
		barW = 6
	}
	bc := chart.BarChart{
		Title:      o.Title,
		Width:      w,
		Height:     h,
		BarWidth:   barW,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: o.padBottom()}},
		XAxis:      xStyle,
		YAxis: chart.YAxis{
			Name:  o.YName,
			Range: &chart.ContinuousRange{Min: 0, Max: nMax},
			Ticks: niceTicks(0, nMax, 6),
		},
		Bars: bars,
	}
	return encode(bc, o)
}

// Histogram draws pre-computed bins as adjacent bars labelled by range.
func Histogram(o Options, bins []teamdata.Bin) (image.Image, error) {
	if len(bins) == 0 {
		return nil, ErrNoData
	}
	labels := make([]string, len(bins))
	counts := make([]float64, len(bins))
	for i, b := range bins {
		labels[i] = b.Label()
		counts[i] = float64(b.Count)
	}
	if o.YName == "" {
		o.YName = "Count"
	}
	return Bar(o, labels, counts)
}

// Scatter plots points only, with a linear trend line once x varies.
func Scatter(o Options, xs, ys []float64) (image.Image, error) {
	if len(xs) == 0 {
		return nil, ErrNoData
	}
	if len(xs) != len(ys) {
		return nil, ErrLengthMatch
	}
	w, h := o.size()
	xLo, xHi, _ := minMax(xs)
	yLo, yHi, _ := minMax(ys)
	xMin, xMax := axisRange(xLo, xHi, 7, false)
	yMin, yMax := axisRange(yLo, yHi, 5, false)

	points := chart.ContinuousSeries{Name: o.YName, XValues: xs, YValues: ys, Style: pointStyle(chart.ColorBlue)}
	series := []chart.Series{points}
	if xHi > xLo && len(xs) >= 2 {
		series = append(series, &chart.LinearRegressionSeries{
			Name:        "trend",
			InnerSeries: points,
			Style:       chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 1.5, StrokeDashArray: []float64{5, 5}},
		})
	}
	ch := chart.Chart{
		Title:      o.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: o.padBottom()}},
		XAxis: chart.XAxis{
			Name:  o.XName,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: niceTicks(xMin, xMax, 8),
		},
		YAxis: chart.YAxis{
			Name:  o.YName,
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks: niceTicks(yMin, yMax, 6),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return encode(ch, o)
}

// Pie draws one slice per non-empty value, labelled with its legend entry and share.
// legend may be nil; otherwise it must match labels in length.
func Pie(o Options, labels []string, values []float64, legend []string) (image.Image, error) {
	if len(labels) != len(values) || (legend != nil && len(legend) != len(labels)) {
		return nil, ErrLengthMatch
	}
	total := 0.0
	for _, v := range values {
		if v > 0 && !math.IsNaN(v) {
			total += v
		}
	}
	if total == 0 {
		return nil, ErrNoData
	}
	w, h := o.size()
	slices := make([]chart.Value, 0, len(values))
	for i, v := range values {
		if v <= 0 || math.IsNaN(v) {
			continue
		}
		slices = append(slices, chart.Value{
			Value: v,
			Label: SliceLabel(labels[i], legendAt(legend, i), v/total*100),
			Style: barStyle(i),
		})
	}
	pc := chart.PieChart{
		Title:      o.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: o.padBottom()}},
		Values:     slices,
	}
	return encode(pc, o)
}

func legendAt(legend []string, i int) string {
	if legend == nil {
		return ""
	}
	return legend[i]
}

// SliceLabel formats a pie slice label such as "high (>=10) 36%".
func SliceLabel(label, legend string, pct float64) string {
	if legend == "" {
		return fmt.Sprintf("%s %.0f%%", label, pct)
	}
	return fmt.Sprintf("%s (%s) %.0f%%", label, legend, pct)
}

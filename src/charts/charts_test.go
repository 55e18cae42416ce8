package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

var (
	topTeams = []string{"France", "Argentina", "Croatia", "Brazil", "England",
		"Germany", "Portugal", "Morocco", "Spain", "Netherlands"}
	topShots = []float64{104, 98, 83, 78, 71, 67, 65, 57, 56, 52}
)

func TestBar_RendersRequestedSize(t *testing.T) {
	img, err := Bar(Options{Title: "Team shots", YName: "shots", Width: 900, Height: 320, RotateLabels: true}, topTeams, topShots)
	require.NoError(t, err)
	assert.Equal(t, 900, img.Bounds().Dx())
	assert.Equal(t, 320, img.Bounds().Dy())
}

func TestBar_DefaultSizeAndZeroValues(t *testing.T) {
	img, err := Bar(Options{Title: "Team cards_red"}, []string{"A", "B"}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())
}

func TestBar_Errors(t *testing.T) {
	_, err := Bar(Options{}, nil, nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Bar(Options{}, []string{"a"}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMatch)
}

func TestHistogram_FromBins(t *testing.T) {
	img, err := Histogram(Options{Title: "Shots Histogram", Width: 600, Height: 300}, teamdata.HistogramBins(topShots))
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())

	_, err = Histogram(Options{}, nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestScatter(t *testing.T) {
	goals := []float64{16, 15, 8, 8, 13, 6, 12, 6, 9, 10}
	img, err := Scatter(Options{Title: "shots vs goals", XName: "shots", YName: "goals", Width: 700, Height: 400}, topShots, goals)
	require.NoError(t, err)
	assert.Equal(t, 700, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	// constant x skips the trend line but still renders
	_, err = Scatter(Options{Title: "flat"}, []float64{3, 3, 3}, []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = Scatter(Options{}, []float64{1}, nil)
	assert.ErrorIs(t, err, ErrLengthMatch)
}

func TestPie(t *testing.T) {
	img, err := Pie(Options{Title: "Goals scored", Width: 500, Height: 400},
		[]string{"low", "moderate", "high"}, []float64{3, 6, 5}, []string{"0-4", "5-9", ">=10"})
	require.NoError(t, err)
	assert.Equal(t, 500, img.Bounds().Dx())

	// empty buckets are skipped, all-empty is an error
	_, err = Pie(Options{}, []string{"low", "moderate", "high"}, []float64{0, 4, 2}, nil)
	require.NoError(t, err)
	_, err = Pie(Options{}, []string{"low"}, []float64{0}, nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Pie(Options{}, []string{"low"}, []float64{1}, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrLengthMatch)
}

func TestSliceLabel(t *testing.T) {
	assert.Equal(t, "high (>=10) 36%", SliceLabel("high", ">=10", 35.7))
	assert.Equal(t, "low 21%", SliceLabel("low", "", 21.4))
}

func TestBlankAndHint(t *testing.T) {
	b := Blank(40, 30)
	assert.Equal(t, 40, b.Bounds().Dx())
	r, g, bl, _ := b.At(5, 5).RGBA()
	assert.Equal(t, [3]uint32{18 * 0x101, 18 * 0x101, 18 * 0x101}, [3]uint32{r, g, bl})

	assert.Equal(t, DefaultWidth, Blank(0, 0).Bounds().Dx())

	src := Blank(400, 60)
	out := DrawHint(src, "Hint: higher bars mean more")
	require.NotNil(t, out)
	assert.Equal(t, src.Bounds(), out.Bounds())
	// caption text is white, so some pixel in the bottom strip must differ from the background
	changed := false
	for x := 0; x < 200 && !changed; x++ {
		for y := 40; y < 60; y++ {
			if out.At(x, y) != src.At(x, y) {
				changed = true
				break
			}
		}
	}
	assert.True(t, changed, "hint did not draw anything")
	assert.Equal(t, src, DrawHint(src, "   "))
}

func TestNiceAxis(t *testing.T) {
	lo, hi := axisRange(52, 104, 5, false)
	assert.LessOrEqual(t, lo, 52.0)
	assert.GreaterOrEqual(t, hi, 104.0)
	assert.Equal(t, 0.0, math.Mod(lo, 20))
	assert.Equal(t, 0.0, math.Mod(hi, 20))

	lo, hi = axisRange(0, 104, 5, true)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 125.0, hi)
	for _, top := range []float64{0, -3, math.NaN()} {
		lo, hi = axisRange(0, top, 5, true)
		assert.Equal(t, 0.0, lo)
		assert.Equal(t, 1.0, hi)
	}

	assert.Equal(t, 20.0, niceStep(100, 5))
	assert.Equal(t, 2.5, niceStep(12, 5))
	assert.Equal(t, 1.0, niceStep(0, 5))

	ticks := niceTicks(0, 125, 6)
	require.Len(t, ticks, 6)
	assert.Equal(t, 0.0, ticks[0].Value)
	assert.Equal(t, 125.0, ticks[5].Value)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i].Value, ticks[i-1].Value)
	}
	assert.Nil(t, niceTicks(0, 1, 1))
	assert.Equal(t, "0", formatTick(0))
	assert.Equal(t, "120", formatTick(120))
	assert.Equal(t, "12.5", formatTick(12.5))
	assert.Equal(t, "2.5", formatTick(2.5))
}

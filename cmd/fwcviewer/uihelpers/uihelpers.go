package uihelpers

import (
	"path/filepath"
	"strings"
)

// ComputeChartDimensions applies width/height clamp rules used for charts.
// rawW is the canvas width and cols the number of charts sharing a row.
func ComputeChartDimensions(rawW, cols int) (int, int) {
	if cols < 1 {
		cols = 1
	}
	minW := 800 / cols
	w := rawW / cols
	if cols > 1 {
		w -= 8 * (cols - 1)
	}
	if w < minW {
		w = minW
	}
	// single charts keep a ~3:1 ratio, grid cells are closer to square
	ratio := float32(0.33)
	if cols > 1 {
		ratio = 0.62
	}
	h := int(float32(w) * ratio)
	if h < 280 {
		h = 280
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// ComputeContainRect returns where an imgW x imgH image is drawn inside a
// viewW x viewH area with contain scaling: offset, drawn size and scale.
func ComputeContainRect(imgW, imgH, viewW, viewH float32) (x, y, w, h, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	w = imgW * scale
	h = imgH * scale
	x = (viewW - w) / 2
	y = (viewH - h) / 2
	return x, y, w, h, scale
}

// Horizontal paddings of the rendered bar charts, in image pixels.
const (
	BarPadLeftPx  = 16 + 48 // background padding plus y-axis labels
	BarPadRightPx = 12
)

// BarCenters returns the x position of each of n bars in view coordinates.
func BarCenters(n int, imgW, imgH, viewW, viewH float32) []float32 {
	if n <= 0 {
		return nil
	}
	drawX, _, _, _, scale := ComputeContainRect(imgW, imgH, viewW, viewH)
	plotW := imgW - BarPadLeftPx - BarPadRightPx
	if plotW < 1 {
		plotW = imgW
	}
	out := make([]float32, n)
	for i := range out {
		px := BarPadLeftPx + plotW*(float32(i)+0.5)/float32(n)
		out[i] = drawX + px*scale
	}
	return out
}

// BarIndexAt maps a mouse x position to the nearest bar. It returns -1 when
// the cursor is outside the drawn image.
func BarIndexAt(n int, imgW, imgH, viewW, viewH, mouseX, mouseY float32) int {
	if n <= 0 {
		return -1
	}
	x, y, w, h, _ := ComputeContainRect(imgW, imgH, viewW, viewH)
	if mouseX < x || mouseX > x+w || mouseY < y || mouseY > y+h {
		return -1
	}
	best := 0
	bestD := float32(-1)
	for i, c := range BarCenters(n, imgW, imgH, viewW, viewH) {
		d := mouseX - c
		if d < 0 {
			d = -d
		}
		if bestD < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// TruncatePath shortens p to roughly n characters, keeping the file name.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}

// PushRecent puts path first in list, drops duplicates and blanks and keeps at most max entries.
func PushRecent(list []string, path string, max int) []string {
	out := []string{path}
	for _, f := range list {
		if f == "" || f == path {
			continue
		}
		if len(out) >= max {
			break
		}
		out = append(out, f)
	}
	return out
}

// SplitRecent decodes the newline separated preference value.
func SplitRecent(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, "\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// PickOption returns want when it is one of options, otherwise options[fallback]
// (clamped), or "" when there are no options.
func PickOption(options []string, want string, fallback int) string {
	if len(options) == 0 {
		return ""
	}
	for _, o := range options {
		if o == want {
			return o
		}
	}
	if fallback < 0 {
		fallback = 0
	}
	if fallback >= len(options) {
		fallback = len(options) - 1
	}
	return options[fallback]
}

package main

import (
	"fmt"
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/cmd/fwcviewer/uihelpers"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

// barHoverOverlay sits on top of a bar chart image and, when enabled, marks
// the bar under the cursor and shows its label and value.
type barHoverOverlay struct {
	widget.BaseWidget
	state    *uiState
	img      *canvas.Image
	labels   []string
	values   []float64
	mouse    fyne.Position
	hovering bool
}

func newBarHoverOverlay(state *uiState, img *canvas.Image) *barHoverOverlay {
	o := &barHoverOverlay{state: state, img: img}
	o.ExtendBaseWidget(o)
	return o
}

func (o *barHoverOverlay) setBars(labels []string, values []float64) {
	o.labels = labels
	o.values = values
}

func (o *barHoverOverlay) enabled() bool {
	return o.state != nil && o.state.hoverEnabled
}

// readout returns the bar index and text for the current mouse position, or -1.
func (o *barHoverOverlay) readout(size fyne.Size) (int, string) {
	n := len(o.values)
	if n == 0 || len(o.labels) != n || o.img == nil || o.img.Image == nil {
		return -1, ""
	}
	b := o.img.Image.Bounds()
	idx := uihelpers.BarIndexAt(n, float32(b.Dx()), float32(b.Dy()), size.Width, size.Height, o.mouse.X, o.mouse.Y)
	if idx < 0 {
		return -1, ""
	}
	return idx, fmt.Sprintf("%s: %s", o.labels[idx], teamdata.FormatCompact(o.values[idx]))
}

func (o *barHoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background keeps the whole chart area hoverable
	bg := canvas.NewRectangle(color.Transparent)
	marker := canvas.NewLine(color.RGBA{R: 200, G: 200, B: 200, A: 220})
	marker.StrokeWidth = 1
	label := widget.NewLabel("")
	labelBG := canvas.NewRectangle(color.RGBA{A: 170})
	return &barHoverRenderer{o: o, bg: bg, marker: marker, label: label, labelBG: labelBG,
		objs: []fyne.CanvasObject{bg, marker, labelBG, label}}
}

type barHoverRenderer struct {
	o       *barHoverOverlay
	bg      *canvas.Rectangle
	marker  *canvas.Line
	labelBG *canvas.Rectangle
	label   *widget.Label
	objs    []fyne.CanvasObject
}

func (r *barHoverRenderer) hide() {
	r.marker.Position1 = fyne.NewPos(-10, -10)
	r.marker.Position2 = fyne.NewPos(-10, -10)
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(fyne.NewPos(-1000, -1000))
	r.label.Move(fyne.NewPos(-1000, -1000))
}

func (r *barHoverRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	if !r.o.enabled() || !r.o.hovering {
		r.hide()
		return
	}
	idx, text := r.o.readout(size)
	if idx < 0 {
		r.hide()
		return
	}
	b := r.o.img.Image.Bounds()
	cx := uihelpers.BarCenters(len(r.o.values), float32(b.Dx()), float32(b.Dy()), size.Width, size.Height)[idx]
	r.marker.Position1 = fyne.NewPos(cx, 0)
	r.marker.Position2 = fyne.NewPos(cx, size.Height)

	r.label.SetText(text)
	pad := float32(4)
	ts := r.label.MinSize()
	bgW, bgH := ts.Width+2*pad, ts.Height+2*pad
	tx, ty := r.o.mouse.X+10, r.o.mouse.Y+10
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	if ty+bgH > size.Height {
		ty = size.Height - bgH
	}
	r.labelBG.Resize(fyne.NewSize(bgW, bgH))
	r.labelBG.Move(fyne.NewPos(tx, ty))
	r.label.Resize(ts)
	r.label.Move(fyne.NewPos(tx+pad, ty+pad))
}

func (r *barHoverRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *barHoverRenderer) Objects() []fyne.CanvasObject { return r.objs }
func (r *barHoverRenderer) Destroy()                     {}

func (r *barHoverRenderer) Refresh() {
	r.marker.StrokeColor = theme.Color(theme.ColorNameDisabled)
	r.Layout(r.o.Size())
	r.bg.Refresh()
	r.marker.Refresh()
	r.labelBG.Refresh()
	r.label.Refresh()
}

func (o *barHoverOverlay) MouseMoved(ev *desktop.MouseEvent) {
	if !o.enabled() {
		return
	}
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}
func (o *barHoverOverlay) MouseIn(*desktop.MouseEvent) { o.hovering = true; o.Refresh() }
func (o *barHoverOverlay) MouseOut()                   { o.hovering = false; o.Refresh() }

var _ desktop.Hoverable = (*barHoverOverlay)(nil)

package main

import (
	"context"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/cmd/fwcviewer/uihelpers"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/charts"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/config"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/logging"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/store"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/watcher"
)

const maxRecentFiles = 10

type uiState struct {
	app      fyne.App
	window   fyne.Window
	cfg      *config.Config
	filePath string
	data     *teamdata.TeamData
	topN     int

	// current page and the selections of each page
	page    string
	statSel string
	teamSel string
	relX    string
	relY    string

	// toggles
	showHints    bool
	hoverEnabled bool
	themeName    string

	// widgets
	fileLabel *widget.Label
	body      *fyne.Container
	current   *page
	slots     []*chartSlot

	// auto-reload
	watchEnabled bool
	watchedPath  string
	stopWatch    context.CancelFunc
}

// variantTheme pins the default theme to one variant.
type variantTheme struct {
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}
func (t *variantTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (t *variantTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (t *variantTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func themeFor(name string) fyne.Theme {
	if name == "light" {
		return &variantTheme{variant: theme.VariantLight}
	}
	return &variantTheme{variant: theme.VariantDark}
}

func applyTheme(state *uiState) {
	if state.app != nil {
		state.app.Settings().SetTheme(themeFor(state.themeName))
	}
}

// newUIState builds the window content without showing it. forcePage and
// forceData make the configured page and file win over remembered preferences.
func newUIState(a fyne.App, w fyne.Window, cfg *config.Config, forcePage, forceData bool) *uiState {
	state := &uiState{
		app:          a,
		window:       w,
		cfg:          cfg,
		filePath:     cfg.DataPath,
		topN:         cfg.TopN,
		page:         cfg.StartPage,
		showHints:    cfg.Hints,
		hoverEnabled: cfg.Hover,
		themeName:    cfg.Theme,
		watchEnabled: cfg.Watch,
	}
	loadPrefs(state, forcePage, forceData)
	applyTheme(state)

	state.fileLabel = widget.NewLabel(uihelpers.TruncatePath(state.filePath, 60))
	state.body = container.NewStack()
	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state) }),
		widget.NewButton("Reload", func() { loadAll(state) }),
		widget.NewLabel("File:"), state.fileLabel,
	)
	w.SetContent(container.NewBorder(top, nil, nil, nil, state.body))
	buildMenus(state)
	return state
}

func runViewer(cfg *config.Config, forcePage, forceData bool) {
	a := app.NewWithID("com.fwc.viewer")
	w := a.NewWindow("FIFA World Cup 2022 Teams")
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	state := newUIState(a, w, cfg, forcePage, forceData)

	// Redraw charts on window resize so they scale with width
	prevW := int(w.Canvas().Size().Width)
	done := make(chan struct{})
	w.SetOnClosed(func() {
		savePrefs(state)
		if state.stopWatch != nil {
			state.stopWatch()
		}
		close(done)
	})
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c := w.Canvas()
				if c == nil {
					continue
				}
				curW := int(c.Size().Width)
				if curW != prevW {
					prevW = curW
					fyne.Do(func() { redrawCharts(state) })
				}
			}
		}
	}()

	loadAll(state)
	w.ShowAndRun()
}

// menus and dialogs
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var recent []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		recent = append(recent, fyne.NewMenuItem(uihelpers.TruncatePath(f, 60), func() { loadPath(state, f) }))
	}
	if len(recent) > 0 {
		recent = append(recent, fyne.NewMenuItemSeparator())
	}
	recent = append(recent, fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) }))
	openRecent := fyne.NewMenuItem("Open Recent", nil)
	openRecent.ChildMenu = fyne.NewMenu("", recent...)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		openRecent,
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Charts as PNG…", func() { exportChartsDialog(state) }),
		fyne.NewMenuItem("Export Data to SQLite…", func() { exportSQLiteDialog(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)

	var units []*fyne.MenuItem
	for _, name := range config.Pages {
		name := name
		item := fyne.NewMenuItem(name, func() { showPage(state, name); buildMenus(state) })
		item.Checked = name == state.page
		units = append(units, item)
	}
	units = append(units, fyne.NewMenuItemSeparator(), fyne.NewMenuItem("Exit", func() { state.window.Close() }))
	unitsMenu := fyne.NewMenu("Units", units...)

	hints := fyne.NewMenuItem("Chart Hints", func() {
		state.showHints = !state.showHints
		savePrefs(state)
		redrawCharts(state)
		buildMenus(state)
	})
	hints.Checked = state.showHints
	hover := fyne.NewMenuItem("Bar Readout on Hover", func() {
		state.hoverEnabled = !state.hoverEnabled
		savePrefs(state)
		redrawCharts(state)
		buildMenus(state)
	})
	hover.Checked = state.hoverEnabled
	dark := fyne.NewMenuItem("Dark Theme", func() { setTheme(state, "dark") })
	dark.Checked = state.themeName == "dark"
	light := fyne.NewMenuItem("Light Theme", func() { setTheme(state, "light") })
	light.Checked = state.themeName == "light"
	viewMenu := fyne.NewMenu("View", hints, hover, fyne.NewMenuItemSeparator(), dark, light)

	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, unitsMenu, viewMenu))

	canv := state.window.Canvas()
	if canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { openFileDialog(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { loadAll(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { state.window.Close() })
		}
	}
}

func setTheme(state *uiState, name string) {
	state.themeName = name
	applyTheme(state)
	savePrefs(state)
	buildMenus(state)
}

// file open dialog
func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		loadPath(state, rc.URI().Path())
	}, state.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	d.Show()
}

// loadAll reloads the file on screen.
func loadAll(state *uiState) {
	loadPath(state, state.filePath)
}

// loadPath reads path and, on success, makes it the file on screen and
// rebuilds the current page. On failure the previous file and dataset stay.
func loadPath(state *uiState, path string) {
	start := time.Now()
	d, err := teamdata.Load(path)
	if err != nil {
		logging.Errorf("load %s: %v", path, err)
		if state.window != nil {
			dialog.ShowError(err, state.window)
		}
		showPage(state, state.page)
		return
	}
	state.filePath = path
	state.data = d
	logging.Infof("loaded %d teams from %s in %s", d.Rows(), path, time.Since(start).Round(time.Millisecond))
	if state.fileLabel != nil {
		state.fileLabel.SetText(uihelpers.TruncatePath(path, 60))
	}
	addRecentFile(state, path)
	savePrefs(state)
	showPage(state, state.page)
	buildMenus(state)
	restartWatch(state)
}

// restartWatch follows the loaded file; a reload of the same file keeps the running watcher.
func restartWatch(state *uiState) {
	if !state.watchEnabled || state.watchedPath == state.filePath {
		return
	}
	if state.stopWatch != nil {
		state.stopWatch()
	}
	ctx, cancel := context.WithCancel(context.Background())
	state.stopWatch = cancel
	state.watchedPath = state.filePath
	path := state.filePath
	go func() {
		err := watcher.Watch(ctx, path, watcher.DefaultDebounce, func(string) {
			fyne.Do(func() {
				if state.filePath != path {
					return
				}
				logging.Infof("%s changed on disk, reloading", path)
				loadAll(state)
			})
		})
		if err != nil {
			logging.Warnf("auto-reload disabled for %s: %v", path, err)
		}
	}()
}

// chartSize computes a chart size from the window width; cols charts share a row.
func chartSize(state *uiState, cols int) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return uihelpers.ComputeChartDimensions(1100, cols)
	}
	sz := state.window.Canvas().Size()
	// ~95% of the width, minus a small margin for scrollbars/padding
	return uihelpers.ComputeChartDimensions(int(sz.Width*0.95)-12, cols)
}

// chartSlot is a chart image on the current page plus its hover overlay for bar charts.
type chartSlot struct {
	img     *canvas.Image
	overlay *barHoverOverlay
	cols    int
	spec    chartSpec
}

func newChartSlot(state *uiState, cols int, bars bool) *chartSlot {
	img := canvas.NewImageFromImage(charts.Blank(100, 60))
	img.FillMode = canvas.ImageFillContain
	s := &chartSlot{img: img, cols: cols}
	if bars {
		s.overlay = newBarHoverOverlay(state, img)
	}
	return s
}

func (s *chartSlot) object() fyne.CanvasObject {
	if s.overlay == nil {
		return s.img
	}
	return container.NewStack(s.img, s.overlay)
}

func redrawCharts(state *uiState) {
	for _, s := range state.slots {
		w, h := chartSize(state, s.cols)
		img, err := s.spec.draw(w, h, state.showHints)
		if err != nil {
			if s.spec.render != nil {
				logging.Warnf("render %s: %v", s.spec.name, err)
			}
			img = charts.Blank(w, h)
		}
		s.img.Image = img
		// reserve enough room to show the rendered chart
		s.img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		s.img.Refresh()
		if s.overlay != nil {
			if err != nil {
				s.overlay.setBars(nil, nil)
			} else {
				s.overlay.setBars(s.spec.labels, s.spec.values)
			}
			s.overlay.Refresh()
		}
	}
}

// exportCharts writes every chart of the current page into dir and returns the written paths.
func exportCharts(state *uiState, dir string) ([]string, error) {
	var out []string
	for i, s := range state.slots {
		if s.img == nil || s.img.Image == nil || s.spec.render == nil {
			continue
		}
		name := fmt.Sprintf("%s_%d_%s.png", strings.ToLower(state.page), i+1, s.spec.name)
		p := filepath.Join(dir, name)
		f, err := os.Create(p)
		if err != nil {
			return out, fmt.Errorf("create %s: %w", p, err)
		}
		err = png.Encode(f, s.img.Image)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return out, fmt.Errorf("write %s: %w", p, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func exportChartsDialog(state *uiState) {
	if len(state.slots) == 0 {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	dialog.ShowFolderOpen(func(lu fyne.ListableURI, err error) {
		if err != nil || lu == nil {
			return
		}
		files, err := exportCharts(state, lu.Path())
		if err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		logging.Infof("exported %d charts to %s", len(files), lu.Path())
		dialog.ShowInformation("Export", fmt.Sprintf("Saved %d charts to %s", len(files), lu.Path()), state.window)
	}, state.window)
}

func exportSQLiteDialog(state *uiState) {
	if state.data == nil {
		dialog.ShowInformation("Export", "No data loaded.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		path := wc.URI().Path()
		_ = wc.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, err := store.Export(ctx, path, state.data)
		if err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		dialog.ShowInformation("Export", fmt.Sprintf("Wrote %d teams to %s", n, path), state.window)
	}, state.window)
	fs.SetFileName("team_stats.db")
	fs.Show()
}

// recent files helpers
func recentFiles(state *uiState) []string {
	var out []string
	for _, p := range uihelpers.SplitRecent(state.app.Preferences().StringWithFallback("recentFiles", "")) {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	if state.app == nil {
		return
	}
	list := uihelpers.PushRecent(recentFiles(state), path, maxRecentFiles)
	state.app.Preferences().SetString("recentFiles", strings.Join(list, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetString("lastPage", state.page)
	prefs.SetString("statSel", state.statSel)
	prefs.SetString("teamSel", state.teamSel)
	prefs.SetString("relX", state.relX)
	prefs.SetString("relY", state.relY)
	prefs.SetBool("showHints", state.showHints)
	prefs.SetBool("hover", state.hoverEnabled)
	prefs.SetString("theme", state.themeName)
}

func loadPrefs(state *uiState, forcePage, forceData bool) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if !forceData {
		if f := prefs.StringWithFallback("lastFile", ""); f != "" {
			if _, err := os.Stat(f); err == nil {
				state.filePath = f
			}
		}
	}
	if !forcePage {
		if p, ok := config.NormalizePage(prefs.StringWithFallback("lastPage", state.page)); ok {
			state.page = p
		}
	}
	// selections are validated against the data when the page is built
	state.statSel = prefs.StringWithFallback("statSel", "")
	state.teamSel = prefs.StringWithFallback("teamSel", "")
	state.relX = prefs.StringWithFallback("relX", "")
	state.relY = prefs.StringWithFallback("relY", "")
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	state.hoverEnabled = prefs.BoolWithFallback("hover", state.hoverEnabled)
	switch t := prefs.StringWithFallback("theme", state.themeName); t {
	case "dark", "light":
		state.themeName = t
	}
}

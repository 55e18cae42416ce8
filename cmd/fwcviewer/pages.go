package main

import (
	"fmt"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/cmd/fwcviewer/uihelpers"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/config"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/logging"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

const (
	pageStats        = "Stats"
	pageTeam         = "Team"
	pageRelationship = "Relationship"
	pageStory        = "Story"
)

// page is the content of one "Units" entry. update recomputes its charts
// and labels from the current selections.
type page struct {
	name    string
	content fyne.CanvasObject
	slots   []*chartSlot
	update  func() error
}

var pageBuilders = map[string]func(*uiState) *page{
	pageStats:        buildStatsPage,
	pageTeam:         buildTeamPage,
	pageRelationship: buildRelationshipPage,
	pageStory:        buildStoryPage,
}

// showPage replaces the current page with a freshly built one.
func showPage(state *uiState, name string) {
	if p, ok := config.NormalizePage(name); ok {
		name = p
	} else {
		name = config.DefaultStartPage
	}
	state.page = name
	state.current = nil
	state.slots = nil
	if state.data == nil {
		msg := widget.NewLabel("No data loaded. Use File > Open… to choose a team statistics CSV.")
		msg.Alignment = fyne.TextAlignCenter
		state.body.Objects = []fyne.CanvasObject{container.NewCenter(msg)}
		state.body.Refresh()
		return
	}
	p := pageBuilders[name](state)
	state.current = p
	state.slots = p.slots
	state.body.Objects = []fyne.CanvasObject{p.content}
	state.body.Refresh()
	savePrefs(state)
	refreshPage(state)
}

// refreshPage recomputes the current page and redraws its charts.
func refreshPage(state *uiState) {
	if state.current == nil {
		return
	}
	for _, s := range state.slots {
		s.spec = chartSpec{}
	}
	if err := state.current.update(); err != nil {
		logging.Warnf("%s page: %v", state.current.name, err)
	}
	redrawCharts(state)
}

func titleLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Alignment = fyne.TextAlignCenter
	l.TextStyle = fyne.TextStyle{Bold: true}
	return l
}

// selector builds a dropdown whose changes store the value, persist it and refresh the page.
func selector(state *uiState, options []string, selected string, set func(string)) *widget.Select {
	sel := widget.NewSelect(options, nil)
	sel.Selected = selected
	sel.OnChanged = func(v string) {
		set(v)
		savePrefs(state)
		refreshPage(state)
	}
	return sel
}

func buildStatsPage(state *uiState) *page {
	opts := teamdata.OptionColumns()
	state.statSel = uihelpers.PickOption(opts, state.statSel, 0)

	mean := widget.NewLabel("")
	sd := widget.NewLabel("")
	bar := newChartSlot(state, 1, true)
	hist := newChartSlot(state, 1, true)
	p := &page{name: pageStats, slots: []*chartSlot{bar, hist}}
	p.update = func() error {
		v, err := buildStatsView(state.data, state.statSel, state.topN)
		if err != nil {
			mean.SetText("")
			sd.SetText("")
			return err
		}
		bar.spec, hist.spec = v.charts[0], v.charts[1]
		mean.SetText(v.mean)
		sd.SetText(v.sd)
		return nil
	}

	sel := selector(state, opts, state.statSel, func(v string) { state.statSel = v })
	header := container.NewVBox(titleLabel(fmt.Sprintf("Top %d %s", state.topN, pageStats)), container.NewCenter(sel))
	footer := container.NewCenter(container.NewHBox(mean, widget.NewSeparator(), sd))
	chartsColumn := container.NewVBox(bar.object(), widget.NewSeparator(), hist.object())
	p.content = container.NewBorder(header, footer, nil, nil, container.NewVScroll(chartsColumn))
	return p
}

func buildTeamPage(state *uiState) *page {
	teams := state.data.Teams()
	state.teamSel = uihelpers.PickOption(teams, state.teamSel, 0)

	profile := newChartSlot(state, 1, true)
	p := &page{name: pageTeam, slots: []*chartSlot{profile}}
	p.update = func() error {
		spec, err := buildTeamView(state.data, state.teamSel)
		if err != nil {
			return err
		}
		profile.spec = spec
		return nil
	}

	sel := selector(state, teams, state.teamSel, func(v string) { state.teamSel = v })
	header := container.NewVBox(titleLabel(pageTeam), container.NewCenter(sel))
	p.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(profile.object()))
	return p
}

func buildRelationshipPage(state *uiState) *page {
	opts := teamdata.OptionColumns()
	state.relX = uihelpers.PickOption(opts, state.relX, 0)
	state.relY = uihelpers.PickOption(opts, state.relY, 2)

	corr := widget.NewLabel("")
	scatter := newChartSlot(state, 1, false)
	p := &page{name: pageRelationship, slots: []*chartSlot{scatter}}
	p.update = func() error {
		v, err := buildRelationshipView(state.data, state.relX, state.relY)
		if err != nil {
			corr.SetText("")
			return err
		}
		scatter.spec = v.chart
		corr.SetText(v.label)
		return nil
	}

	selX := selector(state, opts, state.relX, func(v string) { state.relX = v })
	selY := selector(state, opts, state.relY, func(v string) { state.relY = v })
	choosers := container.NewHBox(widget.NewLabel("Between"), selX, widget.NewLabel("and"), selY)
	header := container.NewVBox(titleLabel(pageRelationship), container.NewCenter(choosers))
	p.content = container.NewBorder(header, container.NewCenter(corr), nil, nil, container.NewVScroll(scatter.object()))
	return p
}

func buildStoryPage(state *uiState) *page {
	headline := titleLabel("")
	pie := newChartSlot(state, 2, false)
	bar := newChartSlot(state, 2, true)
	hist := newChartSlot(state, 2, true)
	scatter := newChartSlot(state, 2, false)
	text := container.NewVBox()
	p := &page{name: pageStory, slots: []*chartSlot{pie, bar, hist, scatter}}
	p.update = func() error {
		v, err := buildStoryView(state.data)
		if err != nil {
			headline.SetText("")
			text.Objects = nil
			text.Refresh()
			return err
		}
		pie.spec, bar.spec, hist.spec, scatter.spec = v.charts[0], v.charts[1], v.charts[2], v.charts[3]
		headline.SetText(v.story.Headline)
		text.Objects = nil
		for i, line := range v.storyText() {
			l := widget.NewLabel(line)
			l.Wrapping = fyne.TextWrapWord
			if i < 3 {
				l.TextStyle = fyne.TextStyle{Bold: true}
			}
			text.Add(l)
		}
		text.Refresh()
		return nil
	}

	grid := container.NewGridWithColumns(2, pie.object(), bar.object(), hist.object(), scatter.object())
	header := container.NewVBox(titleLabel(pageStory), headline)
	p.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(container.NewVBox(grid, widget.NewSeparator(), text)))
	return p
}

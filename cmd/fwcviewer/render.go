package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/charts"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

// chartSpec is one chart of a page: how to draw it at a given size and, for
// bar charts, the bars the hover readout reports.
type chartSpec struct {
	name   string
	labels []string
	values []float64
	render func(w, h int, hint string) (image.Image, error)
	hint   string
}

func (c chartSpec) draw(w, h int, hints bool) (image.Image, error) {
	if c.render == nil {
		return nil, charts.ErrNoData
	}
	hint := ""
	if hints {
		hint = c.hint
	}
	return c.render(w, h, hint)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func topBarSpec(r teamdata.Ranking) chartSpec {
	return chartSpec{
		name:   "top_" + r.Stat,
		labels: r.Teams,
		values: r.Values,
		hint:   "Hint: tallest bar first; hover a bar to read its value",
		render: func(w, h int, hint string) (image.Image, error) {
			return charts.Bar(charts.Options{
				Title: "Team " + r.Stat, XName: teamdata.TeamColumn, YName: r.Stat,
				Width: w, Height: h, Hint: hint, RotateLabels: true,
			}, r.Teams, r.Values)
		},
	}
}

func histogramSpec(r teamdata.Ranking) chartSpec {
	bins := teamdata.HistogramBins(r.Values)
	labels := make([]string, len(bins))
	counts := make([]float64, len(bins))
	for i, b := range bins {
		labels[i] = b.Label()
		counts[i] = float64(b.Count)
	}
	return chartSpec{
		name:   "hist_" + r.Stat,
		labels: labels,
		values: counts,
		hint:   "Hint: how many of the ranked teams fall in each range",
		render: func(w, h int, hint string) (image.Image, error) {
			return charts.Histogram(charts.Options{
				Title: capitalize(r.Stat) + " Histogram", XName: r.Stat,
				Width: w, Height: h, Hint: hint,
			}, bins)
		},
	}
}

// statsView is the Stats page for one statistic.
type statsView struct {
	ranking teamdata.Ranking
	charts  []chartSpec
	mean    string
	sd      string
}

func buildStatsView(d *teamdata.TeamData, stat string, topN int) (statsView, error) {
	r, err := d.SortTop(stat, topN)
	if err != nil {
		return statsView{}, err
	}
	return statsView{
		ranking: r,
		charts:  []chartSpec{topBarSpec(r), histogramSpec(r)},
		mean:    "Mean: " + teamdata.FormatStat(r.Mean()),
		sd:      "SD: " + teamdata.FormatStat(r.StdDev()),
	}, nil
}

func buildTeamView(d *teamdata.TeamData, team string) (chartSpec, error) {
	p, err := d.TeamProfile(team)
	if err != nil {
		return chartSpec{}, err
	}
	return chartSpec{
		name:   "team_" + strings.ReplaceAll(strings.ToLower(team), " ", "_"),
		labels: p.Stats,
		values: p.Values,
		hint:   "Hint: raw values, compare bars of the same unit",
		render: func(w, h int, hint string) (image.Image, error) {
			return charts.Bar(charts.Options{
				Title: team, XName: "stat", Width: w, Height: h, Hint: hint, RotateLabels: true,
			}, p.Stats, p.Values)
		},
	}, nil
}

// relationshipView is the scatter of two statistics over all teams.
type relationshipView struct {
	chart chartSpec
	corr  float64
	label string
}

func buildRelationshipView(d *teamdata.TeamData, x, y string) (relationshipView, error) {
	xs, err := d.Column(x)
	if err != nil {
		return relationshipView{}, err
	}
	ys, err := d.Column(y)
	if err != nil {
		return relationshipView{}, err
	}
	corr, err := d.Correlation(x, y)
	if err != nil {
		return relationshipView{}, err
	}
	return relationshipView{
		chart: chartSpec{
			name: fmt.Sprintf("scatter_%s_%s", x, y),
			hint: "Hint: the dashed line is the linear trend",
			render: func(w, h int, hint string) (image.Image, error) {
				return charts.Scatter(charts.Options{
					Title: x + " vs " + y, XName: x, YName: y, Width: w, Height: h, Hint: hint,
				}, xs, ys)
			},
		},
		corr:  corr,
		label: "Correlation Coefficient: " + teamdata.FormatStat(corr),
	}, nil
}

func goalsPieSpec(g teamdata.GoalBuckets) chartSpec {
	counts := make([]float64, len(g.Counts))
	for i, c := range g.Counts {
		counts[i] = float64(c)
	}
	labels := g.Labels[:]
	legend := g.Criteria[:]
	return chartSpec{
		name: "goals_pie",
		hint: "Hint: share of teams per goals scored range",
		render: func(w, h int, hint string) (image.Image, error) {
			return charts.Pie(charts.Options{Title: "Goals scored", Width: w, Height: h, Hint: hint}, labels, counts, legend)
		},
	}
}

// storyView holds everything the Story page shows.
type storyView struct {
	story  teamdata.Story
	charts []chartSpec
}

func buildStoryView(d *teamdata.TeamData) (storyView, error) {
	s, err := d.BuildStory("shots", "goals")
	if err != nil {
		return storyView{}, err
	}
	rel, err := buildRelationshipView(d, "shots", "goals")
	if err != nil {
		return storyView{}, err
	}
	return storyView{
		story: s,
		charts: []chartSpec{
			goalsPieSpec(d.GoalBuckets()),
			topBarSpec(s.Shots),
			histogramSpec(s.Shots),
			rel.chart,
		},
	}, nil
}

// storyText lists the summary labels and the narrative in display order.
func (v storyView) storyText() []string {
	out := []string{v.story.MeanLine(), v.story.SDLine(), v.story.CorrelationLine()}
	out = append(out, v.story.Lines...)
	return append(out, v.story.Conclusion)
}

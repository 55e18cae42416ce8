package main

import (
	"math"
	"strings"
	"testing"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

const fixture = "../../src/teamdata/testdata/team_data.csv"

func loadFixture(t *testing.T) *teamdata.TeamData {
	t.Helper()
	d, err := teamdata.Load(fixture)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return d
}

func TestBuildStatsView_Shots(t *testing.T) {
	v, err := buildStatsView(loadFixture(t), "shots", 10)
	if err != nil {
		t.Fatalf("buildStatsView: %v", err)
	}
	if v.mean != "Mean: 73.10" || v.sd != "SD: 17.64" {
		t.Fatalf("labels => %q / %q", v.mean, v.sd)
	}
	if len(v.charts) != 2 || v.charts[0].name != "top_shots" || v.charts[1].name != "hist_shots" {
		t.Fatalf("unexpected charts %+v", v.charts)
	}
	bar := v.charts[0]
	if len(bar.labels) != 10 || bar.labels[0] != "France" || bar.values[0] != 104 {
		t.Fatalf("bar data => %v %v", bar.labels, bar.values)
	}
	total := 0.0
	for _, c := range v.charts[1].values {
		total += c
	}
	if total != 10 {
		t.Fatalf("histogram counts sum to %v, want 10", total)
	}
	img, err := bar.draw(900, 320, true)
	if err != nil || img.Bounds().Dx() != 900 {
		t.Fatalf("draw => %v, %v", img, err)
	}
}

func TestBuildStatsView_UnknownStat(t *testing.T) {
	if _, err := buildStatsView(loadFixture(t), "team", 10); err == nil {
		t.Fatal("expected error for the team column")
	}
}

func TestBuildTeamView(t *testing.T) {
	spec, err := buildTeamView(loadFixture(t), "Morocco")
	if err != nil {
		t.Fatalf("buildTeamView: %v", err)
	}
	if strings.Join(spec.labels, ",") != strings.Join(teamdata.ProfileColumns(), ",") {
		t.Fatalf("labels => %v", spec.labels)
	}
	if spec.values[0] != 7.0 || spec.name != "team_morocco" {
		t.Fatalf("spec => %s %v", spec.name, spec.values)
	}
	if _, err := buildTeamView(loadFixture(t), "Atlantis"); err == nil {
		t.Fatal("expected error for unknown team")
	}
}

func TestBuildRelationshipView(t *testing.T) {
	d := loadFixture(t)
	v, err := buildRelationshipView(d, "shots", "goals")
	if err != nil {
		t.Fatalf("buildRelationshipView: %v", err)
	}
	if v.label != "Correlation Coefficient: 0.87" {
		t.Fatalf("label => %q", v.label)
	}
	if v.chart.labels != nil {
		t.Fatal("scatter must not expose bars to the hover readout")
	}
	self, err := buildRelationshipView(d, "goals", "goals")
	if err != nil || math.Abs(self.corr-1) > 1e-9 {
		t.Fatalf("self correlation => %v, %v", self.corr, err)
	}
}

func TestBuildStoryView(t *testing.T) {
	v, err := buildStoryView(loadFixture(t))
	if err != nil {
		t.Fatalf("buildStoryView: %v", err)
	}
	if len(v.charts) != 4 || v.charts[0].name != "goals_pie" {
		t.Fatalf("charts => %d", len(v.charts))
	}
	text := v.storyText()
	if text[0] != "Mean of shots attempted: 73.10" || text[2] != "Correlation Coefficient between Goals and Shots: 0.87" {
		t.Fatalf("summary lines => %q", text[:3])
	}
	if !strings.HasSuffix(text[len(text)-1], "France is the best attacking team") {
		t.Fatalf("conclusion => %q", text[len(text)-1])
	}
	for _, c := range v.charts {
		if _, err := c.draw(600, 400, false); err != nil {
			t.Fatalf("draw %s: %v", c.name, err)
		}
	}
}

func TestChartSpecDrawWithoutRenderer(t *testing.T) {
	if _, err := (chartSpec{}).draw(100, 100, false); err == nil {
		t.Fatal("expected error for a chart without data")
	}
	if capitalize("shots") != "Shots" || capitalize("") != "" {
		t.Fatal("capitalize")
	}
}

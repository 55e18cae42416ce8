package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/cmd/fwcviewer/uihelpers"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/config"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

// screenshotCharts collects each page's charts with the pages' default
// selections, keyed by page in menu order.
func screenshotCharts(d *teamdata.TeamData, topN int) ([]string, [][]chartSpec, error) {
	opts := teamdata.OptionColumns()
	stats, err := buildStatsView(d, opts[0], topN)
	if err != nil {
		return nil, nil, err
	}
	team, err := buildTeamView(d, d.Teams()[0])
	if err != nil {
		return nil, nil, err
	}
	rel, err := buildRelationshipView(d, opts[0], opts[2])
	if err != nil {
		return nil, nil, err
	}
	story, err := buildStoryView(d)
	if err != nil {
		return nil, nil, err
	}
	return []string{pageStats, pageTeam, pageRelationship, pageStory},
		[][]chartSpec{stats.charts, {team}, {rel.chart}, story.charts}, nil
}

// RunScreenshotsMode renders every page's charts and writes them as PNGs
// under cfg.ScreenshotsDir. It runs headlessly without creating a UI window.
func RunScreenshotsMode(cfg *config.Config) ([]string, error) {
	d, err := teamdata.Load(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.ScreenshotsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	pages, specs, err := screenshotCharts(d, cfg.TopN)
	if err != nil {
		return nil, err
	}
	var written []string
	for i, name := range pages {
		cols := 1
		if name == pageStory {
			cols = 2
		}
		w, h := uihelpers.ComputeChartDimensions(cfg.Window.Width, cols)
		for j, spec := range specs[i] {
			img, err := spec.draw(w, h, cfg.Hints)
			if err != nil {
				return written, fmt.Errorf("render %s: %w", spec.name, err)
			}
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return written, fmt.Errorf("png encode %s: %w", spec.name, err)
			}
			outPath := filepath.Join(cfg.ScreenshotsDir, fmt.Sprintf("%s_%d_%s.png", strings.ToLower(name), j+1, spec.name))
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", outPath, err)
			}
			written = append(written, outPath)
		}
	}
	return written, nil
}

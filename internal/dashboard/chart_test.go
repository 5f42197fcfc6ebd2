// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package dashboard

import (
	"strings"
	"testing"

	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/models"
)

func series(values ...float64) []models.DataPoint {
	out := make([]models.DataPoint, len(values))
	for i, v := range values {
		out[i] = models.DataPoint{Period: string(rune('A' + i)), Value: v}
	}
	return out
}

func TestBuildChartEmpty(t *testing.T) {
	t.Parallel()

	if c := buildChart(nil, catalog.ChartLine); c != nil {
		t.Errorf("buildChart(nil) = %+v, want nil", c)
	}
}

func TestBuildChartStyles(t *testing.T) {
	t.Parallel()

	points := series(10, 30, 20)

	line := buildChart(points, catalog.ChartLine)
	if got := len(strings.Fields(line.Line)); got != 3 {
		t.Errorf("line points = %d, want 3", got)
	}
	if line.Area != "" || len(line.Bars) != 0 {
		t.Error("line chart carries area or bars")
	}
	if !strings.HasPrefix(line.Line, "72,") {
		t.Errorf("first point should sit on the left edge: %q", line.Line)
	}

	area := buildChart(points, catalog.ChartArea)
	if got := len(strings.Fields(area.Area)); got != 5 {
		t.Errorf("area polygon points = %d, want 5", got)
	}

	bar := buildChart(points, catalog.ChartBar)
	if len(bar.Bars) != 3 || bar.Line != "" {
		t.Fatalf("bar chart = %+v", bar)
	}
	if bar.Bars[1].H <= bar.Bars[0].H {
		t.Errorf("bar heights not proportional: %+v", bar.Bars)
	}
	if bar.Bars[1].Y+bar.Bars[1].H != bar.Bottom {
		t.Errorf("bars should rest on the zero baseline: %+v bottom %v", bar.Bars[1], bar.Bottom)
	}
}

func TestBuildChartLineHigherValueIsHigher(t *testing.T) {
	t.Parallel()

	c := buildChart(series(1, 2), catalog.ChartLine)
	pts := strings.Fields(c.Line)
	y0 := pts[0][strings.Index(pts[0], ",")+1:]
	y1 := pts[1][strings.Index(pts[1], ",")+1:]
	if y0 != "280" || y1 != "16" {
		t.Errorf("y coords = %s, %s, want 280, 16", y0, y1)
	}
}

func TestBuildChartSinglePointAndFlatSeries(t *testing.T) {
	t.Parallel()

	c := buildChart(series(5), catalog.ChartLine)
	if c.Line != "388,148" {
		t.Errorf("single point = %q, want centered 388,148", c.Line)
	}

	flat := buildChart(series(0, 0, 0), catalog.ChartBar)
	for _, b := range flat.Bars {
		if b.H != 0 {
			t.Errorf("zero bar has height %v", b.H)
		}
	}
	if len(flat.YTicks) != yTickCount {
		t.Errorf("ticks = %d, want %d", len(flat.YTicks), yTickCount)
	}
}

func TestBuildChartXLabelsThinned(t *testing.T) {
	t.Parallel()

	values := make([]float64, 40)
	c := buildChart(series(values...), catalog.ChartLine)
	if len(c.XLabels) > maxXLabels {
		t.Errorf("x labels = %d, want at most %d", len(c.XLabels), maxXLabels)
	}
}

// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package dashboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/models"
	"github.com/tomtom215/statdash/internal/stats"
)

// Chart canvas in SVG user units.
const (
	chartWidth   = 720
	chartHeight  = 320
	chartLeft    = 72
	chartRight   = 16
	chartTop     = 16
	chartBottom  = 40
	yTickCount   = 5
	maxXLabels   = 8
	barFillRatio = 0.8
)

// Chart is the precomputed SVG geometry of a series.
type Chart struct {
	Width   int
	Height  int
	Style   string
	Line    string // polyline points for line and area styles
	Area    string // closed polygon for the area style
	Bars    []Bar
	YTicks  []Tick
	XLabels []Tick
	Left    float64
	Right   float64
	Bottom  float64
}

// Bar is one rectangle of a bar chart.
type Bar struct {
	X, Y, W, H float64
	Title      string
}

// Tick is an axis label at a position along its axis.
type Tick struct {
	Pos   float64
	Label string
}

// buildChart lays out points in the given style. Bar and area charts keep
// zero inside the value range so heights stay comparable.
func buildChart(points []models.DataPoint, style string) *Chart {
	if len(points) == 0 {
		return nil
	}

	plotW := float64(chartWidth - chartLeft - chartRight)
	plotH := float64(chartHeight - chartTop - chartBottom)
	bottom := float64(chartHeight - chartBottom)

	lo, hi := valueRange(points, style != catalog.ChartLine)
	scaleY := func(v float64) float64 {
		return bottom - (v-lo)/(hi-lo)*plotH
	}

	c := &Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Style:  style,
		Left:   chartLeft,
		Right:  float64(chartWidth - chartRight),
		Bottom: bottom,
	}

	n := len(points)
	xs := make([]float64, n)
	if style == catalog.ChartBar {
		band := plotW / float64(n)
		c.Bars = make([]Bar, n)
		for i, p := range points {
			xs[i] = chartLeft + band*(float64(i)+0.5)
			top, base := scaleY(math.Max(p.Value, 0)), scaleY(math.Min(p.Value, 0))
			c.Bars[i] = Bar{
				X:     round1(xs[i] - band*barFillRatio/2),
				Y:     round1(top),
				W:     round1(band * barFillRatio),
				H:     round1(base - top),
				Title: p.Period + ": " + stats.FormatValue(p.Value),
			}
		}
	} else {
		coords := make([]string, n)
		for i, p := range points {
			xs[i] = chartLeft + plotW/2
			if n > 1 {
				xs[i] = chartLeft + plotW*float64(i)/float64(n-1)
			}
			coords[i] = coord(xs[i], scaleY(p.Value))
		}
		c.Line = strings.Join(coords, " ")
		if style == catalog.ChartArea {
			base := scaleY(math.Max(lo, 0))
			c.Area = coord(xs[0], base) + " " + c.Line + " " + coord(xs[n-1], base)
		}
	}

	for i := 0; i < yTickCount; i++ {
		v := lo + (hi-lo)*float64(i)/float64(yTickCount-1)
		c.YTicks = append(c.YTicks, Tick{Pos: round1(scaleY(v)), Label: stats.FormatValue(v)})
	}

	step := (n + maxXLabels - 1) / maxXLabels
	for i := 0; i < n; i += step {
		c.XLabels = append(c.XLabels, Tick{Pos: round1(xs[i]), Label: points[i].Period})
	}
	return c
}

// valueRange returns a non-empty [lo, hi] covering every value.
func valueRange(points []models.DataPoint, includeZero bool) (float64, float64) {
	lo, hi := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	if includeZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi-lo < 1e-9 {
		pad := math.Max(math.Abs(hi)*0.1, 1)
		lo, hi = lo-pad, hi+pad
	}
	return lo, hi
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func coord(x, y float64) string {
	return strconv.FormatFloat(round1(x), 'f', -1, 64) + "," + strconv.FormatFloat(round1(y), 'f', -1, 64)
}

// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/models"
	"github.com/tomtom215/statdash/internal/stats"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	sparkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A90D9"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardStyle      = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Table lays out rows in columns padded by display width, so accented
// labels stay aligned.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == len(widths)-1 {
				b.WriteString(cell)
			} else {
				b.WriteString(runewidth.FillRight(cell, widths[i]))
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	writeRow(rule)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// Indicators renders the indicator catalog grouped by category.
func Indicators(groups []catalog.CategoryGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(g.Category))
		b.WriteString("\n")
		rows := make([][]string, 0, len(g.Indicators))
		for _, ind := range g.Indicators {
			label := ind.Label
			if catalog.IsNationalOnly(ind.ID) {
				label += " (nacional)"
			}
			rows = append(rows, []string{ind.ID, label, ind.Unit})
		}
		b.WriteString(Table([]string{"ID", "Indicador", "Unidad"}, rows))
	}
	return b.String()
}

// Geographies renders the geography catalog.
func Geographies(geos []catalog.Geography) string {
	rows := make([][]string, 0, len(geos))
	for _, g := range geos {
		rows = append(rows, []string{g.ID, g.Label, string(g.Classification)})
	}
	return Table([]string{"ID", "Área geográfica", "Tipo"}, rows)
}

// Series renders a query result: header, observation table, sparkline and
// summary cards.
func Series(view models.SeriesView) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(view.IndicatorLabel + " · " + view.GeographyLabel))
	b.WriteString("\n")
	sub := fmt.Sprintf("%d períodos disponibles", len(view.Points))
	if view.Unit != "" {
		sub += " · " + view.Unit
	}
	b.WriteString(mutedStyle.Render(sub))
	b.WriteString("\n\n")

	rows := make([][]string, len(view.Points))
	for i, p := range view.Points {
		rows[i] = []string{p.Period, strconv.FormatFloat(p.Value, 'f', -1, 64), stats.FormatValue(p.Value)}
	}
	b.WriteString(Table([]string{"Periodo", "Valor", ""}, rows))
	b.WriteString("\n")
	b.WriteString(sparkStyle.Render(stats.Sparkline(stats.Values(view.Points))))
	b.WriteString("\n")

	s := view.Summary
	cards := []string{
		summaryCard("Último valor", s.Last),
		summaryCard("Primer valor", s.First),
		summaryCard("Máximo", s.Max),
		summaryCard("Mínimo", s.Min),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")
	return b.String()
}

func summaryCard(label string, pv models.PeriodValue) string {
	content := cardTitleStyle.Render(label) + "\n" +
		cardValueStyle.Render(stats.FormatValue(pv.Value)) + "\n" +
		mutedStyle.Render(pv.Period)
	return cardStyle.Render(content)
}

// Failure renders an error phase message.
func Failure(message string) string {
	return errorStyle.Render("Error al obtener datos: " + message)
}

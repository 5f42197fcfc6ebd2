// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package catalog

// CategoryGroup is a display group of indicators sharing a category.
type CategoryGroup struct {
	Category   string      `json:"category"`
	Indicators []Indicator `json:"indicators"`
}

// Categories returns the distinct indicator categories in first-appearance order.
func Categories() []string {
	seen := make(map[string]struct{}, len(indicators))
	out := make([]string, 0, len(indicators))
	for _, ind := range indicators {
		if _, ok := seen[ind.Category]; ok {
			continue
		}
		seen[ind.Category] = struct{}{}
		out = append(out, ind.Category)
	}
	return out
}

// IndicatorsByCategory groups the indicators for display. Groups follow
// Categories order and indicators keep their catalog order inside a group.
func IndicatorsByCategory() []CategoryGroup {
	cats := Categories()
	groups := make([]CategoryGroup, len(cats))
	pos := make(map[string]int, len(cats))
	for i, c := range cats {
		groups[i].Category = c
		pos[c] = i
	}
	for _, ind := range indicators {
		g := &groups[pos[ind.Category]]
		g.Indicators = append(g.Indicators, ind)
	}
	return groups
}

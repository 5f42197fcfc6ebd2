// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package catalog

import "testing"

func TestListGeographiesNationalFirst(t *testing.T) {
	t.Parallel()

	geos := ListGeographies()
	if len(geos) != 33 {
		t.Fatalf("len(ListGeographies()) = %d, want 33", len(geos))
	}
	if geos[0].ID != NationalID || !geos[0].IsNational() {
		t.Errorf("first geography = %+v, want national %q", geos[0], NationalID)
	}

	nationals := 0
	for _, g := range geos {
		if g.IsNational() {
			nationals++
		}
	}
	if nationals != 1 {
		t.Errorf("national geographies = %d, want exactly 1", nationals)
	}
}

func TestListIndicatorsIsCopy(t *testing.T) {
	t.Parallel()

	first := ListIndicators()
	first[0].Label = "mutated"

	again := ListIndicators()
	if again[0].Label == "mutated" {
		t.Error("ListIndicators returned the shared table")
	}
	if got, _ := LookupIndicator(again[0].ID); got.Label == "mutated" {
		t.Error("LookupIndicator sees caller mutation")
	}
}

func TestIndicatorIDsUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, ind := range ListIndicators() {
		if seen[ind.ID] {
			t.Errorf("duplicate indicator id %q", ind.ID)
		}
		seen[ind.ID] = true
	}
}

func TestIsNationalOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want bool
	}{
		{"494098", true},
		{"524271", true},
		{"6204198547", true},
		{"6204198549", true},
		{"702097", true},
		{"702100", true},
		{"1002000001", false},
		{"216064", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsNationalOnly(tt.id); got != tt.want {
				t.Errorf("IsNationalOnly(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestLookups(t *testing.T) {
	t.Parallel()

	if ind, ok := LookupIndicator("444663"); !ok || ind.Unit != "Porcentaje" {
		t.Errorf("LookupIndicator(444663) = %+v, %v", ind, ok)
	}
	if _, ok := LookupIndicator("999"); ok {
		t.Error("LookupIndicator(999) found an entry")
	}
	if geo, ok := LookupGeography("15"); !ok || geo.Label != "Estado de México" || geo.IsNational() {
		t.Errorf("LookupGeography(15) = %+v, %v", geo, ok)
	}
	if _, ok := LookupGeography("33"); ok {
		t.Error("LookupGeography(33) found an entry")
	}
	if cs, ok := LookupChartStyle(ChartBar); !ok || cs.Label != "Barras" {
		t.Errorf("LookupChartStyle(bar) = %+v, %v", cs, ok)
	}
	if National().ID != NationalID {
		t.Errorf("National().ID = %q, want %q", National().ID, NationalID)
	}
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	want := []string{"Demografía", "Economía", "Precios", "Empleo", "Comercio exterior"}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	groups := IndicatorsByCategory()
	if len(groups[0].Indicators) != 3 {
		t.Errorf("Demografía group size = %d, want 3", len(groups[0].Indicators))
	}
	if groups[0].Indicators[1].ID != "1002000002" {
		t.Errorf("Demografía group order = %v", groups[0].Indicators)
	}
}

func TestIndicatorDescriptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want string
	}{
		{"1002000001", "Población total del país"},
		{"6200093912", "Producto Interno Bruto a precios corrientes"},
		{"6200093913", "Producto Interno Bruto a precios constantes de 2013"},
		{"216064", "Índice Nacional de Precios al Consumidor"},
		{"444663", "Porcentaje de la PEA que está desocupada"},
		{"735927", "Valor total de exportaciones"},
		{"735928", "Valor total de importaciones"},
		{"1002000002", "Población masculina total"},
		{"1002000003", "Población femenina total"},
	}

	if len(ListIndicators()) != len(tests) {
		t.Fatalf("len(ListIndicators()) = %d, want %d", len(ListIndicators()), len(tests))
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			ind, ok := LookupIndicator(tt.id)
			if !ok {
				t.Fatalf("LookupIndicator(%q) not found", tt.id)
			}
			if ind.Description != tt.want {
				t.Errorf("Description = %q, want %q", ind.Description, tt.want)
			}
		})
	}
}

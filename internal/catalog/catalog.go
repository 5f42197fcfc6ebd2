// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package catalog holds the fixed reference data the dashboard offers for
// selection: INEGI BIE indicators, the national and state geographies, and
// the chart styles.
//
// All tables are process-wide constants. The List functions return copies so
// callers can never mutate the shared tables.
package catalog

// Classification separates the national aggregate from sub-national regions.
type Classification string

const (
	// ClassificationNational marks the single national aggregate geography.
	ClassificationNational Classification = "national"

	// ClassificationRegional marks a state-level geography.
	ClassificationRegional Classification = "regional"
)

// NationalID is the geography id of the national aggregate.
const NationalID = "00"

// Indicator is a statistical series definition selectable by the user.
type Indicator struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
}

// Geography is a national or regional scope filter applied to an indicator query.
type Geography struct {
	ID             string         `json:"id"`
	Label          string         `json:"label"`
	Classification Classification `json:"classification"`
}

// IsNational reports whether g is the national aggregate.
func (g Geography) IsNational() bool {
	return g.Classification == ClassificationNational
}

// ChartStyle is the rendering style of a series.
type ChartStyle struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Chart style ids.
const (
	ChartLine = "line"
	ChartBar  = "bar"
	ChartArea = "area"
)

// DefaultChartStyle is selected when a session starts.
const DefaultChartStyle = ChartLine

var indicators = []Indicator{
	{ID: "1002000001", Label: "Población total", Description: "Población total del país", Unit: "Personas", Category: "Demografía"},
	{ID: "6200093912", Label: "PIB a precios corrientes", Description: "Producto Interno Bruto a precios corrientes", Unit: "Millones de pesos", Category: "Economía"},
	{ID: "6200093913", Label: "PIB a precios constantes", Description: "Producto Interno Bruto a precios constantes de 2013", Unit: "Millones de pesos", Category: "Economía"},
	{ID: "216064", Label: "Inflación (INPC)", Description: "Índice Nacional de Precios al Consumidor", Unit: "Índice", Category: "Precios"},
	{ID: "444663", Label: "Tasa de desocupación", Description: "Porcentaje de la PEA que está desocupada", Unit: "Porcentaje", Category: "Empleo"},
	{ID: "735927", Label: "Exportaciones totales", Description: "Valor total de exportaciones", Unit: "Millones de dólares", Category: "Comercio exterior"},
	{ID: "735928", Label: "Importaciones totales", Description: "Valor total de importaciones", Unit: "Millones de dólares", Category: "Comercio exterior"},
	{ID: "1002000002", Label: "Población masculina", Description: "Población masculina total", Unit: "Personas", Category: "Demografía"},
	{ID: "1002000003", Label: "Población femenina", Description: "Población femenina total", Unit: "Personas", Category: "Demografía"},
}

var geographies = []Geography{
	{ID: NationalID, Label: "Nacional", Classification: ClassificationNational},
	{ID: "01", Label: "Aguascalientes", Classification: ClassificationRegional},
	{ID: "02", Label: "Baja California", Classification: ClassificationRegional},
	{ID: "03", Label: "Baja California Sur", Classification: ClassificationRegional},
	{ID: "04", Label: "Campeche", Classification: ClassificationRegional},
	{ID: "05", Label: "Coahuila", Classification: ClassificationRegional},
	{ID: "06", Label: "Colima", Classification: ClassificationRegional},
	{ID: "07", Label: "Chiapas", Classification: ClassificationRegional},
	{ID: "08", Label: "Chihuahua", Classification: ClassificationRegional},
	{ID: "09", Label: "Ciudad de México", Classification: ClassificationRegional},
	{ID: "10", Label: "Durango", Classification: ClassificationRegional},
	{ID: "11", Label: "Guanajuato", Classification: ClassificationRegional},
	{ID: "12", Label: "Guerrero", Classification: ClassificationRegional},
	{ID: "13", Label: "Hidalgo", Classification: ClassificationRegional},
	{ID: "14", Label: "Jalisco", Classification: ClassificationRegional},
	{ID: "15", Label: "Estado de México", Classification: ClassificationRegional},
	{ID: "16", Label: "Michoacán", Classification: ClassificationRegional},
	{ID: "17", Label: "Morelos", Classification: ClassificationRegional},
	{ID: "18", Label: "Nayarit", Classification: ClassificationRegional},
	{ID: "19", Label: "Nuevo León", Classification: ClassificationRegional},
	{ID: "20", Label: "Oaxaca", Classification: ClassificationRegional},
	{ID: "21", Label: "Puebla", Classification: ClassificationRegional},
	{ID: "22", Label: "Querétaro", Classification: ClassificationRegional},
	{ID: "23", Label: "Quintana Roo", Classification: ClassificationRegional},
	{ID: "24", Label: "San Luis Potosí", Classification: ClassificationRegional},
	{ID: "25", Label: "Sinaloa", Classification: ClassificationRegional},
	{ID: "26", Label: "Sonora", Classification: ClassificationRegional},
	{ID: "27", Label: "Tabasco", Classification: ClassificationRegional},
	{ID: "28", Label: "Tamaulipas", Classification: ClassificationRegional},
	{ID: "29", Label: "Tlaxcala", Classification: ClassificationRegional},
	{ID: "30", Label: "Veracruz", Classification: ClassificationRegional},
	{ID: "31", Label: "Yucatán", Classification: ClassificationRegional},
	{ID: "32", Label: "Zacatecas", Classification: ClassificationRegional},
}

var chartStyles = []ChartStyle{
	{ID: ChartLine, Label: "Línea"},
	{ID: ChartBar, Label: "Barras"},
	{ID: ChartArea, Label: "Área"},
}

// nationalOnly lists indicators that INEGI publishes at national scope only.
var nationalOnly = map[string]struct{}{
	"494098":     {},
	"524271":     {},
	"6204198547": {},
	"6204198549": {},
	"702097":     {},
	"702100":     {},
}

var (
	indicatorIndex = indexBy(indicators, func(i Indicator) string { return i.ID })
	geographyIndex = indexBy(geographies, func(g Geography) string { return g.ID })
	chartIndex     = indexBy(chartStyles, func(c ChartStyle) string { return c.ID })
)

func indexBy[T any](items []T, key func(T) string) map[string]int {
	idx := make(map[string]int, len(items))
	for i, item := range items {
		idx[key(item)] = i
	}
	return idx
}

// ListIndicators returns the selectable indicators in their fixed display order.
func ListIndicators() []Indicator {
	out := make([]Indicator, len(indicators))
	copy(out, indicators)
	return out
}

// ListGeographies returns the selectable geographies with the national entry first.
func ListGeographies() []Geography {
	out := make([]Geography, len(geographies))
	copy(out, geographies)
	return out
}

// ListChartStyles returns the chart styles in display order.
func ListChartStyles() []ChartStyle {
	out := make([]ChartStyle, len(chartStyles))
	copy(out, chartStyles)
	return out
}

// LookupIndicator finds an indicator by id.
func LookupIndicator(id string) (Indicator, bool) {
	i, ok := indicatorIndex[id]
	if !ok {
		return Indicator{}, false
	}
	return indicators[i], true
}

// LookupGeography finds a geography by id.
func LookupGeography(id string) (Geography, bool) {
	i, ok := geographyIndex[id]
	if !ok {
		return Geography{}, false
	}
	return geographies[i], true
}

// LookupChartStyle finds a chart style by id.
func LookupChartStyle(id string) (ChartStyle, bool) {
	i, ok := chartIndex[id]
	if !ok {
		return ChartStyle{}, false
	}
	return chartStyles[i], true
}

// IsNationalOnly reports whether the indicator publishes national figures only.
// Ids outside the catalog are checked too, since INEGI accepts free-form ids.
func IsNationalOnly(indicatorID string) bool {
	_, ok := nationalOnly[indicatorID]
	return ok
}

// National returns the national aggregate geography.
func National() Geography {
	return geographies[geographyIndex[NationalID]]
}

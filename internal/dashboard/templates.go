// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package dashboard

import (
	"html/template"

	"github.com/tomtom215/statdash/internal/stats"
)

// templateFuncs are the helpers available to the page template.
var templateFuncs = template.FuncMap{
	"formatValue": stats.FormatValue,
	"add":         func(a, b float64) float64 { return a + b },
}

// parsePage compiles the page template.
func parsePage() (*template.Template, error) {
	return template.New("page").Funcs(templateFuncs).Parse(pageTemplate)
}

const pageTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{if .Loading}}<meta http-equiv="refresh" content="2">{{end}}
<title>Indicadores INEGI</title>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f5f6f8;color:#1f2933}
header{background:#1f4e79;color:#fff;padding:1rem 2rem}
main{max-width:960px;margin:1.5rem auto;padding:0 1rem}
form.controls{display:flex;flex-wrap:wrap;gap:1rem;align-items:flex-end;background:#fff;padding:1rem;border-radius:6px}
label{display:flex;flex-direction:column;font-size:.85rem;gap:.25rem}
select,button{font-size:1rem;padding:.35rem .5rem}
.styles button[aria-pressed=true]{background:#1f4e79;color:#fff}
.panel{background:#fff;margin-top:1rem;padding:1rem;border-radius:6px}
.error{border-left:4px solid #c0392b}
.cards{display:grid;grid-template-columns:repeat(4,1fr);gap:.75rem;margin-top:1rem}
.card{background:#fff;border-radius:6px;padding:.75rem}
.card .value{font-size:1.4rem;font-weight:600}
.card .period{font-size:.8rem;color:#616e7c}
svg text{font-size:11px;fill:#616e7c}
</style>
</head>
<body>
<header><h1>Indicadores INEGI</h1></header>
<main>
<form class="controls" method="post" action="{{.Base}}select">
  <label>Indicador
    <select name="indicator">
    {{range .Groups}}<optgroup label="{{.Category}}">
      {{range .Indicators}}<option value="{{.ID}}"{{if eq .ID $.State.IndicatorID}} selected{{end}}>{{.Label}}</option>
      {{end}}</optgroup>
    {{end}}</select>
  </label>
  <label>Área geográfica
    <select name="geography"{{if .NationalOnly}} disabled{{end}}>
    {{range .Geographies}}<option value="{{.ID}}"{{if eq .ID $.State.GeographyID}} selected{{end}}>{{.Label}}</option>
    {{end}}</select>
  </label>
  <button type="submit">Aplicar</button>
</form>

<form class="controls styles" method="post" action="{{.Base}}select">
  {{range .ChartStyles}}<button type="submit" name="chart" value="{{.ID}}" aria-pressed="{{if eq .ID $.State.ChartStyle}}true{{else}}false{{end}}">{{.Label}}</button>
  {{end}}
</form>

<form class="controls" method="post" action="{{.Base}}submit">
  <button type="submit"{{if .Loading}} disabled{{end}}>{{if .Loading}}Cargando...{{else}}Consultar datos{{end}}</button>
</form>

{{if .Loading}}
<section class="panel"><p>Consultando API del INEGI...</p></section>
{{else if .Failed}}
<section class="panel error">
  <p><strong>Error al obtener datos</strong></p>
  <p>{{.State.Message}}</p>
  <form method="post" action="{{.Base}}submit"><button type="submit">Intentar de nuevo</button></form>
</section>
{{else if .View}}
<section class="panel">
  <h2>{{.View.IndicatorLabel}} · {{.View.GeographyLabel}}</h2>
  <p>{{.View.Summary.Count}} períodos disponibles{{if .View.Unit}} · {{.View.Unit}}{{end}}</p>
  {{with .Chart}}
  <svg viewBox="0 0 {{.Width}} {{.Height}}" role="img" aria-label="{{$.View.IndicatorLabel}}">
    {{range .YTicks}}<line x1="{{$.Chart.Left}}" x2="{{$.Chart.Right}}" y1="{{.Pos}}" y2="{{.Pos}}" stroke="#e4e7eb"/>
    <text x="{{add $.Chart.Left -6}}" y="{{.Pos}}" text-anchor="end" dominant-baseline="middle">{{.Label}}</text>
    {{end}}
    {{range .XLabels}}<text x="{{.Pos}}" y="{{add $.Chart.Bottom 18}}" text-anchor="middle">{{.Label}}</text>
    {{end}}
    {{if .Area}}<polygon points="{{.Area}}" fill="#1f4e79" fill-opacity="0.25"/>{{end}}
    {{if .Line}}<polyline points="{{.Line}}" fill="none" stroke="#1f4e79" stroke-width="2"/>{{end}}
    {{range .Bars}}<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="#1f4e79"><title>{{.Title}}</title></rect>
    {{end}}
  </svg>
  {{end}}
</section>
<section class="cards">
  {{range .Cards}}<div class="card">
    <div>{{.Label}}</div>
    <div class="value">{{formatValue .Value}}</div>
    <div class="period">{{.Period}}</div>
  </div>
  {{end}}
</section>
{{else}}
<section class="panel"><p>Selecciona un indicador y haz clic en &#34;Consultar datos&#34;</p></section>
{{end}}
<p>Datos obtenidos del <a href="https://www.inegi.org.mx/servicios/api_biinegi.html" rel="noopener noreferrer">Banco de Información Económica del INEGI</a></p>
</main>
</body>
</html>
`

// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/statdash/internal/catalog"
	"github.com/tomtom215/statdash/internal/config"
	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/models"
	"github.com/tomtom215/statdash/internal/query"
)

// Handler renders the dashboard and owns its sessions.
type Handler struct {
	fetcher      query.Fetcher
	sessions     SessionStore
	page         *template.Template
	base         string
	cookieName   string
	cookieSecure bool
	ttl          time.Duration
}

// New creates the dashboard handler. base is the path the handler is mounted
// at and is used for form actions and redirects.
func New(cfg config.SessionConfig, base string, fetcher query.Fetcher, sessions SessionStore) (*Handler, error) {
	page, err := parsePage()
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Handler{
		fetcher:      fetcher,
		sessions:     sessions,
		page:         page,
		base:         base,
		cookieName:   cfg.CookieName,
		cookieSecure: cfg.CookieSecure,
		ttl:          cfg.TTL,
	}, nil
}

// Routes returns the dashboard routes.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Page)
	r.Post("/select", h.Select)
	r.Post("/submit", h.Submit)
	return r
}

// card is one summary statistic below the chart.
type card struct {
	Label  string
	Value  float64
	Period string
}

type pageData struct {
	Base         string
	Groups       []catalog.CategoryGroup
	Geographies  []catalog.Geography
	ChartStyles  []catalog.ChartStyle
	State        query.State
	NationalOnly bool
	Loading      bool
	Failed       bool
	View         *models.SeriesView
	Chart        *Chart
	Cards        []card
}

func (h *Handler) buildPage(state query.State) pageData {
	data := pageData{
		Base:         h.base,
		Groups:       catalog.IndicatorsByCategory(),
		Geographies:  catalog.ListGeographies(),
		ChartStyles:  catalog.ListChartStyles(),
		State:        state,
		NationalOnly: state.NationalOnly(),
		Loading:      state.Phase == query.PhaseLoading,
		Failed:       state.Phase == query.PhaseError,
	}

	view, ok := query.Present(state)
	if !ok {
		return data
	}
	data.View = &view
	data.Chart = buildChart(view.Points, view.ChartStyle)
	data.Cards = []card{
		{Label: "Último valor", Value: view.Summary.Last.Value, Period: view.Summary.Last.Period},
		{Label: "Primer valor", Value: view.Summary.First.Value, Period: view.Summary.First.Period},
		{Label: "Máximo", Value: view.Summary.Max.Value, Period: view.Summary.Max.Period},
		{Label: "Mínimo", Value: view.Summary.Min.Value, Period: view.Summary.Min.Period},
	}
	return data
}

// Page renders the dashboard for the caller's session.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctrl := h.controller(w, r)

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, h.buildPage(ctrl.State())); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render dashboard")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(buf.Bytes())
}

// Select applies whichever of indicator, geography and chart the form sent.
// The indicator goes first so a national-only pick wins over a regional
// geography in the same form.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	ctrl := h.controller(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if id := strings.TrimSpace(r.PostForm.Get("indicator")); id != "" {
		ctrl.Dispatch(query.SelectIndicator{ID: id})
	}
	if id := strings.TrimSpace(r.PostForm.Get("geography")); id != "" {
		ctrl.Dispatch(query.SelectGeography{ID: id})
	}
	if id := strings.TrimSpace(r.PostForm.Get("chart")); id != "" {
		ctrl.Dispatch(query.SelectChartStyle{ID: id})
	}

	http.Redirect(w, r, h.base, http.StatusSeeOther)
}

// Submit runs a query for the session's current selection.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl := h.controller(w, r)
	state := ctrl.Submit(r.Context())

	logging.Ctx(r.Context()).Info().
		Str("indicator", state.IndicatorID).
		Str("geography", state.GeographyID).
		Str("phase", string(state.Phase)).
		Msg("Dashboard query submitted")

	http.Redirect(w, r, h.base, http.StatusSeeOther)
}

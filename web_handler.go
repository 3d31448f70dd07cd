package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/opendata_analyzer/domain/models"
	"github.com/pivolan/opendata_analyzer/plot"
)

// WebHandler is the thin presentation layer over the analyzer. It does
// no aggregation of its own, every endpoint is a view of Dashboard().
type WebHandler struct {
	analyzer *Analyzer
}

func NewWebHandler(analyzer *Analyzer) *WebHandler {
	return &WebHandler{analyzer: analyzer}
}

func (h *WebHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/dashboard", h.handleDashboard)
	mux.HandleFunc("/api/load-more", h.handleLoadMore)
	mux.HandleFunc("/dashboard.txt", h.handleDashboardText)
	mux.HandleFunc("/charts", h.handleCharts)
	mux.HandleFunc("/charts/series.png", h.handleSeriesPNG)
	mux.HandleFunc("/charts/histogram.png", h.handleHistogramPNG)
}

// dashboardFromRequest applies explicit column choices, if any, then
// recomputes the views for the query and group filter.
func (h *WebHandler) dashboardFromRequest(r *http.Request) (models.Dashboard, error) {
	q := r.URL.Query()
	err := h.analyzer.SelectColumns(
		q.Get("group_col"), q.Get("metric_col"), q.Get("date_col"))
	if err != nil {
		return models.Dashboard{}, err
	}
	return h.analyzer.Dashboard(q.Get("q"), q.Get("group")), nil
}

func (h *WebHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dashboard); err != nil {
		log.Printf("Error encoding dashboard: %v", err)
	}
}

func (h *WebHandler) handleLoadMore(w http.ResponseWriter, r *http.Request) {
	switch err := h.analyzer.LoadMore(r.Context()); err {
	case nil:
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "page loaded")
	case ErrLoadInProgress:
		http.Error(w, err.Error(), http.StatusConflict)
	case ErrNoMorePages:
		w.WriteHeader(http.StatusNoContent)
	default:
		// rows already loaded are kept, only this attempt failed
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}

func (h *WebHandler) handleDashboardText(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sections := []string{
		GenerateRankingTable("Latest by group", dashboard.Ranking),
		GenerateStatsTable(dashboard.Stats),
		GenerateRankingTable("Top group averages", dashboard.Top),
		GenerateRankingTable("Bottom group averages", dashboard.Bottom),
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, strings.Join(sections, "\n\n"))
}

// handleCharts renders an interactive page with the daily series and
// the histogram.
func (h *WebHandler) handleCharts(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "Daily " + dashboard.MetricColumn,
	}))
	days := make([]string, 0, len(dashboard.Series))
	values := make([]opts.LineData, 0, len(dashboard.Series))
	averages := make([]opts.LineData, 0, len(dashboard.Series))
	for _, point := range dashboard.Series {
		days = append(days, point.Date)
		values = append(values, opts.LineData{Value: point.Value})
		if point.MovingAverage != nil {
			averages = append(averages, opts.LineData{Value: *point.MovingAverage})
		} else {
			averages = append(averages, opts.LineData{Value: "-"})
		}
	}
	line.SetXAxis(days).
		AddSeries(dashboard.MetricColumn, values).
		AddSeries("7-point average", averages)

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "Distribution of " + dashboard.MetricColumn,
	}))
	labels := make([]string, 0, len(dashboard.Histogram))
	counts := make([]opts.BarData, 0, len(dashboard.Histogram))
	for _, bucket := range dashboard.Histogram {
		labels = append(labels, bucket.RangeLabel)
		counts = append(counts, opts.BarData{Value: bucket.Count})
	}
	bar.SetXAxis(labels).AddSeries("rows", counts)

	page := components.NewPage()
	page.AddCharts(line, bar)
	if err := page.Render(w); err != nil {
		log.Printf("Error rendering charts page: %v", err)
	}
}

func (h *WebHandler) handleSeriesPNG(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	png, err := plot.DrawDailySeries(dashboard.Series)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *WebHandler) handleHistogramPNG(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	png, err := plot.DrawHistogram(dashboard.Histogram)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

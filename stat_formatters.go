package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/opendata_analyzer/domain/models"
)

// FormatMetric renders a metric value by magnitude:
//
//	>= 1000  grouped thousands, at most 1 decimal
//	>= 100   no decimals
//	>= 10    1 decimal
//	else     2 decimals
//
// Display layers rely on this exact output, it is covered by golden
// tests and must not drift.
func FormatMetric(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1000:
		s := strconv.FormatFloat(v, 'f', 1, 64)
		s = strings.TrimSuffix(s, ".0")
		return groupThousands(s)
	case abs >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case abs >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// groupThousands inserts comma separators into the integer part of an
// already formatted decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	return sign + b.String() + frac
}

// GenerateRankingTable renders {label, value} entries as a text table
// with a plain title line above it.
func GenerateRankingTable(title string, entries []models.RankingEntry) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Label", "Value"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Label, FormatMetric(e.Value)})
	}
	t.SetStyle(table.StyleDefault)
	return title + "\n" + t.Render()
}

// GenerateStatsTable renders the summary statistics as a text table.
func GenerateStatsTable(stats models.SummaryStats) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Count", "Min", "Max", "Mean", "Median", "P95"})
	t.AppendRow(table.Row{
		stats.Count,
		FormatMetric(stats.Min),
		FormatMetric(stats.Max),
		FormatMetric(stats.Mean),
		FormatMetric(stats.Median),
		FormatMetric(stats.P95),
	})
	t.SetStyle(table.StyleDefault)
	return "Summary\n" + t.Render()
}

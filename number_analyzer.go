// number_analyzer.go
package main

import (
	"sort"

	"github.com/pivolan/opendata_analyzer/domain/models"
)

const topBottomLimit = 5

// SummarizeMetric computes count/min/max/mean/median/p95 over every
// coercible metric value in the filtered set. No coercible values means
// an all-zero result with Count 0, never a failure.
func SummarizeMetric(rows []Row, metricCol string) models.SummaryStats {
	values := collectMetricValues(rows, metricCol)
	if len(values) == 0 {
		return models.SummaryStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	n := len(sorted)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	// nearest-rank percentile, no interpolation
	p95Index := int(float64(n) * 0.95)
	if p95Index > n-1 {
		p95Index = n - 1
	}

	return models.SummaryStats{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   sum / float64(n),
		Median: median,
		P95:    sorted[p95Index],
	}
}

// TopBottomGroups averages the metric per group and returns the five
// highest and five lowest group means. The bottom list leads with the
// lowest value, so both lists start with their most extreme entry.
func TopBottomGroups(rows []Row, groupCol, metricCol, displayCol string) (top, bottom []models.RankingEntry) {
	if groupCol == "" || metricCol == "" {
		return nil, nil
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	names := map[string]string{}
	order := []string{}
	for _, row := range rows {
		key, ok := stringField(row[groupCol])
		if !ok {
			continue
		}
		value, ok := toFloat(row[metricCol])
		if !ok {
			continue
		}
		if counts[key] == 0 {
			order = append(order, key)
		}
		sums[key] += value
		counts[key]++
		if displayCol != "" {
			if _, cached := names[key]; !cached {
				if name, ok := stringField(row[displayCol]); ok {
					names[key] = name
				}
			}
		}
	}
	if len(order) == 0 {
		return nil, nil
	}

	entries := make([]models.RankingEntry, 0, len(order))
	for _, key := range order {
		label := key
		if name, ok := names[key]; ok {
			label = name
		}
		entries = append(entries, models.RankingEntry{
			Label: label,
			Value: sums[key] / float64(counts[key]),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	topN := topBottomLimit
	if topN > len(entries) {
		topN = len(entries)
	}
	top = append(top, entries[:topN]...)

	bottomN := topBottomLimit
	if bottomN > len(entries) {
		bottomN = len(entries)
	}
	tail := entries[len(entries)-bottomN:]
	bottom = make([]models.RankingEntry, 0, bottomN)
	for i := len(tail) - 1; i >= 0; i-- {
		bottom = append(bottom, tail[i])
	}
	return top, bottom
}

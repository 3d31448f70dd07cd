// histogram_analyzer.go
package main

import (
	"github.com/pivolan/opendata_analyzer/domain/models"
)

const histogramBuckets = 20

// BuildHistogram splits the coercible metric values of the filtered set
// into fixed-width buckets spanning [min, max]. When all values are
// equal the width degenerates to 1 so everything lands in bucket 0.
// The maximum value itself is clamped into the last bucket instead of
// overflowing past it.
func BuildHistogram(rows []Row, metricCol string) []models.HistogramBucket {
	if metricCol == "" {
		return nil
	}
	values := collectMetricValues(rows, metricCol)
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	width := (max - min) / histogramBuckets
	if width == 0 {
		width = 1
	}

	counts := make([]int, histogramBuckets)
	for _, v := range values {
		idx := int((v - min) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= histogramBuckets {
			idx = histogramBuckets - 1
		}
		counts[idx]++
	}

	buckets := make([]models.HistogramBucket, histogramBuckets)
	for i := range buckets {
		start := min + float64(i)*width
		end := start + width
		buckets[i] = models.HistogramBucket{
			RangeLabel: FormatMetric(start) + "–" + FormatMetric(end),
			Count:      counts[i],
		}
	}
	return buckets
}

// collectMetricValues extracts every coercible metric value in row
// order. Rows where the metric is absent or non-numeric are skipped
// silently, coercion failures never abort an aggregation.
func collectMetricValues(rows []Row, metricCol string) []float64 {
	values := []float64{}
	for _, row := range rows {
		if v, ok := toFloat(row[metricCol]); ok {
			values = append(values, v)
		}
	}
	return values
}

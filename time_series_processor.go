// time_series_processor.go
package main

import (
	"sort"

	"github.com/pivolan/opendata_analyzer/domain/models"
)

// movingAverageWindow is the trailing window of the daily series
// smoothing, counted in present points, not calendar days. A week with
// missing days still averages the 7 most recent points.
const movingAverageWindow = 7

// DailySeries buckets the metric by calendar day and attaches a trailing
// moving average. A missing date column yields an empty series. When
// groupValue is non-empty only rows whose group column equals it exactly
// contribute. Two rows on the same day keep the later processed value
// (last write wins, values are not averaged within a day).
func DailySeries(rows []Row, metricCol, dateCol, groupCol, groupValue string) []models.SeriesPoint {
	if metricCol == "" || dateCol == "" {
		return nil
	}

	byDay := map[string]float64{}
	for _, row := range rows {
		if groupValue != "" {
			id, ok := stringField(row[groupCol])
			if !ok || id != groupValue {
				continue
			}
		}
		s, ok := stringField(row[dateCol])
		if !ok {
			continue
		}
		t, ok := tryParseDateTime(s)
		if !ok {
			continue
		}
		value, ok := toFloat(row[metricCol])
		if !ok {
			continue
		}
		byDay[t.Format("2006-01-02")] = value
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	// canonical YYYY-MM-DD sorts chronologically
	sort.Strings(days)

	points := make([]models.SeriesPoint, 0, len(days))
	var windowSum float64
	for i, day := range days {
		value := byDay[day]
		point := models.SeriesPoint{Date: day, Value: value}
		windowSum += value
		if i >= movingAverageWindow {
			windowSum -= byDay[days[i-movingAverageWindow]]
		}
		if i >= movingAverageWindow-1 {
			avg := windowSum / movingAverageWindow
			point.MovingAverage = &avg
		}
		points = append(points, point)
	}
	return points
}

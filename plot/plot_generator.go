package plot

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/mozillazg/go-unidecode"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pivolan/opendata_analyzer/domain/models"
)

var ErrNoData = errors.New("no data points to draw")

// DrawDailySeries renders the daily metric series as a PNG line chart
// with the moving average overlaid where it is defined.
func DrawDailySeries(points []models.SeriesPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	xValues := make([]time.Time, 0, len(points))
	yValues := make([]float64, 0, len(points))
	avgX := []time.Time{}
	avgY := []float64{}
	for _, p := range points {
		day, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			continue
		}
		xValues = append(xValues, day)
		yValues = append(yValues, p.Value)
		if p.MovingAverage != nil {
			avgX = append(avgX, day)
			avgY = append(avgY, *p.MovingAverage)
		}
	}
	if len(xValues) == 0 {
		return nil, ErrNoData
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "value",
			XValues: xValues,
			YValues: yValues,
			Style: chart.Style{
				StrokeColor: drawing.ColorBlue,
				StrokeWidth: 2,
			},
		},
	}
	// the overlay needs at least two points to form a line
	if len(avgX) >= 2 {
		series = append(series, chart.TimeSeries{
			Name:    "7-point average",
			XValues: avgX,
			YValues: avgY,
			Style: chart.Style{
				StrokeColor: drawing.ColorRed,
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Title: "Daily values",
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  2048,
		Height: 1024,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.1f", vf)
				}
				return ""
			},
		},
		Series: series,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering time series chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// DrawHistogram renders the bucket counts as a PNG bar chart. Bucket
// labels are transliterated to ASCII before drawing.
func DrawHistogram(buckets []models.HistogramBucket) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, ErrNoData
	}

	var bars []chart.Value
	for _, bucket := range buckets {
		bars = append(bars, chart.Value{
			Value: float64(bucket.Count),
			Label: unidecode.Unidecode(bucket.RangeLabel),
			Style: chart.Style{
				FillColor: drawing.ColorLime.WithAlpha(40),
			},
		})
	}

	graph := chart.BarChart{
		Title: "Distribution Histogram",
		Background: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorBlue,
		},
		Height:   1024,
		Width:    2048,
		BarWidth: 30,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Frequency",
		},
	}
	graph.Background.StrokeWidth = 1
	graph.Background.StrokeColor = drawing.ColorFromHex("efefef")

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

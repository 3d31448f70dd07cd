package models

// RankingEntry is one row of the latest-value ranking and of the
// top/bottom group-average lists.
type RankingEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SeriesPoint is one calendar day of the metric time series.
// MovingAverage stays nil until a full trailing window of points exists.
type SeriesPoint struct {
	Date          string   `json:"date"`
	Value         float64  `json:"value"`
	MovingAverage *float64 `json:"movingAverage,omitempty"`
}

// HistogramBucket is one fixed-width bucket of the metric histogram.
type HistogramBucket struct {
	RangeLabel string `json:"rangeLabel"`
	Count      int    `json:"count"`
}

// SummaryStats holds summary statistics over all coercible metric values
// in the filtered set. Every field is zero when nothing coerces.
type SummaryStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
}

// GroupOption is one selectable group value, ordered by row frequency.
// An empty ID on the consumer side means "All" and bypasses group
// filtering.
type GroupOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Dashboard bundles every derived view computed from one snapshot of
// rows plus the query and group filter that produced it.
type Dashboard struct {
	SnapshotID string `json:"snapshotId"`
	RowCount   int    `json:"rowCount"`
	Query      string `json:"query,omitempty"`
	Group      string `json:"group,omitempty"`

	GroupColumn   string `json:"groupColumn,omitempty"`
	MetricColumn  string `json:"metricColumn,omitempty"`
	DateColumn    string `json:"dateColumn,omitempty"`
	DisplayColumn string `json:"displayColumn,omitempty"`

	Ranking   []RankingEntry    `json:"ranking"`
	Groups    []GroupOption     `json:"groups"`
	Series    []SeriesPoint     `json:"series"`
	Histogram []HistogramBucket `json:"histogram"`
	Stats     SummaryStats      `json:"stats"`
	Top       []RankingEntry    `json:"top"`
	Bottom    []RankingEntry    `json:"bottom"`
}

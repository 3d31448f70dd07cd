// schema_selector.go
package main

import (
	"strings"
)

// Preference lists for default column selection. Matching is exact and
// case-insensitive, in list order. Open air-quality datasets motivated
// the metric names, but any dataset with a "value"-like column works.
var (
	groupColumnPreferences = []string{
		"country", "countryname", "region", "city", "state", "province",
		"station", "location", "site", "name",
	}
	metricColumnPreferences = []string{
		"aqi", "pm25", "pm2_5", "pm10", "no2", "so2", "o3", "co",
		"value", "score", "measurement",
	}
	dateColumnPreferences = []string{
		"date", "datetime", "timestamp", "time", "measured_at",
		"updated_at", "last_updated",
	}
	displayColumnPreferences = []string{
		"name", "label", "title", "station_name", "display_name", "city",
	}
)

// ColumnSelection holds the group/metric/date column choices plus the
// best-effort display-name column. An empty string means "not selected
// yet": a slot is written at most once, either by the user or by
// ApplyDefaults, and later default passes leave it alone.
type ColumnSelection struct {
	Group   string
	Metric  string
	Date    string
	Display string
}

// ApplyDefaults fills the slots that are still unset from the classified
// columns. Calling it again with a changed row set never overwrites an
// existing choice.
func (sel *ColumnSelection) ApplyDefaults(classes ColumnClasses) {
	if sel.Group == "" {
		sel.Group = pickPreferred(classes.StringLike, groupColumnPreferences)
	}
	if sel.Metric == "" {
		sel.Metric = pickPreferred(classes.NumericLike, metricColumnPreferences)
	}
	if sel.Date == "" {
		// may stay empty, not every dataset has a usable date column
		sel.Date = pickPreferred(classes.DateLike, dateColumnPreferences)
	}
	if sel.Display == "" {
		sel.Display = resolveDisplayColumn(classes)
	}
}

// resolveDisplayColumn picks a column for label prettification. It is
// independent of the group/metric/date slots and allowed to be empty.
func resolveDisplayColumn(classes ColumnClasses) string {
	for _, preferred := range displayColumnPreferences {
		for _, column := range classes.StringLike {
			if strings.EqualFold(column, preferred) {
				return column
			}
		}
	}
	return ""
}

// pickPreferred returns the first preference-list hit, else the first
// classified column, else "".
func pickPreferred(columns []string, preferences []string) string {
	for _, preferred := range preferences {
		for _, column := range columns {
			if strings.EqualFold(column, preferred) {
				return column
			}
		}
	}
	if len(columns) > 0 {
		return columns[0]
	}
	return ""
}

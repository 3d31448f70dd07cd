// row.go
package main

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Row is one record of an open dataset: column name -> value of unknown
// shape (absent, number, string or anything else the JSON held). Rows do
// not share a uniform key set.
type Row map[string]interface{}

// ObservedColumns returns the union of keys across all rows, ordered by
// the row that introduced them. Keys introduced by the same row are
// sorted alphabetically, map iteration order would not be stable.
func ObservedColumns(rows []Row) []string {
	seen := map[string]bool{}
	columns := []string{}
	for _, row := range rows {
		added := []string{}
		for key := range row {
			if !seen[key] {
				seen[key] = true
				added = append(added, key)
			}
		}
		sort.Strings(added)
		columns = append(columns, added...)
	}
	return columns
}

// toFloat coerces a value to a finite float64. Numbers pass through,
// numeric strings are parsed, everything else fails. This single rule is
// shared by the classifier and every aggregator.
func toFloat(value interface{}) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// stringField returns the value as a non-empty string, if it is one.
func stringField(value interface{}) (string, bool) {
	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
}

// tryParseDateTime parses a calendar date/time in any of the formats
// open datasets commonly ship. Purely numeric strings never qualify, so
// numeric columns are not mistaken for date columns.
func tryParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

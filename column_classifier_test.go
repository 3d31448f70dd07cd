package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowsWithDates(n int, extra ...Row) []Row {
	rows := []Row{}
	for i := 0; i < n; i++ {
		rows = append(rows, Row{
			"city":       "Paris",
			"aqi":        fmt.Sprintf("%d", 40+i),
			"measured":   fmt.Sprintf("2024-01-%02d", i+1),
			"station_id": float64(100 + i),
		})
	}
	return append(rows, extra...)
}

func TestClassifyColumns(t *testing.T) {
	rows := rowsWithDates(6)
	classes := ClassifyColumns(rows, ObservedColumns(rows))

	assert.Contains(t, classes.StringLike, "city")
	assert.Contains(t, classes.StringLike, "aqi")
	assert.Contains(t, classes.StringLike, "measured")
	assert.NotContains(t, classes.StringLike, "station_id")

	// numeric strings coerce, so "aqi" is numeric-like too
	assert.Contains(t, classes.NumericLike, "aqi")
	assert.Contains(t, classes.NumericLike, "station_id")
	assert.NotContains(t, classes.NumericLike, "city")

	assert.Equal(t, []string{"measured"}, classes.DateLike)
}

func TestClassifyColumnsDateThreshold(t *testing.T) {
	// 5 parsable dates are below the threshold, 6 qualify
	rows := rowsWithDates(5)
	classes := ClassifyColumns(rows, ObservedColumns(rows))
	assert.Empty(t, classes.DateLike)

	rows = rowsWithDates(6)
	classes = ClassifyColumns(rows, ObservedColumns(rows))
	assert.Equal(t, []string{"measured"}, classes.DateLike)
}

func TestClassifyColumnsNumericStringsAreNotDates(t *testing.T) {
	rows := []Row{}
	for i := 0; i < 10; i++ {
		rows = append(rows, Row{"code": fmt.Sprintf("%d", 20240100+i)})
	}
	classes := ClassifyColumns(rows, ObservedColumns(rows))
	assert.Empty(t, classes.DateLike)
	assert.Contains(t, classes.NumericLike, "code")
}

func TestClassifyColumnsMultiClass(t *testing.T) {
	// a string column of dates is string-like and date-like at once
	rows := rowsWithDates(8)
	classes := ClassifyColumns(rows, ObservedColumns(rows))
	assert.Contains(t, classes.StringLike, "measured")
	assert.Contains(t, classes.DateLike, "measured")
}

func TestClassifyColumnsSkipsAbsentAndOddValues(t *testing.T) {
	rows := []Row{
		{"a": nil, "b": []interface{}{1, 2}},
		{"a": "x"},
		{},
	}
	classes := ClassifyColumns(rows, ObservedColumns(rows))
	assert.Equal(t, []string{"a"}, classes.StringLike)
	assert.Empty(t, classes.NumericLike)
	assert.Empty(t, classes.DateLike)
}

// every numeric-like column must hold at least one coercible value
func TestCoercionTotality(t *testing.T) {
	rows := rowsWithDates(6, Row{"mixed": "abc"}, Row{"mixed": "15.5"})
	columns := ObservedColumns(rows)
	classes := ClassifyColumns(rows, columns)

	for _, column := range classes.NumericLike {
		found := false
		for _, row := range rows {
			if _, ok := toFloat(row[column]); ok {
				found = true
				break
			}
		}
		assert.True(t, found, "column %s has no coercible value", column)
	}
}

func TestObservedColumnsUnionOrder(t *testing.T) {
	rows := []Row{
		{"b": 1, "a": 2},
		{"c": 3, "a": 4},
	}
	assert.Equal(t, []string{"a", "b", "c"}, ObservedColumns(rows))
}

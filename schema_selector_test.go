package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaultsPreferenceLists(t *testing.T) {
	classes := ColumnClasses{
		StringLike:  []string{"station_code", "City", "comment"},
		NumericLike: []string{"reading_id", "PM25"},
		DateLike:    []string{"Last_Updated"},
	}

	sel := ColumnSelection{}
	sel.ApplyDefaults(classes)

	// matches are exact but case-insensitive
	assert.Equal(t, "City", sel.Group)
	assert.Equal(t, "PM25", sel.Metric)
	assert.Equal(t, "Last_Updated", sel.Date)
	assert.Equal(t, "City", sel.Display)
}

func TestApplyDefaultsFallbackToFirst(t *testing.T) {
	classes := ColumnClasses{
		StringLike:  []string{"station_code", "comment"},
		NumericLike: []string{"reading_id", "concentration"},
	}

	sel := ColumnSelection{}
	sel.ApplyDefaults(classes)

	assert.Equal(t, "station_code", sel.Group)
	assert.Equal(t, "reading_id", sel.Metric)
	// no date-like columns, no display preference hit
	assert.Equal(t, "", sel.Date)
	assert.Equal(t, "", sel.Display)
}

func TestApplyDefaultsNeverOverwrites(t *testing.T) {
	classes := ColumnClasses{
		StringLike:  []string{"country", "name"},
		NumericLike: []string{"value"},
		DateLike:    []string{"date"},
	}

	sel := ColumnSelection{Group: "custom_group", Metric: "custom_metric"}
	sel.ApplyDefaults(classes)
	assert.Equal(t, "custom_group", sel.Group)
	assert.Equal(t, "custom_metric", sel.Metric)
	assert.Equal(t, "date", sel.Date)

	// a second pass over a changed row set is a no-op for set slots
	changed := ColumnClasses{
		StringLike:  []string{"region"},
		NumericLike: []string{"score"},
		DateLike:    []string{"timestamp"},
	}
	before := sel
	sel.ApplyDefaults(changed)
	assert.Equal(t, before, sel)
}

func TestApplyDefaultsEmptyClasses(t *testing.T) {
	sel := ColumnSelection{}
	sel.ApplyDefaults(ColumnClasses{})
	assert.Equal(t, ColumnSelection{}, sel)
}

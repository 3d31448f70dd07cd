package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/opendata_analyzer/domain/models"
)

func TestLatestByGroup(t *testing.T) {
	rows := []Row{
		{"city": "A", "value": 10.0, "date": "2024-01-01"},
		{"city": "A", "value": 20.0, "date": "2024-01-02"},
		{"city": "B", "value": 5.0, "date": "2024-01-01"},
	}

	got := LatestByGroup(rows, "city", "value", "date", "")
	assert.Equal(t, []models.RankingEntry{
		{Label: "A", Value: 20},
		{Label: "B", Value: 5},
	}, got)
}

func TestLatestByGroupTieGoesToLaterRow(t *testing.T) {
	rows := []Row{
		{"city": "A", "value": 10.0, "date": "2024-01-01"},
		{"city": "A", "value": 30.0, "date": "2024-01-01"},
	}
	got := LatestByGroup(rows, "city", "value", "date", "")
	assert.Equal(t, 30.0, got[0].Value)
}

func TestLatestByGroupWithoutDateColumn(t *testing.T) {
	// without a date column every row has recency 0 and the last
	// processed row wins
	rows := []Row{
		{"city": "A", "value": 10.0},
		{"city": "A", "value": 7.0},
	}
	got := LatestByGroup(rows, "city", "value", "", "")
	assert.Equal(t, 7.0, got[0].Value)
}

func TestLatestByGroupDisplayNames(t *testing.T) {
	rows := []Row{
		{"code": "FR", "value": 3.0, "name": ""},
		{"code": "FR", "value": 4.0, "name": "France"},
		{"code": "DE", "value": 9.0},
	}
	got := LatestByGroup(rows, "code", "value", "", "name")
	assert.Equal(t, []models.RankingEntry{
		{Label: "DE", Value: 9},
		{Label: "France", Value: 4},
	}, got)
}

func TestLatestByGroupSkipsBadRows(t *testing.T) {
	rows := []Row{
		{"city": "", "value": 1.0},
		{"city": "A", "value": "not a number"},
		{"city": "A", "value": "12.5", "date": "garbage"},
	}
	got := LatestByGroup(rows, "city", "value", "date", "")
	// unparsable dates degrade to timestamp 0, coercion failures skip
	assert.Equal(t, []models.RankingEntry{{Label: "A", Value: 12.5}}, got)
}

func TestLatestByGroupLimit(t *testing.T) {
	rows := []Row{}
	for i := 0; i < 25; i++ {
		rows = append(rows, Row{"city": fmt.Sprintf("c%02d", i), "value": float64(i)})
	}
	got := LatestByGroup(rows, "city", "value", "", "")
	assert.Len(t, got, rankingLimit)
	assert.Equal(t, 24.0, got[0].Value)
}

func TestEnumerateGroups(t *testing.T) {
	rows := []Row{
		{"city": "A", "label": "Alpha"},
		{"city": "B"},
		{"city": "B"},
		{"city": "C"},
		{"city": "B"},
		{"city": "C"},
	}
	got := EnumerateGroups(rows, "city", "label")
	assert.Equal(t, []models.GroupOption{
		{ID: "B", Name: "B"},
		{ID: "C", Name: "C"},
		{ID: "A", Name: "Alpha"},
	}, got)
}

func TestEnumerateGroupsLimit(t *testing.T) {
	rows := []Row{}
	for i := 0; i < 80; i++ {
		rows = append(rows, Row{"city": fmt.Sprintf("c%02d", i)})
	}
	got := EnumerateGroups(rows, "city", "")
	assert.Len(t, got, groupOptionsMax)
}

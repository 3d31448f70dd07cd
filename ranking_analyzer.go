// ranking_analyzer.go
package main

import (
	"sort"

	"github.com/pivolan/opendata_analyzer/domain/models"
)

const (
	rankingLimit    = 10
	groupOptionsMax = 50
)

// LatestByGroup ranks groups by the most recent metric reading. Recency
// comes from the date column when one is configured; without it every
// row carries timestamp 0 and the last processed row wins. Ties on equal
// timestamps also go to the later row (>= comparison).
func LatestByGroup(rows []Row, groupCol, metricCol, dateCol, displayCol string) []models.RankingEntry {
	if groupCol == "" || metricCol == "" {
		return nil
	}

	type latest struct {
		ts    int64
		value float64
	}
	latestByKey := map[string]latest{}
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
		var ts int64
		if dateCol != "" {
			if s, ok := stringField(row[dateCol]); ok {
				if t, ok := tryParseDateTime(s); ok {
					ts = t.Unix()
				}
			}
		}
		current, seen := latestByKey[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || ts >= current.ts {
			latestByKey[key] = latest{ts: ts, value: value}
		}
		if displayCol != "" {
			if _, cached := names[key]; !cached {
				if name, ok := stringField(row[displayCol]); ok {
					names[key] = name
				}
			}
		}
	}

	entries := make([]models.RankingEntry, 0, len(order))
	for _, key := range order {
		label := key
		if name, ok := names[key]; ok {
			label = name
		}
		entries = append(entries, models.RankingEntry{Label: label, Value: latestByKey[key].value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > rankingLimit {
		entries = entries[:rankingLimit]
	}
	return entries
}

// EnumerateGroups lists the distinct group values of the filtered set,
// most frequent first, for the group selector. The "All" sentinel that
// bypasses group filtering is the consumer's empty choice, it is not an
// entry here.
func EnumerateGroups(rows []Row, groupCol, displayCol string) []models.GroupOption {
	if groupCol == "" {
		return nil
	}

	counts := map[string]int{}
	names := map[string]string{}
	order := []string{}
	for _, row := range rows {
		id, ok := stringField(row[groupCol])
		if !ok {
			continue
		}
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
		if displayCol != "" {
			if _, cached := names[id]; !cached {
				if name, ok := stringField(row[displayCol]); ok {
					names[id] = name
				}
			}
		}
	}

	options := make([]models.GroupOption, 0, len(order))
	for _, id := range order {
		name := id
		if n, ok := names[id]; ok {
			name = n
		}
		options = append(options, models.GroupOption{ID: id, Name: name})
	}
	// stable: equal counts keep first-encounter order
	sort.SliceStable(options, func(i, j int) bool {
		return counts[options[i].ID] > counts[options[j].ID]
	})
	if len(options) > groupOptionsMax {
		options = options[:groupOptionsMax]
	}
	return options
}

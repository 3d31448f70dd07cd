// row_filter.go
package main

import "strings"

// FilterRows keeps the rows where any string-valued field contains the
// query as a case-insensitive substring. An empty or whitespace-only
// query is the identity filter, the full set comes back unchanged.
func FilterRows(rows []Row, query string) []Row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	filtered := []Row{}
	for _, row := range rows {
		if rowMatches(row, query) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func rowMatches(row Row, loweredQuery string) bool {
	for _, value := range row {
		if s, ok := value.(string); ok {
			if strings.Contains(strings.ToLower(s), loweredQuery) {
				return true
			}
		}
	}
	return false
}

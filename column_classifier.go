// column_classifier.go
package main

// dateLikeThreshold is the number of rows with parsable non-numeric date
// strings a column needs before it counts as date-like. A handful of
// accidental matches in a free-form text column should not qualify it.
const dateLikeThreshold = 6

// ColumnClasses lists the observed columns by kind. Classification is
// advisory, not a partition: one column may appear in all three lists
// (a string column of dates is both string-like and date-like).
type ColumnClasses struct {
	StringLike  []string
	NumericLike []string
	DateLike    []string
}

// ClassifyColumns inspects the whole row set and classifies every
// observed column.
//
//   - numeric-like: at least one row coerces to a finite number
//   - string-like: at least one row holds a non-empty string
//   - date-like: at least dateLikeThreshold rows hold a string that is
//     not purely numeric and parses as a calendar date/time
func ClassifyColumns(rows []Row, columns []string) ColumnClasses {
	classes := ColumnClasses{}
	for _, column := range columns {
		var isNumeric, isString bool
		dateHits := 0
		for _, row := range rows {
			value, ok := row[column]
			if !ok {
				continue
			}
			if !isNumeric {
				if _, ok := toFloat(value); ok {
					isNumeric = true
				}
			}
			s, ok := stringField(value)
			if !ok {
				continue
			}
			isString = true
			if dateHits < dateLikeThreshold {
				if _, ok := tryParseDateTime(s); ok {
					dateHits++
				}
			}
			if isNumeric && dateHits >= dateLikeThreshold {
				break
			}
		}
		if isString {
			classes.StringLike = append(classes.StringLike, column)
		}
		if isNumeric {
			classes.NumericLike = append(classes.NumericLike, column)
		}
		if dateHits >= dateLikeThreshold {
			classes.DateLike = append(classes.DateLike, column)
		}
	}
	return classes
}

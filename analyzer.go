// analyzer.go
package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pivolan/go_utils"
	uuid "github.com/satori/go.uuid"

	"github.com/pivolan/opendata_analyzer/domain/models"
)

var (
	ErrLoadInProgress = errors.New("a page load is already in flight")
	ErrNoMorePages    = errors.New("no more pages")
)

// Analyzer owns the row snapshot and the column selections, and derives
// every analytical view from them. Aggregations are pure and synchronous;
// the only asynchronous operation is loading the next page, serialized
// through a single in-flight guard.
type Analyzer struct {
	fetcher *DatasetFetcher

	mu         sync.RWMutex
	inFlight   bool
	hasMore    bool
	offset     int
	rows       []Row
	columns    []string
	classes    ColumnClasses
	selection  ColumnSelection
	snapshotID string
}

func NewAnalyzer(fetcher *DatasetFetcher) *Analyzer {
	return &Analyzer{fetcher: fetcher, hasMore: true}
}

// LoadMore fetches and appends exactly one page. It rejects overlapping
// requests and requests past the last known page. A result arriving
// after the caller's context was torn down is discarded, not applied.
func (a *Analyzer) LoadMore(ctx context.Context) error {
	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return ErrLoadInProgress
	}
	if !a.hasMore {
		a.mu.Unlock()
		return ErrNoMorePages
	}
	a.inFlight = true
	offset := a.offset
	a.mu.Unlock()

	rows, err := a.fetcher.FetchPage(ctx, offset)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.inFlight = false
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		// rows loaded so far stay usable after a failed "load more"
		return err
	}

	a.rows = append(a.rows, rows...)
	a.offset += len(rows)
	a.hasMore = len(rows) == a.fetcher.pageSize
	a.columns = ObservedColumns(a.rows)
	a.classes = ClassifyColumns(a.rows, a.columns)
	// fills only slots that are still unset
	a.selection.ApplyDefaults(a.classes)
	a.snapshotID = uuid.NewV4().String()
	return nil
}

// LoadAll keeps loading pages while they come back full.
func (a *Analyzer) LoadAll(ctx context.Context) error {
	for {
		switch err := a.LoadMore(ctx); err {
		case nil:
		case ErrNoMorePages:
			return nil
		default:
			return err
		}
	}
}

// HasMore reports whether another page is known to exist.
func (a *Analyzer) HasMore() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hasMore
}

// Loading reports whether a page fetch is outstanding.
func (a *Analyzer) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inFlight
}

// SelectColumns applies an explicit user choice for any of the three
// slots. Empty arguments leave a slot alone. A chosen column must be a
// member of the matching classified set.
func (a *Analyzer) SelectColumns(group, metric, date string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if group != "" {
		if !go_utils.InArray(group, a.classes.StringLike) {
			return fmt.Errorf("column %q is not string-like", group)
		}
		a.selection.Group = group
	}
	if metric != "" {
		if !go_utils.InArray(metric, a.classes.NumericLike) {
			return fmt.Errorf("column %q is not numeric-like", metric)
		}
		a.selection.Metric = metric
	}
	if date != "" {
		if !go_utils.InArray(date, a.classes.DateLike) {
			return fmt.Errorf("column %q is not date-like", date)
		}
		a.selection.Date = date
	}
	return nil
}

// Selection returns the current column choices.
func (a *Analyzer) Selection() ColumnSelection {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.selection
}

// Dashboard recomputes every derived view for the given free-text query
// and group filter. It reads an immutable snapshot under the lock and
// has no other state, so the same inputs always produce the same views.
func (a *Analyzer) Dashboard(query, group string) models.Dashboard {
	a.mu.RLock()
	defer a.mu.RUnlock()

	sel := a.selection
	filtered := FilterRows(a.rows, query)

	d := models.Dashboard{
		SnapshotID:    a.snapshotID,
		RowCount:      len(filtered),
		Query:         query,
		Group:         group,
		GroupColumn:   sel.Group,
		MetricColumn:  sel.Metric,
		DateColumn:    sel.Date,
		DisplayColumn: sel.Display,
		Ranking:       LatestByGroup(filtered, sel.Group, sel.Metric, sel.Date, sel.Display),
		Groups:        EnumerateGroups(filtered, sel.Group, sel.Display),
		Series:        DailySeries(filtered, sel.Metric, sel.Date, sel.Group, group),
		Histogram:     BuildHistogram(filtered, sel.Metric),
		Stats:         SummarizeMetric(filtered, sel.Metric),
	}
	d.Top, d.Bottom = TopBottomGroups(filtered, sel.Group, sel.Metric, sel.Display)
	return d
}

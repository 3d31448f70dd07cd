// dataset_fetcher.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultPageSize = 1000

// DatasetFetcher pulls pages of flat JSON records from an open-data
// endpoint via limit/offset parameters. A short page signals that no
// further pages exist.
type DatasetFetcher struct {
	client   *http.Client
	baseURL  string
	pageSize int
}

func NewDatasetFetcher(baseURL string, pageSize int) *DatasetFetcher {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &DatasetFetcher{
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  baseURL,
		pageSize: pageSize,
	}
}

// FetchPage GETs one page of rows starting at offset. Any transport
// error or non-success status comes back as a single readable error,
// retrying is the caller's business and we do not do it.
func (f *DatasetFetcher) FetchPage(ctx context.Context, offset int) ([]Row, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset url %q: %w", f.baseURL, err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(f.pageSize))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset request failed: %s", resp.Status)
	}

	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("error decoding dataset page: %w", err)
	}
	return rows, nil
}

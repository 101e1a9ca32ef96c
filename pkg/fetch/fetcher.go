// Package fetch downloads configured feeds, processes their entries, and
// writes the JSON data files and search index.
package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
)

const (
	fetchTimeout = 10 * time.Second
	maxAttempts  = 3
)

// Fetcher downloads and parses one feed at a time. It is safe for
// concurrent use by the pipeline's workers.
type Fetcher struct {
	parser   *gofeed.Parser
	attempts int
}

// NewFetcher returns a fetcher with the default timeout and retry policy.
func NewFetcher() *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: fetchTimeout}
	parser.UserAgent = "spacefeeder"
	return &Fetcher{parser: parser, attempts: maxAttempts}
}

// Fetch downloads and parses the feed at url, retrying transient failures
// with exponential backoff.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	var lastErr error
	for attempt := 1; attempt <= f.attempts; attempt++ {
		feed, err := f.parser.ParseURLWithContext(url, ctx)
		if err == nil {
			return feed, nil
		}
		lastErr = err

		if attempt < f.attempts {
			delay := time.Duration(100*(1<<attempt)) * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, errors.Wrapf(lastErr, errors.ErrFeedFetch,
		"failed to fetch %s after %d attempts", url, f.attempts)
}

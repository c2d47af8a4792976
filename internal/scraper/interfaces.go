package scraper

import (
	"context"
	"time"
)

// Fetcher retrieves the listing page once.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Page, error)
}

// RetryPolicy decides whether a failed fetch attempt should be retried and
// how long to wait before the next one.
type RetryPolicy interface {
	ShouldRetry(err error, attempt int) bool
	Backoff(attempt int) time.Duration
}

// Sink persists the final, sorted offer set.
type Sink interface {
	WriteJSON(path string, offers []Offer) error
	WriteHTML(path string, offers []Offer) error
}

// Package scraper implements the ADUM listing pipeline: parallel fetch of the
// offer listing page, HTML extraction, merge/deduplication, date sorting, and
// JSON/HTML rendering.
package scraper

import (
	"errors"
	"time"
)

// Offer is one thesis-subject listing scraped from the source page.
// PostedAt is attached by SortOffers when LastUpdate parses; it stays zero
// otherwise.
type Offer struct {
	Title      string    `json:"title"`
	Lab        string    `json:"lab"`
	Director   string    `json:"director"`
	LastUpdate string    `json:"last_update"`
	URL        string    `json:"url,omitempty"`
	PostedAt   time.Time `json:"-"`
}

// Dated reports whether the offer carries a parsed update date.
func (o Offer) Dated() bool {
	return !o.PostedAt.IsZero()
}

// Page is one successfully fetched listing body.
type Page struct {
	URL        string
	StatusCode int
	Body       []byte
}

// Config captures every knob that influences a scrape run. It is decoupled
// from Viper so the pipeline can be configured and tested independently.
type Config struct {
	URL       string
	Workers   int
	UserAgent string
	Timeout   time.Duration
	OutJSON   string
	OutHTML   string
}

// Sentinel errors distinguishing the failed stage for the caller.
var (
	// ErrAllFetchesFailed is returned when not a single worker retrieved
	// the listing page.
	ErrAllFetchesFailed = errors.New("all fetch attempts failed")

	// ErrNoOffers is returned when pages were fetched but no offer could
	// be extracted from any of them.
	ErrNoOffers = errors.New("no offers recovered from any page")
)

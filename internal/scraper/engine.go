package scraper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Engine runs the full pipeline: parallel fetch, parse, merge, sort, render.
type Engine struct {
	cfg     Config
	fetcher Fetcher
	parser  *ListingParser
	retry   RetryPolicy
	sink    Sink
	logger  *zap.Logger
}

// NewEngine wires the pipeline stages together.
func NewEngine(cfg Config, fetcher Fetcher, parser *ListingParser, retry RetryPolicy, sink Sink, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:     cfg,
		fetcher: fetcher,
		parser:  parser,
		retry:   retry,
		sink:    sink,
		logger:  logger,
	}
}

// Run executes one scrape pass. It returns ErrAllFetchesFailed when no
// worker retrieved the page, ErrNoOffers when pages were fetched but held no
// offers, and a wrapped I/O error when an output cannot be written. Outputs
// are only touched on a fully successful run.
func (e *Engine) Run(ctx context.Context) error {
	start := time.Now()

	pages, err := e.fetchAll(ctx)
	if err != nil {
		return err
	}

	parsed := make([][]Offer, 0, len(pages))
	for _, page := range pages {
		parsed = append(parsed, e.parser.Parse(page))
	}

	offers := MergeOffers(parsed)
	if len(offers) == 0 {
		return fmt.Errorf("parsed %d page(s): %w", len(pages), ErrNoOffers)
	}

	offers = SortOffers(offers)
	undated := 0
	for _, offer := range offers {
		if !offer.Dated() {
			undated++
		}
	}
	if undated > 0 {
		e.logger.Warn("offers without a parsable update date sorted last",
			zap.Int("undated", undated))
	}

	if err := e.sink.WriteJSON(e.cfg.OutJSON, offers); err != nil {
		return fmt.Errorf("write json output: %w", err)
	}
	if err := e.sink.WriteHTML(e.cfg.OutHTML, offers); err != nil {
		return fmt.Errorf("write html output: %w", err)
	}

	e.logger.Info("scrape complete",
		zap.Int("pages", len(pages)),
		zap.Int("offers", len(offers)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// fetchAll fires the configured number of workers against the listing URL
// and waits for every attempt. At least one success lets the run proceed.
func (e *Engine) fetchAll(ctx context.Context) ([]Page, error) {
	workers := max(1, e.cfg.Workers)

	var (
		mu      sync.Mutex
		pages   []Page
		failed  int
		lastErr error
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			page, err := e.fetchOnce(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				lastErr = err
				e.logger.Warn("fetch attempt failed",
					zap.Int("worker", id),
					zap.Error(err))
				return
			}
			pages = append(pages, page)
		}(i)
	}
	wg.Wait()

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w (workers=%d, last error: %v)", ErrAllFetchesFailed, workers, lastErr)
	}
	if failed > 0 {
		e.logger.Warn("some fetch attempts failed",
			zap.Int("failed", failed),
			zap.Int("succeeded", len(pages)))
	}
	return pages, nil
}

func (e *Engine) fetchOnce(ctx context.Context) (Page, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		page, err := e.fetcher.Fetch(ctx, e.cfg.URL)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if !e.retry.ShouldRetry(err, attempt+1) {
			break
		}
		select {
		case <-ctx.Done():
			return Page{}, ctx.Err()
		case <-time.After(e.retry.Backoff(attempt)):
		}
	}
	return Page{}, lastErr
}

package scraper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TotalRequests tracks the number of HTTP requests dispatched.
	TotalRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adum_requests_total",
		Help: "The total number of HTTP requests sent against the listing URL.",
	})
	// TotalRequestErrors tracks the number of requests that resulted in an error.
	TotalRequestErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adum_request_errors_total",
		Help: "The total number of failed HTTP requests.",
	})
	// TotalOffersParsed tracks the number of offer rows extracted, duplicates included.
	TotalOffersParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adum_offers_parsed_total",
		Help: "The total number of offer rows extracted from fetched pages.",
	})
	// TotalDuplicatesDropped tracks offers discarded by the merge step.
	TotalDuplicatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adum_duplicates_dropped_total",
		Help: "The total number of duplicate offers dropped while merging pages.",
	})
)

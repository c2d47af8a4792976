package scraper

import (
	"sort"
	"strings"
)

// MergeOffers flattens offers parsed from repeated fetches of the same
// listing into one deduplicated sequence. The first occurrence of each offer
// wins; input order is otherwise preserved.
func MergeOffers(pages [][]Offer) []Offer {
	seen := make(map[string]struct{})
	var merged []Offer
	dropped := 0

	for _, offers := range pages {
		for _, offer := range offers {
			key := dedupKey(offer)
			if _, ok := seen[key]; ok {
				dropped++
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, offer)
		}
	}

	TotalDuplicatesDropped.Add(float64(dropped))
	return merged
}

// dedupKey identifies an offer across fetches. The page exposes no stable
// offer ID and detail URLs can carry per-session query parameters, so the
// key is the title+director+raw date triple.
func dedupKey(o Offer) string {
	return strings.ToLower(o.Title) + "\x00" +
		strings.ToLower(o.Director) + "\x00" +
		o.LastUpdate
}

// SortOffers attaches the parsed update date to each offer and orders the
// slice by that date, most recent first. Offers whose date does not parse
// sort after every dated offer; ties and undated offers keep their relative
// input order.
func SortOffers(offers []Offer) []Offer {
	for i := range offers {
		if t, ok := ParseFrenchDate(offers[i].LastUpdate); ok {
			offers[i].PostedAt = t
		}
	}

	sort.SliceStable(offers, func(i, j int) bool {
		switch {
		case offers[i].Dated() && offers[j].Dated():
			return offers[i].PostedAt.After(offers[j].PostedAt)
		case offers[i].Dated():
			return true
		default:
			return false
		}
	})
	return offers
}

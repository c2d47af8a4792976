package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMergeOffersDeduplicates(t *testing.T) {
	t.Parallel()

	pageOffers := []Offer{
		{Title: "A", Director: "X", LastUpdate: "10/01/2024"},
		{Title: "B", Director: "Y", LastUpdate: "05/03/2024"},
	}

	merged := MergeOffers([][]Offer{pageOffers, pageOffers, pageOffers})

	require.Equal(t, pageOffers, merged,
		"offer count from N identical pages must equal the count from one page")
}

func TestMergeOffersKeyIsTitleDirectorDate(t *testing.T) {
	t.Parallel()

	merged := MergeOffers([][]Offer{{
		{Title: "A", Director: "X", LastUpdate: "10/01/2024"},
		{Title: "A", Director: "X", LastUpdate: "11/01/2024"},
		{Title: "A", Director: "Z", LastUpdate: "10/01/2024"},
		{Title: "a", Director: "x", LastUpdate: "10/01/2024"},
	}})

	require.Len(t, merged, 3, "case-insensitive title+director+date triple identifies an offer")
}

func TestSortOffersDescendingStable(t *testing.T) {
	t.Parallel()

	offers := []Offer{
		{Title: "old", LastUpdate: "10/01/2024"},
		{Title: "tie-1", LastUpdate: "05/03/2024"},
		{Title: "tie-2", LastUpdate: "05/03/2024"},
		{Title: "new", LastUpdate: "12/03/2024"},
	}

	sorted := SortOffers(offers)

	titles := make([]string, len(sorted))
	for i, o := range sorted {
		titles[i] = o.Title
	}
	require.Equal(t, []string{"new", "tie-1", "tie-2", "old"}, titles)

	for i := 1; i < len(sorted); i++ {
		require.False(t, sorted[i].PostedAt.After(sorted[i-1].PostedAt),
			"dates must be non-increasing")
	}
}

func TestSortOffersUnparsableLast(t *testing.T) {
	t.Parallel()

	offers := []Offer{
		{Title: "undated-1", LastUpdate: "N/A"},
		{Title: "A", LastUpdate: "10/01/2024"},
		{Title: "undated-2", LastUpdate: "unknown"},
		{Title: "B", LastUpdate: "05/03/2024"},
	}

	sorted := SortOffers(offers)

	titles := make([]string, len(sorted))
	for i, o := range sorted {
		titles[i] = o.Title
	}
	require.Equal(t, []string{"B", "A", "undated-1", "undated-2"}, titles,
		"undated offers keep their relative order after every dated offer")

	require.False(t, sorted[2].Dated())
	require.False(t, sorted[3].Dated())
}

func TestSortOffersAttachesParsedDate(t *testing.T) {
	t.Parallel()

	sorted := SortOffers([]Offer{{Title: "A", LastUpdate: "12 mars 2024"}})

	require.True(t, sorted[0].Dated())
	require.Equal(t, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), sorted[0].PostedAt)
}

package scraper

import (
	"strconv"
	"strings"
	"time"
)

// lastUpdateLabel precedes the sort date on the listing page.
const lastUpdateLabel = "Dernière mise à jour le"

var numericLayouts = []string{"02/01/2006", "2/1/2006", "02-01-2006", "2-1-2006"}

// Month names are matched after lowercasing and diacritic folding, so both
// "août" and "aout" resolve.
var frenchMonths = map[string]time.Month{
	"janvier":   time.January,
	"fevrier":   time.February,
	"mars":      time.March,
	"avril":     time.April,
	"mai":       time.May,
	"juin":      time.June,
	"juillet":   time.July,
	"aout":      time.August,
	"septembre": time.September,
	"octobre":   time.October,
	"novembre":  time.November,
	"decembre":  time.December,
}

var diacriticFolder = strings.NewReplacer(
	"à", "a", "â", "a",
	"ç", "c",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o",
	"û", "u", "ù", "u", "ü", "u",
)

// ParseFrenchDate parses the date formats seen on the listing page:
// "12/03/2024", "5/3/2024", and spelled-out forms like "12 mars 2024" or
// "1er avril 2024". It returns false when no date can be extracted.
func ParseFrenchDate(raw string) (time.Time, bool) {
	text := StripUpdateLabel(raw)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range numericLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	fields := strings.Fields(strings.ToLower(text))
	if len(fields) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSuffix(fields[0], "er"))
	if err != nil {
		return time.Time{}, false
	}
	month, ok := frenchMonths[diacriticFolder.Replace(fields[1])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil || year < 1000 || year > 9999 {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so "31 février" would roll into March.
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// StripUpdateLabel removes the "Dernière mise à jour le" label when the cell
// text inlines it ahead of the date. Whitespace is collapsed first so labels
// broken across lines in the markup still match; the result is always clean.
func StripUpdateLabel(text string) string {
	cleaned := cleanText(text)
	if pos := strings.Index(cleaned, lastUpdateLabel); pos != -1 {
		return strings.TrimSpace(cleaned[pos+len(lastUpdateLabel):])
	}
	return cleaned
}

// cleanText collapses runs of whitespace into single spaces and trims.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

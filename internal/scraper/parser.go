package scraper

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ListingParser extracts offer records from a fetched listing page.
type ListingParser struct {
	logger *zap.Logger
}

// NewListingParser returns a parser logging diagnostics through logger.
func NewListingParser(logger *zap.Logger) *ListingParser {
	return &ListingParser{logger: logger}
}

// columns maps offer fields to cell indexes within a listing row. An index
// of -1 means the page carries no such column and the field stays empty.
type columns struct {
	title    int
	lab      int
	director int
	date     int
}

// positionalColumns is the fallback layout for tables without a labeled
// header row: Sujet, Laboratoire, Direction, Dernière mise à jour le.
var positionalColumns = columns{title: 0, lab: 1, director: 2, date: 3}

// Parse extracts offers from one listing body. A page whose structure is not
// recognized yields no offers and no error; the engine turns an
// all-pages-empty run into ErrNoOffers.
func (p *ListingParser) Parse(page Page) []Offer {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		p.logger.Warn("unparsable listing page",
			zap.String("url", page.URL),
			zap.Error(err))
		return nil
	}

	table, cols := findListing(doc)
	if table == nil {
		p.logger.Warn("no offer listing found in page", zap.String("url", page.URL))
		return nil
	}

	base, err := url.Parse(page.URL)
	if err != nil {
		base = nil
	}

	var offers []Offer
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			// header or spacer row
			return
		}
		offer := Offer{
			Title:      cleanText(cellText(cells, cols.title)),
			Lab:        cleanText(cellText(cells, cols.lab)),
			Director:   cleanText(cellText(cells, cols.director)),
			LastUpdate: StripUpdateLabel(cellText(cells, cols.date)),
			URL:        offerURL(cells, cols.title, base),
		}
		if offer.Title == "" && offer.LastUpdate == "" {
			return
		}
		offers = append(offers, offer)
	})

	TotalOffersParsed.Add(float64(len(offers)))
	p.logger.Debug("parsed listing page",
		zap.String("url", page.URL),
		zap.Int("offers", len(offers)))
	return offers
}

// findListing locates the offers table. Preference goes to a table whose
// header row carries the "Dernière mise à jour le" label; failing that, the
// first table wide enough for the positional layout is used.
func findListing(doc *goquery.Document) (*goquery.Selection, columns) {
	var (
		found     *goquery.Selection
		foundCols columns
	)

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		cols, ok := headerColumns(table)
		if !ok {
			return true
		}
		found = table
		foundCols = cols
		return false
	})
	if found != nil {
		return found, foundCols
	}

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if table.Find("tr").First().Find("td, th").Length() < 4 {
			return true
		}
		found = table
		foundCols = positionalColumns
		return false
	})
	return found, foundCols
}

// headerColumns maps field columns from the table's header labels. It
// succeeds only when an update-date column is present, which is what
// distinguishes the offers table from decorative ones.
func headerColumns(table *goquery.Selection) (columns, bool) {
	header := table.Find("tr").First().Find("th")
	if header.Length() == 0 {
		return columns{}, false
	}

	cols := columns{title: -1, lab: -1, director: -1, date: -1}
	header.Each(func(i int, cell *goquery.Selection) {
		label := diacriticFolder.Replace(strings.ToLower(cleanText(cell.Text())))
		switch {
		case strings.Contains(label, "mise a jour"):
			cols.date = i
		case strings.Contains(label, "sujet"), strings.Contains(label, "titre"):
			cols.title = i
		case strings.Contains(label, "laboratoire"):
			cols.lab = i
		case strings.Contains(label, "direct"):
			cols.director = i
		}
	})
	return cols, cols.date != -1
}

func cellText(cells *goquery.Selection, index int) string {
	if index < 0 || index >= cells.Length() {
		return ""
	}
	return cells.Eq(index).Text()
}

// offerURL resolves the title cell's link against the page URL, mirroring
// how the listing links each Sujet to its detail page.
func offerURL(cells *goquery.Selection, titleIndex int, base *url.URL) string {
	if base == nil || titleIndex < 0 || titleIndex >= cells.Length() {
		return ""
	}
	href, ok := cells.Eq(titleIndex).Find("a[href]").First().Attr("href")
	if !ok {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

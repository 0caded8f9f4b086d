package pesdb

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
)

// Column positions in the search results table.
const (
	colPosition    = 0
	colName        = 1
	colTeam        = 2
	colNationality = 3
	colAge         = 6
	colRating      = 7
)

// ParseSearch extracts player summaries from a search results page, in table order.
func ParseSearch(r io.Reader) ([]players.Summary, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}
	return parseSearchDocument(doc), nil
}

func parseSearchDocument(doc *goquery.Document) []players.Summary {
	results := make([]players.Summary, 0)
	doc.Find(searchRowSelector).Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		anchor := cells.Eq(colName).Find("a").First()
		name := cleanText(anchor.Text())
		if anchor.Length() == 0 {
			name = cleanText(cells.Eq(colName).Text())
		}
		results = append(results, players.Summary{
			Position:    cleanText(cells.Eq(colPosition).Text()),
			Name:        name,
			ID:          extractPlayerID(anchor.AttrOr("href", "")),
			TeamName:    cleanText(cells.Eq(colTeam).Text()),
			Nationality: cleanText(cells.Eq(colNationality).Text()),
			Age:         cleanText(cells.Eq(colAge).Text()),
			Rating:      cleanText(cells.Eq(colRating).Text()),
		})
	})
	return results
}

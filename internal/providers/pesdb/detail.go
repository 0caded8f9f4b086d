package pesdb

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
)

var rarityMarkers = []string{"Epic", "Legendary"}

// ParseDetail extracts a player's attribute sheet. Every stage tolerates missing markup,
// so an unexpected page yields empty fields rather than an error. Relative image
// URLs are resolved against base when it is non-nil.
func ParseDetail(r io.Reader, base *url.URL) (players.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return players.Detail{}, fmt.Errorf("parse player page: %w", err)
	}
	return parseDetailDocument(doc, base), nil
}

func parseDetailDocument(doc *goquery.Document, base *url.URL) players.Detail {
	detail := players.NewDetail()

	extractImages(doc, base, &detail)
	if extractLabelledFields(doc, &detail) == 0 {
		lookupFixedLabels(doc, &detail)
	}
	if rarity := extractRarity(doc); rarity != nil {
		detail.Rarity = rarity
	}
	detail.Attributes = extractAttributes(doc)
	extractPlayingStyles(doc, &detail)

	return detail
}

func extractImages(doc *goquery.Document, base *url.URL, d *players.Detail) {
	if src, ok := doc.Find(playerImageSelector).First().Attr("src"); ok {
		d.Images.Player = players.StringPtr(resolveURL(base, src))
	}
	if src, ok := doc.Find(cardImageSelector).First().Attr("src"); ok {
		d.Images.Card = players.StringPtr(resolveURL(base, src))
	}
}

func extractRarity(doc *goquery.Document) *string {
	var rarity *string
	doc.Find(rarityCellSelector).EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		text := cleanText(cell.Text())
		for _, marker := range rarityMarkers {
			if strings.Contains(text, marker) {
				rarity = players.StringPtr(text)
				return false
			}
		}
		return true
	})
	return rarity
}

func extractAttributes(doc *goquery.Document) []players.Attribute {
	attrs := make([]players.Attribute, 0)
	doc.Find(attributeRowSelector).Each(func(_ int, row *goquery.Selection) {
		label := labelText(row.Find("th").First())
		if label == "" {
			return
		}
		cell := row.Find("td").First()
		value := firstText(cell, "span.stat", "span", "div")
		if value == "" {
			value = ownText(cell)
		}
		if value == "" {
			return
		}
		attr := players.Attribute{Name: label, Value: value}
		if title, ok := row.Find(boosterSelector).First().Attr("title"); ok {
			attr.Booster = players.StringPtr(cleanText(strings.ReplaceAll(title, "Booster", "")))
		}
		attr.Bonus = players.StringPtr(cleanText(cell.Find("small").First().Text()))
		attrs = append(attrs, attr)
	})
	return attrs
}

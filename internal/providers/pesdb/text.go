package pesdb

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	nonLetterPattern  = regexp.MustCompile(`[^a-zA-Z]+`)
	playerIDPattern   = regexp.MustCompile(`id=(\d+)`)
)

// cleanText trims s and collapses inner whitespace runs to a single space.
func cleanText(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// normalizeLabel turns "Player Name:" into "playername".
func normalizeLabel(label string) string {
	return strings.ToLower(nonLetterPattern.ReplaceAllString(label, ""))
}

// labelText reads a header cell as a display label without its trailing colon.
func labelText(sel *goquery.Selection) string {
	return strings.TrimSpace(strings.TrimSuffix(cleanText(sel.Text()), ":"))
}

// ownText joins the text nodes that are direct children of the first node in sel,
// skipping nested elements such as <small> annotations.
func ownText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for n := sel.Get(0).FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
	}
	return cleanText(b.String())
}

// firstText returns the first non-empty text among the candidate selectors, searched inside sel.
func firstText(sel *goquery.Selection, candidates ...string) string {
	for _, candidate := range candidates {
		if text := cleanText(sel.Find(candidate).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// cellValue reads a value cell: nested link/span/div text first, then the whole cell.
func cellValue(cell *goquery.Selection) string {
	if cell.Length() == 0 {
		return ""
	}
	if text := firstText(cell, "a", "span", "div"); text != "" {
		return text
	}
	return cleanText(cell.Text())
}

// extractPlayerID pulls the numeric id out of a player link, or nil when there is none.
func extractPlayerID(href string) *string {
	match := playerIDPattern.FindStringSubmatch(href)
	if len(match) < 2 {
		return nil
	}
	id := match[1]
	return &id
}

package pesdb

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
)

type styleSection int

const (
	sectionNone styleSection = iota
	sectionStyle
	sectionSkills
	sectionAI
)

// sectionTransitions is keyed by the normalized sentinel row text.
var sectionTransitions = map[string]styleSection{
	"playingstyle":    sectionStyle,
	"playerskills":    sectionSkills,
	"aiplayingstyles": sectionAI,
}

type styleWalker struct {
	section styleSection
	detail  *players.Detail
}

func (w *styleWalker) step(row *goquery.Selection) {
	text := cleanText(row.Text())
	if next, ok := sectionTransitions[normalizeLabel(text)]; ok {
		w.section = next
		return
	}
	if row.Find("th").Length() > 0 {
		w.section = sectionNone
		return
	}
	if text == "" {
		return
	}
	w.collect(text)
}

func (w *styleWalker) collect(value string) {
	switch w.section {
	case sectionStyle:
		// A player has a single playing style; later rows in the section are ignored.
		if w.detail.PlayingStyle == nil {
			w.detail.PlayingStyle = players.StringPtr(value)
		}
	case sectionSkills:
		w.detail.PlayerSkills = append(w.detail.PlayerSkills, value)
	case sectionAI:
		w.detail.AIPlayingStyles = append(w.detail.AIPlayingStyles, value)
	}
}

func extractPlayingStyles(doc *goquery.Document, d *players.Detail) {
	walker := &styleWalker{section: sectionNone, detail: d}
	doc.Find(stylesRowSelector).Each(func(_ int, row *goquery.Selection) {
		walker.step(row)
	})
}

package pesdb

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
)

type field int

const (
	fieldName field = iota + 1
	fieldTeam
	fieldLeague
	fieldNationality
	fieldRegion
	fieldHeight
	fieldWeight
	fieldAge
	fieldPreferredFoot
	fieldMaxLevel
	fieldRating
	fieldPosition
	fieldRarity
)

// labelFields maps normalized basic-info labels onto Detail fields.
// Labels not listed here land in Detail.OtherFields.
var labelFields = map[string]field{
	"playername":    fieldName,
	"name":          fieldName,
	"teamname":      fieldTeam,
	"team":          fieldTeam,
	"club":          fieldTeam,
	"league":        fieldLeague,
	"nationality":   fieldNationality,
	"region":        fieldRegion,
	"height":        fieldHeight,
	"weight":        fieldWeight,
	"age":           fieldAge,
	"foot":          fieldPreferredFoot,
	"preferredfoot": fieldPreferredFoot,
	"strongerfoot":  fieldPreferredFoot,
	"maxlevel":      fieldMaxLevel,
	"maximumlevel":  fieldMaxLevel,
	"rating":        fieldRating,
	"overallrating": fieldRating,
	"position":      fieldPosition,
	"rarity":        fieldRarity,
}

// fixedLabels is the fallback lookup: exact header cell text followed by its value cell.
var fixedLabels = []struct {
	label string
	field field
}{
	{"Player Name:", fieldName},
	{"Team Name:", fieldTeam},
	{"League:", fieldLeague},
	{"Nationality:", fieldNationality},
	{"Region:", fieldRegion},
	{"Height:", fieldHeight},
	{"Weight:", fieldWeight},
	{"Age:", fieldAge},
	{"Foot:", fieldPreferredFoot},
	{"Maximum Level:", fieldMaxLevel},
	{"Overall Rating:", fieldRating},
	{"Position:", fieldPosition},
}

func (f field) target(d *players.Detail) **string {
	switch f {
	case fieldName:
		return &d.Name
	case fieldTeam:
		return &d.Team
	case fieldLeague:
		return &d.League
	case fieldNationality:
		return &d.Nationality
	case fieldRegion:
		return &d.Region
	case fieldHeight:
		return &d.Height
	case fieldWeight:
		return &d.Weight
	case fieldAge:
		return &d.Age
	case fieldPreferredFoot:
		return &d.PreferredFoot
	case fieldMaxLevel:
		return &d.MaxLevel
	case fieldRating:
		return &d.Rating
	case fieldPosition:
		return &d.Position
	case fieldRarity:
		return &d.Rarity
	default:
		return nil
	}
}

// set stores value unless the field already holds one; the first occurrence wins.
func (f field) set(d *players.Detail, value string) {
	ptr := f.target(d)
	if ptr == nil || *ptr != nil {
		return
	}
	*ptr = players.StringPtr(value)
}

// assignLabel routes one label/value pair. It reports whether anything was recorded.
func assignLabel(d *players.Detail, label, value string) bool {
	key := normalizeLabel(label)
	if key == "" || value == "" {
		return false
	}
	if f, ok := labelFields[key]; ok {
		f.set(d, value)
		return true
	}
	if _, exists := d.OtherFields[label]; !exists {
		d.OtherFields[label] = value
	}
	return true
}

// extractLabelledFields walks every th/td pair of the basic-info table.
func extractLabelledFields(doc *goquery.Document, d *players.Detail) int {
	recorded := 0
	doc.Find(basicInfoRowSelector).Each(func(_ int, row *goquery.Selection) {
		header := row.Find("th").First()
		if header.Length() == 0 {
			return
		}
		value := cellValue(header.NextAllFiltered("td").First())
		if assignLabel(d, labelText(header), value) {
			recorded++
		}
	})
	return recorded
}

// lookupFixedLabels is used only when the traversal found nothing.
func lookupFixedLabels(doc *goquery.Document, d *players.Detail) int {
	recorded := 0
	for _, fl := range fixedLabels {
		label := fl.label
		header := doc.Find("th").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return cleanText(s.Text()) == label
		}).First()
		if header.Length() == 0 {
			continue
		}
		value := cellValue(header.NextAllFiltered("td").First())
		if value == "" {
			continue
		}
		fl.field.set(d, value)
		recorded++
	}
	return recorded
}

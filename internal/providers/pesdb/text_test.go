package pesdb

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	require.Equal(t, "a b c", cleanText("  a \n\t b   c "))
	require.Equal(t, "", cleanText(" \n "))
}

func TestNormalizeLabel(t *testing.T) {
	require.Equal(t, "playername", normalizeLabel(" Player Name: "))
	require.Equal(t, "maximumlevel", normalizeLabel("Maximum-Level"))
	require.Equal(t, "", normalizeLabel("123 :"))
}

func TestOwnTextSkipsNestedElements(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<table><tr><td id="c"> 88 <small>(+3)</small> </td></tr></table>`))
	require.NoError(t, err)
	require.Equal(t, "88", ownText(doc.Find("#c")))
	require.Equal(t, "", ownText(doc.Find("#missing")))
}

func TestCellValuePrefersNestedElements(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<table><tr>
		<td id="a"><a>Link</a><span>Span</span></td>
		<td id="s"><span> </span><div>Div</div></td>
		<td id="t">Plain <b>bold</b></td>
	</tr></table>`))
	require.NoError(t, err)
	require.Equal(t, "Link", cellValue(doc.Find("#a")))
	require.Equal(t, "Div", cellValue(doc.Find("#s")))
	require.Equal(t, "Plain bold", cellValue(doc.Find("#t")))
}

func TestAssignLabelRoutesUnknownLabelsToOtherFields(t *testing.T) {
	d := parsePlayerPage(t, "player_minimal.html")
	require.True(t, assignLabel(&d, "Height", "180"))
	require.True(t, assignLabel(&d, "Height", "190"))
	require.Equal(t, "180", *d.Height)

	require.True(t, assignLabel(&d, "Stamina Type", "High"))
	require.Equal(t, "High", d.OtherFields["Stamina Type"])

	require.False(t, assignLabel(&d, "", "x"))
	require.False(t, assignLabel(&d, "Weight", ""))
}

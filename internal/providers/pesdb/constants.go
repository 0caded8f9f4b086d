package pesdb

import "time"

const (
	providerName = "pesdb"

	defaultBaseURL     = "https://pesdb.net/efootball/"
	defaultHTTPTimeout = 15 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

	// Upstream query flags: stats shown at maximum level, all results on one page.
	modeMaxLevel = "max_level"
	allResults   = "1"
)

// Selectors describing the upstream markup. They are the parsing contract with the site.
const (
	searchRowSelector = "table.players tr"

	playerImageSelector = "img.player_image"
	cardImageSelector   = "img.card_image"

	basicInfoRowSelector = "table.player tr"
	rarityCellSelector   = `td[colspan="2"]`
	attributeRowSelector = "table.stats tr"
	boosterSelector      = `[title*="Booster"]`
	stylesRowSelector    = "table.playing_styles tr"
)

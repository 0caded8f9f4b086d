package players

// Summary is one row of the upstream search results table.
type Summary struct {
	Position    string  `json:"position"`
	Name        string  `json:"playerName"`
	ID          *string `json:"id"`
	TeamName    string  `json:"teamName"`
	Nationality string  `json:"nationality"`
	Age         string  `json:"age"`
	Rating      string  `json:"rating"`
}

// Images holds the two optional artwork URLs of a player page.
type Images struct {
	Player *string `json:"player"`
	Card   *string `json:"card"`
}

// Attribute is a single statistic row from the attributes table.
type Attribute struct {
	Name    string  `json:"name"`
	Value   string  `json:"value"`
	Booster *string `json:"booster"`
	Bonus   *string `json:"bonus"`
}

// Detail is the full attribute sheet for one player id.
// Labelled fields are nil when the upstream page does not carry them.
type Detail struct {
	Images        Images            `json:"images"`
	Name          *string           `json:"name"`
	Team          *string           `json:"team"`
	League        *string           `json:"league"`
	Nationality   *string           `json:"nationality"`
	Region        *string           `json:"region"`
	Height        *string           `json:"height"`
	Weight        *string           `json:"weight"`
	Age           *string           `json:"age"`
	PreferredFoot *string           `json:"preferredFoot"`
	MaxLevel      *string           `json:"maxLevel"`
	Rating        *string           `json:"rating"`
	Position      *string           `json:"position"`
	Rarity        *string           `json:"rarity"`
	OtherFields   map[string]string `json:"otherFields"`

	Attributes      []Attribute `json:"attributes"`
	PlayingStyle    *string     `json:"playingStyle"`
	PlayerSkills    []string    `json:"playerSkills"`
	AIPlayingStyles []string    `json:"aiPlayingStyles"`
}

// NewDetail returns a Detail whose collections encode as empty JSON arrays/objects rather than null.
func NewDetail() Detail {
	return Detail{
		OtherFields:     map[string]string{},
		Attributes:      []Attribute{},
		PlayerSkills:    []string{},
		AIPlayingStyles: []string{},
	}
}

// SearchResponse is the payload returned by /api/player.
type SearchResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Players []Summary `json:"players"`
}

// NewSearchResponse wraps summaries, keeping count and length in sync.
func NewSearchResponse(items []Summary) SearchResponse {
	if items == nil {
		items = []Summary{}
	}
	return SearchResponse{Success: true, Count: len(items), Players: items}
}

// DetailResponse is the payload returned by /api/playerinfo.
type DetailResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Info    Detail `json:"info"`
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

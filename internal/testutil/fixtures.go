package testutil

import "github.com/preston-bernstein/efootball-data-service/internal/domain/players"

// SampleSummary returns a search row with the provided id and name.
func SampleSummary(id, name string) players.Summary {
	return players.Summary{
		Position:    "CF",
		Name:        name,
		ID:          players.StringPtr(id),
		TeamName:    "Test FC",
		Nationality: "Testland",
		Age:         "25",
		Rating:      "90",
	}
}

// SampleDetail returns a populated attribute sheet for name.
func SampleDetail(name string) players.Detail {
	d := players.NewDetail()
	d.Name = players.StringPtr(name)
	d.Position = players.StringPtr("CF")
	d.Rating = players.StringPtr("90")
	d.Attributes = append(d.Attributes, players.Attribute{Name: "Finishing", Value: "90"})
	d.PlayingStyle = players.StringPtr("Goal Poacher")
	return d
}

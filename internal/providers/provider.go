package providers

import (
	"context"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
)

// PlayerProvider defines how upstream player data is fetched and normalized.
// Implementations perform exactly one upstream request per call and return either a complete result or an error.
type PlayerProvider interface {
	// SearchPlayers returns summaries for a free-text name, in upstream table order.
	SearchPlayers(ctx context.Context, name string) ([]players.Summary, error)
	// FetchPlayer returns the attribute sheet for a numeric upstream id.
	FetchPlayer(ctx context.Context, id string) (players.Detail, error)
}

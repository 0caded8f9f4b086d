package testutil

import (
	appplayers "github.com/preston-bernstein/efootball-data-service/internal/app/players"
	"github.com/preston-bernstein/efootball-data-service/internal/metrics"
	"github.com/preston-bernstein/efootball-data-service/internal/providers"
)

// NewPlayersService builds a players service over provider with an in-memory recorder and no logger.
func NewPlayersService(provider providers.PlayerProvider) *appplayers.Service {
	return appplayers.NewService(provider, "test", metrics.NewRecorder(), nil)
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/efootball-data-service/internal/config"
	"github.com/preston-bernstein/efootball-data-service/internal/providers"
	"github.com/preston-bernstein/efootball-data-service/internal/providers/fixture"
	"github.com/preston-bernstein/efootball-data-service/internal/providers/pesdb"
)

// selectProvider builds the pesdb client; fixture mode swaps its transport for recorded pages.
func selectProvider(cfg config.Config, logger *slog.Logger) providers.PlayerProvider {
	pcfg := pesdb.Config{
		BaseURL:   cfg.Pesdb.BaseURL,
		Timeout:   cfg.Pesdb.Timeout,
		UserAgent: cfg.Pesdb.UserAgent,
	}

	switch cfg.Provider {
	case config.ProviderPesdb, "":
	case config.ProviderFixture:
		pcfg.Transport = fixture.NewTransport()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to pesdb", slog.String("provider", cfg.Provider))
		}
	}
	return pesdb.NewClient(pcfg)
}

package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/efootball-data-service/internal/config"
	"github.com/preston-bernstein/efootball-data-service/internal/providers"
)

type namedProvider interface {
	Name() string
}

// normalizeProviderName picks the label used for provider metrics and logs.
// An explicit PROVIDER wins, except fixture mode which still labels the scraper it drives.
func normalizeProviderName(raw string, provider providers.PlayerProvider) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw != "" && raw != config.ProviderFixture {
		return raw
	}
	if named, ok := provider.(namedProvider); ok && named.Name() != "" {
		if raw == config.ProviderFixture {
			return raw + ":" + strings.ToLower(named.Name())
		}
		return strings.ToLower(named.Name())
	}
	if raw != "" {
		return raw
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}

package config

import "time"

const (
	envPesdbBaseURL   = "PESDB_BASE_URL"
	envPesdbTimeout   = "PESDB_TIMEOUT"
	envPesdbUserAgent = "PESDB_USER_AGENT"

	defaultPesdbBaseURL = "https://pesdb.net/efootball/"
	defaultPesdbTimeout = 15 * time.Second
)

// PesdbConfig controls how we talk to the upstream player database.
type PesdbConfig struct {
	BaseURL string
	Timeout time.Duration
	// UserAgent is left empty to use the client's browser-like default.
	UserAgent string
}

func loadPesdb() PesdbConfig {
	return PesdbConfig{
		BaseURL:   envOrDefault(envPesdbBaseURL, defaultPesdbBaseURL),
		Timeout:   durationEnvOrDefault(envPesdbTimeout, defaultPesdbTimeout),
		UserAgent: envOrDefault(envPesdbUserAgent, ""),
	}
}

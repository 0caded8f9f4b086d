package config

const (
	envFile      = "ENV_FILE"
	envPort      = "PORT"
	envProvider  = "PROVIDER"
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultEnvFile   = ".env"
	defaultPort      = "4000"
	defaultProvider  = ProviderPesdb
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Provider names accepted by PROVIDER.
const (
	ProviderPesdb   = "pesdb"
	ProviderFixture = "fixture"
)

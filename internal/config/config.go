package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Pesdb    PesdbConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

// LogConfig selects the process logger's level and format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// An optional dotenv file (ENV_FILE, default .env) is loaded first; variables
// already present in the environment win over the file.
func Load() Config {
	loadDotEnv(envOrDefault(envFile, defaultEnvFile))

	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Pesdb:    loadPesdb(),
		Metrics:  loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

// loadDotEnv ignores a missing file; a malformed one is skipped as well.
func loadDotEnv(path string) bool {
	return godotenv.Load(path) == nil
}

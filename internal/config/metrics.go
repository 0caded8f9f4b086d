package config

import "strings"

const (
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultMetricsPort = "9090"
	defaultServiceName = "efootball-data-service"
)

// MetricsConfig controls the Prometheus listener and optional OTLP export.
type MetricsConfig struct {
	Enabled bool
	Port    string
	// OtlpEndpoint is host[:port]; empty disables OTLP metrics and tracing.
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	endpoint, insecure := splitOtlpEndpoint(
		envOrDefault(envOtelEndpoint, ""),
		boolEnvOrDefault(envOtelInsecure, true),
	)
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: endpoint,
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: insecure,
	}
}

// splitOtlpEndpoint accepts the URL form of OTEL_EXPORTER_OTLP_ENDPOINT; an https scheme forces TLS.
func splitOtlpEndpoint(raw string, insecure bool) (string, bool) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "https://"):
		raw, insecure = strings.TrimPrefix(raw, "https://"), false
	case strings.HasPrefix(raw, "http://"):
		raw = strings.TrimPrefix(raw, "http://")
	}
	return strings.TrimSuffix(raw, "/"), insecure
}

package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second

	// writeSlack leaves room to encode the response after the upstream fetch returns.
	writeSlack = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeout has to outlast one upstream fetch, otherwise slow upstream pages are cut off mid-response.
func writeTimeout(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		upstream = 15 * time.Second
	}
	return upstream + writeSlack
}

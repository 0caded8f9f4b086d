package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// UpstreamStatusError captures a non-200 response from the upstream site.
type UpstreamStatusError struct {
	Provider   string
	StatusCode int
	URL        string
}

func (e *UpstreamStatusError) Error() string {
	provider := e.Provider
	if provider == "" {
		provider = "upstream"
	}
	if e.URL != "" {
		return fmt.Sprintf("%s: unexpected status %d from %s", provider, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s: unexpected status %d", provider, e.StatusCode)
}

// AsUpstreamStatusError attempts to unwrap an error into an UpstreamStatusError.
func AsUpstreamStatusError(err error) (*UpstreamStatusError, bool) {
	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

package providers

import (
	"fmt"
	"strings"
	"testing"
)

func TestUpstreamStatusErrorString(t *testing.T) {
	err := &UpstreamStatusError{
		Provider:   "pesdb",
		StatusCode: 503,
		URL:        "https://example.com/?id=1",
	}
	got := err.Error()
	if !strings.Contains(got, "503") || !strings.Contains(got, "pesdb") || !strings.Contains(got, "?id=1") {
		t.Fatalf("expected provider, status and url in error string, got %q", got)
	}

	bare := &UpstreamStatusError{StatusCode: 404}
	if got := bare.Error(); got != "upstream: unexpected status 404" {
		t.Fatalf("unexpected fallback message %q", got)
	}
}

func TestAsUpstreamStatusErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("fetch player: %w", &UpstreamStatusError{StatusCode: 500})

	statusErr, ok := AsUpstreamStatusError(wrapped)
	if !ok || statusErr.StatusCode != 500 {
		t.Fatalf("expected to unwrap status error, got %v %v", statusErr, ok)
	}

	if _, ok := AsUpstreamStatusError(ErrProviderUnavailable); ok {
		t.Fatalf("expected unrelated error not to unwrap")
	}
}

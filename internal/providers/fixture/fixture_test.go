package fixture

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func roundTrip(t *testing.T, target string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := NewTransport().RoundTrip(req)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}

func TestTransportServesPlayerPageForID(t *testing.T) {
	resp := roundTrip(t, "https://pesdb.net/efootball/?id=88079&mode=max_level")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, `class="playing_styles"`) {
		t.Fatalf("expected player page, got %q", body[:80])
	}
}

func TestTransportServesSearchPages(t *testing.T) {
	resp := roundTrip(t, "https://pesdb.net/efootball/?name=messi&mode=max_level&all=1")
	if body := readBody(t, resp); !strings.Contains(body, "Lionel Messi") {
		t.Fatalf("expected search page")
	}

	resp = roundTrip(t, "https://pesdb.net/efootball/?name="+NoResultsName)
	if body := readBody(t, resp); strings.Contains(body, "Lionel Messi") {
		t.Fatalf("expected empty search page")
	}
}

func TestTransportReturnsNotFoundWithoutQuery(t *testing.T) {
	resp := roundTrip(t, "https://pesdb.net/efootball/")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestTransportHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "https://pesdb.net/efootball/?id=1", nil)
	if _, err := NewTransport().RoundTrip(req); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestPageReportsUnknownName(t *testing.T) {
	if _, err := Page("missing.html"); err == nil {
		t.Fatalf("expected error for unknown page")
	}
	if _, err := Page(PlayerPage); err != nil {
		t.Fatalf("expected player page, got %v", err)
	}
}

package fixture

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"net/http"
	"path"
)

// Recorded upstream pages. Refresh them with `pesdbctl record`.
//
//go:embed pages/*.html
var pages embed.FS

const (
	SearchPage      = "search.html"
	EmptySearchPage = "search_empty.html"
	PlayerPage      = "player.html"

	// NoResultsName is the search term answered with the empty results page.
	NoResultsName = "zzz-no-results"
)

// Page returns the raw bytes of a recorded page.
func Page(name string) ([]byte, error) {
	data, err := pages.ReadFile(path.Join("pages", name))
	if err != nil {
		return nil, fmt.Errorf("fixture page %s: %w", name, err)
	}
	return data, nil
}

// Transport is an http.RoundTripper answering upstream requests with recorded pages,
// so the real client and parsers run without network access.
type Transport struct{}

// NewTransport creates a fixture transport.
func NewTransport() *Transport {
	return &Transport{}
}

// RoundTrip routes id lookups to the player page and name searches to the search page.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	page := pageFor(req)
	if page == "" {
		return response(req, http.StatusNotFound, nil), nil
	}
	data, err := Page(page)
	if err != nil {
		return nil, err
	}
	return response(req, http.StatusOK, data), nil
}

func pageFor(req *http.Request) string {
	q := req.URL.Query()
	switch {
	case q.Get("id") != "":
		return PlayerPage
	case q.Get("name") == NoResultsName:
		return EmptySearchPage
	case q.Get("name") != "":
		return SearchPage
	default:
		return ""
	}
}

func response(req *http.Request, status int, body []byte) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "text/html; charset=utf-8")
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

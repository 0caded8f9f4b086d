package pesdb

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
	"github.com/preston-bernstein/efootball-data-service/internal/providers"
)

var tracer = otel.Tracer("efootball-data-service/internal/providers/pesdb")

// Config controls how the pesdb client reaches the upstream site.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// Transport replaces the network round tripper, e.g. with recorded pages.
	Transport http.RoundTripper
}

// Client fetches pesdb pages and extracts player data from them.
type Client struct {
	baseURL *url.URL
	http    *resty.Client
}

// NewClient constructs a pesdb client with the provided configuration.
func NewClient(cfg Config) *Client {
	rc := resty.New().
		SetTimeout(resolveTimeout(cfg.Timeout)).
		SetHeader("User-Agent", resolveUserAgent(cfg.UserAgent)).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9")
	if cfg.Transport != nil {
		rc.SetTransport(cfg.Transport)
	}
	return &Client{
		baseURL: normalizeBaseURL(cfg.BaseURL),
		http:    rc,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// BaseURL is the upstream root that requests and relative image links resolve against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// SearchPlayers fetches the search page for name and returns its rows in table order.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]players.Summary, error) {
	body, err := c.SearchPage(ctx, name)
	if err != nil {
		return nil, err
	}

	_, span := tracer.Start(ctx, "pesdb.ParseSearch")
	defer span.End()

	results, err := ParseSearch(bytes.NewReader(body))
	if err != nil {
		recordSpanError(span, err, "parse failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("pesdb.records", len(results)))
	return results, nil
}

// FetchPlayer fetches the player page for id and extracts its attribute sheet.
func (c *Client) FetchPlayer(ctx context.Context, id string) (players.Detail, error) {
	body, err := c.PlayerPage(ctx, id)
	if err != nil {
		return players.Detail{}, err
	}

	_, span := tracer.Start(ctx, "pesdb.ParseDetail")
	defer span.End()

	detail, err := ParseDetail(bytes.NewReader(body), c.baseURL)
	if err != nil {
		recordSpanError(span, err, "parse failed")
		return players.Detail{}, err
	}
	span.SetAttributes(attribute.Int("pesdb.attributes", len(detail.Attributes)))
	return detail, nil
}

// SearchPage returns the raw HTML of the search results page for name.
func (c *Client) SearchPage(ctx context.Context, name string) ([]byte, error) {
	return c.fetch(ctx, "search", map[string]string{
		"name": name,
		"mode": modeMaxLevel,
		"all":  allResults,
	})
}

// PlayerPage returns the raw HTML of the player page for id.
func (c *Client) PlayerPage(ctx context.Context, id string) ([]byte, error) {
	return c.fetch(ctx, "player", map[string]string{
		"id":   id,
		"mode": modeMaxLevel,
	})
}

func (c *Client) fetch(ctx context.Context, op string, params map[string]string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "pesdb.fetch", trace.WithAttributes(
		attribute.String("pesdb.operation", op),
	))
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(c.baseURL.String())
	if err != nil {
		recordSpanError(span, err, "request failed")
		return nil, fmt.Errorf("pesdb %s: %w", op, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode()))
	if res.StatusCode() != http.StatusOK {
		statusErr := &providers.UpstreamStatusError{
			Provider:   providerName,
			StatusCode: res.StatusCode(),
			URL:        requestURL(res),
		}
		recordSpanError(span, statusErr, "unexpected status")
		return nil, statusErr
	}
	return res.Body(), nil
}

func requestURL(res *resty.Response) string {
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		return res.RawResponse.Request.URL.String()
	}
	if res.Request != nil {
		return res.Request.URL
	}
	return ""
}

func recordSpanError(span trace.Span, err error, msg string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
}

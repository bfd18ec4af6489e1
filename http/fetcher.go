// Package http provides an HTTP-based implementation of reader.Fetcher
// for pages that don't require JavaScript rendering.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/reader"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (compatible; reader/1.0)"

// AllOriginsProxy is the public CORS proxy endpoint. The target URL is
// appended query-escaped and the page comes back inside a JSON envelope.
const AllOriginsProxy = "https://api.allorigins.win/get?url="

// MaxBodySize caps how much of a response is read.
const MaxBodySize = 10 << 20

// Ensure Fetcher implements reader.Fetcher at compile time.
var _ reader.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static pages only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	proxy     string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithProxy routes every request through a JSON-envelope proxy such as
// AllOriginsProxy. endpoint must end where the escaped target URL goes.
func WithProxy(endpoint string) Option {
	return func(f *Fetcher) {
		f.proxy = endpoint
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	if f.proxy != "" {
		return f.fetchViaProxy(ctx, target)
	}

	body, contentType, err := f.get(ctx, target)
	if err != nil {
		return "", err
	}
	if !isHTML(contentType) {
		return "", reader.Errorf(reader.EINVALID, "%s is not an HTML page (content type %q)", target, contentType)
	}

	return string(body), nil
}

// proxyEnvelope is the response shape of AllOriginsProxy.
type proxyEnvelope struct {
	Contents string `json:"contents"`
}

func (f *Fetcher) fetchViaProxy(ctx context.Context, target string) (string, error) {
	body, _, err := f.get(ctx, f.proxy+url.QueryEscape(target))
	if err != nil {
		return "", err
	}

	var env proxyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("decode proxy response for %s: %w", target, err)
	}
	if env.Contents == "" {
		return "", reader.Errorf(reader.ENOTFOUND, "proxy returned no content for %s", target)
	}

	return env.Contents, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, "", reader.Errorf(reader.ENOTFOUND, "page not found: %s", rawURL)
	case resp.StatusCode != http.StatusOK:
		return nil, "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, "", err
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// isHTML reports whether contentType may carry an HTML document.
// A missing header is accepted.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

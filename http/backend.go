// Package http implements the static fetch strategy: a plain HTTP GET whose
// body is parsed as HTML without executing scripts.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/fwojciec/sitescan"
	"golang.org/x/net/html/charset"
	"golang.org/x/net/publicsuffix"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 10 << 20

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (compatible; sitescan/1.0; +https://github.com/fwojciec/sitescan)"

var (
	_ sitescan.Backend = (*Backend)(nil)
	_ sitescan.Fetcher = (*Fetcher)(nil)
)

// Backend opens static Fetchers. Each crawl gets its own client and cookie
// jar so session state persists across pages of one crawl only.
type Backend struct {
	parser       sitescan.Parser
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
	transport    http.RoundTripper
}

// Option configures a Backend.
type Option func(*Backend)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(b *Backend) {
		b.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(b *Backend) {
		b.userAgent = ua
	}
}

// WithMaxBodyBytes caps the number of body bytes parsed per page.
func WithMaxBodyBytes(n int64) Option {
	return func(b *Backend) {
		b.maxBodyBytes = n
	}
}

// WithTransport sets the round tripper used by opened clients.
func WithTransport(rt http.RoundTripper) Option {
	return func(b *Backend) {
		b.transport = rt
	}
}

// NewBackend creates a static Backend that parses bodies with parser.
func NewBackend(parser sitescan.Parser, opts ...Option) *Backend {
	b := &Backend{
		parser:       parser,
		timeout:      DefaultFetchTimeout,
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Engine returns sitescan.EngineStatic.
func (b *Backend) Engine() sitescan.Engine {
	return sitescan.EngineStatic
}

// Open creates a client with a fresh cookie jar.
func (b *Backend) Open(_ context.Context) (sitescan.Fetcher, error) {
	if b.parser == nil {
		return nil, sitescan.Errorf(sitescan.EUNAVAILABLE, "static backend has no HTML parser")
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, sitescan.Errorf(sitescan.EUNAVAILABLE, "create cookie jar: %v", err)
	}
	return &Fetcher{
		client: &http.Client{
			Timeout:   b.timeout,
			Jar:       jar,
			Transport: b.transport,
		},
		parser:       b.parser,
		userAgent:    b.userAgent,
		maxBodyBytes: b.maxBodyBytes,
	}, nil
}

// Fetcher retrieves pages with HTTP GET requests for the lifetime of one
// crawl. Unlike the rendered fetcher, it does not execute JavaScript.
type Fetcher struct {
	client       *http.Client
	parser       sitescan.Parser
	userAgent    string
	maxBodyBytes int64
}

// Engine returns sitescan.EngineStatic.
func (f *Fetcher) Engine() sitescan.Engine {
	return sitescan.EngineStatic
}

// Fetch downloads url, follows redirects and parses the body. Statuses
// outside 200-399 are errors. Relative links resolve against the final URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (sitescan.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, sitescan.Errorf(sitescan.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode body of %s: %w", url, err)
	}
	html, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	return f.parser.Parse(string(html), url, resp.Request.URL.String())
}

// Close drops idle connections. The client needs no other cleanup.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

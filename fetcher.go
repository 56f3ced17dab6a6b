package sitescan

import "context"

// Backend acquires the resources a fetch strategy needs for one crawl.
// Open is called once per crawl; the returned Fetcher owns everything that
// was acquired and must be closed when the crawl ends.
type Backend interface {
	// Engine returns the engine identifier recorded in the SiteSummary.
	Engine() Engine

	// Open acquires crawl-scoped resources (browser process, browsing
	// context, HTTP client with cookie jar). Returns an EUNAVAILABLE error if
	// the strategy cannot run in this environment.
	Open(ctx context.Context) (Fetcher, error)
}

// Fetcher loads pages using a single strategy for the lifetime of a crawl.
// State such as cookies persists across Fetch calls.
type Fetcher interface {
	Engine() Engine

	// Fetch loads the URL and returns a handle to the loaded page.
	// Network failures, navigation errors, timeouts and HTTP error statuses
	// are all reported as errors.
	Fetch(ctx context.Context, url string) (Document, error)

	// Close releases all resources acquired by Backend.Open.
	// Close is safe to call multiple times.
	Close() error
}

// Document is a loaded page.
type Document interface {
	// URL returns the URL the document was requested with.
	URL() string

	// Extract collects the raw page data used to build a PageSummary.
	Extract(ctx context.Context) (*Extraction, error)

	// Links returns up to limit absolute hrefs of a[href] elements in
	// document order.
	Links(ctx context.Context, limit int) ([]string, error)

	// Screenshot captures a full-page PNG. Backends that cannot render
	// return an ENOTIMPLEMENTED error.
	Screenshot(ctx context.Context) ([]byte, error)

	// Close releases the page. Safe to call multiple times.
	Close() error
}

// Parser turns raw HTML markup into a Document without executing scripts.
type Parser interface {
	// Parse parses html. baseURL resolves relative hrefs and url is the
	// URL the page was requested with.
	Parse(html string, url string, baseURL string) (Document, error)
}

// ArtifactStore persists crawl artifacts.
type ArtifactStore interface {
	// SaveScreenshot stores the PNG for the n-th recorded page (1-based) and
	// returns the path it was written to.
	SaveScreenshot(ctx context.Context, n int, png []byte) (string, error)
}

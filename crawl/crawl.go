// Package crawl explores a website breadth-first within a page budget and
// summarizes every page it visits.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/sitescan"
)

// Explorer crawls a site with the first backend that can be opened and
// builds a SiteSummary of the pages it visits.
type Explorer struct {
	// Backends are tried in order; the first one that opens is used for the
	// whole crawl.
	Backends []sitescan.Backend

	// Artifacts stores screenshots. Screenshots are skipped when nil.
	Artifacts sitescan.ArtifactStore

	// RateLimiter, if set, is waited on per host before every fetch.
	RateLimiter sitescan.DomainLimiter

	Logger   *slog.Logger
	Progress ProgressFunc

	// Now returns the crawl start time. Defaults to time.Now.
	Now func() time.Time
}

// Options bounds a single crawl.
type Options struct {
	// MaxPages is the number of frontier URLs dequeued at most, including
	// ones that are skipped or fail to load. Zero yields an empty summary.
	MaxPages int

	// SameOriginOnly restricts the crawl to the start URL's origin.
	SameOriginOnly bool

	// MaxLinksPerPage is the number of new links a page may add to the
	// frontier.
	MaxLinksPerPage int

	// Screenshots requests a full-page screenshot per recorded page.
	Screenshots bool
}

// DefaultOptions returns the options used when the caller sets nothing.
func DefaultOptions() Options {
	return Options{
		MaxPages:        5,
		SameOriginOnly:  true,
		MaxLinksPerPage: 30,
	}
}

// Validate returns an EINVALID error for unusable options.
func (o Options) Validate() error {
	if o.MaxPages < 0 {
		return sitescan.Errorf(sitescan.EINVALID, "max pages must not be negative, got %d", o.MaxPages)
	}
	if o.MaxLinksPerPage < 0 {
		return sitescan.Errorf(sitescan.EINVALID, "max links per page must not be negative, got %d", o.MaxLinksPerPage)
	}
	return nil
}

// Explore crawls breadth-first from startURL and returns the summary of every
// page that loaded. Pages that fail to load or extract are skipped and never
// retried.
//
// An invalid start URL or options yield EINVALID and no backend is touched.
// If no backend can be opened the error is EUNAVAILABLE. If ctx is canceled
// mid-crawl, the pages gathered so far are returned together with ctx.Err().
func (e *Explorer) Explore(ctx context.Context, startURL string, opts Options) (*sitescan.SiteSummary, error) {
	start, err := sitescan.ParseStartURL(startURL)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	seed, _ := sitescan.NormalizeLink(start.String())
	origin := sitescan.Origin(seed)

	startedAt := e.now()

	fetcher, err := e.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := fetcher.Close(); err != nil {
			e.logger().Warn("close fetcher", "engine", fetcher.Engine(), "err", err)
		}
	}()

	summary := &sitescan.SiteSummary{
		Engine:    fetcher.Engine(),
		StartedAt: startedAt,
		StartURL:  startURL,
		MaxPages:  opts.MaxPages,
		Pages:     []sitescan.PageSummary{},
	}

	frontier := NewFrontier(seed)
	visited := newVisitedSet(uint(opts.MaxPages))

	e.notify(ProgressEvent{Type: ProgressStarted, Total: opts.MaxPages, URL: seed})

	for i := range opts.MaxPages {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		event := ProgressEvent{Iteration: i + 1, Total: opts.MaxPages, URL: pageURL}

		if visited.Has(pageURL) {
			e.logger().Debug("skip visited", "url", pageURL)
			e.skip(event, "visited")
			continue
		}
		if opts.SameOriginOnly && sitescan.Origin(pageURL) != origin {
			e.logger().Debug("skip cross-origin", "url", pageURL)
			e.skip(event, "cross-origin")
			continue
		}
		visited.Add(pageURL)

		page, links, err := e.visit(ctx, fetcher, pageURL, len(summary.Pages)+1, opts)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			e.logger().Info("skip page", "url", pageURL, "err", err)
			event.Type, event.Err = ProgressFailed, err
			e.notify(event)
			continue
		}
		summary.Pages = append(summary.Pages, *page)

		next := selectLinks(links, visited, origin, opts)
		frontier.Push(next...)

		event.Type, event.Pages = ProgressVisited, len(summary.Pages)
		e.notify(event)
	}

	e.notify(ProgressEvent{Type: ProgressFinished, Total: opts.MaxPages, Pages: len(summary.Pages)})
	return summary, nil
}

// open returns a Fetcher from the first backend that opens.
func (e *Explorer) open(ctx context.Context) (sitescan.Fetcher, error) {
	if len(e.Backends) == 0 {
		return nil, sitescan.Errorf(sitescan.EUNAVAILABLE, "no fetch backend configured")
	}

	var errs []error
	for _, b := range e.Backends {
		f, err := b.Open(ctx)
		if err == nil {
			e.logger().Debug("backend selected", "engine", f.Engine())
			return f, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.logger().Info("backend unavailable", "engine", b.Engine(), "err", err)
		errs = append(errs, fmt.Errorf("%s: %w", b.Engine(), err))
	}
	return nil, sitescan.Errorf(sitescan.EUNAVAILABLE, "no fetch backend available: %v", errors.Join(errs...))
}

// visit loads one page, summarizes it and returns its outbound links. n is
// the 1-based index the page will have in the summary.
func (e *Explorer) visit(ctx context.Context, fetcher sitescan.Fetcher, pageURL string, n int, opts Options) (*sitescan.PageSummary, []string, error) {
	if e.RateLimiter != nil {
		if err := e.RateLimiter.Wait(ctx, hostOf(pageURL)); err != nil {
			return nil, nil, err
		}
	}

	doc, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = doc.Close() }()

	extraction, err := doc.Extract(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("extract: %w", err)
	}
	page := sitescan.Summarize(pageURL, extraction)

	if opts.Screenshots && e.Artifacts != nil {
		page.ScreenshotPath = e.screenshot(ctx, doc, n)
	}

	links, err := doc.Links(ctx, sitescan.MaxOutboundLinks)
	if err != nil {
		e.logger().Debug("collect links", "url", pageURL, "err", err)
		links = nil
	}
	return &page, links, nil
}

// screenshot captures and stores the page screenshot. Failures are logged
// and yield an empty path.
func (e *Explorer) screenshot(ctx context.Context, doc sitescan.Document, n int) string {
	png, err := doc.Screenshot(ctx)
	if err != nil {
		e.logger().Debug("capture screenshot", "url", doc.URL(), "err", err)
		return ""
	}
	path, err := e.Artifacts.SaveScreenshot(ctx, n, png)
	if err != nil {
		e.logger().Info("save screenshot", "url", doc.URL(), "err", err)
		return ""
	}
	return path
}

// selectLinks returns the links a page adds to the frontier: http(s) only,
// fragment stripped, not yet visited, same origin when required, at most
// opts.MaxLinksPerPage of them in document order.
func selectLinks(links []string, visited *visitedSet, origin string, opts Options) []string {
	var next []string
	for _, raw := range links {
		if len(next) >= opts.MaxLinksPerPage {
			break
		}
		link, ok := sitescan.NormalizeLink(raw)
		if !ok || visited.Has(link) {
			continue
		}
		if opts.SameOriginOnly && sitescan.Origin(link) != origin {
			continue
		}
		next = append(next, link)
	}
	return next
}

func (e *Explorer) skip(event ProgressEvent, reason string) {
	event.Type, event.Reason = ProgressSkipped, reason
	e.notify(event)
}

func (e *Explorer) notify(event ProgressEvent) {
	if e.Progress != nil {
		e.Progress(event)
	}
}

func (e *Explorer) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func (e *Explorer) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

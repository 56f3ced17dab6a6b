package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/sitescan"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Ensure Fetcher implements sitescan.Fetcher at compile time.
var _ sitescan.Fetcher = (*Fetcher)(nil)

// Fetcher loads pages in the crawl's browsing context, one tab per URL.
// Cookies and storage persist across pages until Close.
type Fetcher struct {
	session           *session
	stealth           bool
	navigationTimeout time.Duration
}

// Engine returns sitescan.EngineRendered.
func (f *Fetcher) Engine() sitescan.Engine {
	return sitescan.EngineRendered
}

// Fetch opens a tab, navigates to url and waits for DOMContentLoaded.
// Navigation errors, timeouts and HTTP statuses of 400 and above are
// returned as errors and the tab is closed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (sitescan.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.newPage()
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if err := f.navigate(ctx, page, url); err != nil {
		_ = page.Close()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	return &Document{url: url, page: page}, nil
}

func (f *Fetcher) newPage() (*rod.Page, error) {
	if f.stealth {
		return stealth.Page(f.session.context)
	}
	return f.session.context.Page(proto.TargetCreateTarget{})
}

func (f *Fetcher) navigate(ctx context.Context, page *rod.Page, url string) error {
	p := page.Context(ctx).Timeout(f.navigationTimeout)
	defer p.CancelTimeout()

	wait := p.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	wait()

	status, err := responseStatus(p)
	if err != nil {
		return fmt.Errorf("reading status of %s: %w", url, err)
	}
	if status >= 400 {
		return fmt.Errorf("HTTP %d for %s", status, url)
	}
	return nil
}

// responseStatus reads the HTTP status of the main document from the
// Navigation Timing entry. Zero means the browser did not report one.
func responseStatus(p *rod.Page) (int, error) {
	res, err := p.Eval(`() => {
		const nav = performance.getEntriesByType('navigation')[0];
		return nav && nav.responseStatus ? nav.responseStatus : 0;
	}`)
	if err != nil {
		return 0, err
	}
	return res.Value.Int(), nil
}

// Close disposes the browsing context, closes the browser and kills the
// browser process. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.session.close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.session.launcherPID()
}

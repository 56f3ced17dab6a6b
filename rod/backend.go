// Package rod implements the rendered fetch strategy on top of a headless
// Chrome driven by go-rod.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/sitescan"
)

// DefaultNavigationTimeout bounds a single page navigation.
const DefaultNavigationTimeout = 20 * time.Second

var _ sitescan.Backend = (*Backend)(nil)

type config struct {
	headless          bool
	bin               string
	noSandbox         bool
	stealth           bool
	controlURL        string
	navigationTimeout time.Duration
}

// Backend launches one browser per crawl.
type Backend struct {
	cfg config
}

// Option configures a Backend.
type Option func(*config)

// WithHeadless toggles headless mode. Defaults to true.
func WithHeadless(headless bool) Option {
	return func(c *config) {
		c.headless = headless
	}
}

// WithBin sets the Chrome binary. By default the binary is looked up on the
// system; Chrome is never downloaded.
func WithBin(path string) Option {
	return func(c *config) {
		c.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox, which is required when running
// as root in containers.
func WithNoSandbox(noSandbox bool) Option {
	return func(c *config) {
		c.noSandbox = noSandbox
	}
}

// WithStealth creates pages with evasions for common headless detection.
func WithStealth(stealth bool) Option {
	return func(c *config) {
		c.stealth = stealth
	}
}

// WithControlURL attaches to an already running browser instead of
// launching one, e.g. "ws://127.0.0.1:9222/devtools/browser/...".
func WithControlURL(u string) Option {
	return func(c *config) {
		c.controlURL = u
	}
}

// WithNavigationTimeout sets the per-page navigation timeout.
// Defaults to DefaultNavigationTimeout (20s) if not specified.
func WithNavigationTimeout(d time.Duration) Option {
	return func(c *config) {
		c.navigationTimeout = d
	}
}

// NewBackend creates a rendered Backend.
func NewBackend(opts ...Option) *Backend {
	cfg := config{
		headless:          true,
		navigationTimeout: DefaultNavigationTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Backend{cfg: cfg}
}

// Engine returns sitescan.EngineRendered.
func (b *Backend) Engine() sitescan.Engine {
	return sitescan.EngineRendered
}

// Open launches the browser and opens the crawl's browsing context.
// Returns EUNAVAILABLE if no browser can be started.
func (b *Backend) Open(ctx context.Context) (sitescan.Fetcher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := launchSession(b.cfg)
	if err != nil {
		return nil, sitescan.Errorf(sitescan.EUNAVAILABLE, "rendered engine unavailable: %v", err)
	}
	return &Fetcher{
		session:           s,
		stealth:           b.cfg.stealth,
		navigationTimeout: b.cfg.navigationTimeout,
	}, nil
}

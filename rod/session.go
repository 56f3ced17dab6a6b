package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// session owns the browser resources of one crawl: the launched Chrome
// process, the browser connection and an incognito browsing context that
// all pages of the crawl share.
type session struct {
	launcher *launcher.Launcher // nil when attached to an existing browser
	browser  *rod.Browser
	context  *rod.Browser

	once     sync.Once
	closeErr error
}

// launchSession starts Chrome with stability flags and opens an incognito
// context.
func launchSession(cfg config) (*session, error) {
	if cfg.controlURL != "" {
		return connectSession(nil, cfg.controlURL)
	}

	bin := cfg.bin
	if bin == "" {
		path, ok := launcher.LookPath()
		if !ok {
			return nil, fmt.Errorf("no Chrome or Chromium binary found")
		}
		bin = path
	}

	l := launcher.New().
		Bin(bin).
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		NoSandbox(cfg.noSandbox).
		Leakless(true).
		Headless(cfg.headless)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	return connectSession(l, u)
}

func connectSession(l *launcher.Launcher, controlURL string) (*session, error) {
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		if l != nil {
			l.Kill()
		}
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	incognito, err := browser.Incognito()
	if err != nil {
		_ = browser.Close()
		if l != nil {
			l.Kill()
		}
		return nil, fmt.Errorf("creating browsing context: %w", err)
	}

	return &session{launcher: l, browser: browser, context: incognito}, nil
}

// close disposes the browsing context, closes the browser and kills the
// launched process. It is safe to call multiple times.
func (s *session) close() error {
	s.once.Do(func() {
		if err := s.context.Close(); err != nil {
			s.closeErr = fmt.Errorf("closing browsing context: %w", err)
		}
		if s.launcher == nil {
			// Attached to a browser we did not start; leave it running.
			return
		}
		if err := s.browser.Close(); err != nil && s.closeErr == nil {
			s.closeErr = fmt.Errorf("closing browser: %w", err)
		}
		s.launcher.Kill()
	})
	return s.closeErr
}

// launcherPID returns the process ID of the browser launcher, or 0 when
// attached to an existing browser.
func (s *session) launcherPID() int {
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}

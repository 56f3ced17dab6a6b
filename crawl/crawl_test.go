package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/sitescan"
	"github.com/fwojciec/sitescan/crawl"
	"github.com/fwojciec/sitescan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage describes how a URL behaves in a fakeSite.
type fakePage struct {
	title      string
	links      []string
	fetchErr   error
	extractErr error
	linksErr   error
	shotErr    error
}

// fakeSite serves fakePages through mock backends and records every call.
type fakeSite struct {
	pages   map[string]fakePage
	fetched []string
	docs    int
	closed  int
	opened  int
	limits  []int
}

func newFakeSite(pages map[string]fakePage) *fakeSite {
	return &fakeSite{pages: pages}
}

func (s *fakeSite) backend(engine sitescan.Engine) *mock.Backend {
	return &mock.Backend{
		EngineFn: func() sitescan.Engine { return engine },
		OpenFn: func(_ context.Context) (sitescan.Fetcher, error) {
			s.opened++
			return &mock.Fetcher{
				EngineFn: func() sitescan.Engine { return engine },
				FetchFn:  s.fetch,
				CloseFn: func() error {
					s.closed++
					return nil
				},
			}, nil
		},
	}
}

func (s *fakeSite) fetch(_ context.Context, url string) (sitescan.Document, error) {
	s.fetched = append(s.fetched, url)
	page, ok := s.pages[url]
	if !ok {
		return nil, fmt.Errorf("status 404 for %s", url)
	}
	if page.fetchErr != nil {
		return nil, page.fetchErr
	}
	return &mock.Document{
		URLFn: func() string { return url },
		ExtractFn: func(_ context.Context) (*sitescan.Extraction, error) {
			if page.extractErr != nil {
				return nil, page.extractErr
			}
			return &sitescan.Extraction{Title: page.title}, nil
		},
		LinksFn: func(_ context.Context, limit int) ([]string, error) {
			s.limits = append(s.limits, limit)
			return page.links, page.linksErr
		},
		ScreenshotFn: func(_ context.Context) ([]byte, error) {
			if page.shotErr != nil {
				return nil, page.shotErr
			}
			return []byte("png:" + url), nil
		},
		CloseFn: func() error {
			s.docs++
			return nil
		},
	}, nil
}

func pageURLs(s *sitescan.SiteSummary) []string {
	urls := make([]string, 0, len(s.Pages))
	for _, p := range s.Pages {
		urls = append(urls, p.URL)
	}
	return urls
}

func opts(maxPages int) crawl.Options {
	o := crawl.DefaultOptions()
	o.MaxPages = maxPages
	return o
}

func TestExplorer_Explore(t *testing.T) {
	t.Parallel()

	t.Run("records single page", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {title: "Home"},
		})
		startedAt := time.Unix(1700000000, 0)
		e := &crawl.Explorer{
			Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)},
			Now:      func() time.Time { return startedAt },
		}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(1))

		require.NoError(t, err)
		assert.Equal(t, sitescan.EngineStatic, summary.Engine)
		assert.Equal(t, startedAt, summary.StartedAt)
		assert.Equal(t, "https://example.com/", summary.StartURL)
		assert.Equal(t, 1, summary.MaxPages)
		require.Len(t, summary.Pages, 1)
		assert.Equal(t, "Home", summary.Pages[0].Title)
		assert.Equal(t, []int{sitescan.MaxOutboundLinks}, site.limits)
	})

	t.Run("visits pages in BFS order", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a", "https://example.com/b"}},
			"https://example.com/a": {links: []string{"https://example.com/c"}},
			"https://example.com/b": {links: []string{"https://example.com/d"}},
			"https://example.com/c": {},
			"https://example.com/d": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineRendered)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(5))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/",
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
			"https://example.com/d",
		}, pageURLs(summary))
	})

	t.Run("common page appears once", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":       {links: []string{"https://example.com/a", "https://example.com/b"}},
			"https://example.com/a":      {links: []string{"https://example.com/common"}},
			"https://example.com/b":      {links: []string{"https://example.com/common"}},
			"https://example.com/common": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(10))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/",
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/common",
		}, pageURLs(summary))
		assert.Equal(t, []string{
			"https://example.com/",
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/common",
		}, site.fetched)
	})

	t.Run("never exceeds page budget", func(t *testing.T) {
		t.Parallel()

		pages := map[string]fakePage{}
		var links []string
		for i := range 20 {
			u := fmt.Sprintf("https://example.com/p%d", i)
			links = append(links, u)
			pages[u] = fakePage{}
		}
		pages["https://example.com/"] = fakePage{links: links}
		site := newFakeSite(pages)
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(3))

		require.NoError(t, err)
		assert.Len(t, summary.Pages, 3)
		assert.Len(t, site.fetched, 3)
	})

	t.Run("stays on start origin", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {links: []string{
				"https://other.com/x",
				"http://example.com/insecure",
				"https://www.example.com/",
				"https://example.com/a",
			}},
			"https://example.com/a": {},
			"https://other.com/x":   {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(5))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/", "https://example.com/a"}, pageURLs(summary))
		assert.NotContains(t, site.fetched, "https://other.com/x")
	})

	t.Run("follows other origins when allowed", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {links: []string{"https://other.com/x"}},
			"https://other.com/x":  {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}
		o := opts(5)
		o.SameOriginOnly = false

		summary, err := e.Explore(context.Background(), "https://example.com/", o)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/", "https://other.com/x"}, pageURLs(summary))
	})

	t.Run("failed fetch consumes an iteration", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a", "https://example.com/b"}},
			"https://example.com/a": {fetchErr: errors.New("timeout")},
			"https://example.com/b": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(2))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/"}, pageURLs(summary))
		assert.Equal(t, []string{"https://example.com/", "https://example.com/a"}, site.fetched)
	})

	t.Run("failed URL is never retried", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a", "https://example.com/b"}},
			"https://example.com/a": {fetchErr: errors.New("connection reset")},
			"https://example.com/b": {links: []string{"https://example.com/a", "https://example.com/c"}},
			"https://example.com/c": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(10))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/", "https://example.com/b", "https://example.com/c"}, pageURLs(summary))
		assert.Equal(t, []string{
			"https://example.com/",
			"https://example.com/a",
			"https://example.com/b",
			"https://example.com/c",
		}, site.fetched)
	})

	t.Run("start page failure yields no pages", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {fetchErr: errors.New("status 500")},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineRendered)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(3))

		require.NoError(t, err)
		assert.NotNil(t, summary.Pages)
		assert.Empty(t, summary.Pages)
		assert.Equal(t, 1, site.closed)
	})

	t.Run("extraction failure skips page", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a", "https://example.com/b"}},
			"https://example.com/a": {extractErr: errors.New("evaluation failed")},
			"https://example.com/b": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(5))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/", "https://example.com/b"}, pageURLs(summary))
		assert.Equal(t, 3, site.docs, "every fetched document is closed")
	})

	t.Run("link collection failure keeps page", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {links: []string{"https://example.com/a"}, linksErr: errors.New("detached")},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(5))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/"}, pageURLs(summary))
	})

	t.Run("duplicate links are dropped at dequeue", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a", "https://example.com/a", "https://example.com/b"}},
			"https://example.com/a": {},
			"https://example.com/b": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(3))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/", "https://example.com/a"}, pageURLs(summary))
	})

	t.Run("normalizes links", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {links: []string{
				"https://example.com/#top",
				"mailto:hello@example.com",
				"javascript:void(0)",
				"https://example.com/a#intro",
			}},
			"https://example.com/a": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com", opts(5))

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", summary.StartURL)
		assert.Equal(t, []string{"https://example.com/", "https://example.com/a"}, pageURLs(summary))
	})

	t.Run("caps links per page", func(t *testing.T) {
		t.Parallel()

		pages := map[string]fakePage{}
		var links []string
		for i := range 5 {
			u := fmt.Sprintf("https://example.com/p%d", i)
			links = append(links, u)
			pages[u] = fakePage{}
		}
		pages["https://example.com/"] = fakePage{links: links}
		site := newFakeSite(pages)
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}
		o := opts(10)
		o.MaxLinksPerPage = 2

		summary, err := e.Explore(context.Background(), "https://example.com/", o)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/", "https://example.com/p0", "https://example.com/p1"}, pageURLs(summary))
	})

	t.Run("saves screenshots", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a"}},
			"https://example.com/a": {},
		})
		var saved []int
		e := &crawl.Explorer{
			Backends: []sitescan.Backend{site.backend(sitescan.EngineRendered)},
			Artifacts: &mock.ArtifactStore{
				SaveScreenshotFn: func(_ context.Context, n int, png []byte) (string, error) {
					saved = append(saved, n)
					return fmt.Sprintf("artifacts/page_%d.png", n), nil
				},
			},
		}
		o := opts(5)
		o.Screenshots = true

		summary, err := e.Explore(context.Background(), "https://example.com/", o)

		require.NoError(t, err)
		require.Len(t, summary.Pages, 2)
		assert.Equal(t, "artifacts/page_1.png", summary.Pages[0].ScreenshotPath)
		assert.Equal(t, "artifacts/page_2.png", summary.Pages[1].ScreenshotPath)
		assert.Equal(t, []int{1, 2}, saved)
	})

	t.Run("screenshot index follows recorded pages", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a", "https://example.com/b"}},
			"https://example.com/a": {fetchErr: errors.New("timeout")},
			"https://example.com/b": {},
		})
		var saved []int
		e := &crawl.Explorer{
			Backends: []sitescan.Backend{site.backend(sitescan.EngineRendered)},
			Artifacts: &mock.ArtifactStore{
				SaveScreenshotFn: func(_ context.Context, n int, _ []byte) (string, error) {
					saved = append(saved, n)
					return fmt.Sprintf("page_%d.png", n), nil
				},
			},
		}
		o := opts(5)
		o.Screenshots = true

		_, err := e.Explore(context.Background(), "https://example.com/", o)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, saved)
	})

	t.Run("screenshot failure keeps page without path", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {shotErr: sitescan.Errorf(sitescan.ENOTIMPLEMENTED, "no screenshots")},
		})
		e := &crawl.Explorer{
			Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)},
			Artifacts: &mock.ArtifactStore{
				SaveScreenshotFn: func(context.Context, int, []byte) (string, error) {
					t.Fatal("SaveScreenshot should not be called")
					return "", nil
				},
			},
		}
		o := opts(1)
		o.Screenshots = true

		summary, err := e.Explore(context.Background(), "https://example.com/", o)

		require.NoError(t, err)
		require.Len(t, summary.Pages, 1)
		assert.Empty(t, summary.Pages[0].ScreenshotPath)
	})

	t.Run("save failure keeps page without path", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{"https://example.com/": {}})
		e := &crawl.Explorer{
			Backends: []sitescan.Backend{site.backend(sitescan.EngineRendered)},
			Artifacts: &mock.ArtifactStore{
				SaveScreenshotFn: func(context.Context, int, []byte) (string, error) {
					return "", errors.New("disk full")
				},
			},
		}
		o := opts(1)
		o.Screenshots = true

		summary, err := e.Explore(context.Background(), "https://example.com/", o)

		require.NoError(t, err)
		require.Len(t, summary.Pages, 1)
		assert.Empty(t, summary.Pages[0].ScreenshotPath)
	})

	t.Run("skips screenshots without artifact store", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {shotErr: errors.New("must not be called")},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineRendered)}}
		o := opts(1)
		o.Screenshots = true

		summary, err := e.Explore(context.Background(), "https://example.com/", o)

		require.NoError(t, err)
		require.Len(t, summary.Pages, 1)
		assert.Empty(t, summary.Pages[0].ScreenshotPath)
	})

	t.Run("falls back to next backend", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{"https://example.com/": {}})
		rendered := &mock.Backend{
			EngineFn: func() sitescan.Engine { return sitescan.EngineRendered },
			OpenFn: func(context.Context) (sitescan.Fetcher, error) {
				return nil, sitescan.Errorf(sitescan.EUNAVAILABLE, "chrome not found")
			},
		}
		e := &crawl.Explorer{Backends: []sitescan.Backend{rendered, site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(1))

		require.NoError(t, err)
		assert.Equal(t, sitescan.EngineStatic, summary.Engine)
		assert.Len(t, summary.Pages, 1)
	})

	t.Run("no backend available", func(t *testing.T) {
		t.Parallel()

		broken := &mock.Backend{
			EngineFn: func() sitescan.Engine { return sitescan.EngineRendered },
			OpenFn: func(context.Context) (sitescan.Fetcher, error) {
				return nil, errors.New("launch failed")
			},
		}
		e := &crawl.Explorer{Backends: []sitescan.Backend{broken}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(1))

		assert.Nil(t, summary)
		assert.Equal(t, sitescan.EUNAVAILABLE, sitescan.ErrorCode(err))
	})

	t.Run("no backend configured", func(t *testing.T) {
		t.Parallel()

		e := &crawl.Explorer{}

		_, err := e.Explore(context.Background(), "https://example.com/", opts(1))

		assert.Equal(t, sitescan.EUNAVAILABLE, sitescan.ErrorCode(err))
	})

	t.Run("invalid start URL touches no backend", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(nil)
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		_, err := e.Explore(context.Background(), "not a url", opts(1))

		assert.Equal(t, sitescan.EINVALID, sitescan.ErrorCode(err))
		assert.Equal(t, 0, site.opened)
	})

	t.Run("start URL host case does not duplicate the home page", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/", "https://example.com/a"}},
			"https://example.com/a": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineRendered)}}

		summary, err := e.Explore(context.Background(), "https://Example.com", opts(5))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/", "https://example.com/a"}, pageURLs(summary))
		assert.Equal(t, "https://Example.com", summary.StartURL)
	})

	t.Run("zero page budget yields empty summary", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/": {title: "Home"},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		summary, err := e.Explore(context.Background(), "https://example.com/", opts(0))

		require.NoError(t, err)
		assert.Equal(t, sitescan.EngineStatic, summary.Engine)
		assert.Equal(t, 0, summary.MaxPages)
		assert.NotNil(t, summary.Pages)
		assert.Empty(t, summary.Pages)
		assert.Empty(t, site.fetched)
		assert.Equal(t, 1, site.closed)
	})

	t.Run("invalid options", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(nil)
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		_, err := e.Explore(context.Background(), "https://example.com/", opts(-1))
		assert.Equal(t, sitescan.EINVALID, sitescan.ErrorCode(err))

		o := opts(1)
		o.MaxLinksPerPage = -1
		_, err = e.Explore(context.Background(), "https://example.com/", o)
		assert.Equal(t, sitescan.EINVALID, sitescan.ErrorCode(err))

		assert.Equal(t, 0, site.opened)
	})

	t.Run("cancellation returns partial summary and closes fetcher", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a", "https://example.com/b"}},
			"https://example.com/b": {},
		})
		backend := site.backend(sitescan.EngineStatic)
		e := &crawl.Explorer{
			Backends: []sitescan.Backend{backend},
			Progress: func(ev crawl.ProgressEvent) {
				if ev.Type == crawl.ProgressVisited {
					cancel()
				}
			},
		}

		summary, err := e.Explore(ctx, "https://example.com/", opts(5))

		assert.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, summary)
		assert.Equal(t, []string{"https://example.com/"}, pageURLs(summary))
		assert.Equal(t, 1, site.closed)
	})

	t.Run("closes fetcher once", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a"}},
			"https://example.com/a": {},
		})
		e := &crawl.Explorer{Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)}}

		_, err := e.Explore(context.Background(), "https://example.com/", opts(5))

		require.NoError(t, err)
		assert.Equal(t, 1, site.opened)
		assert.Equal(t, 1, site.closed)
	})

	t.Run("waits on rate limiter per host", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a"}},
			"https://example.com/a": {},
		})
		var hosts []string
		e := &crawl.Explorer{
			Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)},
			RateLimiter: &mock.DomainLimiter{
				WaitFn: func(_ context.Context, domain string) error {
					hosts = append(hosts, domain)
					return nil
				},
			},
		}

		_, err := e.Explore(context.Background(), "https://example.com/", opts(5))

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com", "example.com"}, hosts)
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		site := newFakeSite(map[string]fakePage{
			"https://example.com/":  {links: []string{"https://example.com/a", "https://example.com/a", "https://example.com/b"}},
			"https://example.com/a": {},
			"https://example.com/b": {fetchErr: errors.New("timeout")},
		})
		var types []crawl.ProgressType
		e := &crawl.Explorer{
			Backends: []sitescan.Backend{site.backend(sitescan.EngineStatic)},
			Progress: func(ev crawl.ProgressEvent) { types = append(types, ev.Type) },
		}

		_, err := e.Explore(context.Background(), "https://example.com/", opts(5))

		require.NoError(t, err)
		assert.Equal(t, []crawl.ProgressType{
			crawl.ProgressStarted,
			crawl.ProgressVisited,
			crawl.ProgressVisited,
			crawl.ProgressSkipped,
			crawl.ProgressFailed,
			crawl.ProgressFinished,
		}, types)
	})
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	o := crawl.DefaultOptions()

	assert.Equal(t, 5, o.MaxPages)
	assert.True(t, o.SameOriginOnly)
	assert.Equal(t, 30, o.MaxLinksPerPage)
	assert.False(t, o.Screenshots)
	assert.NoError(t, o.Validate())
}

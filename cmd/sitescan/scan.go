package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/sitescan"
	"github.com/fwojciec/sitescan/crawl"
	"github.com/fwojciec/sitescan/fs"
	"github.com/fwojciec/sitescan/goquery"
	sitehttp "github.com/fwojciec/sitescan/http"
	"github.com/fwojciec/sitescan/markdown"
	"github.com/fwojciec/sitescan/rod"
	siteslog "github.com/fwojciec/sitescan/slog"
	"github.com/google/uuid"
)

// Run executes the scan command. If the crawl is interrupted, the pages
// gathered so far are still printed before the error is returned.
func (c *ScanCmd) Run(deps *Dependencies) error {
	logger := deps.Logger.With("crawl", uuid.NewString())

	backends := deps.Backends
	if backends == nil {
		backends = c.backends(logger)
	}

	explorer := &crawl.Explorer{
		Backends:    backends,
		RateLimiter: crawl.NewDomainLimiter(c.Rate),
		Logger:      logger,
	}
	if c.ArtifactsDir != "" {
		explorer.Artifacts = fs.NewArtifactStore(c.ArtifactsDir)
	}
	if deps.Verbose {
		explorer.Progress = func(ev crawl.ProgressEvent) {
			fmt.Fprintln(deps.Stderr, crawl.FormatProgress(ev))
		}
	}

	summary, err := explorer.Explore(deps.Ctx, c.URL, c.options())
	if summary == nil {
		if sitescan.ErrorCode(err) == sitescan.EUNAVAILABLE && !c.Static {
			fmt.Fprintln(deps.Stderr, "Hint: install Chrome or Chromium, or pass --static")
		}
		return err
	}

	if c.SiteOut != "" {
		if werr := fs.WriteSummary(c.SiteOut, summary); werr != nil {
			return errors.Join(err, werr)
		}
	}

	out := summary
	if c.Trim {
		out = sitescan.Trim(summary, sitescan.DefaultTrimLimits())
	}
	if werr := writeSummary(deps.Stdout, out, c.Format); werr != nil {
		return errors.Join(err, werr)
	}
	return err
}

func (c *ScanCmd) options() crawl.Options {
	return crawl.Options{
		MaxPages:        c.MaxPages,
		SameOriginOnly:  !c.CrossOrigin,
		MaxLinksPerPage: c.MaxLinksPerPage,
		Screenshots:     c.ArtifactsDir != "" && !c.NoScreenshot,
	}
}

// backends returns the rendered backend followed by the static fallback,
// or only the static backend with --static.
func (c *ScanCmd) backends(logger *slog.Logger) []sitescan.Backend {
	static := siteslog.NewLoggingBackend(
		sitehttp.NewBackend(goquery.NewParser(), sitehttp.WithTimeout(c.FetchTimeout)),
		logger,
	)
	if c.Static {
		return []sitescan.Backend{static}
	}

	rendered := siteslog.NewLoggingBackend(
		rod.NewBackend(
			rod.WithHeadless(!c.Headed),
			rod.WithBin(c.Chrome),
			rod.WithControlURL(c.ControlURL),
			rod.WithNoSandbox(c.NoSandbox),
			rod.WithStealth(c.Stealth),
			rod.WithNavigationTimeout(c.Timeout),
		),
		logger,
	)
	return []sitescan.Backend{rendered, static}
}

// writeSummary prints s to w as indented JSON or as a Markdown report.
func writeSummary(w io.Writer, s *sitescan.SiteSummary, format string) error {
	switch format {
	case FormatMarkdown:
		return markdown.NewReportWriter(w).Write(s)
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return sitescan.Errorf(sitescan.EINVALID, "unknown format %q", format)
	}
}

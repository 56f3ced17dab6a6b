// Package slog provides log/slog decorators for the fetch strategy
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitescan"
)

var (
	_ sitescan.Backend  = (*LoggingBackend)(nil)
	_ sitescan.Fetcher  = (*LoggingFetcher)(nil)
	_ sitescan.Document = (*LoggingDocument)(nil)
)

// LoggingBackend wraps a Backend and logs every Open. Fetchers it opens are
// wrapped in LoggingFetcher.
type LoggingBackend struct {
	next   sitescan.Backend
	logger *slog.Logger
}

// NewLoggingBackend creates a new LoggingBackend.
func NewLoggingBackend(next sitescan.Backend, logger *slog.Logger) *LoggingBackend {
	return &LoggingBackend{next: next, logger: logger}
}

// Engine delegates to the wrapped backend.
func (b *LoggingBackend) Engine() sitescan.Engine {
	return b.next.Engine()
}

// Open logs the engine being opened and delegates to the wrapped backend.
func (b *LoggingBackend) Open(ctx context.Context) (_ sitescan.Fetcher, err error) {
	defer func(begin time.Time) {
		b.logger.Info("open backend",
			"engine", b.next.Engine(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	f, err := b.next.Open(ctx)
	if err != nil {
		return nil, err
	}
	return NewLoggingFetcher(f, b.logger), nil
}

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   sitescan.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitescan.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Engine delegates to the wrapped fetcher.
func (f *LoggingFetcher) Engine() sitescan.Engine {
	return f.next.Engine()
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (_ sitescan.Document, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"engine", f.next.Engine(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	doc, err := f.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return &LoggingDocument{next: doc, logger: f.logger}, nil
}

// Close logs and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() (err error) {
	defer func() {
		f.logger.Debug("close fetcher", "engine", f.next.Engine(), "err", err)
	}()
	return f.next.Close()
}

// LoggingDocument wraps a Document with debug logging.
type LoggingDocument struct {
	next   sitescan.Document
	logger *slog.Logger
}

// URL delegates to the wrapped document.
func (d *LoggingDocument) URL() string {
	return d.next.URL()
}

// Extract logs extraction counts and delegates to the wrapped document.
func (d *LoggingDocument) Extract(ctx context.Context) (e *sitescan.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", d.next.URL(), "duration", time.Since(begin), "err", err}
		if e != nil {
			attrs = append(attrs,
				"headings", len(e.Headings),
				"clickables", len(e.Elements),
				"forms", len(e.Forms),
			)
		}
		d.logger.Debug("extract", attrs...)
	}(time.Now())
	return d.next.Extract(ctx)
}

// Links logs the number of links found and delegates to the wrapped document.
func (d *LoggingDocument) Links(ctx context.Context, limit int) (links []string, err error) {
	defer func() {
		d.logger.Debug("links", "url", d.next.URL(), "count", len(links), "err", err)
	}()
	return d.next.Links(ctx, limit)
}

// Screenshot logs the capture size and delegates to the wrapped document.
func (d *LoggingDocument) Screenshot(ctx context.Context) (png []byte, err error) {
	defer func(begin time.Time) {
		d.logger.Debug("screenshot",
			"url", d.next.URL(),
			"bytes", len(png),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Screenshot(ctx)
}

// Close delegates to the wrapped document.
func (d *LoggingDocument) Close() error {
	return d.next.Close()
}

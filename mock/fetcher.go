package mock

import (
	"context"

	"github.com/fwojciec/sitescan"
)

var (
	_ sitescan.Backend  = (*Backend)(nil)
	_ sitescan.Fetcher  = (*Fetcher)(nil)
	_ sitescan.Document = (*Document)(nil)
	_ sitescan.Parser   = (*Parser)(nil)
)

// Backend is a mock implementation of sitescan.Backend.
type Backend struct {
	EngineFn func() sitescan.Engine
	OpenFn   func(ctx context.Context) (sitescan.Fetcher, error)
}

func (b *Backend) Engine() sitescan.Engine {
	return b.EngineFn()
}

func (b *Backend) Open(ctx context.Context) (sitescan.Fetcher, error) {
	return b.OpenFn(ctx)
}

// Fetcher is a mock implementation of sitescan.Fetcher.
type Fetcher struct {
	EngineFn func() sitescan.Engine
	FetchFn  func(ctx context.Context, url string) (sitescan.Document, error)
	CloseFn  func() error
}

func (f *Fetcher) Engine() sitescan.Engine {
	return f.EngineFn()
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (sitescan.Document, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// Document is a mock implementation of sitescan.Document.
type Document struct {
	URLFn        func() string
	ExtractFn    func(ctx context.Context) (*sitescan.Extraction, error)
	LinksFn      func(ctx context.Context, limit int) ([]string, error)
	ScreenshotFn func(ctx context.Context) ([]byte, error)
	CloseFn      func() error
}

func (d *Document) URL() string {
	return d.URLFn()
}

func (d *Document) Extract(ctx context.Context) (*sitescan.Extraction, error) {
	return d.ExtractFn(ctx)
}

func (d *Document) Links(ctx context.Context, limit int) ([]string, error) {
	return d.LinksFn(ctx, limit)
}

func (d *Document) Screenshot(ctx context.Context) ([]byte, error) {
	return d.ScreenshotFn(ctx)
}

func (d *Document) Close() error {
	return d.CloseFn()
}

// Parser is a mock implementation of sitescan.Parser.
type Parser struct {
	ParseFn func(html, url, baseURL string) (sitescan.Document, error)
}

func (p *Parser) Parse(html, url, baseURL string) (sitescan.Document, error) {
	return p.ParseFn(html, url, baseURL)
}

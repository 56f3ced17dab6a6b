package rod

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fwojciec/sitescan"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// extractScript collects every field of sitescan.Extraction in a single
// evaluation. It takes the extraction caps as its only argument.
//
//go:embed extract.js
var extractScript string

const linksScript = `(limit) => {
	const out = [];
	for (const a of document.querySelectorAll('a[href]')) {
		if (out.length >= limit) break;
		try {
			out.push(new URL(a.getAttribute('href'), document.baseURI).href);
		} catch (e) {}
	}
	return out;
}`

var _ sitescan.Document = (*Document)(nil)

// Document is a loaded browser tab.
type Document struct {
	url  string
	page *rod.Page

	once     sync.Once
	closeErr error
}

// URL returns the URL the page was requested with.
func (d *Document) URL() string {
	return d.url
}

// Extract evaluates the extraction script in the page.
func (d *Document) Extract(ctx context.Context) (*sitescan.Extraction, error) {
	limits := map[string]int{
		"headings":   sitescan.MaxHeadings,
		"navLinks":   sitescan.MaxNavLinks,
		"clickables": sitescan.MaxClickables,
		"forms":      sitescan.MaxForms,
		"fields":     sitescan.MaxFormFields,
	}
	res, err := d.page.Context(ctx).Eval(extractScript, limits)
	if err != nil {
		return nil, fmt.Errorf("evaluating extraction script: %w", err)
	}

	var e sitescan.Extraction
	if err := decode(res.Value, &e); err != nil {
		return nil, fmt.Errorf("decoding extraction: %w", err)
	}
	return &e, nil
}

// Links returns up to limit absolute hrefs in document order.
func (d *Document) Links(ctx context.Context, limit int) ([]string, error) {
	res, err := d.page.Context(ctx).Eval(linksScript, limit)
	if err != nil {
		return nil, fmt.Errorf("collecting links: %w", err)
	}

	var links []string
	if err := decode(res.Value, &links); err != nil {
		return nil, fmt.Errorf("decoding links: %w", err)
	}
	return links, nil
}

// Screenshot captures the full page as PNG.
func (d *Document) Screenshot(ctx context.Context) ([]byte, error) {
	png, err := d.page.Context(ctx).Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capturing screenshot: %w", err)
	}
	return png, nil
}

// Close closes the tab. Safe to call multiple times.
func (d *Document) Close() error {
	d.once.Do(func() {
		d.closeErr = d.page.Close()
	})
	return d.closeErr
}

// decode converts an evaluation result into v.
func decode(value gson.JSON, v any) error {
	data, err := value.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

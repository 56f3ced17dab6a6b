// Package goquery parses static HTML into sitescan documents using goquery
// and precompiled cascadia selectors. Scripts are never executed.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/sitescan"
)

var (
	_ sitescan.Parser   = (*Parser)(nil)
	_ sitescan.Document = (*Document)(nil)
)

// Selectors used by the extractor. They mirror the ones evaluated in the
// browser by the rendered backend.
var (
	titleSel       = cascadia.MustCompile("title")
	descriptionSel = cascadia.MustCompile(`meta[name="description"]`)
	headingSel     = cascadia.MustCompile("h1, h2, h3")
	navLinkSel     = cascadia.MustCompile("nav a[href]")
	clickableSel   = cascadia.MustCompile(`a, button, [role="button"], input[type="submit"], [onclick]`)
	formSel        = cascadia.MustCompile("form")
	fieldSel       = cascadia.MustCompile("input, textarea, select")
	submitSel      = cascadia.MustCompile(`[type="submit"], button[type="submit"], button`)
	anchorSel      = cascadia.MustCompile("a[href]")
	baseSel        = cascadia.MustCompile("base[href]")
)

// Parser parses HTML markup into a Document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html. Relative hrefs are resolved against baseURL, which is
// usually the final URL after redirects.
func (p *Parser) Parse(html string, pageURL string, baseURL string) (sitescan.Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitescan.Errorf(sitescan.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitescan.Errorf(sitescan.EINVALID, "failed to parse HTML: %v", err)
	}

	// A <base href> overrides the document URL for relative links.
	if href, ok := doc.FindMatcher(baseSel).First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			base = base.ResolveReference(ref)
		}
	}

	return &Document{url: pageURL, base: base, doc: doc}, nil
}

// Document is a parsed static page.
type Document struct {
	url  string
	base *url.URL
	doc  *goquery.Document
}

// URL returns the URL the page was requested with.
func (d *Document) URL() string {
	return d.url
}

// Extract collects page data from the parsed markup. Bounding boxes are
// never available.
func (d *Document) Extract(_ context.Context) (*sitescan.Extraction, error) {
	e := &sitescan.Extraction{
		Title: d.doc.FindMatcher(titleSel).First().Text(),
	}
	if content, ok := d.doc.FindMatcher(descriptionSel).First().Attr("content"); ok {
		e.Description = content
	}

	d.doc.FindMatcher(headingSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			e.Headings = append(e.Headings, text)
		}
		return len(e.Headings) < sitescan.MaxHeadings
	})

	d.doc.FindMatcher(navLinkSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		e.NavLinks = append(e.NavLinks, sitescan.RawLink{
			Text: s.Text(),
			Href: d.resolve(href),
		})
		return len(e.NavLinks) < sitescan.MaxNavLinks
	})

	d.doc.FindMatcher(clickableSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		e.Elements = append(e.Elements, d.element(s))
		return len(e.Elements) < sitescan.MaxClickables
	})

	d.doc.FindMatcher(formSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		e.Forms = append(e.Forms, form(s))
		return len(e.Forms) < sitescan.MaxForms
	})

	return e, nil
}

func (d *Document) element(s *goquery.Selection) sitescan.RawElement {
	el := sitescan.RawElement{
		Tag:       goquery.NodeName(s),
		Role:      s.AttrOr("role", ""),
		AriaLabel: s.AttrOr("aria-label", ""),
		ID:        s.AttrOr("id", ""),
		Classes:   s.AttrOr("class", ""),
		Text:      s.Text(),
		Value:     s.AttrOr("value", ""),
	}
	if href, ok := s.Attr("href"); ok && strings.TrimSpace(href) != "" {
		el.Href = d.resolve(href)
	}
	return el
}

func form(s *goquery.Selection) sitescan.RawForm {
	f := sitescan.RawForm{
		ID:   s.AttrOr("id", ""),
		Name: s.AttrOr("name", ""),
	}
	s.FindMatcher(fieldSel).EachWithBreak(func(_ int, fld *goquery.Selection) bool {
		f.Fields = append(f.Fields, sitescan.RawField{
			Tag:         goquery.NodeName(fld),
			Name:        fld.AttrOr("name", ""),
			ID:          fld.AttrOr("id", ""),
			Type:        fld.AttrOr("type", ""),
			Placeholder: fld.AttrOr("placeholder", ""),
		})
		return len(f.Fields) < sitescan.MaxFormFields
	})
	if submit := s.FindMatcher(submitSel).First(); submit.Length() > 0 {
		f.Submit = &sitescan.RawSubmit{
			Text:  submit.Text(),
			Value: submit.AttrOr("value", ""),
		}
	}
	return f
}

// Links returns up to limit hrefs of a[href] elements resolved against the
// base URL, in document order.
func (d *Document) Links(_ context.Context, limit int) ([]string, error) {
	var links []string
	d.doc.FindMatcher(anchorSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if limit >= 0 && len(links) >= limit {
			return false
		}
		href, _ := s.Attr("href")
		if resolved := d.resolve(href); resolved != "" {
			links = append(links, resolved)
		}
		return true
	})
	return links, nil
}

// Screenshot is not supported without a browser.
func (d *Document) Screenshot(_ context.Context) ([]byte, error) {
	return nil, sitescan.Errorf(sitescan.ENOTIMPLEMENTED, "screenshots require the rendered engine")
}

// Close is a no-op; the parsed tree is garbage collected.
func (d *Document) Close() error {
	return nil
}

// resolve makes href absolute against the document base. Unparseable hrefs
// are returned trimmed but unresolved.
func (d *Document) resolve(href string) string {
	href = strings.TrimSpace(href)
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return d.base.ResolveReference(ref).String()
}

// Package markdown renders site summaries as human-readable Markdown reports.
package markdown

import (
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/sitescan"
	md "github.com/nao1215/markdown"
)

// maxCell is the longest table cell, in runes, before truncation.
const maxCell = 60

// ReportWriter writes a SiteSummary as a Markdown report.
type ReportWriter struct {
	output io.Writer
}

// NewReportWriter creates a ReportWriter that outputs to w.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{output: w}
}

// Write renders s in full.
func (w *ReportWriter) Write(s *sitescan.SiteSummary) error {
	doc := md.NewMarkdown(w.output)

	w.writeHeader(doc, s)
	if len(s.Pages) == 0 {
		doc.H2("Pages")
		doc.PlainText("")
		doc.PlainText("No pages could be loaded.")
		return doc.Build()
	}

	w.writeFeatures(doc, s)
	for i, page := range s.Pages {
		w.writePage(doc, i+1, page)
	}
	return doc.Build()
}

func (w *ReportWriter) writeHeader(doc *md.Markdown, s *sitescan.SiteSummary) {
	doc.H1("Site summary: " + s.StartURL)
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Engine", string(s.Engine)},
			{"Started", s.StartedAt.UTC().Format("2006-01-02 15:04:05 MST")},
			{"Max pages", strconv.Itoa(s.MaxPages)},
			{"Pages visited", strconv.Itoa(len(s.Pages))},
		},
	})
	doc.PlainText("")
}

// writeFeatures lists every feature guessed on any page, in first-seen order.
func (w *ReportWriter) writeFeatures(doc *md.Markdown, s *sitescan.SiteSummary) {
	var features []string
	seen := make(map[string]bool)
	for _, page := range s.Pages {
		for _, f := range page.Features {
			if !seen[f] {
				seen[f] = true
				features = append(features, f)
			}
		}
	}

	doc.H2("Features")
	doc.PlainText("")
	if len(features) == 0 {
		doc.PlainText("No features detected.")
	} else {
		doc.BulletList(features...)
	}
	doc.PlainText("")
}

func (w *ReportWriter) writePage(doc *md.Markdown, n int, page sitescan.PageSummary) {
	title := page.Title
	if title == "" {
		title = page.URL
	}
	doc.H2(strconv.Itoa(n) + ". " + title)
	doc.PlainText("")
	doc.PlainText("URL: " + page.URL)
	if page.Description != "" {
		doc.PlainText("")
		doc.PlainText(page.Description)
	}
	if page.ScreenshotPath != "" {
		doc.PlainText("")
		doc.PlainText("Screenshot: " + page.ScreenshotPath)
	}
	doc.PlainText("")

	if len(page.Headings) > 0 {
		doc.H3("Headings")
		doc.PlainText("")
		doc.BulletList(page.Headings...)
		doc.PlainText("")
	}

	if len(page.NavLinks) > 0 {
		doc.H3("Navigation")
		doc.PlainText("")
		rows := make([][]string, len(page.NavLinks))
		for i, l := range page.NavLinks {
			rows[i] = []string{cell(l.Text), cell(l.Href)}
		}
		doc.Table(md.TableSet{Header: []string{"Text", "Href"}, Rows: rows})
		doc.PlainText("")
	}

	if len(page.Clickables) > 0 {
		doc.H3("Clickables")
		doc.PlainText("")
		rows := make([][]string, len(page.Clickables))
		for i, c := range page.Clickables {
			rows[i] = []string{c.Tag, cell(c.Role), cell(c.Text), cell(c.LocatorSuggestion)}
		}
		doc.Table(md.TableSet{Header: []string{"Tag", "Role", "Text", "Locator"}, Rows: rows})
		doc.PlainText("")
	}

	if len(page.Forms) > 0 {
		doc.H3("Forms")
		doc.PlainText("")
		for _, f := range page.Forms {
			w.writeForm(doc, f)
		}
	}
}

func (w *ReportWriter) writeForm(doc *md.Markdown, f sitescan.FormInfo) {
	hint := f.SelectorHint
	if hint == "" {
		hint = "form"
	}
	line := "`" + hint + "`"
	if f.SubmitButtonText != "" {
		line += " submits with \"" + f.SubmitButtonText + "\""
	}
	doc.PlainText(line)
	doc.PlainText("")
	if len(f.Fields) == 0 {
		return
	}
	rows := make([][]string, len(f.Fields))
	for i, field := range f.Fields {
		rows[i] = []string{cell(field.Name), cell(field.Type), cell(field.Placeholder)}
	}
	doc.Table(md.TableSet{Header: []string{"Name", "Type", "Placeholder"}, Rows: rows})
	doc.PlainText("")
}

// cell prepares s for a table cell: pipes escaped, long values truncated and
// empty values shown as "-".
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	r := []rune(s)
	if len(r) > maxCell {
		return string(r[:maxCell-3]) + "..."
	}
	return s
}

package sitescan

// TrimLimits bounds the size of a trimmed SiteSummary.
type TrimLimits struct {
	Pages      int
	Clickables int
	Forms      int
	Headings   int
	NavLinks   int
}

// DefaultTrimLimits returns the limits used for compact summaries that are
// embedded into prompts.
func DefaultTrimLimits() TrimLimits {
	return TrimLimits{
		Pages:      8,
		Clickables: 20,
		Forms:      5,
		Headings:   10,
		NavLinks:   15,
	}
}

// Trim returns a compact copy of s. Besides applying limits, it drops the
// fields that only matter to a human inspecting the crawl: clickable
// classes and bounding boxes, and screenshot paths. A zero limit means no
// limit for that field. s is not modified.
func Trim(s *SiteSummary, limits TrimLimits) *SiteSummary {
	if s == nil {
		return nil
	}
	out := &SiteSummary{
		Engine:    s.Engine,
		StartedAt: s.StartedAt,
		StartURL:  s.StartURL,
		MaxPages:  s.MaxPages,
	}
	for _, p := range limit(s.Pages, limits.Pages) {
		page := PageSummary{
			URL:         p.URL,
			Title:       p.Title,
			Description: p.Description,
			Headings:    clone(limit(p.Headings, limits.Headings)),
			NavLinks:    clone(limit(p.NavLinks, limits.NavLinks)),
			Forms:       clone(limit(p.Forms, limits.Forms)),
			Features:    clone(p.Features),
		}
		for _, c := range limit(p.Clickables, limits.Clickables) {
			c.Classes = ""
			c.BBox = nil
			page.Clickables = append(page.Clickables, c)
		}
		out.Pages = append(out.Pages, page)
	}
	return out
}

func limit[T any](items []T, n int) []T {
	if n <= 0 {
		return items
	}
	return capped(items, n)
}

func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	return append([]T(nil), items...)
}

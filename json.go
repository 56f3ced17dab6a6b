package sitescan

import (
	"encoding/json"
	"time"
)

// siteSummaryJSON is the wire form of SiteSummary. Key names are stable and
// consumed by downstream tooling. Optional strings are pointers so that an
// empty value is encoded as null rather than dropped.
type siteSummaryJSON struct {
	Engine    Engine            `json:"engine"`
	StartedAt int64             `json:"started_at"`
	StartURL  string            `json:"start_url"`
	MaxPages  int               `json:"max_pages"`
	Pages     []pageSummaryJSON `json:"pages"`
}

type pageSummaryJSON struct {
	URL            string          `json:"url"`
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	Headings       []string        `json:"headings"`
	NavLinks       [][2]string     `json:"nav_links"`
	Clickables     []clickableJSON `json:"clickables"`
	Forms          []formInfoJSON  `json:"forms"`
	ScreenshotPath *string         `json:"screenshot_path"`
	Features       []string        `json:"features_guess"`
}

type clickableJSON struct {
	Text              *string `json:"text"`
	Role              *string `json:"role"`
	Tag               *string `json:"tag"`
	Href              *string `json:"href"`
	AriaLabel         *string `json:"aria_label"`
	ID                *string `json:"id_attr"`
	Classes           *string `json:"classes"`
	LocatorSuggestion *string `json:"locator_suggestion"`
	BBox              *BBox   `json:"bbox"`
}

type formInfoJSON struct {
	SelectorHint     *string         `json:"selector_hint"`
	Fields           []formFieldJSON `json:"fields"`
	SubmitButtonText *string         `json:"submit_button_text"`
}

type formFieldJSON struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Placeholder *string `json:"placeholder"`
}

// MarshalJSON encodes the summary using the canonical snake_case keys.
// started_at is encoded as unix seconds.
func (s SiteSummary) MarshalJSON() ([]byte, error) {
	out := siteSummaryJSON{
		Engine:    s.Engine,
		StartedAt: s.StartedAt.Unix(),
		StartURL:  s.StartURL,
		MaxPages:  s.MaxPages,
		Pages:     make([]pageSummaryJSON, 0, len(s.Pages)),
	}
	for _, p := range s.Pages {
		out.Pages = append(out.Pages, pageToJSON(p))
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a summary previously produced by MarshalJSON.
func (s *SiteSummary) UnmarshalJSON(data []byte) error {
	var in siteSummaryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*s = SiteSummary{
		Engine:    in.Engine,
		StartedAt: time.Unix(in.StartedAt, 0),
		StartURL:  in.StartURL,
		MaxPages:  in.MaxPages,
	}
	for _, p := range in.Pages {
		s.Pages = append(s.Pages, pageFromJSON(p))
	}
	return nil
}

func pageToJSON(p PageSummary) pageSummaryJSON {
	out := pageSummaryJSON{
		URL:            p.URL,
		Title:          nullable(p.Title),
		Description:    nullable(p.Description),
		Headings:       orEmpty(p.Headings),
		NavLinks:       make([][2]string, 0, len(p.NavLinks)),
		Clickables:     make([]clickableJSON, 0, len(p.Clickables)),
		Forms:          make([]formInfoJSON, 0, len(p.Forms)),
		ScreenshotPath: nullable(p.ScreenshotPath),
		Features:       orEmpty(p.Features),
	}
	for _, l := range p.NavLinks {
		out.NavLinks = append(out.NavLinks, [2]string{l.Text, l.Href})
	}
	for _, c := range p.Clickables {
		out.Clickables = append(out.Clickables, clickableJSON{
			Text:              nullable(c.Text),
			Role:              nullable(c.Role),
			Tag:               nullable(c.Tag),
			Href:              nullable(c.Href),
			AriaLabel:         nullable(c.AriaLabel),
			ID:                nullable(c.ID),
			Classes:           nullable(c.Classes),
			LocatorSuggestion: nullable(c.LocatorSuggestion),
			BBox:              c.BBox,
		})
	}
	for _, f := range p.Forms {
		form := formInfoJSON{
			SelectorHint:     nullable(f.SelectorHint),
			Fields:           make([]formFieldJSON, 0, len(f.Fields)),
			SubmitButtonText: nullable(f.SubmitButtonText),
		}
		for _, fld := range f.Fields {
			form.Fields = append(form.Fields, formFieldJSON{
				Name:        nullable(fld.Name),
				Type:        nullable(fld.Type),
				Placeholder: nullable(fld.Placeholder),
			})
		}
		out.Forms = append(out.Forms, form)
	}
	return out
}

func pageFromJSON(in pageSummaryJSON) PageSummary {
	p := PageSummary{
		URL:            in.URL,
		Title:          deref(in.Title),
		Description:    deref(in.Description),
		Headings:       in.Headings,
		ScreenshotPath: deref(in.ScreenshotPath),
		Features:       in.Features,
	}
	for _, l := range in.NavLinks {
		p.NavLinks = append(p.NavLinks, NavLink{Text: l[0], Href: l[1]})
	}
	for _, c := range in.Clickables {
		p.Clickables = append(p.Clickables, Clickable{
			Text:              deref(c.Text),
			Role:              deref(c.Role),
			Tag:               deref(c.Tag),
			Href:              deref(c.Href),
			AriaLabel:         deref(c.AriaLabel),
			ID:                deref(c.ID),
			Classes:           deref(c.Classes),
			LocatorSuggestion: deref(c.LocatorSuggestion),
			BBox:              c.BBox,
		})
	}
	for _, f := range in.Forms {
		form := FormInfo{
			SelectorHint:     deref(f.SelectorHint),
			SubmitButtonText: deref(f.SubmitButtonText),
		}
		for _, fld := range f.Fields {
			form.Fields = append(form.Fields, FormField{
				Name:        deref(fld.Name),
				Type:        deref(fld.Type),
				Placeholder: deref(fld.Placeholder),
			})
		}
		p.Forms = append(p.Forms, form)
	}
	return p
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

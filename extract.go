package sitescan

import "strings"

// Extraction is the raw data a backend collects from a loaded page. Both
// backends fill it following the same rules so Summarize produces the same
// PageSummary for the same markup regardless of engine.
type Extraction struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Headings    []string     `json:"headings"`
	NavLinks    []RawLink    `json:"navLinks"`
	Elements    []RawElement `json:"elements"`
	Forms       []RawForm    `json:"forms"`
}

// RawLink is an anchor with its text and resolved href.
type RawLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// RawElement holds the attributes of a clickable element as found in the DOM.
type RawElement struct {
	Tag       string `json:"tag"`
	Role      string `json:"role"`
	Href      string `json:"href"`
	AriaLabel string `json:"ariaLabel"`
	ID        string `json:"id"`
	Classes   string `json:"classes"`
	Text      string `json:"text"`
	Value     string `json:"value"`
	BBox      *BBox  `json:"bbox"`
}

// RawForm holds a form's identifying attributes, fields and submit control.
type RawForm struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Fields []RawField `json:"fields"`
	Submit *RawSubmit `json:"submit"` // nil when the form has no submit control
}

// RawField holds the attributes of an input, textarea or select.
type RawField struct {
	Tag         string `json:"tag"`
	Name        string `json:"name"`
	ID          string `json:"id"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
}

// RawSubmit holds the label sources of a form's submit control.
type RawSubmit struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Summarize derives a PageSummary from a backend extraction. Caps are
// enforced here regardless of what the backend collected. The screenshot
// path is left empty.
func Summarize(url string, e *Extraction) PageSummary {
	page := PageSummary{URL: url}
	if e == nil {
		page.Features = InferFeatures(nil, nil)
		return page
	}

	page.Title = normalizeSpace(e.Title)
	page.Description = normalizeSpace(e.Description)

	for _, h := range e.Headings {
		if len(page.Headings) >= MaxHeadings {
			break
		}
		if h = normalizeSpace(h); h != "" {
			page.Headings = append(page.Headings, h)
		}
	}

	for _, l := range capped(e.NavLinks, MaxNavLinks) {
		page.NavLinks = append(page.NavLinks, NavLink{
			Text: normalizeSpace(l.Text),
			Href: strings.TrimSpace(l.Href),
		})
	}

	for _, el := range capped(e.Elements, MaxClickables) {
		page.Clickables = append(page.Clickables, clickableFromRaw(el))
	}

	for i, f := range capped(e.Forms, MaxForms) {
		page.Forms = append(page.Forms, formFromRaw(f, i))
	}

	page.Features = InferFeatures(page.Headings, page.Clickables)
	return page
}

func clickableFromRaw(el RawElement) Clickable {
	c := Clickable{
		Tag:       strings.ToLower(strings.TrimSpace(el.Tag)),
		Role:      strings.TrimSpace(el.Role),
		Href:      strings.TrimSpace(el.Href),
		AriaLabel: strings.TrimSpace(el.AriaLabel),
		ID:        strings.TrimSpace(el.ID),
		Classes:   normalizeSpace(el.Classes),
		Text:      normalizeSpace(el.Text),
		BBox:      el.BBox,
	}
	if c.Text == "" && c.Tag == "input" {
		c.Text = normalizeSpace(el.Value)
	}
	c.LocatorSuggestion = LocatorSuggestion(c.AriaLabel, c.Role, c.ID, c.Text)
	return c
}

func formFromRaw(f RawForm, index int) FormInfo {
	form := FormInfo{
		SelectorHint: FormSelectorHint(strings.TrimSpace(f.ID), strings.TrimSpace(f.Name), index),
	}
	for _, fld := range capped(f.Fields, MaxFormFields) {
		name := strings.TrimSpace(fld.Name)
		if name == "" {
			name = strings.TrimSpace(fld.ID)
		}
		typ := strings.TrimSpace(fld.Type)
		if typ == "" {
			typ = strings.TrimSpace(fld.Tag)
		}
		form.Fields = append(form.Fields, FormField{
			Name:        name,
			Type:        strings.ToLower(typ),
			Placeholder: strings.TrimSpace(fld.Placeholder),
		})
	}
	if f.Submit != nil {
		form.SubmitButtonText = normalizeSpace(f.Submit.Text)
		if form.SubmitButtonText == "" {
			form.SubmitButtonText = normalizeSpace(f.Submit.Value)
		}
	}
	return form
}

func capped[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// normalizeSpace collapses whitespace runs to a single space and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

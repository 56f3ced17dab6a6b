package sitescan

import "time"

// Engine identifies the fetch strategy used for a crawl.
type Engine string

// Supported engines.
const (
	EngineRendered Engine = "rendered"
	EngineStatic   Engine = "static"
)

// Extraction caps. Backends collect at most this many items per page and
// Summarize enforces the same caps again.
const (
	MaxHeadings      = 50
	MaxNavLinks      = 50
	MaxClickables    = 100
	MaxForms         = 20
	MaxFormFields    = 20
	MaxOutboundLinks = 200

	// MaxLocatorText is the longest visible text (in runes) that still yields
	// a text= locator suggestion.
	MaxLocatorText = 60
)

// BBox is an element's bounding box in CSS pixels, relative to the viewport.
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clickable is an interactive element found on a page.
type Clickable struct {
	Text      string
	Role      string
	Tag       string
	Href      string
	AriaLabel string
	ID        string
	Classes   string

	// LocatorSuggestion hints how to find the element again. It is not
	// guaranteed to be unique or stable.
	LocatorSuggestion string

	// BBox is only available under the rendered engine.
	BBox *BBox
}

// FormField describes a single input, textarea or select inside a form.
type FormField struct {
	Name        string
	Type        string
	Placeholder string
}

// FormInfo describes a form and its fields.
type FormInfo struct {
	SelectorHint     string
	Fields           []FormField
	SubmitButtonText string
}

// NavLink is a link found inside a <nav> element.
type NavLink struct {
	Text string
	Href string // absolute
}

// PageSummary is the structured summary of one crawled page.
type PageSummary struct {
	URL            string
	Title          string
	Description    string
	Headings       []string
	NavLinks       []NavLink
	Clickables     []Clickable
	Forms          []FormInfo
	ScreenshotPath string
	Features       []string
}

// SiteSummary is the result of a crawl. Pages are in BFS dequeue order.
type SiteSummary struct {
	Engine    Engine
	StartedAt time.Time
	StartURL  string
	MaxPages  int
	Pages     []PageSummary
}

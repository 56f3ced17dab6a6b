package sitescan

import (
	"regexp"
	"strings"
)

// featurePatterns maps feature tags to keyword patterns, in output order.
var featurePatterns = []struct {
	tag string
	re  *regexp.Regexp
}{
	{"pricing", regexp.MustCompile(`\bpricing|plans?\b`)},
	{"docs", regexp.MustCompile(`\bdocs?|documentation\b`)},
	{"login", regexp.MustCompile(`\blog\s*in|sign\s*in\b`)},
	{"signup", regexp.MustCompile(`\bsign\s*up|register\b`)},
	{"dashboard", regexp.MustCompile(`\bdashboard\b`)},
	{"api", regexp.MustCompile(`\bapi\b`)},
	{"integrations", regexp.MustCompile(`\bintegrations?\b`)},
	{"contact", regexp.MustCompile(`\bcontact|support\b`)},
	{"trial", regexp.MustCompile(`\bfree\s*trial|try\s*free|get\s*started\b`)},
	{"search", regexp.MustCompile(`\bsearch\b`)},
}

// FeatureTags returns every tag InferFeatures can produce, in output order.
func FeatureTags() []string {
	tags := make([]string, len(featurePatterns))
	for i, p := range featurePatterns {
		tags[i] = p.tag
	}
	return tags
}

// InferFeatures guesses product features from page headings and clickable
// labels (visible text and aria-label). Each pattern is tested
// independently; the result is never nil.
func InferFeatures(headings []string, clickables []Clickable) []string {
	parts := make([]string, 0, len(headings)+2*len(clickables))
	parts = append(parts, headings...)
	for _, c := range clickables {
		parts = append(parts, c.Text)
		if c.AriaLabel != "" {
			parts = append(parts, c.AriaLabel)
		}
	}
	blob := strings.ToLower(strings.Join(parts, " "))

	found := []string{}
	for _, p := range featurePatterns {
		if p.re.MatchString(blob) {
			found = append(found, p.tag)
		}
	}
	return found
}

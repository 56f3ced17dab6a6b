package sitescan

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LocatorSuggestion derives a human-auditable locator for a clickable.
// The first rule that applies wins:
//
//	aria-label present   role=<role or "button">[name="<aria-label>"]
//	id present           #<id>
//	short text present   text=<text>   (at most MaxLocatorText runes)
//
// An empty string means no suggestion.
func LocatorSuggestion(ariaLabel, role, id, text string) string {
	switch {
	case ariaLabel != "":
		if role == "" {
			role = "button"
		}
		return fmt.Sprintf(`role=%s[name="%s"]`, role, strings.ReplaceAll(ariaLabel, `"`, `\"`))
	case id != "":
		return "#" + id
	case text != "":
		text = normalizeSpace(text)
		if text != "" && utf8.RuneCountInString(text) <= MaxLocatorText {
			return "text=" + text
		}
	}
	return ""
}

// FormSelectorHint derives a selector hint for the form at the given
// 0-based position on the page: id-based, then name-based, then positional.
func FormSelectorHint(id, name string, index int) string {
	switch {
	case id != "":
		return "#" + id
	case name != "":
		return fmt.Sprintf(`form[name="%s"]`, name)
	default:
		return fmt.Sprintf("form:nth-of-type(%d)", index+1)
	}
}

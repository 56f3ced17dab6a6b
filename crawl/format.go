package crawl

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatProgress renders a progress event as a single status line.
func FormatProgress(ev ProgressEvent) string {
	const urlWidth = 60
	switch ev.Type {
	case ProgressStarted:
		return fmt.Sprintf("exploring %s (up to %d pages)", TruncateURL(ev.URL, urlWidth), ev.Total)
	case ProgressVisited:
		return fmt.Sprintf("[%d/%d] %s", ev.Iteration, ev.Total, TruncateURL(ev.URL, urlWidth))
	case ProgressSkipped:
		return fmt.Sprintf("[%d/%d] skip %s (%s)", ev.Iteration, ev.Total, TruncateURL(ev.URL, urlWidth), ev.Reason)
	case ProgressFailed:
		return fmt.Sprintf("[%d/%d] fail %s: %v", ev.Iteration, ev.Total, TruncateURL(ev.URL, urlWidth), ev.Err)
	case ProgressFinished:
		return fmt.Sprintf("done: %d pages", ev.Pages)
	default:
		return ""
	}
}

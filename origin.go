package sitescan

import (
	"net/url"
	"strings"
)

// ParseStartURL validates a crawl start URL. It must be an absolute http or
// https URL with a host.
func ParseStartURL(rawURL string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, Errorf(EINVALID, "start URL required")
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, Errorf(EINVALID, "invalid start URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "start URL %q must use http or https", rawURL)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "start URL %q has no host", rawURL)
	}
	return u, nil
}

// Origin returns the scheme and host (including any port) of a URL in
// lower case, e.g. "https://example.com:8080". Returns "" for URLs without
// a host.
func Origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
}

// NormalizeLink prepares a discovered href for the frontier. It lower-cases
// the host, strips the fragment, gives an empty path the root path "/", and
// rejects anything that
// is not an absolute http(s) URL (mailto:, javascript:, tel:, data: and the
// like).
func NormalizeLink(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" && u.Opaque == "" {
		u.Path = "/"
	}
	return u.String(), true
}

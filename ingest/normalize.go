package ingest

import (
	"net/url"
	"regexp"
	"strings"
)

// PageInfo is the normalized view of a beacon's url and referrer.
type PageInfo struct {
	URLPath        string
	URLQuery       string
	ReferrerPath   string
	ReferrerQuery  string
	ReferrerDomain string
}

var absoluteURLPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// NormalizePage decomposes the raw url and referrer strings. Malformed input
// never fails; the worst case is empty fields. An absolute referrer yields a
// referrer domain (leading "www." stripped); a bare path is treated as
// same-site navigation and leaves the domain empty.
func NormalizePage(rawURL, rawReferrer string, removeTrailingSlash bool) PageInfo {
	page := PageInfo{}

	page.URLPath, page.URLQuery = splitQuery(decodeURI(rawURL))
	if page.URLPath == "" {
		page.URLPath = "/"
	}

	if rawReferrer != "" {
		referrer := decodeURI(rawReferrer)
		page.ReferrerPath, page.ReferrerQuery = splitQuery(referrer)

		if absoluteURLPattern.MatchString(referrer) {
			if u, err := url.Parse(referrer); err == nil {
				page.ReferrerPath = u.Path
				page.ReferrerQuery = u.RawQuery
				page.ReferrerDomain = strings.TrimPrefix(u.Hostname(), "www.")
			}
		}
	}

	if removeTrailingSlash && len(page.URLPath) > 1 && strings.HasSuffix(page.URLPath, "/") {
		page.URLPath = page.URLPath[:len(page.URLPath)-1]
	}

	return page
}

// decodeURI unescapes percent-encoding, falling back to the raw string when
// the input contains invalid escapes.
func decodeURI(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}
	return s
}

func splitQuery(s string) (path, query string) {
	parts := strings.SplitN(s, "?", 2)
	path = parts[0]
	if len(parts) == 2 {
		query = parts[1]
	}
	return path, query
}

package leagues

import (
	"net/url"
	"strings"
)

// DraftIDFromURL extracts the draft identifier from a Sleeper draft URL
// such as https://sleeper.com/draft/nfl/1137629842345. A bare numeric id
// is accepted as-is. Returns false when no identifier can be found.
func DraftIDFromURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if isDigits(raw) {
		return raw, true
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	// The id is the last all-digit path segment.
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if seg := segments[i]; seg != "" && isDigits(seg) {
			return seg, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

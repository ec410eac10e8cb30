package utils

import "strings"

// StripScheme removes the protocol prefix from a website URL for
// consistent display.
func StripScheme(website string) string {
	website = strings.TrimPrefix(website, "https://")
	website = strings.TrimPrefix(website, "http://")
	return website
}

// SplitTrimmed splits a comma-separated source field into trimmed,
// non-empty entries.
func SplitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

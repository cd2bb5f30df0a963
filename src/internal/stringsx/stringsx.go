package stringsx

import "strings"

// FirstNonEmpty returns the first string in vals that is non-empty when trimmed.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// NormalizeSpace collapses every run of whitespace to a single space and
// trims the result, so tabs and newlines inside a citation behave like
// ordinary spaces.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

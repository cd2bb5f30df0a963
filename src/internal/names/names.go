package names

import (
	"regexp"
	"strings"
)

var (
	periodRun  = regexp.MustCompile(`\.\s+`)
	nextAuthor = regexp.MustCompile(`^[A-Z][^,]+,`)
	personRe   = regexp.MustCompile(`^([^,]+),\s*(.+)$`)
)

// SplitAuthorChunk splits one "&"-delimited chunk of an author segment into
// per-author fragments. The primary heuristic splits at a period plus
// whitespace when the remainder starts with a capitalized "Last," pattern;
// when that produces no split, it falls back to splitting on ".," and
// re-appending the period each fragment lost.
//
// Both stages are ambiguous for names with middle initials or suffixes
// packed into a single chunk; callers get whatever grouping the heuristics
// produce.
func SplitAuthorChunk(chunk string) []string {
	parts := splitBeforeNextAuthor(chunk)
	if len(parts) > 1 {
		return parts
	}
	parts = parts[:0]
	for _, p := range strings.Split(chunk, ".,") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasSuffix(p, ".") {
			p += "."
		}
		parts = append(parts, p)
	}
	return parts
}

// splitBeforeNextAuthor cuts at every ".<ws>" whose remainder looks like the
// start of another "Last," name. The period and whitespace are consumed.
func splitBeforeNextAuthor(chunk string) []string {
	var parts []string
	rest := chunk
	for {
		cut := -1
		var end int
		off := 0
		for {
			loc := periodRun.FindStringIndex(rest[off:])
			if loc == nil {
				break
			}
			start, stop := off+loc[0], off+loc[1]
			if nextAuthor.MatchString(rest[stop:]) {
				cut, end = start, stop
				break
			}
			off = stop
		}
		if cut < 0 {
			break
		}
		parts = append(parts, rest[:cut])
		rest = rest[end:]
	}
	return append(parts, rest)
}

// ParsePerson matches a single author fragment against "Last, First".
// Trailing periods are stripped before matching. ok is false when the
// fragment has no comma-separated parts.
func ParsePerson(fragment string) (last, first string, ok bool) {
	fragment = strings.TrimRight(strings.TrimSpace(fragment), ".")
	m := personRe.FindStringSubmatch(fragment)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

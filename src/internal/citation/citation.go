// Package citation parses a narrow APA-like book citation shape:
// "Last, First (YYYY). Title. Publisher." with one or more "&"-joined
// authors. The segmentation is deliberately heuristic and rejects anything
// outside that shape rather than guessing.
package citation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"wordsources/src/internal/names"
	"wordsources/src/internal/stringsx"
)

// Person is one author, family name first.
type Person struct {
	Last  string
	First string
}

// Citation is the parsed record for a single book reference.
type Citation struct {
	Authors   []Person
	Year      string
	Title     string
	Publisher string
}

// ErrYearNotFound is returned when the citation has no parenthesized
// four-digit year.
var ErrYearNotFound = errors.New(`year not found; expected "(YYYY)"`)

// ErrTitlePublisherMissing is returned when fewer than two period-delimited
// segments follow the year.
var ErrTitlePublisherMissing = errors.New(`expected format "Title. Publisher." after year`)

// AuthorFormatError reports an author fragment that does not match
// "Last, First".
type AuthorFormatError struct {
	Fragment string
}

func (e *AuthorFormatError) Error() string {
	return fmt.Sprintf("author format error near: '%s'", e.Fragment)
}

var (
	yearRe    = regexp.MustCompile(`\((\d{4})\)`)
	editionRe = regexp.MustCompile(`(?i)\s*\([^)]*ed\.\)\s*$`)
)

// Parse extracts authors, year, title, and publisher from an APA-like book
// citation string.
func Parse(s string) (Citation, error) {
	s = stringsx.NormalizeSpace(s)

	yearLoc := yearRe.FindStringSubmatchIndex(s)
	if yearLoc == nil {
		return Citation{}, ErrYearNotFound
	}
	year := s[yearLoc[2]:yearLoc[3]]
	beforeYear := strings.TrimRight(strings.TrimSpace(s[:yearLoc[0]]), ".")
	afterYear := strings.TrimSpace(s[yearLoc[1]:])

	authors, err := parseAuthors(beforeYear)
	if err != nil {
		return Citation{}, err
	}

	title, publisher, err := parseTail(afterYear)
	if err != nil {
		return Citation{}, err
	}

	return Citation{Authors: authors, Year: year, Title: title, Publisher: publisher}, nil
}

// parseAuthors splits the pre-year segment into individual authors. The
// segment is first normalized so ", &" reads as " &", then cut at every
// " & "; each chunk may still pack several authors, which
// names.SplitAuthorChunk untangles.
func parseAuthors(segment string) ([]Person, error) {
	segment = strings.ReplaceAll(segment, ", &", " &")
	var authors []Person
	for _, chunk := range strings.Split(segment, " & ") {
		for _, frag := range names.SplitAuthorChunk(strings.TrimSpace(chunk)) {
			last, first, ok := names.ParsePerson(frag)
			if !ok {
				return nil, &AuthorFormatError{Fragment: strings.TrimRight(strings.TrimSpace(frag), ".")}
			}
			authors = append(authors, Person{Last: last, First: first})
		}
	}
	return authors, nil
}

// parseTail splits the post-year segment into title and publisher. A
// trailing parenthesized edition marker like "(2nd ed.)" is stripped from
// the title; segments past the publisher are ignored.
func parseTail(segment string) (title, publisher string, err error) {
	segment = strings.TrimLeft(segment, ". ")
	var pieces []string
	for _, p := range strings.Split(segment, ".") {
		if p = strings.TrimSpace(p); p != "" {
			pieces = append(pieces, p)
		}
	}
	if len(pieces) < 2 {
		return "", "", ErrTitlePublisherMissing
	}
	title = strings.TrimSpace(editionRe.ReplaceAllString(pieces[0], ""))
	return title, pieces[1], nil
}

package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Entry is one bibliography record from a Word Sources XML document,
// also serialized as YAML by the export command.
type Entry struct {
	Tag        string   `yaml:"tag" json:"tag"`
	SourceType string   `yaml:"source_type" json:"source_type"`
	Authors    []Person `yaml:"authors,omitempty" json:"authors,omitempty"`
	Title      string   `yaml:"title" json:"title"`
	Year       string   `yaml:"year" json:"year"`
	Publisher  string   `yaml:"publisher" json:"publisher"`
	Guid       string   `yaml:"guid,omitempty" json:"guid,omitempty"`
	RefOrder   *int     `yaml:"ref_order,omitempty" json:"ref_order,omitempty"`
}

// Person is one author in an entry's name list.
type Person struct {
	Last  string `yaml:"last" json:"last"`
	First string `yaml:"first,omitempty" json:"first,omitempty"`
}

var yearRe = regexp.MustCompile(`^\d{4}$`)

// Validate applies the rules this tool guarantees for entries it writes.
// Entries read from foreign documents may not satisfy them.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Tag) == "" {
		return errors.New("tag is required")
	}
	if e.SourceType != "Book" {
		return fmt.Errorf("unsupported source type: %s", e.SourceType)
	}
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(e.Publisher) == "" {
		return errors.New("publisher is required")
	}
	if !yearRe.MatchString(e.Year) {
		return fmt.Errorf("year must be four digits, got %q", e.Year)
	}
	if len(e.Authors) == 0 {
		return errors.New("at least one author is required")
	}
	if e.RefOrder != nil && *e.RefOrder <= 0 {
		return fmt.Errorf("ref_order must be positive, got %d", *e.RefOrder)
	}
	return nil
}

// DisplayAuthors joins authors as "Last, First; Last, First" for listings.
func (e *Entry) DisplayAuthors() string {
	parts := make([]string, 0, len(e.Authors))
	for _, p := range e.Authors {
		name := strings.TrimSpace(p.Last)
		if g := strings.TrimSpace(p.First); g != "" {
			if name == "" {
				name = g
			} else {
				name = name + ", " + g
			}
		}
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "; ")
}

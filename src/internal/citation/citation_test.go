package citation

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSingleAuthor(t *testing.T) {
	c, err := Parse("Simon, H. A. (1996). The Sciences of the Artificial. MIT Press.")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Citation{
		Authors:   []Person{{Last: "Simon", First: "H. A"}},
		Year:      "1996",
		Title:     "The Sciences of the Artificial",
		Publisher: "MIT Press",
	}
	if !reflect.DeepEqual(c, want) {
		t.Fatalf("Parse: want %+v, got %+v", want, c)
	}
}

func TestParseTwoAuthors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"ampersand", "Newell, A. & Simon, H. A. (1972). Human Problem Solving. Prentice-Hall."},
		{"comma ampersand", "Newell, A., & Simon, H. A. (1972). Human Problem Solving. Prentice-Hall."},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("%s: Parse: %v", c.name, err)
		}
		want := []Person{{Last: "Newell", First: "A"}, {Last: "Simon", First: "H. A"}}
		if !reflect.DeepEqual(got.Authors, want) {
			t.Fatalf("%s: authors: want %v, got %v", c.name, want, got.Authors)
		}
		if got.Year != "1972" || got.Title != "Human Problem Solving" || got.Publisher != "Prentice-Hall" {
			t.Fatalf("%s: fields: got %+v", c.name, got)
		}
	}
}

func TestParseWhitespaceNormalization(t *testing.T) {
	c, err := Parse("  Simon,   H. A.\t(1996).  The Sciences of the Artificial.\nMIT Press.  ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Title != "The Sciences of the Artificial" || c.Publisher != "MIT Press" {
		t.Fatalf("fields: got %+v", c)
	}
}

func TestParseYearNotFound(t *testing.T) {
	for _, in := range []string{
		"Simon, H. A. The Sciences of the Artificial. MIT Press.",
		"Simon, H. A. (96). Title. Publisher.",
		"Simon, H. A. 1996. Title. Publisher.",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrYearNotFound) {
			t.Fatalf("Parse(%q): want ErrYearNotFound, got %v", in, err)
		}
	}
}

func TestParseTitleOrPublisherMissing(t *testing.T) {
	for _, in := range []string{
		"Simon, H. A. (1996).",
		"Simon, H. A. (1996). OnlyTitle",
		"Simon, H. A. (1996). OnlyTitle.",
		"Simon, H. A. (1996). . .",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrTitlePublisherMissing) {
			t.Fatalf("Parse(%q): want ErrTitlePublisherMissing, got %v", in, err)
		}
	}
}

func TestParseAuthorFormatError(t *testing.T) {
	_, err := Parse("Simon H A (1996). Title. Publisher.")
	var afe *AuthorFormatError
	if !errors.As(err, &afe) {
		t.Fatalf("Parse: want AuthorFormatError, got %v", err)
	}
	if afe.Fragment != "Simon H A" {
		t.Fatalf("fragment: got %q", afe.Fragment)
	}
}

func TestParsePiecesPastPublisherIgnored(t *testing.T) {
	c, err := Parse("Simon, H. A. (1996). Title. Publisher. ISBN 0-262-69191-4.")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Title != "Title" || c.Publisher != "Publisher" {
		t.Fatalf("fields: got %+v", c)
	}
}

func TestParseNoAuthorsBeforeYear(t *testing.T) {
	c, err := Parse("(1996). Title. Publisher.")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.Authors) != 0 {
		t.Fatalf("authors: want none, got %v", c.Authors)
	}
}

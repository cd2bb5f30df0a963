package sources

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordsources/src/internal/citation"
)

func TestBytesDeclarationAndIndent(t *testing.T) {
	d := mustParse(t, emptyDoc)
	d.AppendBook("Simon1996", simonCitation(t))
	out := string(d.Bytes())

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`) {
		t.Fatalf("output missing XML declaration:\n%s", out)
	}
	for _, want := range []string{
		"\n\t<b:Source>\n",
		"\n\t\t<b:Tag>Simon1996</b:Tag>\n",
		"\n\t\t<b:SourceType>Book</b:SourceType>\n",
		"\n\t\t\t\t\t<b:Person>\n",
		"\n\t\t\t\t\t\t<b:Last>Simon</b:Last>\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, `xmlns:b="`+Namespace+`"`) {
		t.Fatalf("output missing namespace declaration:\n%s", out)
	}
}

func TestBytesEscapesEntities(t *testing.T) {
	c, err := citation.Parse(`Smith, J. (2001). Cats & Dogs <Revised>. O'Reilly & Associates.`)
	if err != nil {
		t.Fatalf("citation.Parse: %v", err)
	}
	d := mustParse(t, emptyDoc)
	d.AppendBook("Smith2001", c)
	out := string(d.Bytes())

	if !strings.Contains(out, "<b:Title>Cats &amp; Dogs &lt;Revised&gt;</b:Title>") {
		t.Fatalf("title not escaped:\n%s", out)
	}
	if !strings.Contains(out, "<b:Publisher>O'Reilly &amp; Associates</b:Publisher>") {
		t.Fatalf("publisher not escaped:\n%s", out)
	}

	d2 := mustParse(t, out)
	e := d2.Entries()[0]
	if e.Title != "Cats & Dogs <Revised>" || e.Publisher != "O'Reilly & Associates" {
		t.Fatalf("round-trip lost entities: %+v", e)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Sources.xml")
	if err := os.WriteFile(in, []byte(seededDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	d, err := Load(in)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d.AppendBook("Simon1996", simonCitation(t))

	out := OutputPath(in)
	if err := d.WriteFile(out); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Input stays untouched.
	orig, err := os.ReadFile(in)
	if err != nil || string(orig) != seededDoc {
		t.Fatalf("input file modified (err=%v)", err)
	}

	d2, err := Load(out)
	if err != nil {
		t.Fatalf("Load output: %v", err)
	}
	entries := d2.Entries()
	if len(entries) != 4 {
		t.Fatalf("entries: want 4, got %d", len(entries))
	}
	last := entries[3]
	if last.Tag != "Simon1996" || last.RefOrder == nil || *last.RefOrder != 5 {
		t.Fatalf("appended entry: %+v", last)
	}
}

// Package sources loads, queries, and mutates Microsoft Word Sources XML
// bibliography documents (the Office Open XML bibliography schema).
package sources

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/google/uuid"

	"wordsources/src/internal/citation"
	"wordsources/src/internal/schema"
)

// Namespace is the Office Open XML bibliography namespace, conventionally
// bound to the "b" prefix.
const Namespace = "http://schemas.openxmlformats.org/officeDocument/2006/bibliography"

// Prefix is the namespace prefix written on elements this package creates.
const Prefix = "b"

var sourceExpr = xpath.MustCompile("*[local-name()='Source']")

// Document is a Sources XML document held fully in memory.
type Document struct {
	doc  *xmlquery.Node
	root *xmlquery.Node
}

// Parse parses a Sources XML document. Malformed XML is fatal to the caller.
func Parse(data []byte) (*Document, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing sources XML: %w", err)
	}
	var root *xmlquery.Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			root = c
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("sources XML has no root element")
	}
	return &Document{doc: doc, root: root}, nil
}

// Load reads and parses the Sources XML file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// OutputPath derives the output file path for an input: same directory,
// name prefixed with "new_". The input is never written in place.
func OutputPath(in string) string {
	return filepath.Join(filepath.Dir(in), "new_"+filepath.Base(in))
}

// entryNodes returns the root's Source elements in document order.
func (d *Document) entryNodes() []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(d.root, sourceExpr)
}

// TagExists reports whether any entry's Tag equals tag exactly
// (case-sensitive).
func (d *Document) TagExists(tag string) bool {
	for _, src := range d.entryNodes() {
		if childText(src, "Tag") == tag {
			return true
		}
	}
	return false
}

// NextRefOrder returns max(existing numeric RefOrder values)+1. Entries
// without a RefOrder, or with a non-numeric one, are ignored. ok is false
// when no entry carries a numeric RefOrder.
func (d *Document) NextRefOrder() (next int, ok bool) {
	max := 0
	for _, src := range d.entryNodes() {
		if v, numeric := digits(childText(src, "RefOrder")); numeric {
			ok = true
			if v > max {
				max = v
			}
		}
	}
	if !ok {
		return 0, false
	}
	return max + 1, true
}

// AppendBook builds a Book entry for tag from the parsed citation, attaches
// a RefOrder when the document already numbers its entries, and appends it
// as the last child of the root. Prior entries keep their order. The entry
// as written is returned.
func (d *Document) AppendBook(tag string, c citation.Citation) schema.Entry {
	entry := schema.Entry{
		Tag:        tag,
		SourceType: "Book",
		Title:      c.Title,
		Year:       c.Year,
		Publisher:  c.Publisher,
		Guid:       NewGuid(),
	}
	for _, a := range c.Authors {
		entry.Authors = append(entry.Authors, schema.Person{Last: a.Last, First: a.First})
	}
	if next, ok := d.NextRefOrder(); ok {
		entry.RefOrder = &next
	}

	d.ensureNamespace()

	src := newElement("Source")
	xmlquery.AddChild(src, newTextElement("Tag", entry.Tag))
	xmlquery.AddChild(src, newTextElement("SourceType", entry.SourceType))

	outer := newElement("Author")
	inner := newElement("Author")
	nameList := newElement("NameList")
	for _, p := range entry.Authors {
		person := newElement("Person")
		xmlquery.AddChild(person, newTextElement("Last", p.Last))
		xmlquery.AddChild(person, newTextElement("First", p.First))
		xmlquery.AddChild(nameList, person)
	}
	xmlquery.AddChild(inner, nameList)
	xmlquery.AddChild(outer, inner)
	xmlquery.AddChild(src, outer)

	xmlquery.AddChild(src, newTextElement("Title", entry.Title))
	xmlquery.AddChild(src, newTextElement("Year", entry.Year))
	xmlquery.AddChild(src, newTextElement("Publisher", entry.Publisher))
	xmlquery.AddChild(src, newTextElement("Guid", entry.Guid))
	if entry.RefOrder != nil {
		xmlquery.AddChild(src, newTextElement("RefOrder", fmt.Sprintf("%d", *entry.RefOrder)))
	}

	xmlquery.AddChild(d.root, src)
	return entry
}

// Merge inserts the citation under tag unless the tag already exists.
// added is false on the duplicate-tag short-circuit, which leaves the
// document unmodified.
func (d *Document) Merge(tag string, c citation.Citation) (entry schema.Entry, added bool) {
	if d.TagExists(tag) {
		return schema.Entry{}, false
	}
	return d.AppendBook(tag, c), true
}

// Entries reads back every Source element as a schema.Entry, in document
// order. Foreign documents may hold entries this tool would not write
// (other source types, missing fields); they are returned as-is.
func (d *Document) Entries() []schema.Entry {
	var out []schema.Entry
	for _, src := range d.entryNodes() {
		e := schema.Entry{
			Tag:        childText(src, "Tag"),
			SourceType: childText(src, "SourceType"),
			Title:      childText(src, "Title"),
			Year:       childText(src, "Year"),
			Publisher:  childText(src, "Publisher"),
			Guid:       childText(src, "Guid"),
		}
		if v, numeric := digits(childText(src, "RefOrder")); numeric {
			e.RefOrder = &v
		}
		if outer := childElem(src, "Author"); outer != nil {
			if inner := childElem(outer, "Author"); inner != nil {
				if nl := childElem(inner, "NameList"); nl != nil {
					for p := nl.FirstChild; p != nil; p = p.NextSibling {
						if p.Type == xmlquery.ElementNode && p.Data == "Person" {
							e.Authors = append(e.Authors, schema.Person{
								Last:  childText(p, "Last"),
								First: childText(p, "First"),
							})
						}
					}
				}
			}
		}
		out = append(out, e)
	}
	return out
}

// NewGuid returns a brace-delimited uppercase UUID in the format Word uses
// for bibliography entries.
func NewGuid() string {
	return "{" + strings.ToUpper(uuid.NewString()) + "}"
}

// ensureNamespace declares xmlns:b on the root when the document does not
// already bind the prefix, so appended b: elements stay well-formed.
func (d *Document) ensureNamespace() {
	for _, a := range d.root.Attr {
		if a.Name.Space == "xmlns" && a.Name.Local == Prefix {
			return
		}
	}
	xmlquery.AddAttr(d.root, "xmlns:"+Prefix, Namespace)
}

func newElement(name string) *xmlquery.Node {
	return &xmlquery.Node{
		Type:         xmlquery.ElementNode,
		Data:         name,
		Prefix:       Prefix,
		NamespaceURI: Namespace,
	}
}

func newTextElement(name, text string) *xmlquery.Node {
	el := newElement(name)
	xmlquery.AddChild(el, &xmlquery.Node{Type: xmlquery.TextNode, Data: text})
	return el
}

func childElem(n *xmlquery.Node, local string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == local {
			return c
		}
	}
	return nil
}

func childText(n *xmlquery.Node, local string) string {
	if el := childElem(n, local); el != nil {
		return el.InnerText()
	}
	return ""
}

// digits parses s as a base-10 natural number; numeric is false unless s is
// non-empty and all digits (mirrors how Word writes RefOrder).
func digits(s string) (v int, numeric bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		v = v*10 + int(r-'0')
	}
	return v, true
}

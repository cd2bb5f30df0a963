package sources

import (
	"bytes"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// Bytes serializes the document with an XML declaration, UTF-8 text, and
// tab-indented element children. Elements holding only text stay on one
// line. Indentation is cosmetic; Word ignores it.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	writeElement(&buf, d.root, 0)
	return buf.Bytes()
}

// WriteFile serializes the document to path.
func (d *Document) WriteFile(path string) error {
	return os.WriteFile(path, d.Bytes(), 0o644)
}

func writeElement(w *bytes.Buffer, n *xmlquery.Node, depth int) {
	writeIndent(w, depth)
	w.WriteString("<")
	w.WriteString(qualifiedName(n))
	for _, attr := range n.Attr {
		w.WriteString(" ")
		if attr.Name.Space != "" {
			w.WriteString(attr.Name.Space)
			w.WriteString(":")
		}
		w.WriteString(attr.Name.Local)
		w.WriteString(`="`)
		w.WriteString(escapeAttr(attr.Value))
		w.WriteString(`"`)
	}

	hasElementChildren := false
	hasContent := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			hasElementChildren = true
			hasContent = true
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(c.Data) != "" {
				hasContent = true
			}
		}
	}

	if !hasContent {
		w.WriteString("/>\n")
		return
	}
	w.WriteString(">")
	if hasElementChildren {
		w.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			writeElement(w, c, depth+1)
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			if hasElementChildren {
				writeIndent(w, depth+1)
			}
			w.WriteString(escapeText(c.Data))
			if hasElementChildren {
				w.WriteString("\n")
			}
		}
	}
	if hasElementChildren {
		writeIndent(w, depth)
	}
	w.WriteString("</")
	w.WriteString(qualifiedName(n))
	w.WriteString(">\n")
}

func qualifiedName(n *xmlquery.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	return n.Data
}

func writeIndent(w *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString("\t")
	}
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	return strings.ReplaceAll(escapeText(s), `"`, "&quot;")
}

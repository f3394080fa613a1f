// Package render serializes a parser.Node tree back to HTML text, per the
// WHATWG "serializing HTML fragments" algorithm. It is a collaborator of
// package parser, not part of its core: nothing in parser imports it.
package render

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/naqvis/crystal-html5/parser"
)

// rawTextElements never have their text content escaped when serialized;
// their content is whatever raw bytes the tokenizer's raw-text/script-data
// sub-modes captured.
var rawTextElements = map[string]bool{
	"style": true, "script": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Render writes n and its descendants to w as HTML text.
func Render(w io.Writer, n *parser.Node) error {
	b := &strings.Builder{}
	renderNode(b, n)
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "render: write")
}

// String renders n to a string; a convenience wrapper around Render for
// tests and small tools.
func String(n *parser.Node) string {
	b := &strings.Builder{}
	renderNode(b, n)
	return b.String()
}

func renderNode(b *strings.Builder, n *parser.Node) {
	switch n.Kind {
	case parser.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c)
		}
	case parser.DoctypeNode:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Data)
		b.WriteByte('>')
	case parser.CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case parser.TextNode:
		renderText(b, n)
	case parser.ElementNode:
		renderElement(b, n)
	}
}

func renderText(b *strings.Builder, n *parser.Node) {
	if n.Parent != nil && n.Parent.Namespace == parser.NamespaceHTML && rawTextElements[n.Parent.Data] {
		b.WriteString(n.Data)
		return
	}
	b.WriteString(escapeText(n.Data))
}

func renderElement(b *strings.Builder, n *parser.Node) {
	name := qualifiedName(n)
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range n.Attr {
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(a.Namespace)
			b.WriteByte(':')
		}
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(escapeAttrValue(a.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if n.Namespace == parser.NamespaceHTML && voidElements[n.Data] {
		return
	}

	// textarea and pre-like elements: a leading LF immediately after the
	// start tag is a parser artifact the tokenizer would re-insert, so it
	// is not itself re-emitted as data; it is only stripped for the
	// specific child node that would have come from that artifact, which
	// never happens in a tree this renderer builds fresh, so no special
	// case is needed here beyond documenting why there isn't one.

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(b, c)
	}

	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}

func qualifiedName(n *parser.Node) string {
	switch n.Namespace {
	case parser.NamespaceMath:
		return mathMLOriginalName(n.Data)
	case parser.NamespaceSVG:
		return svgOriginalName(n.Data)
	}
	return n.Data
}

// svgOriginalName and mathMLOriginalName return the stored name unchanged:
// the tree constructor has already restored SVG camel-case tag names (the
// tokenizer itself always lowercases them), and that stored form is what
// gets serialized.
func svgOriginalName(name string) string { return name }
func mathMLOriginalName(name string) string { return name }

func escapeText(s string) string {
	if !strings.ContainsAny(s, "&<>\u00A0") {
		return s
	}
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\u00A0", "&nbsp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttrValue(s string) string {
	if !strings.ContainsAny(s, "&\"\u00A0") {
		return s
	}
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\u00A0", "&nbsp;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

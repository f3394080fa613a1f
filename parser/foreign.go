package parser

import "strings"

// mathMLTextIntegrationPoints and htmlIntegrationPoints are the foreign
// content integration points described in §4.5: inside these, HTML
// insertion-mode rules apply even though the current node is MathML or SVG.
var mathMLTextIntegrationPoints = map[string]bool{
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true,
}

func isHTMLIntegrationPoint(n *Node) bool {
	if n.Namespace == NamespaceMath && n.Data == "annotation-xml" {
		if enc, ok := attrValue(n, "encoding"); ok {
			if equalFold(enc, "text/html") || equalFold(enc, "application/xhtml+xml") {
				return true
			}
		}
		return false
	}
	if n.Namespace == NamespaceSVG {
		switch n.Data {
		case "foreignObject", "desc", "title":
			return true
		}
	}
	return false
}

// isForeignContent implements the tree construction dispatcher of §5.3.1:
// it reports whether t should be handled by the foreign content algorithm
// rather than the current HTML insertion mode.
func (c *treeConstructor) isForeignContent(t Token) bool {
	if len(c.stack) == 0 {
		return false
	}
	n := c.adjustedCurrentNode()
	if n.Namespace == NamespaceHTML {
		return false
	}
	if n.Namespace == NamespaceMath && mathMLTextIntegrationPoints[n.Data] {
		if t.Type == TextToken {
			return false
		}
		if t.Type == StartTagToken && t.Data != "mglyph" && t.Data != "malignmark" {
			return false
		}
	}
	if n.Namespace == NamespaceMath && n.Data == "annotation-xml" && t.Type == StartTagToken && t.Data == "svg" {
		return false
	}
	if isHTMLIntegrationPoint(n) && (t.Type == StartTagToken || t.Type == TextToken) {
		return false
	}
	if t.Type == ErrorToken {
		return false
	}
	return true
}

// adjustedCurrentNode is the current node, except during fragment parsing
// with only one element on the stack, when it is the context element; see
// §5.3.1.
func (c *treeConstructor) adjustedCurrentNode() *Node {
	if c.fragment && len(c.stack) == 1 {
		return c.context
	}
	return c.curNode()
}

// stepForeign implements "the rules for parsing tokens in foreign content"
// of §5.3.1.
func (c *treeConstructor) stepForeign(t Token) {
	switch t.Type {
	case TextToken:
		if strings.ContainsRune(t.Data, 0) {
			t.Data = strings.ReplaceAll(t.Data, "\x00", "�")
		}
		if !isAllWhitespace(t.Data) {
			c.framesetOK = false
		}
		c.insertText(t.Data)
		return
	case CommentToken:
		c.insertComment(t.Data)
		return
	case DoctypeToken:
		return
	case StartTagToken:
		switch t.Data {
		case "b", "big", "blockquote", "body", "br", "center", "code", "dd",
			"div", "dl", "dt", "em", "embed", "h1", "h2", "h3", "h4", "h5",
			"h6", "head", "hr", "i", "img", "li", "listing", "menu", "meta",
			"nobr", "ol", "p", "pre", "ruby", "s", "small", "span", "strong",
			"strike", "sub", "sup", "table", "tt", "u", "ul", "var":
			c.breakOutOfForeignContent(t)
			return
		case "font":
			for _, a := range t.Attr {
				if a.Key == "color" || a.Key == "face" || a.Key == "size" {
					c.breakOutOfForeignContent(t)
					return
				}
			}
		}
		n := elementFromToken(t)
		cur := c.adjustedCurrentNode()
		n.Namespace = cur.Namespace
		if n.Namespace == NamespaceMath {
			adjustMathMLAttributes(n)
		} else if n.Namespace == NamespaceSVG {
			adjustSVGTagName(n)
		}
		adjustForeignAttributes(n)
		c.insertNode(n)
		if !t.selfClosingImplied() {
			c.push(n)
		}
		return
	case EndTagToken:
		c.popForeignEndTag(t.Data)
		return
	}
}

// breakOutOfForeignContent pops foreign elements off the stack until an
// HTML, MathML text-integration, or SVG HTML-integration element is on top,
// then reprocesses t with the HTML insertion modes (§13.2.6.1's special
// list of tags that are never allowed to stay inside foreign content).
func (c *treeConstructor) breakOutOfForeignContent(t Token) {
	for len(c.stack) > 1 {
		n := c.curNode()
		if n.Namespace == NamespaceHTML || isHTMLIntegrationPoint(n) || mathMLTextIntegrationPoints[n.Data] {
			break
		}
		c.pop()
	}
	c.step(t)
}

// popForeignEndTag matches an end tag against the stack case-insensitively
// by node name, popping everything up to and including the match; see
// §13.2.6.1's end tag handling (originally phrased in terms of the node's
// ASCII-lowercased tag name).
func (c *treeConstructor) popForeignEndTag(name string) {
	lname := strings.ToLower(name)
	i := len(c.stack) - 1
	for i > 0 && !strings.EqualFold(c.stack[i].Data, lname) {
		if c.stack[i].Namespace == NamespaceHTML {
			c.step(Token{Type: EndTagToken, Data: name})
			return
		}
		i--
	}
	c.stack = c.stack[:i]
}

// adjustMathMLAttributes fixes the one camel-case MathML attribute name
// that would otherwise be lowercased by the tokenizer.
func adjustMathMLAttributes(n *Node) {
	for i, a := range n.Attr {
		if a.Key == "definitionurl" {
			n.Attr[i].Key = "definitionURL"
		}
	}
}

var svgTagNameFixups = map[string]string{
	"altglyph": "altGlyph", "altglyphdef": "altGlyphDef",
	"altglyphitem": "altGlyphItem", "animatecolor": "animateColor",
	"animatemotion": "animateMotion", "animatetransform": "animateTransform",
	"clippath": "clipPath", "feblend": "feBlend",
	"fecolormatrix": "feColorMatrix", "fecomponenttransfer": "feComponentTransfer",
	"fecomposite": "feComposite", "feconvolvematrix": "feConvolveMatrix",
	"fediffuselighting": "feDiffuseLighting", "fedisplacementmap": "feDisplacementMap",
	"fedistantlight": "feDistantLight", "fedropshadow": "feDropShadow",
	"feflood": "feFlood", "fefunca": "feFuncA", "fefuncb": "feFuncB",
	"fefuncg": "feFuncG", "fefuncr": "feFuncR", "fegaussianblur": "feGaussianBlur",
	"feimage": "feImage", "femerge": "feMerge", "femergenode": "feMergeNode",
	"femorphology": "feMorphology", "feoffset": "feOffset",
	"fepointlight": "fePointLight", "fespecularlighting": "feSpecularLighting",
	"fespotlight": "feSpotLight", "fetile": "feTile", "feturbulence": "feTurbulence",
	"foreignobject": "foreignObject", "glyphref": "glyphRef",
	"lineargradient": "linearGradient", "radialgradient": "radialGradient",
	"textpath": "textPath",
}

func adjustSVGTagName(n *Node) {
	if fixed, ok := svgTagNameFixups[n.Data]; ok {
		n.Data = fixed
	}
}

var foreignAttrNamespaces = map[string]string{
	"xlink:actuate": NamespaceXlink, "xlink:arcrole": NamespaceXlink,
	"xlink:href": NamespaceXlink, "xlink:role": NamespaceXlink,
	"xlink:show": NamespaceXlink, "xlink:title": NamespaceXlink,
	"xlink:type": NamespaceXlink, "xml:lang": NamespaceXML, "xml:space": NamespaceXML,
	"xmlns": NamespaceXMLNS, "xmlns:xlink": NamespaceXMLNS,
}

// adjustForeignAttributes splits namespaced attribute names ("xlink:href"
// and friends) out of the attribute's Key into Namespace/Key, per §5.3.1.
func adjustForeignAttributes(n *Node) {
	for i, a := range n.Attr {
		if ns, ok := foreignAttrNamespaces[a.Key]; ok {
			n.Attr[i].Namespace = ns
			if idx := strings.IndexByte(a.Key, ':'); idx >= 0 {
				n.Attr[i].Key = a.Key[idx+1:]
			}
		}
	}
}

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A MathML <mi> or SVG <foreignObject> on the stack must still stop a scope
// walk even though it isn't in the HTML namespace — only the target-tag match
// itself should be namespace-restricted, not the boundary check.
func TestScopeBoundaryStopsOnForeignIntegrationPoint(t *testing.T) {
	c := newTreeConstructor(NewTokenizer(strings.NewReader("")))
	html := &Node{Kind: ElementNode, Data: "html", Namespace: NamespaceHTML}
	table := &Node{Kind: ElementNode, Data: "table", Namespace: NamespaceHTML}
	mi := &Node{Kind: ElementNode, Data: "mi", Namespace: NamespaceMath}
	p := &Node{Kind: ElementNode, Data: "p", Namespace: NamespaceHTML}
	c.push(html)
	c.push(table)
	c.push(mi)
	c.push(p)

	assert.False(t, c.hasInScope("table"), "mi boundary should stop the default-scope walk before reaching table")
}

func TestScopeBoundaryIgnoresNonBoundaryForeignElement(t *testing.T) {
	c := newTreeConstructor(NewTokenizer(strings.NewReader("")))
	html := &Node{Kind: ElementNode, Data: "html", Namespace: NamespaceHTML}
	table := &Node{Kind: ElementNode, Data: "table", Namespace: NamespaceHTML}
	svgG := &Node{Kind: ElementNode, Data: "g", Namespace: NamespaceSVG}
	p := &Node{Kind: ElementNode, Data: "p", Namespace: NamespaceHTML}
	c.push(html)
	c.push(table)
	c.push(svgG)
	c.push(p)

	assert.True(t, c.hasInScope("table"), "an svg <g> is not a scope boundary, so table should still be in scope")
}

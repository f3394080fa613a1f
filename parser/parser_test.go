package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naqvis/crystal-html5/atom"
)

func child(n *Node, i int) *Node {
	c := n.FirstChild
	for ; i > 0 && c != nil; i-- {
		c = c.NextSibling
	}
	return c
}

func childCount(n *Node) int {
	c, n2 := 0, n.FirstChild
	for n2 != nil {
		c++
		n2 = n2.NextSibling
	}
	return c
}

func TestParseImpliesHtmlHeadBody(t *testing.T) {
	doc, err := Parse(strings.NewReader("<p>hi</p>"), Options{})
	require.NoError(t, err)
	html := child(doc, 0)
	require.NotNil(t, html)
	assert.Equal(t, "html", html.Data)
	head := child(html, 0)
	require.NotNil(t, head)
	assert.Equal(t, "head", head.Data)
	body := child(html, 1)
	require.NotNil(t, body)
	assert.Equal(t, "body", body.Data)
	p := child(body, 0)
	require.NotNil(t, p)
	assert.Equal(t, "p", p.Data)
}

func TestParseDoctypeSetsQuirks(t *testing.T) {
	z := NewTokenizer(strings.NewReader(""))
	c := newTreeConstructor(z)
	c.step(Token{Type: DoctypeToken, Data: "html"})
	assert.Equal(t, quirksNo, c.quirks)
}

func TestUnclosedPImplicitlyClosedByBlock(t *testing.T) {
	doc, err := Parse(strings.NewReader("<body><p>one<div>two</div></body>"), Options{})
	require.NoError(t, err)
	body := child(child(doc, 0), 1)
	require.NotNil(t, body)
	require.Equal(t, 2, childCount(body))
	assert.Equal(t, "p", child(body, 0).Data)
	assert.Equal(t, "div", child(body, 1).Data)
}

func TestMisnestedFormattingElementsReconstructed(t *testing.T) {
	doc, err := Parse(strings.NewReader("<body><b>bold <i>both</b> only-i</i></body>"), Options{})
	require.NoError(t, err)
	body := child(child(doc, 0), 1)
	require.NotNil(t, body)
	// Adoption agency should leave a <b> wrapping "bold " and an <i> holding
	// "both", followed by a reconstructed <i> holding " only-i", per the
	// classic mis-nesting example.
	b := child(body, 0)
	require.NotNil(t, b)
	assert.Equal(t, "b", b.Data)
}

func TestAdoptionAgencyDeepMisnestingPastThirdIteration(t *testing.T) {
	// Four formatting elements nested inside <a> with a <div> at the bottom,
	// then </a>: the adoption agency's inner loop walks u, s, i and then b,
	// so on its fourth iteration it drops <b> from the active formatting
	// elements list rather than stopping at a hard cap.
	doc, err := Parse(strings.NewReader("<body><a>1<b>2<i>3<s>4<u>5<div>6</a> tail</body>"), Options{})
	require.NoError(t, err)
	body := child(child(doc, 0), 1)
	require.NotNil(t, body)
	assert.Equal(t, "a", child(body, 0).Data)
}

func TestTableFosterParentsStrayText(t *testing.T) {
	doc, err := Parse(strings.NewReader("<body><table>stray<tr><td>cell</td></tr></table></body>"), Options{})
	require.NoError(t, err)
	body := child(child(doc, 0), 1)
	require.NotNil(t, body)
	// "stray" is foster-parented to before the table, not inside it.
	first := child(body, 0)
	require.NotNil(t, first)
	assert.Equal(t, TextNode, first.Kind)
	assert.Equal(t, "stray", first.Data)
}

func TestParseFragmentInTableContext(t *testing.T) {
	context := &Node{Kind: ElementNode, Data: "table", Namespace: NamespaceHTML}
	nodes, err := ParseFragment(strings.NewReader("<tr><td>x</td></tr>"), context, Options{})
	require.NoError(t, err)
	// In table context a <tr> gets an implied <tbody> around it.
	require.Len(t, nodes, 1)
	assert.Equal(t, "tbody", nodes[0].Data)
}

func TestParseFragmentRejectsAtomDataMismatch(t *testing.T) {
	// The Atom disagrees with Data (Frameset vs "table"), so the caller's
	// constructed context is internally inconsistent and must be rejected
	// rather than silently parsed using "table"'s raw-text/RCDATA switch.
	context := &Node{Kind: ElementNode, Data: "table", Atom: atom.Frameset, Namespace: NamespaceHTML}
	_, err := ParseFragment(strings.NewReader("<tr></tr>"), context, Options{})
	assert.ErrorIs(t, err, ErrInconsistentNode)
}

func TestCommentAndDoctypePreserved(t *testing.T) {
	doc, err := Parse(strings.NewReader("<!DOCTYPE html><!--top--><html></html>"), Options{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, childCount(doc), 2)
	assert.Equal(t, DoctypeNode, child(doc, 0).Kind)
}

func TestSelfClosingVoidElementInsertedIntoTree(t *testing.T) {
	doc, err := Parse(strings.NewReader("<body><p>before<br/>after</p></body>"), Options{})
	require.NoError(t, err)
	body := child(child(doc, 0), 1)
	require.NotNil(t, body)
	p := child(body, 0)
	require.NotNil(t, p)
	require.Equal(t, 3, childCount(p))
	assert.Equal(t, "br", child(p, 1).Data)
}

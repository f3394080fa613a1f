package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naqvis/crystal-html5/parser"
	"github.com/naqvis/crystal-html5/render"
)

func TestRenderRoundTripsSimpleDocument(t *testing.T) {
	doc, err := parser.Parse(strings.NewReader("<!DOCTYPE html><html><head><title>Hi</title></head><body><p>a &amp; b</p></body></html>"), parser.Options{})
	require.NoError(t, err)
	out := render.String(doc)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>Hi</title>")
	assert.Contains(t, out, "a &amp; b")
}

func TestRenderVoidElementHasNoClosingTag(t *testing.T) {
	doc, err := parser.Parse(strings.NewReader("<p>line<br>other</p>"), parser.Options{})
	require.NoError(t, err)
	out := render.String(doc)
	assert.Contains(t, out, "<br>")
	assert.NotContains(t, out, "</br>")
}

func TestRenderNonBreakingSpaceEscapedDistinctFromAsciiSpace(t *testing.T) {
	doc, err := parser.Parse(strings.NewReader("<p>a b c</p>"), parser.Options{})
	require.NoError(t, err)
	out := render.String(doc)
	assert.Contains(t, out, "a&nbsp;b c")
	assert.NotContains(t, out, "a&nbsp;b&nbsp;c")
}

func TestRenderScriptContentNotEscaped(t *testing.T) {
	doc, err := parser.Parse(strings.NewReader("<script>if (1 < 2) { x() }</script>"), parser.Options{})
	require.NoError(t, err)
	out := render.String(doc)
	assert.Contains(t, out, "if (1 < 2) { x() }")
}

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	z := NewTokenizer(strings.NewReader(input))
	var toks []Token
	for {
		tt := z.Next()
		if tt == ErrorToken {
			require.True(t, z.Err() == nil || z.Err().Error() == "EOF", "unexpected tokenizer error: %v", z.Err())
			break
		}
		toks = append(toks, z.Token())
	}
	return toks
}

func TestTextAndTag(t *testing.T) {
	toks := collectTokens(t, "<p>hello</p>")
	require.Len(t, toks, 3)
	assert.Equal(t, StartTagToken, toks[0].Type)
	assert.Equal(t, "p", toks[0].Data)
	assert.Equal(t, TextToken, toks[1].Type)
	assert.Equal(t, "hello", toks[1].Data)
	assert.Equal(t, EndTagToken, toks[2].Type)
	assert.Equal(t, "p", toks[2].Data)
}

func TestAttributes(t *testing.T) {
	toks := collectTokens(t, `<a href="/x" target='_blank' disabled>`)
	require.Len(t, toks, 1)
	tok := toks[0]
	require.Len(t, tok.Attr, 3)
	assert.Equal(t, Attr{Key: "href", Val: "/x"}, tok.Attr[0])
	assert.Equal(t, Attr{Key: "target", Val: "_blank"}, tok.Attr[1])
	assert.Equal(t, Attr{Key: "disabled", Val: ""}, tok.Attr[2])
}

func TestDuplicateAttributeFirstWins(t *testing.T) {
	toks := collectTokens(t, `<div id="a" id="b">`)
	require.Len(t, toks, 1)
	require.Len(t, toks[0].Attr, 1)
	assert.Equal(t, "a", toks[0].Attr[0].Val)
}

func TestComment(t *testing.T) {
	toks := collectTokens(t, "<!-- hi -->")
	require.Len(t, toks, 1)
	assert.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, " hi ", toks[0].Data)
}

func TestCommentWithDashBangClose(t *testing.T) {
	toks := collectTokens(t, "<!--oops--!>")
	require.Len(t, toks, 1)
	assert.Equal(t, CommentToken, toks[0].Type)
	assert.Equal(t, "oops", toks[0].Data)
}

func TestDoctype(t *testing.T) {
	toks := collectTokens(t, "<!DOCTYPE html>")
	require.Len(t, toks, 1)
	assert.Equal(t, DoctypeToken, toks[0].Type)
	assert.Equal(t, "html", toks[0].Data)
	assert.False(t, toks[0].ForceQuirks)
}

func TestSelfClosingTag(t *testing.T) {
	toks := collectTokens(t, `<br/>`)
	require.Len(t, toks, 1)
	assert.Equal(t, SelfClosingTagToken, toks[0].Type)
	assert.Equal(t, "br", toks[0].Data)
}

func TestRawTextMode(t *testing.T) {
	z := NewTokenizer(strings.NewReader("<style>a > b { color: red; }</style>"))
	tt := z.Next()
	require.Equal(t, StartTagToken, tt)
	z.ToRawText("style")
	tt = z.Next()
	require.Equal(t, TextToken, tt)
	assert.Equal(t, "a > b { color: red; }", z.Token().Data)
	tt = z.Next()
	require.Equal(t, EndTagToken, tt)
	assert.Equal(t, "style", z.Token().Data)
}

func TestScriptDataEscaped(t *testing.T) {
	src := "<script>var x = '<!--a</script>b-->';</script>"
	z := NewTokenizer(strings.NewReader(src))
	tt := z.Next()
	require.Equal(t, StartTagToken, tt)
	z.ToScriptData()
	tt = z.Next()
	require.Equal(t, TextToken, tt)
	tt = z.Next()
	require.Equal(t, EndTagToken, tt)
	assert.Equal(t, "script", z.Token().Data)
}

func TestBufferExceeded(t *testing.T) {
	z := NewTokenizer(strings.NewReader(strings.Repeat("a", 10000)))
	z.SetMaxBuf(64)
	tt := z.Next()
	assert.Equal(t, ErrorToken, tt)
	assert.Equal(t, ErrBufferExceeded, z.Err())
}

func TestReassemblyInvariant(t *testing.T) {
	input := `<div class="x"><!--c-->text<br/></div>`
	z := NewTokenizer(strings.NewReader(input))
	var rebuilt strings.Builder
	for {
		tt := z.Next()
		if tt == ErrorToken {
			break
		}
		rebuilt.Write(z.Raw())
	}
	rebuilt.Write(z.Buffered())
	assert.Equal(t, input, rebuilt.String())
}

func TestNullByteReplaced(t *testing.T) {
	toks := collectTokens(t, "a\x00b")
	require.Len(t, toks, 1)
	assert.Equal(t, "a�b", toks[0].Data)
}

func TestEntityInText(t *testing.T) {
	z := NewTokenizer(strings.NewReader("<title>R&amp;D &lt;ok&gt;</title>"))
	require.Equal(t, StartTagToken, z.Next())
	z.ToRCData("title")
	require.Equal(t, TextToken, z.Next())
	assert.Equal(t, "R&D <ok>", z.Token().Data)
}

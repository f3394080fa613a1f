package parser

import (
	"strings"

	"github.com/naqvis/crystal-html5/atom"
)

// TokenType identifies the kind of token the tokenizer has produced.
type TokenType uint32

const (
	// ErrorToken means that an error occurred during tokenization, or that
	// the end of input has been reached. Call Tokenizer.Err to see which.
	ErrorToken TokenType = iota
	// TextToken means a run of character data (not markup).
	TextToken
	// StartTagToken looks like <a>.
	StartTagToken
	// EndTagToken looks like </a>.
	EndTagToken
	// SelfClosingTagToken looks like <br/>.
	SelfClosingTagToken
	// CommentToken looks like <!--x-->.
	CommentToken
	// DoctypeToken looks like <!DOCTYPE x>.
	DoctypeToken
)

func (t TokenType) String() string {
	switch t {
	case ErrorToken:
		return "Error"
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case SelfClosingTagToken:
		return "SelfClosingTag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	}
	return "Invalid(" + itoa(int(t)) + ")"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var b [20]byte
	n := len(b)
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}

// Attr is the materialized form of an Attribute span pair, used on Token
// before the attribute has been attached to a Node.
type Attr struct {
	Namespace string
	Key       string
	Val       string
}

// Token is an owning, materialized token: its span data has been copied
// into its own strings, so it remains valid after the following call to
// Tokenizer.Next.
type Token struct {
	Type             TokenType
	DataAtom         atom.Atom
	Data             string
	Attr             []Attr
	SelfClosing      bool
	ForceQuirks      bool
	PublicIdentifier string
	SystemIdentifier string
}

// tagString renders the token's tag name and attributes, primarily for
// diagnostics (parse error messages, debug logging).
func (t Token) tagString() string {
	if len(t.Attr) == 0 {
		return t.Data
	}
	buf := strings.Builder{}
	buf.WriteString(t.Data)
	for _, a := range t.Attr {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		buf.WriteString(a.Val)
		buf.WriteByte('"')
	}
	return buf.String()
}

// String renders t as it might appear in a debug trace. It is not used for
// serialization; see package render for that.
func (t Token) String() string {
	switch t.Type {
	case ErrorToken:
		return ""
	case TextToken:
		return t.Data
	case StartTagToken:
		return "<" + t.tagString() + ">"
	case EndTagToken:
		return "</" + t.Data + ">"
	case SelfClosingTagToken:
		return "<" + t.tagString() + "/>"
	case CommentToken:
		return "<!--" + t.Data + "-->"
	case DoctypeToken:
		return "<!DOCTYPE " + t.Data + ">"
	}
	return "Invalid(" + itoa(int(t.Type)) + ")"
}

package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/naqvis/crystal-html5/atom"
)

// span delimits a half-open byte range [start, end) within Tokenizer.buf.
// The raw span covers every byte of the current token; the data span
// covers the token's semantic payload (tag name, text run, comment body).
// Concatenating the raw spans of every token the tokenizer emits, plus the
// bytes still sitting unread in buf when the caller stops pulling tokens,
// reproduces the original input exactly: this is the reassembly invariant
// the tests in tokenizer_test.go check directly.
type span struct {
	start, end int
}

func (s span) String(buf []byte) string { return string(buf[s.start:s.end]) }

// rawTextMode selects the tokenizer sub-machine the tree constructor has
// switched into after opening a raw-text, RCDATA, or script-data element.
type rawTextMode int

const (
	notRaw rawTextMode = iota
	rawText
	rcData
	scriptData
	plaintextMode
)

// scriptSubState tracks the nested comment-escape states inside <script>
// content; see readScriptData.
type scriptSubState int

const (
	scriptNormal scriptSubState = iota
	scriptEscaped
	scriptDoubleEscaped
)

// Tokenizer partitions a UTF-8 byte stream into the token kinds described in
// §4.2: Text, StartTag, EndTag, SelfClosingTag, Comment, Doctype, and a
// terminal Error. It is a pull-based iterator: call Next to advance, then
// read the current token through Raw, Text, TagName, TagAttr, or Token.
// There is no coroutine or channel anywhere in this type; the only blocking
// operation is the wrapped reader's Read.
type Tokenizer struct {
	r io.Reader

	buf    []byte
	n      int // buf[:n] holds bytes read so far that have not been discarded.
	maxBuf int // 0 means unbounded.

	raw  span
	data span

	attrs          [][2]span
	nAttrsReturned int

	tt          TokenType
	err         error
	readErr     error
	noProgress  int
	selfClosing bool
	forceQuirks bool

	// Raw-text / RCDATA / script-data sub-mode state, entered explicitly by
	// the tree constructor (never auto-detected by the tokenizer itself;
	// see §4.4's "generic raw-text elements" paragraph).
	rawMode     rawTextMode
	rawTagName  string
	scriptState scriptSubState

	convertNUL bool
	allowCDATA bool
}

// NewTokenizer returns a Tokenizer that reads from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{
		r:          r,
		buf:        make([]byte, 0, 4096),
		convertNUL: true,
	}
}

// SetMaxBuf bounds the live token window. Exceeding it fails the current
// token with ErrBufferExceeded.
func (z *Tokenizer) SetMaxBuf(n int) { z.maxBuf = n }

// AllowCDATA controls whether "<![CDATA[" is recognized as a CDATA section
// (only valid in foreign content) or becomes a bogus comment.
func (z *Tokenizer) AllowCDATA(v bool) { z.allowCDATA = v }

// ToRawText switches the tokenizer into raw-text mode: all bytes up to and
// including the case-insensitive matching "</tagName" end tag are consumed
// as one Text token, without any tag or entity recognition.
func (z *Tokenizer) ToRawText(tagName string) {
	z.rawMode = rawText
	z.rawTagName = strings.ToLower(tagName)
}

// ToRCData is like ToRawText but the content is later entity-unescaped when
// materialized via Token (title, textarea).
func (z *Tokenizer) ToRCData(tagName string) {
	z.rawMode = rcData
	z.rawTagName = strings.ToLower(tagName)
}

// ToScriptData switches into the script-data sub-machine, including its
// comment-escape nesting (§4.2).
func (z *Tokenizer) ToScriptData() {
	z.rawMode = scriptData
	z.rawTagName = "script"
	z.scriptState = scriptNormal
}

// ToPlaintext switches into the PLAINTEXT state: the remainder of the
// input, to EOF, is a single Text token with no further tag recognition.
func (z *Tokenizer) ToPlaintext() {
	z.rawMode = plaintextMode
}

// Err returns the error associated with the most recent ErrorToken, or nil.
func (z *Tokenizer) Err() error {
	if z.tt != ErrorToken {
		return nil
	}
	return z.err
}

// Raw returns the unmodified source bytes of the current token.
func (z *Tokenizer) Raw() []byte { return z.buf[z.raw.start:z.raw.end] }

// Buffered returns the bytes that have been read from the underlying
// reader but not yet consumed by any emitted token's raw span.
func (z *Tokenizer) Buffered() []byte { return z.buf[z.raw.end:z.n] }

// compact discards the previous token's already-returned raw bytes so the
// live window doesn't grow without bound across a long parse. All spans
// are rebased by the shift amount.
func (z *Tokenizer) compact() {
	shift := z.raw.start
	if shift == 0 {
		return
	}
	copy(z.buf, z.buf[shift:z.n])
	z.n -= shift
	z.raw.start -= shift
	z.raw.end -= shift
	z.data.start -= shift
	z.data.end -= shift
	for i := range z.attrs {
		z.attrs[i][0].start -= shift
		z.attrs[i][0].end -= shift
		z.attrs[i][1].start -= shift
		z.attrs[i][1].end -= shift
	}
	z.buf = z.buf[:z.n]
}

// growIfNeeded doubles buf's capacity if the live window (from raw.start to
// the buffer's current capacity) has become more than half full.
func (z *Tokenizer) growIfNeeded() {
	if z.n*2 < cap(z.buf) {
		return
	}
	live := z.n - z.raw.start
	newCap := cap(z.buf) * 2
	if newCap == 0 {
		newCap = 4096
	}
	for newCap < live*2 {
		newCap *= 2
	}
	nb := make([]byte, z.n, newCap)
	copy(nb, z.buf[:z.n])
	z.buf = nb
}

// readByte returns the next byte, reading more input if the buffer is
// exhausted. ok is false at EOF or on a sticky error (see z.readErr).
func (z *Tokenizer) readByte() (c byte, ok bool) {
	if z.raw.end >= z.n {
		if !z.fill() {
			return 0, false
		}
	}
	c = z.buf[z.raw.end]
	z.raw.end++
	if z.maxBuf > 0 && z.raw.end-z.raw.start > z.maxBuf {
		z.err = ErrBufferExceeded
		return 0, false
	}
	return c, true
}

// fill reads more bytes from the underlying reader into the tail of buf.
func (z *Tokenizer) fill() bool {
	if z.readErr != nil {
		return false
	}
	z.compact()
	z.growIfNeeded()
	for {
		n, err := z.r.Read(z.buf[z.n:cap(z.buf)])
		if n == 0 && err == nil {
			z.noProgress++
			if z.noProgress > maxNoProgressReads {
				z.readErr = ErrNoProgress
				z.err = ErrNoProgress
				return false
			}
			continue
		}
		z.noProgress = 0
		z.n += n
		z.buf = z.buf[:z.n]
		if n > 0 {
			return true
		}
		z.readErr = err
		if err != nil {
			z.err = err
			return false
		}
	}
}

// unreadByte steps the raw cursor back by one; used by lookahead-then-back-
// up logic such as matching "</tagName" boundaries.
func (z *Tokenizer) unreadByte() { z.raw.end-- }

// peekByte returns the next byte without consuming it.
func (z *Tokenizer) peekByte() (c byte, ok bool) {
	c, ok = z.readByte()
	if ok {
		z.unreadByte()
	}
	return c, ok
}

func isWhitespace(c byte) bool {
	switch c {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// truncated reports whether the tokenizer stopped because of a hard error
// (BufferExceeded, NoProgress, or a reader error) rather than a graceful
// EOF; a truncated token is abandoned as an ErrorToken instead of being
// returned as a partial Text/Comment/Doctype token.
func (z *Tokenizer) truncated() bool {
	return z.err != nil && z.err != io.EOF
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Next advances the tokenizer to the next token and returns its type.
func (z *Tokenizer) Next() TokenType {
	z.compact()
	z.raw.start = z.raw.end
	z.data = span{}
	z.attrs = z.attrs[:0]
	z.nAttrsReturned = 0
	z.selfClosing = false
	z.forceQuirks = false

	if z.err != nil && z.err != io.EOF {
		z.tt = ErrorToken
		return z.tt
	}

	switch z.rawMode {
	case rawText, rcData:
		return z.nextRawOrRCData()
	case scriptData:
		return z.nextScriptData()
	case plaintextMode:
		return z.nextPlaintext()
	}
	return z.nextData()
}

// nextData implements the default data-state sub-machine: accumulate text
// until '<', then classify what follows.
func (z *Tokenizer) nextData() TokenType {
	dataSet := false
	for {
		c, ok := z.readByte()
		if !ok {
			if dataSet && z.data.end > z.data.start && !z.truncated() {
				z.tt = TextToken
				return z.tt
			}
			z.tt = ErrorToken
			return z.tt
		}
		if c == '<' {
			if dataSet && z.data.end > z.data.start {
				z.unreadByte()
				z.tt = TextToken
				return z.tt
			}
			return z.readTagOpen()
		}
		if !dataSet {
			z.data.start = z.raw.end - 1
			dataSet = true
		}
		z.data.end = z.raw.end
	}
}

// readTagOpen is called right after consuming '<' in the data state; it
// classifies the rest of the markup construct.
func (z *Tokenizer) readTagOpen() TokenType {
	c, ok := z.readByte()
	if !ok {
		z.data = span{z.raw.start, z.raw.end}
		z.tt = TextToken
		return z.tt
	}
	switch {
	case c == '!':
		return z.readMarkupDeclaration()
	case c == '/':
		return z.readEndTag()
	case ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
		z.unreadByte()
		return z.readStartTag()
	case c == '?':
		// Bogus comment: a processing-instruction-like construct is not
		// valid HTML5 markup and is folded into a bogus comment to '>'.
		z.unreadByte()
		return z.readBogusComment()
	default:
		z.unreadByte()
		z.data = span{z.raw.start, z.raw.end}
		z.tt = TextToken
		return z.tt
	}
}

func (z *Tokenizer) readMarkupDeclaration() TokenType {
	if z.matchCaseInsensitive("--") {
		return z.readComment()
	}
	if z.matchCaseInsensitive("doctype") {
		return z.readDoctype()
	}
	if z.allowCDATA && z.matchCaseInsensitive("[cdata[") {
		return z.readCDATA()
	}
	return z.readBogusComment()
}

// matchCaseInsensitive consumes s from the input if the upcoming bytes
// equal it case-insensitively; otherwise the input is left unconsumed.
func (z *Tokenizer) matchCaseInsensitive(s string) bool {
	start := z.raw.end
	for i := 0; i < len(s); i++ {
		c, ok := z.readByte()
		if !ok || lower(c) != s[i] {
			z.raw.end = start
			return false
		}
	}
	return true
}

func (z *Tokenizer) readComment() TokenType {
	z.data.start = z.raw.end
	dashCount := 0
	for {
		c, ok := z.readByte()
		if !ok {
			// EOF mid-comment: at most two trailing dashes are discarded.
			end := z.raw.end
			if dashCount >= 2 {
				end -= 2
			} else {
				end -= dashCount
			}
			z.data.end = end
			z.tt = CommentToken
			return z.tt
		}
		if c == '-' {
			dashCount++
			continue
		}
		if c == '>' && dashCount >= 2 {
			// raw.end is just past '>'; the closing "--" sits right before it.
			z.data.end = z.raw.end - 3
			z.tt = CommentToken
			return z.tt
		}
		if c == '!' && dashCount >= 2 {
			// "--!>" closes the comment (a quirk of the real tokenizer).
			c2, ok2 := z.peekByte()
			if ok2 && c2 == '>' {
				z.readByte()
				z.data.end = z.raw.end - 4
				z.tt = CommentToken
				return z.tt
			}
		}
		dashCount = 0
	}
}

func (z *Tokenizer) readBogusComment() TokenType {
	z.data.start = z.raw.end
	for {
		c, ok := z.readByte()
		if !ok {
			z.data.end = z.raw.end
			z.tt = CommentToken
			return z.tt
		}
		if c == '>' {
			z.data.end = z.raw.end - 1
			z.tt = CommentToken
			return z.tt
		}
	}
}

func (z *Tokenizer) readDoctype() TokenType {
	z.data.start = z.raw.end
	for {
		c, ok := z.readByte()
		if !ok {
			z.data.end = z.raw.end
			z.forceQuirks = true
			z.tt = DoctypeToken
			return z.tt
		}
		if c == '>' {
			z.data.end = z.raw.end - 1
			z.tt = DoctypeToken
			return z.tt
		}
	}
}

func (z *Tokenizer) readCDATA() TokenType {
	z.data.start = z.raw.end
	bracketCount := 0
	for {
		c, ok := z.readByte()
		if !ok {
			z.data.end = z.raw.end
			z.tt = TextToken
			return z.tt
		}
		if c == ']' {
			bracketCount++
			continue
		}
		if c == '>' && bracketCount >= 2 {
			z.data.end = z.raw.end - 2 - 1
			z.tt = TextToken
			return z.tt
		}
		bracketCount = 0
	}
}

func (z *Tokenizer) readEndTag() TokenType {
	c, ok := z.peekByte()
	if !ok || !(('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')) {
		// "</>" or "</1" etc: not a real tag, becomes a bogus comment.
		return z.readBogusComment()
	}
	return z.readTagCommon(EndTagToken)
}

func (z *Tokenizer) readStartTag() TokenType {
	return z.readTagCommon(StartTagToken)
}

// readTagCommon reads a tag name followed by zero or more attributes and an
// optional self-closing slash, per §4.2's "Tag reading" paragraph.
func (z *Tokenizer) readTagCommon(tt TokenType) TokenType {
	z.data.start = z.raw.end
	for {
		c, ok := z.readByte()
		if !ok {
			z.data.end = z.raw.end
			z.tt = ErrorToken
			return z.tt
		}
		if isWhitespace(c) {
			z.data.end = z.raw.end - 1
			break
		}
		if c == '/' || c == '>' {
			z.unreadByte()
			z.data.end = z.raw.end
			break
		}
	}

	for {
		z.skipWhitespace()
		c, ok := z.peekByte()
		if !ok {
			z.tt = ErrorToken
			return z.tt
		}
		if c == '/' {
			z.readByte()
			c2, ok2 := z.peekByte()
			if ok2 && c2 == '>' {
				z.readByte()
				z.selfClosing = true
				z.tt = SelfClosingTagToken
				return z.tt
			}
			continue
		}
		if c == '>' {
			z.readByte()
			z.tt = tt
			return z.tt
		}
		if !z.readAttribute() {
			z.tt = ErrorToken
			return z.tt
		}
	}
}

func (z *Tokenizer) skipWhitespace() {
	for {
		c, ok := z.peekByte()
		if !ok || !isWhitespace(c) {
			return
		}
		z.readByte()
	}
}

// readAttribute reads one key[=value] pair, per §4.2: keys terminate on
// whitespace, '/', '=', or '>'; unquoted values terminate on whitespace or
// '>'; quoted values terminate on the matching quote.
func (z *Tokenizer) readAttribute() bool {
	keyStart := z.raw.end
	for {
		c, ok := z.peekByte()
		if !ok {
			return false
		}
		if isWhitespace(c) || c == '/' || c == '=' || c == '>' {
			break
		}
		z.readByte()
	}
	key := span{keyStart, z.raw.end}

	z.skipWhitespace()
	c, ok := z.peekByte()
	if !ok {
		z.attrs = append(z.attrs, [2]span{key, {}})
		return true
	}
	if c != '=' {
		z.attrs = append(z.attrs, [2]span{key, {}})
		return true
	}
	z.readByte() // consume '='
	z.skipWhitespace()

	c, ok = z.peekByte()
	if !ok {
		z.attrs = append(z.attrs, [2]span{key, {}})
		return true
	}
	var val span
	switch c {
	case '\'', '"':
		z.readByte()
		quote := c
		valStart := z.raw.end
		for {
			c2, ok2 := z.readByte()
			if !ok2 {
				val = span{valStart, z.raw.end}
				z.attrs = append(z.attrs, [2]span{key, val})
				return false
			}
			if c2 == quote {
				val = span{valStart, z.raw.end - 1}
				z.attrs = append(z.attrs, [2]span{key, val})
				return true
			}
		}
	default:
		valStart := z.raw.end
		for {
			c2, ok2 := z.peekByte()
			if !ok2 || isWhitespace(c2) || c2 == '>' {
				val = span{valStart, z.raw.end}
				z.attrs = append(z.attrs, [2]span{key, val})
				return true
			}
			z.readByte()
		}
	}
}

// nextPlaintext implements the PLAINTEXT state: everything to EOF is text.
func (z *Tokenizer) nextPlaintext() TokenType {
	z.data.start = z.raw.end
	for {
		_, ok := z.readByte()
		if !ok {
			z.data.end = z.raw.end
			if z.data.end > z.data.start && !z.truncated() {
				z.tt = TextToken
				// Stay in plaintext for the (nonexistent) next call; the
				// sticky z.err will turn it into ErrorToken then.
				return z.tt
			}
			z.tt = ErrorToken
			return z.tt
		}
	}
}

// nextRawOrRCData consumes raw-text/RCDATA content up to (not including)
// a case-insensitive "</rawTagName" boundary followed by one of
// whitespace, '/', or '>'. The boundary bytes are left unconsumed so the
// following Next call parses them as an ordinary end tag.
func (z *Tokenizer) nextRawOrRCData() TokenType {
	z.data.start = z.raw.end
	for {
		before := z.raw.end
		c, ok := z.readByte()
		if !ok {
			z.data.end = z.raw.end
			if z.data.end > z.data.start && !z.truncated() {
				z.tt = TextToken
				return z.tt
			}
			z.tt = ErrorToken
			return z.tt
		}
		if c != '<' {
			continue
		}
		if z.matchEndTagBoundary() {
			z.raw.end = before
			z.data.end = before
			if z.data.end > z.data.start {
				// rawMode stays set until the next call, so Token can
				// still tell RCDATA text from raw text.
				z.tt = TextToken
				return z.tt
			}
			z.rawMode = notRaw
			return z.nextData()
		}
	}
}

// matchEndTagBoundary peeks (without permanently consuming past a failed
// match) for "/tagName" followed by a valid boundary character, having
// already consumed the leading '<'.
func (z *Tokenizer) matchEndTagBoundary() bool {
	save := z.raw.end
	c, ok := z.readByte()
	if !ok || c != '/' {
		z.raw.end = save
		return false
	}
	for i := 0; i < len(z.rawTagName); i++ {
		c, ok := z.readByte()
		if !ok || lower(c) != z.rawTagName[i] {
			z.raw.end = save
			return false
		}
	}
	c, ok = z.peekByte()
	if !ok {
		z.raw.end = save
		return false
	}
	if isWhitespace(c) || c == '/' || c == '>' {
		z.raw.end = save
		return true
	}
	z.raw.end = save
	return false
}

// nextScriptData implements the script-data state and its escape-nesting
// sub-states (§4.2).
func (z *Tokenizer) nextScriptData() TokenType {
	z.data.start = z.raw.end
	for {
		before := z.raw.end
		c, ok := z.readByte()
		if !ok {
			z.data.end = z.raw.end
			if z.data.end > z.data.start && !z.truncated() {
				z.tt = TextToken
				return z.tt
			}
			z.tt = ErrorToken
			return z.tt
		}

		switch z.scriptState {
		case scriptNormal:
			if c == '<' {
				if z.tryScriptEndTag(before) {
					return z.finishScriptText(before)
				}
				if z.matchCaseInsensitive("!--") {
					z.scriptState = scriptEscaped
				}
			}
		case scriptEscaped:
			if c == '<' {
				if z.tryScriptEndTag(before) {
					return z.finishScriptText(before)
				}
				if z.peekIsScriptTagNameStart() {
					z.scriptState = scriptDoubleEscaped
				}
			} else if c == '-' {
				if z.matchDashDashCloses() {
					z.scriptState = scriptNormal
				}
			}
		case scriptDoubleEscaped:
			if c == '<' {
				if z.matchCaseInsensitive("/script") {
					c2, ok2 := z.peekByte()
					if ok2 && (isWhitespace(c2) || c2 == '/' || c2 == '>') {
						z.scriptState = scriptEscaped
					}
				}
			} else if c == '-' {
				if z.matchDashDashCloses() {
					z.scriptState = scriptNormal
				}
			}
		}
	}
}

func (z *Tokenizer) peekIsScriptTagNameStart() bool {
	c, ok := z.peekByte()
	if !ok {
		return false
	}
	lc := lower(c)
	return 'a' <= lc && lc <= 'z'
}

// matchDashDashCloses recognizes "--" followed by '>' as the end of the
// escaped/double-escaped region, reverting to plain script-data. A single
// '-' that is not part of "-->" has no effect on the state.
func (z *Tokenizer) matchDashDashCloses() bool {
	save := z.raw.end
	c, ok := z.peekByte()
	if !ok || c != '-' {
		return false
	}
	z.readByte()
	c2, ok2 := z.peekByte()
	if ok2 && c2 == '>' {
		z.readByte()
		return true
	}
	z.raw.end = save
	return false
}

// tryScriptEndTag attempts to match "</script" + boundary right after a
// '<' consumed at position before. On success the raw cursor is rewound to
// before so the end tag is re-read as an ordinary token on the next call.
func (z *Tokenizer) tryScriptEndTag(before int) bool {
	if !z.matchEndTagBoundaryNamed("script") {
		return false
	}
	z.raw.end = before
	return true
}

func (z *Tokenizer) matchEndTagBoundaryNamed(name string) bool {
	save := z.raw.end
	c, ok := z.readByte()
	if !ok || c != '/' {
		z.raw.end = save
		return false
	}
	for i := 0; i < len(name); i++ {
		c, ok := z.readByte()
		if !ok || lower(c) != name[i] {
			z.raw.end = save
			return false
		}
	}
	c, ok = z.peekByte()
	if !ok {
		z.raw.end = save
		return false
	}
	if isWhitespace(c) || c == '/' || c == '>' {
		z.raw.end = save
		return true
	}
	z.raw.end = save
	return false
}

// TagName returns the lowercased tag name of the current Start/End/SelfClosing
// tag token, and its Atom if it is a known tag.
func (z *Tokenizer) TagName() (name string, a atom.Atom) {
	raw := z.data.String(z.buf)
	lowered := strings.ToLower(raw)
	return lowered, atom.String(lowered)
}

// TagAttr returns the key/value of the next attribute of the current tag
// token, in source order, and whether there was one to return. Keys are
// lowercased; values are left unescaped (Token performs unescaping).
func (z *Tokenizer) TagAttr() (key, val []byte, more bool) {
	if z.nAttrsReturned >= len(z.attrs) {
		return nil, nil, false
	}
	pair := z.attrs[z.nAttrsReturned]
	z.nAttrsReturned++
	key = bytes.ToLower(z.buf[pair[0].start:pair[0].end])
	val = z.buf[pair[1].start:pair[1].end]
	return key, val, z.nAttrsReturned < len(z.attrs)
}

// Token materializes the current token into an owning Token value: CR/CRLF
// are normalized to LF, NUL bytes become U+FFFD, and ordinary text, RCDATA
// text and attribute values are entity-unescaped (raw-text, script and
// plaintext content is not). The returned Token remains valid after the next
// call to Next, unlike the views returned by Raw/TagName/TagAttr.
func (z *Tokenizer) Token() Token {
	t := Token{Type: z.tt, ForceQuirks: z.forceQuirks}
	switch z.tt {
	case TextToken:
		raw := normalizeNewlines(z.data.String(z.buf))
		if z.rawMode == notRaw || z.rawMode == rcData {
			raw = unescapeString(raw, false)
		}
		if z.convertNUL {
			raw = replaceNUL(raw)
		}
		t.Data = raw
	case CommentToken:
		t.Data = replaceNUL(normalizeNewlines(z.data.String(z.buf)))
	case DoctypeToken:
		name, pub, sys, forceQuirks := parseDoctype(z.data.String(z.buf))
		t.Data = name
		t.PublicIdentifier = pub
		t.SystemIdentifier = sys
		t.ForceQuirks = t.ForceQuirks || forceQuirks
	case StartTagToken, EndTagToken, SelfClosingTagToken:
		name, a := z.TagName()
		t.Data = name
		t.DataAtom = a
		t.SelfClosing = z.tt == SelfClosingTagToken
		for i := 0; i < len(z.attrs); i++ {
			pair := z.attrs[i]
			key := strings.ToLower(pair[0].String(z.buf))
			val := unescapeString(replaceNUL(pair[1].String(z.buf)), true)
			t.Attr = append(t.Attr, Attr{Key: key, Val: val})
		}
		t.Attr = dedupAttr(t.Attr)
	}
	return t
}

// dedupAttr drops every attribute after the first occurrence of its key, per
// §4.2's duplicate-attribute parse error recovery (first occurrence wins).
func dedupAttr(attrs []Attr) []Attr {
	if len(attrs) < 2 {
		return attrs
	}
	seen := make(map[string]bool, len(attrs))
	out := attrs[:0]
	for _, a := range attrs {
		if seen[a.Key] {
			continue
		}
		seen[a.Key] = true
		out = append(out, a)
	}
	return out
}

// replaceNUL replaces every NUL byte with the U+FFFD replacement character,
// per the tokenizer's universal "unexpected-null-character" recovery.
func replaceNUL(s string) string {
	if strings.IndexByte(s, 0) < 0 {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "�")
}

// normalizeNewlines collapses CRLF and lone CR to LF, per the input
// preprocessing step every HTML5 tokenizer applies before state-machine
// processing.
func normalizeNewlines(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (z *Tokenizer) finishScriptText(before int) TokenType {
	z.data.end = before
	if z.data.end > z.data.start {
		z.tt = TextToken
		return z.tt
	}
	z.rawMode = notRaw
	return z.nextData()
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescapeNamedWithSemicolon(t *testing.T) {
	assert.Equal(t, "& < >", unescapeString("&amp; &lt; &gt;", false))
}

func TestUnescapeLongestMatch(t *testing.T) {
	// "&notin;" must not be parsed as the legacy "&not" + literal "in;".
	assert.Equal(t, "∉", unescapeString("&notin;", false))
}

func TestUnescapeAttrSuppressesBareAmpersandBeforeEquals(t *testing.T) {
	// "amp" (no trailing ';') is a legacy name; in an attribute value it must
	// not expand when immediately followed by '=' or an alphanumeric.
	assert.Equal(t, "&amp=x", unescapeString("&amp=x", true))
	assert.Equal(t, "&=x", unescapeString("&amp;=x", true))
}

func TestUnescapeNumericDecimal(t *testing.T) {
	assert.Equal(t, "A", unescapeString("&#65;", false))
}

func TestUnescapeNumericHex(t *testing.T) {
	assert.Equal(t, "A", unescapeString("&#x41;", false))
}

func TestUnescapeNumericWindows1252Remap(t *testing.T) {
	assert.Equal(t, "€", unescapeString("&#128;", false))
}

func TestUnescapeNumericNulBecomesReplacementChar(t *testing.T) {
	assert.Equal(t, "�", unescapeString("&#0;", false))
}

func TestUnescapeUnterminatedAmpersandLeftAlone(t *testing.T) {
	// In an attribute value the unterminated legacy "not" is followed by an
	// alphanumeric, so the '&' is left alone.
	assert.Equal(t, "&notanentity", unescapeString("&notanentity", true))
}

func TestUnescapeNumericDelBecomesReplacementChar(t *testing.T) {
	assert.Equal(t, "�", unescapeString("&#127;", false))
}

func TestUnescapeNumericCarriageReturnBecomesReplacementChar(t *testing.T) {
	// CR (0x0D) is a disallowed C0 control, unlike TAB/LF/FF which are let through.
	assert.Equal(t, "�", unescapeString("&#13;", false))
}

func TestUnescapeNumericTabLineFeedFormFeedPassThrough(t *testing.T) {
	assert.Equal(t, "\t\n\f", unescapeString("&#9;&#10;&#12;", false))
}

func TestUnescapeNotEntityLongestMatchFixture(t *testing.T) {
	// "&notit;" matches only the legacy "not" (no trailing ';'), leaving
	// "it;" un-consumed; "&notin;" matches the full "notin;" reference.
	assert.Equal(t, "¬it;∉", unescapeString("&notit;&notin;", false))
}

func TestUnescapeNotEntityTerminatedInAttrValue(t *testing.T) {
	// "&not;" is semicolon-terminated, so the attribute-value legacy
	// ambiguous-ampersand suppression (before '=' or an alphanumeric) does
	// not apply, and it expands normally.
	assert.Equal(t, "hello¬=world", unescapeString("hello&not;=world", true))
}

func TestUnescapeNumericNoncharacterBecomesReplacementChar(t *testing.T) {
	assert.Equal(t, "�", unescapeString("&#xFDD0;", false))
	assert.Equal(t, "�", unescapeString("&#xFFFE;", false))
	assert.Equal(t, "�", unescapeString("&#x1FFFF;", false))
}

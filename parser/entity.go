package parser

import "strings"

// entity maps a named character reference (the part after '&') to the text
// it expands to. Semicolon-terminated names are keyed with their trailing
// ';'; a handful of legacy names (e.g. "amp", "not") also appear without it,
// so they are recognized when the ';' is missing. entity2 holds the names
// that expand to two code points.
var entity = map[string]string{
	"AMP":     "&",
	"amp":     "&",
	"COPY":    "©",
	"copy":    "©",
	"GT":      ">",
	"gt":      ">",
	"LT":      "<",
	"lt":      "<",
	"QUOT":    "\"",
	"quot":    "\"",
	"REG":     "®",
	"reg":     "®",
	"amp;":    "&",
	"copy;":   "©",
	"gt;":     ">",
	"lt;":     "<",
	"quot;":   "\"",
	"reg;":    "®",
	"apos;":   "'",
	"AMP;":    "&",
	"COPY;":   "©",
	"GT;":     ">",
	"LT;":     "<",
	"QUOT;":   "\"",
	"REG;":    "®",
	"nbsp":    " ",
	"nbsp;":   " ",
	"not":     "¬",
	"not;":    "¬",
	"hellip;": "…",
	"mdash;":  "—",
	"ndash;":  "–",
	"lsquo;":  "‘",
	"rsquo;":  "’",
	"ldquo;":  "“",
	"rdquo;":  "”",
	"trade;":  "™",
	"larr;":   "←",
	"uarr;":   "↑",
	"rarr;":   "→",
	"darr;":   "↓",
	"deg;":    "°",
	"plusmn;": "±",
	"times;":  "×",
	"divide;": "÷",
	"micro;":  "µ",
	"para;":   "¶",
	"sect;":   "§",
	"middot;": "·",
	"laquo;":  "«",
	"raquo;":  "»",
	"iexcl;":  "¡",
	"iquest;": "¿",
	"euro;":   "€",
	"cent;":   "¢",
	"pound;":  "£",
	"yen;":    "¥",
	"sup1;":   "¹",
	"sup2;":   "²",
	"sup3;":   "³",
	"frac12;": "½",
	"frac14;": "¼",
	"frac34;": "¾",
	"bull;":   "•",
	"dagger;": "†",
	"Dagger;": "‡",
	"permil;": "‰",
	"infin;":  "∞",
	"ne;":     "≠",
	"le;":     "≤",
	"ge;":     "≥",
	"forall;": "∀",
	"exist;":  "∃",
	"empty;":  "∅",
	"isin;":   "∈",
	"notin;":  "∉",
	"sum;":    "∑",
	"prod;":   "∏",
	"radic;":  "√",
	"int;":    "∫",
	"there4;": "∴",
	"sim;":    "∼",
	"cong;":   "≅",
	"asymp;":  "≈",
	"alpha;":  "α",
	"beta;":   "β",
	"gamma;":  "γ",
	"delta;":  "δ",
	"pi;":     "π",
	"sigma;":  "σ",
	"omega;":  "ω",
}

// entity2 holds names that decode to a two-rune sequence.
var entity2 = map[string][2]rune{
	"acE;":     {0x223e, 0x0333},
	"nvap;":    {0x224d, 0x20e2},
	"ThickSpace;": {0x205f, 0x200a},
}

// windows1252 remaps the C1-control numeric character reference range
// (0x80-0x9f), which legacy content commonly uses to mean the equivalent
// Windows-1252 codepoint rather than the literal C1 control, per §4.3's
// "numeric character reference end state" table.
var windows1252 = [32]rune{
	0x20ac, 0x0081, 0x201a, 0x0192, 0x201e, 0x2026, 0x2020, 0x2021,
	0x02c6, 0x2030, 0x0160, 0x2039, 0x0152, 0x008d, 0x017d, 0x008f,
	0x0090, 0x2018, 0x2019, 0x201c, 0x201d, 0x2022, 0x2013, 0x2014,
	0x02dc, 0x2122, 0x0161, 0x203a, 0x0153, 0x009d, 0x017e, 0x0178,
}

// unescapeString expands character references in s. When inAttr is true, a
// named reference that is not terminated by ';' and is immediately followed
// by '=' or an alphanumeric is left alone, per the attribute-value special
// case in §4.3.
func unescapeString(s string, inAttr bool) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '&' {
			b.WriteByte(c)
			i++
			continue
		}
		rest := s[i+1:]
		if strings.HasPrefix(rest, "#") {
			r, n, ok := decodeNumericRef(rest[1:])
			if !ok {
				b.WriteByte('&')
				i++
				continue
			}
			b.WriteRune(r)
			i += 1 + 1 + n
			continue
		}
		name, expansion, two, n, ok := longestNamedMatch(rest)
		if !ok {
			b.WriteByte('&')
			i++
			continue
		}
		if inAttr && !strings.HasSuffix(name, ";") {
			after := byte(0)
			if n < len(rest) {
				after = rest[n]
			}
			if after == '=' || isAlnum(after) {
				b.WriteByte('&')
				i++
				continue
			}
		}
		if two != ([2]rune{}) {
			b.WriteRune(two[0])
			b.WriteRune(two[1])
		} else {
			b.WriteString(expansion)
		}
		i += 1 + n
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// longestNamedMatch finds the longest prefix of rest that names a known
// entity, per §4.3's "attempt to consume the longest match" rule: named
// references are not delimited, so "&notin;" must not be read as "&not" +
// "in;".
func longestNamedMatch(rest string) (name, expansion string, two [2]rune, n int, ok bool) {
	limit := len(rest)
	if limit > 32 {
		limit = 32
	}
	for end := limit; end > 0; end-- {
		cand := rest[:end]
		if v, found := entity[cand]; found {
			return cand, v, [2]rune{}, end, true
		}
		if v, found := entity2[cand]; found {
			return cand, "", v, end, true
		}
	}
	return "", "", [2]rune{}, 0, false
}

// decodeNumericRef decodes a "&#..." reference, having already consumed the
// '#'. n is the number of bytes of rest consumed, not counting the leading
// '#' (but including a trailing ';' if present).
func decodeNumericRef(rest string) (r rune, n int, ok bool) {
	hex := false
	i := 0
	if i < len(rest) && (rest[i] == 'x' || rest[i] == 'X') {
		hex = true
		i++
	}
	start := i
	var v int64
	for i < len(rest) {
		c := rest[i]
		var d int64
		switch {
		case '0' <= c && c <= '9':
			d = int64(c - '0')
		case hex && 'a' <= c && c <= 'f':
			d = int64(c-'a') + 10
		case hex && 'A' <= c && c <= 'F':
			d = int64(c-'A') + 10
		default:
			goto done
		}
		v = v*radixOf(hex) + d
		if v > 0x10ffff {
			v = 0x110000
		}
		i++
	}
done:
	if i == start {
		return 0, 0, false
	}
	if i < len(rest) && rest[i] == ';' {
		i++
	}
	return numericRefToRune(v), i, true
}

func radixOf(hex bool) int64 {
	if hex {
		return 16
	}
	return 10
}

// numericRefToRune applies the replacement table for invalid/disallowed code
// points described in §4.3: the null character, out-of-range values, UTF-16
// surrogates, the Windows-1252 C1 remap, and the remaining disallowed
// codepoints (C0 controls other than tab/LF/FF, 0x7F, and noncharacters)
// all funnel through here.
func numericRefToRune(v int64) rune {
	switch {
	case v == 0:
		return '�'
	case v > 0x10ffff:
		return '�'
	case 0xd800 <= v && v <= 0xdfff:
		return '�'
	case 0x80 <= v && v <= 0x9f:
		return windows1252[v-0x80]
	case isDisallowedControlOrNoncharacter(v):
		return '�'
	}
	return rune(v)
}

// isDisallowedControlOrNoncharacter reports whether v is one of the other
// disallowed codepoints §4.3 calls out: a C0 control other than tab, LF, or
// FF, the DEL control (0x7F), or a Unicode noncharacter (0xFDD0..0xFDEF, or
// any codepoint whose low 16 bits are 0xFFFE or 0xFFFF).
func isDisallowedControlOrNoncharacter(v int64) bool {
	switch {
	case 0x01 <= v && v <= 0x1f && v != 0x09 && v != 0x0a && v != 0x0c:
		return true
	case v == 0x7f:
		return true
	case 0xfdd0 <= v && v <= 0xfdef:
		return true
	case v&0xfffe == 0xfffe:
		return true
	}
	return false
}

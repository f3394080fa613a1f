package parser

import "strings"

const missing = ""

const (
	w30DTDW3HTMLStrict3En       = "-//W3O//DTD W3 HTML Strict 3.0//EN//"
	w3cDTDHTML4TransitionalEN   = "-/W3C/DTD HTML 4.0 Transitional/EN"
	htmlPublicIDString          = "HTML"
	ibmxhtml                    = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"
	w3cDTDHTML401Frameset       = "-//W3C//DTD HTML 4.01 Frameset//"
	w3cDTDHTML401Transitional   = "-//W3C//DTD HTML 4.01 Transitional//"
	w3cDTDXHTML1Frameset        = "-//W3C//DTD XHTML 1.0 Frameset//"
	w3cDTDXHTML1Transitional    = "-//W3C//DTD XHTML 1.0 Transitional//"
)

// knownPublicIdentifiers is the list of legacy public identifier prefixes
// that force quirks mode, regardless of system identifier.
var knownPublicIdentifiers = []string{
	"+//Silmaril//dtd html Pro v0r11 19970101//",
	"-//AS//DTD HTML 3.0 asWedit + extensions//",
	"-//AdvaSoft Ltd//DTD HTML 3.0 asWedit + extensions//",
	"-//IETF//DTD HTML 2.0 Level 1//",
	"-//IETF//DTD HTML 2.0 Level 2//",
	"-//IETF//DTD HTML 2.0 Strict Level 1//",
	"-//IETF//DTD HTML 2.0 Strict Level 2//",
	"-//IETF//DTD HTML 2.0 Strict//",
	"-//IETF//DTD HTML 2.0//",
	"-//IETF//DTD HTML 2.1E//",
	"-//IETF//DTD HTML 3.0//",
	"-//IETF//DTD HTML 3.2 Final//",
	"-//IETF//DTD HTML 3.2//",
	"-//IETF//DTD HTML 3//",
	"-//IETF//DTD HTML Level 0//",
	"-//IETF//DTD HTML Level 1//",
	"-//IETF//DTD HTML Level 2//",
	"-//IETF//DTD HTML Level 3//",
	"-//IETF//DTD HTML Strict Level 0//",
	"-//IETF//DTD HTML Strict Level 1//",
	"-//IETF//DTD HTML Strict Level 2//",
	"-//IETF//DTD HTML Strict Level 3//",
	"-//IETF//DTD HTML Strict//",
	"-//IETF//DTD HTML//",
	"-//Metrius//DTD Metrius Presentational//",
	"-//Microsoft//DTD Internet Explorer 2.0 HTML Strict//",
	"-//Microsoft//DTD Internet Explorer 2.0 HTML//",
	"-//Microsoft//DTD Internet Explorer 2.0 Tables//",
	"-//Microsoft//DTD Internet Explorer 3.0 HTML Strict//",
	"-//Microsoft//DTD Internet Explorer 3.0 HTML//",
	"-//Microsoft//DTD Internet Explorer 3.0 Tables//",
	"-//Netscape Comm. Corp.//DTD HTML//",
	"-//Netscape Comm. Corp.//DTD Strict HTML//",
	"-//O'Reilly and Associates//DTD HTML 2.0//",
	"-//O'Reilly and Associates//DTD HTML Extended 1.0//",
	"-//O'Reilly and Associates//DTD HTML Extended Relaxed 1.0//",
	"-//SQ//DTD HTML 2.0 HoTMetaL + extensions//",
	"-//SoftQuad Software//DTD HoTMetaL PRO 6.0::19990601::extensions to HTML 4.0//",
	"-//SoftQuad//DTD HoTMetaL PRO 4.0::19971010::extensions to HTML 4.0//",
	"-//Spyglass//DTD HTML 2.0 Extended//",
	"-//Sun Microsystems Corp.//DTD HotJava HTML//",
	"-//Sun Microsystems Corp.//DTD HotJava Strict HTML//",
	"-//W3C//DTD HTML 3 1995-03-24//",
	"-//W3C//DTD HTML 3.2 Draft//",
	"-//W3C//DTD HTML 3.2 Final//",
	"-//W3C//DTD HTML 3.2//",
	"-//W3C//DTD HTML 3.2S Draft//",
	"-//W3C//DTD HTML 4.0 Frameset//",
	"-//W3C//DTD HTML 4.0 Transitional//",
	"-//W3C//DTD HTML Experimental 19960712//",
	"-//W3C//DTD HTML Experimental 970421//",
	w3cDTDXHTML1Frameset,
	w3cDTDXHTML1Transitional,
	"-//W3C//DTD W3 HTML//",
	"-//W3O//DTD W3 HTML 3.0//",
	"-//WebTechs//DTD Mozilla HTML 2.0//",
	"-//WebTechs//DTD Mozilla HTML//",
}

// parseDoctype splits the raw doctype data (everything between "DOCTYPE" and
// the closing '>') into name, public identifier, and system identifier, per
// the "DOCTYPE state" family in §4.2. forceQuirks is set only when the name
// is empty; the identifier-based quirks classification of §4.7 is done by
// isForceQuirks and isLimitedQuirks.
func parseDoctype(raw string) (name, public, system string, forceQuirks bool) {
	s := strings.TrimLeft(raw, " \t\n\f")
	name, rest := readDoctypeName(s)
	name = strings.ToLower(name)
	public, rest, hasPublic := readDoctypeIdentifier(rest, "public")
	system, rest, hasSystem := readDoctypeIdentifier(rest, "system")
	if !hasPublic && !hasSystem {
		public, system = missing, missing
	} else if hasPublic && !hasSystem {
		system = missing
		// A bare PUBLIC identifier followed by a quoted literal with no
		// SYSTEM keyword is itself the system identifier.
		if q, ok := readQuotedLiteral(strings.TrimLeft(rest, " \t\n\f")); ok {
			system = q
		}
	} else if !hasPublic {
		public = missing
	}
	if name == "" {
		forceQuirks = true
	}
	return name, public, system, forceQuirks
}

func readDoctypeName(s string) (name, rest string) {
	i := 0
	for i < len(s) && !isWhitespace(s[i]) {
		i++
	}
	return s[:i], strings.TrimLeft(s[i:], " \t\n\f")
}

// readDoctypeIdentifier consumes a case-insensitive "PUBLIC" or "SYSTEM"
// keyword followed by a single-or-double-quoted literal, if s starts with
// one.
func readDoctypeIdentifier(s, keyword string) (value, rest string, ok bool) {
	if len(s) < len(keyword) || !strings.EqualFold(s[:len(keyword)], keyword) {
		return missing, s, false
	}
	s = strings.TrimLeft(s[len(keyword):], " \t\n\f")
	if len(s) == 0 || (s[0] != '"' && s[0] != '\'') {
		return missing, s, false
	}
	quote := s[0]
	end := strings.IndexByte(s[1:], quote)
	if end < 0 {
		return s[1:], "", true
	}
	return s[1 : 1+end], strings.TrimLeft(s[end+2:], " \t\n\f"), true
}

func readQuotedLiteral(s string) (string, bool) {
	if len(s) == 0 || (s[0] != '"' && s[0] != '\'') {
		return "", false
	}
	quote := s[0]
	end := strings.IndexByte(s[1:], quote)
	if end < 0 {
		return s[1:], true
	}
	return s[1 : 1+end], true
}

// isForceQuirks reports whether the doctype forces quirks mode: forceQuirks
// is set, the name is not "html", or the public/system identifiers match one
// of the legacy DTDs the HTML5 quirks-mode algorithm forces quirks mode for.
func isForceQuirks(name, public, system string, forceQuirks bool) bool {
	if forceQuirks {
		return true
	}
	if name != "html" {
		return true
	}
	switch public {
	case w30DTDW3HTMLStrict3En, w3cDTDHTML4TransitionalEN, htmlPublicIDString:
		return true
	}
	if system == ibmxhtml {
		return true
	}
	for _, v := range knownPublicIdentifiers {
		if strings.HasPrefix(public, v) {
			return true
		}
	}
	if system == missing &&
		(strings.HasPrefix(public, w3cDTDHTML401Frameset) || strings.HasPrefix(public, w3cDTDHTML401Transitional)) {
		return true
	}
	return false
}

// isLimitedQuirks reports whether the identifiers select limited-quirks
// mode (as opposed to full quirks or no-quirks).
func isLimitedQuirks(public, system string) bool {
	if strings.HasPrefix(public, w3cDTDXHTML1Frameset) || strings.HasPrefix(public, w3cDTDXHTML1Transitional) {
		return true
	}
	if system != missing {
		if strings.HasPrefix(public, w3cDTDHTML401Frameset) || strings.HasPrefix(public, w3cDTDHTML401Transitional) {
			return true
		}
	}
	return false
}

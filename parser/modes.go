package parser

import "strings"

// step processes one token under the current insertion mode, per §5.3's
// per-mode rules. Modes that need to "reprocess the token" (e.g. after
// popping back to a different mode) call step again recursively, mirroring
// the spec's own phrasing rather than using a goto-style loop.
func (c *treeConstructor) step(t Token) {
	if t.Type == SelfClosingTagToken {
		t.Type = StartTagToken
		t.SelfClosing = true
	}
	if len(c.stack) > 0 && c.isForeignContent(t) {
		c.stepForeign(t)
		return
	}
	switch c.mode {
	case initialMode:
		c.initialStep(t)
	case beforeHTMLMode:
		c.beforeHTMLStep(t)
	case beforeHeadMode:
		c.beforeHeadStep(t)
	case inHeadMode:
		c.inHeadStep(t)
	case inHeadNoscriptMode:
		c.inHeadNoscriptStep(t)
	case afterHeadMode:
		c.afterHeadStep(t)
	case inBodyMode:
		c.inBodyStep(t)
	case textMode:
		c.textStep(t)
	case inTableMode:
		c.inTableStep(t)
	case inTableTextMode:
		c.inTableTextStep(t)
	case inCaptionMode:
		c.inCaptionStep(t)
	case inColumnGroupMode:
		c.inColumnGroupStep(t)
	case inTableBodyMode:
		c.inTableBodyStep(t)
	case inRowMode:
		c.inRowStep(t)
	case inCellMode:
		c.inCellStep(t)
	case inSelectMode:
		c.inSelectStep(t)
	case inSelectInTableMode:
		c.inSelectInTableStep(t)
	case inTemplateMode:
		c.inTemplateStep(t)
	case afterBodyMode:
		c.afterBodyStep(t)
	case inFramesetMode:
		c.inFramesetStep(t)
	case afterFramesetMode:
		c.afterFramesetStep(t)
	case afterAfterBodyMode:
		c.afterAfterBodyStep(t)
	case afterAfterFramesetMode:
		c.afterAfterFramesetStep(t)
	}
}

func isAllWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isWhitespace(s[i]) {
			return false
		}
	}
	return true
}

func (c *treeConstructor) initialStep(t Token) {
	switch t.Type {
	case TextToken:
		if isAllWhitespace(t.Data) {
			return
		}
	case CommentToken:
		c.doc.AppendChild(&Node{Kind: CommentNode, Data: t.Data})
		return
	case DoctypeToken:
		doctype := &Node{Kind: DoctypeNode, Data: t.Data}
		if t.PublicIdentifier != missing || t.SystemIdentifier != missing {
			doctype.Attr = []Attribute{{Key: "public", Val: t.PublicIdentifier}, {Key: "system", Val: t.SystemIdentifier}}
		}
		c.doc.AppendChild(doctype)
		if isForceQuirks(t.Data, t.PublicIdentifier, t.SystemIdentifier, t.ForceQuirks) {
			c.quirks = quirksFull
		} else if isLimitedQuirks(t.PublicIdentifier, t.SystemIdentifier) {
			c.quirks = quirksLimited
		} else {
			c.quirks = quirksNo
		}
		c.mode = beforeHTMLMode
		return
	}
	c.mode = beforeHTMLMode
	c.step(t)
}

func (c *treeConstructor) beforeHTMLStep(t Token) {
	switch t.Type {
	case DoctypeToken:
		return
	case CommentToken:
		c.doc.AppendChild(&Node{Kind: CommentNode, Data: t.Data})
		return
	case TextToken:
		if isAllWhitespace(t.Data) {
			return
		}
	case StartTagToken:
		if t.Data == "html" {
			n := elementFromToken(t)
			c.doc.AppendChild(n)
			c.push(n)
			c.mode = beforeHeadMode
			return
		}
	case EndTagToken:
		switch t.Data {
		case "head", "body", "html", "br":
		default:
			return
		}
	}
	n := newElement("html")
	c.doc.AppendChild(n)
	c.push(n)
	c.mode = beforeHeadMode
	c.step(t)
}

func (c *treeConstructor) beforeHeadStep(t Token) {
	switch t.Type {
	case TextToken:
		if isAllWhitespace(t.Data) {
			return
		}
	case CommentToken:
		c.insertComment(t.Data)
		return
	case DoctypeToken:
		return
	case StartTagToken:
		switch t.Data {
		case "html":
			c.inBodyStep(t)
			return
		case "head":
			n := c.insertHTMLElement(t)
			c.head = n
			c.mode = inHeadMode
			return
		}
	case EndTagToken:
		switch t.Data {
		case "head", "body", "html", "br":
		default:
			return
		}
	}
	head := elementFromToken(Token{Type: StartTagToken, Data: "head"})
	c.insertNode(head)
	c.push(head)
	c.head = head
	c.mode = inHeadMode
	c.step(t)
}

func (c *treeConstructor) inHeadStep(t Token) {
	switch t.Type {
	case TextToken:
		if isAllWhitespace(t.Data) {
			c.insertText(t.Data)
			return
		}
	case CommentToken:
		c.insertComment(t.Data)
		return
	case DoctypeToken:
		return
	case StartTagToken:
		switch t.Data {
		case "html":
			c.inBodyStep(t)
			return
		case "base", "basefont", "bgsound", "link", "meta":
			c.insertHTMLElement(t)
			c.pop()
			return
		case "title":
			c.parseRCDataElement(t)
			return
		case "noscript":
			if c.scripting {
				c.parseRawTextElement(t)
				return
			}
			c.insertHTMLElement(t)
			c.mode = inHeadNoscriptMode
			return
		case "noframes", "style":
			c.parseRawTextElement(t)
			return
		case "script":
			c.insertHTMLElement(t)
			c.z.ToScriptData()
			c.originalMode = c.mode
			c.mode = textMode
			return
		case "template":
			c.insertHTMLElement(t)
			c.insertMarker()
			c.framesetOK = false
			c.originalMode = c.mode
			c.mode = inTemplateMode
			c.templateModes = append(c.templateModes, inTemplateMode)
			return
		case "head":
			return
		}
	case EndTagToken:
		switch t.Data {
		case "head":
			c.pop()
			c.mode = afterHeadMode
			return
		case "body", "html", "br":
		case "template":
			c.endTemplateTag()
			return
		default:
			return
		}
	}
	c.pop()
	c.mode = afterHeadMode
	c.step(t)
}

func (c *treeConstructor) parseRCDataElement(t Token) {
	c.insertHTMLElement(t)
	c.z.ToRCData(t.Data)
	c.originalMode = c.mode
	c.mode = textMode
}

func (c *treeConstructor) parseRawTextElement(t Token) {
	c.insertHTMLElement(t)
	c.z.ToRawText(t.Data)
	c.originalMode = c.mode
	c.mode = textMode
}

func (c *treeConstructor) inHeadNoscriptStep(t Token) {
	switch t.Type {
	case DoctypeToken:
		return
	case StartTagToken:
		switch t.Data {
		case "html":
			c.inBodyStep(t)
			return
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			c.inHeadStep(t)
			return
		case "head", "noscript":
			return
		}
	case EndTagToken:
		switch t.Data {
		case "noscript":
			c.pop()
			c.mode = inHeadMode
			return
		case "br":
		default:
			return
		}
	case TextToken:
		if isAllWhitespace(t.Data) {
			c.inHeadStep(t)
			return
		}
	case CommentToken:
		c.inHeadStep(t)
		return
	}
	c.pop()
	c.mode = inHeadMode
	c.step(t)
}

func (c *treeConstructor) afterHeadStep(t Token) {
	switch t.Type {
	case TextToken:
		if isAllWhitespace(t.Data) {
			c.insertText(t.Data)
			return
		}
	case CommentToken:
		c.insertComment(t.Data)
		return
	case DoctypeToken:
		return
	case StartTagToken:
		switch t.Data {
		case "html":
			c.inBodyStep(t)
			return
		case "body":
			c.insertHTMLElement(t)
			c.framesetOK = false
			c.mode = inBodyMode
			return
		case "frameset":
			c.insertHTMLElement(t)
			c.mode = inFramesetMode
			return
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			c.push(c.head)
			c.inHeadStep(t)
			c.removeStackNode(c.head)
			return
		case "head":
			return
		}
	case EndTagToken:
		switch t.Data {
		case "template":
			c.inHeadStep(t)
			return
		case "body", "html", "br":
		default:
			return
		}
	}
	body := elementFromToken(Token{Type: StartTagToken, Data: "body"})
	c.insertNode(body)
	c.push(body)
	c.mode = inBodyMode
	c.step(t)
}

const whitespaceBytes = "\t\n\f\r "

func (c *treeConstructor) closePImpliedIfInButtonScope() {
	if c.hasInButtonScope("p") {
		c.closePElement()
	}
}

func (c *treeConstructor) closePElement() {
	c.generateImpliedEndTags("p")
	c.popUntilNode(firstMatching(c.stack, "p"))
}

func firstMatching(stack []*Node, tag string) *Node {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Data == tag && stack[i].Namespace == NamespaceHTML {
			return stack[i]
		}
	}
	return nil
}

var headingTags = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}

func (c *treeConstructor) inBodyStep(t Token) {
	switch t.Type {
	case TextToken:
		c.reconstructActiveFormattingElements()
		c.insertText(t.Data)
		if !isAllWhitespace(t.Data) {
			c.framesetOK = false
		}
		return
	case CommentToken:
		c.insertComment(t.Data)
		return
	case DoctypeToken:
		return
	case StartTagToken:
		c.inBodyStartTag(t)
		return
	case EndTagToken:
		c.inBodyEndTag(t)
		return
	}
}

func (c *treeConstructor) inBodyStartTag(t Token) {
	switch t.Data {
	case "html":
		if top := c.stack[0]; top.Namespace == NamespaceHTML {
			for _, a := range t.Attr {
				if _, ok := attrValue(top, a.Key); !ok {
					top.Attr = append(top.Attr, Attribute{Key: a.Key, Val: a.Val})
				}
			}
		}
		return
	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
		"style", "template", "title":
		c.inHeadStep(t)
		return
	case "body":
		return
	case "frameset":
		return
	case "address", "article", "aside", "blockquote", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
		"footer", "header", "hgroup", "main", "menu", "nav", "ol", "p",
		"section", "summary", "ul":
		c.closePImpliedIfInButtonScope()
		c.insertHTMLElement(t)
		return
	case "h1", "h2", "h3", "h4", "h5", "h6":
		c.closePImpliedIfInButtonScope()
		if headingTags[c.curNode().Data] {
			c.pop()
		}
		c.insertHTMLElement(t)
		return
	case "pre", "listing":
		c.closePImpliedIfInButtonScope()
		c.insertHTMLElement(t)
		c.framesetOK = false
		return
	case "form":
		if c.form != nil && !c.contains("template") {
			return
		}
		c.closePImpliedIfInButtonScope()
		n := c.insertHTMLElement(t)
		if !c.contains("template") {
			c.form = n
		}
		return
	case "li":
		c.framesetOK = false
		for i := len(c.stack) - 1; i >= 0; i-- {
			n := c.stack[i]
			if n.Data == "li" {
				c.generateImpliedEndTags("li")
				c.popUntilNode(n)
				break
			}
			if isSpecial(n) && n.Data != "address" && n.Data != "div" && n.Data != "p" {
				break
			}
		}
		c.closePImpliedIfInButtonScope()
		c.insertHTMLElement(t)
		return
	case "dd", "dt":
		c.framesetOK = false
		for i := len(c.stack) - 1; i >= 0; i-- {
			n := c.stack[i]
			if n.Data == "dd" || n.Data == "dt" {
				c.generateImpliedEndTags(n.Data)
				c.popUntilNode(n)
				break
			}
			if isSpecial(n) && n.Data != "address" && n.Data != "div" && n.Data != "p" {
				break
			}
		}
		c.closePImpliedIfInButtonScope()
		c.insertHTMLElement(t)
		return
	case "plaintext":
		c.closePImpliedIfInButtonScope()
		c.insertHTMLElement(t)
		c.z.ToPlaintext()
		return
	case "button":
		if c.hasInScope("button") {
			c.generateImpliedEndTags("")
			c.popUntil("button")
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		c.framesetOK = false
		return
	case "a":
		if last := c.lastFormattingElementNamed("a"); last != nil {
			c.runAdoptionAgency("a")
			c.removeFromActiveFormatting(last)
			c.removeStackNode(last)
		}
		c.reconstructActiveFormattingElements()
		n := c.insertHTMLElement(t)
		c.pushActiveFormattingElement(n)
		return
	case "b", "big", "code", "em", "font", "i", "s", "small", "strike",
		"strong", "tt", "u":
		c.reconstructActiveFormattingElements()
		n := c.insertHTMLElement(t)
		c.pushActiveFormattingElement(n)
		return
	case "nobr":
		c.reconstructActiveFormattingElements()
		if c.hasInScope("nobr") {
			c.runAdoptionAgency("nobr")
			c.reconstructActiveFormattingElements()
		}
		n := c.insertHTMLElement(t)
		c.pushActiveFormattingElement(n)
		return
	case "applet", "marquee", "object":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		c.insertMarker()
		c.framesetOK = false
		return
	case "table":
		if c.quirks != quirksFull {
			c.closePImpliedIfInButtonScope()
		}
		c.insertHTMLElement(t)
		c.framesetOK = false
		c.mode = inTableMode
		return
	case "area", "br", "embed", "img", "keygen", "wbr":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		c.pop()
		c.framesetOK = false
		return
	case "input":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		c.pop()
		if v, ok := attrValue(c.curNode(), "type"); !ok || !strings.EqualFold(v, "hidden") {
			c.framesetOK = false
		}
		return
	case "param", "source", "track":
		c.insertHTMLElement(t)
		c.pop()
		return
	case "hr":
		c.closePImpliedIfInButtonScope()
		c.insertHTMLElement(t)
		c.pop()
		c.framesetOK = false
		return
	case "image":
		t.Data = "img"
		c.inBodyStartTag(t)
		return
	case "textarea":
		c.insertHTMLElement(t)
		c.z.ToRCData("textarea")
		c.originalMode = c.mode
		c.framesetOK = false
		c.mode = textMode
		return
	case "xmp":
		c.closePImpliedIfInButtonScope()
		c.reconstructActiveFormattingElements()
		c.framesetOK = false
		c.parseRawTextElement(t)
		return
	case "iframe":
		c.framesetOK = false
		c.parseRawTextElement(t)
		return
	case "noembed":
		c.parseRawTextElement(t)
		return
	case "select":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		c.framesetOK = false
		switch c.mode {
		case inTableMode, inCaptionMode, inTableBodyMode, inRowMode, inCellMode:
			c.mode = inSelectInTableMode
		default:
			c.mode = inSelectMode
		}
		return
	case "optgroup", "option":
		if c.curNode().Data == "option" {
			c.pop()
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElement(t)
		return
	case "rb", "rtc":
		if c.hasInScope("ruby") {
			c.generateImpliedEndTags("")
		}
		c.insertHTMLElement(t)
		return
	case "rp", "rt":
		if c.hasInScope("ruby") {
			c.generateImpliedEndTags("rtc")
		}
		c.insertHTMLElement(t)
		return
	case "math":
		c.reconstructActiveFormattingElements()
		n := elementFromToken(t)
		n.Namespace = NamespaceMath
		adjustMathMLAttributes(n)
		adjustForeignAttributes(n)
		c.insertNode(n)
		if !t.selfClosingImplied() {
			c.push(n)
		}
		return
	case "svg":
		c.reconstructActiveFormattingElements()
		n := elementFromToken(t)
		n.Namespace = NamespaceSVG
		adjustSVGTagName(n)
		adjustForeignAttributes(n)
		c.insertNode(n)
		if !t.selfClosingImplied() {
			c.push(n)
		}
		return
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td",
		"tfoot", "th", "thead", "tr":
		return
	}
	c.reconstructActiveFormattingElements()
	c.insertHTMLElement(t)
}

// selfClosingImplied reports whether a start tag token was written with a
// trailing "/>"; foreign-element self-closing tags don't push onto the
// stack of open elements.
func (t Token) selfClosingImplied() bool { return t.SelfClosing }

func (c *treeConstructor) inBodyEndTag(t Token) {
	switch t.Data {
	case "template":
		c.endTemplateTag()
		return
	case "body":
		if !c.hasInScope("body") {
			return
		}
		c.mode = afterBodyMode
		return
	case "html":
		if !c.hasInScope("body") {
			return
		}
		c.mode = afterBodyMode
		c.step(t)
		return
	case "address", "article", "aside", "blockquote", "button", "center",
		"details", "dialog", "dir", "div", "dl", "fieldset", "figcaption",
		"figure", "footer", "header", "hgroup", "listing", "main", "menu",
		"nav", "ol", "pre", "section", "summary", "ul":
		if !c.hasInScope(t.Data) {
			return
		}
		c.generateImpliedEndTags("")
		c.popUntil(t.Data)
		return
	case "form":
		if !c.contains("template") {
			form := c.form
			c.form = nil
			if form == nil || !c.hasInScopeNode(form) {
				return
			}
			c.generateImpliedEndTags("")
			c.removeStackNode(form)
			return
		}
		if !c.hasInScope("form") {
			return
		}
		c.generateImpliedEndTags("")
		c.popUntil("form")
		return
	case "p":
		if !c.hasInButtonScope("p") {
			n := elementFromToken(Token{Type: StartTagToken, Data: "p"})
			c.insertNode(n)
		}
		c.closePElement()
		return
	case "li":
		if !c.hasInListItemScope("li") {
			return
		}
		c.generateImpliedEndTags("li")
		c.popUntil("li")
		return
	case "dd", "dt":
		if !c.hasInScope(t.Data) {
			return
		}
		c.generateImpliedEndTags(t.Data)
		c.popUntil(t.Data)
		return
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !c.hasInScope("h1") && !c.hasInScope("h2") && !c.hasInScope("h3") &&
			!c.hasInScope("h4") && !c.hasInScope("h5") && !c.hasInScope("h6") {
			return
		}
		c.generateImpliedEndTags("")
		c.popUntil("h1", "h2", "h3", "h4", "h5", "h6")
		return
	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small",
		"strike", "strong", "tt", "u":
		c.runAdoptionAgency(t.Data)
		return
	case "applet", "marquee", "object":
		if !c.hasInScope(t.Data) {
			return
		}
		c.generateImpliedEndTags("")
		c.popUntil(t.Data)
		c.clearActiveFormattingToMarker()
		return
	case "br":
		c.reconstructActiveFormattingElements()
		n := elementFromToken(Token{Type: StartTagToken, Data: "br"})
		c.insertNode(n)
		c.framesetOK = false
		return
	default:
		c.runAnyOtherEndTag(t.Data)
	}
}

func (c *treeConstructor) endTemplateTag() {
	if !c.contains("template") {
		return
	}
	c.generateImpliedEndTagsThorough()
	c.popUntil("template")
	c.clearActiveFormattingToMarker()
	if len(c.templateModes) > 0 {
		c.templateModes = c.templateModes[:len(c.templateModes)-1]
	}
	c.resetInsertionMode()
}

func (c *treeConstructor) textStep(t Token) {
	switch t.Type {
	case TextToken:
		c.insertText(t.Data)
		return
	case ErrorToken:
		c.pop()
		c.mode = c.originalMode
		c.step(t)
		return
	case EndTagToken:
		if t.Data == "script" {
			c.pop()
			c.mode = c.originalMode
			return
		}
		c.pop()
		c.mode = c.originalMode
		return
	}
}

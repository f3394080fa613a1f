package parser

// This file covers the "in table" family of insertion modes (§5.3): table,
// table text, caption, column group, table body, row, cell, and the select
// modes nested inside a table, plus "in template", "after body", and the
// frameset family that round out the 23 modes.

func (c *treeConstructor) inTableStep(t Token) {
	switch t.Type {
	case TextToken:
		switch c.curNode().Data {
		case "table", "tbody", "tfoot", "thead", "tr":
			c.pendingTableText = nil
			c.originalMode = c.mode
			c.mode = inTableTextMode
			c.step(t)
			return
		}
	case CommentToken:
		c.insertComment(t.Data)
		return
	case DoctypeToken:
		return
	case StartTagToken:
		switch t.Data {
		case "caption":
			c.clearStackBackToTable()
			c.insertMarker()
			c.insertHTMLElement(t)
			c.mode = inCaptionMode
			return
		case "colgroup":
			c.clearStackBackToTable()
			c.insertHTMLElement(t)
			c.mode = inColumnGroupMode
			return
		case "col":
			c.clearStackBackToTable()
			n := elementFromToken(Token{Type: StartTagToken, Data: "colgroup"})
			c.insertNode(n)
			c.push(n)
			c.mode = inColumnGroupMode
			c.step(t)
			return
		case "tbody", "tfoot", "thead":
			c.clearStackBackToTable()
			c.insertHTMLElement(t)
			c.mode = inTableBodyMode
			return
		case "td", "th", "tr":
			c.clearStackBackToTable()
			n := elementFromToken(Token{Type: StartTagToken, Data: "tbody"})
			c.insertNode(n)
			c.push(n)
			c.mode = inTableBodyMode
			c.step(t)
			return
		case "table":
			if !c.hasInTableScope("table") {
				return
			}
			c.popUntil("table")
			c.resetInsertionMode()
			c.step(t)
			return
		case "style", "script", "template":
			c.inHeadStep(t)
			return
		case "input":
			if v, ok := tokenAttr(t, "type"); ok && equalFold(v, "hidden") {
				c.insertHTMLElement(t)
				c.pop()
				return
			}
		case "form":
			if c.form == nil && !c.contains("template") {
				n := c.insertHTMLElement(t)
				c.form = n
				c.pop()
				return
			}
			return
		}
	case EndTagToken:
		switch t.Data {
		case "table":
			if !c.hasInTableScope("table") {
				return
			}
			c.popUntil("table")
			c.resetInsertionMode()
			return
		case "body", "caption", "col", "colgroup", "html", "tbody", "td",
			"tfoot", "th", "thead", "tr":
			return
		case "template":
			c.inHeadStep(t)
			return
		}
	}
	c.fosterParenting = true
	c.inBodyStep(t)
	c.fosterParenting = false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func tokenAttr(t Token, key string) (string, bool) {
	for _, a := range t.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (c *treeConstructor) clearStackBackToTable() {
	for len(c.stack) > 0 {
		switch c.top().Data {
		case "table", "template", "html":
			return
		}
		c.pop()
	}
}

func (c *treeConstructor) clearStackBackToTableBody() {
	for len(c.stack) > 0 {
		switch c.top().Data {
		case "tbody", "tfoot", "thead", "template", "html":
			return
		}
		c.pop()
	}
}

func (c *treeConstructor) clearStackBackToTableRow() {
	for len(c.stack) > 0 {
		switch c.top().Data {
		case "tr", "template", "html":
			return
		}
		c.pop()
	}
}

func (c *treeConstructor) inTableTextStep(t Token) {
	if t.Type == TextToken {
		c.pendingTableText = append(c.pendingTableText, t)
		return
	}
	allWhitespace := true
	for _, pt := range c.pendingTableText {
		if !isAllWhitespace(pt.Data) {
			allWhitespace = false
			break
		}
	}
	if allWhitespace {
		for _, pt := range c.pendingTableText {
			c.insertText(pt.Data)
		}
	} else {
		c.fosterParenting = true
		for _, pt := range c.pendingTableText {
			c.inBodyStep(pt)
		}
		c.fosterParenting = false
	}
	c.pendingTableText = nil
	c.mode = c.originalMode
	c.step(t)
}

func (c *treeConstructor) inCaptionStep(t Token) {
	switch t.Type {
	case StartTagToken:
		switch t.Data {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th",
			"thead", "tr":
			if !c.hasInTableScope("caption") {
				return
			}
			c.popUntil("caption")
			c.clearActiveFormattingToMarker()
			c.mode = inTableMode
			c.step(t)
			return
		}
	case EndTagToken:
		switch t.Data {
		case "caption":
			if !c.hasInTableScope("caption") {
				return
			}
			c.generateImpliedEndTags("")
			c.popUntil("caption")
			c.clearActiveFormattingToMarker()
			c.mode = inTableMode
			return
		case "table":
			if !c.hasInTableScope("caption") {
				return
			}
			c.popUntil("caption")
			c.clearActiveFormattingToMarker()
			c.mode = inTableMode
			c.step(t)
			return
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot",
			"th", "thead", "tr":
			return
		}
	}
	c.inBodyStep(t)
}

func (c *treeConstructor) inColumnGroupStep(t Token) {
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
		case "col":
			c.insertHTMLElement(t)
			c.pop()
			return
		case "template":
			c.inHeadStep(t)
			return
		}
	case EndTagToken:
		switch t.Data {
		case "colgroup":
			if c.curNode().Data != "colgroup" {
				return
			}
			c.pop()
			c.mode = inTableMode
			return
		case "col":
			return
		case "template":
			c.inHeadStep(t)
			return
		}
	}
	if c.curNode().Data != "colgroup" {
		return
	}
	c.pop()
	c.mode = inTableMode
	c.step(t)
}

func (c *treeConstructor) inTableBodyStep(t Token) {
	switch t.Type {
	case StartTagToken:
		switch t.Data {
		case "tr":
			c.clearStackBackToTableBody()
			c.insertHTMLElement(t)
			c.mode = inRowMode
			return
		case "th", "td":
			c.clearStackBackToTableBody()
			n := elementFromToken(Token{Type: StartTagToken, Data: "tr"})
			c.insertNode(n)
			c.push(n)
			c.mode = inRowMode
			c.step(t)
			return
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !c.hasInTableScope("tbody") && !c.hasInTableScope("thead") && !c.hasInTableScope("tfoot") {
				return
			}
			c.clearStackBackToTableBody()
			c.pop()
			c.mode = inTableMode
			c.step(t)
			return
		}
	case EndTagToken:
		switch t.Data {
		case "tbody", "tfoot", "thead":
			if !c.hasInTableScope(t.Data) {
				return
			}
			c.clearStackBackToTableBody()
			c.pop()
			c.mode = inTableMode
			return
		case "table":
			if !c.hasInTableScope("tbody") && !c.hasInTableScope("thead") && !c.hasInTableScope("tfoot") {
				return
			}
			c.clearStackBackToTableBody()
			c.pop()
			c.mode = inTableMode
			c.step(t)
			return
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			return
		}
	}
	c.inTableStep(t)
}

func (c *treeConstructor) inRowStep(t Token) {
	switch t.Type {
	case StartTagToken:
		switch t.Data {
		case "th", "td":
			c.clearStackBackToTableRow()
			c.insertHTMLElement(t)
			c.mode = inCellMode
			c.insertMarker()
			return
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !c.hasInTableScope("tr") {
				return
			}
			c.clearStackBackToTableRow()
			c.pop()
			c.mode = inTableBodyMode
			c.step(t)
			return
		}
	case EndTagToken:
		switch t.Data {
		case "tr":
			if !c.hasInTableScope("tr") {
				return
			}
			c.clearStackBackToTableRow()
			c.pop()
			c.mode = inTableBodyMode
			return
		case "table":
			if !c.hasInTableScope("tr") {
				return
			}
			c.clearStackBackToTableRow()
			c.pop()
			c.mode = inTableBodyMode
			c.step(t)
			return
		case "tbody", "tfoot", "thead":
			if !c.hasInTableScope(t.Data) || !c.hasInTableScope("tr") {
				return
			}
			c.clearStackBackToTableRow()
			c.pop()
			c.mode = inTableBodyMode
			c.step(t)
			return
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			return
		}
	}
	c.inTableStep(t)
}

func (c *treeConstructor) inCellStep(t Token) {
	switch t.Type {
	case StartTagToken:
		switch t.Data {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th",
			"thead", "tr":
			if !c.hasInTableScope("td") && !c.hasInTableScope("th") {
				return
			}
			c.closeCell()
			c.step(t)
			return
		}
	case EndTagToken:
		switch t.Data {
		case "td", "th":
			if !c.hasInTableScope(t.Data) {
				return
			}
			c.generateImpliedEndTags("")
			c.popUntil(t.Data)
			c.clearActiveFormattingToMarker()
			c.mode = inRowMode
			return
		case "body", "caption", "col", "colgroup", "html":
			return
		case "table", "tbody", "tfoot", "thead", "tr":
			if !c.hasInTableScope(t.Data) {
				return
			}
			c.closeCell()
			c.step(t)
			return
		}
	}
	c.inBodyStep(t)
}

func (c *treeConstructor) closeCell() {
	c.generateImpliedEndTags("")
	if n := firstMatching(c.stack, "td"); n != nil {
		c.popUntilNode(n)
	} else if n := firstMatching(c.stack, "th"); n != nil {
		c.popUntilNode(n)
	}
	c.clearActiveFormattingToMarker()
	c.mode = inRowMode
}

func (c *treeConstructor) inSelectStep(t Token) {
	switch t.Type {
	case TextToken:
		c.insertText(t.Data)
		return
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
		case "option":
			if c.curNode().Data == "option" {
				c.pop()
			}
			c.insertHTMLElement(t)
			return
		case "optgroup":
			if c.curNode().Data == "option" {
				c.pop()
			}
			if c.curNode().Data == "optgroup" {
				c.pop()
			}
			c.insertHTMLElement(t)
			return
		case "select":
			if !c.hasInSelectScope("select") {
				return
			}
			c.popUntil("select")
			c.resetInsertionMode()
			return
		case "input", "keygen", "textarea":
			if !c.hasInSelectScope("select") {
				return
			}
			c.popUntil("select")
			c.resetInsertionMode()
			c.step(t)
			return
		case "script", "template":
			c.inHeadStep(t)
			return
		}
	case EndTagToken:
		switch t.Data {
		case "optgroup":
			if c.curNode().Data == "option" && len(c.stack) >= 2 && c.stack[len(c.stack)-2].Data == "optgroup" {
				c.pop()
			}
			if c.curNode().Data == "optgroup" {
				c.pop()
			}
			return
		case "option":
			if c.curNode().Data == "option" {
				c.pop()
			}
			return
		case "select":
			if !c.hasInSelectScope("select") {
				return
			}
			c.popUntil("select")
			c.resetInsertionMode()
			return
		case "template":
			c.inHeadStep(t)
			return
		}
	}
}

func (c *treeConstructor) inSelectInTableStep(t Token) {
	switch t.Type {
	case StartTagToken:
		switch t.Data {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			c.popUntil("select")
			c.resetInsertionMode()
			c.step(t)
			return
		}
	case EndTagToken:
		switch t.Data {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			if !c.hasInTableScope(t.Data) {
				return
			}
			c.popUntil("select")
			c.resetInsertionMode()
			c.step(t)
			return
		}
	}
	c.inSelectStep(t)
}

func (c *treeConstructor) inTemplateStep(t Token) {
	switch t.Type {
	case TextToken, CommentToken, DoctypeToken:
		c.inBodyStep(t)
		return
	case StartTagToken:
		switch t.Data {
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			c.inHeadStep(t)
			return
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			c.templateModes[len(c.templateModes)-1] = inTableMode
			c.mode = inTableMode
			c.step(t)
			return
		case "col":
			c.templateModes[len(c.templateModes)-1] = inColumnGroupMode
			c.mode = inColumnGroupMode
			c.step(t)
			return
		case "tr":
			c.templateModes[len(c.templateModes)-1] = inTableBodyMode
			c.mode = inTableBodyMode
			c.step(t)
			return
		case "td", "th":
			c.templateModes[len(c.templateModes)-1] = inRowMode
			c.mode = inRowMode
			c.step(t)
			return
		}
		c.templateModes[len(c.templateModes)-1] = inBodyMode
		c.mode = inBodyMode
		c.step(t)
		return
	case EndTagToken:
		if t.Data == "template" {
			c.endTemplateTag()
			return
		}
		return
	}
}

func (c *treeConstructor) afterBodyStep(t Token) {
	switch t.Type {
	case TextToken:
		if isAllWhitespace(t.Data) {
			c.inBodyStep(t)
			return
		}
	case CommentToken:
		c.stack[0].AppendChild(&Node{Kind: CommentNode, Data: t.Data})
		return
	case DoctypeToken:
		return
	case StartTagToken:
		if t.Data == "html" {
			c.inBodyStep(t)
			return
		}
	case EndTagToken:
		if t.Data == "html" {
			c.mode = afterAfterBodyMode
			return
		}
	}
	c.mode = inBodyMode
	c.step(t)
}

func (c *treeConstructor) inFramesetStep(t Token) {
	switch t.Type {
	case TextToken:
		if isAllWhitespace(t.Data) {
			c.insertText(t.Data)
		}
		return
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
		case "frameset":
			c.insertHTMLElement(t)
			return
		case "frame":
			c.insertHTMLElement(t)
			c.pop()
			return
		case "noframes":
			c.inHeadStep(t)
			return
		}
	case EndTagToken:
		if t.Data == "frameset" {
			if len(c.stack) == 1 {
				return
			}
			c.pop()
			if c.curNode().Data != "frameset" {
				c.mode = afterFramesetMode
			}
			return
		}
	}
}

func (c *treeConstructor) afterFramesetStep(t Token) {
	switch t.Type {
	case TextToken:
		if isAllWhitespace(t.Data) {
			c.insertText(t.Data)
		}
		return
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
		case "noframes":
			c.inHeadStep(t)
			return
		}
	case EndTagToken:
		if t.Data == "html" {
			c.mode = afterAfterFramesetMode
			return
		}
	}
}

func (c *treeConstructor) afterAfterBodyStep(t Token) {
	switch t.Type {
	case CommentToken:
		c.doc.AppendChild(&Node{Kind: CommentNode, Data: t.Data})
		return
	case DoctypeToken:
		c.inBodyStep(t)
		return
	case TextToken:
		if isAllWhitespace(t.Data) {
			c.inBodyStep(t)
			return
		}
	case StartTagToken:
		if t.Data == "html" {
			c.inBodyStep(t)
			return
		}
	}
	c.mode = inBodyMode
	c.step(t)
}

func (c *treeConstructor) afterAfterFramesetStep(t Token) {
	switch t.Type {
	case CommentToken:
		c.doc.AppendChild(&Node{Kind: CommentNode, Data: t.Data})
		return
	case DoctypeToken:
		c.inBodyStep(t)
		return
	case TextToken:
		if isAllWhitespace(t.Data) {
			c.inBodyStep(t)
			return
		}
	case StartTagToken:
		switch t.Data {
		case "html":
			c.inBodyStep(t)
			return
		case "noframes":
			c.inHeadStep(t)
			return
		}
	}
}

package parser

import (
	"github.com/naqvis/crystal-html5/atom"
)

// treeConstructor implements the tree construction stage of §5: it consumes
// tokens from a Tokenizer one at a time and builds a Node tree, switching
// the tokenizer's raw-text/RCDATA/script-data/plaintext sub-mode and its own
// insertion mode as it goes. There are no goroutines here; Parse drives the
// loop directly by calling z.Next in a for loop.
type treeConstructor struct {
	doc   *Node
	stack []*Node // the stack of open elements, bottom (html) at index 0.
	afe   []*Node // active formatting elements; a nil entry is a scope marker.

	head, form, context *Node

	mode, originalMode insertionMode
	framesetOK         bool
	scripting          bool
	fragment           bool
	quirks             string

	z   *Tokenizer
	tok Token

	pendingTableText []Token
	fosterParenting  bool
	templateModes    []insertionMode
}

const (
	quirksFull    = "quirks"
	quirksLimited = "limited-quirks"
	quirksNo      = "no-quirks"
)

func newTreeConstructor(z *Tokenizer) *treeConstructor {
	return &treeConstructor{
		doc:        &Node{Kind: DocumentNode},
		z:          z,
		framesetOK: true,
		quirks:     quirksNo,
	}
}

func (c *treeConstructor) top() *Node { return c.stack[len(c.stack)-1] }

func (c *treeConstructor) push(n *Node) { c.stack = append(c.stack, n) }

func (c *treeConstructor) pop() *Node {
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return n
}

func (c *treeConstructor) popUntil(tags ...string) {
	for len(c.stack) > 0 {
		n := c.pop()
		for _, t := range tags {
			if n.Data == t && n.Namespace == NamespaceHTML {
				return
			}
		}
	}
}

func (c *treeConstructor) indexOfTag(tag string) int {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].Data == tag && c.stack[i].Namespace == NamespaceHTML {
			return i
		}
	}
	return -1
}

func (c *treeConstructor) contains(tag string) bool { return c.indexOfTag(tag) >= 0 }

// curNode is the "current node": the most recently pushed node, at the top
// of c.stack (its last index).
func (c *treeConstructor) curNode() *Node { return c.top() }

func newElement(tagName string) *Node {
	return &Node{Kind: ElementNode, Data: tagName, Atom: atom.String(tagName), Namespace: NamespaceHTML}
}

func elementFromToken(t Token) *Node {
	return &Node{Kind: ElementNode, Data: t.Data, Atom: t.DataAtom, Namespace: NamespaceHTML, Attr: attrsFromToken(t)}
}

func attrsFromToken(t Token) []Attribute {
	if len(t.Attr) == 0 {
		return nil
	}
	out := make([]Attribute, len(t.Attr))
	for i, a := range t.Attr {
		out[i] = Attribute{Key: a.Key, Val: a.Val}
	}
	return out
}

func attrValue(n *Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// insertHTMLElement creates an element for t, appends it under the
// appropriate insertion location, and pushes it onto the stack of open
// elements, per "insert an HTML element" in §5.2.
func (c *treeConstructor) insertHTMLElement(t Token) *Node {
	n := elementFromToken(t)
	c.insertNode(n)
	c.push(n)
	return n
}

// insertNode appends n at the appropriate place for inserting a node,
// honoring foster parenting when table text/elements would otherwise land
// as direct children of a table (§5.2 "appropriate place for inserting a
// node").
func (c *treeConstructor) insertNode(n *Node) {
	if c.fosterParenting && isFosterParentingTarget(c.curNode()) {
		c.fosterParent(n)
		return
	}
	c.curNode().AppendChild(n)
}

func isFosterParentingTarget(n *Node) bool {
	if n.Namespace != NamespaceHTML {
		return false
	}
	switch n.Data {
	case "table", "tbody", "tfoot", "thead", "tr":
		return true
	}
	return false
}

// fosterParent appends n to the last template on the stack if that template
// is above the last table; otherwise it inserts n immediately before the
// last table in the table's parent, or, if the table has no parent, appends
// it to the element below the table on the stack. With no table on the
// stack, n is appended to the html element at c.stack[0]; see §5.2.
func (c *treeConstructor) fosterParent(n *Node) {
	var table, template *Node
	var tableIdx, templateIdx = -1, -1
	for i, e := range c.stack {
		if e.Data == "table" && e.Namespace == NamespaceHTML {
			table, tableIdx = e, i
		}
		if e.Data == "template" && e.Namespace == NamespaceHTML {
			template, templateIdx = e, i
		}
	}
	if template != nil && (table == nil || templateIdx > tableIdx) {
		template.AppendChild(n)
		return
	}
	if table == nil {
		c.stack[0].AppendChild(n)
		return
	}
	if table.Parent != nil {
		table.Parent.InsertBefore(n, table)
		return
	}
	// table has no parent (it is itself the document root of a detached
	// fragment being built): fall back to appending under the prior
	// stack element, matching the reference algorithm's final case.
	c.stack[tableIdx-1].AppendChild(n)
}

func (c *treeConstructor) insertText(data string) {
	loc := c.curNode()
	if c.fosterParenting && isFosterParentingTarget(loc) {
		if last := lastChildOfFosterTarget(c, loc); last != nil && last.Kind == TextNode {
			last.Data += data
			return
		}
		c.fosterParent(&Node{Kind: TextNode, Data: data})
		return
	}
	if last := loc.LastChild; last != nil && last.Kind == TextNode {
		last.Data += data
		return
	}
	loc.AppendChild(&Node{Kind: TextNode, Data: data})
}

func lastChildOfFosterTarget(c *treeConstructor, loc *Node) *Node {
	var table *Node
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].Data == "table" && c.stack[i].Namespace == NamespaceHTML {
			table = c.stack[i]
			break
		}
	}
	if table == nil || table.Parent == nil {
		return nil
	}
	return table.PrevSibling
}

func (c *treeConstructor) insertComment(data string) {
	c.insertNode(&Node{Kind: CommentNode, Data: data})
}

// reconstructActiveFormattingElements re-opens formatting elements (b, i,
// etc.) that were implicitly closed by an intervening block element, per
// §5.2. Called before inserting text or most start tags in the "in body"
// family of insertion modes.
func (c *treeConstructor) reconstructActiveFormattingElements() {
	if len(c.afe) == 0 {
		return
	}
	last := c.afe[len(c.afe)-1]
	if last == nil || c.onStack(last) {
		return
	}
	i := len(c.afe) - 1
	for i > 0 {
		i--
		if c.afe[i] == nil || c.onStack(c.afe[i]) {
			i++
			break
		}
	}
	for ; i < len(c.afe); i++ {
		entry := c.afe[i]
		clone := entry.CloneNode()
		c.insertNode(clone)
		c.push(clone)
		c.afe[i] = clone
	}
}

func (c *treeConstructor) onStack(n *Node) bool {
	for _, e := range c.stack {
		if e == n {
			return true
		}
	}
	return false
}

// pushActiveFormattingElement appends n to the list of active formatting
// elements, applying the Noah's Ark clause: if three elements with the same
// tag, namespace, and attributes already appear since the last marker, the
// earliest of them is removed.
func (c *treeConstructor) pushActiveFormattingElement(n *Node) {
	matches := 0
	matchIdx := -1
	for i := len(c.afe) - 1; i >= 0; i-- {
		e := c.afe[i]
		if e == nil {
			break
		}
		if sameTagAndAttrs(e, n) {
			matches++
			matchIdx = i
		}
	}
	if matches >= 3 {
		c.afe = append(c.afe[:matchIdx], c.afe[matchIdx+1:]...)
	}
	c.afe = append(c.afe, n)
}

func sameTagAndAttrs(a, b *Node) bool {
	if a.Data != b.Data || a.Namespace != b.Namespace || len(a.Attr) != len(b.Attr) {
		return false
	}
	for _, x := range a.Attr {
		v, ok := attrValue(b, x.Key)
		if !ok || v != x.Val {
			return false
		}
	}
	return true
}

func (c *treeConstructor) insertMarker() { c.afe = append(c.afe, nil) }

func (c *treeConstructor) clearActiveFormattingToMarker() {
	for len(c.afe) > 0 {
		n := c.afe[len(c.afe)-1]
		c.afe = c.afe[:len(c.afe)-1]
		if n == nil {
			return
		}
	}
}

func (c *treeConstructor) removeFromActiveFormatting(n *Node) {
	for i, e := range c.afe {
		if e == n {
			c.afe = append(c.afe[:i], c.afe[i+1:]...)
			return
		}
	}
}

// generateImpliedEndTags pops elements in impliedEndTags, optionally
// excluding a tag name (the tag about to be matched), per §5.2.
func (c *treeConstructor) generateImpliedEndTags(exclude string) {
	for len(c.stack) > 0 {
		n := c.top()
		if n.Data == exclude || !impliedEndTags[n.Data] {
			return
		}
		c.pop()
	}
}

func (c *treeConstructor) generateImpliedEndTagsThorough() {
	for len(c.stack) > 0 {
		n := c.top()
		if !impliedEndTagsThorough[n.Data] {
			return
		}
		c.pop()
	}
}

// resetInsertionMode implements "reset the insertion mode appropriately",
// used after popping a template or after fragment-parsing context setup.
func (c *treeConstructor) resetInsertionMode() {
	for i := len(c.stack) - 1; i >= 0; i-- {
		n := c.stack[i]
		last := i == 0
		if last && c.fragment {
			n = c.context
		}
		switch n.Data {
		case "select":
			for j := i; j > 0; j-- {
				anc := c.stack[j-1]
				if anc.Data == "template" {
					break
				}
				if anc.Data == "table" {
					c.mode = inSelectInTableMode
					return
				}
			}
			c.mode = inSelectMode
			return
		case "td", "th":
			if !last {
				c.mode = inCellMode
				return
			}
		case "tr":
			c.mode = inRowMode
			return
		case "tbody", "thead", "tfoot":
			c.mode = inTableBodyMode
			return
		case "caption":
			c.mode = inCaptionMode
			return
		case "colgroup":
			c.mode = inColumnGroupMode
			return
		case "table":
			c.mode = inTableMode
			return
		case "template":
			c.mode = inTemplateMode
			return
		case "head":
			if !last {
				c.mode = inHeadMode
				return
			}
		case "body":
			c.mode = inBodyMode
			return
		case "frameset":
			c.mode = inFramesetMode
			return
		case "html":
			if c.head == nil {
				c.mode = beforeHeadMode
			} else {
				c.mode = afterHeadMode
			}
			return
		}
		if last {
			c.mode = inBodyMode
			return
		}
	}
}

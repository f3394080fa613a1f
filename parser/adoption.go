package parser

// runAdoptionAgency implements the adoption agency algorithm of §5.2, called
// from the "in body" end-tag handling for formatting element end tags (a,
// b, big, code, em, font, i, nobr, s, small, strike, strong, tt, u). tag is
// the end tag's name.
func (c *treeConstructor) runAdoptionAgency(tag string) {
	for outer := 0; outer < 8; outer++ {
		formattingElement := c.lastFormattingElementNamed(tag)
		if formattingElement == nil {
			c.runAnyOtherEndTag(tag)
			return
		}
		feIdx := indexOf(c.stack, formattingElement)
		if feIdx == -1 {
			c.removeFromActiveFormatting(formattingElement)
			return
		}
		if !c.hasInScopeNode(formattingElement) {
			return
		}
		if formattingElement != c.curNode() {
			// Parse error; algorithm proceeds regardless.
		}

		furthestBlock, _ := c.furthestBlockAbove(feIdx)
		if furthestBlock == nil {
			c.popUntilNode(formattingElement)
			c.removeFromActiveFormatting(formattingElement)
			return
		}

		commonAncestor := c.stack[feIdx-1]
		bookmark := indexOfAFE(c.afe, formattingElement)

		node := furthestBlock
		lastNode := furthestBlock
		// Unbounded per §5.2/13.2.6.4.7: the inner loop only terminates when
		// node reaches formattingElement. Past the third iteration, a node
		// that is still in the active formatting elements list is dropped
		// from that list and then, like any node not in that list, removed
		// from the stack instead of being cloned and reparented, per the
		// "inner loop counter greater than three" special case.
		for innerLoop := 1; ; innerLoop++ {
			idx := indexOf(c.stack, node)
			if idx <= 0 {
				break
			}
			node = c.stack[idx-1]
			if node == formattingElement {
				break
			}
			afeIdx := indexOfAFE(c.afe, node)
			if innerLoop > 3 && afeIdx != -1 {
				if afeIdx < bookmark {
					bookmark--
				}
				c.removeFromActiveFormatting(node)
				afeIdx = -1
			}
			if afeIdx == -1 {
				// Continue from the element that was below node, so the
				// next iteration walks on to the element above it.
				i := indexOf(c.stack, node)
				c.removeStackAt(i)
				node = c.stack[i]
				continue
			}
			clone := node.CloneNode()
			c.afe[afeIdx] = clone
			c.stack[indexOf(c.stack, node)] = clone
			node = clone
			if lastNode == furthestBlock {
				bookmark = afeIdx + 1
			}
			if lastNode.Parent != nil {
				lastNode.Parent.RemoveChild(lastNode)
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		if lastNode.Parent != nil {
			lastNode.Parent.RemoveChild(lastNode)
		}
		if isFosterParentingTarget(commonAncestor) && c.fosterParenting {
			c.fosterParent(lastNode)
		} else {
			commonAncestor.AppendChild(lastNode)
		}

		clone := formattingElement.CloneNode()
		clone.Attr = append([]Attribute(nil), formattingElement.Attr...)
		reparentChildren(clone, furthestBlock)
		furthestBlock.AppendChild(clone)

		c.removeFromActiveFormatting(formattingElement)
		if bookmark > len(c.afe) {
			bookmark = len(c.afe)
		}
		c.afe = append(c.afe[:bookmark], append([]*Node{clone}, c.afe[bookmark:]...)...)

		c.removeStackNode(formattingElement)
		if idx := indexOf(c.stack, furthestBlock); idx != -1 {
			c.stack = append(c.stack[:idx+1], append([]*Node{clone}, c.stack[idx+1:]...)...)
		}
	}
}

func (c *treeConstructor) lastFormattingElementNamed(tag string) *Node {
	for i := len(c.afe) - 1; i >= 0; i-- {
		if c.afe[i] == nil {
			return nil
		}
		if c.afe[i].Data == tag {
			return c.afe[i]
		}
	}
	return nil
}

func indexOfAFE(afe []*Node, target *Node) int {
	for i, n := range afe {
		if n == target {
			return i
		}
	}
	return -1
}

func (c *treeConstructor) hasInScopeNode(target *Node) bool {
	return c.hasElementNodeInSpecificScope(target, defaultScopeBoundary)
}

// furthestBlockAbove finds the topmost special element above (exclusive of)
// the formatting element at feIdx on the stack of open elements.
func (c *treeConstructor) furthestBlockAbove(feIdx int) (*Node, int) {
	for i := feIdx + 1; i < len(c.stack); i++ {
		if isSpecial(c.stack[i]) {
			return c.stack[i], i
		}
	}
	return nil, -1
}

func (c *treeConstructor) popUntilNode(n *Node) {
	for len(c.stack) > 0 {
		top := c.pop()
		if top == n {
			return
		}
	}
}

func (c *treeConstructor) removeStackNode(n *Node) {
	if i := indexOf(c.stack, n); i != -1 {
		c.removeStackAt(i)
	}
}

func (c *treeConstructor) removeStackAt(i int) {
	c.stack = append(c.stack[:i], c.stack[i+1:]...)
}

// runAnyOtherEndTag is the "any other end tag" in-body fallback, also used
// by the adoption agency when no formatting element is found.
func (c *treeConstructor) runAnyOtherEndTag(tag string) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		n := c.stack[i]
		if n.Data == tag && n.Namespace == NamespaceHTML {
			c.generateImpliedEndTags(tag)
			c.popUntilNode(n)
			return
		}
		if isSpecial(n) {
			return
		}
	}
}

package parser

// Scope checks walk the stack of open elements from the top down, stopping
// the moment target is found (scope contains it) or a boundary element from
// the relevant list is found first (scope does not contain it). The five
// variants differ only in which elements act as boundaries; see §4.4.

var defaultScopeBoundary = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true,
	"td": true, "th": true, "marquee": true, "object": true, "template": true,
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true,
	"annotation-xml": true, "foreignObject": true, "desc": true, "title": true,
}

var listItemScopeBoundary = unionBoundary(defaultScopeBoundary, map[string]bool{"ol": true, "ul": true})

var buttonScopeBoundary = unionBoundary(defaultScopeBoundary, map[string]bool{"button": true})

var tableScopeBoundary = map[string]bool{"html": true, "table": true, "template": true}

var selectScopeBoundary = map[string]bool{} // select scope uses an exclusion list, not a boundary list; see hasInSelectScope.

func unionBoundary(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func (c *treeConstructor) hasElementInSpecificScope(tag string, boundary map[string]bool) bool {
	for i := len(c.stack) - 1; i >= 0; i-- {
		n := c.stack[i]
		if n.Namespace == NamespaceHTML && n.Data == tag {
			return true
		}
		if boundary[n.Data] {
			return false
		}
	}
	return false
}

func (c *treeConstructor) hasElementNodeInSpecificScope(target *Node, boundary map[string]bool) bool {
	for i := len(c.stack) - 1; i >= 0; i-- {
		n := c.stack[i]
		if n == target {
			return true
		}
		if boundary[n.Data] {
			return false
		}
	}
	return false
}

func (c *treeConstructor) hasInScope(tag string) bool       { return c.hasElementInSpecificScope(tag, defaultScopeBoundary) }
func (c *treeConstructor) hasInListItemScope(tag string) bool { return c.hasElementInSpecificScope(tag, listItemScopeBoundary) }
func (c *treeConstructor) hasInButtonScope(tag string) bool { return c.hasElementInSpecificScope(tag, buttonScopeBoundary) }
func (c *treeConstructor) hasInTableScope(tag string) bool  { return c.hasElementInSpecificScope(tag, tableScopeBoundary) }

// hasInSelectScope implements the select-scope variant, which (unusually)
// treats every HTML element except "optgroup" and "option" as a boundary;
// non-HTML elements are skipped.
func (c *treeConstructor) hasInSelectScope(tag string) bool {
	for i := len(c.stack) - 1; i >= 0; i-- {
		n := c.stack[i]
		if n.Namespace != NamespaceHTML {
			continue
		}
		if n.Data == tag {
			return true
		}
		if n.Data != "optgroup" && n.Data != "option" {
			return false
		}
	}
	return false
}

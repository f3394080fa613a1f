package parser

import (
	"fmt"

	"github.com/naqvis/crystal-html5/atom"
)

// NodeKind identifies the kind of tree Node.
type NodeKind uint32

const (
	ErrorNode NodeKind = iota
	TextNode
	DocumentNode
	ElementNode
	CommentNode
	DoctypeNode
	RawNode
	ScopeMarkerNode
)

// Section 4.5: foreign-content namespaces an Element's attributes and tag
// name may be adjusted into.
const (
	NamespaceHTML  = ""
	NamespaceMath  = "math"
	NamespaceSVG   = "svg"
	NamespaceXlink = "xlink"
	NamespaceXML   = "xml"
	NamespaceXMLNS = "xmlns"
)

// Attribute is a (namespace, key, value) triple. Namespace is non-empty only
// for foreign attributes adjusted during foreign-content insertion (xlink:,
// xml:, xmlns:). Key is lowercased on ingestion; Val is fully unescaped.
type Attribute struct {
	Namespace string
	Key       string
	Val       string
}

// Node is a tree node. It implements the doubly-linked sibling list plus
// parent/first-child/last-child pointers described in the data model: no
// reference counting or arena indices are needed because Go's garbage
// collector reclaims unreachable subtrees once RemoveChild detaches them.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Kind      NodeKind
	Atom      atom.Atom
	Data      string
	Namespace string
	Attr      []Attribute
}

// inconsistentNodeError is a programming-error failure: something the tree
// invariants guarantee cannot happen. It is not part of the recovery policy
// for malformed HTML, which never panics.
type inconsistentNodeError string

func (e inconsistentNodeError) Error() string { return string(e) }

// InsertBefore inserts newChild as a child of n, immediately before oldChild
// in the sibling order. If oldChild is nil, newChild is appended to the end
// of n's children.
//
// It panics if newChild already has a parent or siblings, matching the
// "programming error" recovery policy for invariant violations: a caller
// reusing a still-attached node is a bug in the tree constructor, not
// malformed input.
func (n *Node) InsertBefore(newChild, oldChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic(inconsistentNodeError("html: InsertBefore called for an attached child Node"))
	}
	var prev, next *Node
	if oldChild != nil {
		prev, next = oldChild.PrevSibling, oldChild
	} else {
		prev = n.LastChild
	}
	if prev != nil {
		prev.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	if next != nil {
		next.PrevSibling = newChild
	} else {
		n.LastChild = newChild
	}
	newChild.Parent = n
	newChild.PrevSibling = prev
	newChild.NextSibling = next
}

// AppendChild adds newChild as the last child of n.
func (n *Node) AppendChild(newChild *Node) {
	if newChild.Parent != nil || newChild.PrevSibling != nil || newChild.NextSibling != nil {
		panic(inconsistentNodeError("html: AppendChild called for an attached child Node"))
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = newChild
	} else {
		n.FirstChild = newChild
	}
	newChild.PrevSibling = last
	newChild.Parent = n
	n.LastChild = newChild
}

// RemoveChild removes child from n's children, clearing child's parent and
// sibling pointers. It panics if child's parent is not n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic(inconsistentNodeError("html: RemoveChild called for a non-child Node"))
	}
	if n.FirstChild == child {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PrevSibling = child.PrevSibling
	}
	if n.LastChild == child {
		n.LastChild = child.PrevSibling
	}
	if child.PrevSibling != nil {
		child.PrevSibling.NextSibling = child.NextSibling
	}
	child.Parent = nil
	child.PrevSibling = nil
	child.NextSibling = nil
}

// reparentChildren moves all of src's children to be children of dst,
// preserving order. It is used by the adoption agency algorithm when it
// moves a furthest block's children under a cloned formatting element.
func reparentChildren(dst, src *Node) {
	for {
		child := src.FirstChild
		if child == nil {
			break
		}
		src.RemoveChild(child)
		dst.AppendChild(child)
	}
}

// CloneNode returns a new detached node with the same kind, atom, data,
// namespace and attributes as n, but with no parent and no children.
func (n *Node) CloneNode() *Node {
	m := &Node{
		Kind:      n.Kind,
		Atom:      n.Atom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if n.Attr != nil {
		m.Attr = make([]Attribute, len(n.Attr))
		copy(m.Attr, n.Attr)
	}
	return m
}

// indexOf returns the position of target among ns, or -1 if it is absent.
func indexOf(ns []*Node, target *Node) int {
	for i, n := range ns {
		if n == target {
			return i
		}
	}
	return -1
}

// String renders a short diagnostic form of n; it is not a serializer (see
// package render for that) but is convenient for tests and logging.
func (n *Node) String() string {
	switch n.Kind {
	case ErrorNode:
		return "#error"
	case TextNode:
		return fmt.Sprintf("#text %q", n.Data)
	case DocumentNode:
		return "#document"
	case CommentNode:
		return fmt.Sprintf("<!--%s-->", n.Data)
	case DoctypeNode:
		return fmt.Sprintf("<!DOCTYPE %s>", n.Data)
	case ScopeMarkerNode:
		return "#scope-marker"
	case ElementNode:
		return "<" + n.Data + ">"
	}
	return "???"
}

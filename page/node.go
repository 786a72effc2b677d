package page

import "strings"

// Node is a visible-text-bearing element captured in a Snapshot.
// It carries only the structural metadata the extraction engine consults:
// tag name, class list, element id, aria-label and the normalized visible
// text of the node and its descendants. Nodes are immutable once the
// snapshot is built.
type Node struct {
	Tag       string
	Classes   []string
	ID        string
	AriaLabel string
	Text      string

	// Parent is a back-reference up the tree. It is nil for the root
	// node. Nodes do not own their parents.
	Parent *Node

	children []*Node
}

// Children returns the element children of the node in document order.
func (n *Node) Children() []*Node {
	return n.children
}

// TextLen returns the length of the node's visible text in runes.
func (n *Node) TextLen() int {
	return len([]rune(n.Text))
}

// HasClassOrID reports whether any class name or the element id contains
// the given substring, matched case-insensitively.
func (n *Node) HasClassOrID(part string) bool {
	part = strings.ToLower(part)
	if strings.Contains(strings.ToLower(n.ID), part) {
		return true
	}
	for _, c := range n.Classes {
		if strings.Contains(strings.ToLower(c), part) {
			return true
		}
	}
	return false
}

// Ancestors calls fn for each ancestor of n, nearest first, stopping
// early if fn returns false. The node itself is not visited.
func (n *Node) Ancestors(fn func(*Node) bool) {
	for p := n.Parent; p != nil; p = p.Parent {
		if !fn(p) {
			return
		}
	}
}

// IsDescendantOf reports whether n is a descendant of ancestor.
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	found := false
	n.Ancestors(func(p *Node) bool {
		if p == ancestor {
			found = true
			return false
		}
		return true
	})
	return found
}

package ropes

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "strings"

// Node is a node of a rope tree. Every node carries a fragment of text of its
// own, which is located between the text of its left subtree and the text of
// its right subtree.
//
// A nil *Node is a valid argument for all read-only methods and behaves like
// an empty tree.
//
// Some invariants hold:
//
//   - The text of a subtree is the text of its left subtree, followed by the
//     node's own text, followed by the text of its right subtree.
//   - The size of a node is always the byte length of its own text.
//   - Every node is owned by exactly one parent, there is no sharing of
//     subtrees and there are no cycles.
//   - Directly after Rebalance, no node has subtrees differing by more than
//     one in depth.
type Node struct {
	text  string
	size  int
	left  *Node
	right *Node
}

// New creates a leaf node owning text.
func New(text string) *Node {
	return &Node{text: text, size: len(text)}
}

// setText replaces the node's own text. text and size are always updated
// together.
func (n *Node) setText(text string) {
	n.text = text
	n.size = len(text)
}

// Text returns the node's own text, not including the text of its children.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Size returns the byte length of the node's own text.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// String returns the complete text of the subtree as a Go string. This may be
// an expensive operation, as it will allocate a buffer for all the bytes of
// the subtree and collect all fragments to a single continuous string.
// Clients working with large amounts of text should consider using Report,
// Chunks or Reader instead.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var bf strings.Builder
	bf.Grow(n.TotalSize())
	for text := range n.Chunks() {
		bf.WriteString(text)
	}
	return bf.String()
}

// TotalSize returns the byte length of the text of all nodes in the subtree.
// This is the same as len(n.String()).
func (n *Node) TotalSize() int {
	if n == nil {
		return 0
	}
	return n.left.TotalSize() + n.size + n.right.TotalSize()
}

// Depth returns the maximum number of nodes on a path from n down to a leaf.
// The depth of a nil node is 0, the depth of a leaf is 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.LeftDepth(), n.RightDepth())
}

// LeftDepth returns the depth of the left subtree.
func (n *Node) LeftDepth() int {
	if n == nil {
		return 0
	}
	return n.left.Depth()
}

// RightDepth returns the depth of the right subtree.
func (n *Node) RightDepth() int {
	if n == nil {
		return 0
	}
	return n.right.Depth()
}

// IsBalanced reports whether no node in the subtree has branches which
// differ by more than one in depth.
//
// Depths are re-calculated on every call, making this an O(n) operation.
func (n *Node) IsBalanced() bool {
	_, ok := balancedDepth(n)
	return ok
}

// balancedDepth calculates depth and balance in a single pass.
func balancedDepth(n *Node) (int, bool) {
	if n == nil {
		return 0, true
	}
	ld, lok := balancedDepth(n.left)
	if !lok {
		return 0, false
	}
	rd, rok := balancedDepth(n.right)
	if !rok {
		return 0, false
	}
	if ld-rd > 1 || rd-ld > 1 {
		return 0, false
	}
	return 1 + max(ld, rd), true
}

// isVoidLeaf is true for a node without text and without children.
func (n *Node) isVoidLeaf() bool {
	return n != nil && n.size == 0 && n.left == nil && n.right == nil
}

package ropes

import (
	"iter"
	"strings"
)

// walk visits the nodes of a subtree in logical (in-order) sequence. It stops
// as soon as f returns false and reports whether the walk completed.
func walk(n *Node, f func(*Node) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, f) && f(n) && walk(n.right, f)
}

// Chunks returns an iterator over the own texts of all nodes in logical
// order. Nodes without text are skipped.
func (n *Node) Chunks() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(n, func(node *Node) bool {
			if node.size == 0 {
				return true
			}
			return yield(node.text)
		})
	}
}

// EachChunk visits all non-empty text fragments in logical order.
//
// The callback receives each fragment and its starting byte offset. Iteration
// stops at the first callback error and returns that error to the caller.
func (n *Node) EachChunk(f func(text string, pos int) error) error {
	var err error
	var pos int
	for text := range n.Chunks() {
		if err = f(text, pos); err != nil {
			return err
		}
		pos += len(text)
	}
	return nil
}

// Index returns the node whose own text contains byte position i, together
// with the offset of i within that text.
func (n *Node) Index(i int) (*Node, int, error) {
	if i < 0 || i >= n.TotalSize() {
		return nil, 0, ErrIndexOutOfBounds
	}
	node := n
	for {
		leftSize := node.left.TotalSize()
		switch {
		case i < leftSize:
			node = node.left
		case i < leftSize+node.size:
			return node, i - leftSize, nil
		default:
			i -= leftSize + node.size
			node = node.right
		}
	}
}

// Report outputs a substring: Report(i,l) => outputs the string bi,...,bi+l-1.
// Only the nodes overlapping the substring are visited.
func (n *Node) Report(i, l int) (string, error) {
	if i < 0 || l < 0 {
		return "", ErrIllegalArguments
	}
	if i+l > n.TotalSize() {
		return "", ErrIndexOutOfBounds
	}
	var bf strings.Builder
	bf.Grow(l)
	report(n, i, i+l, &bf)
	return bf.String(), nil
}

func report(n *Node, from, to int, bf *strings.Builder) {
	if n == nil || from >= to {
		return
	}
	leftSize := n.left.TotalSize()
	midEnd := leftSize + n.size
	if from < leftSize {
		report(n.left, from, min(to, leftSize), bf)
	}
	if from < midEnd && to > leftSize {
		bf.WriteString(n.text[max(from-leftSize, 0):min(to-leftSize, n.size)])
	}
	if to > midEnd {
		report(n.right, max(from-midEnd, 0), to-midEnd, bf)
	}
}

package ropes

// Prepend adds text in front of all the text of the tree rooted at n. It
// walks down the chain of left children and attaches a new leaf at the first
// free slot. Returns n, or a new leaf if n is nil.
func Prepend(n *Node, text string) *Node {
	if n == nil {
		return New(text)
	}
	node := n
	for node.left != nil {
		node = node.left
	}
	node.left = New(text)
	return n
}

// Append adds text after all the text of the tree rooted at n. It walks down
// the chain of right children and attaches a new leaf at the first free slot.
// Returns n, or a new leaf if n is nil.
func Append(n *Node, text string) *Node {
	if n == nil {
		return New(text)
	}
	node := n
	for node.right != nil {
		node = node.right
	}
	node.right = New(text)
	return n
}

// SplitAt turns n into a pure junction node: its own text is cut at position
// (relative to the own text, not to the subtree), the first part is appended to
// the left subtree and the second part is prepended to the right subtree.
// The own text of n is empty afterwards. The text of the subtree is unchanged.
//
// position has to be in [0…n.Size()], otherwise SplitAt panics.
func SplitAt(n *Node, position int) *Node {
	assert(n != nil, "SplitAt called for nil node")
	assert(position >= 0 && position <= n.size, "SplitAt: position out of range of node text")
	l, r := n.text[:position], n.text[position:]
	T().Debugf("rope split: %q | %q", l, r)
	if n.left == nil {
		n.left = New(l)
	} else {
		Append(n.left, l)
	}
	if n.right == nil {
		n.right = New(r)
	} else {
		Prepend(n.right, r)
	}
	n.setText("")
	return n
}

// Insert inserts text at byte position location of the tree rooted at n and
// returns the root.
//
// location is clamped to [0…n.TotalSize()]: inserting beyond the end appends
// text at the end of the tree, a negative location inserts in front.
//
// Text at a location which falls exactly on the start of a node's own text
// is placed into the node's left subtree. A location strictly inside a
// node's own text will split the node (see SplitAt) and make text the new
// own text of the node.
func Insert(n *Node, text string, location int) *Node {
	if n == nil {
		return New(text)
	}
	total := n.TotalSize()
	if location > total {
		T().Debugf("rope insert: location %d clamped to %d", location, total)
		location = total
	} else if location < 0 {
		T().Debugf("rope insert: location %d clamped to 0", location)
		location = 0
	}
	insert(n, text, location)
	return n
}

func insert(n *Node, text string, location int) {
	leftSize := n.left.TotalSize()
	midEnd := leftSize + n.size
	switch {
	case location <= leftSize:
		if n.left == nil {
			n.left = New(text)
			return
		}
		insert(n.left, text, location)
	case location < midEnd:
		SplitAt(n, location-leftSize)
		n.setText(text)
	default:
		if n.right == nil {
			n.right = New(text)
			return
		}
		insert(n.right, text, location-midEnd)
	}
}

// DeleteRange removes the text in [start…end) from the tree rooted at n and
// returns the root. Offsets are byte positions relative to the start of the
// subtree.
//
// A range reaching beyond the end of the text deletes everything up to the
// end. A reversed range (end < start) deletes nothing. Subtrees which become
// completely empty are detached from the tree. The root itself is never
// detached, even if it ends up without any text.
func DeleteRange(n *Node, start, end int) *Node {
	if n == nil {
		return nil
	}
	if end < start {
		T().Debugf("rope delete: reversed range [%d…%d) ignored", start, end)
		return n
	}
	deleteRange(n, start, end)
	return n
}

func deleteRange(n *Node, start, end int) {
	leftSize := n.left.TotalSize()
	rightSize := n.right.TotalSize()
	midEnd := leftSize + n.size
	r := span{start, end}
	if n.left != nil && r.intersects(span{0, leftSize}) {
		deleteRange(n.left, start, end)
		if n.left.isVoidLeaf() {
			T().Debugf("rope delete: detaching emptied left subtree")
			n.left = nil
		}
	}
	if r.intersects(span{leftSize, midEnd}) {
		cs := clamp(start-leftSize, 0, n.size)
		ce := clamp(end-leftSize, cs, n.size)
		if cs < ce {
			n.setText(n.text[:cs] + n.text[ce:])
		}
	}
	if n.right != nil && r.intersects(span{midEnd, midEnd + rightSize}) {
		deleteRange(n.right, start-midEnd, end-midEnd)
		if n.right.isVoidLeaf() {
			T().Debugf("rope delete: detaching emptied right subtree")
			n.right = nil
		}
	}
}

// span is a half-open interval [from…to) of byte positions.
type span struct {
	from, to int
}

// intersects reports whether two spans overlap. Spans which merely touch at a
// boundary are considered intersecting.
func (s span) intersects(other span) bool {
	return !(s.to < other.from || other.to < s.from)
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

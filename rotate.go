package ropes

// RotateLeft rotates a tree: used for rebalancing.
//
// Turns
//
//	  b
//	 / \
//	a   c
//
// into
//
//	    c
//	   /
//	  b
//	 /
//	a
//
// c's former left child becomes b's right child. Returns the new root c.
// n must have a right child, otherwise RotateLeft panics.
func RotateLeft(n *Node) *Node {
	assert(n != nil && n.right != nil, "RotateLeft requires a right child")
	parent := n.right
	n.right = parent.left
	parent.left = n
	T().Debugf("rope rotate left: %q becomes parent of %q", parent.text, n.text)
	return parent
}

// RotateRight rotates a tree: used for rebalancing.
//
// Turns
//
//	  b
//	 / \
//	a   c
//
// into
//
//	a
//	 \
//	  b
//	   \
//	    c
//
// a's former right child becomes b's left child. Returns the new root a.
// n must have a left child, otherwise RotateRight panics.
func RotateRight(n *Node) *Node {
	assert(n != nil && n.left != nil, "RotateRight requires a left child")
	parent := n.left
	n.left = parent.right
	parent.right = n
	T().Debugf("rope rotate right: %q becomes parent of %q", parent.text, n.text)
	return parent
}

// Rebalance restores the balance of the tree rooted at n, i.e. afterwards no
// node will have subtrees which differ by more than one in depth. It returns
// the new root of the tree.
//
// Rebalancing works top-down: a node which is deeper on one side is rotated
// towards the other side until its subtrees are within one level of each
// other. If the child on the deeper side leans the opposite way, the child is
// rotated first (double rotation). Then the children are rebalanced. As
// rebalancing a child may make it shallower, the node is checked again
// afterwards.
func Rebalance(n *Node) *Node {
	for n != nil && !n.IsBalanced() {
		for n.LeftDepth()-n.RightDepth() > 1 {
			if n.left.RightDepth() > n.left.LeftDepth() {
				n.left = RotateLeft(n.left)
			}
			n = RotateRight(n)
		}
		for n.RightDepth()-n.LeftDepth() > 1 {
			if n.right.LeftDepth() > n.right.RightDepth() {
				n.right = RotateRight(n.right)
			}
			n = RotateLeft(n)
		}
		n.left = Rebalance(n.left)
		n.right = Rebalance(n.right)
	}
	return n
}

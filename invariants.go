package ropes

import "fmt"

// Check validates the structural invariants of the tree rooted at n:
// the cached size of every node has to match the length of its own text, and
// no node may be reachable on more than one path from n.
//
// Check is intended for tests and for debugging clients which manipulate
// trees in unusual ways.
func (n *Node) Check() error {
	seen := make(map[*Node]struct{})
	_, err := checkNode(n, seen, 0, "$")
	return err
}

// checkNode returns the total size of the subtree rooted at n. pos is the
// logical start position of the subtree, used for error messages only.
func checkNode(n *Node, seen map[*Node]struct{}, pos int, path string) (int, error) {
	if n == nil {
		return 0, nil
	}
	if _, ok := seen[n]; ok {
		return 0, fmt.Errorf("%w: node at %s (position %d) is shared or part of a cycle",
			ErrInvariantViolated, path, pos)
	}
	seen[n] = struct{}{}
	if n.size != len(n.text) {
		return 0, fmt.Errorf("%w: node at %s (position %d) has size %d but text of length %d",
			ErrInvariantViolated, path, pos, n.size, len(n.text))
	}
	leftSize, err := checkNode(n.left, seen, pos, path+".left")
	if err != nil {
		return 0, err
	}
	rightSize, err := checkNode(n.right, seen, pos+leftSize+n.size, path+".right")
	if err != nil {
		return 0, err
	}
	return leftSize + n.size + rightSize, nil
}

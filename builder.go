package ropes

// Builder collects text fragments and finalizes them into a balanced rope.
//
// Fragments may be appended or prepended in any order. The rope is built
// only when Rope() is called, with every fragment becoming the own text of
// one node. Empty fragments are dropped.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front []string
	// back keeps appended fragments in logical order.
	back []string

	done  bool
	dirty bool
	root  *Node
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Rope returns the rope built from all staged fragments. It returns nil if
// no text has been staged.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times, returning the same tree. Clients which
// mutate that tree will see the mutations in subsequent calls.
func (b *Builder) Rope() *Node {
	if b == nil {
		return nil
	}
	if b.dirty {
		b.root = buildBalanced(b.orderedFragments())
		b.dirty = false
	}
	b.done = true
	if b.root == nil {
		T().Debugf("rope builder: rope is void")
	}
	return b.root
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.root = nil
}

// Append appends a text fragment to the staged build.
func (b *Builder) Append(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if text == "" {
		return nil
	}
	b.back = append(b.back, text)
	b.dirty = true
	return nil
}

// Prepend prepends a text fragment to the staged build.
func (b *Builder) Prepend(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if text == "" {
		return nil
	}
	b.front = append(b.front, text)
	b.dirty = true
	return nil
}

func (b *Builder) orderedFragments() []string {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]string, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	return append(out, b.back...)
}

// buildBalanced makes the middle fragment the root and builds both halves
// recursively. The resulting tree satisfies IsBalanced.
func buildBalanced(fragments []string) *Node {
	if len(fragments) == 0 {
		return nil
	}
	mid := len(fragments) / 2
	n := New(fragments[mid])
	n.left = buildBalanced(fragments[:mid])
	n.right = buildBalanced(fragments[mid+1:])
	return n
}

package ropes

import "fmt"

// Keys of the nested record layout used by FromMap, ToMap and the JSON
// representation of a rope.
const (
	keyText  = "text"
	keyLeft  = "left"
	keyRight = "right"
)

// FromMap creates a rope from a nested record of the form
//
//	{ "text": string, "left": <record>, "right": <record> }
//
// where "left" and "right" are optional. This is mainly useful for setting up
// test fixtures with a given tree structure.
//
// If a record lacks a "text" entry of type string, or a child is not a record
// itself, FromMap returns an error wrapping ErrMalformedShape and no tree.
func FromMap(m map[string]any) (*Node, error) {
	return fromMap(m, "$")
}

func fromMap(m map[string]any, path string) (*Node, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: %s is not a record", ErrMalformedShape, path)
	}
	text, ok := m[keyText].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no text of type string", ErrMalformedShape, path)
	}
	n := New(text)
	var err error
	if n.left, err = childFromMap(m, keyLeft, path); err != nil {
		return nil, err
	}
	if n.right, err = childFromMap(m, keyRight, path); err != nil {
		return nil, err
	}
	return n, nil
}

func childFromMap(m map[string]any, key string, path string) (*Node, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	child, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s is not a record", ErrMalformedShape, path, key)
	}
	return fromMap(child, path+"."+key)
}

// ToMap converts the tree into nested records, the inverse of FromMap.
// Children are included only if present.
//
// Only used for debugging and testing, this has no functional purpose.
func (n *Node) ToMap() map[string]any {
	if n == nil {
		return nil
	}
	m := map[string]any{keyText: n.text}
	if n.left != nil {
		m[keyLeft] = n.left.ToMap()
	}
	if n.right != nil {
		m[keyRight] = n.right.ToMap()
	}
	return m
}

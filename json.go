package ropes

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FromJSON creates a rope from the JSON form of the nested record layout
// described for FromMap, e.g.
//
//	{"text":"b","left":{"text":"a"},"right":{"text":"c"}}
//
// Invalid JSON or records not following the layout result in an error
// wrapping ErrMalformedShape.
func FromJSON(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedShape)
	}
	return fromJSON(gjson.ParseBytes(data), "$")
}

func fromJSON(r gjson.Result, path string) (*Node, error) {
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: %s is not a record", ErrMalformedShape, path)
	}
	text := r.Get(keyText)
	if text.Type != gjson.String {
		return nil, fmt.Errorf("%w: %s has no text of type string", ErrMalformedShape, path)
	}
	n := New(text.String())
	var err error
	if l := r.Get(keyLeft); l.Exists() {
		if n.left, err = fromJSON(l, path+"."+keyLeft); err != nil {
			return nil, err
		}
	}
	if rt := r.Get(keyRight); rt.Exists() {
		if n.right, err = fromJSON(rt, path+"."+keyRight); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// MarshalJSON outputs the structure of the tree in the nested record layout.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	js, err := sjson.SetBytes([]byte("{}"), keyText, n.text)
	if err != nil {
		return nil, err
	}
	for _, child := range []struct {
		key  string
		node *Node
	}{{keyLeft, n.left}, {keyRight, n.right}} {
		if child.node == nil {
			continue
		}
		raw, err := child.node.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if js, err = sjson.SetRawBytes(js, child.key, raw); err != nil {
			return nil, err
		}
	}
	return js, nil
}

// UnmarshalJSON replaces n with the tree described by data.
func (n *Node) UnmarshalJSON(data []byte) error {
	if n == nil {
		return ErrIllegalArguments
	}
	root, err := FromJSON(data)
	if err != nil {
		return err
	}
	*n = *root
	return nil
}

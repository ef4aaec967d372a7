package ropes

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestMapRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	root := makeDeepRope()
	m := root.ToMap()
	clone, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}
	if clone.String() != root.String() {
		t.Errorf("round trip changed text from %q to %q", root.String(), clone.String())
	}
	if !reflect.DeepEqual(clone.ToMap(), m) {
		t.Errorf("round trip changed structure: %v", clone.ToMap())
	}
	if clone == root || clone.right == root.right {
		t.Errorf("FromMap must create fresh nodes")
	}
}

func TestMapMalformed(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for i, m := range []map[string]any{
		nil,
		{},
		{"text": 42},
		{"text": "a", "left": "b"},
		{"text": "a", "right": map[string]any{"left": map[string]any{"text": "c"}}},
	} {
		n, err := FromMap(m)
		if err == nil || !errors.Is(err, ErrMalformedShape) {
			t.Errorf("case %d: expected ErrMalformedShape, have %v", i, err)
		}
		if n != nil {
			t.Errorf("case %d: expected no partial tree", i)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	defer redirectTracing(t)()
	root := Insert(makeDeepRope(), "\"quoted\"\n", 5)
	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	t.Logf("json = %s", data)
	clone, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if clone.String() != root.String() {
		t.Errorf("round trip changed text from %q to %q", root.String(), clone.String())
	}
	if !reflect.DeepEqual(clone.ToMap(), root.ToMap()) {
		t.Errorf("round trip changed structure: %v", clone.ToMap())
	}
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if n.String() != root.String() {
		t.Errorf("Unmarshal produced %q", n.String())
	}
}

func TestJSONLayout(t *testing.T) {
	root := mustFromMap(t, map[string]any{
		"text":  "b",
		"left":  map[string]any{"text": "a"},
		"right": map[string]any{"text": "c"},
	})
	data, err := root.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	want := `{"text":"b","left":{"text":"a"},"right":{"text":"c"}}`
	if string(data) != want {
		t.Errorf("expected %s, have %s", want, data)
	}
}

func TestJSONMalformed(t *testing.T) {
	for _, js := range []string{
		`{"text":`,
		`[]`,
		`{"left":{"text":"a"}}`,
		`{"text":1}`,
		`{"text":"a","right":"b"}`,
	} {
		n, err := FromJSON([]byte(js))
		if !errors.Is(err, ErrMalformedShape) {
			t.Errorf("%s: expected ErrMalformedShape, have %v", js, err)
		}
		if n != nil {
			t.Errorf("%s: expected no partial tree", js)
		}
	}
}

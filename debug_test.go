package ropes

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDebugString(t *testing.T) {
	root := mustFromMap(t, map[string]any{
		"text":  "ABC",
		"left":  map[string]any{"text": "DEF"},
		"right": map[string]any{"text": "GHI"},
	})
	want := "-DEF\nABC\n-GHI\n"
	if s := root.DebugString(); s != want {
		t.Errorf("expected\n%s\nhave\n%s", want, s)
	}
	want = "-012\n345\n--6\n-7\n--8\n---9\n"
	if s := makeDeepRope().DebugString(); s != want {
		t.Errorf("expected\n%s\nhave\n%s", want, s)
	}
}

func TestPrintTree(t *testing.T) {
	defer redirectTracing(t)()
	var bf bytes.Buffer
	root := SplitAt(New("ab"), 1)
	if err := PrintTree(&bf, root); err != nil {
		t.Fatal(err)
	}
	want := "-a\n∅\n-b\n"
	if bf.String() != want {
		t.Errorf("expected uncolored output %q, have %q", want, bf.String())
	}
}

func TestRope2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root := makeDeepRope()
	dump(root)
	var bf bytes.Buffer
	if err := Rope2Dot(root, &bf); err != nil {
		t.Fatal(err)
	}
	dot := bf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT digraph")
	}
	for _, label := range []string{`10 @3\n“345”`, `3 @0\n“012”`, `1 @9\n“9”`, `4 @7\n“7”`} {
		if !strings.Contains(dot, label) {
			t.Errorf("expected DOT output to contain label %s", label)
		}
	}
	if n := strings.Count(dot, "->"); n != 12 {
		t.Errorf("expected 12 edges (2 per node), have %d", n)
	}
}

func TestCheckDetectsBrokenTrees(t *testing.T) {
	root := makeDeepRope()
	if err := root.Check(); err != nil {
		t.Fatalf("valid tree reported as broken: %v", err)
	}
	root.right.size = 5
	if err := root.Check(); err == nil || !strings.Contains(err.Error(), ErrInvariantViolated.Error()) {
		t.Errorf("expected size mismatch to be detected, have %v", err)
	}
	root = makeDeepRope()
	root.left.right = root.right.right // shared subtree
	if err := root.Check(); err == nil {
		t.Errorf("expected shared subtree to be detected")
	}
	root = makeDeepRope()
	root.right.right.right.right = root.right // cycle
	if err := root.Check(); err == nil {
		t.Errorf("expected cycle to be detected")
	}
}

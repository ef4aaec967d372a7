package ropes

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DebugString prints the contents of the tree including the hierarchy. Every
// node's text is printed on a line of its own, prefixed by one '-' per depth
// level, with the left subtree above and the right subtree below it.
//
// If the root node has ABC, the left node has DEF, and the right node has
// GHI, the output will look like:
//
//	-DEF
//	ABC
//	-GHI
func (n *Node) DebugString() string {
	var bf strings.Builder
	walkDepth(n, 0, func(node *Node, depth int) {
		bf.WriteString(strings.Repeat("-", depth))
		bf.WriteString(node.text)
		bf.WriteByte('\n')
	})
	return bf.String()
}

func walkDepth(n *Node, depth int, f func(*Node, int)) {
	if n == nil {
		return
	}
	walkDepth(n.left, depth+1, f)
	f(n, depth)
	walkDepth(n.right, depth+1, f)
}

// PrintTree outputs the same hierarchy as DebugString to w. If w is a
// terminal, depth markers and texts are highlighted with colors. Nodes
// without text are shown as "∅".
func PrintTree(w io.Writer, n *Node) error {
	marker := color.New(color.FgHiBlack)
	text := color.New(color.FgCyan)
	empty := color.New(color.FgYellow)
	if isTerminal(w) {
		marker.EnableColor()
		text.EnableColor()
		empty.EnableColor()
	} else {
		marker.DisableColor()
		text.DisableColor()
		empty.DisableColor()
	}
	var err error
	walkDepth(n, 0, func(node *Node, depth int) {
		if err != nil {
			return
		}
		if _, err = marker.Fprint(w, strings.Repeat("-", depth)); err != nil {
			return
		}
		if node.size == 0 {
			_, err = empty.Fprintln(w, "∅")
			return
		}
		_, err = text.Fprintln(w, node.text)
	})
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// --- Debugging helper ------------------------------------------------------

func dump(n *Node) {
	walkDepth(n, 0, func(node *Node, depth int) {
		T().Debugf("%s[%d] %q", indent(depth), node.size, strstart(node))
	})
}

func indent(d int) string {
	return strings.Repeat("  ", d)
}

func strstart(n *Node) string {
	s := n.text
	if len(s) > 8 {
		return s[:7] + "…"
	}
	return s
}

package ropes

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a rope in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labeled with the total size of their subtree, their logical
// start position and (the start of) their own text. Missing children are
// drawn as small empty circles.
func Rope2Dot(root *Node, w io.Writer) error {
	var bf strings.Builder
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	pos := 0
	walk(root, func(node *Node) bool {
		ID := ids.alloc(node)
		start := pos // in-order: all text to the left has been visited
		label := fmt.Sprintf("%d @%d\\n“%s”", node.TotalSize(), start, dotEscape(strstart(node)))
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node))
		for i, child := range [2]*Node{node.left, node.right} {
			if child == nil {
				nilid := ID*10 + i + 100000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		pos += node.size
		return true
	})
	bf.WriteString(nodelist)
	bf.WriteString(edgelist)
	bf.WriteString("}\n")
	_, err := io.WriteString(w, bf.String())
	if err != nil {
		T().Errorf("rope DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(node *Node) string {
	if node.left == nil && node.right == nil {
		return ",style=filled,shape=box"
	}
	return ",style=\"rounded,filled\",color=black,fillcolor=\"#a3d7e4\",shape=box"
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

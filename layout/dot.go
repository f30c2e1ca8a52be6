package layout

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*Layout]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Layout]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Layout) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Layout) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Layout2Dot outputs the node tree of a layout in Graphviz DOT format
// (for debugging purposes).
func Layout2Dot(l *Layout, w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	var nodelist, edgelist strings.Builder
	var walk func(node *Layout)
	walk = func(node *Layout) {
		ID := ids.alloc(node)
		label := node.String()
		if !node.style.IsEmpty() {
			label += "\\n" + node.style.Dump()
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, escapeDot(label), nodeDotStyles(node))
		for _, c := range node.children {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(c))
			walk(c)
		}
	}
	walk(l)
	sb.WriteString(nodelist.String())
	sb.WriteString(edgelist.String())
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeDot(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func nodeDotStyles(node *Layout) string {
	s := ",style=filled"
	switch node.kind {
	case KindBlock:
		s += ",shape=box,fillcolor=\"#a3d7e4\""
	case KindBlank, KindEmpty:
		s += ",shape=box,fillcolor=white"
	default:
		s += ",color=black,fillcolor=\"" + hexcolors[min(depth(node), len(hexcolors)-1)] + "\""
		s += ",shape=ellipse"
	}
	return s
}

func depth(node *Layout) int {
	d := 0
	for p := node.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}

package rope

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type nodeids struct {
	idTable map[Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a rope in Graphviz DOT format
// (for debugging purposes). Missing children are drawn as empty circles.
func ToDot(root Node, w io.Writer) error {
	ids := newtable()
	nilid := 0
	nodelist, edgelist := "", ""
	edge := func(from int, child Node) {
		if child == nil {
			nilid--
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", from, nilid)
			return
		}
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", from, ids.alloc(child))
	}
	err := traverse(root, 0, 0, func(node Node, pos int, depth int) error {
		ID := ids.alloc(node)
		switch n := node.(type) {
		case *Leaf:
			label := fmt.Sprintf("%d @%d\\n“%s”", n.size, pos, dotEscape(preview(n.text, 8)))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true))
		case *Branch:
			edge(ID, n.left)
			edge(ID, n.right)
			label := fmt.Sprintf("%d|%d", n.weight, n.height)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(false))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
		return err
	}
	var buf strings.Builder
	buf.WriteString("strict digraph {\n")
	buf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	buf.WriteString(nodelist)
	buf.WriteString(edgelist)
	buf.WriteString("}\n")
	_, err = io.WriteString(w, buf.String())
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

// preview returns at most n characters from the start of s, marking a cut
// with an ellipsis.
func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	cnt := 0
	for at := range s {
		if cnt == n-1 {
			return s[:at] + "…"
		}
		cnt++
	}
	return s
}

func dotEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '"', '\\':
			out = append(out, '\\', r)
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

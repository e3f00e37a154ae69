package rbtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	ansi "github.com/fatih/color"
	"golang.org/x/term"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Leaf links to the sentinel are drawn as small
// black dots.
func (t *Tree[K, V]) ToDot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12,style=filled,fontcolor=white];\n")
	var nodelist, edgelist strings.Builder
	nilid := 0
	var walk func(r ref)
	walk = func(r ref) {
		n := t.nodes.at(r)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%v\" %s];\n", r, n.value, nodeDotStyles(n.color))
		for _, child := range []ref{n.left, n.right} {
			if child == sentinel {
				nilid++
				fmt.Fprintf(&nodelist, "\t\"nil%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"nil%d\";\n", r, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", r, child)
			walk(child)
		}
	}
	if root := t.nodes.root(); root != sentinel {
		walk(root)
	}
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("rbtree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point,width=.1]"
}

func nodeDotStyles(c color) string {
	if c == red {
		return ",color=\"#aa0000\",fillcolor=\"#dd2222\",shape=circle"
	}
	return ",color=black,fillcolor=black,shape=circle"
}

// --- Console output --------------------------------------------------------

// Dump writes the tree sideways to w, one node per line, with the root at the
// left margin and larger keys above smaller ones. Red nodes are marked with
// a trailing `*`; if colored is set they are printed in red as well.
func (t *Tree[K, V]) Dump(w io.Writer, colored bool) error {
	redc := ansi.New(ansi.FgRed, ansi.Bold)
	if colored {
		redc.EnableColor()
	} else {
		redc.DisableColor()
	}
	var err error
	var walk func(r ref, depth int)
	walk = func(r ref, depth int) {
		if r == sentinel || err != nil {
			return
		}
		n := t.nodes.at(r)
		walk(n.right, depth+1)
		if err != nil {
			return
		}
		indent := strings.Repeat("    ", depth)
		if n.color == red {
			_, err = redc.Fprintf(w, "%s%v*\n", indent, n.value)
		} else {
			_, err = fmt.Fprintf(w, "%s%v\n", indent, n.value)
		}
		walk(n.left, depth+1)
	}
	walk(t.nodes.root(), 0)
	return err
}

// DumpConsole writes the tree to f using Dump. Colors are used if f is a
// terminal.
func (t *Tree[K, V]) DumpConsole(f *os.File) error {
	colored := term.IsTerminal(int(f.Fd()))
	tracer().Debugf("rbtree: dumping %d nodes, colored=%v", t.size, colored)
	return t.Dump(f, colored)
}

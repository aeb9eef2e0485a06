package format

import (
	"strconv"

	"midl/internal/ast"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

// PrintTree renders the AST rooted at the given node, following the
// top-level sibling chain. Non-terminals print their production name with
// children indented one level below; terminals print their node type and
// quoted text on one line.
func PrintTree(root *ast.TreeNode, opt Options) []byte {
	w := NewWriter(opt)
	for _, def := range root.Siblings() {
		printNode(w, def)
	}
	return w.Bytes()
}

func printNode(w *Writer, n *ast.TreeNode) {
	if n.Kind == ast.Terminal {
		w.WriteString(n.Type.String())
		w.WriteString(" ")
		w.WriteString(strconv.Quote(n.Text))
	} else {
		w.WriteString(n.Type.String())
	}
	w.Newline()

	w.IndentPush()
	for _, child := range n.Children {
		printNode(w, child)
	}
	w.IndentPop()
}

package ast

// TreeNode is the AST's sole structural type. Children are exclusively
// owned; Sib is a secondary, non-owning link used only to thread the flat
// sequence of top-level definitions together without a wrapper node.
type TreeNode struct {
	Kind     NodeKind
	Type     NodeType
	Text     string // literal payload; terminals only
	Children []*TreeNode
	Sib      *TreeNode
}

// NewTerminal constructs a leaf node carrying literal source text.
func NewTerminal(t NodeType, text string) *TreeNode {
	return &TreeNode{Kind: Terminal, Type: t, Text: text}
}

// NewNonTerminal constructs an interior node for the given production.
func NewNonTerminal(t NodeType) *TreeNode {
	return &TreeNode{Kind: NonTerminal, Type: t}
}

// AddChild appends node to the receiver's children, in grammar order.
func (n *TreeNode) AddChild(node *TreeNode) {
	n.Children = append(n.Children, node)
}

// AddSib links node at the end of the sibling chain anchored at n.
func (n *TreeNode) AddSib(node *TreeNode) {
	last := n
	for last.Sib != nil {
		last = last.Sib
	}
	last.Sib = node
}

// Siblings returns the chain anchored at n as a slice, n included.
func (n *TreeNode) Siblings() []*TreeNode {
	var out []*TreeNode
	for cur := n; cur != nil; cur = cur.Sib {
		out = append(out, cur)
	}
	return out
}

// Walk visits n and its children depth-first, left-to-right. It does not
// follow sibling links; callers iterate those explicitly.
func (n *TreeNode) Walk(visit func(*TreeNode)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

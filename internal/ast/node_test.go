package ast

import (
	"testing"

	"github.com/go-test/deep"
)

func TestAddSibAppendsAtChainEnd(t *testing.T) {
	first := NewNonTerminal(NodeDefinition)
	second := NewNonTerminal(NodeDefinition)
	third := NewNonTerminal(NodeDefinition)

	first.AddSib(second)
	first.AddSib(third)

	if first.Sib != second || second.Sib != third || third.Sib != nil {
		t.Fatalf("sibling chain out of order: %v -> %v -> %v", first.Sib, second.Sib, third.Sib)
	}
}

func TestSiblingsIncludesAnchor(t *testing.T) {
	only := NewNonTerminal(NodeModule)
	if got := only.Siblings(); len(got) != 1 || got[0] != only {
		t.Fatalf("expected a single-element chain, got %d elements", len(got))
	}

	next := NewNonTerminal(NodeTypeDecl)
	only.AddSib(next)
	if got := only.Siblings(); len(got) != 2 || got[1] != next {
		t.Fatalf("expected two-element chain, got %d elements", len(got))
	}
}

func TestWalkDepthFirstIgnoresSiblings(t *testing.T) {
	root := NewNonTerminal(NodeStructType)
	root.AddChild(NewTerminal(NodeID, "S"))
	members := NewNonTerminal(NodeMemberList)
	members.AddChild(NewTerminal(NodeConst, "long"))
	root.AddChild(members)
	root.AddSib(NewNonTerminal(NodeDefinition))

	var visited []string
	root.Walk(func(n *TreeNode) {
		visited = append(visited, n.Type.String())
	})

	want := []string{"struct_type", "id", "member_list", "const"}
	if diff := deep.Equal(visited, want); diff != nil {
		t.Fatalf("unexpected walk order: %v", diff)
	}
}

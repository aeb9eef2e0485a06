package format

import (
	"testing"

	"midl/internal/ast"
	"midl/internal/parser"
	"midl/internal/source"
)

func buildTree(t *testing.T, src string) *ast.TreeNode {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.idl", []byte(src))
	file := fs.Get(id)
	spec, err := parser.ParseFile(file, parser.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	root, err := ast.NewBuilder(file).Build(spec)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return root
}

func TestPrintTreeGolden(t *testing.T) {
	root := buildTree(t, "module M { struct S { long x; }; };")

	want := `definition
  module
    id "M"
    definition
      type_decl
        struct_type
          id "S"
          member_list
            type_spec
              base_type_spec
                integer_type
                  signed_int
                    const "long"
              declarators
                declarator
                  simple_declarator
                    id "x"
`
	got := string(PrintTree(root, Options{}))
	if got != want {
		t.Errorf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintTreeSiblingChainAtTopLevel(t *testing.T) {
	root := buildTree(t, "struct A { long x; };\nstruct B { long y; };")

	want := `definition
  type_decl
    struct_type
      id "A"
      member_list
        type_spec
          base_type_spec
            integer_type
              signed_int
                const "long"
          declarators
            declarator
              simple_declarator
                id "x"
definition
  type_decl
    struct_type
      id "B"
      member_list
        type_spec
          base_type_spec
            integer_type
              signed_int
                const "long"
          declarators
            declarator
              simple_declarator
                id "y"
`
	got := string(PrintTree(root, Options{}))
	if got != want {
		t.Errorf("unexpected dump:\n%s", got)
	}
}

func TestPrintTreeOperatorNodes(t *testing.T) {
	root := buildTree(t, "struct A { long x = 1 + 2; };")

	want := `definition
  type_decl
    struct_type
      id "A"
      member_list
        type_spec
          base_type_spec
            integer_type
              signed_int
                const "long"
          declarators
            declarator
              simple_declarator
                id "x"
                add_expr
                  integer "1"
                  add_op "+"
                    integer "2"
`
	got := string(PrintTree(root, Options{}))
	if got != want {
		t.Errorf("unexpected dump:\n%s", got)
	}
}

func TestPrintTreeTabs(t *testing.T) {
	root := buildTree(t, "struct S;")

	want := "definition\n\ttype_decl\n\t\tid \"S\"\n"
	got := string(PrintTree(root, Options{UseTabs: true}))
	if got != want {
		t.Errorf("unexpected dump: %q", got)
	}
}

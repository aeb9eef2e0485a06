package parser

import (
	"midl/internal/source"
	"midl/internal/token"
)

// The concrete parse tree: one struct per grammar production. Every node
// carries the span of its first token so later phases can report source
// lines. Alternative productions (Definition, TypeDecl, TypeSpec,
// Declarator) have exactly one of their branch fields set.

// Specification is the root production: definition { definition }.
type Specification struct {
	Span source.Span
	Defs []*Definition
}

// Definition wraps either a type declaration or a module, each followed by
// ';' in the source.
type Definition struct {
	Span     source.Span
	TypeDecl *TypeDecl
	Module   *Module
}

// Module is "module" ID "{" definition { definition } "}".
type Module struct {
	Span source.Span
	Name string
	Defs []*Definition
}

// TypeDecl is struct_type | "struct" ID (forward declaration).
type TypeDecl struct {
	Span        source.Span
	Struct      *StructType
	ForwardName string
}

// StructType is "struct" ID "{" member_list "}".
type StructType struct {
	Span    source.Span
	Name    string
	Members *MemberList
}

// MemberList is { type_spec declarators ";" }.
type MemberList struct {
	Span    source.Span
	Members []*Member
}

// Member pairs one type_spec with its declarators.
type Member struct {
	Span  source.Span
	Type  *TypeSpec
	Decls *Declarators
}

// TypeSpec is scoped_name | base_type_spec | struct_type.
type TypeSpec struct {
	Span   source.Span
	Scoped *ScopedName
	Base   *BaseTypeSpec
	Struct *StructType
}

// ScopedName is ["::"] ID { "::" ID }.
type ScopedName struct {
	Span   source.Span
	Rooted bool
	Parts  []string
}

// Qualified returns the reference spelling with components joined by "::",
// with a leading "::" when the name is rooted.
func (n *ScopedName) Qualified() string {
	out := ""
	if n.Rooted {
		out = "::"
	}
	for i, part := range n.Parts {
		if i > 0 {
			out += "::"
		}
		out += part
	}
	return out
}

// BaseTypeSpec is floating_pt_type | integer_type | "char" | "string" |
// "boolean". For the three keyword types only Text is set.
type BaseTypeSpec struct {
	Span  source.Span
	Float *FloatingPtType
	Int   *IntegerType
	Text  string
}

// FloatingPtType is "float" | "double" | "long double".
type FloatingPtType struct {
	Span source.Span
	Text string
}

// IntegerType is signed_int | unsigned_int.
type IntegerType struct {
	Span     source.Span
	Signed   *SignedInt
	Unsigned *UnsignedInt
}

// SignedInt carries the matched signed integer type keywords.
type SignedInt struct {
	Span source.Span
	Text string
}

// UnsignedInt carries the matched unsigned integer type keywords.
type UnsignedInt struct {
	Span source.Span
	Text string
}

// Declarators is declarator { "," declarator }.
type Declarators struct {
	Span  source.Span
	Decls []*Declarator
}

// Declarator is simple_declarator | array_declarator.
type Declarator struct {
	Span   source.Span
	Simple *SimpleDeclarator
	Array  *ArrayDeclarator
}

// SimpleDeclarator is ID [ "=" or_expr ].
type SimpleDeclarator struct {
	Span    source.Span
	Name    string
	Default *OrExpr
}

// ArrayDeclarator is ID "[" or_expr "]" [ "=" exp_list ].
type ArrayDeclarator struct {
	Span source.Span
	Name string
	Size *OrExpr
	Init *ExpList
}

// ExpList is "[" or_expr { "," or_expr } "]".
type ExpList struct {
	Span  source.Span
	Exprs []*OrExpr
}

// OrExpr is xor_expr { "|" xor_expr }. The or/xor/and levels have a single
// possible operator each, so only operands are recorded.
type OrExpr struct {
	Span     source.Span
	Operands []*XorExpr
}

// XorExpr is and_expr { "^" and_expr }.
type XorExpr struct {
	Span     source.Span
	Operands []*AndExpr
}

// AndExpr is shift_expr { "&" shift_expr }.
type AndExpr struct {
	Span     source.Span
	Operands []*ShiftExpr
}

// ShiftExpr is add_expr { (">>"|"<<") add_expr }. Ops[i] is the operator
// before Operands[i+1].
type ShiftExpr struct {
	Span     source.Span
	Operands []*AddExpr
	Ops      []string
}

// AddExpr is mult_expr { ("+"|"-") mult_expr }.
type AddExpr struct {
	Span     source.Span
	Operands []*MultExpr
	Ops      []string
}

// MultExpr is unary_expr { ("*"|"/"|"%") unary_expr }.
type MultExpr struct {
	Span     source.Span
	Operands []*UnaryExpr
	Ops      []string
}

// UnaryExpr is [ ("-"|"+"|"~") ] literal.
type UnaryExpr struct {
	Span    source.Span
	Op      string // empty when no unary operator is present
	Literal *Literal
}

// Literal is one of the five literal token kinds.
type Literal struct {
	Span source.Span
	Kind token.Kind
	Text string
}

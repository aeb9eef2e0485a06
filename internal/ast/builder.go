package ast

import (
	"midl/internal/parser"
	"midl/internal/semantic"
	"midl/internal/source"
	"midl/internal/token"
)

// Builder constructs the AST for one compilation unit while enforcing
// name-resolution invariants. One build rule per grammar production; the
// rules that introduce or reference names drive the symbol table at exactly
// those points. The first semantic error aborts the build.
//
// A Builder owns its Table and must not be shared across concurrent
// builds; create one per unit.
type Builder struct {
	file  *source.File
	table *semantic.Table
}

// NewBuilder creates a builder for the given file with a fresh symbol table.
func NewBuilder(file *source.File) *Builder {
	return &Builder{
		file:  file,
		table: semantic.NewTable(),
	}
}

// Table exposes the symbol table, mainly for tests; it is transient state
// and not part of the produced AST.
func (b *Builder) Table() *semantic.Table {
	return b.table
}

func (b *Builder) lineOf(span source.Span) uint32 {
	return b.file.Position(span.Start).Line
}

func (b *Builder) declare(span source.Span, name string, kind semantic.EntryKind) error {
	prev, ok := b.table.Declare(name, kind)
	if !ok {
		return &semantic.DuplicateDefinitionError{
			Line: b.lineOf(span),
			Kind: kind,
			Name: name,
			Prev: prev,
		}
	}
	return nil
}

// Build walks the specification and returns the node of its first
// definition; the remaining top-level definitions hang off the sibling
// chain, in source order.
func (b *Builder) Build(spec *parser.Specification) (*TreeNode, error) {
	root, err := b.buildDefinition(spec.Defs[0])
	if err != nil {
		return nil, err
	}
	for _, def := range spec.Defs[1:] {
		node, err := b.buildDefinition(def)
		if err != nil {
			return nil, err
		}
		root.AddSib(node)
	}
	return root, nil
}

// definition -> type_decl ";" | module ";"
func (b *Builder) buildDefinition(def *parser.Definition) (*TreeNode, error) {
	root := NewNonTerminal(NodeDefinition)
	if def.TypeDecl != nil {
		child, err := b.buildTypeDecl(def.TypeDecl)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	} else {
		child, err := b.buildModule(def.Module)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}
	return root, nil
}

// module -> "module" ID "{" definition { definition } "}"
// The module name joins the current scope, then a new scope opens for the
// body and closes after the last nested definition.
func (b *Builder) buildModule(mod *parser.Module) (*TreeNode, error) {
	if err := b.declare(mod.Span, mod.Name, semantic.EntryModule); err != nil {
		return nil, err
	}
	b.table.EnterScope(mod.Name)
	defer b.table.ExitScope()

	root := NewNonTerminal(NodeModule)
	root.AddChild(NewTerminal(NodeID, mod.Name))
	for _, def := range mod.Defs {
		child, err := b.buildDefinition(def)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}
	return root, nil
}

// type_decl -> struct_type | "struct" ID
// A forward declaration registers the struct name without opening a scope:
// there are no members to nest.
func (b *Builder) buildTypeDecl(decl *parser.TypeDecl) (*TreeNode, error) {
	root := NewNonTerminal(NodeTypeDecl)
	if decl.Struct != nil {
		child, err := b.buildStructType(decl.Struct)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
		return root, nil
	}

	if err := b.declare(decl.Span, decl.ForwardName, semantic.EntryStructFwd); err != nil {
		return nil, err
	}
	b.table.MarkAsStruct(decl.ForwardName)
	root.AddChild(NewTerminal(NodeID, decl.ForwardName))
	return root, nil
}

// struct_type -> "struct" ID "{" member_list "}"
// The struct name joins the enclosing scope; its members live in a fresh
// scope that closes with the body.
func (b *Builder) buildStructType(st *parser.StructType) (*TreeNode, error) {
	if err := b.declare(st.Span, st.Name, semantic.EntryStruct); err != nil {
		return nil, err
	}
	b.table.EnterScope(st.Name)
	defer b.table.ExitScope()
	b.table.MarkAsStruct(st.Name)

	root := NewNonTerminal(NodeStructType)
	root.AddChild(NewTerminal(NodeID, st.Name))
	members, err := b.buildMemberList(st.Members)
	if err != nil {
		return nil, err
	}
	root.AddChild(members)
	return root, nil
}

// member_list -> { type_spec declarators ";" }
// Each member becomes a type-spec subtree with its declarators attached.
func (b *Builder) buildMemberList(list *parser.MemberList) (*TreeNode, error) {
	root := NewNonTerminal(NodeMemberList)
	for _, member := range list.Members {
		child, err := b.buildTypeSpec(member.Type)
		if err != nil {
			return nil, err
		}
		decls, err := b.buildDeclarators(member.Decls)
		if err != nil {
			return nil, err
		}
		child.AddChild(decls)
		root.AddChild(child)
	}
	return root, nil
}

// type_spec -> scoped_name | base_type_spec | struct_type
func (b *Builder) buildTypeSpec(spec *parser.TypeSpec) (*TreeNode, error) {
	root := NewNonTerminal(NodeTypeSpec)
	var child *TreeNode
	var err error
	switch {
	case spec.Scoped != nil:
		child, err = b.buildScopedName(spec.Scoped)
	case spec.Base != nil:
		child, err = b.buildBaseTypeSpec(spec.Base)
	case spec.Struct != nil:
		child, err = b.buildStructType(spec.Struct)
	}
	if err != nil {
		return nil, err
	}
	root.AddChild(child)
	return root, nil
}

// scoped_name -> ["::"] ID { "::" ID }
// The reference must resolve against a prior declaration.
func (b *Builder) buildScopedName(name *parser.ScopedName) (*TreeNode, error) {
	root := NewNonTerminal(NodeScopedName)
	for _, part := range name.Parts {
		root.AddChild(NewTerminal(NodeID, part))
	}

	qualified := name.Qualified()
	if !b.table.IsDefined(qualified) {
		return nil, &semantic.UndefinedError{
			Line: b.lineOf(name.Span),
			Name: qualified,
		}
	}
	return root, nil
}

// base_type_spec -> floating_pt_type | integer_type | "char" | "string" | "boolean"
func (b *Builder) buildBaseTypeSpec(base *parser.BaseTypeSpec) (*TreeNode, error) {
	root := NewNonTerminal(NodeBaseTypeSpec)
	switch {
	case base.Float != nil:
		child := NewNonTerminal(NodeFloatingPtType)
		child.AddChild(NewTerminal(NodeConst, base.Float.Text))
		root.AddChild(child)
	case base.Int != nil:
		root.AddChild(b.buildIntegerType(base.Int))
	default:
		root.AddChild(NewTerminal(NodeConst, base.Text))
	}
	return root, nil
}

func (b *Builder) buildIntegerType(intType *parser.IntegerType) *TreeNode {
	root := NewNonTerminal(NodeIntegerType)
	if intType.Signed != nil {
		child := NewNonTerminal(NodeSignedInt)
		child.AddChild(NewTerminal(NodeConst, intType.Signed.Text))
		root.AddChild(child)
	} else {
		child := NewNonTerminal(NodeUnsignedInt)
		child.AddChild(NewTerminal(NodeConst, intType.Unsigned.Text))
		root.AddChild(child)
	}
	return root
}

// declarators -> declarator { "," declarator }
func (b *Builder) buildDeclarators(decls *parser.Declarators) (*TreeNode, error) {
	root := NewNonTerminal(NodeDeclarators)
	for _, decl := range decls.Decls {
		child, err := b.buildDeclarator(decl)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}
	return root, nil
}

// declarator -> simple_declarator | array_declarator
func (b *Builder) buildDeclarator(decl *parser.Declarator) (*TreeNode, error) {
	root := NewNonTerminal(NodeDeclarator)
	var child *TreeNode
	var err error
	if decl.Array != nil {
		child, err = b.buildArrayDeclarator(decl.Array)
	} else {
		child, err = b.buildSimpleDeclarator(decl.Simple)
	}
	if err != nil {
		return nil, err
	}
	root.AddChild(child)
	return root, nil
}

// simple_declarator -> ID [ "=" or_expr ]
func (b *Builder) buildSimpleDeclarator(decl *parser.SimpleDeclarator) (*TreeNode, error) {
	if err := b.declare(decl.Span, decl.Name, semantic.EntryVariable); err != nil {
		return nil, err
	}

	root := NewNonTerminal(NodeSimpleDeclarator)
	root.AddChild(NewTerminal(NodeID, decl.Name))
	if decl.Default != nil {
		root.AddChild(b.buildOrExpr(decl.Default))
	}
	return root, nil
}

// array_declarator -> ID "[" or_expr "]" [ "=" exp_list ]
func (b *Builder) buildArrayDeclarator(decl *parser.ArrayDeclarator) (*TreeNode, error) {
	if err := b.declare(decl.Span, decl.Name, semantic.EntryArray); err != nil {
		return nil, err
	}

	root := NewNonTerminal(NodeArrayDeclarator)
	root.AddChild(NewTerminal(NodeID, decl.Name))
	root.AddChild(b.buildOrExpr(decl.Size))
	if decl.Init != nil {
		root.AddChild(b.buildExpList(decl.Init))
	}
	return root, nil
}

// exp_list -> "[" or_expr { "," or_expr } "]"
func (b *Builder) buildExpList(list *parser.ExpList) *TreeNode {
	root := NewNonTerminal(NodeExpList)
	for _, expr := range list.Exprs {
		root.AddChild(b.buildOrExpr(expr))
	}
	return root
}

// The six expression levels are purely structural. A level with no
// operator collapses to its single operand, so e.g. a bare literal array
// size does not grow a six-deep chain of wrapper nodes. The or/xor/and
// levels have one possible operator each and record operands only; the
// shift/add/mult levels wrap each extra operand under a terminal node
// carrying the operator text.

func (b *Builder) buildOrExpr(expr *parser.OrExpr) *TreeNode {
	if len(expr.Operands) == 1 {
		return b.buildXorExpr(expr.Operands[0])
	}
	root := NewNonTerminal(NodeOrExpr)
	for _, operand := range expr.Operands {
		root.AddChild(b.buildXorExpr(operand))
	}
	return root
}

func (b *Builder) buildXorExpr(expr *parser.XorExpr) *TreeNode {
	if len(expr.Operands) == 1 {
		return b.buildAndExpr(expr.Operands[0])
	}
	root := NewNonTerminal(NodeXorExpr)
	for _, operand := range expr.Operands {
		root.AddChild(b.buildAndExpr(operand))
	}
	return root
}

func (b *Builder) buildAndExpr(expr *parser.AndExpr) *TreeNode {
	if len(expr.Operands) == 1 {
		return b.buildShiftExpr(expr.Operands[0])
	}
	root := NewNonTerminal(NodeAndExpr)
	for _, operand := range expr.Operands {
		root.AddChild(b.buildShiftExpr(operand))
	}
	return root
}

func (b *Builder) buildShiftExpr(expr *parser.ShiftExpr) *TreeNode {
	if len(expr.Operands) == 1 {
		return b.buildAddExpr(expr.Operands[0])
	}
	root := NewNonTerminal(NodeShiftExpr)
	root.AddChild(b.buildAddExpr(expr.Operands[0]))
	for i, operand := range expr.Operands[1:] {
		op := NewTerminal(NodeShiftOp, expr.Ops[i])
		op.AddChild(b.buildAddExpr(operand))
		root.AddChild(op)
	}
	return root
}

func (b *Builder) buildAddExpr(expr *parser.AddExpr) *TreeNode {
	if len(expr.Operands) == 1 {
		return b.buildMultExpr(expr.Operands[0])
	}
	root := NewNonTerminal(NodeAddExpr)
	root.AddChild(b.buildMultExpr(expr.Operands[0]))
	for i, operand := range expr.Operands[1:] {
		op := NewTerminal(NodeAddOp, expr.Ops[i])
		op.AddChild(b.buildMultExpr(operand))
		root.AddChild(op)
	}
	return root
}

func (b *Builder) buildMultExpr(expr *parser.MultExpr) *TreeNode {
	if len(expr.Operands) == 1 {
		return b.buildUnaryExpr(expr.Operands[0])
	}
	root := NewNonTerminal(NodeMultExpr)
	root.AddChild(b.buildUnaryExpr(expr.Operands[0]))
	for i, operand := range expr.Operands[1:] {
		op := NewTerminal(NodeMultOp, expr.Ops[i])
		op.AddChild(b.buildUnaryExpr(operand))
		root.AddChild(op)
	}
	return root
}

func (b *Builder) buildUnaryExpr(expr *parser.UnaryExpr) *TreeNode {
	lit := b.buildLiteral(expr.Literal)
	if expr.Op == "" {
		return lit
	}
	root := NewNonTerminal(NodeUnaryExpr)
	root.AddChild(NewTerminal(NodeUnaryOp, expr.Op))
	root.AddChild(lit)
	return root
}

// literal -> INTEGER | FLOATING_PT | CHAR | STRING | BOOLEAN
// Literals are leaves tagged by their kind.
func (b *Builder) buildLiteral(lit *parser.Literal) *TreeNode {
	return NewTerminal(literalNodeType(lit.Kind), lit.Text)
}

func literalNodeType(kind token.Kind) NodeType {
	switch kind {
	case token.IntLit:
		return NodeInteger
	case token.FloatLit:
		return NodeFloatingPt
	case token.CharLit:
		return NodeChar
	case token.BoolLit:
		return NodeBoolean
	case token.StringLit:
		return NodeString
	default:
		return NodeInvalid
	}
}

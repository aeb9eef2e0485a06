package ast

// NodeKind distinguishes leaves from interior nodes.
type NodeKind uint8

const (
	// Terminal is a leaf holding literal source text.
	Terminal NodeKind = iota
	// NonTerminal is an interior node representing a grammar production.
	NonTerminal
)

func (k NodeKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	default:
		return "invalid"
	}
}

// NodeType is the closed tag naming which production or token class a node
// represents.
type NodeType uint8

const (
	NodeInvalid NodeType = iota

	// Productions
	NodeDefinition
	NodeModule
	NodeTypeDecl
	NodeStructType
	NodeMemberList
	NodeTypeSpec
	NodeScopedName
	NodeBaseTypeSpec
	NodeFloatingPtType
	NodeIntegerType
	NodeSignedInt
	NodeUnsignedInt
	NodeDeclarators
	NodeDeclarator
	NodeSimpleDeclarator
	NodeArrayDeclarator
	NodeExpList
	NodeOrExpr
	NodeXorExpr
	NodeAndExpr
	NodeShiftExpr
	NodeAddExpr
	NodeMultExpr
	NodeUnaryExpr

	// Token classes
	NodeID
	NodeConst
	NodeShiftOp
	NodeAddOp
	NodeMultOp
	NodeUnaryOp

	// Literal kinds
	NodeInteger
	NodeFloatingPt
	NodeChar
	NodeBoolean
	NodeString
)

func (t NodeType) String() string {
	switch t {
	case NodeDefinition:
		return "definition"
	case NodeModule:
		return "module"
	case NodeTypeDecl:
		return "type_decl"
	case NodeStructType:
		return "struct_type"
	case NodeMemberList:
		return "member_list"
	case NodeTypeSpec:
		return "type_spec"
	case NodeScopedName:
		return "scoped_name"
	case NodeBaseTypeSpec:
		return "base_type_spec"
	case NodeFloatingPtType:
		return "floating_pt_type"
	case NodeIntegerType:
		return "integer_type"
	case NodeSignedInt:
		return "signed_int"
	case NodeUnsignedInt:
		return "unsigned_int"
	case NodeDeclarators:
		return "declarators"
	case NodeDeclarator:
		return "declarator"
	case NodeSimpleDeclarator:
		return "simple_declarator"
	case NodeArrayDeclarator:
		return "array_declarator"
	case NodeExpList:
		return "exp_list"
	case NodeOrExpr:
		return "or_expr"
	case NodeXorExpr:
		return "xor_expr"
	case NodeAndExpr:
		return "and_expr"
	case NodeShiftExpr:
		return "shift_expr"
	case NodeAddExpr:
		return "add_expr"
	case NodeMultExpr:
		return "mult_expr"
	case NodeUnaryExpr:
		return "unary_expr"
	case NodeID:
		return "id"
	case NodeConst:
		return "const"
	case NodeShiftOp:
		return "shift_op"
	case NodeAddOp:
		return "add_op"
	case NodeMultOp:
		return "mult_op"
	case NodeUnaryOp:
		return "unary_op"
	case NodeInteger:
		return "integer"
	case NodeFloatingPt:
		return "floating_pt"
	case NodeChar:
		return "char"
	case NodeBoolean:
		return "boolean"
	case NodeString:
		return "string"
	default:
		return "invalid"
	}
}

package parser

import (
	"midl/internal/diag"
	"midl/internal/lexer"
	"midl/internal/source"
	"midl/internal/token"
)

// Options configures a Parser.
type Options struct {
	// Reporter additionally receives the syntax diagnostic; nil discards it.
	Reporter diag.Reporter
}

// Parser builds the concrete parse tree for one file. It stops at the
// first syntax error.
type Parser struct {
	file     *source.File
	lx       *lexer.Lexer
	reporter diag.Reporter
}

// New creates a parser reading tokens from lx.
func New(file *source.File, lx *lexer.Lexer, opts Options) *Parser {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Parser{file: file, lx: lx, reporter: reporter}
}

// ParseFile lexes and parses one file in a single call.
func ParseFile(file *source.File, opts Options) (*Specification, error) {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return New(file, lx, opts).Parse()
}

// Parse consumes the token stream and returns the specification root.
func (p *Parser) Parse() (*Specification, error) {
	return p.parseSpecification()
}

func (p *Parser) next() token.Token { return p.lx.Next() }
func (p *Parser) peek() token.Token { return p.lx.Peek() }

func (p *Parser) expect(kind token.Kind, code diag.Code, msg string) (token.Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, p.errorAt(code, tok.Span, msg)
	}
	return tok, nil
}

func (p *Parser) errorAt(code diag.Code, span source.Span, msg string) error {
	diag.ReportError(p.reporter, code, span, msg)
	return &SyntaxError{
		Code: code,
		Span: span,
		Line: p.file.Position(span.Start).Line,
		Msg:  msg,
	}
}

// specification -> definition { definition }
func (p *Parser) parseSpecification() (*Specification, error) {
	first := p.peek()
	if first.Kind == token.EOF {
		return nil, p.errorAt(diag.SynExpectDefinition, first.Span,
			"a specification needs at least one definition")
	}

	spec := &Specification{Span: first.Span}
	for p.peek().Kind != token.EOF {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		spec.Defs = append(spec.Defs, def)
	}
	return spec, nil
}

// definition -> type_decl ";" | module ";"
func (p *Parser) parseDefinition() (*Definition, error) {
	tok := p.peek()
	def := &Definition{Span: tok.Span}

	switch tok.Kind {
	case token.KwModule:
		mod, err := p.parseModule()
		if err != nil {
			return nil, err
		}
		def.Module = mod
	case token.KwStruct:
		decl, err := p.parseTypeDecl()
		if err != nil {
			return nil, err
		}
		def.TypeDecl = decl
	default:
		return nil, p.errorAt(diag.SynExpectDefinition, tok.Span,
			"expected 'module' or 'struct' to start a definition")
	}

	if _, err := p.expect(token.Semicolon, diag.SynExpectSemicolon,
		"expected ';' after definition"); err != nil {
		return nil, err
	}
	return def, nil
}

// module -> "module" ID "{" definition { definition } "}"
func (p *Parser) parseModule() (*Module, error) {
	kw := p.next() // 'module', checked by the caller
	name, err := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected module name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, diag.SynExpectLBrace,
		"expected '{' after module name"); err != nil {
		return nil, err
	}

	mod := &Module{Span: kw.Span, Name: name.Text}
	for p.peek().Kind != token.RBrace && p.peek().Kind != token.EOF {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		mod.Defs = append(mod.Defs, def)
	}
	if len(mod.Defs) == 0 {
		return nil, p.errorAt(diag.SynExpectDefinition, p.peek().Span,
			"a module body needs at least one definition")
	}
	if _, err := p.expect(token.RBrace, diag.SynExpectRBrace,
		"expected '}' closing module body"); err != nil {
		return nil, err
	}
	return mod, nil
}

// type_decl -> struct_type | "struct" ID
func (p *Parser) parseTypeDecl() (*TypeDecl, error) {
	kw := p.next() // 'struct', checked by the caller
	name, err := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected struct name")
	if err != nil {
		return nil, err
	}

	decl := &TypeDecl{Span: kw.Span}
	if p.peek().Kind != token.LBrace {
		// Forward declaration: no body, no scope.
		decl.ForwardName = name.Text
		return decl, nil
	}
	st, err := p.parseStructBody(kw, name)
	if err != nil {
		return nil, err
	}
	decl.Struct = st
	return decl, nil
}

// struct_type -> "struct" ID "{" member_list "}"
func (p *Parser) parseStructType() (*StructType, error) {
	kw := p.next() // 'struct', checked by the caller
	name, err := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected struct name")
	if err != nil {
		return nil, err
	}
	return p.parseStructBody(kw, name)
}

func (p *Parser) parseStructBody(kw, name token.Token) (*StructType, error) {
	if _, err := p.expect(token.LBrace, diag.SynExpectLBrace,
		"expected '{' after struct name"); err != nil {
		return nil, err
	}
	members, err := p.parseMemberList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace, diag.SynExpectRBrace,
		"expected '}' closing struct body"); err != nil {
		return nil, err
	}
	return &StructType{Span: kw.Span, Name: name.Text, Members: members}, nil
}

// member_list -> { type_spec declarators ";" }
func (p *Parser) parseMemberList() (*MemberList, error) {
	list := &MemberList{Span: p.peek().Span}
	for p.peek().Kind != token.RBrace && p.peek().Kind != token.EOF {
		spec, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		decls, err := p.parseDeclarators()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon, diag.SynExpectSemicolon,
			"expected ';' after member declarators"); err != nil {
			return nil, err
		}
		list.Members = append(list.Members, &Member{
			Span:  spec.Span,
			Type:  spec,
			Decls: decls,
		})
	}
	return list, nil
}

// type_spec -> scoped_name | base_type_spec | struct_type
func (p *Parser) parseTypeSpec() (*TypeSpec, error) {
	tok := p.peek()
	spec := &TypeSpec{Span: tok.Span}

	switch {
	case tok.Kind == token.Ident || tok.Kind == token.ColonColon:
		scoped, err := p.parseScopedName()
		if err != nil {
			return nil, err
		}
		spec.Scoped = scoped
	case tok.Kind == token.KwStruct:
		st, err := p.parseStructType()
		if err != nil {
			return nil, err
		}
		spec.Struct = st
	case tok.IsBaseType():
		base, err := p.parseBaseTypeSpec()
		if err != nil {
			return nil, err
		}
		spec.Base = base
	default:
		return nil, p.errorAt(diag.SynExpectTypeSpec, tok.Span,
			"expected a type specification")
	}
	return spec, nil
}

// scoped_name -> ["::"] ID { "::" ID }
func (p *Parser) parseScopedName() (*ScopedName, error) {
	first := p.peek()
	name := &ScopedName{Span: first.Span}

	if first.Kind == token.ColonColon {
		p.next()
		name.Rooted = true
	}
	id, err := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected identifier in scoped name")
	if err != nil {
		return nil, err
	}
	name.Parts = append(name.Parts, id.Text)

	for p.peek().Kind == token.ColonColon {
		p.next()
		id, err := p.expect(token.Ident, diag.SynExpectIdentifier,
			"expected identifier after '::'")
		if err != nil {
			return nil, err
		}
		name.Parts = append(name.Parts, id.Text)
	}
	return name, nil
}

// base_type_spec -> floating_pt_type | integer_type | "char" | "string" | "boolean"
func (p *Parser) parseBaseTypeSpec() (*BaseTypeSpec, error) {
	tok := p.next()
	base := &BaseTypeSpec{Span: tok.Span}

	switch tok.Kind {
	case token.KwChar, token.KwString, token.KwBoolean:
		base.Text = tok.Text

	case token.KwFloat, token.KwDouble:
		base.Float = &FloatingPtType{Span: tok.Span, Text: tok.Text}

	case token.KwLong:
		// "long double" is floating point; "long" and "long long" are
		// signed integers.
		switch p.peek().Kind {
		case token.KwDouble:
			p.next()
			base.Float = &FloatingPtType{Span: tok.Span, Text: "long double"}
		case token.KwLong:
			p.next()
			base.Int = &IntegerType{Span: tok.Span,
				Signed: &SignedInt{Span: tok.Span, Text: "long long"}}
		default:
			base.Int = &IntegerType{Span: tok.Span,
				Signed: &SignedInt{Span: tok.Span, Text: "long"}}
		}

	case token.KwShort, token.KwInt8, token.KwInt16, token.KwInt32, token.KwInt64:
		base.Int = &IntegerType{Span: tok.Span,
			Signed: &SignedInt{Span: tok.Span, Text: tok.Text}}

	case token.KwUint8, token.KwUint16, token.KwUint32, token.KwUint64:
		base.Int = &IntegerType{Span: tok.Span,
			Unsigned: &UnsignedInt{Span: tok.Span, Text: tok.Text}}

	case token.KwUnsigned:
		text, err := p.parseUnsignedTail()
		if err != nil {
			return nil, err
		}
		base.Int = &IntegerType{Span: tok.Span,
			Unsigned: &UnsignedInt{Span: tok.Span, Text: text}}

	default:
		return nil, p.errorAt(diag.SynExpectTypeSpec, tok.Span,
			"expected a base type keyword")
	}
	return base, nil
}

// parseUnsignedTail consumes the keywords after 'unsigned':
// "short" | "long" [ "long" ].
func (p *Parser) parseUnsignedTail() (string, error) {
	switch p.peek().Kind {
	case token.KwShort:
		p.next()
		return "unsigned short", nil
	case token.KwLong:
		p.next()
		if p.peek().Kind == token.KwLong {
			p.next()
			return "unsigned long long", nil
		}
		return "unsigned long", nil
	default:
		return "", p.errorAt(diag.SynExpectIntegerType, p.peek().Span,
			"expected 'short' or 'long' after 'unsigned'")
	}
}

// declarators -> declarator { "," declarator }
func (p *Parser) parseDeclarators() (*Declarators, error) {
	first := p.peek()
	decls := &Declarators{Span: first.Span}

	decl, err := p.parseDeclarator()
	if err != nil {
		return nil, err
	}
	decls.Decls = append(decls.Decls, decl)

	for p.peek().Kind == token.Comma {
		p.next()
		decl, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		decls.Decls = append(decls.Decls, decl)
	}
	return decls, nil
}

// declarator -> simple_declarator | array_declarator
func (p *Parser) parseDeclarator() (*Declarator, error) {
	name, err := p.expect(token.Ident, diag.SynExpectDeclarator,
		"expected declarator name")
	if err != nil {
		return nil, err
	}

	decl := &Declarator{Span: name.Span}
	if p.peek().Kind == token.LBracket {
		arr, err := p.parseArrayDeclaratorTail(name)
		if err != nil {
			return nil, err
		}
		decl.Array = arr
		return decl, nil
	}

	simple := &SimpleDeclarator{Span: name.Span, Name: name.Text}
	if p.peek().Kind == token.Assign {
		p.next()
		expr, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		simple.Default = expr
	}
	decl.Simple = simple
	return decl, nil
}

// array_declarator -> ID "[" or_expr "]" [ "=" exp_list ]
func (p *Parser) parseArrayDeclaratorTail(name token.Token) (*ArrayDeclarator, error) {
	p.next() // '[', checked by the caller
	size, err := p.parseOrExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBracket, diag.SynExpectRBracket,
		"expected ']' after array size"); err != nil {
		return nil, err
	}

	arr := &ArrayDeclarator{Span: name.Span, Name: name.Text, Size: size}
	if p.peek().Kind == token.Assign {
		p.next()
		init, err := p.parseExpList()
		if err != nil {
			return nil, err
		}
		arr.Init = init
	}
	return arr, nil
}

// exp_list -> "[" or_expr { "," or_expr } "]"
func (p *Parser) parseExpList() (*ExpList, error) {
	open, err := p.expect(token.LBracket, diag.SynUnexpectedToken,
		"expected '[' starting initializer list")
	if err != nil {
		return nil, err
	}

	list := &ExpList{Span: open.Span}
	expr, err := p.parseOrExpr()
	if err != nil {
		return nil, err
	}
	list.Exprs = append(list.Exprs, expr)

	for p.peek().Kind == token.Comma {
		p.next()
		expr, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		list.Exprs = append(list.Exprs, expr)
	}
	if _, err := p.expect(token.RBracket, diag.SynExpectRBracket,
		"expected ']' closing initializer list"); err != nil {
		return nil, err
	}
	return list, nil
}

// or_expr -> xor_expr { "|" xor_expr }
func (p *Parser) parseOrExpr() (*OrExpr, error) {
	first := p.peek()
	expr := &OrExpr{Span: first.Span}

	operand, err := p.parseXorExpr()
	if err != nil {
		return nil, err
	}
	expr.Operands = append(expr.Operands, operand)

	for p.peek().Kind == token.Pipe {
		p.next()
		operand, err := p.parseXorExpr()
		if err != nil {
			return nil, err
		}
		expr.Operands = append(expr.Operands, operand)
	}
	return expr, nil
}

// xor_expr -> and_expr { "^" and_expr }
func (p *Parser) parseXorExpr() (*XorExpr, error) {
	first := p.peek()
	expr := &XorExpr{Span: first.Span}

	operand, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	expr.Operands = append(expr.Operands, operand)

	for p.peek().Kind == token.Caret {
		p.next()
		operand, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		expr.Operands = append(expr.Operands, operand)
	}
	return expr, nil
}

// and_expr -> shift_expr { "&" shift_expr }
func (p *Parser) parseAndExpr() (*AndExpr, error) {
	first := p.peek()
	expr := &AndExpr{Span: first.Span}

	operand, err := p.parseShiftExpr()
	if err != nil {
		return nil, err
	}
	expr.Operands = append(expr.Operands, operand)

	for p.peek().Kind == token.Amp {
		p.next()
		operand, err := p.parseShiftExpr()
		if err != nil {
			return nil, err
		}
		expr.Operands = append(expr.Operands, operand)
	}
	return expr, nil
}

// shift_expr -> add_expr { (">>" | "<<") add_expr }
func (p *Parser) parseShiftExpr() (*ShiftExpr, error) {
	first := p.peek()
	expr := &ShiftExpr{Span: first.Span}

	operand, err := p.parseAddExpr()
	if err != nil {
		return nil, err
	}
	expr.Operands = append(expr.Operands, operand)

	for p.peek().Kind == token.Shl || p.peek().Kind == token.Shr {
		op := p.next()
		operand, err := p.parseAddExpr()
		if err != nil {
			return nil, err
		}
		expr.Ops = append(expr.Ops, op.Text)
		expr.Operands = append(expr.Operands, operand)
	}
	return expr, nil
}

// add_expr -> mult_expr { ("+" | "-") mult_expr }
func (p *Parser) parseAddExpr() (*AddExpr, error) {
	first := p.peek()
	expr := &AddExpr{Span: first.Span}

	operand, err := p.parseMultExpr()
	if err != nil {
		return nil, err
	}
	expr.Operands = append(expr.Operands, operand)

	for p.peek().Kind == token.Plus || p.peek().Kind == token.Minus {
		op := p.next()
		operand, err := p.parseMultExpr()
		if err != nil {
			return nil, err
		}
		expr.Ops = append(expr.Ops, op.Text)
		expr.Operands = append(expr.Operands, operand)
	}
	return expr, nil
}

// mult_expr -> unary_expr { ("*" | "/" | "%") unary_expr }
func (p *Parser) parseMultExpr() (*MultExpr, error) {
	first := p.peek()
	expr := &MultExpr{Span: first.Span}

	operand, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	expr.Operands = append(expr.Operands, operand)

	for p.peek().Kind == token.Star || p.peek().Kind == token.Slash || p.peek().Kind == token.Percent {
		op := p.next()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		expr.Ops = append(expr.Ops, op.Text)
		expr.Operands = append(expr.Operands, operand)
	}
	return expr, nil
}

// unary_expr -> [ ("-" | "+" | "~") ] literal
func (p *Parser) parseUnaryExpr() (*UnaryExpr, error) {
	first := p.peek()
	expr := &UnaryExpr{Span: first.Span}

	if first.IsUnaryOp() {
		op := p.next()
		expr.Op = op.Text
	}
	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	expr.Literal = lit
	return expr, nil
}

// literal -> INTEGER | FLOATING_PT | CHAR | STRING | BOOLEAN
func (p *Parser) parseLiteral() (*Literal, error) {
	tok := p.next()
	if !tok.IsLiteral() {
		return nil, p.errorAt(diag.SynExpectLiteral, tok.Span,
			"expected a literal")
	}
	return &Literal{Span: tok.Span, Kind: tok.Kind, Text: tok.Text}, nil
}

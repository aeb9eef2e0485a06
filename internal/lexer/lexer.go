package lexer

import (
	"midl/internal/diag"
	"midl/internal/source"
	"midl/internal/token"
)

// Lexer turns MIDL source bytes into a token stream.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token // 1-token lookahead buffer
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: opts.reporter(),
	}
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the stream, including the trailing EOF token.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// skipTrivia consumes whitespace and // and /* */ comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || (b1 != '/' && b1 != '*') {
				return
			}
			if b1 == '/' {
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			} else {
				lx.skipBlockComment()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '*' && lx.cursor.Eat('/') {
			return
		}
	}
	diag.ReportError(lx.reporter, diag.LexUnterminatedBlockComment,
		lx.cursor.SpanFrom(mark), "unterminated block comment")
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(mark)
	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(mark), Text: text}
}

// scanNumber scans integer (decimal, 0x hex) and floating-point
// (fraction and/or exponent) literals.
func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits := 0
			for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
				digits++
			}
			if digits == 0 {
				diag.ReportError(lx.reporter, diag.LexBadNumber,
					lx.cursor.SpanFrom(mark), "hex literal needs at least one digit")
				return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
			}
			return token.Token{Kind: token.IntLit, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
		}
	}

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else if lx.cursor.Peek() == '.' {
		// Trailing dot with no fraction digits, e.g. "3."
		kind = token.FloatLit
		lx.cursor.Bump()
	}
	if ch := lx.cursor.Peek(); ch == 'e' || ch == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
			lx.cursor.Bump()
		}
		digits := 0
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		if digits == 0 {
			diag.ReportError(lx.reporter, diag.LexBadNumber,
				lx.cursor.SpanFrom(mark), "exponent needs at least one digit")
			return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
		}
	}

	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
}

func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		ch := lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if ch == '"' {
			return token.Token{Kind: token.StringLit, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
		}
		if ch == '\n' {
			break
		}
	}
	diag.ReportError(lx.reporter, diag.LexUnterminatedString,
		lx.cursor.SpanFrom(mark), "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
}

func (lx *Lexer) scanChar() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		ch := lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if ch == '\'' {
			return token.Token{Kind: token.CharLit, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
		}
		if ch == '\n' {
			break
		}
	}
	diag.ReportError(lx.reporter, diag.LexUnterminatedChar,
		lx.cursor.SpanFrom(mark), "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	mark := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	mk := func(kind token.Kind) token.Token {
		return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(mark), Text: lx.cursor.TextFrom(mark)}
	}

	switch ch {
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case ';':
		return mk(token.Semicolon)
	case ',':
		return mk(token.Comma)
	case '=':
		return mk(token.Assign)
	case '|':
		return mk(token.Pipe)
	case '^':
		return mk(token.Caret)
	case '&':
		return mk(token.Amp)
	case '+':
		return mk(token.Plus)
	case '-':
		return mk(token.Minus)
	case '*':
		return mk(token.Star)
	case '/':
		return mk(token.Slash)
	case '%':
		return mk(token.Percent)
	case '~':
		return mk(token.Tilde)
	case ':':
		if lx.cursor.Eat(':') {
			return mk(token.ColonColon)
		}
		diag.ReportError(lx.reporter, diag.LexBadScopeOperator,
			lx.cursor.SpanFrom(mark), "expected '::', found a single ':'")
		return mk(token.Invalid)
	case '<':
		if lx.cursor.Eat('<') {
			return mk(token.Shl)
		}
	case '>':
		if lx.cursor.Eat('>') {
			return mk(token.Shr)
		}
	}

	diag.ReportError(lx.reporter, diag.LexUnknownChar,
		lx.cursor.SpanFrom(mark), "unknown character "+string(rune(ch)))
	return mk(token.Invalid)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

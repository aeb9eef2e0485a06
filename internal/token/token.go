package token

import (
	"midl/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, character, or
// string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit, BoolLit:
		return true
	default:
		return false
	}
}

// IsBaseType reports whether the token starts a base_type_spec production.
func (t Token) IsBaseType() bool {
	switch t.Kind {
	case KwFloat, KwDouble, KwShort, KwLong, KwChar, KwString, KwBoolean,
		KwUnsigned, KwInt8, KwInt16, KwInt32, KwInt64,
		KwUint8, KwUint16, KwUint32, KwUint64:
		return true
	default:
		return false
	}
}

// IsUnaryOp reports whether the token can open a unary_expr.
func (t Token) IsUnaryOp() bool {
	switch t.Kind {
	case Plus, Minus, Tilde:
		return true
	default:
		return false
	}
}

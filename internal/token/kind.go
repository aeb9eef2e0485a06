package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwFloat represents the 'float' base type keyword.
	KwFloat // float
	// KwDouble represents the 'double' base type keyword.
	KwDouble // double
	// KwShort represents the 'short' base type keyword.
	KwShort // short
	// KwLong represents the 'long' base type keyword.
	KwLong // long
	// KwChar represents the 'char' base type keyword.
	KwChar // char
	// KwString represents the 'string' base type keyword.
	KwString // string
	// KwBoolean represents the 'boolean' base type keyword.
	KwBoolean // boolean
	// KwUnsigned represents the 'unsigned' modifier keyword.
	KwUnsigned // unsigned
	// KwInt8 represents the 'int8' base type keyword.
	KwInt8 // int8
	// KwInt16 represents the 'int16' base type keyword.
	KwInt16 // int16
	// KwInt32 represents the 'int32' base type keyword.
	KwInt32 // int32
	// KwInt64 represents the 'int64' base type keyword.
	KwInt64 // int64
	// KwUint8 represents the 'uint8' base type keyword.
	KwUint8 // uint8
	// KwUint16 represents the 'uint16' base type keyword.
	KwUint16 // uint16
	// KwUint32 represents the 'uint32' base type keyword.
	KwUint32 // uint32
	// KwUint64 represents the 'uint64' base type keyword.
	KwUint64 // uint64

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a floating-point literal token.
	FloatLit
	// CharLit represents a character literal token.
	CharLit
	// StringLit represents a string literal token.
	StringLit
	// BoolLit represents a TRUE/FALSE literal token.
	BoolLit

	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Assign represents '='.
	Assign // =
	// ColonColon represents the scope operator '::'.
	ColonColon // ::
	// Pipe represents '|'.
	Pipe // |
	// Caret represents '^'.
	Caret // ^
	// Amp represents '&'.
	Amp // &
	// Shl represents '<<'.
	Shl // <<
	// Shr represents '>>'.
	Shr // >>
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Tilde represents '~'.
	Tilde // ~
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case KwModule:
		return "module"
	case KwStruct:
		return "struct"
	case KwFloat:
		return "float"
	case KwDouble:
		return "double"
	case KwShort:
		return "short"
	case KwLong:
		return "long"
	case KwChar:
		return "char"
	case KwString:
		return "string"
	case KwBoolean:
		return "boolean"
	case KwUnsigned:
		return "unsigned"
	case KwInt8:
		return "int8"
	case KwInt16:
		return "int16"
	case KwInt32:
		return "int32"
	case KwInt64:
		return "int64"
	case KwUint8:
		return "uint8"
	case KwUint16:
		return "uint16"
	case KwUint32:
		return "uint32"
	case KwUint64:
		return "uint64"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case CharLit:
		return "CharLit"
	case StringLit:
		return "StringLit"
	case BoolLit:
		return "BoolLit"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case Assign:
		return "="
	case ColonColon:
		return "::"
	case Pipe:
		return "|"
	case Caret:
		return "^"
	case Amp:
		return "&"
	case Shl:
		return "<<"
	case Shr:
		return ">>"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Percent:
		return "%"
	case Tilde:
		return "~"
	default:
		return "Unknown"
	}
}

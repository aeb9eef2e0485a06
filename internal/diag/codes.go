package diag

// Code identifies a diagnostic category. Ranges: 1xxx lexical, 2xxx
// syntactic, 3xxx semantic, 7xxx I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexBadScopeOperator         Code = 1006

	// Syntactic
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectSemicolon   Code = 2003
	SynExpectLBrace      Code = 2004
	SynExpectRBrace      Code = 2005
	SynExpectRBracket    Code = 2006
	SynExpectTypeSpec    Code = 2007
	SynExpectDeclarator  Code = 2008
	SynExpectLiteral     Code = 2009
	SynExpectDefinition  Code = 2010
	SynExpectIntegerType Code = 2011

	// Semantic
	SemaDuplicateDefinition Code = 3001
	SemaUndefinedName       Code = 3002

	// I/O
	IOLoadFileError Code = 7001
)

func (c Code) String() string {
	switch c {
	case LexUnknownChar:
		return "LexUnknownChar"
	case LexUnterminatedString:
		return "LexUnterminatedString"
	case LexUnterminatedChar:
		return "LexUnterminatedChar"
	case LexUnterminatedBlockComment:
		return "LexUnterminatedBlockComment"
	case LexBadNumber:
		return "LexBadNumber"
	case LexBadScopeOperator:
		return "LexBadScopeOperator"
	case SynUnexpectedToken:
		return "SynUnexpectedToken"
	case SynExpectIdentifier:
		return "SynExpectIdentifier"
	case SynExpectSemicolon:
		return "SynExpectSemicolon"
	case SynExpectLBrace:
		return "SynExpectLBrace"
	case SynExpectRBrace:
		return "SynExpectRBrace"
	case SynExpectRBracket:
		return "SynExpectRBracket"
	case SynExpectTypeSpec:
		return "SynExpectTypeSpec"
	case SynExpectDeclarator:
		return "SynExpectDeclarator"
	case SynExpectLiteral:
		return "SynExpectLiteral"
	case SynExpectDefinition:
		return "SynExpectDefinition"
	case SynExpectIntegerType:
		return "SynExpectIntegerType"
	case SemaDuplicateDefinition:
		return "SemaDuplicateDefinition"
	case SemaUndefinedName:
		return "SemaUndefinedName"
	case IOLoadFileError:
		return "IOLoadFileError"
	default:
		return "UnknownCode"
	}
}

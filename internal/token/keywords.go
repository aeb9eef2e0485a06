package token

var keywords = map[string]Kind{
	"module":   KwModule,
	"struct":   KwStruct,
	"float":    KwFloat,
	"double":   KwDouble,
	"short":    KwShort,
	"long":     KwLong,
	"char":     KwChar,
	"string":   KwString,
	"boolean":  KwBoolean,
	"unsigned": KwUnsigned,
	"int8":     KwInt8,
	"int16":    KwInt16,
	"int32":    KwInt32,
	"int64":    KwInt64,
	"uint8":    KwUint8,
	"uint16":   KwUint16,
	"uint32":   KwUint32,
	"uint64":   KwUint64,
	// Boolean literals are keyword-like; both IDL-style and lowercase
	// spellings are accepted.
	"TRUE":  BoolLit,
	"FALSE": BoolLit,
	"true":  BoolLit,
	"false": BoolLit,
}

// LookupKeyword maps an identifier spelling to its keyword kind, if any.
// Matching is case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

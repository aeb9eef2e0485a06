package semantic

// EntryKind classifies what a declared name denotes.
type EntryKind uint8

const (
	EntryInvalid EntryKind = iota
	// EntryModule is a module declaration.
	EntryModule
	// EntryStruct is a struct with a full member body.
	EntryStruct
	// EntryStructFwd is a forward-declared struct (no body, no scope).
	EntryStructFwd
	// EntryVariable is a simple field declarator.
	EntryVariable
	// EntryArray is an array field declarator.
	EntryArray
)

func (k EntryKind) String() string {
	switch k {
	case EntryModule:
		return "module"
	case EntryStruct, EntryStructFwd:
		return "struct"
	case EntryVariable:
		return "variable"
	case EntryArray:
		return "array"
	default:
		return "invalid"
	}
}

// IsStruct reports whether the kind denotes a struct type, full or forward.
func (k EntryKind) IsStruct() bool {
	return k == EntryStruct || k == EntryStructFwd
}

// entry is one declared name within a scope.
type entry struct {
	Kind EntryKind
	// Struct is set by MarkAsStruct, distinguishing type names from
	// variable/array/module names for type-aware extensions.
	Struct bool
}

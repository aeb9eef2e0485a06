package semantic

import "fmt"

// DuplicateDefinitionError reports a name redeclared within the same scope.
type DuplicateDefinitionError struct {
	Line uint32
	Kind EntryKind // kind of the declaration being attempted
	Name string
	Prev EntryKind // kind of the declaration already holding the name
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("[line %d] %s %s has been defined before", e.Line, e.Kind, e.Name)
}

// UndefinedError reports a scoped-name reference with no visible prior
// declaration.
type UndefinedError struct {
	Line uint32
	Name string // the unresolved qualified name
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("[line %d] %s was used before defined", e.Line, e.Name)
}

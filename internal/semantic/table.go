package semantic

import (
	"strings"
)

// scope maps declared names to their entries within one lexical region.
type scope map[string]*entry

// Table is the scope stack plus the qualified-name registry for one
// compilation unit. It is exclusively owned by the single builder driving
// one traversal; create a fresh Table per unit for concurrent builds.
type Table struct {
	scopes []scope
	// path holds the names of the currently open module/struct bodies,
	// outermost first. len(path) == len(scopes)-1: the global scope is
	// anonymous.
	path []string
	// registry records every fully-qualified name declared so far. It is
	// append-only for the lifetime of the unit, so qualified references
	// into already-closed scopes keep resolving.
	registry map[string]EntryKind
}

// NewTable creates a table with the global scope open.
func NewTable() *Table {
	return &Table{
		scopes:   []scope{make(scope)},
		registry: make(map[string]EntryKind),
	}
}

// Declare inserts name into the innermost scope with the given kind.
// If the name already exists in that exact scope, nothing is inserted and
// ok is false with prev naming the existing declaration's kind. Only the
// innermost scope is checked: shadowing an enclosing scope is permitted.
func (t *Table) Declare(name string, kind EntryKind) (prev EntryKind, ok bool) {
	current := t.scopes[len(t.scopes)-1]
	if existing, dup := current[name]; dup {
		return existing.Kind, false
	}
	current[name] = &entry{Kind: kind}
	t.registry[t.qualify(name)] = kind
	return EntryInvalid, true
}

// MarkAsStruct records that an already-declared name denotes a struct type.
// The name is searched innermost-first across the open scopes; marking an
// undeclared name is a no-op. Uniqueness is neither checked nor mutated.
func (t *Table) MarkAsStruct(name string) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if e, ok := t.scopes[i][name]; ok {
			e.Struct = true
			return
		}
	}
}

// EnterScope pushes a new empty scope for the body of the named module or
// struct. Must be paired 1:1 with ExitScope.
func (t *Table) EnterScope(name string) {
	t.scopes = append(t.scopes, make(scope))
	t.path = append(t.path, name)
}

// ExitScope pops the innermost scope, discarding the names declared only
// within it. Registry entries survive: the popped names stay reachable by
// their qualified spelling.
func (t *Table) ExitScope() {
	if len(t.scopes) <= 1 {
		panic("semantic: ExitScope without matching EnterScope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
	t.path = t.path[:len(t.path)-1]
}

// Depth reports how many scopes are currently open, the global one included.
func (t *Table) Depth() int {
	return len(t.scopes)
}

// IsDefined resolves a possibly ::-qualified name against everything
// declared so far. A leading :: anchors the lookup at the root; otherwise
// the reference is tried against the current enclosing path first and then
// against each shorter prefix of it down to the root. Forward references
// fail by construction: the registry only ever holds prior declarations.
func (t *Table) IsDefined(qualifiedName string) bool {
	name := qualifiedName
	if rooted := strings.HasPrefix(name, "::"); rooted {
		_, ok := t.registry[name[2:]]
		return ok
	}
	for i := len(t.path); i >= 0; i-- {
		candidate := name
		if i > 0 {
			candidate = strings.Join(t.path[:i], "::") + "::" + name
		}
		if _, ok := t.registry[candidate]; ok {
			return true
		}
	}
	return false
}

// Lookup returns the kind registered for a fully-qualified name, resolving
// relative references the same way IsDefined does.
func (t *Table) Lookup(qualifiedName string) (EntryKind, bool) {
	name := qualifiedName
	if strings.HasPrefix(name, "::") {
		kind, ok := t.registry[name[2:]]
		return kind, ok
	}
	for i := len(t.path); i >= 0; i-- {
		candidate := name
		if i > 0 {
			candidate = strings.Join(t.path[:i], "::") + "::" + name
		}
		if kind, ok := t.registry[candidate]; ok {
			return kind, true
		}
	}
	return EntryInvalid, false
}

// qualify joins the current path with name.
func (t *Table) qualify(name string) string {
	if len(t.path) == 0 {
		return name
	}
	return strings.Join(t.path, "::") + "::" + name
}

// Package semantic implements the scoped symbol table the AST builder
// drives during its single pass over a parsed compilation unit.
//
// The language forbids forward references, so construction and checking
// interleave: a name is visible from the point of its declaration onward,
// and only there. Duplicate detection looks at the innermost scope alone
// (shadowing an outer name is legal); qualified-name resolution consults an
// append-only registry of every fully-qualified name declared so far, which
// keeps names reachable through their enclosing path even after their scope
// has been closed.
package semantic

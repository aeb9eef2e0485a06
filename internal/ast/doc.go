// Package ast defines the abstract syntax tree for MIDL compilation units
// and the builder that constructs it from a parsed file.
//
// The builder walks the concrete parse tree exactly once, depth-first and
// left-to-right, performing name declaration and resolution against a
// semantic.Table as it goes. Because the language has no forward
// references, declaration order equals visibility order and the single
// interleaved pass is sufficient: there is no separate resolution phase.
package ast

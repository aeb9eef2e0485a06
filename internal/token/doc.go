// Package token defines the lexical token kinds of the MIDL interface
// definition language.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Base type names (short, long, float, ...) are keywords, not
//     identifiers: the grammar references them directly.
//   - TRUE/FALSE (and their lowercase spellings) lex as BoolLit, never as
//     identifiers.
package token

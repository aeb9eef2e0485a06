// Package diag carries diagnostics from the lexer, parser, and semantic
// checker to the CLI. Lexical and syntactic phases accumulate into a Bag
// through a Reporter; semantic errors are fatal-first and arrive as typed
// errors that the driver converts into single diagnostics.
package diag

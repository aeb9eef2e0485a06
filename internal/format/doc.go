// Package format renders built ASTs as indented, deterministic text.
// The output is stable across runs and platforms, so it doubles as the
// golden format in tests and as the `midl ast` dump.
package format

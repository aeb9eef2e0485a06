// Package driver orchestrates the front end for whole files and
// directories: load, lex, parse, build, and report. It owns the disk
// cache that lets unchanged files skip the pipeline entirely.
package driver

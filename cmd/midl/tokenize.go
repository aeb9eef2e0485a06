package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"midl/internal/diag"
	"midl/internal/driver"
	"midl/internal/source"
	"midl/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.idl",
	Short: "Tokenize a MIDL source file",
	Long:  `Tokenize breaks a MIDL source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	file := fileSet.Get(id)

	tokens, bag := driver.Tokenize(file, maxDiagnostics(cmd))
	if bag.Len() > 0 {
		r := diag.Renderer{Out: os.Stderr, FileSet: fileSet, Color: useColor(cmd, os.Stderr)}
		r.RenderBag(bag)
	}

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		pos := file.Position(tok.Span.Start)
		fmt.Fprintf(out, "%4d:%-4d %-12s %q\n", pos.Line, pos.Col, tok.Kind, tok.Text)
	}

	if bag.HasErrors() {
		return fmt.Errorf("%s: tokenization produced errors", file.Path)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"midl/internal/diag"
	"midl/internal/driver"
	"midl/internal/format"
	"midl/internal/source"
)

var (
	astIndentWidth int
	astUseTabs     bool
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] file.idl",
	Short: "Build and dump the AST of a MIDL source file",
	Long:  `Ast parses a MIDL source file, runs name checking, and prints the resulting tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAst,
}

func init() {
	astCmd.Flags().IntVar(&astIndentWidth, "indent", 2, "spaces per indentation level")
	astCmd.Flags().BoolVar(&astUseTabs, "tabs", false, "indent with tabs")
}

func runAst(cmd *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	res := driver.CheckFile(fileSet, id, driver.Options{MaxDiagnostics: maxDiagnostics(cmd)})
	if !res.Ok() {
		r := diag.Renderer{Out: os.Stderr, FileSet: fileSet, Color: useColor(cmd, os.Stderr)}
		r.RenderBag(res.Bag)
		return fmt.Errorf("%s: check failed", res.Path)
	}

	dump := format.PrintTree(res.AST, format.Options{
		IndentWidth: astIndentWidth,
		UseTabs:     astUseTabs,
	})
	_, err = cmd.OutOrStdout().Write(dump)
	return err
}

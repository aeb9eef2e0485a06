package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"midl/internal/diag"
	"midl/internal/driver"
)

var (
	checkJobs    int
	checkNoCache bool
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [files or directories...]",
	Short: "Check MIDL files for syntax and name-resolution errors",
	Long: `Check parses every named file and verifies name declarations and
references. With no arguments the files come from the nearest midl.toml.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "parallel check jobs (0 = all CPUs)")
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "disable the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	targets := args
	if len(targets) == 0 {
		manifest, found, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !found {
			return errors.New(noMidlTomlMessage)
		}
		targets = manifest.checkTargets()
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Jobs:           checkJobs,
	}
	if !checkNoCache {
		cache, err := driver.OpenDiskCache("midl")
		if err == nil {
			// The cache is an optimization; fall through without one when
			// the cache directory is unavailable.
			opts.Cache = cache
		}
	}

	fileSet, results, err := driver.CheckPaths(cmd.Context(), targets, opts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return errors.New("no .idl files found")
	}

	renderer := diag.Renderer{Out: os.Stderr, FileSet: fileSet, Color: useColor(cmd, os.Stderr)}
	failed := 0
	for i := range results {
		res := &results[i]
		if res.Bag.Len() > 0 {
			renderer.RenderBag(res.Bag)
		}
		if !res.Ok() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "checked %d files, no errors\n", len(results))
	return nil
}

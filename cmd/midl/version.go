package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"midl/internal/version"
)

var versionShowFull bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show midl build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "midl %s\n", version.Version)
		if versionShowFull {
			if version.GitCommit != "" {
				fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
			}
			if version.BuildDate != "" {
				fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
			}
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include git commit and build date")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-bookmarks/internal/resolve"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, build and arXiv API endpoint",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeVersion(cmd.OutOrStdout())
	},
}

func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "arxiv-bookmarks %s\n", version)
	if rev := buildRevision(); rev != "" {
		fmt.Fprintf(w, "  commit:  %s\n", rev)
	}
	fmt.Fprintf(w, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  api:     %s\n", resolve.DefaultAPIBase)
}

// buildRevision returns the short VCS revision stamped by the go tool, with
// a "+dirty" suffix for modified trees.
func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev, dirty string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = "+dirty"
			}
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev == "" {
		return ""
	}
	return rev + dirty
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

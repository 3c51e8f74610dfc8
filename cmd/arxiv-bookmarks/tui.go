package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-bookmarks/internal/resolve"
	"github.com/pdiddy/arxiv-bookmarks/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Pick a folder and rename it interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, folders, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		// Diagnostics would tear through the alternate screen.
		quiet := slog.New(slog.DiscardHandler)

		resolver := resolve.NewArxivResolver(cfg.Arxiv, quiet)
		return tui.Run(tui.New(ctx, folders, store, resolver, cfg.Rename, quiet))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

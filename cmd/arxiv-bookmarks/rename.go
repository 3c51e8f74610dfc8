package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-bookmarks/internal/bookmarks"
	"github.com/pdiddy/arxiv-bookmarks/internal/config"
	"github.com/pdiddy/arxiv-bookmarks/internal/rename"
	"github.com/pdiddy/arxiv-bookmarks/internal/report"
	"github.com/pdiddy/arxiv-bookmarks/internal/resolve"
)

var errNoFolders = errors.New("no bookmark folders found")

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename placeholder arXiv bookmarks in one folder",
	Long: `Rename looks at the direct children of the selected folder (sub-folders are
not entered). For each arXiv link whose title is still a bare identifier it
waits the configured delay, fetches the paper title from the arXiv API and
writes it back. Every bookmark gets one log line; lookups and writes that
fail are logged and the run continues.`,
	RunE: runRename,
}

func init() {
	renameCmd.Flags().String("folder", "", "folder ID or path (see 'arxiv-bookmarks folders')")
	renameCmd.Flags().Duration("delay", rename.DefaultDelay, "fixed wait before each arXiv lookup")
	renameCmd.Flags().Bool("dry-run", false, "fetch titles without changing any bookmark")
	renameCmd.Flags().String("report", "", "write a YAML report of the run to this file")
	renameCmd.MarkFlagRequired("folder")

	viper.BindPFlag(config.KeyDelay, renameCmd.Flags().Lookup("delay"))
	viper.BindPFlag(config.KeyDryRun, renameCmd.Flags().Lookup("dry-run"))

	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	folderRef, _ := cmd.Flags().GetString("folder")
	reportPath, _ := cmd.Flags().GetString("report")
	ctx := cmd.Context()

	store, folders, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(folders) == 0 {
		return errNoFolders
	}
	folder, err := bookmarks.FindFolder(folders, folderRef)
	if err != nil {
		return err
	}
	logger.Debug("renaming folder", "id", folder.ID, "path", folder.Path, "dry_run", cfg.Rename.DryRun)

	resolver := resolve.NewArxivResolver(cfg.Arxiv, logger)
	driver := rename.NewDriver(store, resolver, report.NewConsole(os.Stdout), cfg.Rename, logger)

	result, runErr := driver.Run(ctx, folder.ID)
	fmt.Printf("\nBatch summary: %d modified, %d skipped, %d failed (total: %d)\n",
		result.Modified, result.Skipped, result.Failed, result.Total)

	if reportPath != "" {
		if err := report.WriteYAML(result, reportPath); err != nil {
			return errors.Join(runErr, err)
		}
		fmt.Fprintln(os.Stderr, "Report written to", reportPath)
	}
	return runErr
}

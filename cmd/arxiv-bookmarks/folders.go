package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-bookmarks/internal/report"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List bookmark folders",
	Long: `Folders lists every bookmark folder, parents before children, with the
path used to select it in rename. Either the ID or the path can be passed to
rename --folder.`,
	RunE: runFolders,
}

func init() {
	foldersCmd.Flags().Bool("json", false, "output folders as JSON")

	rootCmd.AddCommand(foldersCmd)
}

func runFolders(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	store, folders, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(folders)
	}
	if len(folders) == 0 {
		fmt.Println("No bookmark folders found")
		return nil
	}
	fmt.Println(report.FolderTable(folders))
	return nil
}

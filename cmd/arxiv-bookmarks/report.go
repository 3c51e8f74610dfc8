package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-bookmarks/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <file.yaml>",
	Short: "Show a run report written by rename --report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := report.ReadYAML(args[0])
		if err != nil {
			return err
		}
		fmt.Println(report.OutcomeTable(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

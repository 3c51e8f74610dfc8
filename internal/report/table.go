// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// FolderTable renders folders as an ID/path table.
func FolderTable(folders []types.Folder) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Path"})
	for _, f := range folders {
		path := f.Path
		if path == "" {
			path = "(root)"
		}
		tw.AppendRow(table.Row{f.ID, path})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})
	return tw.Render()
}

// OutcomeTable renders the per-bookmark outcomes of a run.
func OutcomeTable(result types.RunResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "arXiv", "Status", "Title"})
	for _, o := range result.Outcomes {
		title := o.OldTitle
		if o.NewTitle != "" {
			title = o.NewTitle
		}
		tw.AppendRow(table.Row{o.BookmarkID, o.ArxivID, string(o.Status), title})
	}
	tw.AppendFooter(table.Row{"", "", "modified", result.Modified})
	return tw.Render()
}

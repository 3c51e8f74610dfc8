// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

func TestConsole_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Progress(0, 2)
	c.Log(types.LogEntry{Severity: types.SeverityInfo, Message: "Found 2 arXiv bookmarks in the selected folder"})
	c.Progress(1, 2)
	c.Log(types.LogEntry{Severity: types.SeveritySuccess, Message: "  Updated to: A Title"})
	c.Progress(2, 2)
	c.Finish(types.RunResult{Total: 2, Modified: 1}, "Completed! Modified 1 bookmarks.")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"[0/2] Found 2 arXiv bookmarks in the selected folder",
		"[1/2]   Updated to: A Title",
		"2 / 2 bookmarks processed",
		"Completed! Modified 1 bookmarks.",
	}, lines)
}

func TestSeverityStyle(t *testing.T) {
	assert.Equal(t, SuccessStyle.GetForeground(), SeverityStyle(types.SeveritySuccess).GetForeground())
	assert.Equal(t, ErrorStyle.GetForeground(), SeverityStyle(types.SeverityError).GetForeground())
	assert.Equal(t, InfoStyle.GetForeground(), SeverityStyle("unknown").GetForeground())
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	in := types.RunResult{
		FolderID: "4",
		Total:    2,
		Modified: 1,
		Skipped:  1,
		Outcomes: []types.Outcome{
			{BookmarkID: "5", URL: "https://arxiv.org/abs/1706.03762", ArxivID: "1706.03762",
				OldTitle: "1706.03762", NewTitle: "Attention Is All You Need", Status: types.OutcomeUpdated},
			{BookmarkID: "6", URL: "https://arxiv.org/abs/2101.12345", ArxivID: "2101.12345",
				OldTitle: "Hand Named", Status: types.OutcomeHumanTitle},
		},
	}
	require.NoError(t, WriteYAML(in, path))

	out, err := ReadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteYAML_BadPath(t *testing.T) {
	err := WriteYAML(types.RunResult{}, filepath.Join(t.TempDir(), "missing", "report.yaml"))
	assert.ErrorContains(t, err, "writing run report")
}

func TestFolderTable(t *testing.T) {
	out := FolderTable([]types.Folder{
		{ID: "0", Path: ""},
		{ID: "4", Title: "Papers", Path: "Bookmarks bar > Papers"},
	})
	assert.Contains(t, out, "(root)")
	assert.Contains(t, out, "Bookmarks bar > Papers")
	assert.Contains(t, out, "ID")
}

func TestOutcomeTable(t *testing.T) {
	out := OutcomeTable(types.RunResult{
		Modified: 1,
		Outcomes: []types.Outcome{
			{BookmarkID: "5", ArxivID: "1706.03762", OldTitle: "1706.03762", NewTitle: "Attention Is All You Need", Status: types.OutcomeUpdated},
		},
	})
	assert.Contains(t, out, "Attention Is All You Need")
	assert.Contains(t, out, "updated")
}

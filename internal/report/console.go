// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// Console writes a run as plain lines, one per log entry, prefixed with the
// progress counter. Colors are used only on a terminal.
type Console struct {
	w        io.Writer
	colorize bool
	done     int
	total    int
}

// NewConsole returns a console reporter for w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, colorize: shouldColorize(w)}
}

// Progress records the counter shown in front of subsequent lines.
func (c *Console) Progress(done, total int) {
	c.done, c.total = done, total
}

// Log prints one entry.
func (c *Console) Log(e types.LogEntry) {
	line := fmt.Sprintf("[%d/%d] %s", c.done, c.total, e.Message)
	if c.colorize {
		line = SeverityStyle(e.Severity).Render(line)
	}
	fmt.Fprintln(c.w, line)
}

// Finish prints the final counter and status line.
func (c *Console) Finish(result types.RunResult, status string) {
	fmt.Fprintf(c.w, "%d / %d bookmarks processed\n", result.Total, result.Total)
	if c.colorize {
		status = StatusStyle.Render(status)
	}
	fmt.Fprintln(c.w, status)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

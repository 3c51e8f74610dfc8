package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

type progressMsg struct{ done, total int }

type logMsg struct{ entry types.LogEntry }

type finishMsg struct {
	result types.RunResult
	status string
}

// runDoneMsg follows the last event of a run, once the driver is idle again.
type runDoneMsg struct{ err error }

// chanReporter forwards driver events to the program through one channel,
// so the UI sees them in the order the driver produced them.
type chanReporter struct {
	ch chan tea.Msg
}

func newChanReporter() *chanReporter {
	return &chanReporter{ch: make(chan tea.Msg, 64)}
}

func (r *chanReporter) Progress(done, total int) { r.ch <- progressMsg{done, total} }

func (r *chanReporter) Log(e types.LogEntry) { r.ch <- logMsg{e} }

func (r *chanReporter) Finish(result types.RunResult, status string) {
	r.ch <- finishMsg{result, status}
}

// listen delivers the next driver event.
func (r *chanReporter) listen() tea.Cmd {
	return func() tea.Msg {
		return <-r.ch
	}
}

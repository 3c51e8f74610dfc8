// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive front end: pick a folder, start a run, and
// watch progress and the per-bookmark log.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/arxiv-bookmarks/internal/rename"
	"github.com/pdiddy/arxiv-bookmarks/internal/report"
	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

const (
	maxVisibleFolders = 10
	minLogHeight      = 5
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(report.Accent).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(report.Accent).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(report.Info)
	logBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(report.Info)
)

// Model is the bubbletea model of the renamer screen. Control enablement is
// derived from the driver's RunState.
type Model struct {
	ctx      context.Context
	driver   *rename.Driver
	reporter *chanReporter

	folders []types.Folder
	cursor  int

	progress progress.Model
	log      viewport.Model
	lines    []string
	done     int
	total    int
	status   string
	started  bool

	width int
}

// New builds the model. The driver is created here so that its reporter
// feeds this screen.
func New(ctx context.Context, folders []types.Folder, store rename.Store, resolver rename.TitleResolver, cfg types.RenameConfig, logger *slog.Logger) Model {
	rep := newChanReporter()
	return Model{
		ctx:      ctx,
		driver:   rename.NewDriver(store, resolver, rep, cfg, logger),
		reporter: rep,
		folders:  folders,
		progress: progress.New(progress.WithDefaultGradient()),
		log:      viewport.New(80, minLogHeight*2),
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts listening for driver events.
func (m Model) Init() tea.Cmd {
	return m.reporter.listen()
}

// controlsEnabled reports whether folder selection and start are usable.
func (m Model) controlsEnabled() bool {
	return m.driver.State() == types.Idle && len(m.folders) > 0
}

// Update handles key presses, resizes and driver events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(10, msg.Width-32)
		m.log.Width = max(20, msg.Width-2)
		m.log.Height = max(minLogHeight, msg.Height-maxVisibleFolders-12)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case progressMsg:
		m.done, m.total = msg.done, msg.total
		return m, m.reporter.listen()

	case logMsg:
		line := report.SeverityStyle(msg.entry.Severity).Render(msg.entry.Message)
		m.lines = append(m.lines, line)
		m.log.SetContent(strings.Join(m.lines, "\n"))
		m.log.GotoBottom()
		return m, m.reporter.listen()

	case finishMsg:
		m.status = msg.status
		return m, m.reporter.listen()

	case runDoneMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
		}
		return m, m.reporter.listen()
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Quit) {
		return m, tea.Quit
	}
	if !m.controlsEnabled() {
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, Keys.Down):
		if m.cursor < len(m.folders)-1 {
			m.cursor++
		}
	case key.Matches(msg, Keys.Start):
		if err := m.driver.Begin(); err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		m.lines = nil
		m.log.SetContent("")
		m.status = ""
		m.done, m.total = 0, 0
		m.started = true
		return m, m.startRun(m.folders[m.cursor].ID)
	}
	return m, nil
}

// startRun executes the run already claimed by Begin inside the command
// goroutine. Progress reaches the model through the reporter channel, and so
// does the completion notice, so it is never reordered ahead of log lines.
func (m Model) startRun(folderID string) tea.Cmd {
	driver, rep, ctx := m.driver, m.reporter, m.ctx
	return func() tea.Msg {
		_, err := driver.Execute(ctx, folderID)
		rep.ch <- runDoneMsg{err}
		return nil
	}
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("arXiv Bookmark Renamer"))
	b.WriteString("\n")

	enabled := m.controlsEnabled()
	if len(m.folders) == 0 {
		b.WriteString(mutedStyle.Render("No bookmark folders found"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.folderList(enabled))
	}
	b.WriteString("\n")

	switch {
	case len(m.folders) == 0:
		b.WriteString(mutedStyle.Render("q quit"))
	case enabled:
		b.WriteString(mutedStyle.Render("↑/↓ select · enter start · q quit"))
	default:
		b.WriteString(mutedStyle.Render("renaming… · q quit"))
	}
	b.WriteString("\n\n")

	if m.started {
		percent := 0.0
		if m.total > 0 {
			percent = float64(m.done) / float64(m.total)
		} else if m.status != "" {
			percent = 1
		}
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString(fmt.Sprintf("  %d / %d bookmarks processed\n", m.done, m.total))
		if m.status != "" {
			b.WriteString(report.StatusStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(logBoxStyle.Render(m.log.View()))
	}

	return b.String()
}

// folderList renders a window of folders around the cursor.
func (m Model) folderList(enabled bool) string {
	start := 0
	if m.cursor >= maxVisibleFolders {
		start = m.cursor - maxVisibleFolders + 1
	}
	end := min(start+maxVisibleFolders, len(m.folders))

	var b strings.Builder
	for i := start; i < end; i++ {
		label := m.folders[i].Path
		if label == "" {
			label = "(root)"
		}
		switch {
		case i == m.cursor && enabled:
			b.WriteString(selectedStyle.Render("> " + label))
		case enabled:
			b.WriteString("  " + label)
		default:
			b.WriteString(mutedStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	if len(m.folders) > maxVisibleFolders {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.folders))))
		b.WriteString("\n")
	}
	return b.String()
}

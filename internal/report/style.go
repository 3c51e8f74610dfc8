// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders rename runs for people: styled log lines, folder
// tables and YAML run reports.
package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

var (
	Info    = lipgloss.Color("#9CA3AF") // Gray
	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red
	Accent  = lipgloss.Color("#7C3AED") // Purple

	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error).Bold(true)
	StatusStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)

// SeverityStyle returns the style for a log line of the given severity.
func SeverityStyle(sev types.Severity) lipgloss.Style {
	switch sev {
	case types.SeveritySuccess:
		return SuccessStyle
	case types.SeverityError:
		return ErrorStyle
	default:
		return InfoStyle
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RunState is the batch driver's lifecycle. UI controls are enabled only
// while the driver is Idle.
type RunState int32

const (
	Idle RunState = iota
	Running
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "idle"
	}
}

// Severity styles a log line.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// LogEntry is one line of the per-run log, in processing order.
type LogEntry struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// OutcomeStatus records what happened to a single bookmark.
type OutcomeStatus string

const (
	OutcomeUpdated      OutcomeStatus = "updated"
	OutcomeWouldUpdate  OutcomeStatus = "would-update"
	OutcomeNoIdentifier OutcomeStatus = "skipped-no-identifier"
	OutcomeHumanTitle   OutcomeStatus = "skipped-human-title"
	OutcomeLookupFailed OutcomeStatus = "lookup-failed"
	OutcomeUpdateFailed OutcomeStatus = "update-failed"
)

// Outcome is the per-bookmark record of a run.
type Outcome struct {
	BookmarkID string        `json:"bookmark_id" yaml:"bookmark_id"`
	URL        string        `json:"url" yaml:"url"`
	ArxivID    string        `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`
	OldTitle   string        `json:"old_title" yaml:"old_title"`
	NewTitle   string        `json:"new_title,omitempty" yaml:"new_title,omitempty"`
	Status     OutcomeStatus `json:"status" yaml:"status"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunResult summarizes one batch run over a folder.
type RunResult struct {
	FolderID string    `json:"folder_id" yaml:"folder_id"`
	Total    int       `json:"total" yaml:"total"`
	Modified int       `json:"modified" yaml:"modified"`
	Skipped  int       `json:"skipped" yaml:"skipped"`
	Failed   int       `json:"failed" yaml:"failed"`
	DryRun   bool      `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// HasFailures reports whether any lookup or update failed.
func (r RunResult) HasFailures() bool {
	return r.Failed > 0
}

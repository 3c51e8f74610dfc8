// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename replaces placeholder arXiv bookmark titles with the paper
// titles reported by the arXiv API.
//
// A run covers the direct children of one folder, strictly one bookmark at a
// time. A bookmark is only renamed when its URL names an arXiv identifier and
// its current title still looks like a bare identifier; titles a user has
// already edited are left alone.
package rename

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pdiddy/arxiv-bookmarks/internal/arxivid"
	"github.com/pdiddy/arxiv-bookmarks/internal/httputil"
	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// DefaultDelay is the fixed pause before each metadata lookup.
const DefaultDelay = 1 * time.Second

// ErrRunning is returned when Run is called while a run is in progress.
var ErrRunning = errors.New("a rename run is already in progress")

// Store is the subset of a bookmark store the driver uses.
type Store interface {
	Children(ctx context.Context, folderID string) ([]types.Bookmark, error)
	UpdateTitle(ctx context.Context, id, title string) error
}

// TitleResolver looks up a paper title by arXiv identifier.
type TitleResolver interface {
	Title(ctx context.Context, arxivID string) (string, error)
}

// Reporter receives progress and log lines in processing order.
type Reporter interface {
	Progress(done, total int)
	Log(entry types.LogEntry)
	Finish(result types.RunResult, status string)
}

// Driver runs the per-folder rename batch.
type Driver struct {
	Store    Store
	Resolver TitleResolver
	Reporter Reporter
	Logger   *slog.Logger

	// Delay is waited before every lookup. Zero disables the wait.
	Delay time.Duration

	// DryRun resolves titles but never calls UpdateTitle.
	DryRun bool

	state atomic.Int32
}

// NewDriver returns a driver with the given collaborators and cfg settings.
func NewDriver(store Store, resolver TitleResolver, reporter Reporter, cfg types.RenameConfig, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Driver{
		Store:    store,
		Resolver: resolver,
		Reporter: reporter,
		Logger:   logger,
		Delay:    cfg.Delay,
		DryRun:   cfg.DryRun,
	}
}

// State reports whether a run is in progress.
func (d *Driver) State() types.RunState {
	return types.RunState(d.state.Load())
}

// Begin claims the driver for a run, moving it from Idle to Running. It
// returns ErrRunning when a run is already in progress. A successful Begin
// must be followed by Execute, which releases the driver when it returns.
func (d *Driver) Begin() error {
	if !d.state.CompareAndSwap(int32(types.Idle), int32(types.Running)) {
		return ErrRunning
	}
	return nil
}

// Run claims the driver and processes the direct children of folderID. See
// Execute.
func (d *Driver) Run(ctx context.Context, folderID string) (types.RunResult, error) {
	if err := d.Begin(); err != nil {
		return types.RunResult{}, err
	}
	return d.Execute(ctx, folderID)
}

// Execute processes the direct children of folderID on a driver claimed by
// Begin. Per-bookmark failures are reported and counted but never abort the
// batch. An error is returned only when the children cannot be listed or ctx
// is cancelled; in the last case the partial result is returned with it.
func (d *Driver) Execute(ctx context.Context, folderID string) (types.RunResult, error) {
	defer d.state.Store(int32(types.Idle))

	result := types.RunResult{FolderID: folderID, DryRun: d.DryRun, Outcomes: []types.Outcome{}}

	children, err := d.Store.Children(ctx, folderID)
	if err != nil {
		return result, fmt.Errorf("listing folder %s: %w", folderID, err)
	}

	var candidates []types.Bookmark
	for _, b := range children {
		if b.URL != "" && strings.Contains(b.URL, arxivid.Domain) {
			candidates = append(candidates, b)
		}
	}
	total := len(candidates)
	result.Total = total

	d.log(types.SeverityInfo, "Found %d arXiv bookmarks in the selected folder", total)
	d.Reporter.Progress(0, total)

	for i, b := range candidates {
		d.Reporter.Progress(i, total)

		outcome, err := d.process(ctx, b)
		if err != nil {
			d.Logger.Warn("rename run interrupted", "folder", folderID, "processed", i, "error", err)
			d.Reporter.Finish(result, fmt.Sprintf("Interrupted. Modified %d bookmarks.", result.Modified))
			return result, err
		}
		result.Outcomes = append(result.Outcomes, outcome)
		switch outcome.Status {
		case types.OutcomeUpdated:
			result.Modified++
		case types.OutcomeNoIdentifier, types.OutcomeHumanTitle, types.OutcomeWouldUpdate:
			result.Skipped++
		default:
			result.Failed++
		}
	}

	d.finish(&result, total)
	return result, nil
}

// process handles one bookmark. The returned error is non-nil only when ctx
// ends during the pacing wait.
func (d *Driver) process(ctx context.Context, b types.Bookmark) (types.Outcome, error) {
	outcome := types.Outcome{BookmarkID: b.ID, URL: b.URL, OldTitle: b.Title}

	id, ok := arxivid.Extract(b.URL)
	if !ok {
		d.log(types.SeverityInfo, "  Skipping: %q - couldn't extract arXiv ID", b.Title)
		outcome.Status = types.OutcomeNoIdentifier
		return outcome, nil
	}
	outcome.ArxivID = id

	if !arxivid.LooksLikeID(b.Title) {
		d.log(types.SeverityInfo, "  Skipping: %q - doesn't appear to be an arXiv ID", b.Title)
		outcome.Status = types.OutcomeHumanTitle
		return outcome, nil
	}

	d.log(types.SeverityInfo, "Processing: %s (%s)", b.Title, id)

	if err := httputil.Wait(ctx, d.Delay); err != nil {
		return outcome, err
	}

	start := time.Now()
	title, err := d.Resolver.Title(ctx, id)
	d.Logger.Debug("lookup finished", "id", id, "elapsed", time.Since(start), "error", err)
	if err != nil {
		d.log(types.SeverityError, "Error fetching title for arXiv ID %s: %v", id, err)
		d.log(types.SeverityError, "  Couldn't fetch title for %s", id)
		outcome.Status = types.OutcomeLookupFailed
		outcome.Error = err.Error()
		return outcome, nil
	}
	outcome.NewTitle = title

	if d.DryRun {
		d.log(types.SeverityInfo, "  Would update to: %s", title)
		outcome.Status = types.OutcomeWouldUpdate
		return outcome, nil
	}

	if err := d.Store.UpdateTitle(ctx, b.ID, title); err != nil {
		d.log(types.SeverityError, "  Error updating bookmark: %v", err)
		outcome.Status = types.OutcomeUpdateFailed
		outcome.Error = err.Error()
		return outcome, nil
	}

	d.log(types.SeveritySuccess, "  Updated to: %s", title)
	outcome.Status = types.OutcomeUpdated
	return outcome, nil
}

func (d *Driver) finish(result *types.RunResult, total int) {
	d.Reporter.Progress(total, total)
	status := fmt.Sprintf("Completed! Modified %d bookmarks.", result.Modified)
	if result.DryRun {
		status = fmt.Sprintf("Dry run complete. %d bookmarks would be renamed.", countStatus(result.Outcomes, types.OutcomeWouldUpdate))
	}
	d.Reporter.Finish(*result, status)
}

type nopReporter struct{}

func (nopReporter) Progress(int, int)              {}
func (nopReporter) Log(types.LogEntry)             {}
func (nopReporter) Finish(types.RunResult, string) {}

func (d *Driver) log(sev types.Severity, format string, args ...any) {
	d.Reporter.Log(types.LogEntry{Severity: sev, Message: fmt.Sprintf(format, args...)})
}

func countStatus(outcomes []types.Outcome, status types.OutcomeStatus) int {
	n := 0
	for _, o := range outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

package engine

import (
	"time"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/planner"
)

// Status is the per-entry outcome of an apply pass.
type Status string

const (
	// StatusUnchanged means the proposed path equals the original path;
	// the entry was skipped in both phases.
	StatusUnchanged Status = "unchanged"

	// StatusStaged means the entry sits at its temporary name. Only seen
	// by progress observers mid-apply.
	StatusStaged Status = "staged"

	// StatusCommitted means the entry reached its final name.
	StatusCommitted Status = "committed"

	// StatusFailed means the entry's commit rename failed; the file is at
	// the temporary path recorded in the result.
	StatusFailed Status = "failed"
)

// Phase identifies which half of the two-phase rename an event belongs to.
type Phase string

const (
	PhaseStage  Phase = "stage"
	PhaseCommit Phase = "commit"
)

// ProgressEvent is emitted after each individual rename call.
type ProgressEvent struct {
	// Phase is the current phase.
	Phase Phase

	// Index is the plan item the rename belonged to.
	Index int

	// Done counts rename calls performed so far in this apply.
	Done int

	// Total is the number of rename calls the apply will perform.
	Total int
}

// ProgressFunc receives progress events. Called synchronously between
// rename calls; implementations must not block for long.
type ProgressFunc func(ProgressEvent)

// ApplyRequest is the input to Engine.Apply.
type ApplyRequest struct {
	// Plan is the rename plan to execute.
	Plan *planner.Plan

	// Progress, if set, receives one event per entry per phase.
	Progress ProgressFunc
}

// EntryResult is the per-entry outcome.
type EntryResult struct {
	// Index is the plan item position.
	Index int

	// OldPath is the entry's original path.
	OldPath string

	// NewPath is the proposed final path.
	NewPath string

	// TempPath is the staging path. Empty once committed; still set when
	// Status is StatusFailed so the user can recover the file.
	TempPath string

	// Status is the final status of the entry.
	Status Status

	// RolledBack reports that the entry was staged and then restored to
	// its original name because the batch aborted.
	RolledBack bool

	// Err is the entry's commit error, if any.
	Err error

	// FinishedAt is when the entry reached its final status.
	FinishedAt time.Time
}

// ApplyResult is the output of Engine.Apply.
type ApplyResult struct {
	// Entries holds one result per plan item, in plan order.
	Entries []EntryResult

	// Committed counts entries renamed to their final path.
	Committed int

	// Unchanged counts entries skipped as no-ops.
	Unchanged int

	// Failed counts entries left at their temporary path.
	Failed int
}

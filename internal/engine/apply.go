package engine

import (
	"context"
	"fmt"
)

// Algorithm steps:
//  1. Preflight: re-run conflict detection; refuse a conflicted plan
//  2. Phase 1 (stage): rename every changed entry to a unique temporary
//     name in its own directory
//  3. Phase 2 (commit): rename temporary names to final names
//  4. Report per-entry results and counts
//
// A phase 1 failure aborts the batch: staged entries are restored in
// reverse order and a StageError is returned. A phase 2 failure is
// per-entry: the entry keeps its temporary name and the remaining staged
// entries are still committed, since phase 1 already proved the targets
// are free.
func (e *Engine) Apply(ctx context.Context, req *ApplyRequest) (*ApplyResult, error) {
	if req == nil || req.Plan == nil {
		return nil, ErrNoPlan
	}
	plan := req.Plan

	set, err := e.checker.Detect(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan: %w", err)
	}
	if !set.Empty() {
		return nil, fmt.Errorf("%w: %d conflicting targets", ErrConflict, len(set.Conflicts))
	}

	result := &ApplyResult{Entries: make([]EntryResult, plan.Len())}
	var changed []int
	for i, item := range plan.Items {
		result.Entries[i] = EntryResult{
			Index:   i,
			OldPath: item.Entry.Path,
			NewPath: item.TargetPath,
		}
		if item.Unchanged() {
			result.Entries[i].Status = StatusUnchanged
			result.Entries[i].FinishedAt = e.clock.Now()
			result.Unchanged++
			continue
		}
		changed = append(changed, i)
	}

	total := 2 * len(changed)
	done := 0
	emit := func(phase Phase, index int) {
		done++
		if req.Progress != nil {
			req.Progress(ProgressEvent{Phase: phase, Index: index, Done: done, Total: total})
		}
	}

	// Suffix entropy comes from the clock so a crashed run's leftovers are
	// recognizable and a concurrent run cannot reuse them.
	suffix := fmt.Sprintf(".~qbrt-%d~", e.clock.Now().UnixNano())

	// Phase 1: stage.
	var staged []int
	for _, i := range changed {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, e.rollback(result, staged, &StageError{Err: ctxErr})
		}

		item := plan.Items[i]
		tmp, err := e.tempPath(item.Entry.Path, suffix)
		if err != nil {
			return result, e.rollback(result, staged, &StageError{Path: item.Entry.Path, Err: err})
		}
		if err := e.fs.Rename(item.Entry.Path, tmp); err != nil {
			return result, e.rollback(result, staged, &StageError{Path: item.Entry.Path, Err: err})
		}

		result.Entries[i].TempPath = tmp
		result.Entries[i].Status = StatusStaged
		staged = append(staged, i)
		emit(PhaseStage, i)
	}

	// Phase 2: commit. Not interrupted by cancellation: every target was
	// free at the end of staging, and stopping here would strand files at
	// temporary names for no safety gain.
	for _, i := range staged {
		entry := &result.Entries[i]
		if err := e.fs.Rename(entry.TempPath, entry.NewPath); err != nil {
			entry.Status = StatusFailed
			entry.Err = &CommitError{Path: entry.NewPath, TempPath: entry.TempPath, Err: err}
			entry.FinishedAt = e.clock.Now()
			result.Failed++
			emit(PhaseCommit, i)
			continue
		}
		entry.Status = StatusCommitted
		entry.TempPath = ""
		entry.FinishedAt = e.clock.Now()
		result.Committed++
		emit(PhaseCommit, i)
	}

	return result, nil
}

// rollback restores staged entries to their original names, newest first.
// Restore failures are recorded on stageErr rather than dropped.
func (e *Engine) rollback(result *ApplyResult, staged []int, stageErr *StageError) error {
	for k := len(staged) - 1; k >= 0; k-- {
		i := staged[k]
		entry := &result.Entries[i]
		if err := e.fs.Rename(entry.TempPath, entry.OldPath); err != nil {
			stageErr.RollbackFailures = append(stageErr.RollbackFailures, entry.TempPath)
			entry.Status = StatusFailed
			entry.Err = err
			entry.FinishedAt = e.clock.Now()
			result.Failed++
			continue
		}
		entry.TempPath = ""
		entry.Status = StatusUnchanged
		entry.RolledBack = true
		entry.FinishedAt = e.clock.Now()
	}
	return stageErr
}

// tempPath derives a staging path next to orig, probing until the name is
// unused.
func (e *Engine) tempPath(orig, suffix string) (string, error) {
	candidate := orig + suffix
	for n := 0; ; n++ {
		exists, err := e.fs.Exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe staging name %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%s%d", orig, suffix, n)
	}
}

package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConflict indicates the plan still had conflicts when Apply was
	// called. No filesystem mutation has happened.
	ErrConflict = errors.New("conflict detected")

	// ErrNoPlan indicates Apply was called without a plan.
	ErrNoPlan = errors.New("no rename plan")
)

// StageError is the batch-level failure of phase 1. Already-staged entries
// have been restored to their original names where possible; paths that
// could not be restored are listed in RollbackFailures.
type StageError struct {
	// Path is the original path whose staging rename failed. Empty when
	// staging was aborted by cancellation rather than a rename failure.
	Path string

	// Err is the underlying rename or cancellation error.
	Err error

	// RollbackFailures lists temporary paths left behind because the
	// restore rename failed too.
	RollbackFailures []string
}

func (e *StageError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "staging failed for %s: %v", e.Path, e.Err)
	} else {
		fmt.Fprintf(&b, "staging aborted: %v", e.Err)
	}
	if len(e.RollbackFailures) > 0 {
		fmt.Fprintf(&b, " (rollback left temporary files: %s)", strings.Join(e.RollbackFailures, ", "))
	}
	return b.String()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// CommitError is the per-entry failure of phase 2. The file remains at
// TempPath and needs manual resolution; the rest of the batch continues.
type CommitError struct {
	// Path is the final path the commit rename targeted.
	Path string

	// TempPath is where the file still sits.
	TempPath string

	// Err is the underlying rename error.
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed for %s (file left at %s): %v", e.Path, e.TempPath, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Package engine executes rename plans.
//
// The engine is the orchestration layer between the UI surfaces (CLI and
// GUI) and the filesystem. It re-checks conflicts as a precondition, then
// performs the two-phase rename: every changed file is first staged under
// a unique temporary name in its own directory, and only once the whole
// batch is staged are the temporary names committed to the final ones.
// Staging is what makes permutations safe — renaming A to B's current name
// before B moves away would otherwise destroy B.
//
// Key components:
//   - Engine: holds the injected filesystem and clock
//   - Apply: two-phase execution with rollback and per-entry results
//   - ListFiles: directory loading for the UI layers
package engine

import (
	"fmt"
	"path/filepath"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/clock"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/fsops"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/natsort"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/planner"
)

// Engine executes rename plans against a filesystem.
type Engine struct {
	fs      fsops.FS
	clock   clock.Clock
	checker *planner.ConflictChecker
}

// New creates an Engine with the given dependencies.
func New(fs fsops.FS, clk clock.Clock) *Engine {
	return &Engine{
		fs:      fs,
		clock:   clk,
		checker: planner.NewConflictChecker(fs),
	}
}

// DetectConflicts runs conflict detection for plan. The UI layers use it
// to drive row highlighting and to gate the rename action.
func (e *Engine) DetectConflicts(plan *planner.Plan) (*planner.ConflictSet, error) {
	return e.checker.Detect(plan)
}

// ListFiles returns the regular files of dir as absolute paths in natural
// order. Subdirectories and symlinks are skipped; the tool renames plain
// files only.
func (e *Engine) ListFiles(dir string) ([]string, error) {
	dirEntries, err := e.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		names = append(names, de.Name())
	}
	natsort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

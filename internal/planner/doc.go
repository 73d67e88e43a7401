// Package planner turns a loaded file list and a rename configuration into
// an executable rename plan.
//
// A Plan pairs every input entry with its proposed output path, in display
// order (the order decides counter assignment). The ConflictChecker then
// flags proposed paths that collide with each other or with files on disk
// that are not part of the batch; a plan with conflicts must never reach
// the executor.
//
// Key responsibilities:
//   - Split input paths into directory, base name and extension
//   - Drive name generation per entry with the shared configuration
//   - Detect duplicate targets, would-overwrite targets and invalid names
package planner

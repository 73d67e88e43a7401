package planner

import (
	"fmt"
	"sort"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/fsops"
)

// Conflict reasons.
const (
	ReasonDuplicate   = "duplicate"    // two or more entries propose the same path
	ReasonOverwrite   = "overwrite"    // target exists and is not part of the batch
	ReasonInvalidName = "invalid-name" // proposed name cannot be stored
)

// Conflict describes one offending proposed output path.
type Conflict struct {
	// Path is the proposed output path.
	Path string

	// Reason is one of the Reason* constants.
	Reason string

	// Detail is a human-readable explanation for display.
	Detail string

	// Indexes are the plan item positions affected, in plan order.
	Indexes []int
}

// ConflictSet holds the conflicts detected for one plan.
type ConflictSet struct {
	Conflicts []Conflict

	paths map[string]struct{}
}

// Empty reports whether no conflicts were detected.
func (s *ConflictSet) Empty() bool {
	return len(s.Conflicts) == 0
}

// Contains reports whether path is among the conflicting targets.
// The UI uses this for row highlighting.
func (s *ConflictSet) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

func (s *ConflictSet) add(c Conflict) {
	if s.paths == nil {
		s.paths = make(map[string]struct{})
	}
	s.Conflicts = append(s.Conflicts, c)
	s.paths[c.Path] = struct{}{}
}

// ConflictChecker detects conflicts in rename plans.
type ConflictChecker struct {
	fs fsops.FS
}

// NewConflictChecker creates a ConflictChecker backed by fs.
func NewConflictChecker(fs fsops.FS) *ConflictChecker {
	return &ConflictChecker{fs: fs}
}

// Detect returns the conflicts of plan. It runs in a single pass over the
// plan building a target→indexes map, then one existence check per unique
// proposed path. Filesystem errors abort detection; a plan whose targets
// cannot be checked is not safe to execute.
func (c *ConflictChecker) Detect(plan *Plan) (*ConflictSet, error) {
	set := &ConflictSet{}

	byTarget := make(map[string][]int, plan.Len())
	order := make([]string, 0, plan.Len())
	for i, item := range plan.Items {
		if _, seen := byTarget[item.TargetPath]; !seen {
			order = append(order, item.TargetPath)
		}
		byTarget[item.TargetPath] = append(byTarget[item.TargetPath], i)

		if err := c.fs.ValidateFileName(item.NewFullName()); err != nil {
			set.add(Conflict{
				Path:    item.TargetPath,
				Reason:  ReasonInvalidName,
				Detail:  err.Error(),
				Indexes: []int{i},
			})
		}
	}

	owned := plan.OriginalPaths()

	for _, target := range order {
		indexes := byTarget[target]

		if len(indexes) > 1 {
			set.add(Conflict{
				Path:    target,
				Reason:  ReasonDuplicate,
				Detail:  fmt.Sprintf("%d entries map to the same name", len(indexes)),
				Indexes: indexes,
			})
			continue
		}

		// A target owned by the batch is freed during staging; checking the
		// disk for it would flag every no-op and every name swap.
		if _, ok := owned[target]; ok {
			continue
		}

		exists, err := c.fs.Exists(target)
		if err != nil {
			return nil, fmt.Errorf("failed to check target %s: %w", target, err)
		}
		if exists {
			set.add(Conflict{
				Path:    target,
				Reason:  ReasonOverwrite,
				Detail:  "a file outside the batch already has this name",
				Indexes: indexes,
			})
		}
	}

	sort.Slice(set.Conflicts, func(i, j int) bool {
		return set.Conflicts[i].Indexes[0] < set.Conflicts[j].Indexes[0]
	})

	return set, nil
}

package planner

import (
	"errors"
	"os"
	"testing"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/fsops"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/namegen"
)

// mockFS is an in-memory fsops.FS for conflict detection tests.
type mockFS struct {
	exists    map[string]bool
	existsErr map[string]error
}

func newMockFS() *mockFS {
	return &mockFS{
		exists:    make(map[string]bool),
		existsErr: make(map[string]error),
	}
}

func (m *mockFS) setExists(path string, exists bool) {
	m.exists[path] = exists
}

func (m *mockFS) Exists(path string) (bool, error) {
	if err, ok := m.existsErr[path]; ok {
		return false, err
	}
	return m.exists[path], nil
}

func (m *mockFS) Lstat(path string) (os.FileInfo, error) {
	if m.exists[path] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFS) ReadDir(path string) ([]os.DirEntry, error) {
	return nil, os.ErrNotExist
}

func (m *mockFS) Rename(oldpath, newpath string) error {
	return nil
}

func (m *mockFS) ValidateFileName(name string) error {
	return (&fsops.RealFS{}).ValidateFileName(name)
}

func buildTestPlan(t *testing.T, cfg namegen.Config, paths ...string) *Plan {
	t.Helper()
	entries := make([]Entry, 0, len(paths))
	for i, p := range paths {
		entries = append(entries, NewEntry(p, i))
	}
	plan, err := BuildPlan(entries, cfg)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	return plan
}

func TestDetect_NoConflicts(t *testing.T) {
	cfg := namegen.Config{
		NameMask:         "pet_",
		KeepOriginalExt:  true,
		CounterEnabled:   true,
		CounterStart:     1,
		CounterIncrement: 1,
		CounterPadding:   2,
		CounterToName:    true,
	}
	plan := buildTestPlan(t, cfg, "/pics/cat.png", "/pics/dog.png")

	fs := newMockFS()
	fs.setExists("/pics/cat.png", true)
	fs.setExists("/pics/dog.png", true)

	set, err := NewConflictChecker(fs).Detect(plan)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !set.Empty() {
		t.Errorf("Detect() found %d conflicts, want none: %+v", len(set.Conflicts), set.Conflicts)
	}
}

func TestDetect_DuplicateTargets(t *testing.T) {
	// Fixed mask without a counter: every entry maps to the same name.
	cfg := namegen.Config{
		NameMask:        "pet",
		KeepOriginalExt: true,
	}
	plan := buildTestPlan(t, cfg, "/pics/cat.png", "/pics/dog.png")

	set, err := NewConflictChecker(newMockFS()).Detect(plan)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if set.Empty() {
		t.Fatal("Detect() found no conflicts, want duplicate")
	}
	if len(set.Conflicts) != 1 {
		t.Fatalf("Detect() found %d conflicts, want 1", len(set.Conflicts))
	}

	c := set.Conflicts[0]
	if c.Path != "/pics/pet.png" {
		t.Errorf("conflict path = %q, want %q", c.Path, "/pics/pet.png")
	}
	if c.Reason != ReasonDuplicate {
		t.Errorf("conflict reason = %q, want %q", c.Reason, ReasonDuplicate)
	}
	if len(c.Indexes) != 2 {
		t.Errorf("conflict indexes = %v, want both entries", c.Indexes)
	}
	if !set.Contains("/pics/pet.png") {
		t.Errorf("Contains(%q) = false", "/pics/pet.png")
	}
}

func TestDetect_OverwriteOutsideBatch(t *testing.T) {
	cfg := namegen.Config{
		NameMask:        "taken",
		KeepOriginalExt: true,
	}
	plan := buildTestPlan(t, cfg, "/docs/draft.txt")

	fs := newMockFS()
	fs.setExists("/docs/draft.txt", true)
	fs.setExists("/docs/taken.txt", true) // untouched bystander

	set, err := NewConflictChecker(fs).Detect(plan)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if len(set.Conflicts) != 1 {
		t.Fatalf("Detect() found %d conflicts, want 1", len(set.Conflicts))
	}
	if set.Conflicts[0].Reason != ReasonOverwrite {
		t.Errorf("conflict reason = %q, want %q", set.Conflicts[0].Reason, ReasonOverwrite)
	}
}

func TestDetect_SwapIsNotAConflict(t *testing.T) {
	// A.txt → B.txt and B.txt → A.txt: both targets exist on disk but are
	// owned by the batch, so the two-phase executor can carry it out.
	entries := []Entry{NewEntry("/d/A.txt", 0), NewEntry("/d/B.txt", 1)}
	plan := &Plan{Items: []Item{
		{Entry: entries[0], NewName: "B", NewExt: "txt", TargetPath: "/d/B.txt"},
		{Entry: entries[1], NewName: "A", NewExt: "txt", TargetPath: "/d/A.txt"},
	}}

	fs := newMockFS()
	fs.setExists("/d/A.txt", true)
	fs.setExists("/d/B.txt", true)

	set, err := NewConflictChecker(fs).Detect(plan)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !set.Empty() {
		t.Errorf("Detect() found conflicts for a swap: %+v", set.Conflicts)
	}
}

func TestDetect_UnchangedEntryIsNotAConflict(t *testing.T) {
	cfg := namegen.Config{KeepOriginalName: true, KeepOriginalExt: true}
	plan := buildTestPlan(t, cfg, "/d/same.txt")

	fs := newMockFS()
	fs.setExists("/d/same.txt", true)

	set, err := NewConflictChecker(fs).Detect(plan)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !set.Empty() {
		t.Errorf("Detect() flagged a no-op rename: %+v", set.Conflicts)
	}
}

func TestDetect_InvalidProposedName(t *testing.T) {
	cfg := namegen.Config{
		NameMask:        "a/b",
		KeepOriginalExt: true,
	}
	plan := buildTestPlan(t, cfg, "/d/x.txt")

	set, err := NewConflictChecker(newMockFS()).Detect(plan)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if set.Empty() {
		t.Fatal("Detect() accepted a name with a path separator")
	}
	if set.Conflicts[0].Reason != ReasonInvalidName {
		t.Errorf("conflict reason = %q, want %q", set.Conflicts[0].Reason, ReasonInvalidName)
	}
}

func TestDetect_ExistenceCheckError(t *testing.T) {
	cfg := namegen.Config{NameMask: "x", KeepOriginalExt: true}
	plan := buildTestPlan(t, cfg, "/d/a.txt")

	fs := newMockFS()
	fs.existsErr["/d/x.txt"] = errors.New("permission denied")

	_, err := NewConflictChecker(fs).Detect(plan)
	if err == nil {
		t.Fatal("Detect() succeeded despite existence-check failure, want error")
	}
}

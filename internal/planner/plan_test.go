package planner

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/namegen"
)

func TestNewEntry(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantDir  string
		wantName string
		wantExt  string
	}{
		{
			name:     "regular file",
			path:     filepath.Join("/pics", "cat.png"),
			wantDir:  "/pics",
			wantName: "cat",
			wantExt:  "png",
		},
		{
			name:     "no extension",
			path:     filepath.Join("/docs", "README"),
			wantDir:  "/docs",
			wantName: "README",
			wantExt:  "",
		},
		{
			name:     "double extension keeps last",
			path:     filepath.Join("/backups", "db.tar.gz"),
			wantDir:  "/backups",
			wantName: "db.tar",
			wantExt:  "gz",
		},
		{
			name:     "dot file",
			path:     filepath.Join("/home", ".vimrc"),
			wantDir:  "/home",
			wantName: "",
			wantExt:  "vimrc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntry(tt.path, 3)
			if e.Dir != tt.wantDir || e.Name != tt.wantName || e.Ext != tt.wantExt {
				t.Errorf("NewEntry(%q) = dir %q name %q ext %q, want %q %q %q",
					tt.path, e.Dir, e.Name, e.Ext, tt.wantDir, tt.wantName, tt.wantExt)
			}
			if e.Index != 3 {
				t.Errorf("Index = %d, want 3", e.Index)
			}
			if e.Path != tt.path {
				t.Errorf("Path = %q, want %q", e.Path, tt.path)
			}
		})
	}
}

func TestBuildPlan_MaskWithCounter(t *testing.T) {
	entries := []Entry{
		NewEntry("/pics/cat.png", 0),
		NewEntry("/pics/dog.png", 1),
	}
	cfg := namegen.Config{
		NameMask:         "pet_",
		KeepOriginalExt:  true,
		CounterEnabled:   true,
		CounterStart:     1,
		CounterIncrement: 1,
		CounterPadding:   2,
		CounterToName:    true,
	}

	plan, err := BuildPlan(entries, cfg)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	if plan.Len() != len(entries) {
		t.Fatalf("plan length = %d, want %d", plan.Len(), len(entries))
	}

	wantTargets := []string{"/pics/pet_01.png", "/pics/pet_02.png"}
	for i, want := range wantTargets {
		if got := plan.Items[i].TargetPath; got != want {
			t.Errorf("Items[%d].TargetPath = %q, want %q", i, got, want)
		}
	}
}

func TestBuildPlan_OrderDrivesCounter(t *testing.T) {
	// Same files, reversed display order: the counter follows the order,
	// not the names.
	cfg := namegen.Config{
		NameMask:         "n",
		KeepOriginalExt:  true,
		CounterEnabled:   true,
		CounterStart:     1,
		CounterIncrement: 1,
		CounterPadding:   1,
		CounterToName:    true,
	}

	entries := []Entry{
		NewEntry("/d/b.txt", 0),
		NewEntry("/d/a.txt", 1),
	}

	plan, err := BuildPlan(entries, cfg)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	if plan.Items[0].Entry.Name != "b" || plan.Items[0].NewName != "n1" {
		t.Errorf("first item = %q → %q, want b → n1", plan.Items[0].Entry.Name, plan.Items[0].NewName)
	}
	if plan.Items[1].Entry.Name != "a" || plan.Items[1].NewName != "n2" {
		t.Errorf("second item = %q → %q, want a → n2", plan.Items[1].Entry.Name, plan.Items[1].NewName)
	}
}

func TestBuildPlan_ConfigError(t *testing.T) {
	entries := []Entry{NewEntry("/d/a.txt", 0)}
	cfg := namegen.Config{CounterPadding: -1}

	_, err := BuildPlan(entries, cfg)
	if err == nil {
		t.Fatal("BuildPlan() succeeded with invalid config, want error")
	}
	var cfgErr *namegen.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("BuildPlan() error type = %T, want *namegen.ConfigError", err)
	}
}

func TestBuildPlan_EmptyInput(t *testing.T) {
	plan, err := BuildPlan(nil, namegen.Config{KeepOriginalName: true, KeepOriginalExt: true})
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	if plan.Len() != 0 {
		t.Errorf("plan length = %d, want 0", plan.Len())
	}
}

func TestItem_Unchanged(t *testing.T) {
	entries := []Entry{NewEntry("/d/keep.txt", 0)}
	cfg := namegen.Config{KeepOriginalName: true, KeepOriginalExt: true}

	plan, err := BuildPlan(entries, cfg)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	if !plan.Items[0].Unchanged() {
		t.Errorf("Unchanged() = false for identity config")
	}
}

func TestItem_NewFullName_EmptyExtension(t *testing.T) {
	entries := []Entry{NewEntry("/d/notes.txt", 0)}
	cfg := namegen.Config{KeepOriginalName: true, ExtMask: ""}

	plan, err := BuildPlan(entries, cfg)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	if got := plan.Items[0].NewFullName(); got != "notes" {
		t.Errorf("NewFullName() = %q, want %q", got, "notes")
	}
	if got := plan.Items[0].TargetPath; got != "/d/notes" {
		t.Errorf("TargetPath = %q, want %q", got, "/d/notes")
	}
}

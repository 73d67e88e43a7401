package planner

import (
	"path/filepath"
	"strings"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/namegen"
)

// Entry represents one file under consideration for renaming.
type Entry struct {
	// Path is the original absolute path.
	Path string

	// Dir is the directory containing the file.
	Dir string

	// Name is the original base name without extension.
	Name string

	// Ext is the original extension without the leading dot.
	Ext string

	// Index is the position in the ordered display list.
	Index int
}

// NewEntry creates an Entry from an absolute path and its display position.
func NewEntry(path string, index int) Entry {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return Entry{
		Path:  path,
		Dir:   filepath.Dir(path),
		Name:  strings.TrimSuffix(base, ext),
		Ext:   strings.TrimPrefix(ext, "."),
		Index: index,
	}
}

// FullName returns the original full file name.
func (e Entry) FullName() string {
	return namegen.JoinName(e.Name, e.Ext)
}

// Item pairs an entry with its proposed output.
type Item struct {
	Entry Entry

	// NewName is the proposed base name without extension.
	NewName string

	// NewExt is the proposed extension without the leading dot.
	NewExt string

	// TargetPath is the proposed absolute output path.
	TargetPath string
}

// NewFullName returns the proposed full file name.
func (i Item) NewFullName() string {
	return namegen.JoinName(i.NewName, i.NewExt)
}

// Unchanged reports whether the proposed path equals the original path.
// Unchanged items are skipped by the executor.
func (i Item) Unchanged() bool {
	return i.TargetPath == i.Entry.Path
}

// Plan is an ordered rename plan. Its length always equals the input file
// count and its order matches display order.
type Plan struct {
	Items []Item
}

// Len returns the number of entries in the plan.
func (p *Plan) Len() int {
	return len(p.Items)
}

// OriginalPaths returns the set of original paths owned by the plan.
// Targets inside this set are freed during staging and therefore do not
// count as overwrite risks.
func (p *Plan) OriginalPaths() map[string]struct{} {
	owned := make(map[string]struct{}, len(p.Items))
	for _, item := range p.Items {
		owned[item.Entry.Path] = struct{}{}
	}
	return owned
}

// BuildPlan computes the proposed output for every entry, in order.
// The returned plan has exactly one item per input entry. A configuration
// problem surfaces as a *namegen.ConfigError.
func BuildPlan(entries []Entry, cfg namegen.Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plan := &Plan{Items: make([]Item, 0, len(entries))}
	for i, entry := range entries {
		newName, newExt, err := namegen.Generate(entry.Name, entry.Ext, cfg, i)
		if err != nil {
			return nil, err
		}
		plan.Items = append(plan.Items, Item{
			Entry:      entry,
			NewName:    newName,
			NewExt:     newExt,
			TargetPath: filepath.Join(entry.Dir, namegen.JoinName(newName, newExt)),
		})
	}
	return plan, nil
}

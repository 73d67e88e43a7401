package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/clock"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/engine"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/fsops"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/namegen"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/planner"
)

// newEngine creates an engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), &clock.RealClock{})
}

// configFlags carries the mask/counter flag values shared by the preview
// and rename commands.
type configFlags struct {
	nameMask      string
	extMask       string
	keepName      bool
	keepExt       bool
	counter       bool
	start         int
	increment     int
	padding       int
	counterToName bool
	counterToExt  bool
}

// register adds the shared configuration flags to cmd.
func (f *configFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.nameMask, "name-mask", "n", "", "Template for the new base name ({counter} substitutes the counter)")
	flags.StringVarP(&f.extMask, "ext-mask", "e", "", "Template for the new extension")
	flags.BoolVar(&f.keepName, "keep-name", false, "Keep each file's original base name")
	flags.BoolVar(&f.keepExt, "keep-ext", true, "Keep each file's original extension")
	flags.BoolVarP(&f.counter, "counter", "c", false, "Enable the sequential counter")
	flags.IntVar(&f.start, "start", 1, "Counter value for the first file")
	flags.IntVar(&f.increment, "increment", 1, "Counter step between files")
	flags.IntVar(&f.padding, "padding", 1, "Zero-fill the counter to this many digits")
	flags.BoolVar(&f.counterToName, "counter-to-name", true, "Apply the counter to the name field")
	flags.BoolVar(&f.counterToExt, "counter-to-ext", false, "Apply the counter to the extension field")
}

// toConfig converts the flag values into a configuration snapshot.
func (f *configFlags) toConfig() namegen.Config {
	return namegen.Config{
		NameMask:         f.nameMask,
		ExtMask:          f.extMask,
		KeepOriginalName: f.keepName,
		KeepOriginalExt:  f.keepExt,
		CounterEnabled:   f.counter,
		CounterStart:     f.start,
		CounterIncrement: f.increment,
		CounterPadding:   f.padding,
		CounterToName:    f.counterToName,
		CounterToExt:     f.counterToExt,
	}
}

// collectEntries resolves command arguments into an ordered entry list.
// File arguments keep their command-line order; a directory argument
// expands to its regular files in natural order.
func collectEntries(eng *engine.Engine, fs fsops.FS, args []string) ([]planner.Entry, error) {
	var entries []planner.Entry
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", arg, err)
		}

		info, err := fs.Lstat(abs)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}

		if info.IsDir() {
			paths, err := eng.ListFiles(abs)
			if err != nil {
				return nil, err
			}
			for _, p := range paths {
				entries = append(entries, planner.NewEntry(p, len(entries)))
			}
			continue
		}

		entries = append(entries, planner.NewEntry(abs, len(entries)))
	}
	return entries, nil
}

// buildPlan resolves args and flags into a plan plus its conflicts.
func buildPlan(eng *engine.Engine, flags *configFlags, args []string) (*planner.Plan, *planner.ConflictSet, error) {
	entries, err := collectEntries(eng, fsops.NewRealFS(), args)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("no files to rename")
	}

	plan, err := planner.BuildPlan(entries, flags.toConfig())
	if err != nil {
		return nil, nil, err
	}

	set, err := eng.DetectConflicts(plan)
	if err != nil {
		return nil, nil, err
	}
	return plan, set, nil
}

// printPlan prints the old → new table, marking conflicting rows.
func printPlan(plan *planner.Plan, set *planner.ConflictSet) {
	width := 0
	for _, item := range plan.Items {
		if l := len(item.Entry.FullName()); l > width {
			width = l
		}
	}

	for _, item := range plan.Items {
		line := fmt.Sprintf("  %-*s → %s", width, item.Entry.FullName(), item.NewFullName())
		switch {
		case set.Contains(item.TargetPath):
			_, _ = errorColor.Println(line + "  ✗")
		case item.Unchanged():
			_, _ = dimColor.Println(line + "  (unchanged)")
		default:
			fmt.Println(line)
		}
	}
}

// printConflicts prints the conflict list.
func printConflicts(set *planner.ConflictSet) {
	PrintSection("Conflicts Detected")
	items := make([]string, 0, len(set.Conflicts))
	for _, c := range set.Conflicts {
		items = append(items, fmt.Sprintf("%s: %s", filepath.Base(c.Path), c.Detail))
	}
	PrintList(items, 1)
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/engine"
)

var (
	renameFlags  configFlags
	renameDryRun bool
	renameYes    bool
)

var renameCmd = &cobra.Command{
	Use:   "rename [paths...]",
	Short: "Apply the rename to the filesystem",
	Long: `Rename the given files according to the mask and counter flags.

The plan is previewed first and the rename refuses to run while it has
conflicts. Changed files are staged under temporary names before being
committed to their final names, so swapped or overlapping names are safe.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine()

		plan, set, err := buildPlan(eng, &renameFlags, args)
		if err != nil {
			return err
		}

		PrintSection("Rename Plan")
		printPlan(plan, set)

		if !set.Empty() {
			printConflicts(set)
			return fmt.Errorf("refusing to rename: %s", PrintCount(len(set.Conflicts), "conflict", "conflicts"))
		}

		if renameDryRun {
			fmt.Println()
			PrintInfo(fmt.Sprintf("Dry run: would rename %s", PrintCount(plan.Len(), "file", "files")))
			return nil
		}

		if !renameYes && !confirm(cmd) {
			PrintWarning("Aborted")
			return nil
		}

		result, err := eng.Apply(context.Background(), &engine.ApplyRequest{
			Plan: plan,
			Progress: func(ev engine.ProgressEvent) {
				fmt.Printf("\r  %s %d/%d", ev.Phase, ev.Done, ev.Total)
			},
		})
		if result != nil && len(result.Entries) > 0 {
			fmt.Println()
		}
		if err != nil {
			var stageErr *engine.StageError
			if errors.As(err, &stageErr) && len(stageErr.RollbackFailures) > 0 {
				PrintError("Some files are stranded at temporary names:")
				PrintList(stageErr.RollbackFailures, 1)
			}
			return err
		}

		reportResult(result)
		if result.Failed > 0 {
			return fmt.Errorf("%s failed", PrintCount(result.Failed, "entry", "entries"))
		}
		return nil
	},
}

// confirm asks for an interactive yes before renaming.
func confirm(cmd *cobra.Command) bool {
	fmt.Println()
	fmt.Print("Proceed with rename? [y/N] ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// reportResult prints the outcome summary and any per-entry failures.
func reportResult(result *engine.ApplyResult) {
	fmt.Println()
	PrintSuccess(fmt.Sprintf("Renamed %s", PrintCount(result.Committed, "file", "files")))
	if result.Unchanged > 0 {
		PrintLabelValue("Unchanged", PrintCount(result.Unchanged, "file", "files"))
	}

	for _, entry := range result.Entries {
		if entry.Status != engine.StatusFailed {
			continue
		}
		PrintError(fmt.Sprintf("%s: %v", entry.NewPath, entry.Err))
		if entry.TempPath != "" {
			fmt.Fprintf(os.Stderr, "  file left at %s\n", entry.TempPath)
		}
	}
}

func init() {
	renameFlags.register(renameCmd)
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "Show what would be renamed without renaming")
	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false, "Skip the confirmation prompt")
}

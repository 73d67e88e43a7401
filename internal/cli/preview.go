package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var previewFlags configFlags

var previewCmd = &cobra.Command{
	Use:   "preview [paths...]",
	Short: "Show the new names a configuration would produce",
	Long: `Compute and display the rename plan without touching any file.

Each path argument is a file; a directory argument expands to its files
in natural order. Exit status is 1 when the plan has conflicts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine()

		plan, set, err := buildPlan(eng, &previewFlags, args)
		if err != nil {
			return err
		}

		PrintSection("Rename Preview")
		printPlan(plan, set)

		if !set.Empty() {
			printConflicts(set)
			return fmt.Errorf("%s found", PrintCount(len(set.Conflicts), "conflict", "conflicts"))
		}

		fmt.Println()
		PrintSuccess(fmt.Sprintf("No conflicts in %s", PrintCount(plan.Len(), "entry", "entries")))
		return nil
	},
}

func init() {
	previewFlags.register(previewCmd)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/gui"
)

// rootCmd is the root command for qbrt. Run without a subcommand it opens
// the GUI window, which is the tool's primary surface.
var rootCmd = &cobra.Command{
	Use:     "qbrt",
	Version: "dev",
	Short:   "Batch-rename files with masks and sequential counters",
	Long: `qbrt renames batches of files from a mask and counter configuration.

New names are previewed before anything touches the disk, conflicting
targets block the rename, and the rename itself runs in two phases
(stage to temporary names, then commit) so overlapping or swapped names
never destroy files.

Run without arguments to open the GUI; use 'preview' and 'rename' for
scripted batches.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return gui.Run(newEngine())
	},
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(renameCmd)
}

package cmd

import (
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rekindle",
	Short: "Memory practice for the terminal",
	Long:  "Rekindle — guided recall exercises (words, people, personal facts, lists) for memory rehabilitation, practiced from the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REKINDLE_DB env var)")
	rootCmd.PersistentFlags().String("roster", "", "Path to roster JSON file (overrides REKINDLE_ROSTER env var)")
	rootCmd.PersistentFlags().String("voice", "", "Polly voice for spoken prompts (overrides REKINDLE_VOICE env var)")
	rootCmd.PersistentFlags().Bool("no-speech", false, "Disable spoken prompts and cues")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REKINDLE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [exercise]",
	Short: "Start a practice session",
	Long: "Start a practice session, optionally jumping straight into one exercise.\n\n" +
		"Exercises: " + exerciseNames(),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runApp(cmd, nil)
		}
		t, ok := exercise.ParseType(args[0])
		if !ok {
			return fmt.Errorf("unknown exercise %q (choose from: %s)", args[0], exerciseNames())
		}
		return runApp(cmd, &t)
	},
}

func exerciseNames() string {
	names := make([]string, 0, len(exercise.All()))
	for _, t := range exercise.All() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics per exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		stats, err := eventRepo.ExerciseStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No completed sessions yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
		fmt.Fprintln(w, "EXERCISE\tSESSIONS\tACCURACY\tLAST PRACTICED")
		for _, t := range exercise.All() {
			p, ok := stats[string(t)]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%.0f%%\t%s\n",
				t.DisplayName(),
				p.TotalSessions,
				p.AverageAccuracy*100,
				p.LastSessionAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

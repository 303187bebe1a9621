package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soft-challenge/soft75/pkg/model"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent toggles and resets",
	RunE:  runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show")
}

func runLog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	tr, store, _, err := initTracker(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := tr.Journal(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("Nothing recorded yet.")
		return nil
	}

	for _, e := range entries {
		ts := e.Timestamp.Local().Format("2006-01-02 15:04")
		switch e.Kind {
		case model.JournalReset:
			fmt.Printf("%s  reset\n", ts)
		default:
			state := "unset"
			if e.Done {
				state = "done"
			}
			fmt.Printf("%s  day %-2d %-8s %s\n", ts, e.Day, e.Habit, state)
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soft-challenge/soft75/pkg/model"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip a habit's completion flag for a day",
	Long:  `Flip the completion flag for one habit on one day (1-75).`,
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().IntP("day", "d", 0, "Challenge day (1-75)")
	toggleCmd.Flags().StringP("habit", "t", "", "Habit: diet, water, book, workout, pic")
	_ = toggleCmd.MarkFlagRequired("day")
	_ = toggleCmd.MarkFlagRequired("habit")
}

func runToggle(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	day, _ := cmd.Flags().GetInt("day")
	habitName, _ := cmd.Flags().GetString("habit")

	habit, err := model.ParseHabit(habitName)
	if err != nil {
		return err
	}

	tr, store, _, err := initTracker(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if !tr.Toggle(cmd.Context(), day, habit) {
		if day < 1 || day > model.TotalDays {
			fmt.Printf("No change: day must be between 1 and %d.\n", model.TotalDays)
		} else {
			fmt.Printf("No change: %s is not tracked on day %d under the %s policy.\n",
				habit, day, tr.Policy().Name())
		}
		return nil
	}

	rec, _ := tr.Day(day)
	status := "not done"
	if rec.Done(habit) {
		status = "done"
	}
	fmt.Printf("Day %d, %s: %s. Progress: %d%%\n", day, habit, status, tr.Progress())
	return nil
}

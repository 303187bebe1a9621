package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soft-challenge/soft75/pkg/model"
	"github.com/soft-challenge/soft75/pkg/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the challenge grid and completion percentage",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("all", false, "Include hidden days")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	showAll, _ := cmd.Flags().GetBool("all")

	catalog, err := initCatalog(cfg)
	if err != nil {
		return err
	}

	tr, store, _, err := initTracker(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if date := tr.StartDate(); date != "" {
		fmt.Printf("Started: %s\n", date)
	}
	fmt.Printf("Pic policy: %s\n\n", tr.Policy().Name())

	// Legend
	for _, info := range catalog.All() {
		fmt.Printf("  %-8s %s %s\n", info.Habit, info.Emoji, info.Label)
	}
	fmt.Println()

	header := "day "
	for _, h := range model.AllHabits {
		header += fmt.Sprintf(" %-7s", h)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))

	soft, isSoft := tr.Policy().(tracker.Soft)
	state := tr.State()
	hiddenCount := 0

	for day := 1; day <= model.TotalDays; day++ {
		if tr.IsHidden(day) && !showAll {
			hiddenCount++
			continue
		}

		line := fmt.Sprintf("%3d ", day)
		rec := state[day]
		for _, h := range model.AllHabits {
			mark := "."
			switch {
			case h == model.HabitPic && !tr.Policy().Eligible(day):
				mark = "-"
			case rec.Done(h):
				mark = "x"
			}
			line += fmt.Sprintf(" %-7s", mark)
		}
		if isSoft && soft.Emphasized(day) {
			line += " *"
		}
		if tr.IsHidden(day) {
			line += " (hidden)"
		}
		fmt.Println(line)
	}

	if hiddenCount > 0 {
		fmt.Printf("\n%d hidden day(s) omitted; use --all to show them.\n", hiddenCount)
	}
	fmt.Printf("\nProgress: %d%%\n", tr.Progress())
	return nil
}

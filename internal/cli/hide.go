package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var hideCmd = &cobra.Command{
	Use:   "hide <day>",
	Short: "Hide a day from the status grid",
	Long: `Hide a day from presentation. Hiding never changes habit flags or
the completion percentage; it only filters what status shows.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVisibility(cmd, args[0], true)
	},
}

var unhideCmd = &cobra.Command{
	Use:   "unhide <day>",
	Short: "Show a previously hidden day again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVisibility(cmd, args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(hideCmd)
	rootCmd.AddCommand(unhideCmd)
}

func runVisibility(cmd *cobra.Command, arg string, hide bool) error {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("day must be a number: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tr, store, _, err := initTracker(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var changed bool
	if hide {
		changed = tr.HideDay(cmd.Context(), day)
	} else {
		changed = tr.UnhideDay(cmd.Context(), day)
	}

	if !changed {
		fmt.Println("No change.")
		return nil
	}

	if hidden := tr.HiddenDays(); len(hidden) > 0 {
		fmt.Printf("Hidden days: %v\n", hidden)
	} else {
		fmt.Println("No hidden days.")
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startDateCmd = &cobra.Command{
	Use:   "start-date [YYYY-MM-DD]",
	Short: "Show or set the challenge start date",
	Long: `Without an argument, prints the stored start date. With one, stores
it. The date is informational only; it plays no part in progress math.
Pass an empty string ("") to clear it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStartDate,
}

func init() {
	rootCmd.AddCommand(startDateCmd)
}

func runStartDate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tr, store, _, err := initTracker(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if date := tr.StartDate(); date != "" {
			fmt.Println(date)
		} else {
			fmt.Println("No start date set.")
		}
		return nil
	}

	if err := tr.SetStartDate(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("start date must be YYYY-MM-DD: %w", err)
	}

	if args[0] == "" {
		fmt.Println("Start date cleared.")
	} else {
		fmt.Printf("Start date set to %s.\n", args[0])
	}
	return nil
}

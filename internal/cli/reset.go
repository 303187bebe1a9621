package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all progress and start over",
	Long: `Discard every habit flag and any hidden days. The start date is
kept. Asks for confirmation unless --yes is given.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		fmt.Print("This discards all 75 days of progress. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Println("Aborted.")
			return nil
		}
	}

	tr, store, _, err := initTracker(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tr.Reset(cmd.Context())
	fmt.Println("Tracker reset. Good luck on the next attempt.")
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soft-challenge/soft75/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the challenge grid to a spreadsheet",
	Long:  `Write the 75-day grid to an .xlsx workbook or a .csv file.`,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", "soft75.xlsx", "Output file (.xlsx or .csv)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")

	catalog, err := initCatalog(cfg)
	if err != nil {
		return err
	}

	tr, store, _, err := initTracker(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	grid := export.Grid{
		State:       tr.State(),
		Catalog:     catalog,
		Policy:      tr.Policy(),
		ProgressPct: tr.Progress(),
		StartDate:   tr.StartDate(),
	}
	if err := export.Write(out, grid); err != nil {
		return fmt.Errorf("export grid: %w", err)
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}

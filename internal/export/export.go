// Package export writes the challenge grid to spreadsheet files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/soft-challenge/soft75/pkg/habits"
	"github.com/soft-challenge/soft75/pkg/tracker"
)

// Grid bundles everything the exporters need.
type Grid struct {
	State       tracker.State
	Catalog     *habits.Catalog
	Policy      tracker.PicPolicy
	ProgressPct int
	StartDate   string
}

// Write writes the grid to path, choosing the format from the file
// extension (.xlsx or .csv).
func Write(path string, grid Grid) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, grid)
	case ".xlsx":
		return writeXLSX(path, grid)
	default:
		return fmt.Errorf("unsupported export format %q (use .xlsx or .csv)", filepath.Ext(path))
	}
}

func (g Grid) header() []string {
	header := []string{"day"}
	for _, info := range g.Catalog.All() {
		header = append(header, info.Label)
	}
	return header
}

func (g Grid) row(day int) []string {
	rec := g.State[day]
	row := []string{strconv.Itoa(day)}
	for _, h := range tracker.AllHabits {
		switch {
		case h == tracker.HabitPic && !g.Policy.Eligible(day):
			row = append(row, "-")
		case rec.Done(h):
			row = append(row, "x")
		default:
			row = append(row, "")
		}
	}
	return row
}

func writeCSV(path string, grid Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(grid.header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for day := 1; day <= tracker.TotalDays; day++ {
		if err := w.Write(grid.row(day)); err != nil {
			return fmt.Errorf("write day %d: %w", day, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}

func writeXLSX(path string, grid Grid) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Challenge"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for col, value := range grid.header() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for day := 1; day <= tracker.TotalDays; day++ {
		for col, value := range grid.row(day) {
			cell, _ := excelize.CoordinatesToCellName(col+1, day+1)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write day %d: %w", day, err)
			}
		}
	}

	summaryRow := tracker.TotalDays + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	if err := f.SetCellValue(sheet, cell, "progress"); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	cell, _ = excelize.CoordinatesToCellName(2, summaryRow)
	if err := f.SetCellValue(sheet, cell, fmt.Sprintf("%d%%", grid.ProgressPct)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if grid.StartDate != "" {
		cell, _ = excelize.CoordinatesToCellName(1, summaryRow+1)
		if err := f.SetCellValue(sheet, cell, "start date"); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		cell, _ = excelize.CoordinatesToCellName(2, summaryRow+1)
		if err := f.SetCellValue(sheet, cell, grid.StartDate); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

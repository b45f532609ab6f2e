package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	processedSheet = "processed"
	topLikedSheet  = "top_liked"
)

// WriteWorkbook writes an Excel workbook with the full labeled table on one
// sheet and the top-liked slice on a second.
func WriteWorkbook(path string, rows, top []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", processedSheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := writeSheet(f, processedSheet, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(topLikedSheet); err != nil {
		return fmt.Errorf("export: create sheet: %w", err)
	}
	if err := writeSheet(f, topLikedSheet, top); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows []Row) error {
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export: write %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		values := row.values()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("export: write %s row %d: %w", sheet, i, err)
		}
	}
	return nil
}

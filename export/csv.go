package export

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes rows with the standard header to path.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.strings()); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export: flush %s: %w", path, err)
	}
	return nil
}

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/younsl/lbghost/internal/models"
)

// WriteCSV writes verdicts with a header row in models.CSVHeader order
func WriteCSV(w io.Writer, verdicts []models.GhostVerdict) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, v := range verdicts {
		if err := cw.Write(v.CSVRow()); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", v.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// ExportCSV writes the suspicious verdicts of the run to path and returns
// the number of rows and bytes written. Nothing is written when the run
// has no suspicious load balancers.
func ExportCSV(path string, run *Run) (rows int, size int64, err error) {
	suspicious := run.Suspicious()
	if len(suspicious) == 0 {
		return 0, 0, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, suspicious); err != nil {
		return 0, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		return len(suspicious), 0, fmt.Errorf("failed to stat CSV file: %w", err)
	}
	return len(suspicious), info.Size(), nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"mdde-hq/tycho/pkg/obs/tensor"
)

// WriteAgentCSV flattens one agent's tensor and writes the concatenated
// table to <dir>/agent_<id>.csv, overwriting any existing file. It returns
// the written path and the number of data rows.
//
// The file uses comma field delimiters and period decimal separators. The
// header row starts with an empty cell for the row-index column, followed
// by the slice column names in slice order. Every slice from one tensor
// shares its row count with the others; a mismatch means the flattening
// invariant was violated and the write fails before any file is touched.
func WriteAgentCSV(dir, agent string, t *tensor.Tensor) (string, int, error) {
	slices := tensor.Flatten(t)
	rows := len(slices[0].Rows)
	for _, s := range slices {
		if len(s.Rows) != rows {
			return "", 0, fmt.Errorf("slice row count mismatch: %d != %d (shape %v)",
				len(s.Rows), rows, t.Shape())
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("agent_%s.csv", agent))
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{""}
	for _, s := range slices {
		header = append(header, s.Columns...)
	}
	if err := w.Write(header); err != nil {
		return "", 0, fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	record := make([]string, 0, len(header))
	for r := 0; r < rows; r++ {
		record = record[:0]
		record = append(record, strconv.Itoa(r))
		for _, s := range slices {
			for _, v := range s.Rows[r] {
				record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		if err := w.Write(record); err != nil {
			return "", 0, fmt.Errorf("failed to write row %d to %s: %w", r, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", 0, fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, rows, nil
}

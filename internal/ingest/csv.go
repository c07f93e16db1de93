// Package ingest reads daily report tables from CSV files.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"missed-task-audit/internal/report"
)

// Read parses CSV from r into a report.Table. The first row is the
// header. Ragged rows are allowed; blank lines are skipped.
func Read(r io.Reader) (report.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return report.Table{}, errors.New("unable to read header: file is empty")
		}
		return report.Table{}, fmt.Errorf("unable to read header: %w", err)
	}

	table := report.Table{Columns: headers}
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return report.Table{}, fmt.Errorf("unable to read CSV: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// ReadFile reads a CSV file from disk into a report.Table.
func ReadFile(path string) (report.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return report.Table{}, err
	}
	defer file.Close()
	return Read(file)
}

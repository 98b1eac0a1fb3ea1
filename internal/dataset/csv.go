package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Read parses CSV data into a dataset. The first line is the header; rows
// shorter than the header leave the trailing columns empty.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	ds := New(header...)
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		row := make(Record, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		ds.Append(row)
	}

	return ds, nil
}

// ReadFile parses the CSV file at path into a dataset.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Write emits the dataset as CSV, columns in dataset order.
func Write(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(ds.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		for i, col := range ds.Columns {
			record[i] = row.Get(col)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the dataset as CSV to the given path.
func WriteFile(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, ds); err != nil {
		return err
	}
	return f.Close()
}

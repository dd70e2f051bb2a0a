package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the named table from dir. CSV is the native format; when no
// <name>.csv exists the loader falls back to <name>.parquet.
func Load(dir, name string) (*Table, error) {
	path := filepath.Join(dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return loadParquet(filepath.Join(dir, name+".parquet"))
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, name, err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no header line", ErrInvalidTable, name)
	}

	tbl := &Table{Columns: records[0]}
	for _, record := range records[1:] {
		row := Row{}
		for i, col := range tbl.Columns {
			row[col] = record[i]
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// Store rewrites the named CSV table: header line first, then every row in
// column order. The file must already exist, which keeps parquet tables and
// misspelled names from silently becoming new CSV files.
func Store(dir, name string, tbl *Table) error {
	path := filepath.Join(dir, name+".csv")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("%w: %s is not writable: %v", ErrInvalidTable, name, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(tbl.Columns); err != nil {
		return err
	}
	for _, row := range tbl.Rows {
		record, err := tbl.Record(row)
		if err != nil {
			return err
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return f.Close()
}

// Append adds one row to the end of an existing CSV table without rewriting
// the rest of the file. The row is rendered in the table's column order.
func Append(dir, name string, tbl *Table, row Row) error {
	path := filepath.Join(dir, name+".csv")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("%w: %s is not writable: %v", ErrInvalidTable, name, err)
	}
	defer func() { _ = f.Close() }()

	record, err := tbl.Record(row)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(record); err != nil {
		return err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return f.Close()
}

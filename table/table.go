// Package table holds the row/table model and the file-backed table store.
//
// A table lives in a directory as <name>.csv with a header line naming the
// columns, or as a read-only <name>.parquet file. Rows carry every value as
// a string keyed by column name.
package table

import (
	"errors"
	"fmt"
)

// ErrInvalidTable reports a table that cannot be located, read or written.
var ErrInvalidTable = errors.New("invalid table")

// Row maps column names to string values.
type Row map[string]string

// Table is an ordered column list plus the rows underneath it.
type Table struct {
	Columns []string
	Rows    []Row
}

// Record renders one row in the table's column order. A column absent from
// the row is an error rather than an empty field, so a malformed row cannot
// silently shift values under the wrong header.
func (t *Table) Record(row Row) ([]string, error) {
	record := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		value, ok := row[col]
		if !ok {
			return nil, fmt.Errorf("column %q missing from row", col)
		}
		record[i] = value
	}
	return record, nil
}

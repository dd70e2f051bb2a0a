// Package output provides formatters for rendering result tables.
//
// Supported formats:
//   - CSV: header line plus one record per row
//   - JSON Lines: one JSON object per row
//   - Table: aligned text table for terminals
//
// Example usage:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/vegasq/tablecat/table"
)

// Formatter writes a result table in one output format.
//
// Implementers must provide Format to render the table and SetOutput to
// change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(tbl *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

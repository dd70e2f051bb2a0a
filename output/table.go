package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tablecat/table"
)

// TableFormatter outputs a result table as an aligned text table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the table with column names as the header row. Header text
// is kept as-is; column names are case-sensitive identifiers, not labels.
func (t *TableFormatter) Format(tbl *table.Table) error {
	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(tbl.Columns)
	tw.SetAutoFormatHeaders(false)

	for _, row := range tbl.Rows {
		record, err := tbl.Record(row)
		if err != nil {
			return err
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}

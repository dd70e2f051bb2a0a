package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/tablecat/table"
)

// CSVFormatter outputs a result table as CSV with a header row.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header line and every row in the table's column order.
func (c *CSVFormatter) Format(tbl *table.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(tbl.Columns); err != nil {
		return err
	}
	for _, row := range tbl.Rows {
		record, err := tbl.Record(row)
		if err != nil {
			return err
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/tablecat/table"
)

// JSONFormatter outputs a result table as JSON Lines.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row, keyed by column name.
func (j *JSONFormatter) Format(tbl *table.Table) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range tbl.Rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

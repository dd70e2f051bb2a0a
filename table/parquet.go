package table

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

// loadParquet reads a parquet table into memory. Every value is rendered to
// its string form so the engine sees the same shape as a CSV table. Parquet
// tables are read-only: Store and Append refuse them because no CSV file
// exists to write.
func loadParquet(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, path, err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, path, err)
	}

	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, path, err)
	}

	tbl := &Table{}
	for _, field := range pqFile.Schema().Fields() {
		tbl.Columns = append(tbl.Columns, field.Name())
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	for {
		raw := make(map[string]interface{})
		if err := reader.Read(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, path, err)
		}

		row := Row{}
		for col, value := range raw {
			row[col] = renderValue(value)
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// renderValue converts a parquet value to the string form used everywhere
// else in the engine.
func renderValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	case bool:
		return strconv.FormatBool(value)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

package query

import (
	"fmt"
	"strings"

	"github.com/vegasq/tablecat/table"
)

// Into names the target table and column list of an INSERT.
type Into struct {
	Table   string
	Columns []string
}

// Insert appends one row built from an INTO column list and a VALUES list.
type Insert struct {
	Into   Into
	Values []string
}

// NewInsert builds the statement from tokens:
// INSERT INTO table (columns) VALUES (values). The scanner folds each
// parenthesized list into a single comma-separated token.
func NewInsert(tokens []string) (*Insert, error) {
	if len(tokens) < 6 {
		return nil, fmt.Errorf("%w: INSERT needs a table, columns and values", ErrInvalidSyntax)
	}
	if tokens[0] != "INSERT" || tokens[1] != "INTO" {
		return nil, fmt.Errorf("%w: expected INSERT INTO", ErrInvalidSyntax)
	}

	name := tokens[2]
	columns := splitList(tokens[3])

	if tokens[4] != "VALUES" {
		return nil, fmt.Errorf("%w: expected VALUES, got %q", ErrInvalidSyntax, tokens[4])
	}
	values := splitList(strings.ReplaceAll(tokens[5], "'", ""))

	if len(columns) == 0 || len(values) == 0 {
		return nil, fmt.Errorf("%w: empty column or value list", ErrInvalidSyntax)
	}
	if len(columns) != len(values) {
		return nil, fmt.Errorf("%w: %d columns but %d values", ErrInvalidSyntax, len(columns), len(values))
	}

	return &Insert{
		Into:   Into{Table: name, Columns: columns},
		Values: values,
	}, nil
}

// splitList splits a comma-separated list token into trimmed items.
func splitList(token string) []string {
	var items []string
	for _, item := range strings.Split(token, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// TableName reports the table the statement inserts into.
func (ins *Insert) TableName() string {
	return ins.Into.Table
}

// Apply builds the new row in the table's column order and appends it.
// Columns the statement does not name get empty values. The built row is
// returned so the caller can persist just the appended record.
func (ins *Insert) Apply(tbl *table.Table) (table.Row, error) {
	for _, col := range ins.Into.Columns {
		if !contains(tbl.Columns, col) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, col)
		}
	}

	row := table.Row{}
	for _, col := range tbl.Columns {
		row[col] = ""
	}
	for i, col := range ins.Into.Columns {
		row[col] = ins.Values[i]
	}

	tbl.Rows = append(tbl.Rows, row)
	return row, nil
}

package query

import (
	"fmt"

	"github.com/vegasq/tablecat/table"
)

// Delete removes matching rows. Without a WHERE clause every row is removed
// and only the header remains.
type Delete struct {
	Table string
	Where *Where
}

// NewDelete builds the statement from tokens:
// DELETE FROM table [WHERE condition].
func NewDelete(tokens []string) (*Delete, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("%w: DELETE needs a table", ErrInvalidSyntax)
	}
	if tokens[0] != "DELETE" || tokens[1] != "FROM" {
		return nil, fmt.Errorf("%w: expected DELETE FROM", ErrInvalidSyntax)
	}

	stmt := &Delete{Table: tokens[2]}
	if len(tokens) > 3 {
		if tokens[3] != "WHERE" {
			return nil, fmt.Errorf("%w: unexpected token %q after table name", ErrInvalidSyntax, tokens[3])
		}
		where, err := NewWhere(tokens[3:])
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	return stmt, nil
}

// TableName reports the table the statement deletes from.
func (d *Delete) TableName() string {
	return d.Table
}

// Apply removes the matching rows, keeping the rest in order.
func (d *Delete) Apply(tbl *table.Table) error {
	if d.Where == nil {
		tbl.Rows = nil
		return nil
	}

	var kept []table.Row
	for _, row := range tbl.Rows {
		match, err := d.Where.Matches(row)
		if err != nil {
			return err
		}
		if !match {
			kept = append(kept, row)
		}
	}
	tbl.Rows = kept

	return nil
}

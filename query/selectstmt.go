package query

import (
	"fmt"

	"github.com/vegasq/tablecat/table"
)

// Select reads rows from one table, optionally filtered by WHERE and sorted
// by ORDER BY. A single "*" in the column list selects every table column.
type Select struct {
	Table   string
	Columns []string
	Where   *Where
	OrderBy *OrderBy
}

// NewSelect builds the statement from tokens:
// SELECT columns FROM table [WHERE condition] [ORDER BY columns [ASC|DESC]].
func NewSelect(tokens []string) (*Select, error) {
	if len(tokens) < 4 {
		return nil, fmt.Errorf("%w: SELECT needs columns and a table", ErrInvalidSyntax)
	}
	if tokens[0] != "SELECT" {
		return nil, fmt.Errorf("%w: expected SELECT, got %q", ErrInvalidSyntax, tokens[0])
	}

	i := 1
	var columns []string
	for i < len(tokens) && tokens[i] != "FROM" {
		columns = append(columns, tokens[i])
		i++
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: SELECT needs at least one column", ErrInvalidSyntax)
	}

	if i >= len(tokens) || tokens[i] != "FROM" {
		return nil, fmt.Errorf("%w: expected FROM after column list", ErrInvalidSyntax)
	}
	i++
	if i >= len(tokens) {
		return nil, fmt.Errorf("%w: expected table name after FROM", ErrInvalidSyntax)
	}
	name := tokens[i]
	i++

	whereTokens, orderTokens, err := splitTail(tokens[i:])
	if err != nil {
		return nil, err
	}

	stmt := &Select{Table: name, Columns: columns}
	if len(whereTokens) > 0 {
		if stmt.Where, err = NewWhere(whereTokens); err != nil {
			return nil, err
		}
	}
	if len(orderTokens) > 0 {
		if stmt.OrderBy, err = NewOrderBy(orderTokens); err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

// splitTail splits the tokens after the table name into the WHERE span and
// the ORDER BY span. Either may be empty.
func splitTail(tokens []string) (whereTokens, orderTokens []string, err error) {
	i := 0
	if i < len(tokens) && tokens[i] == "WHERE" {
		for i < len(tokens) && tokens[i] != "ORDER" {
			whereTokens = append(whereTokens, tokens[i])
			i++
		}
	}
	if i < len(tokens) && tokens[i] == "ORDER" {
		orderTokens = tokens[i:]
		return whereTokens, orderTokens, nil
	}
	if i < len(tokens) {
		return nil, nil, fmt.Errorf("%w: unexpected token %q", ErrInvalidSyntax, tokens[i])
	}
	return whereTokens, orderTokens, nil
}

// TableName reports the table the statement reads from.
func (s *Select) TableName() string {
	return s.Table
}

// Apply runs the statement over a loaded table and returns the result table.
// Rows are filtered, then sorted, then projected, so an ORDER BY column does
// not have to appear in the projection.
func (s *Select) Apply(tbl *table.Table) (*table.Table, error) {
	columns := s.Columns
	if columns[0] == "*" {
		columns = tbl.Columns
	} else {
		for _, col := range columns {
			if !contains(tbl.Columns, col) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, col)
			}
		}
	}

	var kept []table.Row
	for _, row := range tbl.Rows {
		if s.Where != nil {
			match, err := s.Where.Matches(row)
			if err != nil {
				return nil, err
			}
			if !match {
				continue
			}
		}
		kept = append(kept, row)
	}

	if s.OrderBy != nil {
		s.OrderBy.Sort(kept)
	}

	result := &table.Table{Columns: columns}
	for _, row := range kept {
		projected := table.Row{}
		for _, col := range columns {
			projected[col] = row[col]
		}
		result.Rows = append(result.Rows, projected)
	}

	return result, nil
}

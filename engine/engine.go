// Package engine executes parsed SQL statements against the tables stored
// in a directory.
package engine

import (
	"fmt"

	"github.com/vegasq/tablecat/query"
	"github.com/vegasq/tablecat/table"
)

// Execute runs one SQL statement against the tables in dir.
//
// SELECT returns the result table. INSERT, UPDATE and DELETE persist their
// changes to the table's CSV file and return a nil table. Any parse or
// evaluation error aborts the statement; a mutating statement that fails
// leaves the file untouched.
func Execute(dir, statement string) (*table.Table, error) {
	tokens := query.Tokenize(statement)
	stmt, err := query.ParseStatement(tokens)
	if err != nil {
		return nil, err
	}

	tbl, err := table.Load(dir, stmt.TableName())
	if err != nil {
		return nil, err
	}

	switch s := stmt.(type) {
	case *query.Select:
		return s.Apply(tbl)
	case *query.Insert:
		row, err := s.Apply(tbl)
		if err != nil {
			return nil, err
		}
		return nil, table.Append(dir, s.TableName(), tbl, row)
	case *query.Update:
		if err := s.Apply(tbl); err != nil {
			return nil, err
		}
		return nil, table.Store(dir, s.TableName(), tbl)
	case *query.Delete:
		if err := s.Apply(tbl); err != nil {
			return nil, err
		}
		return nil, table.Store(dir, s.TableName(), tbl)
	default:
		return nil, fmt.Errorf("%w: unsupported statement", query.ErrInvalidSyntax)
	}
}

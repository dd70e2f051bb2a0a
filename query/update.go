package query

import (
	"fmt"

	"github.com/vegasq/tablecat/table"
)

// Assignment sets one column to a literal value.
type Assignment struct {
	Column string
	Value  string
}

// Set is the ordered assignment list of an UPDATE.
type Set []Assignment

// NewSet parses tokens beginning at the SET keyword:
// SET column = value [column = value ...].
func NewSet(tokens []string) (Set, error) {
	if len(tokens) == 0 || tokens[0] != "SET" {
		return nil, fmt.Errorf("%w: expected SET", ErrInvalidSyntax)
	}

	var set Set
	for i := 1; i < len(tokens); i += 3 {
		if i+2 >= len(tokens) || tokens[i+1] != "=" {
			return nil, fmt.Errorf("%w: SET needs column = value", ErrInvalidSyntax)
		}
		set = append(set, Assignment{Column: tokens[i], Value: tokens[i+2]})
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: SET needs at least one assignment", ErrInvalidSyntax)
	}

	return set, nil
}

// Update rewrites matching rows with the SET assignments. Without a WHERE
// clause every row is rewritten.
type Update struct {
	Table string
	Set   Set
	Where *Where
}

// NewUpdate builds the statement from tokens:
// UPDATE table SET column = value [...] [WHERE condition].
func NewUpdate(tokens []string) (*Update, error) {
	if len(tokens) < 6 {
		return nil, fmt.Errorf("%w: UPDATE needs a table and a SET clause", ErrInvalidSyntax)
	}
	if tokens[0] != "UPDATE" {
		return nil, fmt.Errorf("%w: expected UPDATE, got %q", ErrInvalidSyntax, tokens[0])
	}
	name := tokens[1]
	if tokens[2] != "SET" {
		return nil, fmt.Errorf("%w: expected SET after table name", ErrInvalidSyntax)
	}

	setTokens := tokens[2:]
	var whereTokens []string
	for i, tok := range tokens[2:] {
		if tok == "WHERE" {
			setTokens = tokens[2 : 2+i]
			whereTokens = tokens[2+i:]
			break
		}
	}

	set, err := NewSet(setTokens)
	if err != nil {
		return nil, err
	}

	stmt := &Update{Table: name, Set: set}
	if len(whereTokens) > 0 {
		if stmt.Where, err = NewWhere(whereTokens); err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

// TableName reports the table the statement updates.
func (u *Update) TableName() string {
	return u.Table
}

// Apply rewrites the matching rows in place.
func (u *Update) Apply(tbl *table.Table) error {
	for _, a := range u.Set {
		if !contains(tbl.Columns, a.Column) {
			return fmt.Errorf("%w: %q", ErrInvalidColumn, a.Column)
		}
	}

	for _, row := range tbl.Rows {
		if u.Where != nil {
			match, err := u.Where.Matches(row)
			if err != nil {
				return err
			}
			if !match {
				continue
			}
		}
		for _, a := range u.Set {
			row[a.Column] = a.Value
		}
	}

	return nil
}

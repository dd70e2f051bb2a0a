package query

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewSelect(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTable string
		wantCols  []string
		wantWhere bool
		wantOrder bool
	}{
		{
			"star projection",
			"SELECT * FROM clients",
			"clients", []string{"*"}, false, false,
		},
		{
			"explicit columns",
			"SELECT name, age FROM clients",
			"clients", []string{"name", "age"}, false, false,
		},
		{
			"with where",
			"SELECT * FROM clients WHERE age > 18",
			"clients", []string{"*"}, true, false,
		},
		{
			"with order by",
			"SELECT * FROM clients ORDER BY age DESC",
			"clients", []string{"*"}, false, true,
		},
		{
			"with where and order by",
			"SELECT name FROM clients WHERE city = 'Gaiman' ORDER BY name",
			"clients", []string{"name"}, true, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := NewSelect(Tokenize(tt.input))
			if err != nil {
				t.Fatalf("NewSelect(%q) error = %v", tt.input, err)
			}
			if stmt.Table != tt.wantTable {
				t.Errorf("Table = %q, want %q", stmt.Table, tt.wantTable)
			}
			if !reflect.DeepEqual(stmt.Columns, tt.wantCols) {
				t.Errorf("Columns = %v, want %v", stmt.Columns, tt.wantCols)
			}
			if (stmt.Where != nil) != tt.wantWhere {
				t.Errorf("Where present = %v, want %v", stmt.Where != nil, tt.wantWhere)
			}
			if (stmt.OrderBy != nil) != tt.wantOrder {
				t.Errorf("OrderBy present = %v, want %v", stmt.OrderBy != nil, tt.wantOrder)
			}
		})
	}
}

func TestNewSelectErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "SELECT *"},
		{"missing from", "SELECT name age clients"},
		{"missing table", "SELECT name age FROM"},
		{"trailing garbage", "SELECT * FROM clients garbage"},
		{"bad where condition", "SELECT * FROM clients WHERE age >"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSelect(Tokenize(tt.input))
			if !errors.Is(err, ErrInvalidSyntax) {
				t.Errorf("NewSelect(%q) error = %v, want ErrInvalidSyntax", tt.input, err)
			}
		})
	}
}

func TestSelectApply(t *testing.T) {
	t.Run("star selects every column", func(t *testing.T) {
		stmt, err := NewSelect(Tokenize("SELECT * FROM clients"))
		if err != nil {
			t.Fatalf("NewSelect() error = %v", err)
		}

		got, err := stmt.Apply(testTable())
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if !reflect.DeepEqual(got.Columns, []string{"name", "lastname", "age", "city"}) {
			t.Errorf("Columns = %v", got.Columns)
		}
		if len(got.Rows) != 3 {
			t.Errorf("len(Rows) = %d, want 3", len(got.Rows))
		}
	})

	t.Run("where filters rows", func(t *testing.T) {
		stmt, err := NewSelect(Tokenize("SELECT name FROM clients WHERE city = 'Gaiman'"))
		if err != nil {
			t.Fatalf("NewSelect() error = %v", err)
		}

		got, err := stmt.Apply(testTable())
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		want := []string{"Alen", "Carla"}
		if len(got.Rows) != len(want) {
			t.Fatalf("len(Rows) = %d, want %d", len(got.Rows), len(want))
		}
		for i, name := range want {
			if got.Rows[i]["name"] != name {
				t.Errorf("row %d name = %q, want %q", i, got.Rows[i]["name"], name)
			}
		}
	})

	t.Run("order by column outside projection", func(t *testing.T) {
		stmt, err := NewSelect(Tokenize("SELECT name FROM clients ORDER BY age DESC"))
		if err != nil {
			t.Fatalf("NewSelect() error = %v", err)
		}

		got, err := stmt.Apply(testTable())
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		want := []string{"Emily", "Alen", "Carla"}
		for i, name := range want {
			if got.Rows[i]["name"] != name {
				t.Errorf("row %d name = %q, want %q", i, got.Rows[i]["name"], name)
			}
		}
		for i, row := range got.Rows {
			if _, ok := row["age"]; ok {
				t.Errorf("row %d leaked column age", i)
			}
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		stmt, err := NewSelect(Tokenize("SELECT salary FROM clients"))
		if err != nil {
			t.Fatalf("NewSelect() error = %v", err)
		}

		_, err = stmt.Apply(testTable())
		if !errors.Is(err, ErrInvalidColumn) {
			t.Errorf("Apply() error = %v, want ErrInvalidColumn", err)
		}
	})

	t.Run("projection does not alias source rows", func(t *testing.T) {
		tbl := testTable()
		stmt, err := NewSelect(Tokenize("SELECT name FROM clients"))
		if err != nil {
			t.Fatalf("NewSelect() error = %v", err)
		}

		got, err := stmt.Apply(tbl)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		got.Rows[0]["name"] = "changed"
		if tbl.Rows[0]["name"] != "Alen" {
			t.Errorf("source row mutated through result: %q", tbl.Rows[0]["name"])
		}
	})
}

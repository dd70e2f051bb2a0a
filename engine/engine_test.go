package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vegasq/tablecat/query"
	"github.com/vegasq/tablecat/table"
)

func clientsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "name,lastname,age,city\n" +
		"Alen,Davies,24,Gaiman\n" +
		"Emily,Kendal,32,Trelew\n" +
		"Carla,Rivero,17,Gaiman\n"
	if err := os.WriteFile(filepath.Join(dir, "clients.csv"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return dir
}

func TestExecuteSelect(t *testing.T) {
	dir := clientsDir(t)

	result, err := Execute(dir, "SELECT name FROM clients WHERE age > 18 ORDER BY name;")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result == nil {
		t.Fatal("Execute() returned nil table for SELECT")
	}

	want := []string{"Alen", "Emily"}
	if len(result.Rows) != len(want) {
		t.Fatalf("len(Rows) = %d, want %d", len(result.Rows), len(want))
	}
	for i, name := range want {
		if result.Rows[i]["name"] != name {
			t.Errorf("row %d name = %q, want %q", i, result.Rows[i]["name"], name)
		}
	}
}

func TestExecuteInsert(t *testing.T) {
	dir := clientsDir(t)

	result, err := Execute(dir, "INSERT INTO clients (name, age) VALUES ('Bruno', 41)")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result != nil {
		t.Errorf("Execute() = %+v, want nil table for INSERT", result)
	}

	tbl, err := table.Load(dir, "clients")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4", len(tbl.Rows))
	}
	got := tbl.Rows[3]
	if got["name"] != "Bruno" || got["age"] != "41" || got["lastname"] != "" || got["city"] != "" {
		t.Errorf("appended row = %v", got)
	}
}

func TestExecuteUpdate(t *testing.T) {
	dir := clientsDir(t)

	if _, err := Execute(dir, "UPDATE clients SET city = 'Rawson' WHERE city = 'Gaiman'"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	tbl, err := table.Load(dir, "clients")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"Rawson", "Trelew", "Rawson"}
	for i, city := range want {
		if tbl.Rows[i]["city"] != city {
			t.Errorf("row %d city = %q, want %q", i, tbl.Rows[i]["city"], city)
		}
	}
}

func TestExecuteDelete(t *testing.T) {
	dir := clientsDir(t)

	if _, err := Execute(dir, "DELETE FROM clients WHERE age < 18"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	tbl, err := table.Load(dir, "clients")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(tbl.Rows))
	}
	for _, row := range tbl.Rows {
		if row["name"] == "Carla" {
			t.Errorf("row not deleted: %v", row)
		}
	}
}

func TestExecuteErrors(t *testing.T) {
	dir := clientsDir(t)

	tests := []struct {
		name      string
		statement string
		want      error
	}{
		{"bad syntax", "SELECT * FROM", query.ErrInvalidSyntax},
		{"unknown statement", "DROP TABLE clients", query.ErrInvalidSyntax},
		{"missing table", "SELECT * FROM nosuch", table.ErrInvalidTable},
		{"unknown column", "SELECT salary FROM clients", query.ErrInvalidColumn},
		{"missing field in condition", "SELECT * FROM clients WHERE salary > 100", query.ErrMissingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute(dir, tt.statement)
			if !errors.Is(err, tt.want) {
				t.Errorf("Execute(%q) error = %v, want %v", tt.statement, err, tt.want)
			}
		})
	}
}

// A failing mutating statement must not touch the file.
func TestExecuteFailedMutationLeavesFile(t *testing.T) {
	dir := clientsDir(t)

	_, err := Execute(dir, "UPDATE clients SET salary = 100")
	if !errors.Is(err, query.ErrInvalidColumn) {
		t.Fatalf("Execute() error = %v, want ErrInvalidColumn", err)
	}

	tbl, err := table.Load(dir, "clients")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tbl.Rows) != 3 {
		t.Errorf("len(Rows) = %d, want 3", len(tbl.Rows))
	}
	if _, ok := tbl.Rows[0]["salary"]; ok {
		t.Error("failed UPDATE leaked a column into the file")
	}
}

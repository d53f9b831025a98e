package store

import (
	"strconv"
	"testing"

	"github.com/pagegrid/pagegrid/model"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		key       string
		overrides map[string]string
		want      string
	}{
		{"Name", nil, "name"},
		{"Unit Price", nil, "unit_price"},
		{"Unit Price", map[string]string{"Unit Price": "price"}, "price"},
		{"already_flat", nil, "already_flat"},
	}

	for _, tt := range tests {
		if got := ColumnName(tt.key, tt.overrides); got != tt.want {
			t.Errorf("ColumnName(%q, %v) = %q, want %q", tt.key, tt.overrides, got, tt.want)
		}
	}
}

func mustOpen(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEnsureTableIdempotent(t *testing.T) {
	s := mustOpen(t)

	columns := []Column{{Name: "name", Type: "text"}, {Name: "qty", Type: "integer"}}
	if err := s.EnsureTable("items", columns); err != nil {
		t.Fatalf("EnsureTable() failed: %v", err)
	}
	if err := s.EnsureTable("items", columns); err != nil {
		t.Errorf("EnsureTable() second call failed: %v", err)
	}
}

func TestInsertRow(t *testing.T) {
	s := mustOpen(t)
	if err := s.EnsureTable("items", []Column{
		{Name: "name", Type: "text"},
		{Name: "qty", Type: "integer"},
	}); err != nil {
		t.Fatalf("EnsureTable() failed: %v", err)
	}

	id, err := s.InsertRow("items", map[string]string{"Name": "widget", "Qty": "2"}, InsertOptions{
		Converters: map[string]func(string) (any, error){
			"Qty": func(v string) (any, error) { return strconv.Atoi(v) },
		},
	})
	if err != nil {
		t.Fatalf("InsertRow() failed: %v", err)
	}
	if id != 1 {
		t.Errorf("InsertRow() id = %d, want 1", id)
	}

	var name string
	var qty int
	err = s.db.QueryRow(`select name, qty from items where id = ?`, id).Scan(&name, &qty)
	if err != nil {
		t.Fatalf("reading back row: %v", err)
	}
	if name != "widget" || qty != 2 {
		t.Errorf("stored row = (%q, %d), want (widget, 2)", name, qty)
	}
}

func TestInsertRowUpsert(t *testing.T) {
	s := mustOpen(t)
	if err := s.EnsureTable("items", []Column{
		{Name: "name", Type: "text"},
		{Name: "qty", Type: "text"},
	}); err != nil {
		t.Fatalf("EnsureTable() failed: %v", err)
	}

	opts := InsertOptions{UpsertUniqueColumns: []string{"name"}}

	first, err := s.InsertRow("items", map[string]string{"Name": "widget", "Qty": "2"}, opts)
	if err != nil {
		t.Fatalf("InsertRow() failed: %v", err)
	}

	// Same unique column value: must return the existing id, not insert.
	second, err := s.InsertRow("items", map[string]string{"Name": "widget", "Qty": "5"}, opts)
	if err != nil {
		t.Fatalf("InsertRow() upsert failed: %v", err)
	}
	if second != first {
		t.Errorf("upserted id = %d, want existing id %d", second, first)
	}

	var count int
	if err := s.db.QueryRow(`select count(*) from items`).Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("table holds %d rows after upsert, want 1", count)
	}
}

func TestInsertRowUpsertUnknownColumn(t *testing.T) {
	s := mustOpen(t)
	if err := s.EnsureTable("items", []Column{{Name: "name", Type: "text"}}); err != nil {
		t.Fatalf("EnsureTable() failed: %v", err)
	}

	_, err := s.InsertRow("items", map[string]string{"Name": "widget"}, InsertOptions{
		UpsertUniqueColumns: []string{"sku"},
	})
	if err == nil {
		t.Error("InsertRow() accepted an upsert column missing from the row")
	}
}

func TestSaveRows(t *testing.T) {
	s := mustOpen(t)

	headers := []string{"Name", "Unit Price"}
	rows := []model.Row{
		{
			"Name":       {Text: "widget", FontName: "Helvetica"},
			"Unit Price": {Text: "9.50", FontName: "Helvetica"},
		},
		{
			"Name":       {Text: "gadget", FontName: "Helvetica-Bold"},
			"Unit Price": {Text: "4.25", FontName: "Helvetica"},
		},
	}

	ids, err := s.SaveRows("items", headers, rows, InsertOptions{})
	if err != nil {
		t.Fatalf("SaveRows() failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("SaveRows() returned %d ids, want 2", len(ids))
	}

	var name string
	err = s.db.QueryRow(`select name from items where id = ?`, ids[1]).Scan(&name)
	if err != nil {
		t.Fatalf("reading back row: %v", err)
	}
	// Bold fragments keep their marking through persistence.
	if name != "*gadget*" {
		t.Errorf("stored name = %q, want %q", name, "*gadget*")
	}
}

package render

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pagegrid/pagegrid/model"
)

func sampleRows() ([]string, []model.Row) {
	headers := []string{"Name", "Qty"}
	rows := []model.Row{
		{
			"Name": {Text: "widget", FontName: "Helvetica"},
			"Qty":  {Text: "2", FontName: "Helvetica"},
		},
		{
			"Name": {Text: "gadget", FontName: "Helvetica-Bold"},
		},
	}
	return headers, rows
}

func TestCSV(t *testing.T) {
	headers, rows := sampleRows()

	var buf bytes.Buffer
	if err := CSV(&buf, headers, rows); err != nil {
		t.Fatalf("CSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV() wrote %d lines, want 3", len(lines))
	}
	if lines[0] != "Name,Qty" {
		t.Errorf("header line = %q, want %q", lines[0], "Name,Qty")
	}
	if lines[1] != "widget,2" {
		t.Errorf("first row = %q, want %q", lines[1], "widget,2")
	}
	// Missing cell renders empty; bold keeps its marking.
	if lines[2] != "*gadget*," {
		t.Errorf("second row = %q, want %q", lines[2], "*gadget*,")
	}
}

func TestJSON(t *testing.T) {
	_, rows := sampleRows()

	var buf bytes.Buffer
	if err := JSON(&buf, rows, false); err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON() wrote invalid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("JSON() wrote %d objects, want 2", len(decoded))
	}
	if decoded[0]["Name"] != "widget" || decoded[0]["Qty"] != "2" {
		t.Errorf("first object = %v", decoded[0])
	}
	if _, ok := decoded[1]["Qty"]; ok {
		t.Error("missing cell present in JSON object, want omitted")
	}
}

func TestTable(t *testing.T) {
	headers, rows := sampleRows()

	var buf bytes.Buffer
	Table(&buf, headers, rows)

	out := buf.String()
	for _, want := range []string{"NAME", "QTY", "widget", "*gadget*"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table() output missing %q:\n%s", want, out)
		}
	}
}

func TestXLSX(t *testing.T) {
	headers, rows := sampleRows()
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if err := XLSX(path, headers, rows); err != nil {
		t.Fatalf("XLSX() failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reading back workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	got, err := f.GetCellValue(sheet, "A1")
	if err != nil || got != "Name" {
		t.Errorf("A1 = %q (err %v), want %q", got, err, "Name")
	}
	got, err = f.GetCellValue(sheet, "B2")
	if err != nil || got != "2" {
		t.Errorf("B2 = %q (err %v), want %q", got, err, "2")
	}
	got, err = f.GetCellValue(sheet, "A3")
	if err != nil || got != "*gadget*" {
		t.Errorf("A3 = %q (err %v), want %q", got, err, "*gadget*")
	}
}

package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/xuri/excelize/v2"

	"github.com/pagegrid/pagegrid/model"
)

// cellText returns the rendered value of one cell, empty when the row
// has no fragment for the header.
func cellText(row model.Row, header string) string {
	frag, ok := row[header]
	if !ok {
		return ""
	}
	return frag.String()
}

// Table writes an aligned text table to w.
func Table(w io.Writer, headers []string, rows []model.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		cells := make(table.Row, len(headers))
		for i, h := range headers {
			cells[i] = cellText(row, h)
		}
		t.AppendRow(cells)
	}

	t.Render()
}

// CSV writes the rows as comma-separated values, headers first.
func CSV(w io.Writer, headers []string, rows []model.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(headers); err != nil {
		return err
	}
	record := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			record[i] = cellText(row, h)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSON writes the rows as an array of objects keyed by header text.
// Headers a row has no value for are omitted from its object.
func JSON(w io.Writer, rows []model.Row, pretty bool) error {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Strings())
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

// XLSX writes the rows to a spreadsheet file, headers on the first row.
func XLSX(path string, headers []string, rows []model.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, h := range headers {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, cellText(row, h)); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

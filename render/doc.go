// Package render writes reconstructed rows to the common output
// formats: an aligned terminal table, CSV, JSON, and XLSX.
//
// All writers take the ordered header list separately from the rows,
// since rows are maps and carry no column order of their own. Cells
// keep the fragment's bold marking convention (see
// model.TextFragment.String); a row without a value for some header
// renders as an empty cell.
package render

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadFile decodes a spreadsheet by file extension (.xlsx, .xls, .csv) into
// header-to-cell row mappings.
func ReadFile(name string, r io.Reader) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return ReadXLSX(r)
	case ".csv":
		return ReadCSV(r)
	default:
		return nil, fmt.Errorf("ingest: unsupported file type %q", filepath.Ext(name))
	}
}

// ReadXLSX decodes the first sheet of an Excel workbook. The first row is
// treated as the header; later rows become header-to-cell mappings. Cells
// beyond the header width are ignored, short rows leave their columns unset.
func ReadXLSX(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ingest: read sheet %q: %w", sheets[0], err)
	}
	return rowsFromCells(rows), nil
}

// ReadCSV decodes a CSV stream with the same header convention as ReadXLSX.
func ReadCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated

	cells, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: read csv: %w", err)
	}
	return rowsFromCells(cells), nil
}

// rowsFromCells applies the first-row-is-header convention to a cell grid.
func rowsFromCells(cells [][]string) []map[string]string {
	if len(cells) == 0 {
		return nil
	}
	header := cells[0]

	rows := make([]map[string]string, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" || i >= len(line) {
				continue
			}
			row[name] = line[i]
		}
		rows = append(rows, row)
	}
	return rows
}

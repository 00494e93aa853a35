package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a small workbook in memory for the xlsx reader tests.
func buildWorkbook(t *testing.T, cells [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, line := range cells {
		for c, v := range line {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestReadXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"編號", "時間", "搭乘人數"},
		{"R1", "14:00", "2"},
		{"R2", "15:30", "1"},
	})

	rows, err := ReadXLSX(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0]["編號"] != "R1" || rows[0]["時間"] != "14:00" {
		t.Errorf("rows[0] = %v, want R1 at 14:00", rows[0])
	}
	if rows[1]["搭乘人數"] != "1" {
		t.Errorf("rows[1][搭乘人數] = %q, want %q", rows[1]["搭乘人數"], "1")
	}
}

func TestReadXLSX_HeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]string{{"編號", "時間"}})

	rows, err := ReadXLSX(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len = %d, want 0", len(rows))
	}
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("this is not a zip"))
	if err == nil {
		t.Fatal("expected error for invalid workbook")
	}
}

func TestReadCSV(t *testing.T) {
	csvData := "編號,時間,搭乘人數\nR1,14:00,2\nR2,15:30,abc\n"

	rows, err := ReadCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0]["編號"] != "R1" {
		t.Errorf("rows[0][編號] = %q, want %q", rows[0]["編號"], "R1")
	}

	records := MapRows(rows)
	if records[1].Passengers != 0 {
		t.Errorf("non-numeric passenger cell = %d, want 0", records[1].Passengers)
	}
}

func TestReadCSV_RaggedRows(t *testing.T) {
	csvData := "編號,時間,搭乘人數\nR1\nR2,15:30,1,extra\n"

	rows, err := ReadCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0]["時間"] != "" {
		t.Errorf("short row should leave 時間 unset, got %q", rows[0]["時間"])
	}
	if rows[1]["搭乘人數"] != "1" {
		t.Errorf("rows[1][搭乘人數] = %q, want %q", rows[1]["搭乘人數"], "1")
	}
}

func TestReadCSV_Empty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len = %d, want 0", len(rows))
	}
}

func TestReadFile_ByExtension(t *testing.T) {
	rows, err := ReadFile("upload.csv", strings.NewReader("編號\nR1\n"))
	if err != nil {
		t.Fatalf("csv: unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("csv len = %d, want 1", len(rows))
	}

	buf := buildWorkbook(t, [][]string{{"編號"}, {"R1"}})
	rows, err = ReadFile("upload.xlsx", buf)
	if err != nil {
		t.Fatalf("xlsx: unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("xlsx len = %d, want 1", len(rows))
	}

	if _, err := ReadFile("upload.pdf", strings.NewReader("")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

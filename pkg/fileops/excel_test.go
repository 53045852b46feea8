package fileops

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestConvertExcelToCSV(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "inventory.xlsx")
	writeWorkbook(t, xlsx, [][]any{
		{"item", "count"},
		{"stapler", 4},
		{"paper", 500},
	})

	result, err := ConvertExcelToCSV(xlsx, "")
	if err != nil {
		t.Fatalf("ConvertExcelToCSV: %v", err)
	}
	if result.OutputPath != filepath.Join(dir, "inventory.csv") {
		t.Errorf("output path = %s", result.OutputPath)
	}
	if result.Rows != 2 {
		t.Errorf("rows = %d, want 2", result.Rows)
	}
	if result.Columns != 2 {
		t.Errorf("columns = %d, want 2", result.Columns)
	}

	out, err := os.Open(result.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	records, err := csv.NewReader(out).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("csv has %d records, want 3", len(records))
	}
	if records[0][0] != "item" || records[1][0] != "stapler" {
		t.Errorf("unexpected csv content: %v", records)
	}
}

func TestConvertExcelToCSVRejectsOtherFormats(t *testing.T) {
	if _, err := ConvertExcelToCSV(filepath.Join(t.TempDir(), "data.txt"), ""); err == nil {
		t.Error("expected error for non-Excel input")
	}
}

func TestConvertExcelToCSVMissingFile(t *testing.T) {
	if _, err := ConvertExcelToCSV(filepath.Join(t.TempDir(), "absent.xlsx"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}

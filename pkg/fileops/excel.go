// Package fileops implements the file transformation operations: spreadsheet
// conversion, bulk renaming and extension-based organizing.
package fileops

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelResult describes one converted spreadsheet.
type ExcelResult struct {
	OutputPath string
	Rows       int // data rows, excluding the header
	Columns    int
}

// ConvertExcelToCSV reads the first sheet of an Excel workbook and writes it
// as UTF-8 CSV. With an empty outputPath the CSV lands next to the input,
// same stem with a .csv extension.
func ConvertExcelToCSV(filePath, outputPath string) (ExcelResult, error) {
	lower := strings.ToLower(filePath)
	if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xls") {
		return ExcelResult{}, fmt.Errorf("input file is not an Excel format (.xlsx or .xls): %s", filePath)
	}

	if outputPath == "" {
		outputPath = stem(filePath) + ".csv"
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return ExcelResult{}, fmt.Errorf("open workbook %s: %w", filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ExcelResult{}, fmt.Errorf("workbook %s has no sheets", filePath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ExcelResult{}, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return ExcelResult{}, fmt.Errorf("create %s: %w", outputPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.WriteAll(rows); err != nil {
		return ExcelResult{}, fmt.Errorf("write csv: %w", err)
	}

	result := ExcelResult{OutputPath: outputPath}
	if len(rows) > 0 {
		result.Columns = len(rows[0])
		result.Rows = len(rows) - 1
	}
	return result, nil
}

func stem(path string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndexAny(path, "/\\") {
		return path[:i]
	}
	return path
}

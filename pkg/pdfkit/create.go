package pdfkit

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

// CreateResult describes a generated PDF document.
type CreateResult struct {
	OutputPath string
	PageCount  int
	FileSize   int64
}

// Create renders a simple paginated document: bold title, creation timestamp
// and the body text word-wrapped with automatic page breaks.
func Create(title, content, outputPath string) (CreateResult, error) {
	if outputPath == "" {
		return CreateResult{}, fmt.Errorf("output path is required")
	}

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(72, 72, 72)
	doc.SetAutoPageBreak(true, 72)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 18, title, "", "L", false)

	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 12, "Created: "+time.Now().Format("02.01.2006 15:04:05"), "", "L", false)
	doc.Ln(16)

	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 14, content, "", "L", false)

	pages := doc.PageCount()
	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return CreateResult{}, fmt.Errorf("write %s: %w", outputPath, err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return CreateResult{}, fmt.Errorf("stat %s: %w", outputPath, err)
	}

	return CreateResult{OutputPath: outputPath, PageCount: pages, FileSize: info.Size()}, nil
}

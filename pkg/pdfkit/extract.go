package pdfkit

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractResult describes extracted PDF text written to OutputPath.
// TextLength counts characters, not bytes.
type ExtractResult struct {
	OutputPath string
	PageCount  int
	TextLength int
	Text       string
}

// ExtractText pulls the text of every page of pdfFile, delimited with
// "--- Page N ---" headers, and writes it to outputPath (input stem + ".txt"
// when empty). Pages without extractable text are marked as such.
func ExtractText(pdfFile, outputPath string) (ExtractResult, error) {
	if _, err := os.Stat(pdfFile); err != nil {
		return ExtractResult{}, fmt.Errorf("file %s does not exist", pdfFile)
	}
	if !strings.HasSuffix(strings.ToLower(pdfFile), ".pdf") {
		return ExtractResult{}, fmt.Errorf("file %s is not a PDF", pdfFile)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(pdfFile, ".pdf")
		outputPath = strings.TrimSuffix(outputPath, ".PDF") + ".txt"
	}

	f, reader, err := pdf.Open(pdfFile)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("open %s: %w", pdfFile, err)
	}
	defer f.Close()

	total := reader.NumPage()
	var pages []string
	for n := 1; n <= total; n++ {
		page := reader.Page(n)
		text := ""
		if !page.V.IsNull() {
			text, err = page.GetPlainText(nil)
			if err != nil {
				text = ""
			}
		}
		if strings.TrimSpace(text) == "" {
			pages = append(pages, fmt.Sprintf("--- Page %d ---\n[no extractable text]\n", n))
		} else {
			pages = append(pages, fmt.Sprintf("--- Page %d ---\n%s\n", n, text))
		}
	}

	extracted := strings.Join(pages, "\n")
	if err := os.WriteFile(outputPath, []byte(extracted), 0o644); err != nil {
		return ExtractResult{}, fmt.Errorf("write %s: %w", outputPath, err)
	}

	return ExtractResult{
		OutputPath: outputPath,
		PageCount:  total,
		TextLength: len([]rune(extracted)),
		Text:       extracted,
	}, nil
}

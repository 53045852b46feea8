// Package pdfkit implements the PDF operations: merging, text extraction and
// document creation.
package pdfkit

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// MergeResult describes a merged output document.
type MergeResult struct {
	OutputPath string
	PageCount  int
	FileSize   int64
}

// Merge concatenates the given PDF files, in order, into outputPath. Every
// input is validated before anything is written: a missing path or a non-.pdf
// name fails the whole merge without touching the output.
func Merge(pdfFiles []string, outputPath string) (MergeResult, error) {
	if len(pdfFiles) == 0 {
		return MergeResult{}, fmt.Errorf("no input files given")
	}
	for _, f := range pdfFiles {
		if _, err := os.Stat(f); err != nil {
			return MergeResult{}, fmt.Errorf("file %s does not exist", f)
		}
		if !strings.HasSuffix(strings.ToLower(f), ".pdf") {
			return MergeResult{}, fmt.Errorf("file %s is not a PDF", f)
		}
	}

	if err := api.MergeCreateFile(pdfFiles, outputPath, false, nil); err != nil {
		return MergeResult{}, fmt.Errorf("merge into %s: %w", outputPath, err)
	}

	pages, err := api.PageCountFile(outputPath)
	if err != nil {
		return MergeResult{}, fmt.Errorf("count pages of %s: %w", outputPath, err)
	}
	info, err := os.Stat(outputPath)
	if err != nil {
		return MergeResult{}, fmt.Errorf("stat %s: %w", outputPath, err)
	}

	return MergeResult{OutputPath: outputPath, PageCount: pages, FileSize: info.Size()}, nil
}

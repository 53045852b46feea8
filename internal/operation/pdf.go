package operation

import (
	"context"

	"officeflow-backend/pkg/pdfkit"
)

const textPreviewLimit = 1000

// PDFOperations implements the pdf.* handlers.
type PDFOperations struct{}

func NewPDFOperations() *PDFOperations {
	return &PDFOperations{}
}

// MergePDFs handles pdf.merge_pdfs.
func (o *PDFOperations) MergePDFs(ctx context.Context, p Params) Outcome {
	result, err := pdfkit.Merge(p.StringSlice("pdf_files"), p.String("output_path", ""))
	if err != nil {
		return Errorf("%v", err)
	}
	return Success("PDF files merged successfully", map[string]any{
		"output_path": result.OutputPath,
		"page_count":  result.PageCount,
		"file_size":   result.FileSize,
	})
}

// ExtractText handles pdf.extract_text.
func (o *PDFOperations) ExtractText(ctx context.Context, p Params) Outcome {
	result, err := pdfkit.ExtractText(p.String("pdf_file", ""), p.String("output_path", ""))
	if err != nil {
		return Errorf("%v", err)
	}

	preview := result.Text
	if runes := []rune(preview); len(runes) > textPreviewLimit {
		preview = string(runes[:textPreviewLimit]) + "..."
	}

	return Success("text extracted from PDF", map[string]any{
		"output_path": result.OutputPath,
		"page_count":  result.PageCount,
		"text_length": result.TextLength,
		"text":        preview,
	})
}

// CreatePDF handles pdf.create_pdf.
func (o *PDFOperations) CreatePDF(ctx context.Context, p Params) Outcome {
	result, err := pdfkit.Create(
		p.String("title", ""),
		p.String("content", ""),
		p.String("output_path", ""),
	)
	if err != nil {
		return Errorf("%v", err)
	}
	return Success("PDF file created successfully", map[string]any{
		"output_path": result.OutputPath,
		"page_count":  result.PageCount,
		"file_size":   result.FileSize,
	})
}

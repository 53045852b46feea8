package operation

import (
	"context"
	"fmt"

	"officeflow-backend/pkg/fileops"
)

// FileOperations implements the file.* handlers.
type FileOperations struct{}

func NewFileOperations() *FileOperations {
	return &FileOperations{}
}

// ConvertExcelToCSV handles file.convert_excel_to_csv.
func (o *FileOperations) ConvertExcelToCSV(ctx context.Context, p Params) Outcome {
	result, err := fileops.ConvertExcelToCSV(p.String("file_path", ""), p.String("output_path", ""))
	if err != nil {
		return Errorf("%v", err)
	}
	return Success("Excel file converted to CSV", map[string]any{
		"output_path": result.OutputPath,
		"rows":        result.Rows,
		"columns":     result.Columns,
	})
}

// RenameFiles handles file.rename_files.
func (o *FileOperations) RenameFiles(ctx context.Context, p Params) Outcome {
	renamed, err := fileops.RenameFiles(
		p.String("directory", ""),
		p.String("pattern", ""),
		p.String("replacement", ""),
		p.Bool("recursive", false),
	)
	if err != nil {
		return Errorf("%v", err)
	}
	return Success(fmt.Sprintf("renamed %d files", len(renamed)), map[string]any{
		"renamed_files": renamed,
	})
}

// OrganizeFiles handles file.organize_files.
func (o *FileOperations) OrganizeFiles(ctx context.Context, p Params) Outcome {
	moved, err := fileops.OrganizeFiles(p.String("directory", ""), p.String("target_directory", ""))
	if err != nil {
		return Errorf("%v", err)
	}
	return Success(fmt.Sprintf("moved %d files into categories", len(moved)), map[string]any{
		"moved_files": moved,
	})
}

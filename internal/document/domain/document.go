package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrMissingID        = errors.New("document id is required for update")
	ErrUnsupportedType  = errors.New("file type is not allowed")
	// ErrFileMissing marks a document whose record exists but whose file was
	// removed from storage out of band. Detectable, not fatal.
	ErrFileMissing = errors.New("stored file is missing")
)

// Document is an uploaded file's record. The record and the file on disk can
// drift apart: external removal of the file leaves a dangling record.
type Document struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	FilePath   string    `json:"file_path"`
	FileType   string    `json:"file_type"`
	Size       int64     `json:"size"`
	UploadedBy uint      `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Metadata datatypes.JSONMap           `json:"metadata"`
	Tags     datatypes.JSONSlice[string] `json:"tags"`

	IsProcessed      bool              `json:"is_processed" gorm:"default:false"`
	ProcessingResult datatypes.JSONMap `json:"processing_result,omitempty"`
}

package usecase

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"officeflow-backend/internal/document/domain"
	"officeflow-backend/internal/document/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UploadInput describes one incoming file.
type UploadInput struct {
	Filename   string
	Size       int64
	UploadedBy uint
	Tags       []string
	Content    io.Reader
}

// DocumentUsecase owns document records and their files on disk.
type DocumentUsecase interface {
	Upload(input UploadInput) (*domain.Document, error)
	GetDocumentByID(id uint) (*domain.Document, error)
	ListDocuments() ([]*domain.Document, error)
	// ResolveFile returns the stored path, or domain.ErrFileMissing when the
	// record exists but the file was removed out of band.
	ResolveFile(id uint) (string, error)
	// DeleteDocument removes the record and best-effort removes the file.
	DeleteDocument(id uint) (bool, error)
}

type documentUsecase struct {
	documentRepo repository.DocumentRepository
	uploadDir    string
	allowed      map[string]struct{}
}

func NewDocumentUsecase(documentRepo repository.DocumentRepository, uploadDir string, allowedExtensions []string) DocumentUsecase {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &documentUsecase{
		documentRepo: documentRepo,
		uploadDir:    uploadDir,
		allowed:      allowed,
	}
}

func (u *documentUsecase) Upload(input UploadInput) (*domain.Document, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	if _, ok := u.allowed[ext]; !ok {
		return nil, fmt.Errorf("%w: .%s", domain.ErrUnsupportedType, ext)
	}

	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	// Stored name is uuid-prefixed so identical uploads never collide.
	stored := uuid.New().String() + "_" + filepath.Base(input.Filename)
	path := filepath.Join(u.uploadDir, stored)

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", input.Filename, err)
	}
	written, err := io.Copy(out, input.Content)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("store %s: %w", input.Filename, err)
	}

	document := &domain.Document{
		Name:       input.Filename,
		FilePath:   path,
		FileType:   ext,
		Size:       written,
		UploadedBy: input.UploadedBy,
		Tags:       datatypes.JSONSlice[string](input.Tags),
		Metadata:   datatypes.JSONMap{},
	}
	if err := u.documentRepo.Create(document); err != nil {
		os.Remove(path)
		return nil, err
	}
	return document, nil
}

func (u *documentUsecase) GetDocumentByID(id uint) (*domain.Document, error) {
	document, err := u.documentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, domain.ErrDocumentNotFound
	}
	return document, nil
}

func (u *documentUsecase) ListDocuments() ([]*domain.Document, error) {
	return u.documentRepo.FindAll()
}

func (u *documentUsecase) ResolveFile(id uint) (string, error) {
	document, err := u.GetDocumentByID(id)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(document.FilePath); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrFileMissing, document.FilePath)
	}
	return document.FilePath, nil
}

func (u *documentUsecase) DeleteDocument(id uint) (bool, error) {
	document, err := u.documentRepo.FindByID(id)
	if err != nil {
		return false, err
	}
	if document == nil {
		return false, nil
	}

	deleted, err := u.documentRepo.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		if err := os.Remove(document.FilePath); err != nil && !os.IsNotExist(err) {
			log.Printf("[WARN] document %d deleted but file %s could not be removed: %v", id, document.FilePath, err)
		}
	}
	return deleted, nil
}

package usecase

import (
	"errors"
	"os"
	"strings"
	"testing"

	"officeflow-backend/internal/document/domain"
	"officeflow-backend/internal/document/repository"
)

func newDocumentUsecase(t *testing.T) DocumentUsecase {
	t.Helper()
	return NewDocumentUsecase(repository.NewMemoryDocumentRepository(), t.TempDir(), []string{"pdf", "txt", "xlsx"})
}

func TestUploadStoresFile(t *testing.T) {
	uc := newDocumentUsecase(t)

	document, err := uc.Upload(UploadInput{
		Filename:   "notes.txt",
		UploadedBy: 1,
		Tags:       []string{"meeting"},
		Content:    strings.NewReader("agenda items"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if document.ID == 0 {
		t.Error("document id not assigned")
	}
	if document.Size != int64(len("agenda items")) {
		t.Errorf("size = %d", document.Size)
	}
	if document.FileType != "txt" {
		t.Errorf("file type = %s", document.FileType)
	}
	if !strings.HasSuffix(document.FilePath, "_notes.txt") {
		t.Errorf("stored path %s not uuid-prefixed", document.FilePath)
	}

	data, err := os.ReadFile(document.FilePath)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "agenda items" {
		t.Errorf("stored content = %q", data)
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	uc := newDocumentUsecase(t)

	_, err := uc.Upload(UploadInput{
		Filename: "malware.exe",
		Content:  strings.NewReader("nope"),
	})
	if !errors.Is(err, domain.ErrUnsupportedType) {
		t.Errorf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestResolveFileMissingOnDisk(t *testing.T) {
	uc := newDocumentUsecase(t)

	document, err := uc.Upload(UploadInput{
		Filename: "report.pdf",
		Content:  strings.NewReader("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	// wipe the file behind the record's back
	if err := os.Remove(document.FilePath); err != nil {
		t.Fatal(err)
	}

	_, err = uc.ResolveFile(document.ID)
	if !errors.Is(err, domain.ErrFileMissing) {
		t.Errorf("err = %v, want ErrFileMissing", err)
	}

	// the record itself survives
	if _, err := uc.GetDocumentByID(document.ID); err != nil {
		t.Errorf("record should survive a missing file: %v", err)
	}
}

func TestDeleteDocumentRemovesFile(t *testing.T) {
	uc := newDocumentUsecase(t)

	document, err := uc.Upload(UploadInput{
		Filename: "old.txt",
		Content:  strings.NewReader("stale"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	deleted, err := uc.DeleteDocument(document.ID)
	if err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if !deleted {
		t.Error("DeleteDocument reported nothing deleted")
	}
	if _, err := os.Stat(document.FilePath); !os.IsNotExist(err) {
		t.Error("file still on disk after delete")
	}
	if _, err := uc.GetDocumentByID(document.ID); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("err = %v, want ErrDocumentNotFound", err)
	}
}

func TestDeleteMissingDocument(t *testing.T) {
	uc := newDocumentUsecase(t)

	deleted, err := uc.DeleteDocument(404)
	if err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if deleted {
		t.Error("deleting a missing document reported a deletion")
	}
}

package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOrganizeFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "report.pdf"))
	touch(t, filepath.Join(dir, "data.xlsx"))
	touch(t, filepath.Join(dir, "photo.JPG")) // extension match is case-insensitive
	touch(t, filepath.Join(dir, "mystery.xyz"))

	moved, err := OrganizeFiles(dir, "")
	if err != nil {
		t.Fatalf("OrganizeFiles: %v", err)
	}
	if len(moved) != 4 {
		t.Fatalf("moved %d files, want 4", len(moved))
	}

	want := map[string]string{
		"report.pdf":  "Documents",
		"data.xlsx":   "Spreadsheets",
		"photo.JPG":   "Images",
		"mystery.xyz": "Other",
	}
	for _, m := range moved {
		if want[m.Filename] != m.Category {
			t.Errorf("%s categorized as %s, want %s", m.Filename, m.Category, want[m.Filename])
		}
		if _, err := os.Stat(m.Destination); err != nil {
			t.Errorf("destination %s missing: %v", m.Destination, err)
		}
	}
}

func TestOrganizeFilesCollision(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()

	if err := os.MkdirAll(filepath.Join(target, "Documents"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(target, "Documents", "report.pdf"))
	touch(t, filepath.Join(dir, "report.pdf"))

	moved, err := OrganizeFiles(dir, target)
	if err != nil {
		t.Fatalf("OrganizeFiles: %v", err)
	}
	if len(moved) != 1 {
		t.Fatalf("moved %d files, want 1", len(moved))
	}
	if got := filepath.Base(moved[0].Destination); got != "report_1.pdf" {
		t.Errorf("collision destination = %s, want report_1.pdf", got)
	}
}

func TestOrganizeFilesSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "nested", "inner.txt"))

	moved, err := OrganizeFiles(dir, "")
	if err != nil {
		t.Fatalf("OrganizeFiles: %v", err)
	}
	if len(moved) != 0 {
		t.Errorf("moved %d files, want 0", len(moved))
	}
	if _, err := os.Stat(filepath.Join(dir, "nested", "inner.txt")); err != nil {
		t.Errorf("nested file should be untouched: %v", err)
	}
}

func TestCategoryFor(t *testing.T) {
	cases := map[string]string{
		"pdf":  "Documents",
		"csv":  "Spreadsheets",
		"png":  "Images",
		"mp3":  "Audio",
		"mp4":  "Video",
		"zip":  "Archives",
		"pptx": "Presentations",
		"go":   "Code",
		"xyz":  "Other",
		"":     "Other",
	}
	for ext, want := range cases {
		if got := categoryFor(ext); got != want {
			t.Errorf("categoryFor(%q) = %s, want %s", ext, got, want)
		}
	}
}

package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MovedFile records one file moved by OrganizeFiles.
type MovedFile struct {
	Filename    string `json:"filename"`
	Category    string `json:"category"`
	Destination string `json:"destination"`
}

// CategoryOther receives files whose extension matches no category.
const CategoryOther = "Other"

type category struct {
	name       string
	extensions []string
}

// The fixed classification table. Order matters only for folder creation.
var categories = []category{
	{"Documents", []string{"pdf", "doc", "docx", "txt", "rtf", "odt"}},
	{"Spreadsheets", []string{"xls", "xlsx", "csv", "ods"}},
	{"Images", []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff", "svg"}},
	{"Audio", []string{"mp3", "wav", "ogg", "flac", "aac"}},
	{"Video", []string{"mp4", "avi", "mkv", "mov", "wmv"}},
	{"Archives", []string{"zip", "rar", "7z", "tar", "gz"}},
	{"Presentations", []string{"ppt", "pptx", "odp"}},
	{"Code", []string{"py", "js", "html", "css", "java", "cpp", "c", "php", "rb", "go"}},
}

func categoryFor(extension string) string {
	for _, c := range categories {
		for _, ext := range c.extensions {
			if ext == extension {
				return c.name
			}
		}
	}
	return CategoryOther
}

// OrganizeFiles classifies every file directly inside directory into category
// folders under targetDirectory (the source directory itself when empty),
// creating folders as needed. A name collision at the destination appends
// _1, _2, ... before the extension.
func OrganizeFiles(directory, targetDirectory string) ([]MovedFile, error) {
	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory %s does not exist or is not a directory", directory)
	}

	if targetDirectory == "" {
		targetDirectory = directory
	}
	if err := os.MkdirAll(targetDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("create target directory: %w", err)
	}
	for _, c := range categories {
		if err := os.MkdirAll(filepath.Join(targetDirectory, c.name), 0o755); err != nil {
			return nil, fmt.Errorf("create category directory %s: %w", c.name, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(targetDirectory, CategoryOther), 0o755); err != nil {
		return nil, fmt.Errorf("create category directory %s: %w", CategoryOther, err)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", directory, err)
	}

	var moved []MovedFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		cat := categoryFor(ext)

		dest := collisionFree(filepath.Join(targetDirectory, cat), name)
		if err := os.Rename(filepath.Join(directory, name), dest); err != nil {
			return nil, fmt.Errorf("move %s: %w", name, err)
		}
		moved = append(moved, MovedFile{Filename: name, Category: cat, Destination: dest})
	}

	return moved, nil
}

func collisionFree(dir, name string) string {
	dest := filepath.Join(dir, name)
	if _, err := os.Stat(dest); os.IsNotExist(err) {
		return dest
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

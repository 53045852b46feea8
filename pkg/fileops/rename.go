package fileops

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// RenamedFile records one rename performed by RenameFiles.
type RenamedFile struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
	Path    string `json:"path"`
}

// RenameFiles renames every file in directory whose name matches pattern,
// substituting replacement for the matched portions. With recursive set,
// subdirectories are walked too. Directories themselves are never renamed.
func RenameFiles(directory, pattern, replacement string, recursive bool) ([]RenamedFile, error) {
	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory %s does not exist or is not a directory", directory)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var renamed []RenamedFile

	renameIn := func(dir, name string) error {
		if !re.MatchString(name) {
			return nil
		}
		newName := re.ReplaceAllString(name, replacement)
		if newName == name {
			return nil
		}
		if err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, newName)); err != nil {
			return err
		}
		renamed = append(renamed, RenamedFile{OldName: name, NewName: newName, Path: dir})
		return nil
	}

	if recursive {
		err = filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			return renameIn(filepath.Dir(path), d.Name())
		})
	} else {
		var entries []fs.DirEntry
		entries, err = os.ReadDir(directory)
		if err == nil {
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if err = renameIn(directory, e.Name()); err != nil {
					break
				}
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("rename in %s: %w", directory, err)
	}

	return renamed, nil
}

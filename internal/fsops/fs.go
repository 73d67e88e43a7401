// Package fsops provides the filesystem access layer for the renamer.
//
// Every filesystem touch — existence checks, directory listing, and the
// rename calls themselves — goes through the FS interface so the planner
// and engine stay testable against in-memory fakes.
//
// Key features:
//   - Rename is the only mutation the tool performs
//   - Existence checks use Lstat (symlinks rename like any other entry)
//   - Filename validation rejects names the OS cannot store
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS abstracts the filesystem operations the renamer needs.
type FS interface {
	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// Rename atomically renames oldpath to newpath.
	Rename(oldpath, newpath string) error

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// ValidateFileName validates a single path component.
	ValidateFileName(name string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir lists the entries of a directory.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Rename atomically renames oldpath to newpath.
// Cross-volume moves are not supported; the underlying syscall decides.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// reservedNames are path components Windows refuses regardless of extension.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// ValidateFileName validates a single path component for use as a file name.
// Returns an error for empty names, names containing path separators, the
// "." and ".." components, and Windows reserved device names.
func (fs *RealFS) ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid file name: empty")
	}

	if strings.Contains(name, string(filepath.Separator)) || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("invalid file name: must not contain path separators")
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid file name: %q is not a file name", name)
	}

	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("invalid file name: contains NUL byte")
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if _, ok := reservedNames[strings.ToUpper(stem)]; ok {
		return fmt.Errorf("invalid file name: %q is a reserved device name", name)
	}

	return nil
}

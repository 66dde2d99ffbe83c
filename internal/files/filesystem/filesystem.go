package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider reads and writes the files of one generation run.
//
// Missing paths are reported with errors matching fs.ErrNotExist.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// MkdirAll creates a directory and any missing parents
	MkdirAll(path string) error

	// WriteFile creates or truncates the file at path and writes data to it.
	// The parent directory must exist.
	WriteFile(path string, data []byte) error
}

// IsDir reports whether path exists and is a directory.
func IsDir(provider FileSystemProvider, path string) bool {
	info, err := provider.Stat(path)
	return err == nil && info.IsDir()
}

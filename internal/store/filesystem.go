package store

import (
	"fmt"
	"os"
	"path/filepath"

	"kb-go/internal/kanban"
)

// FileSystemBackend stores each key as a JSON document file under a root
// directory:
//
//	<root>/
//	  <key>.json
//
// Writes are atomic (temp file + rename) so a crash mid-write never leaves a
// truncated document behind.
type FileSystemBackend struct {
	root string
}

// NewFileSystemBackend creates a filesystem backend rooted at the given path,
// creating the directory if needed.
func NewFileSystemBackend(root string) (*FileSystemBackend, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &FileSystemBackend{root: root}, nil
}

func (f *FileSystemBackend) path(key string) string {
	return filepath.Join(f.root, key+".json")
}

// Get retrieves the value stored under key.
func (f *FileSystemBackend) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", f.path(key), err)
	}
	return data, true, nil
}

// Put stores value under key using an atomic write (temp file + rename).
func (f *FileSystemBackend) Put(key string, data []byte) error {
	destPath := f.path(key)

	// Temp file in the same directory so the rename stays atomic.
	tmpFile, err := os.CreateTemp(f.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// Close is a no-op: files are closed per operation.
func (f *FileSystemBackend) Close() error { return nil }

// Compile-time check that FileSystemBackend implements kanban.Backend
var _ kanban.Backend = (*FileSystemBackend)(nil)

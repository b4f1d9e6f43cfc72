package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystemBackend(t *testing.T) {
	t.Run("put then get round-trips", func(t *testing.T) {
		f, err := NewFileSystemBackend(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemBackend() error = %v", err)
		}

		if err := f.Put("kanbanBoard", []byte(`{"cards":[]}`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		data, ok, err := f.Get("kanbanBoard")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok {
			t.Fatal("Get() ok = false, want true")
		}
		if !bytes.Equal(data, []byte(`{"cards":[]}`)) {
			t.Errorf("Get() data = %q", data)
		}
	})

	t.Run("missing key returns ok=false", func(t *testing.T) {
		f, err := NewFileSystemBackend(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemBackend() error = %v", err)
		}

		_, ok, err := f.Get("missing")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("Get() ok = true, want false")
		}
	})

	t.Run("documents land in key.json files", func(t *testing.T) {
		root := t.TempDir()
		f, err := NewFileSystemBackend(root)
		if err != nil {
			t.Fatalf("NewFileSystemBackend() error = %v", err)
		}

		if err := f.Put("kanbanBoard", []byte("{}")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(root, "kanbanBoard.json")); err != nil {
			t.Errorf("expected kanbanBoard.json to exist: %v", err)
		}
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		root := t.TempDir()
		f, err := NewFileSystemBackend(root)
		if err != nil {
			t.Fatalf("NewFileSystemBackend() error = %v", err)
		}

		f.Put("k", []byte("one"))
		f.Put("k", []byte("two"))

		entries, err := os.ReadDir(root)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("directory entries = %v, want only k.json", names)
		}
	})

	t.Run("creates the root directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "nested", "board")
		if _, err := NewFileSystemBackend(root); err != nil {
			t.Fatalf("NewFileSystemBackend() error = %v", err)
		}
		if _, err := os.Stat(root); err != nil {
			t.Errorf("root directory not created: %v", err)
		}
	})
}

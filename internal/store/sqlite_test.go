package store

import (
	"bytes"
	"path/filepath"
	"testing"
)

func newTestSQLiteBackend(t *testing.T) *SQLiteBackend {
	t.Helper()
	s, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("NewSQLiteBackend() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteBackend(t *testing.T) {
	t.Run("put then get round-trips", func(t *testing.T) {
		s := newTestSQLiteBackend(t)

		if err := s.Put("kanbanBoard", []byte(`{"users":[]}`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		data, ok, err := s.Get("kanbanBoard")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok {
			t.Fatal("Get() ok = false, want true")
		}
		if !bytes.Equal(data, []byte(`{"users":[]}`)) {
			t.Errorf("Get() data = %q", data)
		}
	})

	t.Run("missing key returns ok=false", func(t *testing.T) {
		s := newTestSQLiteBackend(t)

		_, ok, err := s.Get("missing")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("Get() ok = true, want false")
		}
	})

	t.Run("put upserts on key conflict", func(t *testing.T) {
		s := newTestSQLiteBackend(t)

		s.Put("k", []byte("one"))
		if err := s.Put("k", []byte("two")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		data, _, _ := s.Get("k")
		if string(data) != "two" {
			t.Errorf("Get() data = %q, want %q", data, "two")
		}
	})

	t.Run("reopening the same file keeps the data", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "board.db")

		s, err := NewSQLiteBackend(path)
		if err != nil {
			t.Fatalf("NewSQLiteBackend() error = %v", err)
		}
		if err := s.Put("kanbanBoard", []byte("persisted")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		s, err = NewSQLiteBackend(path)
		if err != nil {
			t.Fatalf("NewSQLiteBackend() reopen error = %v", err)
		}
		defer s.Close()

		data, ok, err := s.Get("kanbanBoard")
		if err != nil || !ok {
			t.Fatalf("Get() = ok %v, err %v", ok, err)
		}
		if string(data) != "persisted" {
			t.Errorf("Get() data = %q, want %q", data, "persisted")
		}
	})
}

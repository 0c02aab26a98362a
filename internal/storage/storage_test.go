package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStore_Write(t *testing.T) {
	store := NewFileStore()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "unit_runner.c")

	t.Run("creates missing directories", func(t *testing.T) {
		if err := store.Write(path, []byte("first")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read artifact: %v", err)
		}
		if string(data) != "first" {
			t.Errorf("expected first, got %q", data)
		}
	})

	t.Run("overwrites instead of appending", func(t *testing.T) {
		if err := store.Write(path, []byte("second")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "second" {
			t.Errorf("expected second, got %q", data)
		}
	})

	t.Run("leaves no temporary files", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected only the artifact, got %d entries", len(entries))
		}
	})

	t.Run("sets file mode", func(t *testing.T) {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat: %v", err)
		}
		if info.Mode().Perm() != 0644 {
			t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
		}
	})

	t.Run("error mentions the path", func(t *testing.T) {
		blocker := filepath.Join(tmpDir, "blocker")
		if err := os.WriteFile(blocker, []byte("file"), 0644); err != nil {
			t.Fatalf("failed to create blocker: %v", err)
		}
		target := filepath.Join(blocker, "unit_runner.c")
		err := store.Write(target, []byte("x"))
		if err == nil {
			t.Fatal("expected error writing below a regular file")
		}
		if !strings.Contains(err.Error(), blocker) {
			t.Errorf("expected error to mention %s, got %v", blocker, err)
		}
	})
}

func TestFileStore_Read(t *testing.T) {
	store := NewFileStore()
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		data, ok, err := store.Read(filepath.Join(tmpDir, "missing.c"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || data != nil {
			t.Errorf("expected no data, got ok=%v data=%q", ok, data)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "unit_runner.c")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		data, ok, err := store.Read(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || string(data) != "content" {
			t.Errorf("expected content, got ok=%v data=%q", ok, data)
		}
	})
}

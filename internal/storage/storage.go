package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists and loads generated runner artifacts
type Store interface {
	// Write replaces the file at path with data
	Write(path string, data []byte) error
	// Read returns the current content at path. The second result is false
	// when no file exists.
	Read(path string) ([]byte, bool, error)
}

// FileStore writes artifacts to the local filesystem. Writes go to a temporary
// file in the destination directory which is then renamed over the target, so
// a failed write never leaves a truncated artifact behind.
type FileStore struct {
	perm fs.FileMode
}

// NewFileStore returns a Store writing files with mode 0644
func NewFileStore() *FileStore {
	return &FileStore{perm: 0644}
}

// Write atomically replaces the file at path with data
func (s *FileStore) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	cleanup := func(cause error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, cause)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(s.perm); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read returns the content of the file at path
func (s *FileStore) Read(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	return data, true, nil
}

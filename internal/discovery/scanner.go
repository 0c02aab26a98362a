package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"frg/internal/domain"
	"frg/internal/layout"
	"frg/internal/logging"
)

// Scanner walks a cases directory and selects the test-source files of a layout
type Scanner struct {
	layout   *layout.Layout
	skipDirs map[string]bool
	logger   *logging.Logger
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(l *layout.Layout, skipDirs []string, logger *logging.Logger) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Scanner{layout: l, skipDirs: skipMap, logger: logger}
}

// Scan finds all test-source files under root, in lexical order
func (s *Scanner) Scan(root string) ([]domain.SourceFile, error) {
	var files []domain.SourceFile

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCasesDirNotFound, root)
		}
		return nil, fmt.Errorf("stat cases directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrCasesNotDir, root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.FileSkipped(path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && s.skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		bucket, ok := s.layout.Classify(d.Name())
		if !ok || !isRegularFile(path, d) {
			return nil
		}

		files = append(files, domain.SourceFile{Path: path, Bucket: bucket})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

// isRegularFile reports whether d is a regular file, following symlinks
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"frg/internal/layout"
)

// writeFiles creates files under root, keyed by slash separated relative path
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", name, err)
		}
	}
}

func mustLayout(t *testing.T, mode layout.Mode, apple bool) *layout.Layout {
	t.Helper()
	l, err := layout.New(mode, apple, "")
	if err != nil {
		t.Fatalf("failed to create layout: %v", err)
	}
	return l
}

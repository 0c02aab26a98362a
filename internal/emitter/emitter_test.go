package emitter

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"frg/internal/domain"
	"frg/internal/layout"
	"frg/internal/storage"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var writeTxtarGolden = flag.Bool("write-txtar-golden", false, "If true, writes out golden files in txtar archives")

// targetFromArchive builds a target from the framework and buckets sections
func targetFromArchive(t *testing.T, files map[string][]byte) layout.Target {
	t.Helper()
	fw, err := layout.LookupFramework(strings.TrimSpace(string(files["framework"])))
	if err != nil {
		t.Fatalf("bad framework section: %v", err)
	}
	var buckets []domain.Bucket
	for _, b := range strings.Fields(string(files["buckets"])) {
		buckets = append(buckets, domain.Bucket(b))
	}
	return layout.Target{Filename: "unit_runner.c", Buckets: buckets, Framework: fw}
}

func TestTxtarRender(t *testing.T) {
	txtarFiles, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("failed to find txtar files in testdata: %v", err)
	}
	if len(txtarFiles) == 0 {
		t.Skip("no txtar files found")
	}

	for _, file := range txtarFiles {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("failed to parse %s: %v", file, err)
			}

			files := make(map[string][]byte)
			for _, f := range ar.Files {
				files[f.Name] = f.Data
			}

			target := targetFromArchive(t, files)
			groups := strings.Fields(string(files["groups"]))

			got, err := NewEmitter(nil).Render(target, groups)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}

			if *writeTxtarGolden {
				for i := range ar.Files {
					if ar.Files[i].Name == "want" {
						ar.Files[i].Data = got
					}
				}
				if err := os.WriteFile(file, txtar.Format(ar), 0644); err != nil {
					t.Fatalf("failed to write golden %s: %v", file, err)
				}
				return
			}

			if diff := cmp.Diff(string(files["want"]), string(got)); diff != "" {
				t.Errorf("runner mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

var (
	exportLine = regexp.MustCompile(`(?m)^FOSSIL_TEST_EXPORT\((\w+)\);$`)
	importLine = regexp.MustCompile(`(?m)^    FOSSIL_TEST_IMPORT\((\w+)\);$`)
)

func captured(re *regexp.Regexp, content []byte) []string {
	var out []string
	for _, m := range re.FindAllSubmatch(content, -1) {
		out = append(out, string(m[1]))
	}
	return out
}

func TestRender_DeclarationsMatchRegistrations(t *testing.T) {
	l, err := layout.New(layout.ModeUnified, false, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	groups := []string{"zeta", "alpha", "mid_1", "alpha", "_under", "Upper"}

	got, err := NewEmitter(nil).Render(l.Targets[0], groups)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exports := captured(exportLine, got)
	imports := captured(importLine, got)
	want := []string{"Upper", "_under", "alpha", "mid_1", "zeta"}

	if diff := cmp.Diff(want, exports); diff != "" {
		t.Errorf("exports mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(exports, imports); diff != "" {
		t.Errorf("exports and imports differ (-exports +imports):\n%s", diff)
	}
}

func TestRender_Deterministic(t *testing.T) {
	l, err := layout.New(layout.ModeSplit, false, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := NewEmitter(nil)

	first, err := e.Render(l.Targets[1], []string{"b", "a", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.Render(l.Targets[1], []string{"c", "b", "a", "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("same group set rendered differently:\n%s", cmp.Diff(string(first), string(second)))
	}
}

func TestEmit(t *testing.T) {
	l, err := layout.New(layout.ModeUnified, false, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dest := filepath.Join(t.TempDir(), "unit_runner.c")
	e := NewEmitter(storage.NewFileStore())

	if err := e.Emit(l.Targets[0], []string{"alpha", "beta", "gamma"}, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Emit(l.Targets[0], []string{"alpha"}, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("failed to read runner: %v", err)
	}
	want, _ := e.Render(l.Targets[0], []string{"alpha"})
	if diff := cmp.Diff(string(want), string(data)); diff != "" {
		t.Errorf("runner not fully overwritten (-want +got):\n%s", diff)
	}
}

// Package layout decides which bucket a test file belongs to and which runner
// artifacts are produced from the buckets.
//
// The generator has two modes. In unified mode every C and C++ group (and on
// Apple platforms every Objective-C and Objective-C++ group) lands in a
// single unit_runner.c. In split mode each language gets its own bucket and
// its own runner file.
package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"frg/internal/domain"
)

// Mode selects how buckets map to runner artifacts
type Mode string

const (
	// ModeUnified writes one runner covering every applicable bucket
	ModeUnified Mode = "unified"
	// ModeSplit writes one runner per bucket
	ModeSplit Mode = "split"
)

// TestFilePrefix is the name prefix a file needs to be scanned
const TestFilePrefix = "test_"

// Target is one runner artifact and the buckets it covers
type Target struct {
	Filename  string
	Buckets   []domain.Bucket
	Framework Framework
}

// Title returns the header title of the target, e.g. "C/C++" or "C++"
func (t Target) Title() string {
	titles := make([]string, 0, len(t.Buckets))
	for _, b := range t.Buckets {
		titles = append(titles, b.Title())
	}
	return strings.Join(titles, ", ")
}

// Layout is the bucket classification strategy together with its targets
type Layout struct {
	Mode    Mode
	Apple   bool
	Targets []Target

	extensions map[string]domain.Bucket
	buckets    []domain.Bucket
}

// New builds the layout for mode. apple enables the Objective-C buckets.
// An empty framework selects the mode default.
func New(mode Mode, apple bool, framework string) (*Layout, error) {
	l := &Layout{
		Mode:       mode,
		Apple:      apple,
		extensions: make(map[string]domain.Bucket),
	}

	switch mode {
	case ModeUnified:
		if framework == "" {
			framework = FrameworkPizza
		}
		fw, err := LookupFramework(framework)
		if err != nil {
			return nil, err
		}
		l.extensions[".c"] = domain.BucketCFamily
		l.extensions[".cpp"] = domain.BucketCFamily
		l.buckets = []domain.Bucket{domain.BucketCFamily, domain.BucketObjC, domain.BucketObjCPP}

		covered := []domain.Bucket{domain.BucketCFamily}
		if apple {
			covered = append(covered, domain.BucketObjC, domain.BucketObjCPP)
		}
		l.Targets = []Target{{Filename: "unit_runner.c", Buckets: covered, Framework: fw}}

	case ModeSplit:
		if framework == "" {
			framework = FrameworkTest
		}
		fw, err := LookupFramework(framework)
		if err != nil {
			return nil, err
		}
		l.extensions[".c"] = domain.BucketC
		l.extensions[".cpp"] = domain.BucketCPP
		l.buckets = []domain.Bucket{domain.BucketC, domain.BucketCPP, domain.BucketObjC, domain.BucketObjCPP}

		l.Targets = []Target{
			{Filename: "unit_runner.c", Buckets: []domain.Bucket{domain.BucketC}, Framework: fw},
			{Filename: "unit_runner.cpp", Buckets: []domain.Bucket{domain.BucketCPP}, Framework: fw},
		}
		if apple {
			l.Targets = append(l.Targets,
				Target{Filename: "unit_runner.m", Buckets: []domain.Bucket{domain.BucketObjC}, Framework: fw},
				Target{Filename: "unit_runner.mm", Buckets: []domain.Bucket{domain.BucketObjCPP}, Framework: fw},
			)
		}

	default:
		return nil, fmt.Errorf("%w: %q (expected %q or %q)", domain.ErrUnknownMode, mode, ModeUnified, ModeSplit)
	}

	if apple {
		l.extensions[".m"] = domain.BucketObjC
		l.extensions[".mm"] = domain.BucketObjCPP
	}

	return l, nil
}

// Classify returns the bucket of a file by its base name. The second result
// is false when the file is not a test source for this layout.
func (l *Layout) Classify(name string) (domain.Bucket, bool) {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, TestFilePrefix) {
		return "", false
	}
	bucket, ok := l.extensions[filepath.Ext(base)]
	return bucket, ok
}

// Buckets returns every bucket of the mode, including the ones the current
// platform does not scan
func (l *Layout) Buckets() []domain.Bucket {
	out := make([]domain.Bucket, len(l.buckets))
	copy(out, l.buckets)
	return out
}

// TargetFor returns the target covering bucket b
func (l *Layout) TargetFor(b domain.Bucket) (Target, bool) {
	for _, t := range l.Targets {
		for _, covered := range t.Buckets {
			if covered == b {
				return t, true
			}
		}
	}
	return Target{}, false
}

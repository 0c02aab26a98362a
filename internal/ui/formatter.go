package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"frg/internal/discovery"
	"frg/internal/domain"
	"frg/internal/layout"

	"github.com/fatih/color"
)

// Formatter formats and displays output
type Formatter struct {
	out    io.Writer
	filter *discovery.Filter

	header  *color.Color
	bucket  *color.Color
	group   *color.Color
	source  *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{
		out:     out,
		filter:  discovery.NewFilter(),
		header:  color.New(color.FgGreen),
		bucket:  color.New(color.FgCyan, color.Bold),
		group:   color.New(color.FgYellow),
		source:  color.New(color.FgHiBlack),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
}

// PrintGroupList prints the discovered groups bucket by bucket as a tree.
// Buckets the layout does not scan on this platform are left out. With
// showFiles every group lists the files that declared it.
func (f *Formatter) PrintGroupList(d *domain.Discovery, l *layout.Layout, showFiles bool, pattern string) {
	buckets := scannedBuckets(l)

	total := 0
	for _, b := range buckets {
		total += len(f.filter.FilterByName(d.Set(b).Names(), pattern))
	}
	f.header.Fprintf(f.out, "Found %d test group(s) in %d file(s):\n", total, d.Files)

	for _, b := range buckets {
		set := d.Set(b)
		names := f.filter.FilterByName(set.Names(), pattern)

		fmt.Fprintln(f.out)
		target := "-"
		if t, ok := l.TargetFor(b); ok {
			target = t.Filename
		}
		f.bucket.Fprintf(f.out, "%s (%d) -> %s\n", b.Title(), len(names), target)

		if len(names) == 0 {
			fmt.Fprintf(f.out, "└── %s\n", f.failure.Sprint("(no test groups found)"))
			continue
		}

		for i, name := range names {
			isLastGroup := i == len(names)-1
			branch, indent := "├── ", "│   "
			if isLastGroup {
				branch, indent = "└── ", "    "
			}
			fmt.Fprintf(f.out, "%s%s\n", branch, f.group.Sprint(name))

			if !showFiles {
				continue
			}
			sources := set.Sources(name)
			for j, src := range sources {
				leaf := "├── "
				if j == len(sources)-1 {
					leaf = "└── "
				}
				fmt.Fprintf(f.out, "%s%s%s\n", indent, leaf, f.source.Sprint(relativeTo(d.Root, src)))
			}
		}
	}

	f.printSkipped(d)
}

// PrintSummary prints one line per written runner
func (f *Formatter) PrintSummary(d *domain.Discovery, statuses []domain.ArtifactStatus) {
	for _, status := range statuses {
		artifact := status.Artifact
		switch {
		case status.Missing:
			f.success.Fprintf(f.out, "✓ created %s", artifact.Path)
		case status.Changed:
			f.success.Fprintf(f.out, "✓ updated %s", artifact.Path)
		default:
			fmt.Fprintf(f.out, "= %s is up to date", artifact.Path)
		}
		fmt.Fprintf(f.out, " (%s, %d group(s))\n", artifact.Title, len(artifact.Groups))
	}
	f.printSkipped(d)
}

// PrintCheck prints the result of comparing runners with what would be generated
func (f *Formatter) PrintCheck(statuses []domain.ArtifactStatus) {
	stale := 0
	for _, status := range statuses {
		switch {
		case status.Missing:
			stale++
			f.failure.Fprintf(f.out, "✗ %s is missing\n", status.Artifact.Path)
		case status.Changed:
			stale++
			f.failure.Fprintf(f.out, "✗ %s is out of date\n", status.Artifact.Path)
		default:
			f.success.Fprintf(f.out, "✓ %s is up to date\n", status.Artifact.Path)
		}
	}
	if stale > 0 {
		f.warning.Fprintf(f.out, "\n%d runner(s) need regenerating, run frg to update them\n", stale)
	}
}

// PrintManifest writes the discovery as indented JSON
func (f *Formatter) PrintManifest(d *domain.Discovery, l *layout.Layout, pattern string) error {
	manifest := f.Manifest(d, l, pattern)
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}

// Manifest builds the machine readable listing of d, keeping only the groups
// matching pattern. Source paths are relative to the scanned root.
func (f *Formatter) Manifest(d *domain.Discovery, l *layout.Layout, pattern string) *domain.GroupManifest {
	manifest := &domain.GroupManifest{
		Root:    d.Root,
		Files:   d.Files,
		Skipped: d.Skipped,
		Buckets: make(map[string][]domain.GroupInfo),
	}
	for _, b := range scannedBuckets(l) {
		set := d.Set(b)
		infos := []domain.GroupInfo{}
		for _, name := range f.filter.FilterByName(set.Names(), pattern) {
			sources := set.Sources(name)
			for i, src := range sources {
				sources[i] = relativeTo(d.Root, src)
			}
			infos = append(infos, domain.GroupInfo{Name: name, Sources: sources})
		}
		manifest.Buckets[string(b)] = infos
	}
	return manifest
}

func (f *Formatter) printSkipped(d *domain.Discovery) {
	if len(d.Skipped) == 0 {
		return
	}
	f.warning.Fprintf(f.out, "\n%d file(s) could not be read and were skipped:\n", len(d.Skipped))
	for _, path := range d.Skipped {
		fmt.Fprintf(f.out, "  %s\n", relativeTo(d.Root, path))
	}
}

// scannedBuckets returns the buckets covered by the layout targets, in target order
func scannedBuckets(l *layout.Layout) []domain.Bucket {
	var buckets []domain.Bucket
	for _, t := range l.Targets {
		buckets = append(buckets, t.Buckets...)
	}
	return buckets
}

// relativeTo returns path relative to root for cleaner display
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

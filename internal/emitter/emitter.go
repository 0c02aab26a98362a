// Package emitter renders runner source files from test group identifiers.
package emitter

import (
	"bytes"
	"fmt"
	"sort"

	"frg/internal/layout"
	"frg/internal/storage"
)

// Emitter renders and writes runner artifacts
type Emitter struct {
	store storage.Store
}

// NewEmitter creates a new Emitter writing through store
func NewEmitter(store storage.Store) *Emitter {
	if store == nil {
		store = storage.NewFileStore()
	}
	return &Emitter{store: store}
}

type runnerData struct {
	Title     string
	Banner    string
	Framework layout.Framework
	Groups    []string
}

// Render returns the runner source for target declaring and importing groups.
// Groups are sorted and de-duplicated first, so the output only depends on the
// set of identifiers.
func (e *Emitter) Render(target layout.Target, groups []string) ([]byte, error) {
	data := runnerData{
		Title:     target.Title(),
		Banner:    banner,
		Framework: target.Framework,
		Groups:    normalize(groups),
	}

	var buf bytes.Buffer
	if err := runnerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", target.Filename, err)
	}
	return buf.Bytes(), nil
}

// Emit renders the runner for target and writes it to dest, replacing any
// previous content
func (e *Emitter) Emit(target layout.Target, groups []string, dest string) error {
	data, err := e.Render(target, groups)
	if err != nil {
		return err
	}
	return e.store.Write(dest, data)
}

// normalize returns a sorted copy of groups without duplicates
func normalize(groups []string) []string {
	seen := make(map[string]bool, len(groups))
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

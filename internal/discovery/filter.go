package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters group identifiers by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters names using wildcard matching.
// Supports patterns like "c_*", "*queue*" or a plain substring like "tofu".
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	hasWildcard := strings.ContainsAny(pattern, "*?")
	var filtered []string

	for _, name := range names {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, name)
			continue
		}

		// "*queue*" style patterns also match when every literal part is present
		if strings.Contains(pattern, "*") && containsAllParts(name, strings.Split(pattern, "*")) {
			filtered = append(filtered, name)
			continue
		}

		if !hasWildcard && strings.Contains(name, pattern) {
			filtered = append(filtered, name)
		}
	}

	return filtered
}

// containsAllParts reports whether name contains every non-empty part, and at
// least one part is non-empty
func containsAllParts(name string, parts []string) bool {
	found := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if !strings.Contains(name, part) {
			return false
		}
		found = true
	}
	return found
}

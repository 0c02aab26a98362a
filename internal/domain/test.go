package domain

import "sort"

// SourceFile is a test-source file selected for group extraction
type SourceFile struct {
	Path   string // Full path to the file
	Bucket Bucket // Bucket the file's groups belong to
}

// GroupSet is a set of test group identifiers. For every identifier it also
// remembers which files declared it.
type GroupSet struct {
	groups map[string]map[string]struct{}
}

// NewGroupSet creates an empty GroupSet
func NewGroupSet() *GroupSet {
	return &GroupSet{groups: make(map[string]map[string]struct{})}
}

// Add records that source declares the group name. An empty source only
// records the name.
func (s *GroupSet) Add(name, source string) {
	sources, ok := s.groups[name]
	if !ok {
		sources = make(map[string]struct{})
		s.groups[name] = sources
	}
	if source != "" {
		sources[source] = struct{}{}
	}
}

// Has reports whether name is in the set
func (s *GroupSet) Has(name string) bool {
	_, ok := s.groups[name]
	return ok
}

// Len returns the number of distinct groups
func (s *GroupSet) Len() int {
	return len(s.groups)
}

// Names returns the group identifiers sorted lexicographically
func (s *GroupSet) Names() []string {
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sources returns the sorted list of files that declared name
func (s *GroupSet) Sources(name string) []string {
	sources := make([]string, 0, len(s.groups[name]))
	for source := range s.groups[name] {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}

// Merge adds every group of other, with its sources, into s
func (s *GroupSet) Merge(other *GroupSet) {
	if other == nil {
		return
	}
	for name, sources := range other.groups {
		s.Add(name, "")
		for source := range sources {
			s.groups[name][source] = struct{}{}
		}
	}
}

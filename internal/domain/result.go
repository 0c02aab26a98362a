package domain

// Discovery is the result of scanning a cases directory
type Discovery struct {
	Root    string               // Directory that was scanned
	Buckets map[Bucket]*GroupSet // One set per bucket of the active layout
	Files   int                  // Number of files parsed
	Skipped []string             // Files that could not be read
}

// NewDiscovery creates a Discovery with an empty set for each bucket
func NewDiscovery(root string, buckets []Bucket) *Discovery {
	d := &Discovery{
		Root:    root,
		Buckets: make(map[Bucket]*GroupSet, len(buckets)),
	}
	for _, b := range buckets {
		d.Buckets[b] = NewGroupSet()
	}
	return d
}

// Set returns the group set of bucket b, creating it when missing
func (d *Discovery) Set(b Bucket) *GroupSet {
	set, ok := d.Buckets[b]
	if !ok {
		set = NewGroupSet()
		d.Buckets[b] = set
	}
	return set
}

// TotalGroups returns the number of groups summed over all buckets
func (d *Discovery) TotalGroups() int {
	total := 0
	for _, set := range d.Buckets {
		total += set.Len()
	}
	return total
}

// Artifact is a rendered runner file
type Artifact struct {
	Path    string   // Destination path
	Title   string   // Title used in the generated header
	Buckets []Bucket // Buckets covered by the artifact
	Groups  []string // Sorted group identifiers declared and imported
	Content []byte   // Rendered file content
}

// ArtifactStatus reports what happened to an artifact when it was written or checked
type ArtifactStatus struct {
	Artifact *Artifact
	Changed  bool // Content differs from what was on disk before
	Missing  bool // No file existed at the path before
}

// GroupManifest is the machine readable listing of a discovery
type GroupManifest struct {
	Root    string                 `json:"root"`
	Files   int                    `json:"files"`
	Skipped []string               `json:"skipped,omitempty"`
	Buckets map[string][]GroupInfo `json:"buckets"`
}

// GroupInfo describes one group in a GroupManifest
type GroupInfo struct {
	Name    string   `json:"name"`
	Sources []string `json:"sources"`
}

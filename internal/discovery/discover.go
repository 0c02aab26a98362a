package discovery

import (
	"frg/internal/domain"
	"frg/internal/layout"
	"frg/internal/logging"
)

// Progress receives scan progress updates
type Progress interface {
	Update(done, total, groups int)
	Finish()
}

// Discoverer scans a cases directory and collects test groups per bucket
type Discoverer struct {
	layout   *layout.Layout
	scanner  *Scanner
	parser   *Parser
	logger   *logging.Logger
	progress Progress
}

// NewDiscoverer creates a new Discoverer
func NewDiscoverer(l *layout.Layout, scanner *Scanner, parser *Parser, logger *logging.Logger) *Discoverer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Discoverer{
		layout:  l,
		scanner: scanner,
		parser:  parser,
		logger:  logger,
	}
}

// SetProgress sets the progress sink used by Discover
func (d *Discoverer) SetProgress(progress Progress) {
	d.progress = progress
}

// Layout returns the layout used to classify files
func (d *Discoverer) Layout() *layout.Layout {
	return d.layout
}

// Discover scans root and returns one group set per bucket of the layout.
// Files that cannot be read are skipped and listed in the result.
func (d *Discoverer) Discover(root string) (*domain.Discovery, error) {
	d.logger.ScanStarted(root, string(d.layout.Mode), d.layout.Apple)

	files, err := d.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	result := domain.NewDiscovery(root, d.layout.Buckets())
	groups := 0

	for i, file := range files {
		found, err := d.parser.FindGroups(file.Path)
		if err != nil {
			d.logger.FileSkipped(file.Path, err)
			result.Skipped = append(result.Skipped, file.Path)
		} else {
			set := result.Set(file.Bucket)
			for _, group := range found {
				if !set.Has(group) {
					groups++
				}
				set.Add(group, file.Path)
			}
			result.Files++
			d.logger.GroupsFound(file.Path, string(file.Bucket), len(found))
		}

		if d.progress != nil {
			d.progress.Update(i+1, len(files), groups)
		}
	}

	if d.progress != nil {
		d.progress.Finish()
	}

	d.logger.ScanComplete(result.Files, result.TotalGroups(), len(result.Skipped))
	return result, nil
}

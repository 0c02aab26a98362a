// Package generate runs the scan and emit pipeline: discover the test groups
// under the cases directory, render one runner per layout target and write,
// print or verify the results.
package generate

import (
	"bytes"
	"fmt"

	"frg/internal/config"
	"frg/internal/discovery"
	"frg/internal/domain"
	"frg/internal/emitter"
	"frg/internal/layout"
	"frg/internal/logging"
	"frg/internal/storage"
)

// Generator scans the cases directory and produces runner artifacts
type Generator struct {
	config     *config.Config
	layout     *layout.Layout
	discoverer *discovery.Discoverer
	emitter    *emitter.Emitter
	store      storage.Store
	logger     *logging.Logger
}

// Plan is the set of runners a run would produce
type Plan struct {
	Discovery *domain.Discovery
	Artifacts []*domain.Artifact

	targets []layout.Target
}

// New builds a Generator for the effective configuration
func New(cfg *config.Config, logger *logging.Logger) (*Generator, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	l, err := layout.New(layout.Mode(cfg.Mode), cfg.IsApple(), cfg.Framework)
	if err != nil {
		return nil, err
	}

	store := storage.NewFileStore()
	scanner := discovery.NewScanner(l, cfg.IgnoreDirs, logger)
	discoverer := discovery.NewDiscoverer(l, scanner, discovery.NewParser(), logger)

	return &Generator{
		config:     cfg,
		layout:     l,
		discoverer: discoverer,
		emitter:    emitter.NewEmitter(store),
		store:      store,
		logger:     logger,
	}, nil
}

// Layout returns the layout in use
func (g *Generator) Layout() *layout.Layout {
	return g.layout
}

// SetProgress sets the progress sink for scanning
func (g *Generator) SetProgress(progress discovery.Progress) {
	g.discoverer.SetProgress(progress)
}

// Discover scans the cases directory without rendering anything
func (g *Generator) Discover() (*domain.Discovery, error) {
	return g.discoverer.Discover(g.config.GetCasesPath())
}

// Plan scans the cases directory and renders every target in memory
func (g *Generator) Plan() (*Plan, error) {
	d, err := g.Discover()
	if err != nil {
		return nil, err
	}

	plan := &Plan{Discovery: d}
	for _, target := range g.layout.Targets {
		groups := Identifiers(d, target)
		content, err := g.emitter.Render(target, groups)
		if err != nil {
			return nil, err
		}
		plan.Artifacts = append(plan.Artifacts, &domain.Artifact{
			Path:    g.config.GetOutputPath(target.Filename),
			Title:   target.Title(),
			Buckets: target.Buckets,
			Groups:  groups,
			Content: content,
		})
		plan.targets = append(plan.targets, target)
	}
	return plan, nil
}

// Apply writes every planned artifact, replacing existing files
func (g *Generator) Apply(plan *Plan) ([]domain.ArtifactStatus, error) {
	statuses := make([]domain.ArtifactStatus, 0, len(plan.Artifacts))
	for i, artifact := range plan.Artifacts {
		status, err := g.status(artifact)
		if err != nil {
			return statuses, err
		}
		if err := g.emitter.Emit(plan.targets[i], artifact.Groups, artifact.Path); err != nil {
			return statuses, err
		}
		g.logger.ArtifactWritten(artifact.Path, len(artifact.Groups), status.Changed)
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Run plans and applies in one step
func (g *Generator) Run() (*Plan, []domain.ArtifactStatus, error) {
	plan, err := g.Plan()
	if err != nil {
		return nil, nil, err
	}
	statuses, err := g.Apply(plan)
	return plan, statuses, err
}

// Check compares planned artifacts with the files on disk. The error wraps
// domain.ErrStaleArtifact when any file is missing or outdated.
func (g *Generator) Check(plan *Plan) ([]domain.ArtifactStatus, error) {
	statuses := make([]domain.ArtifactStatus, 0, len(plan.Artifacts))
	var stale []string
	for _, artifact := range plan.Artifacts {
		status, err := g.status(artifact)
		if err != nil {
			return statuses, err
		}
		if status.Changed {
			stale = append(stale, artifact.Path)
		}
		statuses = append(statuses, status)
	}
	if len(stale) > 0 {
		return statuses, fmt.Errorf("%w: %v", domain.ErrStaleArtifact, stale)
	}
	return statuses, nil
}

// status compares artifact with the current file at its path
func (g *Generator) status(artifact *domain.Artifact) (domain.ArtifactStatus, error) {
	current, ok, err := g.store.Read(artifact.Path)
	if err != nil {
		return domain.ArtifactStatus{}, err
	}
	return domain.ArtifactStatus{
		Artifact: artifact,
		Changed:  !ok || !bytes.Equal(current, artifact.Content),
		Missing:  !ok,
	}, nil
}

// Identifiers returns the sorted union of the groups of every bucket target
// covers. A group found in several covered buckets is listed once.
func Identifiers(d *domain.Discovery, target layout.Target) []string {
	merged := domain.NewGroupSet()
	for _, b := range target.Buckets {
		merged.Merge(d.Buckets[b])
	}
	return merged.Names()
}

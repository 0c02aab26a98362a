package ui

import (
	"frg/internal/domain"
	"frg/internal/layout"
)

// Viewer displays discovered test groups in an interactive TUI
type Viewer interface {
	View(d *domain.Discovery, l *layout.Layout) error
}

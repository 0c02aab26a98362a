package commands

import (
	"frg/internal/ui"

	"github.com/spf13/cobra"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	env    *Environment
	viewer ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(env *Environment, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{env: env, viewer: viewer}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	g, err := bc.env.newGenerator(true)
	if err != nil {
		return err
	}

	d, err := g.Discover()
	if err != nil {
		return err
	}

	return bc.viewer.View(d, g.Layout())
}
